// Package session decides whether the current user is a guest or an
// authenticated account holder, exposes profile reads and writes for either
// mode, and runs the one-shot guest-to-account migration at signup. The
// authenticated session (user id + token) is persisted in the local
// key-value table so it survives between CLI invocations.
package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log"

	"github.com/CodeHadIt/caltrack/internal/db"
	"github.com/CodeHadIt/caltrack/internal/gueststore"
	"github.com/CodeHadIt/caltrack/internal/model"
	"github.com/CodeHadIt/caltrack/internal/remote"
)

const sessionKey = "caltrack_session"

type persistedSession struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Token  string `json:"access_token"`
}

type Manager struct {
	sqldb  *sql.DB
	guest  *gueststore.Store
	client *remote.Client

	active *persistedSession
}

// New builds a manager, restoring any persisted authenticated session into
// the remote client's token.
func New(sqldb *sql.DB, guest *gueststore.Store, client *remote.Client) *Manager {
	m := &Manager{sqldb: sqldb, guest: guest, client: client}
	if raw, ok, err := db.GetValue(sqldb, sessionKey); err == nil && ok {
		var s persistedSession
		if json.Unmarshal([]byte(raw), &s) == nil && s.Token != "" {
			m.active = &s
			client.Token = s.Token
		}
	}
	return m
}

func (m *Manager) IsGuest() bool {
	return m.active == nil
}

// UserID returns the authenticated account id, or the fixed guest id.
func (m *Manager) UserID() string {
	if m.active != nil {
		return m.active.UserID
	}
	return gueststore.GuestID
}

func (m *Manager) Email() string {
	if m.active != nil {
		return m.active.Email
	}
	return ""
}

func (m *Manager) Guest() *gueststore.Store {
	return m.guest
}

func (m *Manager) Client() *remote.Client {
	return m.client
}

// Profile reads the current profile from the active store.
func (m *Manager) Profile(ctx context.Context) (model.Profile, error) {
	if m.IsGuest() {
		return m.guest.Profile(), nil
	}
	p, err := m.client.Profile(ctx, m.active.UserID)
	if err != nil {
		return model.Profile{}, fmt.Errorf("fetch profile: %w", err)
	}
	return p, nil
}

// UpdateProfile merges the set fields of updates into the active store's
// profile record.
func (m *Manager) UpdateProfile(ctx context.Context, updates model.Profile) error {
	if m.IsGuest() {
		return m.guest.UpdateProfile(updates)
	}
	if err := m.client.UpdateProfile(ctx, m.active.UserID, updates); err != nil {
		return fmt.Errorf("update profile: %w", err)
	}
	return nil
}

// SignUp creates an account and migrates the guest's data onto it.
//
// The snapshot is taken before the signup call: once the new session is
// active the guest store is fair game for clearing, and data created after
// the snapshot would otherwise leak into the migration. If account creation
// fails, guest data is untouched and guest mode persists. After all inserts
// have been attempted the guest store is cleared unconditionally, so a
// partially failed migration never resurfaces stale guest data.
func (m *Manager) SignUp(ctx context.Context, email, password string) (model.MigrationReport, error) {
	snapshot := m.guest.Snapshot()

	acct, err := m.client.SignUp(ctx, email, password)
	if err != nil {
		return model.MigrationReport{}, fmt.Errorf("sign up: %w", err)
	}
	if err := m.persist(acct); err != nil {
		return model.MigrationReport{}, err
	}

	report := MigrateGuestData(ctx, m.client, snapshot, acct.UserID)

	if err := m.guest.Clear(); err != nil {
		return report, fmt.Errorf("clear guest data after migration: %w", err)
	}
	return report, nil
}

// SignIn authenticates against an existing account. Guest data is left in
// place; migration only happens at signup.
func (m *Manager) SignIn(ctx context.Context, email, password string) error {
	acct, err := m.client.SignIn(ctx, email, password)
	if err != nil {
		return fmt.Errorf("sign in: %w", err)
	}
	return m.persist(acct)
}

// SignOut ends the remote session and reverts to guest mode. The remote
// call is best-effort; the local session is dropped regardless.
func (m *Manager) SignOut(ctx context.Context) error {
	if m.IsGuest() {
		return nil
	}
	if err := m.client.SignOut(ctx); err != nil {
		log.Printf("caltrack: remote sign out: %v", err)
	}
	return m.drop()
}

// RequestAccountDeletion starts the two-step deletion flow: the server
// emails a confirmation token valid for 24 hours.
func (m *Manager) RequestAccountDeletion(ctx context.Context) error {
	if m.IsGuest() {
		return fmt.Errorf("no account to delete in guest mode")
	}
	if err := m.client.RequestAccountDeletion(ctx); err != nil {
		return fmt.Errorf("request account deletion: %w", err)
	}
	return nil
}

// ConfirmAccountDeletion redeems the emailed token and, on success, drops
// the local session.
func (m *Manager) ConfirmAccountDeletion(ctx context.Context, token string) error {
	if err := m.client.ConfirmAccountDeletion(ctx, token); err != nil {
		return fmt.Errorf("confirm account deletion: %w", err)
	}
	return m.drop()
}

func (m *Manager) persist(acct remote.Account) error {
	s := persistedSession{UserID: acct.UserID, Email: acct.Email, Token: acct.Token}
	raw, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	if err := db.SetValue(m.sqldb, sessionKey, string(raw)); err != nil {
		return fmt.Errorf("persist session: %w", err)
	}
	m.active = &s
	m.client.Token = s.Token
	return nil
}

func (m *Manager) drop() error {
	if err := db.DeleteValue(m.sqldb, sessionKey); err != nil {
		return fmt.Errorf("drop session: %w", err)
	}
	m.active = nil
	m.client.Token = ""
	return nil
}
