package model

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

type ActivityLevel string

const (
	ActivitySedentary  ActivityLevel = "sedentary"
	ActivityLight      ActivityLevel = "light"
	ActivityModerate   ActivityLevel = "moderate"
	ActivityActive     ActivityLevel = "active"
	ActivityVeryActive ActivityLevel = "very_active"
)

type Goal string

const (
	GoalLose     Goal = "lose"
	GoalMaintain Goal = "maintain"
	GoalGain     Goal = "gain"
)

type MealTime string

const (
	MealBreakfast MealTime = "breakfast"
	MealLunch     MealTime = "lunch"
	MealDinner    MealTime = "dinner"
	MealSnack     MealTime = "snack"
)

// MealTimes lists the four meal buckets in display order.
var MealTimes = []MealTime{MealBreakfast, MealLunch, MealDinner, MealSnack}

type Profile struct {
	ID            string        `json:"id"`
	HeightCm      float64       `json:"height_cm,omitempty"`
	WeightKg      float64       `json:"weight_kg,omitempty"`
	Age           int           `json:"age,omitempty"`
	Gender        Gender        `json:"gender,omitempty"`
	ActivityLevel ActivityLevel `json:"activity_level,omitempty"`
	Goal          Goal          `json:"goal,omitempty"`
}

// IsEmpty reports whether no profile field beyond the id has been set.
func (p Profile) IsEmpty() bool {
	return p.HeightCm == 0 && p.WeightKg == 0 && p.Age == 0 &&
		p.Gender == "" && p.ActivityLevel == "" && p.Goal == ""
}

type FoodCategory struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
}

type FoodItem struct {
	ID              string  `json:"id"`
	UserID          string  `json:"user_id,omitempty"`
	CategoryID      string  `json:"category_id"`
	Name            string  `json:"name"`
	CaloriesPer100g float64 `json:"calories_per_100g"`
	ProteinPer100g  float64 `json:"protein_per_100g"`
	CarbsPer100g    float64 `json:"carbs_per_100g"`
	FatPer100g      float64 `json:"fat_per_100g"`
	ImageURL        string  `json:"image_url,omitempty"`
	IsDefault       bool    `json:"is_default"`
	CreatedAt       string  `json:"created_at,omitempty"`
}

type FoodLog struct {
	ID          string   `json:"id"`
	UserID      string   `json:"user_id"`
	FoodItemID  string   `json:"food_item_id"`
	WeightGrams float64  `json:"weight_grams"`
	MealTime    MealTime `json:"meal_time"`
	Date        string   `json:"date"`
	LoggedAt    string   `json:"logged_at"`
}

// FoodLogWithItem is a log joined to the food item it references.
type FoodLogWithItem struct {
	FoodLog
	FoodItem FoodItem `json:"food_item"`
}

type Nutrients struct {
	Calories int     `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

// DailySummary is derived from the day's logs; it is never persisted.
type DailySummary struct {
	Date          string                         `json:"date"`
	TotalCalories int                            `json:"total_calories"`
	TotalProtein  float64                        `json:"total_protein"`
	TotalCarbs    float64                        `json:"total_carbs"`
	TotalFat      float64                        `json:"total_fat"`
	Meals         map[MealTime][]FoodLogWithItem `json:"meals"`
}

type TDEEResult struct {
	BMR     int `json:"bmr"`
	TDEE    int `json:"tdee"`
	Deficit int `json:"deficit"`
	Surplus int `json:"surplus"`
}

type BodyFatResult struct {
	Percentage float64 `json:"percentage"`
	Category   string  `json:"category"`
}

type MacroTarget struct {
	Grams      int `json:"grams"`
	Calories   int `json:"calories"`
	Percentage int `json:"percentage"`
}

type MacroRecommendation struct {
	Calories int         `json:"calories"`
	Protein  MacroTarget `json:"protein"`
	Carbs    MacroTarget `json:"carbs"`
	Fat      MacroTarget `json:"fat"`
	Goal     Goal        `json:"goal"`
}

// GuestData is the single record the guest store persists.
type GuestData struct {
	FoodLogs    []FoodLog  `json:"foodLogs"`
	CustomFoods []FoodItem `json:"customFoods"`
	Profile     Profile    `json:"profile"`
}

type DayCalories struct {
	Date     string `json:"date"`
	Calories int    `json:"calories"`
}

// MigrationReport summarizes a one-shot guest-to-account migration.
type MigrationReport struct {
	ProfileSynced bool `json:"profile_synced"`
	FoodsSynced   int  `json:"foods_synced"`
	FoodsFailed   int  `json:"foods_failed"`
	LogsSynced    int  `json:"logs_synced"`
	LogsFailed    int  `json:"logs_failed"`
}

func (g Gender) Valid() bool {
	return g == GenderMale || g == GenderFemale
}

func (a ActivityLevel) Valid() bool {
	switch a {
	case ActivitySedentary, ActivityLight, ActivityModerate, ActivityActive, ActivityVeryActive:
		return true
	}
	return false
}

func (g Goal) Valid() bool {
	return g == GoalLose || g == GoalMaintain || g == GoalGain
}

func (m MealTime) Valid() bool {
	switch m {
	case MealBreakfast, MealLunch, MealDinner, MealSnack:
		return true
	}
	return false
}
