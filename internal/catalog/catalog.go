// Package catalog holds the seeded food database: a fixed set of categories
// and default food items visible to every user. The catalog is read-only at
// runtime; user-authored foods live in the guest or remote store.
package catalog

import (
	"fmt"

	"github.com/CodeHadIt/caltrack/internal/model"
)

var Categories = []model.FoodCategory{
	{ID: "cat-carbs", Name: "Carbs", Icon: "🍚", Color: "#f59e0b"},
	{ID: "cat-proteins", Name: "Proteins", Icon: "🥩", Color: "#ef4444"},
	{ID: "cat-fats", Name: "Fats", Icon: "🥑", Color: "#84cc16"},
	{ID: "cat-fruits", Name: "Fruits", Icon: "🍎", Color: "#22c55e"},
	{ID: "cat-vegetables", Name: "Vegetables", Icon: "🥬", Color: "#10b981"},
	{ID: "cat-dairy", Name: "Dairy", Icon: "🥛", Color: "#3b82f6"},
	{ID: "cat-snacks", Name: "Snacks", Icon: "🍿", Color: "#8b5cf6"},
}

// img expands an Unsplash photo id into the thumbnail URL the catalog uses.
func img(photo string) string {
	return "https://images.unsplash.com/photo-" + photo + "?w=200&h=200&fit=crop"
}

var defaultFoods = []model.FoodItem{
	{CategoryID: "cat-carbs", Name: "Basmati Rice", CaloriesPer100g: 150, ProteinPer100g: 3.5, CarbsPer100g: 32, FatPer100g: 0.4, ImageURL: img("1586201375761-83865001e31c")},
	{CategoryID: "cat-carbs", Name: "Ripe Plantain", CaloriesPer100g: 122, ProteinPer100g: 1.3, CarbsPer100g: 32, FatPer100g: 0.4, ImageURL: img("1603052875302-d376b7c0638a")},
	{CategoryID: "cat-carbs", Name: "Sweet Potato", CaloriesPer100g: 86, ProteinPer100g: 1.6, CarbsPer100g: 20, FatPer100g: 0.1, ImageURL: img("1546039907-7fa05f864c02")},
	{CategoryID: "cat-carbs", Name: "Yam", CaloriesPer100g: 118, ProteinPer100g: 1.5, CarbsPer100g: 28, FatPer100g: 0.2, ImageURL: img("1516747773440-e1417d61e89a")},
	{CategoryID: "cat-proteins", Name: "Chicken Breast", CaloriesPer100g: 165, ProteinPer100g: 31, CarbsPer100g: 0, FatPer100g: 3.6, ImageURL: img("1604503468506-a8da13d82791")},
	{CategoryID: "cat-proteins", Name: "Chicken Thigh", CaloriesPer100g: 209, ProteinPer100g: 26, CarbsPer100g: 0, FatPer100g: 11, ImageURL: img("1598103442097-8b74394b95c6")},
	{CategoryID: "cat-proteins", Name: "Turkey Wings", CaloriesPer100g: 197, ProteinPer100g: 28, CarbsPer100g: 0, FatPer100g: 9, ImageURL: img("1574672280600-4accfa5b6f98")},
	{CategoryID: "cat-proteins", Name: "Lamb Steak", CaloriesPer100g: 250, ProteinPer100g: 25, CarbsPer100g: 0, FatPer100g: 16, ImageURL: img("1603048297172-c92544798d5a")},
	{CategoryID: "cat-proteins", Name: "Beef Steak", CaloriesPer100g: 271, ProteinPer100g: 26, CarbsPer100g: 0, FatPer100g: 18, ImageURL: img("1600891964092-4316c288032e")},
	{CategoryID: "cat-proteins", Name: "Eggs", CaloriesPer100g: 155, ProteinPer100g: 13, CarbsPer100g: 1.1, FatPer100g: 11, ImageURL: img("1582722872445-44dc5f7e3c8f")},
	{CategoryID: "cat-fats", Name: "Avocado", CaloriesPer100g: 160, ProteinPer100g: 2, CarbsPer100g: 9, FatPer100g: 15, ImageURL: img("1523049673857-eb18f1d7b578")},
	{CategoryID: "cat-fats", Name: "Groundnut", CaloriesPer100g: 567, ProteinPer100g: 26, CarbsPer100g: 16, FatPer100g: 49, ImageURL: img("1543158181-1274e5362710")},
	{CategoryID: "cat-fats", Name: "Cashew Nuts", CaloriesPer100g: 553, ProteinPer100g: 18, CarbsPer100g: 30, FatPer100g: 44, ImageURL: img("1604147706283-d7119b5b822c")},
	{CategoryID: "cat-fruits", Name: "Banana", CaloriesPer100g: 89, ProteinPer100g: 1.1, CarbsPer100g: 23, FatPer100g: 0.3, ImageURL: img("1571771894821-ce9b6c11b08e")},
	{CategoryID: "cat-fruits", Name: "Apple", CaloriesPer100g: 52, ProteinPer100g: 0.3, CarbsPer100g: 14, FatPer100g: 0.2, ImageURL: img("1584306670957-acf935f5033c")},
	{CategoryID: "cat-fruits", Name: "Kiwi", CaloriesPer100g: 61, ProteinPer100g: 1.1, CarbsPer100g: 15, FatPer100g: 0.5, ImageURL: img("1585059895524-72359e06133a")},
	{CategoryID: "cat-vegetables", Name: "Broccoli", CaloriesPer100g: 34, ProteinPer100g: 2.8, CarbsPer100g: 7, FatPer100g: 0.4, ImageURL: img("1459411552884-841db9b3cc2a")},
	{CategoryID: "cat-vegetables", Name: "Carrots", CaloriesPer100g: 41, ProteinPer100g: 0.9, CarbsPer100g: 10, FatPer100g: 0.2, ImageURL: img("1598170845058-32b9d6a5da37")},
	{CategoryID: "cat-vegetables", Name: "Bell Pepper", CaloriesPer100g: 31, ProteinPer100g: 1, CarbsPer100g: 6, FatPer100g: 0.3, ImageURL: img("1563565375-f3fdfdbefa83")},
	{CategoryID: "cat-vegetables", Name: "Peas", CaloriesPer100g: 81, ProteinPer100g: 5, CarbsPer100g: 14, FatPer100g: 0.4, ImageURL: img("1587735243615-c03f25aaff15")},
	{CategoryID: "cat-vegetables", Name: "Green Beans", CaloriesPer100g: 31, ProteinPer100g: 1.8, CarbsPer100g: 7, FatPer100g: 0.1, ImageURL: img("1567375698348-5d9d5ae99de0")},
	{CategoryID: "cat-dairy", Name: "Greek Yogurt", CaloriesPer100g: 97, ProteinPer100g: 9, CarbsPer100g: 3.6, FatPer100g: 5, ImageURL: img("1488477181946-6428a0291777")},
	{CategoryID: "cat-snacks", Name: "Plantain Chips", CaloriesPer100g: 519, ProteinPer100g: 2, CarbsPer100g: 58, FatPer100g: 31, ImageURL: img("1566478989037-eec170784d0b")},
	{CategoryID: "cat-snacks", Name: "Biscuit", CaloriesPer100g: 502, ProteinPer100g: 6, CarbsPer100g: 62, FatPer100g: 25, ImageURL: img("1558961363-fa8fdf82db35")},
}

// DefaultFoods returns a fresh copy of the default catalog with stable
// `default-<n>` ids assigned.
func DefaultFoods() []model.FoodItem {
	foods := make([]model.FoodItem, len(defaultFoods))
	for i, f := range defaultFoods {
		f.ID = fmt.Sprintf("default-%d", i)
		f.IsDefault = true
		foods[i] = f
	}
	return foods
}

// CategoryByID looks up a category in the fixed set.
func CategoryByID(id string) (model.FoodCategory, bool) {
	for _, c := range Categories {
		if c.ID == id {
			return c, true
		}
	}
	return model.FoodCategory{}, false
}
