// Package nutrition implements the calorie and macro calculation engine:
// BMR/TDEE via Mifflin-St Jeor, body-fat estimation via the U.S. Navy
// circumference method, goal-based macro splits, and per-serving nutrient
// scaling. All functions are pure and perform no I/O.
package nutrition

import (
	"fmt"
	"math"

	"github.com/CodeHadIt/caltrack/internal/model"
)

// ActivityMultipliers maps activity levels to their TDEE multiplier. This is
// the single source of truth for valid activity levels.
var ActivityMultipliers = map[model.ActivityLevel]float64{
	model.ActivitySedentary:  1.2,
	model.ActivityLight:      1.375,
	model.ActivityModerate:   1.55,
	model.ActivityActive:     1.725,
	model.ActivityVeryActive: 1.9,
}

// MacroRatios maps goals to protein/carbs/fat calorie shares.
var MacroRatios = map[model.Goal][3]float64{
	model.GoalLose:     {0.40, 0.35, 0.25},
	model.GoalMaintain: {0.30, 0.40, 0.30},
	model.GoalGain:     {0.30, 0.45, 0.25},
}

type bodyFatBand struct {
	max      float64
	category string
}

var bodyFatBands = map[model.Gender][]bodyFatBand{
	model.GenderMale: {
		{6, "Essential Fat"},
		{14, "Athletes"},
		{18, "Fitness"},
		{25, "Average"},
		{100, "Obese"},
	},
	model.GenderFemale: {
		{14, "Essential Fat"},
		{21, "Athletes"},
		{25, "Fitness"},
		{32, "Average"},
		{100, "Obese"},
	},
}

// BMR computes basal metabolic rate in kcal/day using the Mifflin-St Jeor
// equation. Inputs are not range-checked; callers supply plausible values.
func BMR(weightKg, heightCm float64, age int, gender model.Gender) float64 {
	base := 10*weightKg + 6.25*heightCm - 5*float64(age)
	if gender == model.GenderMale {
		return base + 5
	}
	return base - 161
}

// TDEE computes total daily energy expenditure along with the 500 kcal
// deficit and surplus targets. All fields are rounded to whole calories.
func TDEE(weightKg, heightCm float64, age int, gender model.Gender, activity model.ActivityLevel) (model.TDEEResult, error) {
	mult, ok := ActivityMultipliers[activity]
	if !ok {
		return model.TDEEResult{}, fmt.Errorf("unknown activity level %q", activity)
	}
	bmr := BMR(weightKg, heightCm, age, gender)
	tdee := bmr * mult
	return model.TDEEResult{
		BMR:     int(math.Round(bmr)),
		TDEE:    int(math.Round(tdee)),
		Deficit: int(math.Round(tdee - 500)),
		Surplus: int(math.Round(tdee + 500)),
	}, nil
}

// BodyFat estimates body-fat percentage with the U.S. Navy circumference
// method. hip is required for female; pass nil for male. Measurement
// combinations whose logarithm argument is non-positive are rejected rather
// than producing a non-finite result.
func BodyFat(gender model.Gender, waistCm, neckCm, heightCm float64, hipCm *float64) (model.BodyFatResult, error) {
	if heightCm <= 0 {
		return model.BodyFatResult{}, fmt.Errorf("height must be > 0")
	}

	var pct float64
	switch gender {
	case model.GenderMale:
		if waistCm-neckCm <= 0 {
			return model.BodyFatResult{}, fmt.Errorf("waist must be larger than neck")
		}
		pct = 86.01*math.Log10(waistCm-neckCm) - 70.041*math.Log10(heightCm) + 36.76
	case model.GenderFemale:
		if hipCm == nil {
			return model.BodyFatResult{}, fmt.Errorf("hip measurement required for female body fat calculation")
		}
		if waistCm+*hipCm-neckCm <= 0 {
			return model.BodyFatResult{}, fmt.Errorf("waist plus hip must be larger than neck")
		}
		pct = 163.205*math.Log10(waistCm+*hipCm-neckCm) - 97.684*math.Log10(heightCm) - 78.387
	default:
		return model.BodyFatResult{}, fmt.Errorf("unknown gender %q", gender)
	}

	pct = math.Max(0, math.Min(100, pct))

	category := "Unknown"
	for _, band := range bodyFatBands[gender] {
		if pct <= band.max {
			category = band.category
			break
		}
	}

	return model.BodyFatResult{
		Percentage: math.Round(pct*10) / 10,
		Category:   category,
	}, nil
}

// MacroSplit allocates a calorie target across protein, carbs, and fat for
// the given goal. Target calories are tdee-500 for lose, tdee+500 for gain,
// tdee unchanged for maintain. Grams use 4 kcal/g for protein and carbs and
// 9 kcal/g for fat, each rounded independently, so the gram values may drift
// a few grams from the calorie target.
func MacroSplit(tdee int, goal model.Goal) (model.MacroRecommendation, error) {
	ratios, ok := MacroRatios[goal]
	if !ok {
		return model.MacroRecommendation{}, fmt.Errorf("unknown goal %q", goal)
	}

	target := tdee
	switch goal {
	case model.GoalLose:
		target = tdee - 500
	case model.GoalGain:
		target = tdee + 500
	}

	proteinCal := int(math.Round(float64(target) * ratios[0]))
	carbsCal := int(math.Round(float64(target) * ratios[1]))
	fatCal := int(math.Round(float64(target) * ratios[2]))

	return model.MacroRecommendation{
		Calories: target,
		Protein: model.MacroTarget{
			Grams:      int(math.Round(float64(proteinCal) / 4)),
			Calories:   proteinCal,
			Percentage: int(math.Round(ratios[0] * 100)),
		},
		Carbs: model.MacroTarget{
			Grams:      int(math.Round(float64(carbsCal) / 4)),
			Calories:   carbsCal,
			Percentage: int(math.Round(ratios[1] * 100)),
		},
		Fat: model.MacroTarget{
			Grams:      int(math.Round(float64(fatCal) / 9)),
			Calories:   fatCal,
			Percentage: int(math.Round(ratios[2] * 100)),
		},
		Goal: goal,
	}, nil
}

// ScaleNutrients scales a food's per-100g nutrients to the given weight.
// Calories round to whole kcal, macros to one decimal.
func ScaleNutrients(food model.FoodItem, weightGrams float64) model.Nutrients {
	mult := weightGrams / 100
	return model.Nutrients{
		Calories: int(math.Round(food.CaloriesPer100g * mult)),
		Protein:  round1(food.ProteinPer100g * mult),
		Carbs:    round1(food.CarbsPer100g * mult),
		Fat:      round1(food.FatPer100g * mult),
	}
}

// AggregateLogs sums the scaled nutrients of each log. Each log's
// contribution is rounded before summing; rounding only the final sum
// produces different totals.
func AggregateLogs(logs []model.FoodLogWithItem) model.Nutrients {
	var total model.Nutrients
	for _, log := range logs {
		n := ScaleNutrients(log.FoodItem, log.WeightGrams)
		total.Calories += n.Calories
		total.Protein = round1(total.Protein + n.Protein)
		total.Carbs = round1(total.Carbs + n.Carbs)
		total.Fat = round1(total.Fat + n.Fat)
	}
	return total
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
