package i18n

import "github.com/terraincognita07/kalori/internal/models"

type foodEntry struct {
	id       string
	calories int
	protein  float64
	carbs    float64
	fat      float64
}

// Values are per serving as labelled in the locale files.
var builtinFoods = []foodEntry{
	{id: "egg", calories: 78, protein: 6.3, carbs: 0.6, fat: 5.3},
	{id: "white_cheese", calories: 93, protein: 5.4, carbs: 0.9, fat: 7.5},
	{id: "olives", calories: 58, protein: 0.4, carbs: 1.5, fat: 6.1},
	{id: "simit", calories: 275, protein: 8.5, carbs: 52, fat: 4},
	{id: "whole_wheat_bread", calories: 69, protein: 3.6, carbs: 12, fat: 0.9},
	{id: "lentil_soup", calories: 180, protein: 9, carbs: 28, fat: 3.5},
	{id: "rice_pilaf", calories: 206, protein: 4, carbs: 40, fat: 3.5},
	{id: "bulgur_pilaf", calories: 151, protein: 5.6, carbs: 34, fat: 0.4},
	{id: "chicken_breast", calories: 165, protein: 31, carbs: 0, fat: 3.6},
	{id: "kofte", calories: 250, protein: 18, carbs: 6, fat: 17},
	{id: "salmon", calories: 208, protein: 20, carbs: 0, fat: 13},
	{id: "yogurt", calories: 61, protein: 3.5, carbs: 4.7, fat: 3.3},
	{id: "ayran", calories: 76, protein: 3.4, carbs: 5.6, fat: 4.2},
	{id: "shepherd_salad", calories: 90, protein: 1.5, carbs: 8, fat: 6},
	{id: "banana", calories: 105, protein: 1.3, carbs: 27, fat: 0.4},
	{id: "apple", calories: 95, protein: 0.5, carbs: 25, fat: 0.3},
	{id: "oatmeal", calories: 150, protein: 5, carbs: 27, fat: 2.5},
	{id: "almonds", calories: 164, protein: 6, carbs: 6, fat: 14},
}

var builtinVitamins = []string{"vit_c", "vit_d", "vit_omega3", "vit_magnesium", "vit_zinc"}

func (manager *Manager) FoodDatabase(language string) []models.FoodItem {
	items := make([]models.FoodItem, 0, len(builtinFoods))
	for _, food := range builtinFoods {
		items = append(items, models.FoodItem{
			ID:       food.id,
			Name:     manager.Translate(language, "food."+food.id+".name"),
			Serving:  manager.Translate(language, "food."+food.id+".serving"),
			Calories: food.calories,
			Protein:  food.protein,
			Carbs:    food.carbs,
			Fat:      food.fat,
		})
	}
	return items
}

func (manager *Manager) VitaminTemplates(language string) []models.VitaminTemplate {
	templates := make([]models.VitaminTemplate, 0, len(builtinVitamins))
	for _, id := range builtinVitamins {
		templates = append(templates, models.VitaminTemplate{
			ID:          id,
			Name:        manager.Translate(language, "vitamin."+id+".name"),
			DefaultTime: manager.Translate(language, "vitamin."+id+".time"),
		})
	}
	return templates
}
