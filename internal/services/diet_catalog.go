package services

import "github.com/terraincognita07/kalori/internal/models"

// DefaultDietCatalog is inserted on first start when no plans exist.
func DefaultDietCatalog() []models.DietPlan {
	return []models.DietPlan{
		{
			ID:             "keto",
			Name:           "Keto Diyeti",
			Description:    "Düşük karbonhidrat, yüksek yağ",
			DurationDays:   30,
			CaloriesPerDay: 1800,
			IsPremium:      true,
			Category:       models.DietCategoryWeightLoss,
			ImageURL:       "https://images.unsplash.com/photo-1490645935967-10de6ba17061?w=400",
			Days: []models.DietDay{{Day: 1, Meals: []models.DietMeal{
				{MealType: models.MealTypeBreakfast, Name: "Peynirli omlet", Calories: 450},
				{MealType: models.MealTypeLunch, Name: "Izgara tavuk ve avokado salatası", Calories: 650},
				{MealType: models.MealTypeDinner, Name: "Fırında somon ve brokoli", Calories: 600},
				{MealType: models.MealTypeSnack, Name: "Ceviz", Calories: 100},
			}}},
		},
		{
			ID:             "mediterranean",
			Name:           "Akdeniz Diyeti",
			Description:    "Dengeli ve sağlıklı beslenme",
			DurationDays:   30,
			CaloriesPerDay: 2000,
			IsPremium:      true,
			Category:       models.DietCategoryBalanced,
			ImageURL:       "https://images.unsplash.com/photo-1512621776951-a57141f2eefd?w=400",
			Days: []models.DietDay{{Day: 1, Meals: []models.DietMeal{
				{MealType: models.MealTypeBreakfast, Name: "Zeytin, beyaz peynir ve tam buğday ekmeği", Calories: 450},
				{MealType: models.MealTypeLunch, Name: "Zeytinyağlı fasulye ve bulgur pilavı", Calories: 650},
				{MealType: models.MealTypeDinner, Name: "Izgara levrek ve çoban salata", Calories: 700},
				{MealType: models.MealTypeSnack, Name: "Yoğurt ve bal", Calories: 200},
			}}},
		},
		{
			ID:             "muscle-gain",
			Name:           "Kas Yapma Diyeti",
			Description:    "Yüksek protein, orta karbonhidrat",
			DurationDays:   60,
			CaloriesPerDay: 2500,
			IsPremium:      true,
			Category:       models.DietCategoryMuscleGain,
			ImageURL:       "https://images.unsplash.com/photo-1546069901-ba9599a7e63c?w=400",
			Days: []models.DietDay{{Day: 1, Meals: []models.DietMeal{
				{MealType: models.MealTypeBreakfast, Name: "Yulaf, muz ve yumurta", Calories: 700},
				{MealType: models.MealTypeLunch, Name: "Tavuk göğsü ve pirinç", Calories: 800},
				{MealType: models.MealTypeDinner, Name: "Kırmızı et ve tatlı patates", Calories: 750},
				{MealType: models.MealTypeSnack, Name: "Lor peyniri", Calories: 250},
			}}},
		},
		{
			ID:             "vegetarian",
			Name:           "Vejetaryen Diyeti",
			Description:    "Bitkisel protein kaynakları",
			DurationDays:   30,
			CaloriesPerDay: 1900,
			IsPremium:      true,
			Category:       models.DietCategoryVegetarian,
			ImageURL:       "https://images.unsplash.com/photo-1540420773420-3366772f4999?w=400",
			Days: []models.DietDay{{Day: 1, Meals: []models.DietMeal{
				{MealType: models.MealTypeBreakfast, Name: "Menemen ve tam buğday ekmeği", Calories: 450},
				{MealType: models.MealTypeLunch, Name: "Mercimek köftesi ve ayran", Calories: 600},
				{MealType: models.MealTypeDinner, Name: "Nohutlu sebze güveç", Calories: 650},
				{MealType: models.MealTypeSnack, Name: "Badem ve kuru kayısı", Calories: 200},
			}}},
		},
		{
			ID:             "balanced-start",
			Name:           "Dengeli Başlangıç",
			Description:    "Porsiyon kontrolü ile dengeli bir ilk hafta",
			DurationDays:   7,
			CaloriesPerDay: 2000,
			IsPremium:      false,
			Category:       models.DietCategoryBalanced,
			Days: []models.DietDay{{Day: 1, Meals: []models.DietMeal{
				{MealType: models.MealTypeBreakfast, Name: "Haşlanmış yumurta, domates ve salatalık", Calories: 400},
				{MealType: models.MealTypeLunch, Name: "Mercimek çorbası ve salata", Calories: 550},
				{MealType: models.MealTypeDinner, Name: "Izgara köfte ve yoğurt", Calories: 750},
				{MealType: models.MealTypeSnack, Name: "Elma", Calories: 100},
			}}},
		},
	}
}
