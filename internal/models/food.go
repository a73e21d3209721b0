package models

type FoodItem struct {
	ID       string  `json:"food_id"`
	Name     string  `json:"name"`
	Serving  string  `json:"serving"`
	Calories int     `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

// FoodAnalysis is a macro estimate for a single photographed dish.
type FoodAnalysis struct {
	Calories    int     `json:"calories"`
	Protein     float64 `json:"protein"`
	Carbs       float64 `json:"carbs"`
	Fat         float64 `json:"fat"`
	Description string  `json:"description"`
}
