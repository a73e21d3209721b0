package db

import "gorm.io/gorm"

type Repositories struct {
	Users     *UserRepository
	Sessions  *SessionRepository
	Meals     *MealRepository
	WaterLogs *WaterLogRepository
	StepLogs  *StepLogRepository
	Vitamins  *VitaminRepository
	Diets     *DietRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Users:     NewUserRepository(database),
		Sessions:  NewSessionRepository(database),
		Meals:     NewMealRepository(database),
		WaterLogs: NewWaterLogRepository(database),
		StepLogs:  NewStepLogRepository(database),
		Vitamins:  NewVitaminRepository(database),
		Diets:     NewDietRepository(database),
	}
}
