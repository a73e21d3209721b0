package services

import (
	"errors"
	"testing"

	"github.com/terraincognita07/kalori/internal/models"
)

type stubProfileRepo struct {
	user    models.User
	updates []map[string]any
}

func (stub *stubProfileRepo) FindByID(userID string) (models.User, bool, error) {
	if userID != stub.user.ID {
		return models.User{}, false, nil
	}
	return stub.user, true, nil
}

func (stub *stubProfileRepo) UpdateByID(userID string, updates map[string]any) error {
	stub.updates = append(stub.updates, updates)
	for key, value := range updates {
		switch key {
		case "height":
			v := value.(float64)
			stub.user.Height = &v
		case "weight":
			v := value.(float64)
			stub.user.Weight = &v
		case "age":
			v := value.(int)
			stub.user.Age = &v
		case "gender":
			v := value.(string)
			stub.user.Gender = &v
		case "activity_level":
			v := value.(string)
			stub.user.ActivityLevel = &v
		case "daily_calorie_goal":
			v := value.(int)
			stub.user.DailyCalorieGoal = &v
		case "water_goal":
			stub.user.WaterGoal = value.(int)
		case "step_goal":
			stub.user.StepGoal = value.(int)
		}
	}
	return nil
}

func floatPtr(value float64) *float64 { return &value }
func intPtr(value int) *int           { return &value }
func stringPtr(value string) *string  { return &value }

func TestUpdateProfileComputesGoalWhenAllFivePresent(t *testing.T) {
	repo := &stubProfileRepo{user: models.User{ID: "user_a"}}
	service := NewProfileService(repo)

	user, err := service.UpdateProfile("user_a", ProfileUpdate{
		Height:        floatPtr(180),
		Weight:        floatPtr(75),
		Age:           intPtr(32),
		Gender:        stringPtr("male"),
		ActivityLevel: stringPtr("active"),
	})
	if err != nil {
		t.Fatalf("UpdateProfile() unexpected error: %v", err)
	}
	if user.DailyCalorieGoal == nil || *user.DailyCalorieGoal != 3062 {
		t.Fatalf("daily calorie goal = %v, want 3062", user.DailyCalorieGoal)
	}
}

func TestUpdateProfileGateIsPerCall(t *testing.T) {
	repo := &stubProfileRepo{user: models.User{ID: "user_a"}}
	service := NewProfileService(repo)

	if _, err := service.UpdateProfile("user_a", ProfileUpdate{Height: floatPtr(180), Weight: floatPtr(75), Age: intPtr(32)}); err != nil {
		t.Fatalf("UpdateProfile() unexpected error: %v", err)
	}
	user, err := service.UpdateProfile("user_a", ProfileUpdate{Gender: stringPtr("male"), ActivityLevel: stringPtr("active")})
	if err != nil {
		t.Fatalf("UpdateProfile() unexpected error: %v", err)
	}

	if user.DailyCalorieGoal != nil {
		t.Fatalf("goal recomputed from accumulated fields: %d", *user.DailyCalorieGoal)
	}
	if user.Height == nil || *user.Height != 180 || user.Gender == nil || *user.Gender != "male" {
		t.Fatalf("partial fields not persisted: %#v", user)
	}
	for _, updates := range repo.updates {
		if _, ok := updates["daily_calorie_goal"]; ok {
			t.Fatal("partial update must not write daily_calorie_goal")
		}
	}
}

func TestUpdateProfileValidation(t *testing.T) {
	service := NewProfileService(&stubProfileRepo{user: models.User{ID: "user_a"}})

	tests := []struct {
		name   string
		update ProfileUpdate
		want   error
	}{
		{name: "zero height", update: ProfileUpdate{Height: floatPtr(0)}, want: ErrInvalidHeight},
		{name: "negative weight", update: ProfileUpdate{Weight: floatPtr(-3)}, want: ErrInvalidWeight},
		{name: "zero age", update: ProfileUpdate{Age: intPtr(0)}, want: ErrInvalidAge},
		{name: "unknown gender", update: ProfileUpdate{Gender: stringPtr("robot")}, want: ErrInvalidGender},
		{name: "unknown activity", update: ProfileUpdate{ActivityLevel: stringPtr("couch")}, want: ErrInvalidActivityLevel},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if _, err := service.UpdateProfile("user_a", test.update); !errors.Is(err, test.want) {
				t.Fatalf("UpdateProfile() error = %v, want %v", err, test.want)
			}
		})
	}
}

func TestUpdateGoalsPartial(t *testing.T) {
	repo := &stubProfileRepo{user: models.User{ID: "user_a", WaterGoal: models.DefaultWaterGoal, StepGoal: models.DefaultStepGoal}}
	service := NewProfileService(repo)

	user, err := service.UpdateGoals("user_a", GoalsUpdate{WaterGoal: intPtr(3000)})
	if err != nil {
		t.Fatalf("UpdateGoals() unexpected error: %v", err)
	}
	if user.WaterGoal != 3000 || user.StepGoal != models.DefaultStepGoal {
		t.Fatalf("UpdateGoals() = water %d steps %d", user.WaterGoal, user.StepGoal)
	}

	if _, err := service.UpdateGoals("user_a", GoalsUpdate{StepGoal: intPtr(0)}); !errors.Is(err, ErrInvalidStepGoal) {
		t.Fatalf("expected ErrInvalidStepGoal, got %v", err)
	}
}

func TestProfileUnknownUser(t *testing.T) {
	service := NewProfileService(&stubProfileRepo{user: models.User{ID: "user_a"}})

	if _, err := service.Profile("user_missing"); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
