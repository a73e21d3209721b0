package services

import (
	"errors"
	"testing"
	"time"

	"github.com/terraincognita07/kalori/internal/models"
)

type stubDietRepo struct {
	catalog    map[string]models.DietPlan
	userDiets  []models.UserDiet
	lastFilter string
	upserted   int
}

func newStubDietRepo(plans ...models.DietPlan) *stubDietRepo {
	repo := &stubDietRepo{catalog: map[string]models.DietPlan{}}
	for _, plan := range plans {
		repo.catalog[plan.ID] = plan
	}
	return repo
}

func (stub *stubDietRepo) ListCatalog(category string) ([]models.DietPlan, error) {
	stub.lastFilter = category
	result := make([]models.DietPlan, 0)
	for _, plan := range stub.catalog {
		if category == "" || string(plan.Category) == category {
			result = append(result, plan)
		}
	}
	return result, nil
}

func (stub *stubDietRepo) FindCatalogByID(dietID string) (models.DietPlan, bool, error) {
	plan, ok := stub.catalog[dietID]
	return plan, ok, nil
}

func (stub *stubDietRepo) CountCatalog() (int64, error) {
	return int64(len(stub.catalog)), nil
}

func (stub *stubDietRepo) UpsertCatalog(plans []models.DietPlan) error {
	for _, plan := range plans {
		stub.catalog[plan.ID] = plan
		stub.upserted++
	}
	return nil
}

func (stub *stubDietRepo) ListUserDiets(userID string) ([]models.UserDiet, error) {
	result := make([]models.UserDiet, 0)
	for _, diet := range stub.userDiets {
		if diet.UserID == userID {
			result = append(result, diet)
		}
	}
	return result, nil
}

func (stub *stubDietRepo) CreateUserDiet(diet *models.UserDiet) error {
	stub.userDiets = append(stub.userDiets, *diet)
	return nil
}

func (stub *stubDietRepo) DeleteUserDiet(userID string, userDietID string) (bool, error) {
	for index, diet := range stub.userDiets {
		if diet.UserID == userID && diet.ID == userDietID {
			stub.userDiets = append(stub.userDiets[:index], stub.userDiets[index+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (stub *stubDietRepo) ActivateUserDiet(userID string, userDietID string, startedAt time.Time) (bool, error) {
	target := -1
	for index, diet := range stub.userDiets {
		if diet.UserID == userID && diet.ID == userDietID {
			target = index
		}
	}
	if target < 0 {
		return false, nil
	}
	for index := range stub.userDiets {
		if stub.userDiets[index].UserID == userID {
			stub.userDiets[index].IsActive = false
		}
	}
	stub.userDiets[target].IsActive = true
	stub.userDiets[target].StartedAt = &startedAt
	return true, nil
}

var testKeto = models.DietPlan{ID: "keto", Name: "Keto", DurationDays: 30, CaloriesPerDay: 1800, IsPremium: true, Category: models.DietCategoryWeightLoss}
var testFree = models.DietPlan{ID: "free", Name: "Free", DurationDays: 7, CaloriesPerDay: 2000, Category: models.DietCategoryBalanced}

func TestAdoptPremiumDietRequiresActivePremium(t *testing.T) {
	now := time.Date(2026, time.October, 16, 10, 0, 0, 0, time.UTC)
	service := NewDietService(newStubDietRepo(testKeto), &fixedClock{now: now})

	_, err := service.CreateUserDiet(models.User{ID: "user_a"}, CreateUserDietInput{DietID: "keto"})
	if !errors.Is(err, ErrPremiumRequired) {
		t.Fatalf("expected ErrPremiumRequired, got %v", err)
	}

	expired := now.Add(-time.Hour)
	_, err = service.CreateUserDiet(models.User{ID: "user_a", IsPremium: true, PremiumExpiresAt: &expired}, CreateUserDietInput{DietID: "keto"})
	if !errors.Is(err, ErrPremiumRequired) {
		t.Fatalf("expected ErrPremiumRequired for expired premium, got %v", err)
	}

	valid := now.Add(time.Hour)
	diet, err := service.CreateUserDiet(models.User{ID: "user_a", IsPremium: true, PremiumExpiresAt: &valid}, CreateUserDietInput{DietID: "keto"})
	if err != nil {
		t.Fatalf("CreateUserDiet() unexpected error: %v", err)
	}
	if diet.DietID == nil || *diet.DietID != "keto" || diet.Name != "Keto" || diet.CaloriesPerDay != 1800 || diet.IsCustom {
		t.Fatalf("adopted diet = %#v", diet)
	}
}

func TestAdoptUnknownDiet(t *testing.T) {
	service := NewDietService(newStubDietRepo(), &fixedClock{now: time.Now().UTC()})

	if _, err := service.CreateUserDiet(models.User{ID: "user_a"}, CreateUserDietInput{DietID: "missing"}); !errors.Is(err, ErrDietNotFound) {
		t.Fatalf("expected ErrDietNotFound, got %v", err)
	}
}

func TestCreateCustomDietAndActivate(t *testing.T) {
	repo := newStubDietRepo(testFree)
	service := NewDietService(repo, &fixedClock{now: time.Now().UTC()})
	user := models.User{ID: "user_a"}

	first, err := service.CreateUserDiet(user, CreateUserDietInput{DietID: "free", Activate: true})
	if err != nil {
		t.Fatalf("CreateUserDiet() unexpected error: %v", err)
	}
	if !first.IsActive {
		t.Fatal("expected adopted diet to be active")
	}

	second, err := service.CreateUserDiet(user, CreateUserDietInput{Name: "Mine", CaloriesPerDay: 1600, DurationDays: 21, Activate: true})
	if err != nil {
		t.Fatalf("CreateUserDiet() unexpected error: %v", err)
	}
	if !second.IsCustom {
		t.Fatal("expected custom diet")
	}

	active := 0
	for _, diet := range repo.userDiets {
		if diet.IsActive {
			active++
			if diet.ID != second.ID {
				t.Fatalf("active diet = %s, want %s", diet.ID, second.ID)
			}
		}
	}
	if active != 1 {
		t.Fatalf("active diets = %d, want 1", active)
	}
}

func TestCreateCustomDietValidation(t *testing.T) {
	service := NewDietService(newStubDietRepo(), &fixedClock{now: time.Now().UTC()})
	user := models.User{ID: "user_a"}

	tests := []struct {
		name  string
		input CreateUserDietInput
		want  error
	}{
		{name: "missing name", input: CreateUserDietInput{CaloriesPerDay: 1500, DurationDays: 10}, want: ErrInvalidDietName},
		{name: "zero calories", input: CreateUserDietInput{Name: "x", DurationDays: 10}, want: ErrInvalidDietCalories},
		{name: "zero duration", input: CreateUserDietInput{Name: "x", CaloriesPerDay: 1500}, want: ErrInvalidDietDuration},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if _, err := service.CreateUserDiet(user, test.input); !errors.Is(err, test.want) {
				t.Fatalf("CreateUserDiet() error = %v, want %v", err, test.want)
			}
		})
	}
}

func TestActivateAndDeleteUnknownUserDiet(t *testing.T) {
	service := NewDietService(newStubDietRepo(), &fixedClock{now: time.Now().UTC()})

	if err := service.ActivateUserDiet("user_a", "diet_missing"); !errors.Is(err, ErrDietNotFound) {
		t.Fatalf("ActivateUserDiet() expected ErrDietNotFound, got %v", err)
	}
	if err := service.DeleteUserDiet("user_a", "diet_missing"); !errors.Is(err, ErrDietNotFound) {
		t.Fatalf("DeleteUserDiet() expected ErrDietNotFound, got %v", err)
	}
}

func TestCatalogCategoryFilter(t *testing.T) {
	repo := newStubDietRepo(testKeto, testFree)
	service := NewDietService(repo, &fixedClock{now: time.Now().UTC()})

	plans, err := service.Catalog(" Weight_Loss ")
	if err != nil {
		t.Fatalf("Catalog() unexpected error: %v", err)
	}
	if repo.lastFilter != "weight_loss" || len(plans) != 1 || plans[0].ID != "keto" {
		t.Fatalf("Catalog() filter=%q plans=%#v", repo.lastFilter, plans)
	}

	if _, err := service.Catalog("paleo"); !errors.Is(err, ErrInvalidDietCategory) {
		t.Fatalf("expected ErrInvalidDietCategory, got %v", err)
	}
}

func TestSeedDefaultCatalogOnlyWhenEmpty(t *testing.T) {
	repo := newStubDietRepo()
	service := NewDietService(repo, &fixedClock{now: time.Now().UTC()})

	seeded, err := service.SeedDefaultCatalog()
	if err != nil {
		t.Fatalf("SeedDefaultCatalog() unexpected error: %v", err)
	}
	if seeded != len(DefaultDietCatalog()) || len(repo.catalog) != seeded {
		t.Fatalf("seeded = %d, catalog = %d", seeded, len(repo.catalog))
	}

	seeded, err = service.SeedDefaultCatalog()
	if err != nil {
		t.Fatalf("SeedDefaultCatalog() unexpected error: %v", err)
	}
	if seeded != 0 {
		t.Fatalf("second seed wrote %d plans, want 0", seeded)
	}
}

func TestImportCatalogValidatesAndNormalizes(t *testing.T) {
	repo := newStubDietRepo()
	service := NewDietService(repo, &fixedClock{now: time.Now().UTC()})

	err := service.ImportCatalog([]models.DietPlan{{ID: " paleo ", Name: "Paleo", DurationDays: 10, CaloriesPerDay: 2100, Category: "Caveman",
		Days: []models.DietDay{{Day: 1, Meals: []models.DietMeal{{MealType: "elevenses", Name: "Nuts", Calories: 200}}}}}})
	if err != nil {
		t.Fatalf("ImportCatalog() unexpected error: %v", err)
	}
	plan := repo.catalog["paleo"]
	if plan.Category != models.DietCategoryOther || plan.Days[0].Meals[0].MealType != models.MealTypeSnack {
		t.Fatalf("imported plan = %#v", plan)
	}

	if err := service.ImportCatalog([]models.DietPlan{{ID: "x", Name: "X"}}); !errors.Is(err, ErrInvalidDietPlan) {
		t.Fatalf("expected ErrInvalidDietPlan, got %v", err)
	}
}
