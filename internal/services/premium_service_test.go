package services

import (
	"errors"
	"testing"
	"time"

	"github.com/terraincognita07/kalori/internal/models"
)

type stubPremiumRepo struct {
	user    models.User
	grants  int
	expires int
}

func (stub *stubPremiumRepo) FindByID(userID string) (models.User, bool, error) {
	if userID != stub.user.ID {
		return models.User{}, false, nil
	}
	return stub.user, true, nil
}

func (stub *stubPremiumRepo) IncrementAdsWatched(userID string, delta int) (int, error) {
	if userID != stub.user.ID {
		return 0, errors.New("record not found")
	}
	stub.user.AdsWatched += delta
	return stub.user.AdsWatched, nil
}

func (stub *stubPremiumRepo) GrantPremium(userID string, expiresAt time.Time) error {
	stub.grants++
	stub.user.IsPremium = true
	stub.user.PremiumExpiresAt = &expiresAt
	return nil
}

func (stub *stubPremiumRepo) ExpirePremium(userID string, now time.Time) (bool, error) {
	if !stub.user.IsPremium || stub.user.PremiumExpiresAt == nil || !stub.user.PremiumExpiresAt.Before(now) {
		return false, nil
	}
	stub.expires++
	stub.user.IsPremium = false
	return true, nil
}

func TestWatchThreeAdsAtOnceGrantsOnce(t *testing.T) {
	now := time.Date(2026, time.October, 16, 10, 0, 0, 0, time.UTC)
	repo := &stubPremiumRepo{user: models.User{ID: "user_a"}}
	service := NewPremiumService(repo, &fixedClock{now: now})

	result, err := service.WatchAds("user_a", 3)
	if err != nil {
		t.Fatalf("WatchAds() unexpected error: %v", err)
	}
	if !result.PremiumGranted || !result.IsPremium || result.AdsWatched != 3 {
		t.Fatalf("WatchAds(3) = %#v", result)
	}
	if result.PremiumExpiresAt == nil || !result.PremiumExpiresAt.Equal(now.Add(24*time.Hour)) {
		t.Fatalf("expiry = %v, want now+24h", result.PremiumExpiresAt)
	}
	if repo.grants != 1 {
		t.Fatalf("grants = %d, want 1", repo.grants)
	}
	if result.AdsNeededForNext != 3 {
		t.Fatalf("ads needed = %d, want 3", result.AdsNeededForNext)
	}
}

func TestWatchAdsOneAtATimeGrantsOnThirdCall(t *testing.T) {
	repo := &stubPremiumRepo{user: models.User{ID: "user_a"}}
	service := NewPremiumService(repo, &fixedClock{now: time.Date(2026, time.October, 16, 10, 0, 0, 0, time.UTC)})

	wantNeeded := []int{2, 1, 3, 2}
	for call := 1; call <= 4; call++ {
		result, err := service.WatchAds("user_a", 1)
		if err != nil {
			t.Fatalf("WatchAds() call %d unexpected error: %v", call, err)
		}
		if result.PremiumGranted != (call == 3) {
			t.Fatalf("call %d premium granted = %v", call, result.PremiumGranted)
		}
		if result.AdsNeededForNext != wantNeeded[call-1] {
			t.Fatalf("call %d ads needed = %d, want %d", call, result.AdsNeededForNext, wantNeeded[call-1])
		}
	}
	if repo.grants != 1 {
		t.Fatalf("grants = %d, want exactly 1", repo.grants)
	}
}

func TestWatchAdsBatchJumpingThresholdGrantsOnce(t *testing.T) {
	repo := &stubPremiumRepo{user: models.User{ID: "user_a", AdsWatched: 2}}
	service := NewPremiumService(repo, &fixedClock{now: time.Now().UTC()})

	result, err := service.WatchAds("user_a", 7)
	if err != nil {
		t.Fatalf("WatchAds() unexpected error: %v", err)
	}
	if !result.PremiumGranted || repo.grants != 1 || result.AdsWatched != 9 {
		t.Fatalf("WatchAds(7) = %#v grants=%d", result, repo.grants)
	}
}

func TestWatchAdsKeepsLongerEntitlement(t *testing.T) {
	now := time.Date(2026, time.October, 16, 10, 0, 0, 0, time.UTC)
	longer := now.Add(20 * 24 * time.Hour)
	repo := &stubPremiumRepo{user: models.User{ID: "user_a", AdsWatched: 2, IsPremium: true, PremiumExpiresAt: &longer}}
	service := NewPremiumService(repo, &fixedClock{now: now})

	result, err := service.WatchAds("user_a", 1)
	if err != nil {
		t.Fatalf("WatchAds() unexpected error: %v", err)
	}
	if result.PremiumExpiresAt == nil || !result.PremiumExpiresAt.Equal(longer) {
		t.Fatalf("expiry = %v, want %v", result.PremiumExpiresAt, longer)
	}
}

func TestWatchAdsRejectsInvalidCount(t *testing.T) {
	service := NewPremiumService(&stubPremiumRepo{user: models.User{ID: "user_a"}}, &fixedClock{now: time.Now().UTC()})

	for _, count := range []int{0, -1, maxAdsPerWatch + 1} {
		if _, err := service.WatchAds("user_a", count); !errors.Is(err, ErrInvalidAdCount) {
			t.Fatalf("WatchAds(%d) expected ErrInvalidAdCount, got %v", count, err)
		}
	}
}

func TestActivatePremiumThirtyDays(t *testing.T) {
	now := time.Date(2026, time.October, 16, 10, 0, 0, 0, time.UTC)
	repo := &stubPremiumRepo{user: models.User{ID: "user_a"}}
	service := NewPremiumService(repo, &fixedClock{now: now})

	status, err := service.Activate("user_a")
	if err != nil {
		t.Fatalf("Activate() unexpected error: %v", err)
	}
	if !status.IsPremium || status.PremiumExpiresAt == nil || !status.PremiumExpiresAt.Equal(now.Add(30*24*time.Hour)) {
		t.Fatalf("Activate() = %#v", status)
	}
}

func TestPremiumStatusExpiresLazily(t *testing.T) {
	now := time.Date(2026, time.October, 16, 10, 0, 0, 0, time.UTC)
	past := now.Add(-time.Minute)
	repo := &stubPremiumRepo{user: models.User{ID: "user_a", IsPremium: true, PremiumExpiresAt: &past, AdsWatched: 4}}
	service := NewPremiumService(repo, &fixedClock{now: now})

	status, err := service.Status("user_a")
	if err != nil {
		t.Fatalf("Status() unexpected error: %v", err)
	}
	if status.IsPremium {
		t.Fatal("expired premium reported as active")
	}
	if repo.expires != 1 || repo.user.IsPremium {
		t.Fatalf("expected expiry write-back, expires=%d stored=%v", repo.expires, repo.user.IsPremium)
	}
	if status.AdsWatched != 4 || status.AdsNeededForNext != 2 {
		t.Fatalf("Status() counters = %#v", status)
	}

	if _, err := service.Status("user_a"); err != nil {
		t.Fatalf("Status() unexpected error: %v", err)
	}
	if repo.expires != 1 {
		t.Fatalf("second read wrote again, expires=%d", repo.expires)
	}
}

func TestProjectPremium(t *testing.T) {
	now := time.Date(2026, time.October, 16, 10, 0, 0, 0, time.UTC)
	future := now.Add(time.Hour)
	past := now.Add(-time.Hour)

	tests := []struct {
		name          string
		state         PremiumState
		wantPremium   bool
		wantWriteBack bool
	}{
		{name: "free", state: PremiumState{}, wantPremium: false, wantWriteBack: false},
		{name: "active", state: PremiumState{IsPremium: true, ExpiresAt: &future}, wantPremium: true, wantWriteBack: false},
		{name: "expired", state: PremiumState{IsPremium: true, ExpiresAt: &past}, wantPremium: false, wantWriteBack: true},
		{name: "no expiry", state: PremiumState{IsPremium: true}, wantPremium: true, wantWriteBack: false},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, writeBack := ProjectPremium(test.state, now)
			if got.IsPremium != test.wantPremium || writeBack != test.wantWriteBack {
				t.Fatalf("ProjectPremium() = %v, %v", got.IsPremium, writeBack)
			}
		})
	}
}
