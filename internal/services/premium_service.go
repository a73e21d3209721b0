package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/terraincognita07/kalori/internal/models"
)

var (
	ErrInvalidAdCount      = errors.New("invalid ad count")
	ErrPremiumUpdateFailed = errors.New("premium update failed")
)

const (
	AdsPerPremiumGrant      = 3
	AdPremiumDuration       = 24 * time.Hour
	ActivatePremiumDuration = 30 * 24 * time.Hour
	maxAdsPerWatch          = 10
)

type PremiumUserRepository interface {
	FindByID(userID string) (models.User, bool, error)
	IncrementAdsWatched(userID string, delta int) (int, error)
	GrantPremium(userID string, expiresAt time.Time) error
	ExpirePremium(userID string, now time.Time) (bool, error)
}

type PremiumState struct {
	IsPremium bool
	ExpiresAt *time.Time
}

type PremiumStatus struct {
	IsPremium        bool       `json:"is_premium"`
	PremiumExpiresAt *time.Time `json:"premium_expires_at"`
	AdsWatched       int        `json:"ads_watched"`
	AdsNeededForNext int        `json:"ads_needed_for_next"`
}

type AdWatchResult struct {
	AdsWatched       int        `json:"ads_watched"`
	PremiumGranted   bool       `json:"premium_granted"`
	IsPremium        bool       `json:"is_premium"`
	PremiumExpiresAt *time.Time `json:"premium_expires_at"`
	AdsNeededForNext int        `json:"ads_needed_for_next"`
}

func PremiumStateOf(user models.User) PremiumState {
	return PremiumState{IsPremium: user.IsPremium, ExpiresAt: user.PremiumExpiresAt}
}

// ProjectPremium returns the entitlement as of now. The bool reports a stored premium flag
// whose expiry has passed and must be cleared.
func ProjectPremium(state PremiumState, now time.Time) (PremiumState, bool) {
	if !state.IsPremium {
		return state, false
	}
	if state.ExpiresAt != nil && state.ExpiresAt.Before(now) {
		state.IsPremium = false
		return state, true
	}
	return state, false
}

func AdsNeededForNext(adsWatched int) int {
	return AdsPerPremiumGrant - adsWatched%AdsPerPremiumGrant
}

// CrossesAdThreshold reports whether a watch batch lifts the lifetime counter past the grant
// threshold. Only the first crossing counts, however large the batch.
func CrossesAdThreshold(before int, after int) bool {
	return before < AdsPerPremiumGrant && after >= AdsPerPremiumGrant
}

type PremiumService struct {
	users PremiumUserRepository
	clock Clock
}

func NewPremiumService(users PremiumUserRepository, clock Clock) *PremiumService {
	return &PremiumService{users: users, clock: clock}
}

func (service *PremiumService) WatchAds(userID string, count int) (AdWatchResult, error) {
	if count < 1 || count > maxAdsPerWatch {
		return AdWatchResult{}, ErrInvalidAdCount
	}

	adsWatched, err := service.users.IncrementAdsWatched(userID, count)
	if err != nil {
		return AdWatchResult{}, fmt.Errorf("%w: %v", ErrPremiumUpdateFailed, err)
	}

	now := service.clock.Now().UTC()
	result := AdWatchResult{
		AdsWatched:       adsWatched,
		AdsNeededForNext: AdsNeededForNext(adsWatched),
	}

	user, found, err := service.users.FindByID(userID)
	if err != nil {
		return AdWatchResult{}, fmt.Errorf("%w: %v", ErrPremiumUpdateFailed, err)
	}
	if !found {
		return AdWatchResult{}, ErrUserNotFound
	}
	state, _ := ProjectPremium(PremiumStateOf(user), now)

	if CrossesAdThreshold(adsWatched-count, adsWatched) {
		expiresAt := now.Add(AdPremiumDuration)
		// An existing longer entitlement is kept.
		if state.IsPremium && state.ExpiresAt != nil && state.ExpiresAt.After(expiresAt) {
			expiresAt = *state.ExpiresAt
		}
		if err := service.users.GrantPremium(userID, expiresAt); err != nil {
			return AdWatchResult{}, fmt.Errorf("%w: %v", ErrPremiumUpdateFailed, err)
		}
		state = PremiumState{IsPremium: true, ExpiresAt: &expiresAt}
		result.PremiumGranted = true
	}

	result.IsPremium = state.IsPremium
	result.PremiumExpiresAt = state.ExpiresAt
	return result, nil
}

func (service *PremiumService) Activate(userID string) (PremiumStatus, error) {
	expiresAt := service.clock.Now().UTC().Add(ActivatePremiumDuration)
	if err := service.users.GrantPremium(userID, expiresAt); err != nil {
		return PremiumStatus{}, fmt.Errorf("%w: %v", ErrPremiumUpdateFailed, err)
	}
	return service.Status(userID)
}

// Status clears an expired premium flag in the store before reporting it.
func (service *PremiumService) Status(userID string) (PremiumStatus, error) {
	user, found, err := service.users.FindByID(userID)
	if err != nil {
		return PremiumStatus{}, fmt.Errorf("load premium state: %w", err)
	}
	if !found {
		return PremiumStatus{}, ErrUserNotFound
	}

	now := service.clock.Now().UTC()
	state, expired := ProjectPremium(PremiumStateOf(user), now)
	if expired {
		if _, err := service.users.ExpirePremium(userID, now); err != nil {
			return PremiumStatus{}, fmt.Errorf("%w: %v", ErrPremiumUpdateFailed, err)
		}
	}

	return PremiumStatus{
		IsPremium:        state.IsPremium,
		PremiumExpiresAt: state.ExpiresAt,
		AdsWatched:       user.AdsWatched,
		AdsNeededForNext: AdsNeededForNext(user.AdsWatched),
	}, nil
}

// HasActivePremium is the read-only check used by gated features.
func HasActivePremium(user models.User, now time.Time) bool {
	state, _ := ProjectPremium(PremiumStateOf(user), now)
	return state.IsPremium
}
