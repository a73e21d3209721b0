package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/terraincognita07/kalori/internal/identity"
	"github.com/terraincognita07/kalori/internal/models"
	"github.com/terraincognita07/kalori/internal/security"
)

var (
	ErrUnauthenticated     = errors.New("unauthenticated")
	ErrCreateUserFailed    = errors.New("create user failed")
	ErrCreateSessionFailed = errors.New("create session failed")
)

const SessionTTL = 7 * 24 * time.Hour

type AuthUserRepository interface {
	FindByID(userID string) (models.User, bool, error)
	FindByEmail(email string) (models.User, bool, error)
	Create(user *models.User) error
}

type SessionRepository interface {
	Create(session *models.Session) error
	FindByTokenHash(tokenHash string) (models.Session, bool, error)
	DeleteByTokenHash(tokenHash string) error
}

type IdentityProvider interface {
	SessionData(ctx context.Context, sessionID string) (identity.SessionData, error)
}

type SessionResult struct {
	User      models.User
	Token     string
	ExpiresAt time.Time
}

type AuthService struct {
	users    AuthUserRepository
	sessions SessionRepository
	identity IdentityProvider
	clock    Clock
}

func NewAuthService(users AuthUserRepository, sessions SessionRepository, identity IdentityProvider, clock Clock) *AuthService {
	return &AuthService{
		users:    users,
		sessions: sessions,
		identity: identity,
		clock:    clock,
	}
}

// Exchange trades a provider session id for a local session, creating the user on first sight.
// Provider failures keep wrapping identity.ErrExchangeFailed.
func (service *AuthService) Exchange(ctx context.Context, sessionID string) (SessionResult, error) {
	data, err := service.identity.SessionData(ctx, sessionID)
	if err != nil {
		return SessionResult{}, err
	}
	data, err = NormalizeIdentity(data)
	if err != nil {
		return SessionResult{}, err
	}

	user, err := service.findOrCreateUser(data)
	if err != nil {
		return SessionResult{}, err
	}

	now := service.clock.Now().UTC()
	session := models.Session{
		TokenHash: security.HashSessionToken(data.SessionToken),
		UserID:    user.ID,
		ExpiresAt: now.Add(SessionTTL),
		CreatedAt: now,
	}
	if err := service.sessions.Create(&session); err != nil {
		// The same provider token exchanged twice keeps its first session while it is live.
		existing, found, lookupErr := service.sessions.FindByTokenHash(session.TokenHash)
		if lookupErr != nil || !found || existing.UserID != user.ID {
			return SessionResult{}, fmt.Errorf("%w: %v", ErrCreateSessionFailed, err)
		}
		if existing.ExpiresAt.After(now) {
			session = existing
		} else if err := service.replaceSession(&session); err != nil {
			return SessionResult{}, err
		}
	}

	return SessionResult{
		User:      user,
		Token:     data.SessionToken,
		ExpiresAt: session.ExpiresAt,
	}, nil
}

func (service *AuthService) replaceSession(session *models.Session) error {
	if err := service.sessions.DeleteByTokenHash(session.TokenHash); err != nil {
		return fmt.Errorf("%w: %v", ErrCreateSessionFailed, err)
	}
	if err := service.sessions.Create(session); err != nil {
		return fmt.Errorf("%w: %v", ErrCreateSessionFailed, err)
	}
	return nil
}

func (service *AuthService) findOrCreateUser(data identity.SessionData) (models.User, error) {
	email := data.Email
	user, found, err := service.users.FindByEmail(email)
	if err != nil {
		return models.User{}, fmt.Errorf("find user by email: %w", err)
	}
	if found {
		return user, nil
	}

	user = models.User{
		ID:        NewUserID(),
		Email:     email,
		Name:      data.Name,
		Picture:   data.Picture,
		WaterGoal: models.DefaultWaterGoal,
		StepGoal:  models.DefaultStepGoal,
		CreatedAt: service.clock.Now().UTC(),
	}
	if err := service.users.Create(&user); err != nil {
		// A concurrent first sign-in may have created the row.
		existing, found, lookupErr := service.users.FindByEmail(email)
		if lookupErr == nil && found {
			return existing, nil
		}
		return models.User{}, fmt.Errorf("%w: %v", ErrCreateUserFailed, err)
	}
	return user, nil
}

// Authenticate resolves a bearer token. Unknown and expired sessions are both ErrUnauthenticated;
// expired rows are left in place.
func (service *AuthService) Authenticate(token string) (models.User, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return models.User{}, ErrUnauthenticated
	}

	session, found, err := service.sessions.FindByTokenHash(security.HashSessionToken(token))
	if err != nil {
		return models.User{}, fmt.Errorf("load session: %w", err)
	}
	if !found || !session.ExpiresAt.After(service.clock.Now()) {
		return models.User{}, ErrUnauthenticated
	}

	user, found, err := service.users.FindByID(session.UserID)
	if err != nil {
		return models.User{}, fmt.Errorf("load session user: %w", err)
	}
	if !found {
		return models.User{}, ErrUnauthenticated
	}
	return user, nil
}

func (service *AuthService) Logout(token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil
	}
	if err := service.sessions.DeleteByTokenHash(security.HashSessionToken(token)); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}
