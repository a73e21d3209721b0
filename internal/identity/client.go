package identity

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

var ErrExchangeFailed = errors.New("session exchange failed")

const (
	SessionIDHeader = "X-Session-ID"
	defaultTimeout  = 30 * time.Second
)

type SessionData struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	Name         string `json:"name"`
	Picture      string `json:"picture"`
	SessionToken string `json:"session_token"`
}

// Client exchanges a one-time session id from the identity provider for the user's data.
type Client struct {
	sessionURL string
	timeout    time.Duration
}

func NewClient(sessionURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		sessionURL: strings.TrimSpace(sessionURL),
		timeout:    timeout,
	}
}

func (client *Client) SessionData(ctx context.Context, sessionID string) (SessionData, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return SessionData{}, fmt.Errorf("%w: empty session id", ErrExchangeFailed)
	}
	if err := ctx.Err(); err != nil {
		return SessionData{}, fmt.Errorf("%w: %v", ErrExchangeFailed, err)
	}

	timeout := client.timeout
	if deadline, ok := ctx.Deadline(); ok {
		if remaining := time.Until(deadline); remaining < timeout {
			timeout = remaining
		}
	}

	var data SessionData
	agent := fiber.Get(client.sessionURL).
		Set(SessionIDHeader, sessionID).
		Set(fiber.HeaderAccept, fiber.MIMEApplicationJSON).
		Timeout(timeout)
	status, _, errs := agent.Struct(&data)
	if len(errs) > 0 {
		return SessionData{}, fmt.Errorf("%w: %v", ErrExchangeFailed, errors.Join(errs...))
	}
	if status < fiber.StatusOK || status >= fiber.StatusMultipleChoices {
		return SessionData{}, fmt.Errorf("%w: upstream status %d", ErrExchangeFailed, status)
	}

	data.Email = strings.ToLower(strings.TrimSpace(data.Email))
	data.Name = strings.TrimSpace(data.Name)
	data.SessionToken = strings.TrimSpace(data.SessionToken)
	if data.Email == "" || data.SessionToken == "" {
		return SessionData{}, fmt.Errorf("%w: incomplete session data", ErrExchangeFailed)
	}
	return data, nil
}
