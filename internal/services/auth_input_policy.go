package services

import (
	"fmt"
	"net/mail"
	"strings"
	"unicode/utf8"

	"github.com/terraincognita07/kalori/internal/identity"
)

const maxIdentityNameLength = 120

var ErrInvalidIdentity = fmt.Errorf("%w: invalid identity", identity.ErrExchangeFailed)

func NormalizeAuthEmail(raw string) string {
	email := strings.ToLower(strings.TrimSpace(raw))
	if email == "" {
		return ""
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return ""
	}
	return email
}

// NormalizeIdentity cleans provider session data before it becomes a local user.
// The name falls back to the email and is truncated to a sane length.
func NormalizeIdentity(data identity.SessionData) (identity.SessionData, error) {
	email := NormalizeAuthEmail(data.Email)
	token := strings.TrimSpace(data.SessionToken)
	if email == "" || token == "" {
		return identity.SessionData{}, ErrInvalidIdentity
	}

	name := strings.TrimSpace(data.Name)
	if name == "" {
		name = email
	}
	if utf8.RuneCountInString(name) > maxIdentityNameLength {
		name = string([]rune(name)[:maxIdentityNameLength])
	}

	data.Email = email
	data.Name = name
	data.Picture = strings.TrimSpace(data.Picture)
	data.SessionToken = token
	return data, nil
}
