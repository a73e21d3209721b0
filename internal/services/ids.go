package services

import (
	"strings"

	"github.com/google/uuid"
)

const (
	userIDPrefix     = "user"
	mealIDPrefix     = "meal"
	vitaminIDPrefix  = "vit"
	userDietIDPrefix = "diet"
)

func newPrefixedID(prefix string, length int) string {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")
	if length > len(raw) {
		length = len(raw)
	}
	return prefix + "_" + raw[:length]
}

func NewUserID() string {
	return newPrefixedID(userIDPrefix, 12)
}

func NewMealID() string {
	return newPrefixedID(mealIDPrefix, 12)
}

func NewVitaminID() string {
	return newPrefixedID(vitaminIDPrefix, 8)
}

func NewUserDietID() string {
	return newPrefixedID(userDietIDPrefix, 12)
}
