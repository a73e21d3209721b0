package services

import (
	"regexp"
	"testing"
)

func TestPrefixedIDFormats(t *testing.T) {
	tests := []struct {
		name    string
		id      string
		pattern string
	}{
		{name: "user", id: NewUserID(), pattern: `^user_[0-9a-f]{12}$`},
		{name: "meal", id: NewMealID(), pattern: `^meal_[0-9a-f]{12}$`},
		{name: "vitamin", id: NewVitaminID(), pattern: `^vit_[0-9a-f]{8}$`},
		{name: "user diet", id: NewUserDietID(), pattern: `^diet_[0-9a-f]{12}$`},
	}

	for _, test := range tests {
		if !regexp.MustCompile(test.pattern).MatchString(test.id) {
			t.Fatalf("%s id %q does not match %s", test.name, test.id, test.pattern)
		}
	}
}
