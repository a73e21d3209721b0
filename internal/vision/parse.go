package vision

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/terraincognita07/kalori/internal/models"
)

var errNoJSONObject = errors.New("no json object in reply")

type analysisPayload struct {
	Calories    *float64 `json:"calories"`
	Protein     *float64 `json:"protein"`
	Carbs       *float64 `json:"carbs"`
	Fat         *float64 `json:"fat"`
	Description string   `json:"description"`
}

// ParseAnalysis reads the macro estimate out of free-form model output.
func ParseAnalysis(reply string) (models.FoodAnalysis, error) {
	object, ok := ExtractJSONObject(reply)
	if !ok {
		return models.FoodAnalysis{}, errNoJSONObject
	}

	var payload analysisPayload
	if err := json.Unmarshal([]byte(object), &payload); err != nil {
		return models.FoodAnalysis{}, fmt.Errorf("decode analysis: %w", err)
	}
	if payload.Calories == nil || payload.Protein == nil || payload.Carbs == nil || payload.Fat == nil {
		return models.FoodAnalysis{}, errors.New("analysis is missing macro fields")
	}
	for _, value := range []float64{*payload.Calories, *payload.Protein, *payload.Carbs, *payload.Fat} {
		if value < 0 || math.IsNaN(value) || math.IsInf(value, 0) {
			return models.FoodAnalysis{}, errors.New("analysis has invalid macro values")
		}
	}

	return models.FoodAnalysis{
		Calories:    int(math.Round(*payload.Calories)),
		Protein:     *payload.Protein,
		Carbs:       *payload.Carbs,
		Fat:         *payload.Fat,
		Description: strings.TrimSpace(payload.Description),
	}, nil
}

// ExtractJSONObject returns the first balanced {...} object, looking inside a ```json or bare
// ``` fence first when one is present.
func ExtractJSONObject(reply string) (string, bool) {
	text := strings.TrimSpace(reply)
	if fenced, ok := fencedBlock(text); ok {
		text = fenced
	}
	return firstObject(text)
}

func fencedBlock(text string) (string, bool) {
	start := strings.Index(text, "```")
	if start < 0 {
		return "", false
	}
	body := text[start+3:]
	if newline := strings.IndexByte(body, '\n'); newline >= 0 {
		tag := strings.TrimSpace(body[:newline])
		if tag == "" || !strings.ContainsAny(tag, "{}") {
			body = body[newline+1:]
		}
	}
	end := strings.Index(body, "```")
	if end < 0 {
		return strings.TrimSpace(body), true
	}
	return strings.TrimSpace(body[:end]), true
}

func firstObject(text string) (string, bool) {
	start := strings.IndexByte(text, '{')
	if start < 0 {
		return "", false
	}

	depth := 0
	inString := false
	escaped := false
	for index := start; index < len(text); index++ {
		char := text[index]
		if inString {
			switch {
			case escaped:
				escaped = false
			case char == '\\':
				escaped = true
			case char == '"':
				inString = false
			}
			continue
		}
		switch char {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return text[start : index+1], true
			}
		}
	}
	return "", false
}
