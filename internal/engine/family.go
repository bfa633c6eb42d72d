package engine

import "strings"

// Family identifies the model family an engine adapter serves.
type Family string

const (
	FamilyDeepSeek Family = "deepseek"
	FamilyGemma    Family = "gemma"
)

// DetectFamily maps a model name to its family by case-insensitive
// substring, e.g. "deepseek_7b" or "gemma_2b_quantized".
func DetectFamily(model string) (Family, error) {
	m := strings.ToLower(model)
	switch {
	case strings.Contains(m, "deepseek"):
		return FamilyDeepSeek, nil
	case strings.Contains(m, "gemma"):
		return FamilyGemma, nil
	default:
		return "", ErrUnsupportedModel(model)
	}
}
