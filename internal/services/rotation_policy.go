package services

import (
	"math"
	"strconv"
	"strings"
)

const (
	RotationScoreMin = 0.0
	RotationScoreMax = 10.0
)

// ClampRotationScore forces a score into the [0, 10] evaluation range.
func ClampRotationScore(score float64) float64 {
	return math.Min(RotationScoreMax, math.Max(RotationScoreMin, score))
}

// ParseRotationScore reads the free-text score field of the trainee edit
// form. Empty or unparseable input leaves the score unset.
func ParseRotationScore(raw string) *float64 {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil
	}
	value, err := strconv.ParseFloat(trimmed, 64)
	if err != nil || math.IsNaN(value) {
		return nil
	}
	clamped := ClampRotationScore(value)
	return &clamped
}
