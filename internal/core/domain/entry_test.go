package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mohanapra/personal-diary-web-app/internal/core/domain"
)

func TestMoodIsValid(t *testing.T) {
	for _, mood := range domain.AllMoods {
		assert.True(t, mood.IsValid(), "expected %q to be valid", mood)
	}

	assert.False(t, domain.Mood("ecstatic").IsValid())
	assert.False(t, domain.Mood("").IsValid())
	assert.False(t, domain.Mood("HAPPY").IsValid())
	assert.False(t, domain.Mood("very happy").IsValid())
}

func TestAllMoodsOrder(t *testing.T) {
	// Tie-breaking in analytics depends on this exact order.
	expected := []domain.Mood{
		domain.MoodVeryHappy,
		domain.MoodHappy,
		domain.MoodNeutral,
		domain.MoodSad,
		domain.MoodVerySad,
	}
	assert.Equal(t, expected, domain.AllMoods)
}
