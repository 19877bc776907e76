package llm

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	assert.Equal(t, "gemini-2.5-flash", config.GetModel(TierAdvisory))
	assert.Equal(t, "gemini-2.5-pro", config.GetModel(TierSynthesis))
}

func TestGetModel_Fallback(t *testing.T) {
	config := &Config{
		Models: map[ModelTier]string{
			TierAdvisory: "fallback-model",
		},
	}

	// Unknown tier falls back to the advisory model
	assert.Equal(t, "fallback-model", config.GetModel("unknown"))
}

func TestGetModel_EmptyConfig(t *testing.T) {
	config := &Config{Models: map[ModelTier]string{}}

	assert.Equal(t, "", config.GetModel(TierSynthesis))
}

func TestWithModel(t *testing.T) {
	config := DefaultConfig()
	newConfig := config.WithModel(TierSynthesis, "custom-model")

	// Original is unchanged
	assert.Equal(t, "gemini-2.5-pro", config.GetModel(TierSynthesis))
	assert.Equal(t, "custom-model", newConfig.GetModel(TierSynthesis))
	assert.Equal(t, "gemini-2.5-flash", newConfig.GetModel(TierAdvisory))
}

func TestIsBlocked(t *testing.T) {
	assert.True(t, IsBlocked(&BlockedError{Reason: "SAFETY"}))
	assert.False(t, IsBlocked(ErrEmptyResponse))
	assert.False(t, IsBlocked(errors.New("other")))
}
