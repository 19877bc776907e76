// Package llm provides the generator-collaborator abstraction and its
// Gemini implementation.
package llm

// ModelTier represents the capability level a call needs.
type ModelTier string

const (
	// TierAdvisory is for free-text advisory prose (coverage and cost analyses).
	TierAdvisory ModelTier = "advisory"
	// TierSynthesis is for the structured decision-synthesis call.
	TierSynthesis ModelTier = "synthesis"
)

// Config holds the model configuration for the generator client.
type Config struct {
	Models map[ModelTier]string
}

// DefaultConfig returns the default Gemini model assignment per tier.
func DefaultConfig() *Config {
	return &Config{
		Models: map[ModelTier]string{
			TierAdvisory:  "gemini-2.5-flash",
			TierSynthesis: "gemini-2.5-pro",
		},
	}
}

// GetModel returns the model name for a given tier, falling back to the
// advisory model when a tier is not configured.
func (c *Config) GetModel(tier ModelTier) string {
	if model, ok := c.Models[tier]; ok {
		return model
	}
	if model, ok := c.Models[TierAdvisory]; ok {
		return model
	}
	return ""
}

// WithModel returns a new Config with a specific model for a tier.
func (c *Config) WithModel(tier ModelTier, model string) *Config {
	out := &Config{Models: make(map[ModelTier]string, len(c.Models)+1)}
	for k, v := range c.Models {
		out.Models[k] = v
	}
	out.Models[tier] = model
	return out
}
