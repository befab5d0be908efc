package grading

// Config controls the behavior of the evaluation Service.
type Config struct {
	// MaxTokens is the token budget for the LLM response.
	MaxTokens int

	// Temperature controls LLM output randomness (0.0-1.0). Kept low:
	// grading should be near-deterministic.
	Temperature float64
}

// DefaultConfig returns the recommended evaluation settings.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   384,
		Temperature: 0.1,
	}
}
