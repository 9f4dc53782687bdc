package structgen

// Config holds question-set generation settings.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns sensible defaults for question-set generation.
// The budget covers twenty question/answer pairs in one response.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   2048,
		Temperature: 0.6,
	}
}
