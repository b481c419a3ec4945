package model

// Bot strategy constants
const (
	// BotStrategyRandom picks uniformly among the legal columns
	BotStrategyRandom = "random"
	// BotStrategyRejection draws any column and redraws until it is legal
	BotStrategyRejection = "rejection"
)

// BotStrategyDisplayName returns a human-readable label for a strategy
func BotStrategyDisplayName(strategy string) string {
	switch strategy {
	case BotStrategyRandom:
		return "Random"
	case BotStrategyRejection:
		return "Random (rejection sampling)"
	default:
		return strategy
	}
}

// ValidBotStrategies returns all valid bot strategy names
func ValidBotStrategies() []string {
	return []string{BotStrategyRandom, BotStrategyRejection}
}

// IsValidBotStrategy reports whether the name is a known strategy
func IsValidBotStrategy(strategy string) bool {
	for _, s := range ValidBotStrategies() {
		if s == strategy {
			return true
		}
	}
	return false
}
