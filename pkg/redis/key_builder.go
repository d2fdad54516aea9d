package redis

import "fmt"

// KeyBuilder provides environment-aware Redis key building functionality
type KeyBuilder struct {
	prefix string
}

// NewKeyBuilder creates a new key builder with environment-based prefix
func NewKeyBuilder(environment string) *KeyBuilder {
	prefix := "prod"
	if environment == "development" || environment == "staging" || environment == "test" {
		prefix = "staging"
	}

	return &KeyBuilder{
		prefix: prefix,
	}
}

// BuildKey constructs a Redis key with the environment prefix
func (kb *KeyBuilder) BuildKey(key string) string {
	return fmt.Sprintf("%s:%s", kb.prefix, key)
}

// GetPrefix returns the current environment prefix
func (kb *KeyBuilder) GetPrefix() string {
	return kb.prefix
}

func (kb *KeyBuilder) KeyElectionByID(electionID string) string {
	return kb.BuildKey(fmt.Sprintf(KeyElectionByID, electionID))
}

func (kb *KeyBuilder) KeyElectionResults(electionID string) string {
	return kb.BuildKey(fmt.Sprintf(KeyElectionResults, electionID))
}

func (kb *KeyBuilder) KeyElectionSummaries() string {
	return kb.BuildKey(KeyElectionSummaries)
}

func (kb *KeyBuilder) KeyVoterVoted(electionID, voterID string) string {
	return kb.BuildKey(fmt.Sprintf(KeyVoterVoted, electionID, voterID))
}

func (kb *KeyBuilder) KeyDashboardStats() string {
	return kb.BuildKey(KeyDashboardStats)
}

// KeyCustom builds a key from a custom pattern
func (kb *KeyBuilder) KeyCustom(pattern string, args ...interface{}) string {
	key := fmt.Sprintf(pattern, args...)
	return kb.BuildKey(key)
}
