package catalog

import "github.com/davidbz/lessongen/internal/domain"

// DefaultModels returns the production model list with free-tier daily limits.
func DefaultModels() []domain.Model {
	return []domain.Model{
		{Name: "gemma-3-27b-it", Provider: domain.ProviderGoogle, Tier: domain.TierPremium, SupportsImage: true, DailyLimit: 14400},
		{Name: "gemma-3-12b-it", Provider: domain.ProviderGoogle, Tier: domain.TierBasic, SupportsImage: false, DailyLimit: 14400},
		{Name: "gemini-2.0-flash-lite", Provider: domain.ProviderGoogle, Tier: domain.TierPremium, SupportsImage: false, DailyLimit: 1500},
		{Name: "gemini-2.0-flash", Provider: domain.ProviderGoogle, Tier: domain.TierPremium, SupportsImage: false, DailyLimit: 1500},
		{Name: "llama-3.1-8b-instant", Provider: domain.ProviderGroq, Tier: domain.TierBasic, SupportsImage: false, DailyLimit: 14400},
		{Name: "llama-3.3-70b-versatile", Provider: domain.ProviderGroq, Tier: domain.TierPremium, SupportsImage: false, DailyLimit: 1000},
		{Name: "qwen/qwen3-32b", Provider: domain.ProviderGroq, Tier: domain.TierPremium, SupportsImage: false, DailyLimit: 1000},
		{Name: "gemma2-9b-it", Provider: domain.ProviderGroq, Tier: domain.TierBasic, SupportsImage: false, DailyLimit: 14400},
		{Name: "meta-llama/llama-4-maverick-17b-128e-instruct", Provider: domain.ProviderGroq, Tier: domain.TierPremium, SupportsImage: true, DailyLimit: 1000},
	}
}

// Default builds the catalog from DefaultModels.
func Default() *Catalog {
	c, err := New(DefaultModels())
	if err != nil {
		panic(err)
	}
	return c
}
