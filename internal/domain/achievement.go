package domain

// AchievementTier groups achievements by difficulty. Five tiers of six.
type AchievementTier string

const (
	TierBronze    AchievementTier = "bronze"
	TierSilver    AchievementTier = "silver"
	TierGold      AchievementTier = "gold"
	TierPlatinum  AchievementTier = "platinum"
	TierLegendary AchievementTier = "legendary"
)

// AchievementDef defines a single achievement. The predicate is checked
// against a fresh Stats snapshot on every recomputation; the XP award
// happens exactly once via the award ledger.
type AchievementDef struct {
	ID          string           `json:"id"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Tier        AchievementTier  `json:"tier"`
	Category    MissionCategory  `json:"category"`
	XPReward    int64            `json:"xp_reward"`
	Predicate   func(Stats) bool `json:"-"`
}

// AchievementStatus is a definition plus its current unlock state.
type AchievementStatus struct {
	AchievementDef
	Unlocked bool `json:"unlocked"`
}
