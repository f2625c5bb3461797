package progression

import "github.com/Vindusvisker/productivity-tab-sub000/internal/domain"

// tierTable maps level breakpoints to display tiers. Fixed; the last
// entry is open-ended so the lookup is total for every level >= 1.
var tierTable = []struct {
	minLevel int
	tier     domain.Tier
}{
	{1, domain.Tier{Name: "Novice", Title: "Fresh Start", Bucket: 0}},
	{5, domain.Tier{Name: "Apprentice", Title: "Habit Builder", Bucket: 1}},
	{10, domain.Tier{Name: "Adept", Title: "Routine Keeper", Bucket: 2}},
	{15, domain.Tier{Name: "Journeyman", Title: "Steady Hand", Bucket: 3}},
	{20, domain.Tier{Name: "Expert", Title: "Momentum Master", Bucket: 4}},
	{30, domain.Tier{Name: "Master", Title: "Discipline Incarnate", Bucket: 5}},
	{50, domain.Tier{Name: "Grandmaster", Title: "Unstoppable", Bucket: 6}},
	{100, domain.Tier{Name: "Legend", Title: "Living Legend", Bucket: 7}},
}

// TierForLevel returns the display tier for a level. Levels below 1 are
// treated as 1.
func TierForLevel(level int) domain.Tier {
	if level < 1 {
		level = 1
	}
	tier := tierTable[0].tier
	for _, row := range tierTable {
		if level >= row.minLevel {
			tier = row.tier
		}
	}
	return tier
}
