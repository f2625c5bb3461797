package progression

import (
	"fmt"
	"time"

	"github.com/Vindusvisker/productivity-tab-sub000/internal/domain"
	"github.com/Vindusvisker/productivity-tab-sub000/internal/infra/sqlite"
)

// Claim rewards and gates.
const (
	DailyClaimBase       = 100
	WeeklyClaimReward    = 1000
	MonthlyClaimReward   = 2000
	WeeklyClaimThreshold = 1000 // weekly derived activity XP required
	MonthlyClaimMinLevel = 5
	MaxStreakMultiplier  = 3.0
)

// State keys for the last-claimed period per window.
const (
	stateDailyClaim   = "claim_daily_period"
	stateWeeklyClaim  = "claim_weekly_period"
	stateMonthlyClaim = "claim_monthly_period"
)

// StreakMultiplier scales the daily bonus: 1 + 0.1 per streak day,
// capped at 3.0.
func StreakMultiplier(streak int) float64 {
	m := 1.0 + 0.1*float64(streak)
	if m > MaxStreakMultiplier {
		m = MaxStreakMultiplier
	}
	return m
}

// DailyClaimReward is the daily bonus for the given streak length.
func DailyClaimReward(streak int) int64 {
	return int64(DailyClaimBase * StreakMultiplier(streak))
}

// ClaimContext carries the derived values that gate the three claim
// windows. The claimer itself only manages period-key state.
type ClaimContext struct {
	CurrentStreak    int
	WeeklyActivityXP int64
	Level            int
}

// Claimer is the tri-modal periodic bonus state machine. Each window has
// two states per period: claimable and claimed. The period key (date,
// ISO week, month) is the claim's natural identity.
type Claimer struct {
	db *sqlite.DB
}

// NewClaimer creates a claimer over the given store.
func NewClaimer(db *sqlite.DB) *Claimer {
	return &Claimer{db: db}
}

// claimWindow resolves the state key, period key, pool, reward, and gate
// for one claim kind.
func claimWindow(kind domain.ClaimKind, ctx ClaimContext, now time.Time) (stateKey, periodKey string, pool domain.Pool, reward int64, gateReason string, err error) {
	switch kind {
	case domain.ClaimDaily:
		// Resets at local midnight; reward scales with the streak.
		return stateDailyClaim, domain.DateOf(now), domain.PoolDailyClaim, DailyClaimReward(ctx.CurrentStreak), "", nil
	case domain.ClaimWeekly:
		// Resets Monday; gated on this week's derived activity XP.
		reason := ""
		if ctx.WeeklyActivityXP < WeeklyClaimThreshold {
			reason = fmt.Sprintf("earn %d activity XP this week (%d/%d)",
				WeeklyClaimThreshold, ctx.WeeklyActivityXP, WeeklyClaimThreshold)
		}
		return stateWeeklyClaim, WeekKey(now), domain.PoolWeeklyClaim, WeeklyClaimReward, reason, nil
	case domain.ClaimMonthly:
		// Resets on the 1st; gated on level.
		reason := ""
		if ctx.Level < MonthlyClaimMinLevel {
			reason = fmt.Sprintf("reach level %d (currently %d)", MonthlyClaimMinLevel, ctx.Level)
		}
		return stateMonthlyClaim, now.Local().Format("2006-01"), domain.PoolMonthlyClaim, MonthlyClaimReward, reason, nil
	default:
		return "", "", "", 0, "", fmt.Errorf("%w: %q", domain.ErrUnknownClaimKind, kind)
	}
}

// Status reports one claim window for the period containing now.
func (c *Claimer) Status(kind domain.ClaimKind, ctx ClaimContext, now time.Time) (domain.ClaimStatus, error) {
	stateKey, periodKey, _, reward, gateReason, err := claimWindow(kind, ctx, now)
	if err != nil {
		return domain.ClaimStatus{}, err
	}

	last, err := c.db.GetState(stateKey)
	if err != nil {
		return domain.ClaimStatus{}, fmt.Errorf("read claim state: %w", err)
	}

	status := domain.ClaimStatus{
		Kind:      kind,
		PeriodKey: periodKey,
		Claimed:   last == periodKey,
		Reward:    reward,
		Reason:    gateReason,
	}
	status.Claimable = !status.Claimed && gateReason == ""
	return status, nil
}

// Claim consumes the current period's bonus. The second call in the same
// period fails with ErrAlreadyClaimed and leaves the pool unchanged.
func (c *Claimer) Claim(kind domain.ClaimKind, ctx ClaimContext, now time.Time) (domain.ClaimStatus, error) {
	stateKey, periodKey, pool, reward, gateReason, err := claimWindow(kind, ctx, now)
	if err != nil {
		return domain.ClaimStatus{}, err
	}
	if gateReason != "" {
		return domain.ClaimStatus{}, fmt.Errorf("%w: %s", domain.ErrClaimNotReady, gateReason)
	}

	claimed, err := c.db.ClaimBonus(stateKey, periodKey, pool, reward)
	if err != nil {
		return domain.ClaimStatus{}, fmt.Errorf("claim %s: %w", kind, err)
	}
	if !claimed {
		return domain.ClaimStatus{}, domain.ErrAlreadyClaimed
	}

	return domain.ClaimStatus{
		Kind:      kind,
		PeriodKey: periodKey,
		Claimed:   true,
		Reward:    reward,
	}, nil
}
