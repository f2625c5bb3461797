package progression

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/Vindusvisker/productivity-tab-sub000/internal/domain"
	"github.com/Vindusvisker/productivity-tab-sub000/internal/infra/bus"
	"github.com/Vindusvisker/productivity-tab-sub000/internal/infra/metrics"
	"github.com/Vindusvisker/productivity-tab-sub000/internal/infra/sqlite"
)

// Engine turns the activity log into the derived profile: scores,
// streaks, XP pools, missions, achievements. Everything except the award
// ledger and claim state is recomputed from scratch on every pass, so
// retroactive edits are always reflected and derived state can never
// drift from the log.
type Engine struct {
	mu      sync.Mutex
	db      *sqlite.DB
	bus     *bus.Bus
	awarder *Awarder
	claimer *Claimer
}

// NewEngine creates an engine over the given store and change bus.
func NewEngine(db *sqlite.DB, b *bus.Bus) *Engine {
	return &Engine{
		db:      db,
		bus:     b,
		awarder: NewAwarder(db),
		claimer: NewClaimer(db),
	}
}

// Start subscribes the engine to activity changes. Each notification
// triggers a full recomputation; the payload is ignored and state is
// re-read from storage.
func (e *Engine) Start() {
	e.bus.Subscribe(bus.ActivityChanged, func() {
		if _, err := e.Recompute(time.Now()); err != nil {
			log.Printf("[engine] recompute: %v", err)
		}
	})
}

// Recompute runs one full pass and publishes ProfileChanged on success.
// Passes are serialized under the mutex.
func (e *Engine) Recompute(now time.Time) (domain.Profile, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	start := time.Now()
	profile, err := e.recompute(now)
	if err != nil {
		return domain.Profile{}, err
	}

	metrics.Recomputations.Inc()
	metrics.RecomputeDuration.Observe(time.Since(start).Seconds())
	metrics.TotalXP.Set(float64(profile.TotalXP))
	metrics.Level.Set(float64(profile.Level))
	metrics.CurrentStreak.Set(float64(profile.Streaks.Current))

	e.bus.Publish(bus.ProfileChanged)
	return profile, nil
}

// Profile derives the current snapshot without crediting anything.
func (e *Engine) Profile(now time.Time) (domain.Profile, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	records, _ := e.loadRecords()
	streaks := Streaks(records, now)
	return e.assembleProfile(records, streaks, now)
}

func (e *Engine) recompute(now time.Time) (domain.Profile, error) {
	records, readOK := e.loadRecords()
	streaks := Streaks(records, now)

	// A failed log read skips awarding entirely: under-crediting is
	// recoverable on the next pass, over-crediting is not.
	if readOK {
		// Grants raise total XP, which can satisfy level-based
		// predicates in the same pass. Re-evaluate until no new
		// grant lands; the ledger makes every iteration idempotent.
		for {
			granted, err := e.awardPass(records, streaks, now)
			if err != nil {
				return domain.Profile{}, err
			}
			if granted == 0 {
				break
			}
		}
	}

	return e.assembleProfile(records, streaks, now)
}

// awardPass evaluates every mission and achievement against fresh stats
// and credits unmet identities through the ledger. Returns the number of
// first-time grants.
func (e *Engine) awardPass(records []domain.DailyRecord, streaks domain.Streaks, now time.Time) (int, error) {
	stats, err := e.buildStats(records, streaks, now)
	if err != nil {
		return 0, err
	}

	granted := 0

	weekly := CurrentWeeklyMission(records, now)
	if weekly.Completed {
		isNew, err := e.awarder.GrantOnce(weekly.Identity, domain.PoolMission, weekly.XPReward)
		if err != nil {
			return granted, err
		}
		if isNew {
			granted++
			metrics.AwardsGranted.WithLabelValues("mission").Inc()
		}
	}

	for _, def := range CompletedMilestones(stats) {
		isNew, err := e.awarder.GrantOnce(MilestoneIdentity(def), domain.PoolMission, def.XPReward)
		if err != nil {
			return granted, err
		}
		if isNew {
			granted++
			metrics.AwardsGranted.WithLabelValues("mission").Inc()
		}
	}

	for _, def := range AllAchievements() {
		if def.Predicate == nil || !def.Predicate(stats) {
			continue
		}
		isNew, err := e.awarder.GrantOnce(AchievementIdentity(def), domain.PoolAchievement, def.XPReward)
		if err != nil {
			return granted, err
		}
		if isNew {
			granted++
			metrics.AwardsGranted.WithLabelValues("achievement").Inc()
		}
	}

	return granted, nil
}

// buildStats derives the cumulative snapshot, including current total XP.
func (e *Engine) buildStats(records []domain.DailyRecord, streaks domain.Streaks, now time.Time) (domain.Stats, error) {
	breakdown, err := e.breakdown(records, streaks)
	if err != nil {
		return domain.Stats{}, err
	}
	missionsCompleted, err := e.db.AwardCount(domain.PoolMission)
	if err != nil {
		return domain.Stats{}, fmt.Errorf("count missions: %w", err)
	}
	return BuildStats(records, streaks, missionsCompleted, breakdown.Total()), nil
}

// breakdown merges the two derived pools with the persisted accumulators.
func (e *Engine) breakdown(records []domain.DailyRecord, streaks domain.Streaks) (domain.XPBreakdown, error) {
	pools, err := e.db.AllPools()
	if err != nil {
		metrics.StorageErrors.WithLabelValues("pools").Inc()
		return domain.XPBreakdown{}, fmt.Errorf("load pools: %w", err)
	}
	return domain.XPBreakdown{
		DailyActivity: DailyActivityXP(records),
		StreakBonus:   StreakBonusXP(streaks),
		Mission:       pools[domain.PoolMission],
		Achievement:   pools[domain.PoolAchievement],
		DailyClaim:    pools[domain.PoolDailyClaim],
		WeeklyClaim:   pools[domain.PoolWeeklyClaim],
		MonthlyClaim:  pools[domain.PoolMonthlyClaim],
	}, nil
}

func (e *Engine) assembleProfile(records []domain.DailyRecord, streaks domain.Streaks, now time.Time) (domain.Profile, error) {
	breakdown, err := e.breakdown(records, streaks)
	if err != nil {
		return domain.Profile{}, err
	}
	total := breakdown.Total()
	level, currentLevelXP := LevelProgress(total)
	tier := TierForLevel(level)

	missionsCompleted, err := e.db.AwardCount(domain.PoolMission)
	if err != nil {
		return domain.Profile{}, fmt.Errorf("count missions: %w", err)
	}
	unlocked, err := e.awarder.Unlocked()
	if err != nil {
		return domain.Profile{}, fmt.Errorf("list unlocked: %w", err)
	}

	stats := BuildStats(records, streaks, missionsCompleted, total)
	weekly := CurrentWeeklyMission(records, now)

	return domain.Profile{
		Level:          level,
		CurrentLevelXP: currentLevelXP,
		TotalXP:        total,
		Tier:           tier.Name,
		Title:          tier.Title,
		Streaks:        streaks,
		WeeklyMission:  &weekly,
		Milestone:      CurrentMilestone(stats),
		UnlockedIDs:    unlocked,
		CompletedCount: missionsCompleted + len(unlocked),
		DaysActive:     len(records),
		Breakdown:      breakdown,
	}, nil
}

// loadRecords reads and sanitizes the full log. A read failure degrades
// to an empty log with a warning; the caller must then skip awarding.
func (e *Engine) loadRecords() ([]domain.DailyRecord, bool) {
	records, err := e.db.ListDailyRecords()
	if err != nil {
		log.Printf("[engine] WARNING: load records: %v (treating log as empty)", err)
		metrics.StorageErrors.WithLabelValues("records").Inc()
		return nil, false
	}
	for i := range records {
		records[i] = Sanitize(records[i])
	}
	return records, true
}

// ─── Claims ─────────────────────────────────────────────────────────────────

// claimContext derives the values gating the three claim windows.
func (e *Engine) claimContext(now time.Time) (ClaimContext, error) {
	records, err := e.db.ListDailyRecords()
	if err != nil {
		return ClaimContext{}, fmt.Errorf("load records: %w", err)
	}
	for i := range records {
		records[i] = Sanitize(records[i])
	}
	streaks := Streaks(records, now)

	breakdown, err := e.breakdown(records, streaks)
	if err != nil {
		return ClaimContext{}, err
	}

	var weeklyXP int64
	for _, r := range weekRecords(records, now) {
		weeklyXP += DayActivityXP(r)
	}

	return ClaimContext{
		CurrentStreak:    streaks.Current,
		WeeklyActivityXP: weeklyXP,
		Level:            LevelForXP(breakdown.Total()),
	}, nil
}

// ClaimStatuses reports all three claim windows.
func (e *Engine) ClaimStatuses(now time.Time) ([]domain.ClaimStatus, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	ctx, err := e.claimContext(now)
	if err != nil {
		return nil, err
	}

	kinds := []domain.ClaimKind{domain.ClaimDaily, domain.ClaimWeekly, domain.ClaimMonthly}
	statuses := make([]domain.ClaimStatus, 0, len(kinds))
	for _, kind := range kinds {
		status, err := e.claimer.Status(kind, ctx, now)
		if err != nil {
			return nil, err
		}
		statuses = append(statuses, status)
	}
	return statuses, nil
}

// Claim consumes a periodic bonus and publishes ProfileChanged.
func (e *Engine) Claim(kind domain.ClaimKind, now time.Time) (domain.ClaimStatus, error) {
	e.mu.Lock()
	status, err := func() (domain.ClaimStatus, error) {
		ctx, err := e.claimContext(now)
		if err != nil {
			return domain.ClaimStatus{}, err
		}
		return e.claimer.Claim(kind, ctx, now)
	}()
	e.mu.Unlock()

	if err != nil {
		return domain.ClaimStatus{}, err
	}
	metrics.ClaimsTotal.WithLabelValues(string(kind)).Inc()
	e.bus.Publish(bus.ProfileChanged)
	return status, nil
}

// ─── Views ──────────────────────────────────────────────────────────────────

// Heatmap returns per-day raw and display scores, oldest first.
func (e *Engine) Heatmap() ([]domain.DayScore, error) {
	records, err := e.db.ListDailyRecords()
	if err != nil {
		return nil, fmt.Errorf("load records: %w", err)
	}
	scores := make([]domain.DayScore, 0, len(records))
	for _, r := range records {
		r = Sanitize(r)
		scores = append(scores, domain.DayScore{
			Date:    r.Date,
			Raw:     RawScore(r),
			Display: DisplayScore(r),
		})
	}
	return scores, nil
}

// Achievements returns the full catalogue with unlock state.
func (e *Engine) Achievements() ([]domain.AchievementStatus, error) {
	var out []domain.AchievementStatus
	for _, def := range AllAchievements() {
		unlocked, err := e.db.IsAwarded(AchievementIdentity(def))
		if err != nil {
			return nil, fmt.Errorf("check %s: %w", def.ID, err)
		}
		out = append(out, domain.AchievementStatus{AchievementDef: def, Unlocked: unlocked})
	}
	return out, nil
}

// Reset wipes all engine state: the log, pools, ledger, and claims.
func (e *Engine) Reset() error {
	e.mu.Lock()
	err := e.db.Reset()
	e.mu.Unlock()
	if err != nil {
		return fmt.Errorf("reset: %w", err)
	}
	e.bus.Publish(bus.ProfileChanged)
	return nil
}
