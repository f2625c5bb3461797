package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/Vindusvisker/productivity-tab-sub000/internal/app/progression"
	"github.com/Vindusvisker/productivity-tab-sub000/internal/domain"
	"github.com/Vindusvisker/productivity-tab-sub000/internal/infra/bus"
)

// ─── Read endpoints ─────────────────────────────────────────────────────────

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if s.checker == nil {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
		return
	}
	status, label := http.StatusOK, "ok"
	if !s.checker.IsHealthy() {
		status, label = http.StatusServiceUnavailable, "degraded"
	}
	writeJSON(w, status, map[string]interface{}{
		"status": label,
		"checks": s.checker.Statuses(),
	})
}

func (s *Server) handleProfile(w http.ResponseWriter, r *http.Request) {
	profile, err := s.engine.Profile(time.Now())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, profile)
}

func (s *Server) handleStreaks(w http.ResponseWriter, r *http.Request) {
	profile, err := s.engine.Profile(time.Now())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, profile.Streaks)
}

func (s *Server) handleHeatmap(w http.ResponseWriter, r *http.Request) {
	scores, err := s.engine.Heatmap()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"days": scores,
	})
}

func (s *Server) handleMissions(w http.ResponseWriter, r *http.Request) {
	profile, err := s.engine.Profile(time.Now())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"weekly":    profile.WeeklyMission,
		"milestone": profile.Milestone,
	})
}

func (s *Server) handleAchievements(w http.ResponseWriter, r *http.Request) {
	achievements, err := s.engine.Achievements()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	unlocked := 0
	for _, a := range achievements {
		if a.Unlocked {
			unlocked++
		}
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"achievements": achievements,
		"unlocked":     unlocked,
		"total":        len(achievements),
	})
}

// ─── Claims ─────────────────────────────────────────────────────────────────

func (s *Server) handleClaims(w http.ResponseWriter, r *http.Request) {
	statuses, err := s.engine.ClaimStatuses(time.Now())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"claims": statuses,
	})
}

func (s *Server) handleClaim(w http.ResponseWriter, r *http.Request) {
	kind := domain.ClaimKind(chi.URLParam(r, "kind"))

	status, err := s.engine.Claim(kind, time.Now())
	switch {
	case errors.Is(err, domain.ErrUnknownClaimKind):
		writeError(w, http.StatusNotFound, err.Error())
		return
	case errors.Is(err, domain.ErrAlreadyClaimed):
		writeError(w, http.StatusConflict, err.Error())
		return
	case errors.Is(err, domain.ErrClaimNotReady):
		writeError(w, http.StatusPreconditionFailed, err.Error())
		return
	case err != nil:
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"receipt_id": uuid.New().String(),
		"claim":      status,
	})
}

// ─── Activity write path ────────────────────────────────────────────────────
// The engine never writes the activity log; these handlers do, then
// publish ActivityChanged so the engine recomputes.

type logActivityRequest struct {
	Date      string `json:"date,omitempty"` // YYYY-MM-DD, defaults to today
	Habits    int    `json:"habits,omitempty"`
	Focus     int    `json:"focus,omitempty"`
	Slips     int    `json:"slips,omitempty"`
	HabitName string `json:"habit_name,omitempty"`
}

func (s *Server) handleLogActivity(w http.ResponseWriter, r *http.Request) {
	var req logActivityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.Habits < 0 || req.Focus < 0 || req.Slips < 0 {
		writeError(w, http.StatusBadRequest, "counts must be non-negative")
		return
	}

	date := req.Date
	if date == "" {
		date = domain.DateOf(time.Now())
	} else if _, err := time.ParseInLocation(domain.DateLayout, date, time.Local); err != nil {
		writeError(w, http.StatusBadRequest, domain.ErrBadDate.Error())
		return
	}

	record, err := s.db.GetDailyRecord(date)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if record == nil {
		record = &domain.DailyRecord{Date: date}
	}
	record.HabitsCompleted += req.Habits
	record.FocusSessions += req.Focus
	record.NegativeActions += req.Slips
	if req.HabitName != "" {
		record.HabitNames = append(record.HabitNames, req.HabitName)
	}

	if err := s.db.UpsertDailyRecord(*record); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.bus.Publish(bus.ActivityChanged)

	writeJSON(w, http.StatusOK, record)
}

func (s *Server) handleGetActivity(w http.ResponseWriter, r *http.Request) {
	date := chi.URLParam(r, "date")
	if _, err := time.ParseInLocation(domain.DateLayout, date, time.Local); err != nil {
		writeError(w, http.StatusBadRequest, domain.ErrBadDate.Error())
		return
	}

	record, err := s.db.GetDailyRecord(date)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if record == nil {
		writeError(w, http.StatusNotFound, domain.ErrRecordNotFound.Error())
		return
	}

	sanitized := progression.Sanitize(*record)
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"record":        sanitized,
		"raw_score":     progression.RawScore(sanitized),
		"display_score": progression.DisplayScore(sanitized),
	})
}

func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	if err := s.engine.Reset(); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "reset"})
}
