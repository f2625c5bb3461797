package cli

import (
	"fmt"
	"time"

	"github.com/Vindusvisker/productivity-tab-sub000/internal/daemon"
	"github.com/Vindusvisker/productivity-tab-sub000/internal/domain"
)

// newDaemon opens the engine stack without starting the HTTP server.
func newDaemon() (*daemon.Daemon, error) {
	return daemon.New(rootCmd.Version)
}

// parseDateFlag validates a --date value, defaulting to today.
func parseDateFlag(date string) (string, error) {
	if date == "" {
		return domain.DateOf(time.Now()), nil
	}
	if _, err := time.ParseInLocation(domain.DateLayout, date, time.Local); err != nil {
		return "", fmt.Errorf("%w: %q (want YYYY-MM-DD)", domain.ErrBadDate, date)
	}
	return date, nil
}
