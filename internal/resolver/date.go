package resolver

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/mikeladderbush/LED-Project/internal/logging"
	"github.com/mikeladderbush/LED-Project/internal/providers"
	"github.com/mikeladderbush/LED-Project/internal/timeutil"
)

// ErrDateUnresolved means the current calendar date could not be determined.
var ErrDateUnresolved = errors.New("current date unresolved")

// CurrentDate asks the time service for today's date in tz. Any failure is
// reported as ErrDateUnresolved wrapping the cause.
func CurrentDate(ctx context.Context, clock providers.DateProvider, tz string, logger *slog.Logger) (timeutil.Date, error) {
	if clock == nil {
		return timeutil.Date{}, fmt.Errorf("%w: %w", ErrDateUnresolved, providers.ErrProviderUnavailable)
	}
	d, err := clock.CurrentDate(ctx, tz)
	if err == nil && !d.Valid() {
		err = fmt.Errorf("time service returned invalid date %s", d)
	}
	if err != nil {
		logging.Warn(logging.FromContext(ctx, logger), "current date unresolved", logging.FieldTimezone, tz, "error", err)
		return timeutil.Date{}, fmt.Errorf("%w: %w", ErrDateUnresolved, err)
	}
	return d, nil
}
