package calendar

import (
	"log"
	"time"

	"github.com/katalvlaran/calgrid/core"
)

// Option configures a Calendar at construction.
type Option func(*Calendar)

// WithFirstDayOfWeek sets the weekday that opens every week row.
// The default is time.Monday; callers wanting the platform locale default
// resolve it themselves and pass it in — the controller never reads
// ambient state.
func WithFirstDayOfWeek(wd time.Weekday) Option {
	return func(c *Calendar) { c.firstDayOfWeek = wd }
}

// WithOutDateStyle sets the trailing out-date policy.
// The default is core.OutDateStyleEndOfRow.
func WithOutDateStyle(style core.OutDateStyle) Option {
	return func(c *Calendar) { c.style = style }
}

// WithVisibleItemState seeds the restored scroll position. Construction
// forwards it to the viewport via RequestInitialScrollTo.
func WithVisibleItemState(state VisibleItemState) Option {
	return func(c *Calendar) {
		c.visibleItemState = state
		c.hasInitialState = true
	}
}

// WithLogger installs a diagnostics logger. Out-of-range scroll targets are
// reported through it; nil (the default) keeps the controller silent.
func WithLogger(logger *log.Logger) Option {
	return func(c *Calendar) { c.logger = logger }
}
