package calendar

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/katalvlaran/calgrid/core"
)

// SavedState is the flat record a host persists across process restarts.
// All fields are value types and round-trip through JSON without loss.
type SavedState struct {
	StartMonth               core.YearMonth    `json:"startMonth"`
	EndMonth                 core.YearMonth    `json:"endMonth"`
	FirstVisibleMonth        core.YearMonth    `json:"firstVisibleMonth"`
	FirstDayOfWeek           time.Weekday      `json:"firstDayOfWeek"`
	OutDateStyle             core.OutDateStyle `json:"outDateStyle"`
	FirstVisibleIndex        int               `json:"firstVisibleIndex"`
	FirstVisibleScrollOffset int               `json:"firstVisibleScrollOffset"`
}

// Marshal encodes the record as JSON.
func (s SavedState) Marshal() ([]byte, error) {
	data, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("calendar: encoding saved state: %w", err)
	}
	return data, nil
}

// UnmarshalSavedState decodes a record produced by Marshal, failing with
// ErrBadSavedState on malformed input.
func UnmarshalSavedState(data []byte) (SavedState, error) {
	var s SavedState
	if err := json.Unmarshal(data, &s); err != nil {
		return SavedState{}, fmt.Errorf("%w: %v", ErrBadSavedState, err)
	}
	return s, nil
}

// State captures the controller's persistable state: configuration plus the
// current first visible month and carried scroll position.
func (c *Calendar) State() SavedState {
	return SavedState{
		StartMonth:               c.rng.Start,
		EndMonth:                 c.rng.End,
		FirstVisibleMonth:        c.FirstVisibleMonth().YearMonth,
		FirstDayOfWeek:           c.firstDayOfWeek,
		OutDateStyle:             c.style,
		FirstVisibleIndex:        c.visibleItemState.FirstVisibleIndex,
		FirstVisibleScrollOffset: c.visibleItemState.FirstVisibleScrollOffset,
	}
}

// Restore applies a saved record: range, week alignment, out-date style,
// and scroll position together. Validation runs before anything mutates;
// on success the viewport receives the restored index as an initial
// positioning hint.
func (c *Calendar) Restore(s SavedState) error {
	if err := c.rebuild(
		core.Range{Start: s.StartMonth, End: s.EndMonth},
		s.FirstDayOfWeek,
		s.OutDateStyle,
	); err != nil {
		return err
	}
	c.visibleItemState = VisibleItemState{
		FirstVisibleIndex:        s.FirstVisibleIndex,
		FirstVisibleScrollOffset: s.FirstVisibleScrollOffset,
	}
	c.viewport.RequestInitialScrollTo(s.FirstVisibleIndex)
	return nil
}
