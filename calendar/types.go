// Package calendar declares the viewport contract and controller state
// types.
package calendar

import (
	"context"
	"errors"
)

// Sentinel errors for controller construction and state restoration.
var (
	// ErrNilViewport indicates New was given a nil Viewport.
	ErrNilViewport = errors.New("calendar: viewport is nil")

	// ErrBadSavedState indicates a saved-state payload that cannot be decoded.
	ErrBadSavedState = errors.New("calendar: malformed saved state")
)

// Viewport is the minimal contract the controller consumes from the host
// rendering surface. The controller never assumes anything about layout or
// pixels — only index positions.
type Viewport interface {
	// VisibleIndexWindow reports the first and last currently visible
	// positions. ok=false signals that nothing is visible yet, e.g. before
	// the first layout pass.
	VisibleIndexWindow() (first, last int, ok bool)

	// ScrollTo jumps instantly to the given position.
	ScrollTo(index int)

	// AnimateScrollTo scrolls smoothly to the given position, returning when
	// the animation completes or is superseded by a newer request. The
	// viewport owns interruption semantics.
	AnimateScrollTo(ctx context.Context, index int) error

	// RequestInitialScrollTo is a best-effort positioning hint issued once,
	// at construction, from restored state.
	RequestInitialScrollTo(index int)
}

// VisibleItemState is the minimal scroll position to restore after a
// process restart: the first visible index plus its pixel offset within the
// viewport. The controller carries it; persisting it is the host's job.
type VisibleItemState struct {
	FirstVisibleIndex        int
	FirstVisibleScrollOffset int
}
