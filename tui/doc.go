// Package tui is a thin terminal rendering shell over the calgrid model:
// a bubbletea component that doubles as the calendar.Viewport its own
// controller consumes.
//
// The shell owns exactly what the controller treats as external — layout,
// key handling, and the mapping from terminal height to a window of visible
// index positions. All calendar semantics (month generation, index
// arithmetic, visibility derivation) stay behind the controller; the shell
// only asks ItemAt for the items inside its window and draws them with
// lipgloss styles.
//
// Keys: up/down move by one week row, pgup/pgdn by a page, home/end jump to
// the range bounds, t jumps to the configured today, q quits.
package tui
