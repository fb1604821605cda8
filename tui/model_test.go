package tui_test

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/calgrid/calendar"
	"github.com/katalvlaran/calgrid/core"
	"github.com/katalvlaran/calgrid/tui"
)

func newModel(t *testing.T, opts ...calendar.Option) *tui.Model {
	t.Helper()
	m, err := tui.NewModel(core.YM(2023, time.January), core.YM(2023, time.June), opts...)
	require.NoError(t, err)
	return m
}

func layout(m *tui.Model, width, height int) {
	m.Update(tea.WindowSizeMsg{Width: width, Height: height})
}

func key(m *tui.Model, s string) (tea.Model, tea.Cmd) {
	return m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
}

func TestNewModel_InvalidRange(t *testing.T) {
	_, err := tui.NewModel(core.YM(2023, time.June), core.YM(2023, time.January))
	assert.ErrorIs(t, err, core.ErrInvalidRange)
}

func TestVisibleIndexWindow_BeforeFirstLayout(t *testing.T) {
	m := newModel(t)
	_, _, ok := m.VisibleIndexWindow()
	assert.False(t, ok, "no window before the first WindowSizeMsg")
}

func TestVisibleIndexWindow_AfterLayout(t *testing.T) {
	m := newModel(t)
	layout(m, 80, 12)

	first, last, ok := m.VisibleIndexWindow()
	require.True(t, ok)
	assert.Equal(t, 0, first)
	assert.Equal(t, 10*core.DaysPerWeek-1, last)
	assert.Less(t, last, m.Calendar().ItemCount())
}

func TestScrollTo_ClampsAndRecordsState(t *testing.T) {
	m := newModel(t)
	layout(m, 80, 12)

	m.ScrollTo(-5)
	first, _, _ := m.VisibleIndexWindow()
	assert.Equal(t, 0, first)

	m.ScrollTo(1 << 20)
	first, _, _ = m.VisibleIndexWindow()
	assert.Equal(t, m.Calendar().ItemCount()-1, first)
	assert.Equal(t, first, m.Calendar().VisibleItemState().FirstVisibleIndex)
}

func TestUpdate_WeekRowScrolling(t *testing.T) {
	m := newModel(t)
	layout(m, 80, 12)

	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	first, _, _ := m.VisibleIndexWindow()
	assert.Equal(t, core.DaysPerWeek, first)

	m.Update(tea.KeyMsg{Type: tea.KeyUp})
	first, _, _ = m.VisibleIndexWindow()
	assert.Equal(t, 0, first)
}

func TestUpdate_TodayJump(t *testing.T) {
	m := newModel(t)
	layout(m, 80, 12)
	m.SetToday(core.Date(2023, time.March, 15))

	key(m, "t")
	assert.Equal(t, core.YM(2023, time.March), m.Calendar().FirstVisibleMonth().YearMonth)
}

func TestUpdate_QuitKeys(t *testing.T) {
	m := newModel(t)
	_, cmd := key(m, "q")
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestAnimateScrollTo_CancelledContext(t *testing.T) {
	m := newModel(t)
	layout(m, 80, 12)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := m.AnimateScrollTo(ctx, 50)
	assert.ErrorIs(t, err, context.Canceled)

	first, _, _ := m.VisibleIndexWindow()
	assert.Equal(t, 0, first, "a superseded animation must not move the window")
}

func TestView_RendersHeaderAndWeeks(t *testing.T) {
	m := newModel(t)
	layout(m, 80, 12)

	view := m.View()
	assert.Contains(t, view, "January 2023")
	assert.Contains(t, view, "Mo")
	assert.Contains(t, view, "Su")

	lines := strings.Split(view, "\n")
	assert.Greater(t, len(lines), 4)
}

func TestView_EmptyBeforeLayout(t *testing.T) {
	m := newModel(t)
	assert.Empty(t, m.View())
}

func TestViewportIntegration_ControllerScrollLandsHere(t *testing.T) {
	m := newModel(t)
	layout(m, 80, 12)

	m.Calendar().ScrollToMonth(core.YM(2023, time.April))
	assert.Equal(t, core.YM(2023, time.April), m.Calendar().FirstVisibleMonth().YearMonth)
	assert.Contains(t, m.View(), "April 2023")
}
