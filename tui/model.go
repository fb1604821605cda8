package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/katalvlaran/calgrid/calendar"
	"github.com/katalvlaran/calgrid/core"
	"github.com/katalvlaran/calgrid/indexmap"
)

// Model is the bubbletea component rendering one scrollable calendar. It
// implements calendar.Viewport for the controller it owns: the visible
// index window is derived from the terminal height and the current scroll
// offset.
type Model struct {
	cal    *calendar.Calendar
	styles Styles

	offset int // first visible index position
	width  int
	height int

	today    time.Time
	hasToday bool
}

// NewModel builds the shell and its controller over [start, end]. The model
// itself is handed to calendar.New as the viewport, so scroll requests from
// the controller land back here.
func NewModel(start, end core.YearMonth, opts ...calendar.Option) (*Model, error) {
	m := &Model{styles: DefaultStyles()}
	cal, err := calendar.New(m, start, end, opts...)
	if err != nil {
		return nil, err
	}
	m.cal = cal
	return m, nil
}

// Calendar exposes the controller, e.g. for saved-state capture on exit.
func (m *Model) Calendar() *calendar.Calendar { return m.cal }

// SetStyles replaces the theme.
func (m *Model) SetStyles(s Styles) { m.styles = s }

// SetToday sets the date highlighted as today and targeted by the t key.
// The shell resolves "now" for the model; the model never reads the clock.
func (m *Model) SetToday(t time.Time) {
	m.today = core.Midnight(t)
	m.hasToday = true
}

// VisibleIndexWindow implements calendar.Viewport. Before the first
// WindowSizeMsg there is no layout, hence no window.
func (m *Model) VisibleIndexWindow() (int, int, bool) {
	if m.height == 0 {
		return 0, 0, false
	}
	last := m.offset + m.windowSize() - 1
	if max := m.cal.ItemCount() - 1; last > max {
		last = max
	}
	if last < m.offset {
		return 0, 0, false
	}
	return m.offset, last, true
}

// ScrollTo implements calendar.Viewport: an instant jump, clamped so the
// window stays inside the index space.
func (m *Model) ScrollTo(index int) {
	m.offset = m.clamp(index)
	m.cal.SetVisibleItemState(calendar.VisibleItemState{FirstVisibleIndex: m.offset})
}

// AnimateScrollTo implements calendar.Viewport. Terminal cells do not
// animate, so the smooth scroll degenerates to a jump; a cancelled context
// suppresses it, mirroring a superseded animation.
func (m *Model) AnimateScrollTo(ctx context.Context, index int) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.ScrollTo(index)
	return nil
}

// RequestInitialScrollTo implements calendar.Viewport.
func (m *Model) RequestInitialScrollTo(index int) {
	m.offset = m.clamp(index)
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd { return nil }

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.offset = m.clamp(m.offset)

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "up", "k":
			m.ScrollTo(m.offset - core.DaysPerWeek)
		case "down", "j":
			m.ScrollTo(m.offset + core.DaysPerWeek)
		case "pgup":
			m.ScrollTo(m.offset - m.windowSize())
		case "pgdown":
			m.ScrollTo(m.offset + m.windowSize())
		case "home":
			m.ScrollTo(0)
		case "end":
			m.ScrollTo(m.cal.ItemCount() - 1)
		case "t":
			if m.hasToday {
				m.cal.ScrollToDate(m.today, core.PositionInMonth)
			}
		}
	}
	return m, nil
}

// View implements tea.Model: it renders exactly the items inside the
// visible window, packing day cells into 7-column rows and interleaving
// month headers with their weekday captions.
func (m *Model) View() string {
	first, last, ok := m.VisibleIndexWindow()
	if !ok {
		return ""
	}

	var (
		b   strings.Builder
		row []core.CalendarDay
	)
	flush := func() {
		if len(row) == 0 {
			return
		}
		cells := make([]string, len(row))
		for i, d := range row {
			cells[i] = m.renderDay(d)
		}
		b.WriteString(strings.Join(cells, " "))
		b.WriteByte('\n')
		row = row[:0]
	}

	for pos := first; pos <= last; pos++ {
		item, ok := m.cal.ItemAt(pos)
		if !ok {
			break
		}
		switch item.Kind {
		case indexmap.ItemMonthHeader:
			flush()
			b.WriteString(m.styles.MonthHeader.Render(headerTitle(item.Month.YearMonth)))
			b.WriteByte('\n')
			b.WriteString(m.styles.WeekdayRow.Render(weekdayCaption(m.cal.FirstDayOfWeek())))
			b.WriteByte('\n')
		case indexmap.ItemDayCell:
			row = append(row, item.Day)
			if len(row) == core.DaysPerWeek {
				flush()
			}
		}
	}
	flush()

	b.WriteString(m.styles.Footer.Render(fmt.Sprintf("%s  [%d-%d/%d]",
		m.cal.Range(), first, last, m.cal.ItemCount())))
	return b.String()
}

// renderDay picks the style for one cell: today beats in/out classification.
func (m *Model) renderDay(d core.CalendarDay) string {
	text := fmt.Sprintf("%2d", d.Date.Day())
	switch {
	case m.hasToday && d.Position == core.PositionInMonth && d.Date.Equal(m.today):
		return m.styles.Today.Render(text)
	case d.Position != core.PositionInMonth:
		return m.styles.OutDate.Render(text)
	default:
		return m.styles.Day.Render(text)
	}
}

// windowSize maps the terminal height to an index-window size: every text
// row holds at most one week of day cells, and headers consume two rows,
// so height-2 week rows is a safe lower bound the controller can rely on.
func (m *Model) windowSize() int {
	rows := m.height - 2 // footer + slack for one header block
	if rows < 1 {
		rows = 1
	}
	return rows * core.DaysPerWeek
}

// clamp keeps an offset inside [0, ItemCount-1].
func (m *Model) clamp(index int) int {
	if index < 0 {
		return 0
	}
	if max := m.cal.ItemCount() - 1; index > max {
		return max
	}
	return index
}

// headerTitle renders "January 2023".
func headerTitle(ym core.YearMonth) string {
	return fmt.Sprintf("%s %d", ym.Month, ym.Year)
}

// weekdayCaption renders "Mo Tu We Th Fr Sa Su" starting from the
// configured first day of the week.
func weekdayCaption(first time.Weekday) string {
	names := make([]string, core.DaysPerWeek)
	for i := 0; i < core.DaysPerWeek; i++ {
		wd := time.Weekday((int(first) + i) % core.DaysPerWeek)
		names[i] = wd.String()[:2]
	}
	return strings.Join(names, " ")
}
