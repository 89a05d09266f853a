package widgets

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// Calendar renders the month containing Selected, Monday first.
type Calendar struct {
	Selected time.Time
}

var (
	calHeadStyle     = lipgloss.NewStyle().Foreground(ColorAccent).Bold(true)
	calWeekdayStyle  = lipgloss.NewStyle().Foreground(ColorMuted)
	calSelectedStyle = lipgloss.NewStyle().Foreground(ColorBase).Background(ColorAccent).Bold(true)
)

// CalendarWidth is the width of every rendered calendar line.
const CalendarWidth = 20

func (c Calendar) month() (first time.Time, offset, days int) {
	y, m, _ := c.Selected.Date()
	first = time.Date(y, m, 1, 0, 0, 0, 0, c.Selected.Location())
	offset = (int(first.Weekday()) + 6) % 7
	days = first.AddDate(0, 1, -1).Day()
	return first, offset, days
}

// DayAt returns the day of the month drawn at col, row.
func (c Calendar) DayAt(col, row int) (int, bool) {
	if row < 2 || col < 0 || col >= CalendarWidth || col%3 == 2 {
		return 0, false
	}
	_, offset, days := c.month()
	d := (row-2)*7 + col/3 - offset + 1
	if d < 1 || d > days {
		return 0, false
	}
	return d, true
}

func (c Calendar) Render() string {
	first, offset, days := c.month()

	lines := []string{
		calHeadStyle.Render(fmt.Sprintf("%-20s", first.Format("January 2006"))),
		calWeekdayStyle.Render("Mo Tu We Th Fr Sa Su"),
	}
	cells := make([]string, 0, 7)
	for i := 0; i < offset; i++ {
		cells = append(cells, "  ")
	}
	for d := 1; d <= days; d++ {
		label := fmt.Sprintf("%2d", d)
		if d == c.Selected.Day() {
			label = calSelectedStyle.Render(label)
		}
		cells = append(cells, label)
		if len(cells) == 7 {
			lines = append(lines, strings.Join(cells, " "))
			cells = cells[:0]
		}
	}
	if len(cells) > 0 {
		lines = append(lines, strings.Join(cells, " "))
	}
	return strings.Join(lines, "\n")
}
