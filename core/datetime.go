package core

import "time"

type DateTimeTab int

const (
	TabDate DateTimeTab = iota
	TabTime
)

func (t DateTimeTab) String() string {
	if t == TabTime {
		return "Time"
	}
	return "Date"
}

// DateTimePicker pairs a calendar day with a time picker behind two tabs.
type DateTimePicker struct {
	date time.Time
	time *TimePicker
	tab  DateTimeTab
}

func NewDateTimePicker(date time.Time, opts TimePickerOptions) *DateTimePicker {
	y, m, d := date.Date()
	dt := &DateTimePicker{
		date: time.Date(y, m, d, 0, 0, 0, 0, date.Location()),
		time: NewTimePicker(opts),
	}
	return dt
}

func (d *DateTimePicker) Tab() DateTimeTab       { return d.tab }
func (d *DateTimePicker) Date() time.Time        { return d.date }
func (d *DateTimePicker) TimePicker() *TimePicker { return d.time }

// DateTitle is the short header shown next to the time title.
func (d *DateTimePicker) DateTitle() string {
	return d.date.Format("Mon, Jan 2")
}

func (d *DateTimePicker) SetValue(t time.Time) {
	y, m, day := t.Date()
	d.date = time.Date(y, m, day, 0, 0, 0, 0, t.Location())
	d.time.SetTime(t)
}

func (d *DateTimePicker) SwitchTab(tab DateTimeTab) []Event {
	if tab == d.tab || (tab != TabDate && tab != TabTime) {
		return nil
	}
	d.tab = tab
	return []Event{{Kind: EventTabChanged, Value: int(tab), Text: tab.String()}}
}

func (d *DateTimePicker) StepDate(days int) []Event {
	if days == 0 {
		return nil
	}
	d.date = d.date.AddDate(0, 0, days)
	return []Event{{Kind: EventDateChanged, Text: d.date.Format(time.DateOnly)}}
}

// Value combines both halves. It reports false until the time is complete.
func (d *DateTimePicker) Value() (time.Time, bool) {
	t := d.time.Time()
	if !t.Complete(d.time.Options().UseSeconds) {
		return time.Time{}, false
	}
	y, m, day := d.date.Date()
	return time.Date(y, m, day, t.Hour.Value, t.Minute.Value, t.Second.Or(0), 0, d.date.Location()), true
}

func (d *DateTimePicker) HandleKey(key string) []Event {
	switch key {
	case "[":
		return d.SwitchTab(TabDate)
	case "]":
		return d.SwitchTab(TabTime)
	}
	if d.tab == TabTime {
		return d.time.HandleKey(key)
	}
	switch key {
	case "left", "h":
		return d.StepDate(-1)
	case "right", "l":
		return d.StepDate(1)
	case "up", "k":
		return d.StepDate(-7)
	case "down", "j":
		return d.StepDate(7)
	case "enter":
		return d.SwitchTab(TabTime)
	}
	return nil
}
