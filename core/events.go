package core

import "fmt"

type EventKind int

const (
	// EventTimeUpdated is emitted by the dial whenever its time changes.
	EventTimeUpdated EventKind = iota + 1
	// EventInput carries the complete picker value after a unit change.
	// It is not emitted while a unit is unset.
	EventInput
	EventUnitSelected
	EventSelectModeChanged
	EventPeriodChanged
	// EventConfirmed fires once the last unit is committed with a new value.
	EventConfirmed
	EventDateChanged
	EventTabChanged
	EventColorChanged
)

func (k EventKind) String() string {
	switch k {
	case EventTimeUpdated:
		return "time-updated"
	case EventInput:
		return "input"
	case EventUnitSelected:
		return "unit-selected"
	case EventSelectModeChanged:
		return "select-mode"
	case EventPeriodChanged:
		return "period"
	case EventConfirmed:
		return "confirmed"
	case EventDateChanged:
		return "date"
	case EventTabChanged:
		return "tab"
	case EventColorChanged:
		return "color"
	}
	return fmt.Sprintf("event(%d)", int(k))
}

// Event is a notification from a picker to its host. Only the fields that
// matter for Kind are filled.
type Event struct {
	Kind   EventKind
	Mode   SelectMode
	Value  int
	Time   Time
	Period Period
	Text   string
}

func HasEvent(events []Event, kind EventKind) bool {
	_, ok := FindEvent(events, kind)
	return ok
}

func FindEvent(events []Event, kind EventKind) (Event, bool) {
	for _, e := range events {
		if e.Kind == kind {
			return e, true
		}
	}
	return Event{}, false
}
