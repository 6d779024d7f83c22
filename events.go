package hoard

import "fmt"

// EventKind is the broad family a world event belongs to.
type EventKind int

const (
	EventEconomic EventKind = iota
	EventPolitical
	EventMagical
	EventPersonal
)

func (k EventKind) String() string {
	switch k {
	case EventEconomic:
		return "economic"
	case EventPolitical:
		return "political"
	case EventMagical:
		return "magical"
	case EventPersonal:
		return "personal"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// ParseEventKind returns the event kind named by s.
func ParseEventKind(s string) (EventKind, error) {
	for _, k := range []EventKind{EventEconomic, EventPolitical, EventMagical, EventPersonal} {
		if k.String() == s {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown event kind %q", s)
}

// WorldEvent is the basic Event carried into ApplyEvent. The engine forwards
// it blindly; the world simulation that produced it decides what it means.
type WorldEvent struct {
	Name   string
	Kind   EventKind
	Year   int
	Region string
}

// NewWorldEvent creates an event with just a name and kind.
func NewWorldEvent(name string, kind EventKind) *WorldEvent {
	return &WorldEvent{Name: name, Kind: kind}
}

// Label identifies the event in logs and notifications.
func (e *WorldEvent) Label() string {
	if e.Name == "" {
		return e.Kind.String()
	}
	return e.Name
}
