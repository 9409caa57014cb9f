package event

import (
	"fmt"
	"regexp"
	"strings"
)

// Color is a display palette tag. It only groups events visually.
type Color string

const (
	Blue   Color = "blue"
	Green  Color = "green"
	Pink   Color = "pink"
	Yellow Color = "yellow"
	Gray   Color = "gray"
	Red    Color = "red"
)

// AllColors returns the palette in display order.
func AllColors() []Color {
	return []Color{Blue, Green, Pink, Yellow, Gray, Red}
}

// legacyColor matches stored css class names like "bg-blue-200".
var legacyColor = regexp.MustCompile(`^bg-([a-z]+)-\d{2,3}$`)

// ParseColor converts a string to a Color. Css class names written by older
// versions of the calendar ("bg-green-200") are accepted and normalised.
func ParseColor(raw string) (Color, error) {
	c := strings.ToLower(strings.TrimSpace(raw))
	if m := legacyColor.FindStringSubmatch(c); m != nil {
		c = m[1]
	}
	if c == "grey" {
		c = string(Gray)
	}
	for _, candidate := range AllColors() {
		if string(candidate) == c {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("event: unknown color %q", raw)
}

// Importance ranks an event.
type Importance string

const (
	Low    Importance = "low"
	Medium Importance = "medium"
	High   Importance = "high"
)

// AllImportances returns the supported importance levels, lowest first.
func AllImportances() []Importance {
	return []Importance{Low, Medium, High}
}

// ParseImportance converts a string to an Importance.
func ParseImportance(raw string) (Importance, error) {
	i := Importance(strings.ToLower(strings.TrimSpace(raw)))
	for _, candidate := range AllImportances() {
		if candidate == i {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("event: unknown importance %q", raw)
}

// Type categorises an event.
type Type string

const (
	Work     Type = "work"
	Personal Type = "personal"
	Meeting  Type = "meeting"
	Reminder Type = "reminder"
	Other    Type = "other"
)

// AllTypes returns the supported event types.
func AllTypes() []Type {
	return []Type{Work, Personal, Meeting, Reminder, Other}
}

// ParseType converts a string to a Type.
func ParseType(raw string) (Type, error) {
	t := Type(strings.ToLower(strings.TrimSpace(raw)))
	for _, candidate := range AllTypes() {
		if candidate == t {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("event: unknown type %q", raw)
}

// DefaultColor is the color picked for a type when none was chosen.
func (t Type) DefaultColor() Color {
	switch t {
	case Work:
		return Blue
	case Personal:
		return Pink
	case Meeting:
		return Green
	case Reminder:
		return Yellow
	default:
		return Gray
	}
}
