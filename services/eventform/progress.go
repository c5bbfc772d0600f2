package eventform

import (
	"strings"
	"unicode/utf8"
)

// The ten publish-readiness predicates. Progress is the satisfied count
// times ten, so it is always an exact multiple of 10 and the publish gate
// compares against exactly 100 with no rounding concerns.

// Minimum lengths count characters, not bytes.
func trimmedRunes(s string) int { return utf8.RuneCountInString(strings.TrimSpace(s)) }

func nameSet(d *Draft) bool            { return trimmedRunes(d.Name) >= 3 }
func categorySet(d *Draft) bool        { return strings.TrimSpace(d.Category) != "" }
func descriptionSet(d *Draft) bool     { return trimmedRunes(d.Description) >= 20 }
func dateSet(d *Draft) bool            { return strings.TrimSpace(d.Date) != "" }
func timeSet(d *Draft) bool            { return strings.TrimSpace(d.Time) != "" }
func addressSet(d *Draft) bool         { return trimmedRunes(d.Location.Address) >= 5 }
func citySet(d *Draft) bool            { return trimmedRunes(d.Location.City) >= 2 }
func maxParticipantsSet(d *Draft) bool { return d.MaxParticipants >= 2 }
func difficultySet(d *Draft) bool      { return strings.TrimSpace(d.Difficulty) != "" }
func eventTypeSet(d *Draft) bool       { return strings.TrimSpace(d.EventType) != "" }

var predicates = []func(*Draft) bool{
	nameSet,
	categorySet,
	descriptionSet,
	dateSet,
	timeSet,
	addressSet,
	citySet,
	maxParticipantsSet,
	difficultySet,
	eventTypeSet,
}

// Progress returns the completion percentage of the draft, a pure function
// of its fields in [0,100].
func Progress(d *Draft) int {
	satisfied := 0
	for _, p := range predicates {
		if p(d) {
			satisfied++
		}
	}
	return satisfied * 10
}

// Complete reports whether every required-field predicate holds. The
// publish/update action is gated on this, never on a rounded percentage.
func Complete(d *Draft) bool {
	return Progress(d) == 100
}
