package entity

import "strings"

// Urgency describes how soon a blood request needs to be fulfilled.
type Urgency string

const (
	UrgencyCritical Urgency = "Critical"
	UrgencyHigh     Urgency = "High"
	UrgencyMedium   Urgency = "Medium"
	UrgencyLow      Urgency = "Low"
)

// DefaultUrgency is applied when a request does not specify one.
const DefaultUrgency = UrgencyMedium

// String returns the string representation of the Urgency.
func (u Urgency) String() string {
	return string(u)
}

// IsValid checks if the Urgency is a known level.
func (u Urgency) IsValid() bool {
	return u.Rank() > 0
}

// Rank orders urgency levels, Critical being the highest. Unknown levels rank 0.
func (u Urgency) Rank() int {
	switch u {
	case UrgencyCritical:
		return 4
	case UrgencyHigh:
		return 3
	case UrgencyMedium:
		return 2
	case UrgencyLow:
		return 1
	default:
		return 0
	}
}

// ParseUrgency matches a level case-insensitively, e.g. "critical" -> UrgencyCritical.
func ParseUrgency(s string) (Urgency, bool) {
	for _, u := range []Urgency{UrgencyCritical, UrgencyHigh, UrgencyMedium, UrgencyLow} {
		if strings.EqualFold(strings.TrimSpace(s), string(u)) {
			return u, true
		}
	}

	return "", false
}
