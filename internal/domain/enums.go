package domain

import "fmt"

// LoadMode selects how a project's daily load is derived.
type LoadMode string

const (
	// LoadCalculated derives daily load from required days spread over the
	// working days in the project's range.
	LoadCalculated LoadMode = "calculated"
	// LoadReported prefers the manually reported load fraction when one is
	// present, falling back to the calculated value.
	LoadReported LoadMode = "reported"
)

// ValidLoadModes is the canonical set of accepted load mode strings.
var ValidLoadModes = map[string]bool{
	string(LoadCalculated): true,
	string(LoadReported):   true,
}

// Granularity is the period size workload is bucketed into for display.
type Granularity string

const (
	GranularityDay   Granularity = "day"
	GranularityWeek  Granularity = "week"
	GranularityMonth Granularity = "month"
)

// ParseGranularity resolves a user-supplied granularity string, accepting
// the short forms d/w/m.
func ParseGranularity(s string) (Granularity, error) {
	switch s {
	case "day", "d":
		return GranularityDay, nil
	case "week", "w":
		return GranularityWeek, nil
	case "month", "m":
		return GranularityMonth, nil
	}
	return "", fmt.Errorf("invalid granularity %q (expected day, week or month)", s)
}

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// ValidPriorities is the canonical set of accepted priority strings.
var ValidPriorities = map[string]bool{
	string(PriorityLow):    true,
	string(PriorityMedium): true,
	string(PriorityHigh):   true,
}
