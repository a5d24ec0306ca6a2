package fitdash

import (
	"fmt"

	"golang.org/x/text/cases"
)

// WorkoutType is the closed set of filter selectors
type WorkoutType int

const (
	All WorkoutType = iota
	Running
	Strength
	Cycling
	Yoga
	HIIT
	Walking
	Swimming
)

var workoutTypes = []struct {
	label string
	icon  string
}{
	All:      {"All", "list.bullet"},
	Running:  {"Running", "figure.run"},
	Strength: {"Strength", "dumbbell.fill"},
	Cycling:  {"Cycling", "bicycle"},
	Yoga:     {"Yoga", "figure.yoga"},
	HIIT:     {"HIIT", "bolt.fill"},
	Walking:  {"Walking", "figure.walk"},
	Swimming: {"Swimming", "figure.pool.swim"},
}

// WorkoutTypes returns every filter selector in display order
func WorkoutTypes() []WorkoutType {
	res := make([]WorkoutType, len(workoutTypes))
	for i := range workoutTypes {
		res[i] = WorkoutType(i)
	}
	return res
}

// ParseWorkoutType matches a label case-insensitively
func ParseWorkoutType(s string) (WorkoutType, error) {
	if s == "" {
		return All, nil
	}
	for i, wt := range workoutTypes {
		if fold(wt.label) == fold(s) {
			return WorkoutType(i), nil
		}
	}
	return All, fmt.Errorf("unknown workout type %q", s)
}

func (t WorkoutType) String() string {
	if t < 0 || int(t) >= len(workoutTypes) {
		return fmt.Sprintf("WorkoutType(%d)", int(t))
	}
	return workoutTypes[t].label
}

// Icon returns the filter chip icon
func (t WorkoutType) Icon() string {
	if t < 0 || int(t) >= len(workoutTypes) {
		return IconDefault
	}
	return workoutTypes[t].icon
}

func (t WorkoutType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *WorkoutType) UnmarshalText(b []byte) error {
	wt, err := ParseWorkoutType(string(b))
	if err != nil {
		return err
	}
	*t = wt
	return nil
}

// Theme is one of the gradient themes a category renders with
type Theme struct {
	Name  string `json:"name"`
	Start string `json:"start"`
	End   string `json:"end"`
}

var (
	ThemePrimary   = Theme{Name: "primary", Start: "#667EEA", End: "#764BA2"}
	ThemeSecondary = Theme{Name: "secondary", Start: "#06B6D4", End: "#3B82F6"}
	ThemeAccent    = Theme{Name: "accent", Start: "#F472B6", End: "#EC4899"}
	ThemeSuccess   = Theme{Name: "success", Start: "#10B981", End: "#059669"}
	// ThemeIntensity blends the accent end into the primary start
	ThemeIntensity = Theme{Name: "intensity", Start: "#EC4899", End: "#667EEA"}
)

// IconDefault is the icon of unrecognized categories
const IconDefault = "figure.mixed.cardio"

type rule[T any] struct {
	patterns []string
	value    T
}

// evaluated top to bottom, first match wins
var iconRules = []rule[string]{
	{[]string{"corrida", "running"}, "figure.run"},
	{[]string{"musculação", "strength"}, "dumbbell.fill"},
	{[]string{"ciclismo", "cycling"}, "bicycle"},
	{[]string{"yoga"}, "figure.yoga"},
	{[]string{"caminhada", "walking"}, "figure.walk"},
	{[]string{"hiit"}, "bolt.fill"},
	{[]string{"natação", "swimming"}, "figure.pool.swim"},
	{[]string{"alongamento", "stretching"}, "figure.flexibility"},
}

var themeRules = []rule[Theme]{
	{[]string{"corrida", "running", "caminhada"}, ThemeSuccess},
	{[]string{"musculação", "strength", "peso"}, ThemePrimary},
	{[]string{"ciclismo", "cycling", "bike"}, ThemeSecondary},
	{[]string{"yoga", "alongamento", "stretching"}, ThemeAccent},
	{[]string{"hiit", "crossfit", "funcional"}, ThemeIntensity},
}

func lookup[T any](rules []rule[T], category string, fallback T) T {
	c := fold(category)
	for _, r := range rules {
		for _, p := range r.patterns {
			if fold(p) == c {
				return r.value
			}
		}
	}
	return fallback
}

// Icon returns the icon for a free-text category
func Icon(category string) string {
	return lookup(iconRules, category, IconDefault)
}

// ThemeFor returns the gradient theme for a free-text category
func ThemeFor(category string) Theme {
	return lookup(themeRules, category, ThemePrimary)
}

func fold(s string) string {
	// a Caser is stateful and not safe for concurrent use
	return cases.Fold().String(s)
}
