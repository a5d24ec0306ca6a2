package fitdash

import (
	"sort"
	"strings"
	"time"
)

// FilterWorkouts returns the workouts matching the category filter and search
// text, in input order. All disables category filtering and an empty search
// matches everything.
func FilterWorkouts(acts []*Workout, filter WorkoutType, search string) []*Workout {
	label := fold(filter.String())
	needle := fold(search)
	res := make([]*Workout, 0, len(acts))
	for _, act := range acts {
		typ := fold(act.Type)
		if filter != All && typ != label {
			continue
		}
		if search != "" && !strings.Contains(typ, needle) {
			continue
		}
		res = append(res, act)
	}
	return res
}

// GroupByDateBucket groups workouts by their date label relative to `now`.
// Groups are keyed by the rendered label only, so two different days which
// render the same label are merged. Groups are ordered by their most recent
// workout, newest first.
func GroupByDateBucket(acts []*Workout, now time.Time, f *Formatter) []*Group {
	type bucket struct {
		group  *Group
		latest time.Time
	}
	// group all workouts by label, remembering first-seen order
	var order []*bucket
	w := make(map[string]*bucket)
	for _, act := range acts {
		label := f.DateLabel(act.Date, now)
		b, ok := w[label]
		if !ok {
			b = &bucket{group: &Group{Label: label}}
			w[label] = b
			order = append(order, b)
		}
		b.group.Workouts = append(b.group.Workouts, act)
		if act.Date.After(b.latest) {
			b.latest = act.Date
		}
	}
	sort.SliceStable(order, func(i, j int) bool {
		a, b := order[i].latest, order[j].latest
		switch {
		case b.IsZero():
			return !a.IsZero()
		case a.IsZero():
			return false
		}
		return a.After(b)
	})
	res := make([]*Group, len(order))
	for i, b := range order {
		res[i] = b.group
	}
	return res
}

// WeeklyStats sums every workout on or after the start of the ISO week
// containing `ref`. There is no upper bound so future workouts count.
func WeeklyStats(acts []*Workout, ref time.Time) Stats {
	start := StartOfWeek(ref)
	var stats Stats
	for _, act := range acts {
		if act.Date.Before(start) {
			continue
		}
		stats.Count++
		stats.Duration += act.Duration
		stats.Calories += act.Calories
	}
	return stats
}

// StartOfWeek returns Monday midnight of the week containing `t` in its location
func StartOfWeek(t time.Time) time.Time {
	// Sunday is the last day of an ISO week
	offset := (int(t.Weekday()) + 6) % 7
	return startOfDay(t).AddDate(0, 0, -offset)
}
