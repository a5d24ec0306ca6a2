package fitdash

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	recent = 3
	streak = 7
)

// progress holds the placeholder heights of the weekly progress bars
var progress = []int{60, 80, 45, 100, 70, 90, 50}

// Row is a workout rendered for a list
type Row struct {
	ID       uuid.UUID `json:"id"`
	Type     string    `json:"type"`
	Icon     string    `json:"icon"`
	Theme    Theme     `json:"theme"`
	Duration string    `json:"duration"`
	Distance string    `json:"distance,omitempty"`
	Calories int       `json:"calories"`
}

// Detail is a single workout rendered for its detail screen
type Detail struct {
	Row
	Date string `json:"date"`
	Time string `json:"time"`
}

// Card is one dashboard statistic
type Card struct {
	Icon  string `json:"icon"`
	Value string `json:"value"`
	Label string `json:"label"`
	Theme Theme  `json:"theme"`
}

// Bar is one day of the weekly progress chart
type Bar struct {
	Day    string `json:"day"`
	Height int    `json:"height"`
}

// Dashboard is the home screen
type Dashboard struct {
	Greeting string `json:"greeting"`
	Stats    Stats  `json:"stats"`
	Cards    []Card `json:"cards"`
	Progress []Bar  `json:"progress"`
	Recent   []Row  `json:"recent"`
}

// Chip is a filter selector
type Chip struct {
	Title    string `json:"title"`
	Icon     string `json:"icon"`
	Selected bool   `json:"selected"`
}

// Section is a date bucket of rendered rows
type Section struct {
	Label string `json:"label"`
	Rows  []Row  `json:"rows"`
}

// WorkoutList is the filtered, grouped workout screen
type WorkoutList struct {
	Filters  []Chip    `json:"filters"`
	Search   string    `json:"search"`
	Sections []Section `json:"sections"`
	Empty    bool      `json:"empty"`
}

// Tracker assembles screens from the workouts of a provider
type Tracker struct {
	provider Provider
	locale   *Locale
	// Now returns the reference time for date labels and weekly stats
	Now func() time.Time
}

func NewTracker(provider Provider, locale *Locale) *Tracker {
	return &Tracker{provider: provider, locale: locale, Now: time.Now}
}

func (t *Tracker) formatter(prefs Preferences) *Formatter {
	return NewFormatter(t.locale, prefs.DecimalTime)
}

func row(act *Workout, f *Formatter) Row {
	dist, _ := f.Distance(act.Distance)
	return Row{
		ID:       act.ID,
		Type:     act.Type,
		Icon:     Icon(act.Type),
		Theme:    ThemeFor(act.Type),
		Duration: f.Duration(act.Duration),
		Distance: dist,
		Calories: int(act.Calories),
	}
}

// Dashboard returns the home screen
func (t *Tracker) Dashboard(ctx context.Context, prefs Preferences) (*Dashboard, error) {
	acts, err := t.provider.Workouts(ctx)
	if err != nil {
		return nil, err
	}
	now := t.Now()
	f := t.formatter(prefs)
	stats := WeeklyStats(acts, now)
	log.Debug().Int("count", stats.Count).Time("week", StartOfWeek(now)).Msg("dashboard")

	d := &Dashboard{
		Greeting: f.Locale.Greeting(now.Hour()),
		Stats:    stats,
		Cards: []Card{
			{Icon: "flame.fill", Value: fmt.Sprintf("%d", int(stats.Calories)), Label: f.Locale.Calories, Theme: ThemeAccent},
			{Icon: "clock.fill", Value: f.Duration(stats.Duration), Label: f.Locale.Duration, Theme: ThemePrimary},
			{Icon: "figure.run", Value: fmt.Sprintf("%d", stats.Count), Label: f.Locale.Workouts, Theme: ThemeSuccess},
			{Icon: "chart.line.uptrend.xyaxis", Value: fmt.Sprintf("%d", streak), Label: f.Locale.Streak, Theme: ThemeSecondary},
		},
	}
	for i, h := range progress {
		d.Progress = append(d.Progress, Bar{Day: f.Locale.Weekdays[i], Height: h})
	}
	for i, act := range acts {
		if i == recent {
			break
		}
		d.Recent = append(d.Recent, row(act, f))
	}
	return d, nil
}

// Workouts returns the workout list screen for the filter and search text
func (t *Tracker) Workouts(ctx context.Context, filter WorkoutType, search string, prefs Preferences) (*WorkoutList, error) {
	acts, err := t.provider.Workouts(ctx)
	if err != nil {
		return nil, err
	}
	f := t.formatter(prefs)
	acts = FilterWorkouts(acts, filter, search)
	log.Debug().Str("filter", filter.String()).Str("search", search).Int("n", len(acts)).Msg("workouts")

	res := &WorkoutList{Search: search, Empty: len(acts) == 0, Sections: []Section{}}
	for _, wt := range WorkoutTypes() {
		res.Filters = append(res.Filters, Chip{Title: wt.String(), Icon: wt.Icon(), Selected: wt == filter})
	}
	for _, grp := range GroupByDateBucket(acts, t.Now(), f) {
		sec := Section{Label: grp.Label}
		for _, act := range grp.Workouts {
			sec.Rows = append(sec.Rows, row(act, f))
		}
		res.Sections = append(res.Sections, sec)
	}
	return res, nil
}

// Workout returns the detail screen of a workout, nil if no workout has the id
func (t *Tracker) Workout(ctx context.Context, id uuid.UUID, prefs Preferences) (*Detail, error) {
	acts, err := t.provider.Workouts(ctx)
	if err != nil {
		return nil, err
	}
	f := t.formatter(prefs)
	now := t.Now()
	for _, act := range acts {
		if act.ID == id {
			return &Detail{
				Row:  row(act, f),
				Date: f.DateLabel(act.Date, now),
				Time: f.Clock(act.Date, now),
			}, nil
		}
	}
	return nil, nil
}

// Refresh simulates reloading the workouts: the returned channel is closed
// once `d` has elapsed. It cannot be canceled and never fails.
func Refresh(d time.Duration) <-chan struct{} {
	done := make(chan struct{})
	time.AfterFunc(d, func() { close(done) })
	return done
}
