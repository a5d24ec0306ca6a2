package fitdash

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"go.uber.org/multierr"
)

// Provider supplies a snapshot of the workout collection
type Provider interface {
	Workouts(ctx context.Context) ([]*Workout, error)
}

// StaticProvider serves a collection built once at startup
type StaticProvider struct {
	workouts []*Workout
}

type sample struct {
	Workouts []struct {
		Type     string   `json:"type"`
		Duration float64  `json:"duration"`
		DaysAgo  int      `json:"daysAgo"`
		Calories float64  `json:"calories"`
		Distance Distance `json:"distance"`
	} `json:"workouts"`
}

// NewStaticProvider returns a provider over the workouts
func NewStaticProvider(acts []*Workout) (*StaticProvider, error) {
	if err := Validate(acts); err != nil {
		return nil, err
	}
	return &StaticProvider{workouts: acts}, nil
}

// NewSampleProvider builds the sample collection with dates relative to `now`
func NewSampleProvider(data []byte, now time.Time) (*StaticProvider, error) {
	var s sample
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("sample data: %w", err)
	}
	acts := make([]*Workout, len(s.Workouts))
	for i, w := range s.Workouts {
		acts[i] = &Workout{
			ID:       uuid.New(),
			Type:     w.Type,
			Duration: w.Duration,
			Date:     now.Add(-time.Duration(w.DaysAgo) * 24 * time.Hour),
			Calories: w.Calories,
			Distance: w.Distance,
		}
	}
	return NewStaticProvider(acts)
}

var fakeTypes = []string{"Running", "Strength", "Cycling", "Yoga", "HIIT", "Walking", "Swimming", "Stretching"}

// NewFakeProvider generates `n` random workouts over the two weeks before `now`
func NewFakeProvider(n int, seed int64, now time.Time) (*StaticProvider, error) {
	faker := gofakeit.New(seed)
	acts := make([]*Workout, n)
	for i := range acts {
		typ := faker.RandomString(fakeTypes)
		dist := NoDistance
		switch typ {
		case "Running", "Cycling", "Walking", "Swimming":
			dist = Meters(float64(faker.Number(400, 40000)))
		}
		acts[i] = &Workout{
			ID:       uuid.MustParse(faker.UUID()),
			Type:     typ,
			Duration: float64(faker.Number(5, 150) * 60),
			Date:     now.Add(-time.Duration(faker.Number(0, 14*24*60)) * time.Minute),
			Calories: float64(faker.Number(50, 900)),
			Distance: dist,
		}
	}
	return NewStaticProvider(acts)
}

// Workouts returns a copy of the collection
func (p *StaticProvider) Workouts(_ context.Context) ([]*Workout, error) {
	acts := make([]*Workout, len(p.workouts))
	copy(acts, p.workouts)
	return acts, nil
}

// Validate reports every workout violating the record invariants
func Validate(acts []*Workout) error {
	var err error
	seen := make(map[uuid.UUID]bool, len(acts))
	for i, act := range acts {
		if act == nil {
			err = multierr.Append(err, fmt.Errorf("workout %d: missing", i))
			continue
		}
		if seen[act.ID] {
			err = multierr.Append(err, fmt.Errorf("workout %d: duplicate id %s", i, act.ID))
		}
		seen[act.ID] = true
		if !nonNegative(act.Duration) {
			err = multierr.Append(err, fmt.Errorf("workout %d: invalid duration %v", i, act.Duration))
		}
		if !nonNegative(act.Calories) {
			err = multierr.Append(err, fmt.Errorf("workout %d: invalid calories %v", i, act.Calories))
		}
		if m, ok := act.Distance.Meters(); ok && !nonNegative(m) {
			err = multierr.Append(err, fmt.Errorf("workout %d: invalid distance %v", i, m))
		}
	}
	return err
}

// nonNegative rejects negative, NaN and infinite values
func nonNegative(v float64) bool {
	return v >= 0 && !math.IsInf(v, 1)
}
