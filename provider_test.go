package fitdash_test

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"

	"github.com/bzimmer/fitdash"
)

func TestSampleProvider(t *testing.T) {
	a := assert.New(t)
	data, err := fitdash.Content.ReadFile("etc/workouts.json")
	require.NoError(t, err)

	p, err := fitdash.NewSampleProvider(data, now)
	require.NoError(t, err)
	acts, err := p.Workouts(context.Background())
	require.NoError(t, err)
	a.Len(acts, 12)

	a.Equal("Running", acts[0].Type)
	a.Equal(now, acts[0].Date)
	m, ok := acts[0].Distance.Meters()
	a.True(ok)
	a.Equal(6500.0, m)
	_, ok = acts[1].Distance.Meters()
	a.False(ok)
	a.Equal(now.Add(-9*24*time.Hour), acts[11].Date)

	// the snapshot is a copy
	acts[0] = nil
	again, err := p.Workouts(context.Background())
	require.NoError(t, err)
	a.NotNil(again[0])

	_, err = fitdash.NewSampleProvider([]byte("{"), now)
	a.Error(err)
}

func TestFakeProvider(t *testing.T) {
	a := assert.New(t)

	p, err := fitdash.NewFakeProvider(50, 7, now)
	require.NoError(t, err)
	acts, err := p.Workouts(context.Background())
	require.NoError(t, err)
	a.Len(acts, 50)
	for _, act := range acts {
		a.False(act.Date.After(now))
		a.True(act.Date.After(now.AddDate(0, 0, -15)))
		a.GreaterOrEqual(act.Duration, 0.0)
		a.GreaterOrEqual(act.Calories, 0.0)
	}

	q, err := fitdash.NewFakeProvider(50, 7, now)
	require.NoError(t, err)
	other, err := q.Workouts(context.Background())
	require.NoError(t, err)
	a.Equal(acts, other, "same seed, same workouts")
}

func TestValidate(t *testing.T) {
	a := assert.New(t)

	a.NoError(fitdash.Validate(nil))

	id := uuid.New()
	acts := []*fitdash.Workout{
		{ID: id, Type: "Running", Duration: 100, Calories: 10, Distance: fitdash.Meters(100)},
		{ID: id, Type: "Yoga", Duration: -1, Calories: -1, Distance: fitdash.Meters(-5)},
		nil,
	}
	err := fitdash.Validate(acts)
	a.Error(err)
	a.Len(multierr.Errors(err), 5)

	_, err = fitdash.NewStaticProvider(acts)
	a.Error(err)

	acts = []*fitdash.Workout{
		{ID: uuid.New(), Type: "Running", Duration: math.NaN(), Calories: 10},
		{ID: uuid.New(), Type: "Yoga", Duration: 100, Calories: math.Inf(1)},
		{ID: uuid.New(), Type: "Cycling", Duration: 100, Calories: 10, Distance: fitdash.Meters(math.NaN())},
		{ID: uuid.New(), Type: "Walking", Duration: math.Inf(-1), Calories: 10},
	}
	err = fitdash.Validate(acts)
	a.Error(err)
	a.Len(multierr.Errors(err), 4)
}
