package fitdash

import (
	"bytes"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Workout is a single logged workout session
type Workout struct {
	ID       uuid.UUID `json:"id"`
	Type     string    `json:"type"`
	Duration float64   `json:"duration"`
	Date     time.Time `json:"date"`
	Calories float64   `json:"calories"`
	Distance Distance  `json:"distance"`
}

// Distance is an optional distance in meters
type Distance struct {
	meters float64
	valid  bool
}

// Meters returns a present distance
func Meters(m float64) Distance {
	return Distance{meters: m, valid: true}
}

// NoDistance is the distance of activities without one
var NoDistance = Distance{}

// Meters returns the distance and whether it is present
func (d Distance) Meters() (float64, bool) {
	return d.meters, d.valid
}

func (d Distance) MarshalJSON() ([]byte, error) {
	if !d.valid {
		return []byte("null"), nil
	}
	return json.Marshal(d.meters)
}

func (d *Distance) UnmarshalJSON(b []byte) error {
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		*d = NoDistance
		return nil
	}
	var m float64
	if err := json.Unmarshal(b, &m); err != nil {
		return err
	}
	*d = Meters(m)
	return nil
}

// Stats summarizes the workouts of a week
type Stats struct {
	Count    int     `json:"count"`
	Duration float64 `json:"duration"`
	Calories float64 `json:"calories"`
}

// Group is the set of workouts sharing a date bucket label
type Group struct {
	Label    string     `json:"label"`
	Workouts []*Workout `json:"workouts"`
}

// Config holds the application configuration
type Config struct {
	Locale   string      `json:"locale"`
	Refresh  string      `json:"refresh"`
	Defaults Preferences `json:"defaults"`
}

// RefreshDelay returns the simulated refresh delay, one second if unset
func (c *Config) RefreshDelay() (time.Duration, error) {
	if c.Refresh == "" {
		return time.Second, nil
	}
	return time.ParseDuration(c.Refresh)
}
