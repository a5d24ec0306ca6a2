package fitdash_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bzimmer/fitdash"
)

func TestDuration(t *testing.T) {
	tests := []struct {
		seconds float64
		want    string
		decimal string
	}{
		{seconds: 0, want: "0 min", decimal: "0.0h"},
		{seconds: 59, want: "0 min", decimal: "0.0h"},
		{seconds: 1800, want: "30 min", decimal: "0.5h"},
		{seconds: 2700, want: "45 min", decimal: "0.8h"},
		{seconds: 3600, want: "1h 0m", decimal: "1.0h"},
		{seconds: 4200, want: "1h 10m", decimal: "1.2h"},
		{seconds: 5400, want: "1h 30m", decimal: "1.5h"},
		{seconds: 5459.9, want: "1h 30m", decimal: "1.5h"},
		{seconds: 36000, want: "10h 0m", decimal: "10.0h"},
	}
	std := fitdash.NewFormatter(fitdash.English, false)
	dec := fitdash.NewFormatter(fitdash.English, true)
	for _, tt := range tests {
		assert.Equal(t, tt.want, std.Duration(tt.seconds))
		assert.Equal(t, tt.decimal, dec.Duration(tt.seconds))
	}
}

func TestDistance(t *testing.T) {
	a := assert.New(t)
	f := fitdash.NewFormatter(nil, false)

	s, ok := f.Distance(fitdash.Meters(500))
	a.True(ok)
	a.Equal("500 m", s)

	s, ok = f.Distance(fitdash.Meters(6500))
	a.True(ok)
	a.Equal("6.50 km", s)

	s, ok = f.Distance(fitdash.Meters(1000))
	a.True(ok)
	a.Equal("1.00 km", s)

	s, ok = f.Distance(fitdash.Meters(0))
	a.True(ok)
	a.Equal("0 m", s)

	s, ok = f.Distance(fitdash.NoDistance)
	a.False(ok)
	a.Empty(s)
}

func TestDateLabel(t *testing.T) {
	a := assert.New(t)
	en := fitdash.NewFormatter(fitdash.English, false)
	pt := fitdash.NewFormatter(fitdash.Portuguese, false)

	midnight := time.Date(2026, time.October, 15, 0, 10, 0, 0, time.UTC)
	tests := []struct {
		date time.Time
		en   string
		pt   string
	}{
		{date: now, en: "Today", pt: "Hoje"},
		{date: time.Date(2026, time.October, 15, 23, 59, 0, 0, time.UTC), en: "Today", pt: "Hoje"},
		{date: time.Date(2026, time.October, 14, 0, 0, 0, 0, time.UTC), en: "Yesterday", pt: "Ontem"},
		{date: time.Date(2026, time.October, 13, 23, 59, 0, 0, time.UTC), en: "13 Oct", pt: "13 out."},
		{date: time.Date(2026, time.March, 2, 12, 0, 0, 0, time.UTC), en: "02 Mar", pt: "02 mar."},
	}
	for _, tt := range tests {
		a.Equal(tt.en, en.DateLabel(tt.date, now))
		a.Equal(tt.pt, pt.DateLabel(tt.date, now))
	}

	// late last night is yesterday just after midnight
	a.Equal("Yesterday", en.DateLabel(midnight.Add(-time.Hour), midnight))

	// labels are computed in the reference's location
	loc := time.FixedZone("BRT", -3*60*60)
	a.Equal("Yesterday", en.DateLabel(time.Date(2026, time.October, 15, 1, 0, 0, 0, time.UTC), time.Date(2026, time.October, 15, 12, 0, 0, 0, loc)))
}

func TestClock(t *testing.T) {
	a := assert.New(t)
	f := fitdash.NewFormatter(fitdash.English, false)
	a.Equal("10:00", f.Clock(now, now))
	a.Equal("07:05", f.Clock(time.Date(2026, time.October, 15, 7, 5, 30, 0, time.UTC), now))
	a.Equal("23:59", f.Clock(time.Date(2026, time.October, 15, 23, 59, 0, 0, time.UTC), now))

	// the clock agrees with the date label's day
	loc := time.FixedZone("BRT", -3*60*60)
	ref := time.Date(2026, time.October, 15, 12, 0, 0, 0, loc)
	date := time.Date(2026, time.October, 15, 1, 0, 0, 0, time.UTC)
	a.Equal("Yesterday", f.DateLabel(date, ref))
	a.Equal("22:00", f.Clock(date, ref))
}

func TestGreeting(t *testing.T) {
	tests := []struct {
		hour int
		en   string
		pt   string
	}{
		{hour: 0, en: "Good evening", pt: "Boa noite"},
		{hour: 4, en: "Good evening", pt: "Boa noite"},
		{hour: 5, en: "Good morning", pt: "Bom dia"},
		{hour: 11, en: "Good morning", pt: "Bom dia"},
		{hour: 12, en: "Good afternoon", pt: "Boa tarde"},
		{hour: 17, en: "Good afternoon", pt: "Boa tarde"},
		{hour: 18, en: "Good evening", pt: "Boa noite"},
		{hour: 23, en: "Good evening", pt: "Boa noite"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.en, fitdash.English.Greeting(tt.hour))
		assert.Equal(t, tt.pt, fitdash.Portuguese.Greeting(tt.hour))
	}
}

func TestLookupLocale(t *testing.T) {
	a := assert.New(t)
	a.Same(fitdash.English, fitdash.LookupLocale("en"))
	a.Same(fitdash.English, fitdash.LookupLocale("en-GB"))
	a.Same(fitdash.English, fitdash.LookupLocale(""))
	a.Same(fitdash.English, fitdash.LookupLocale("!!"))
	a.Same(fitdash.Portuguese, fitdash.LookupLocale("pt-BR"))
	a.Same(fitdash.Portuguese, fitdash.LookupLocale("pt"))
}
