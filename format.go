package fitdash

import (
	"fmt"
	"time"

	"golang.org/x/text/language"
)

// Locale holds the display strings of a language
type Locale struct {
	Tag       language.Tag
	Today     string
	Yesterday string
	Months    [12]string
	// Weekdays starts on Monday
	Weekdays [7]string
	// Greetings are morning, afternoon and evening
	Greetings [3]string
	Calories  string
	Duration  string
	Workouts  string
	Streak    string
}

var (
	English = &Locale{
		Tag:       language.English,
		Today:     "Today",
		Yesterday: "Yesterday",
		Months: [12]string{
			"Jan", "Feb", "Mar", "Apr", "May", "Jun",
			"Jul", "Aug", "Sep", "Oct", "Nov", "Dec"},
		Weekdays:  [7]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"},
		Greetings: [3]string{"Good morning", "Good afternoon", "Good evening"},
		Calories:  "Weekly Calories",
		Duration:  "Total Time",
		Workouts:  "Weekly Workouts",
		Streak:    "Day Streak",
	}
	Portuguese = &Locale{
		Tag:       language.BrazilianPortuguese,
		Today:     "Hoje",
		Yesterday: "Ontem",
		Months: [12]string{
			"jan.", "fev.", "mar.", "abr.", "mai.", "jun.",
			"jul.", "ago.", "set.", "out.", "nov.", "dez."},
		Weekdays:  [7]string{"Seg", "Ter", "Qua", "Qui", "Sex", "Sáb", "Dom"},
		Greetings: [3]string{"Bom dia", "Boa tarde", "Boa noite"},
		Calories:  "Calorias Semana",
		Duration:  "Tempo Total",
		Workouts:  "Treinos Semana",
		Streak:    "Dias Seguidos",
	}
)

var (
	locales = []*Locale{English, Portuguese}
	matcher = language.NewMatcher([]language.Tag{English.Tag, Portuguese.Tag})
)

// LookupLocale returns the supported locale closest to `s`, English if none match
func LookupLocale(s string) *Locale {
	tag, err := language.Parse(s)
	if err != nil {
		return English
	}
	_, idx, conf := matcher.Match(tag)
	if conf == language.No {
		return English
	}
	return locales[idx]
}

// Greeting returns the salutation for the hour of the day
func (l *Locale) Greeting(hour int) string {
	switch {
	case hour >= 5 && hour < 12:
		return l.Greetings[0]
	case hour >= 12 && hour < 18:
		return l.Greetings[1]
	default:
		return l.Greetings[2]
	}
}

// Formatter renders workout fields for display
type Formatter struct {
	Locale *Locale
	// Decimal renders durations as fractional hours
	Decimal bool
}

// NewFormatter returns a Formatter for the locale and time preference
func NewFormatter(locale *Locale, decimal bool) *Formatter {
	if locale == nil {
		locale = English
	}
	return &Formatter{Locale: locale, Decimal: decimal}
}

// Duration renders seconds as "1h 30m" or "45 min", or "1.5h" in decimal mode
func (f *Formatter) Duration(seconds float64) string {
	secs := int(seconds)
	hours := secs / 3600
	minutes := (secs % 3600) / 60
	if f.Decimal {
		return fmt.Sprintf("%.1fh", float64(hours)+float64(minutes)/60)
	}
	if hours > 0 {
		return fmt.Sprintf("%dh %dm", hours, minutes)
	}
	return fmt.Sprintf("%d min", minutes)
}

// DateLabel renders the day bucket of `t` relative to `now`
func (f *Formatter) DateLabel(t, now time.Time) string {
	t = t.In(now.Location())
	today := startOfDay(now)
	switch day := startOfDay(t); {
	case day.Equal(today):
		return f.Locale.Today
	case day.Equal(today.AddDate(0, 0, -1)):
		return f.Locale.Yesterday
	default:
		return fmt.Sprintf("%02d %s", t.Day(), f.Locale.Months[t.Month()-1])
	}
}

// Clock renders the 24-hour time of day in the location of `now`, matching DateLabel
func (f *Formatter) Clock(t, now time.Time) string {
	return t.In(now.Location()).Format("15:04")
}

// Distance renders a present distance in km from 1000m up, meters below
func (f *Formatter) Distance(d Distance) (string, bool) {
	m, ok := d.Meters()
	if !ok {
		return "", false
	}
	if m >= 1000 {
		return fmt.Sprintf("%.2f km", m/1000), true
	}
	return fmt.Sprintf("%.0f m", m), true
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
