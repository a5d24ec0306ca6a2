package fitdash

import (
	"fmt"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

const (
	sessionName    = "settings"
	keyDarkMode    = "isDarkMode"
	keyDecimalTime = "useDecimalTime"
)

// Preferences are the persisted display preferences
type Preferences struct {
	DarkMode    bool `json:"darkMode"`
	DecimalTime bool `json:"decimalTime"`
}

// DefaultPreferences match a fresh install
var DefaultPreferences = Preferences{DarkMode: true, DecimalTime: false}

// Settings reads and writes preferences in the client's session
type Settings struct {
	defaults Preferences
}

func NewSettings(defaults Preferences) *Settings {
	return &Settings{defaults: defaults}
}

// Middleware installs the cookie session store
func (s *Settings) Middleware(key []byte) echo.MiddlewareFunc {
	store := sessions.NewCookieStore(key)
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 365,
		HttpOnly: true,
	}
	return session.Middleware(store)
}

// Load returns the stored preferences, falling back to the defaults per key
func (s *Settings) Load(c echo.Context) (Preferences, error) {
	prefs := s.defaults
	sess, err := session.Get(sessionName, c)
	if err != nil {
		return prefs, fmt.Errorf("load settings: %w", err)
	}
	if v, ok := sess.Values[keyDarkMode].(bool); ok {
		prefs.DarkMode = v
	}
	if v, ok := sess.Values[keyDecimalTime].(bool); ok {
		prefs.DecimalTime = v
	}
	return prefs, nil
}

// Save stores the preferences
func (s *Settings) Save(c echo.Context, prefs Preferences) error {
	// an undecodable cookie still yields a new session which overwrites it
	sess, err := session.Get(sessionName, c)
	if sess == nil {
		return fmt.Errorf("save settings: %w", err)
	}
	if err != nil {
		log.Warn().Err(err).Bool("new", sess.IsNew).Msg("replacing settings")
	}
	sess.Values[keyDarkMode] = prefs.DarkMode
	sess.Values[keyDecimalTime] = prefs.DecimalTime
	if err := sess.Save(c.Request(), c.Response()); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}
