package fitdash

import (
	"time"

	"github.com/labstack/echo/v4"
)

// NewEngine returns the echo engine serving every screen
func NewEngine(tracker *Tracker, settings *Settings, key []byte, delay time.Duration) *echo.Echo {
	engine := echo.New()
	engine.HideBanner = true
	engine.HidePort = true
	engine.Use(LogHandler())
	engine.Use(settings.Middleware(key))

	engine.GET("/dashboard", DashboardHandler(tracker, settings))
	engine.GET("/workouts", WorkoutsHandler(tracker, settings))
	engine.POST("/workouts/refresh", RefreshHandler(delay))
	engine.GET("/workouts/:id", WorkoutHandler(tracker, settings))
	engine.GET("/settings", SettingsHandler(settings))
	engine.PUT("/settings", SaveSettingsHandler(settings))
	return engine
}
