package fitdash

import (
	"context"
	"net/http"
	"time"

	"github.com/aws/aws-lambda-go/events"
	echoadapter "github.com/awslabs/aws-lambda-go-api-proxy/echo"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// LogHandler logs every request
func LogHandler() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}
			log.Info().
				Str("method", c.Request().Method).
				Str("path", c.Request().URL.Path).
				Int("status", c.Response().Status).
				Dur("elapsed", time.Since(start)).
				Msg("request")
			return nil
		}
	}
}

func preferences(c echo.Context, settings *Settings) Preferences {
	prefs, err := settings.Load(c)
	if err != nil {
		// an unreadable cookie is replaced on the next save
		log.Warn().Err(err).Msg("preferences")
	}
	return prefs
}

// DashboardHandler renders the home screen
func DashboardHandler(tracker *Tracker, settings *Settings) echo.HandlerFunc {
	return func(c echo.Context) error {
		d, err := tracker.Dashboard(c.Request().Context(), preferences(c, settings))
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, d)
	}
}

// WorkoutsHandler renders the workout list for the `filter` and `q` query parameters
func WorkoutsHandler(tracker *Tracker, settings *Settings) echo.HandlerFunc {
	return func(c echo.Context) error {
		filter, err := ParseWorkoutType(c.QueryParam("filter"))
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		res, err := tracker.Workouts(c.Request().Context(), filter, c.QueryParam("q"), preferences(c, settings))
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, res)
	}
}

// WorkoutHandler renders the detail screen of the workout `id`
func WorkoutHandler(tracker *Tracker, settings *Settings) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid workout id")
		}
		d, err := tracker.Workout(c.Request().Context(), id, preferences(c, settings))
		if err != nil {
			return err
		}
		if d == nil {
			return echo.NewHTTPError(http.StatusNotFound, "workout not found")
		}
		return c.JSON(http.StatusOK, d)
	}
}

// RefreshHandler waits out the simulated refresh
func RefreshHandler(delay time.Duration) echo.HandlerFunc {
	return func(c echo.Context) error {
		<-Refresh(delay)
		return c.NoContent(http.StatusNoContent)
	}
}

// SettingsHandler returns the stored preferences
func SettingsHandler(settings *Settings) echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, preferences(c, settings))
	}
}

// SaveSettingsHandler stores the preferences in the request body
func SaveSettingsHandler(settings *Settings) echo.HandlerFunc {
	return func(c echo.Context) error {
		prefs := preferences(c, settings)
		if err := c.Bind(&prefs); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		if err := settings.Save(c, prefs); err != nil {
			return err
		}
		return c.JSON(http.StatusOK, prefs)
	}
}

// LambdaHandler proxies API Gateway requests to the echo engine
func LambdaHandler(el *echoadapter.EchoLambda) func(context.Context, events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	return func(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
		log.Info().Str("method", req.HTTPMethod).Str("path", req.Path).Msg("function")
		return el.ProxyWithContext(ctx, req)
	}
}
