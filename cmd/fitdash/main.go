package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"text/tabwriter"
	"time"

	"github.com/aws/aws-lambda-go/lambda"
	echoadapter "github.com/awslabs/aws-lambda-go-api-proxy/echo"
	"github.com/joho/godotenv"
	"github.com/labstack/echo-contrib/prometheus"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"
	"golang.org/x/sync/errgroup"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/bzimmer/fitdash"
)

func config(c *cli.Context) (*fitdash.Config, error) {
	var err error
	var val []byte
	switch c.IsSet("config") {
	case true:
		log.Info().Str("file", c.String("config")).Msg("config")
		var fp *os.File
		fp, err = os.Open(c.String("config"))
		if err != nil {
			return nil, err
		}
		defer fp.Close()
		val, err = io.ReadAll(fp)
		if err != nil {
			return nil, err
		}
	case false:
		log.Info().Str("file", "etc/fitdash.json").Msg("config")
		val, err = fitdash.Content.ReadFile("etc/fitdash.json")
		if err != nil {
			return nil, err
		}
	}
	cfg := fitdash.Config{Defaults: fitdash.DefaultPreferences}
	if err = json.Unmarshal(val, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if c.IsSet("locale") {
		cfg.Locale = c.String("locale")
	}
	return &cfg, nil
}

func provider(c *cli.Context) (fitdash.Provider, error) {
	now := time.Now()
	if n := c.Int("fake"); n > 0 {
		log.Info().Int("n", n).Int64("seed", c.Int64("seed")).Msg("fake workouts")
		return fitdash.NewFakeProvider(n, c.Int64("seed"), now)
	}
	data, err := fitdash.Content.ReadFile("etc/workouts.json")
	if err != nil {
		return nil, err
	}
	return fitdash.NewSampleProvider(data, now)
}

func tracker(c *cli.Context) (*fitdash.Tracker, *fitdash.Config, error) {
	cfg, err := config(c)
	if err != nil {
		return nil, nil, err
	}
	p, err := provider(c)
	if err != nil {
		return nil, nil, err
	}
	locale := fitdash.LookupLocale(cfg.Locale)
	log.Info().Str("locale", locale.Tag.String()).Msg("tracker")
	return fitdash.NewTracker(p, locale), cfg, nil
}

func newEngine(c *cli.Context) (*echo.Echo, error) {
	t, cfg, err := tracker(c)
	if err != nil {
		return nil, err
	}
	delay, err := cfg.RefreshDelay()
	if err != nil {
		return nil, err
	}
	key := c.String("session-key")
	if key == "" {
		return nil, errors.New("missing session key")
	}
	settings := fitdash.NewSettings(cfg.Defaults)
	engine := fitdash.NewEngine(t, settings, []byte(key), delay)
	p := prometheus.NewPrometheus("fitdash", nil)
	p.Use(engine)
	return engine, nil
}

func serve(c *cli.Context) error {
	engine, err := newEngine(c)
	if err != nil {
		return err
	}
	u, err := url.Parse(c.String("base-url"))
	if err != nil {
		return err
	}
	_, port, _ := net.SplitHostPort(u.Host)
	address := fmt.Sprintf("0.0.0.0:%s", port)
	srv := &http.Server{Addr: address, Handler: engine}

	grp, ctx := errgroup.WithContext(c.Context)
	grp.Go(func() error {
		log.Info().Str("address", address).Msg("serving")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	grp.Go(func() error {
		<-ctx.Done()
		log.Info().Msg("shutting down")
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(ctx)
	})
	return grp.Wait()
}

func function(c *cli.Context) error {
	engine, err := newEngine(c)
	if err != nil {
		return err
	}
	log.Info().Msg("running function")
	el := echoadapter.New(engine)
	lambda.Start(fitdash.LambdaHandler(el))
	return nil
}

func workouts(c *cli.Context) error {
	t, _, err := tracker(c)
	if err != nil {
		return err
	}
	filter, err := fitdash.ParseWorkoutType(c.String("filter"))
	if err != nil {
		return err
	}
	prefs := fitdash.Preferences{DecimalTime: c.Bool("decimal")}
	res, err := t.Workouts(c.Context, filter, c.String("search"), prefs)
	if err != nil {
		return err
	}
	if res.Empty {
		fmt.Fprintln(c.App.Writer, "no workouts found")
		return nil
	}
	w := tabwriter.NewWriter(c.App.Writer, 0, 4, 2, ' ', 0)
	for _, sec := range res.Sections {
		fmt.Fprintln(w, sec.Label)
		for _, r := range sec.Rows {
			fmt.Fprintf(w, "\t%s\t%s\t%s\t%d kcal\n", r.Type, r.Duration, r.Distance, r.Calories)
		}
	}
	return w.Flush()
}

func newApp() *cli.App {
	return &cli.App{
		Name:     "fitdash",
		HelpName: "fitdash",
		Usage:    "Fitness dashboard",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "session-key",
				Usage:   "session keypair",
				EnvVars: []string{"FITDASH_SESSION_KEY"},
			},
			&cli.StringFlag{
				Name:    "base-url",
				Value:   "http://localhost:9001",
				Usage:   "Base URL",
				EnvVars: []string{"BASE_URL"},
			},
			&cli.BoolFlag{
				Name:    "netlify",
				Value:   false,
				Usage:   "run as a netlify function",
				EnvVars: []string{"NETLIFY"},
			},
			&cli.StringFlag{
				Name:  "config",
				Usage: "file with fitness configuration parameters",
			},
			&cli.StringFlag{
				Name:    "locale",
				Usage:   "locale for date labels",
				EnvVars: []string{"FITDASH_LOCALE"},
			},
			&cli.IntFlag{
				Name:  "fake",
				Usage: "serve `N` randomly generated workouts instead of the sample data",
			},
			&cli.Int64Flag{
				Name:  "seed",
				Value: 1,
				Usage: "seed for the generated workouts",
			},
			&cli.StringFlag{
				Name:    "log-file",
				Usage:   "also write logs to a rotated file",
				EnvVars: []string{"FITDASH_LOG_FILE"},
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "enable debug logging",
			},
		},
		Commands: []*cli.Command{
			{
				Name:  "workouts",
				Usage: "list the workouts grouped by day",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "filter",
						Usage: "workout type",
					},
					&cli.StringFlag{
						Name:  "search",
						Usage: "search text",
					},
					&cli.BoolFlag{
						Name:  "decimal",
						Usage: "show durations in decimal hours",
					},
				},
				Action: workouts,
			},
		},
		ExitErrHandler: func(c *cli.Context, err error) {
			if err == nil {
				return
			}
			log.Error().Err(err).Msg(c.App.Name)
		},
		Before: func(c *cli.Context) error {
			level := zerolog.InfoLevel
			if c.Bool("verbose") {
				level = zerolog.DebugLevel
			}
			zerolog.SetGlobalLevel(level)
			zerolog.DurationFieldUnit = time.Millisecond
			zerolog.DurationFieldInteger = false
			var out io.Writer = zerolog.ConsoleWriter{
				Out:        c.App.ErrWriter,
				NoColor:    false,
				TimeFormat: time.RFC3339,
			}
			if fn := c.String("log-file"); fn != "" {
				out = zerolog.MultiLevelWriter(out, &lumberjack.Logger{
					Filename: fn,
					MaxSize:  50, // megabytes
					Compress: true,
				})
			}
			log.Logger = log.Output(out)
			return nil
		},
		Action: func(c *cli.Context) error {
			if c.IsSet("netlify") {
				return function(c)
			}
			return serve(c)
		},
	}
}

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	app := newApp()
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := app.RunContext(ctx, os.Args); err != nil {
		stop()
		os.Exit(1)
	}
}
