package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"runtime/debug"
	"time"

	"github.com/common-nighthawk/go-figure"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"

	"github.com/staffsync/go-staffsync/auth"
	"github.com/staffsync/go-staffsync/client"
	"github.com/staffsync/go-staffsync/employee"
	"github.com/staffsync/go-staffsync/hr"
	"github.com/staffsync/go-staffsync/internal/config"
	"github.com/staffsync/go-staffsync/session"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		renderError(os.Stderr, err)
		os.Exit(1)
	}
}

// app carries the wired services every command works against.
type app struct {
	auth     *auth.Service
	hr       *hr.Service
	employee *employee.Service
	store    session.Store
	logger   zerolog.Logger
}

func run(args []string) (returnError error) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Recovered from panic: %v\n", r)
			debug.PrintStack()
			returnError = errors.New("panic recovered")
		}
	}()

	flags := pflag.NewFlagSet("staffsync", pflag.ContinueOnError)
	configPath := flags.String("config", "", "path to config.yaml")
	baseURL := flags.String("base-url", "", "API base URL override")
	logLevel := flags.String("log-level", "", "log level override")
	flags.SetInterspersed(false)
	if err := flags.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			printUsage(os.Stdout)
			return nil
		}
		return err
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	// Flags beat everything.
	if *baseURL != "" {
		cfg.BaseURL = *baseURL
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return err
	}

	application, err := newApp(cfg, logger)
	if err != nil {
		return err
	}

	remaining := flags.Args()
	if len(remaining) == 0 {
		displayAppname("StaffSync")
		printUsage(os.Stdout)
		return nil
	}

	ctx := context.Background()
	return dispatch(ctx, application, remaining[0], remaining[1:])
}

func newApp(cfg config.Config, logger zerolog.Logger) (*app, error) {
	// An empty SessionFile falls through to the well-known location.
	store := session.NewFileStore(cfg.SessionFile)

	apiClient, err := client.New(client.Config{
		BaseURL:    cfg.BaseURL,
		Store:      store,
		HTTPClient: newHTTPClient(cfg.Timeout),
		Logger:     logger,
		OnSessionExpired: func() {
			fmt.Fprintln(os.Stderr, "Your session has expired. Please run 'staffsync login' again.")
		},
	})
	if err != nil {
		return nil, err
	}

	return &app{
		auth:     auth.NewService(apiClient, store, logger),
		hr:       hr.NewService(apiClient, logger),
		employee: employee.NewService(apiClient, logger),
		store:    store,
		logger:   logger,
	}, nil
}

func dispatch(ctx context.Context, application *app, command string, args []string) error {
	switch command {
	case "login":
		return cmdLogin(ctx, application, args)
	case "signup":
		return cmdSignup(ctx, application, args)
	case "logout":
		return cmdLogout(ctx, application)
	case "whoami":
		return cmdWhoami(ctx, application)
	case "hr":
		return dispatchHR(ctx, application, args)
	case "emp":
		return dispatchEmployee(ctx, application, args)
	case "help", "--help", "-h":
		printUsage(os.Stdout)
		return nil
	default:
		printUsage(os.Stderr)
		return fmt.Errorf("unknown command %q", command)
	}
}

func newHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{Timeout: timeout}
}

func newLogger(level string) (zerolog.Logger, error) {
	parsed, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Logger{}, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	writer := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}
	return zerolog.New(writer).Level(parsed).With().Timestamp().Logger(), nil
}

func displayAppname(appname string) {
	myFigure := figure.NewFigure(appname, "cybermedium", true)
	myFigure.Print()
	fmt.Println()
}
