package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"syscall"
	"time"

	"github.com/go-git/go-billy/v5/osfs"
	"github.com/oklog/run"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"
)

func main() {
	app := newApp(os.Stdout)
	if err := app.Run(os.Args); err != nil {
		log.Error().Err(err).Msg("server exited")
		os.Exit(1)
	}
}

// newApp builds the CLI application. Operator-facing console output
// (banner, shutdown confirmation, startup errors) goes to stdout; log
// events go to stderr.
func newApp(stdout io.Writer) *cli.App {
	app := cli.NewApp()
	app.Name = "dekereke-dev-server"
	app.Usage = "Development HTTP server for the Dekereke Pivot Tables PWA"
	app.Flags = []cli.Flag{
		&cli.IntFlag{
			Name:    "port",
			Usage:   "Port to listen on (0 picks an ephemeral port)",
			Value:   DefaultPort,
			EnvVars: []string{"DEKEREKE_DEV_PORT"},
		},
		&cli.StringFlag{
			Name:    "dir",
			Usage:   "Directory to serve",
			Value:   DefaultRoot,
			EnvVars: []string{"DEKEREKE_DEV_DIR"},
		},
		&cli.StringFlag{
			Name:    "host",
			Usage:   "Host to bind (empty binds all interfaces)",
			EnvVars: []string{"DEKEREKE_DEV_HOST"},
		},
		&cli.BoolFlag{
			Name:    "cors",
			Usage:   "Allow cross-origin requests (testing from another device)",
			EnvVars: []string{"DEKEREKE_DEV_CORS"},
		},
		&cli.BoolFlag{
			Name:  "debug",
			Usage: "Enable debug logging",
		},
	}
	// Usage errors are reported once, by cli itself, with exit code 1.
	app.OnUsageError = func(c *cli.Context, err error, _ bool) error {
		return cli.Exit(errors.Wrap(err, "incorrect usage"), 1)
	}
	app.Action = func(c *cli.Context) error {
		return serve(c, stdout)
	}
	return app
}

func serve(c *cli.Context, stdout io.Writer) error {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339Nano, NoColor: true})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if c.Bool("debug") {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	if err := registerMIMETypes(); err != nil {
		return err
	}

	cfg := Config{
		Host: c.String("host"),
		Port: c.Int("port"),
		Root: c.String("dir"),
		CORS: c.Bool("cors"),
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	root, err := cfg.ResolveRoot()
	if err != nil {
		if errors.Is(err, errRootNotFound) {
			fmt.Fprintf(stdout, "Error: '%s' directory not found!\n", cfg.Root)
		} else {
			fmt.Fprintf(stdout, "Error: %v\n", err)
		}
		fmt.Fprintln(stdout, "Please run this server from the repository root.")
		return cli.Exit("", 1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Bind before printing the banner so startup faults (busy port,
	// bind permission) surface before any success output.
	srv := NewServer(cfg, osfs.New(root))
	if err := srv.Listen(ctx); err != nil {
		return err
	}

	printBanner(stdout, displayURL(cfg.Host, srv.Port()), root)

	var g run.Group
	g.Add(srv.Execute, srv.Interrupt)
	g.Add(run.SignalHandler(ctx, os.Interrupt, syscall.SIGTERM))

	err = g.Run()
	var sig run.SignalError
	if errors.As(err, &sig) {
		fmt.Fprintln(stdout, "\nServer stopped.")
		return nil
	}
	return err
}
