package main

import (
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/pkg/profile"
	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"
)

// session carries the per-invocation streams, logger and profiler.
type session struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	runID  string
	log    zerolog.Logger
	stopFn func()
}

// before sets up logging and, on request, CPU profiling.
func (rt *session) before(c *cli.Context) error {
	level, err := zerolog.ParseLevel(c.String("log-level"))
	if err != nil {
		return cli.Exit(fmt.Sprintf("invalid --log-level %q", c.String("log-level")), ExitFailure)
	}

	rt.runID = uuid.NewString()
	rt.log = zerolog.New(zerolog.ConsoleWriter{Out: rt.stderr, NoColor: true}).
		Level(level).
		With().
		Timestamp().
		Str("run_id", rt.runID).
		Logger()

	if c.Bool("cpuprofile") {
		dir := c.String("profile-dir")
		p := profile.Start(profile.CPUProfile, profile.ProfilePath(dir), profile.Quiet, profile.NoShutdownHook)
		rt.stopFn = p.Stop
		rt.log.Info().Str("dir", dir).Msg("cpu profiling enabled")
	}

	return nil
}

// after flushes the profile, if any.
func (rt *session) after(*cli.Context) error {
	if rt.stopFn != nil {
		rt.stopFn()
		rt.stopFn = nil
	}

	return nil
}
