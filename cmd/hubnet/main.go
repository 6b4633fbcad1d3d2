// hubnet - minimum-cost facility networks with tunnels and hubs.
//
// Usage:
//
//	hubnet solve [--input FILE] [--method kruskal|prim] [--format text|json]
//	hubnet generate --n 100 --tunnels 300 --sites 20 [--seed 1] [--connected]
//
// solve reads "N K M", K hub lines and M tunnel lines, and prints the minimum
// total cost as the only line on stdout.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"
)

var (
	version = "dev"
	commit  = "none"
)

// Exit codes.
const (
	ExitSuccess      = 0
	ExitFailure      = 1
	ExitInfeasible   = 2
	ExitInvalidInput = 3
)

// envFileVar names the variable that overrides the dotenv path.
const envFileVar = "HUBNET_ENV_FILE"

func main() {
	os.Exit(run(os.Args, os.Stdin, os.Stdout, os.Stderr))
}

// run executes the CLI and returns the process exit code.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	if err := loadDotEnv(); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return ExitFailure
	}

	app := newApp(stdin, stdout, stderr)
	err := app.Run(args)
	if err == nil {
		return ExitSuccess
	}

	fmt.Fprintf(stderr, "Error: %v\n", err)
	var coder cli.ExitCoder
	if errors.As(err, &coder) {
		return coder.ExitCode()
	}

	return ExitFailure
}

// loadDotEnv preloads HUBNET_* settings from a dotenv file when one exists.
// Variables already present in the environment win.
func loadDotEnv() error {
	path := os.Getenv(envFileVar)
	if path == "" {
		path = ".env"
	}
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}

	return godotenv.Load(path)
}

func newApp(stdin io.Reader, stdout, stderr io.Writer) *cli.App {
	rt := &session{stdin: stdin, stdout: stdout, stderr: stderr}

	return &cli.App{
		Name:      "hubnet",
		Usage:     "Minimum-cost facility networks built from tunnels and hub installations",
		Version:   fmt.Sprintf("%s (commit: %s)", version, commit),
		Reader:    stdin,
		Writer:    stdout,
		ErrWriter: stderr,
		// Exit codes are mapped by run; never let the library call os.Exit.
		ExitErrHandler: func(*cli.Context, error) {},

		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Value:   "warn",
				Usage:   "Log level (debug, info, warn, error)",
				EnvVars: []string{"HUBNET_LOG_LEVEL"},
			},
			&cli.BoolFlag{
				Name:    "cpuprofile",
				Usage:   "Write a CPU profile (cpu.pprof) into --profile-dir",
				EnvVars: []string{"HUBNET_CPUPROFILE"},
			},
			&cli.StringFlag{
				Name:    "profile-dir",
				Value:   ".",
				Usage:   "Directory for profiles",
				EnvVars: []string{"HUBNET_PROFILE_DIR"},
			},
		},
		Before: rt.before,
		After:  rt.after,

		Commands: []*cli.Command{
			solveCommand(rt),
			generateCommand(rt),
		},
	}
}
