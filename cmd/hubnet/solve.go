package main

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/katalvlaran/hubnet/core"
	"github.com/katalvlaran/hubnet/hub"
	"github.com/katalvlaran/hubnet/instance"
	"github.com/katalvlaran/hubnet/prim_kruskal"
)

// solveOutput is the JSON document printed by `solve --format json`.
type solveOutput struct {
	RunID  string `json:"run_id"`
	Method string `json:"method"`
	hub.Plan
}

func solveCommand(rt *session) *cli.Command {
	return &cli.Command{
		Name:  "solve",
		Usage: "Print the minimum cost to connect every facility",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "input",
				Aliases: []string{"i"},
				Value:   "-",
				Usage:   "Instance file, - for stdin",
			},
			&cli.StringFlag{
				Name:    "method",
				Aliases: []string{"m"},
				Value:   prim_kruskal.MethodKruskal,
				Usage:   "MST algorithm (kruskal, prim)",
				EnvVars: []string{"HUBNET_METHOD"},
			},
			&cli.IntFlag{
				Name:  "root",
				Usage: "Start facility for --method prim (0 means 1)",
			},
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Value:   "text",
				Usage:   "Output format (text, json)",
			},
		},
		Action: rt.solve,
	}
}

func (rt *session) solve(c *cli.Context) error {
	format := c.String("format")
	if format != "text" && format != "json" {
		return cli.Exit(fmt.Sprintf("unknown --format %q", format), ExitFailure)
	}
	method := c.String("method")

	inst, err := rt.readInstance(c.String("input"))
	if err != nil {
		if errors.Is(err, core.ErrInvalidInput) {
			return cli.Exit(fmt.Sprintf("invalid input: %v", err), ExitInvalidInput)
		}
		return cli.Exit(err.Error(), ExitFailure)
	}
	rt.log.Info().
		Int("facilities", inst.Facilities).
		Int("sites", len(inst.Sites)).
		Int("tunnels", len(inst.Tunnels)).
		Msg("instance loaded")

	plan, err := hub.Solve(inst,
		hub.WithMethod(method),
		hub.WithRoot(c.Int("root")),
		hub.WithLogger(rt.log),
	)
	switch {
	case errors.Is(err, hub.ErrInfeasible):
		return cli.Exit(err.Error(), ExitInfeasible)
	case errors.Is(err, core.ErrInvalidInput):
		return cli.Exit(fmt.Sprintf("invalid input: %v", err), ExitInvalidInput)
	case err != nil:
		return cli.Exit(err.Error(), ExitFailure)
	}
	rt.log.Info().Int64("cost", plan.Cost).Bool("uses_hubs", plan.UsesHubs).Msg("solved")

	if format == "json" {
		enc := json.NewEncoder(rt.stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(solveOutput{RunID: rt.runID, Method: method, Plan: plan})
	}
	_, err = fmt.Fprintln(rt.stdout, plan.Cost)

	return err
}

// readInstance parses path, or stdin when path is "-".
func (rt *session) readInstance(path string) (hub.Instance, error) {
	if path == "-" {
		return instance.Read(rt.stdin)
	}

	return instance.ReadFile(path)
}
