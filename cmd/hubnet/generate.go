package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/katalvlaran/hubnet/builder"
	"github.com/katalvlaran/hubnet/instance"
)

func generateCommand(rt *session) *cli.Command {
	return &cli.Command{
		Name:  "generate",
		Usage: "Write a random instance in the solve input format",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "n", Value: 10, Usage: "Number of facilities"},
			&cli.IntFlag{Name: "tunnels", Value: 20, Usage: "Number of tunnels"},
			&cli.IntFlag{Name: "sites", Value: 3, Usage: "Number of hub sites"},
			&cli.Int64Flag{Name: "seed", Value: 1, Usage: "RNG seed"},
			&cli.Int64Flag{Name: "max-cost", Value: 100, Usage: "Costs are drawn from [1, max-cost]"},
			&cli.BoolFlag{Name: "connected", Usage: "Start with a spanning chain of tunnels"},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Value:   "-",
				Usage:   "Output file, - for stdout",
			},
		},
		Action: rt.generate,
	}
}

func (rt *session) generate(c *cli.Context) error {
	if c.Int64("max-cost") < 1 {
		return cli.Exit("--max-cost must be at least 1", ExitFailure)
	}

	inst, err := builder.RandomInstance(
		c.Int("n"), c.Int("tunnels"), c.Int("sites"),
		builder.WithSeed(c.Int64("seed")),
		builder.WithMaxCost(c.Int64("max-cost")),
		builder.WithConnected(c.Bool("connected")),
	)
	if err != nil {
		return cli.Exit(err.Error(), ExitFailure)
	}

	var w io.Writer = rt.stdout
	if path := c.String("output"); path != "-" {
		f, err := os.Create(path)
		if err != nil {
			return cli.Exit(err.Error(), ExitFailure)
		}
		defer f.Close()
		w = f
	}
	if err = instance.Write(w, inst); err != nil {
		return fmt.Errorf("write instance: %w", err)
	}
	rt.log.Info().
		Int("facilities", inst.Facilities).
		Int("tunnels", len(inst.Tunnels)).
		Int("sites", len(inst.Sites)).
		Msg("instance generated")

	return nil
}
