// Command gopherdiag diagnoses gate-level circuit problems: it checks a
// problem's observations against its description and reports the conflict
// sets standing in the way. Problems come from the built-in registry or
// from YAML netlist files.
package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/urfave/cli/v2"

	"github.com/diaglab/gopherdiag/circuit"
	"github.com/diaglab/gopherdiag/diag"
	"github.com/diaglab/gopherdiag/logic"
	"github.com/diaglab/gopherdiag/prover"
)

func main() {
	loadEnv()
	app := &cli.App{
		Name:  "gopherdiag",
		Usage: "consistency-based diagnosis of gate-level circuits",
		Commands: []*cli.Command{
			{
				Name:   "list",
				Usage:  "list the built-in problems",
				Action: list,
			},
			{
				Name:      "diagnose",
				Usage:     "check a problem and report its conflicts",
				ArgsUsage: "<problem|netlist.yaml>",
				Action:    diagnose,
				Flags: []cli.Flag{
					&cli.StringSliceFlag{
						Name:  "assume",
						Usage: "hypothesize a component abnormal (repeatable)",
					},
					&cli.DurationFlag{
						Name:  "timeout",
						Usage: "bound the solving time",
						Value: envDuration("GOPHERDIAG_TIMEOUT", 0),
					},
					&cli.BoolFlag{
						Name:  "subset-core",
						Usage: "report faster, coarser refutation cores",
					},
					&cli.BoolFlag{
						Name:  "minimal",
						Usage: "also compute a smallest repair",
					},
					&cli.BoolFlag{
						Name:  "verbose",
						Usage: "log the solving pipeline",
						Value: envBool("GOPHERDIAG_DEBUG", false),
					},
				},
			},
			{
				Name:      "dump",
				Usage:     "write a problem's clauses as DIMACS CNF",
				ArgsUsage: "<problem|netlist.yaml>",
				Action:    dump,
			},
		},
	}
	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func list(c *cli.Context) error {
	for _, name := range circuit.Names() {
		fmt.Println(name)
	}
	return nil
}

func diagnose(c *cli.Context) error {
	if c.Args().Len() != 1 {
		return fmt.Errorf("diagnose needs exactly one problem argument")
	}
	p, err := resolve(c.Args().First())
	if err != nil {
		return err
	}
	logger := newLogger(c.Bool("verbose"))
	core := prover.CoreMinimal
	if c.Bool("subset-core") {
		core = prover.CoreSubset
	}
	e := diag.Engine{
		Prover: prover.New(prover.Options{Core: core, Logger: logger}),
		Logger: logger,
	}
	ctx := context.Background()
	if d := c.Duration("timeout"); d > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d)
		defer cancel()
	}
	var hs []logic.Term
	for _, name := range c.StringSlice("assume") {
		hs = append(hs, logic.Con(name))
	}
	res, err := e.Diagnose(ctx, p, hs...)
	if err != nil {
		return err
	}
	fmt.Println("status:", res.Status)
	if res.Reason != "" {
		fmt.Println("reason:", res.Reason)
	}
	for _, set := range res.Conflicts {
		fmt.Println("conflict:", set)
	}
	if comps := res.Components(); len(comps) > 0 {
		fmt.Println("components:", comps)
	}
	if c.Bool("minimal") && res.Status == diag.Conflict {
		repair, err := e.MinimalDiagnosis(ctx, p)
		if err != nil {
			return err
		}
		fmt.Println("minimal diagnosis:", repair)
	}
	return nil
}

func dump(c *cli.Context) error {
	if c.Args().Len() != 1 {
		return fmt.Errorf("dump needs exactly one problem argument")
	}
	p, err := resolve(c.Args().First())
	if err != nil {
		return err
	}
	goal, assume, err := p.Theory()
	if err != nil {
		return err
	}
	return prover.WriteDimacs(os.Stdout, goal, assume...)
}

// resolve turns a command-line argument into a diagnosis problem: registered
// problems by name, everything ending in .yaml or .yml from disk.
func resolve(arg string) (diag.Problem, error) {
	if s, ok := circuit.Lookup(arg); ok {
		return s(), nil
	}
	if strings.HasSuffix(arg, ".yaml") || strings.HasSuffix(arg, ".yml") {
		n, err := circuit.LoadFile(arg)
		if err != nil {
			return diag.Problem{}, err
		}
		return n.Problem()
	}
	return diag.Problem{}, fmt.Errorf("unknown problem %q: not registered and not a YAML file (try \"gopherdiag list\")", arg)
}

// newLogger builds the stderr logger the engine and prover share; quiet
// unless asked.
func newLogger(verbose bool) *log.Logger {
	level := log.WarnLevel
	if verbose {
		level = log.DebugLevel
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Level:           level,
	})
}
