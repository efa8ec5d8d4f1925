package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/tailored-agentic-units/statebox/box"
)

// demoIntents are observed in order by the demo command; "neutral" has no
// fixed outcome and exercises the random branch.
var demoIntents = []string{box.IntentCurious, box.IntentPeaceful, box.IntentAnxious, "neutral"}

const demoMeditation = 100 * time.Millisecond

func newRootCmd() *cobra.Command {
	return newRootCmdFor(&app{})
}

func newRootCmdFor(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "statebox",
		Short: "Observe, meditate on, and inspect a mind-matter box",
		Long: `statebox drives a single box through its phases. Each invocation creates
a fresh box from the configuration, runs the command against it and prints
the results.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return a.report(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&a.configFile, "config", "c", "", "Path to a JSON or YAML box config")
	flags.StringVar(&a.name, "name", "", "Box name (overrides config)")
	flags.Uint64Var(&a.seed, "seed", 0, "Random seed; 0 seeds from entropy (overrides config, including back to 0)")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "Log every box event to stderr")
	flags.BoolVar(&a.metrics, "metrics", false, "Print Prometheus metrics after the command")

	root.AddCommand(
		newDemoCmd(a),
		newObserveCmd(a),
		newMeditateCmd(a),
		newStatusCmd(a),
		newIntentsCmd(),
	)

	return root
}

func newDemoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Walk a box through superposition, four observations and a meditation",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()

			b, err := a.newBox()
			if err != nil {
				return err
			}

			fmt.Fprintf(w, "=== %s Demonstration ===\n\n", b.Name())
			fmt.Fprintf(w, "Created: %s\n", b.Name())
			fmt.Fprintln(w, "Initial status:")
			printStatus(w, b.Status())
			fmt.Fprintln(w)

			b.EnterSuperposition()
			fmt.Fprintln(w, "Box enters superposition state...")
			fmt.Fprintln(w, "Current status:")
			printStatus(w, b.Status())
			fmt.Fprintln(w)

			for _, intent := range demoIntents {
				fmt.Fprintf(w, "Observing with '%s' intent:\n", intent)
				obs := b.Observe(intent)
				fmt.Fprintf(w, "  Physical state: %s\n", obs.PhysicalState)
				fmt.Fprintf(w, "  Mental state: %s\n\n", obs.MentalState)

				b.EnterSuperposition()
			}

			fmt.Fprintln(w, "Box enters meditation...")
			insight, err := b.Meditate(cmd.Context(), demoMeditation)
			if err != nil {
				return err
			}
			fmt.Fprintf(w, "Insight gained: '%s'\n\n", insight)

			fmt.Fprintln(w, "Final status:")
			printStatus(w, b.Status())
			return nil
		},
	}
}

func newObserveCmd(a *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "observe [intent...]",
		Short: "Superpose the box and observe it once per intent",
		Long: `Each intent is observed after returning the box to superposition. Known
intents (` + strings.Join(box.Intents(), ", ") + `) give fixed outcomes; any
other string, including "", draws at random. With no arguments the configured
default intent is used.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := a.newBox()
			if err != nil {
				return err
			}

			observations := make([]box.Observation, 0, max(len(args), 1))
			if len(args) == 0 {
				b.EnterSuperposition()
				observations = append(observations, b.ObserveDefault())
			}
			for _, intent := range args {
				b.EnterSuperposition()
				observations = append(observations, b.Observe(intent))
			}

			if asJSON {
				return writeJSON(cmd.OutOrStdout(), observations)
			}
			for _, obs := range observations {
				printObservation(cmd.OutOrStdout(), obs)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print observations as JSON")
	return cmd
}

func newMeditateCmd(a *app) *cobra.Command {
	var (
		duration time.Duration
		count    int
	)

	cmd := &cobra.Command{
		Use:   "meditate",
		Short: "Meditate and print the insights gained",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if count < 1 {
				return fmt.Errorf("--count must be at least 1, got %d", count)
			}

			b, err := a.newBox()
			if err != nil {
				return err
			}

			d := a.cfg.Meditation()
			if cmd.Flags().Changed("duration") {
				d = duration
			}

			for i := range count {
				insight, err := b.Meditate(cmd.Context(), d)
				if err != nil {
					return err
				}
				if count == 1 {
					fmt.Fprintln(cmd.OutOrStdout(), insight)
				} else {
					fmt.Fprintf(cmd.OutOrStdout(), "  %d. %s\n", i+1, insight)
				}
			}
			return nil
		},
	}

	cmd.Flags().DurationVarP(&duration, "duration", "d", box.DefaultMeditation, "How long each meditation lasts (overrides config)")
	cmd.Flags().IntVarP(&count, "count", "n", 1, "Number of meditations")
	return cmd
}

func newStatusCmd(a *app) *cobra.Command {
	var (
		asJSON    bool
		superpose bool
		intent    string
	)

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Print the status of a fresh box, optionally after superposing or observing it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := a.newBox()
			if err != nil {
				return err
			}

			if superpose {
				b.EnterSuperposition()
			}
			if cmd.Flags().Changed("observe") {
				b.Observe(intent)
			}

			if asJSON {
				return writeJSON(cmd.OutOrStdout(), b.Status())
			}
			printStatus(cmd.OutOrStdout(), b.Status())
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print status as JSON")
	cmd.Flags().BoolVar(&superpose, "superpose", false, "Enter superposition first")
	cmd.Flags().StringVar(&intent, "observe", "", "Observe with this intent before reporting")
	return cmd
}

func newIntentsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "intents",
		Short: "List the intents with fixed outcomes and the random pools",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			for _, intent := range box.Intents() {
				out, _ := box.Resolve(intent, nil)
				fmt.Fprintf(w, "%-10s %s / %s\n", intent, out.Physical, out.Mental)
			}
			fmt.Fprintf(w, "%-10s {%s} / {%s}\n", "(other)",
				strings.Join(box.PhysicalPool(), ", "),
				strings.Join(box.MentalPool(), ", "))
			return nil
		},
	}
}
