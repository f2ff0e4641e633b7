package cli

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/inkroute/inkroute/ioadapter"
	"github.com/inkroute/inkroute/router"
)

// errRoutingFailed signals Execute to exit with status 1 without printing
// a second error line (the result document and its failedNets already went
// to stdout/--out).
var errRoutingFailed = errors.New("inkroute: routing did not fully succeed")

// errReported marks errors that were already printed with their own
// formatting; Execute exits 1 without repeating them.
var errReported = errors.New("inkroute: error already reported")

func newRouteCmd() *cobra.Command {
	var maxAttempts int
	var outPath string

	cmd := &cobra.Command{
		Use:   "route <input.json>",
		Short: "Route a board from a JSON input document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRoute(args[0], maxAttempts, outPath)
		},
	}

	cmd.Flags().IntVar(&maxAttempts, "max-attempts", 0, "override the rip-up attempt budget (0 = use input/default)")
	cmd.Flags().StringVar(&outPath, "out", "", "write the result document here instead of stdout")
	return cmd
}

func runRoute(inputPath string, maxAttempts int, outPath string) error {
	f, err := os.Open(inputPath)
	if err != nil {
		return fmt.Errorf("inkroute: opening %s: %w", inputPath, err)
	}
	defer f.Close()

	in, err := ioadapter.Decode(f)
	if err != nil {
		color.New(color.FgRed, color.Bold).Fprintln(os.Stderr, "input error:")
		fmt.Fprintln(os.Stderr, err)
		return errReported
	}

	var opts []router.Option
	if maxAttempts > 0 {
		opts = append(opts, router.WithMaxAttempts(maxAttempts))
	}

	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(os.Stderr))
	s.Suffix = " routing..."
	_ = s.Color("cyan", "bold")
	s.Start()
	opts = append(opts, router.WithOnAttempt(func(attemptIndex int, p router.AttemptProgress) {
		status := fmt.Sprintf(" attempt %d (%s): %d unconnected", attemptIndex+1, p.Strategy, p.Failures)
		if p.Relaxed {
			status += " [relaxed clearance]"
		}
		s.Suffix = status
	}))

	result := router.Route(in, opts...)
	s.Stop()

	if result.Success {
		color.New(color.FgGreen, color.Bold).Fprintln(os.Stderr, "routed successfully")
	} else {
		color.New(color.FgRed, color.Bold).Fprintf(os.Stderr, "routing incomplete: %d unconnected pad(s)\n", len(result.FailedNets))
		for _, fn := range result.FailedNets {
			fmt.Fprintf(os.Stderr, "  %s: %s -> %s: %s\n", fn.NetName, fn.SourcePin, fn.DestinationPin, fn.Reason)
		}
	}
	for _, w := range result.PlacementWarnings {
		color.New(color.FgYellow).Fprintln(os.Stderr, "warning:", w)
	}
	fmt.Fprintf(os.Stderr, "attempts tried: %d\n", len(result.Attempts))

	out, err := ioadapter.Marshal(result, in.Board.GridResolutionMM)
	if err != nil {
		return fmt.Errorf("inkroute: encoding result: %w", err)
	}

	if outPath != "" {
		if err := os.WriteFile(outPath, out, 0o644); err != nil {
			return fmt.Errorf("inkroute: writing %s: %w", outPath, err)
		}
	} else {
		os.Stdout.Write(out)
		fmt.Println()
	}

	if !result.Success {
		return errRoutingFailed
	}
	return nil
}
