package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// rootCmd is inkroute's base command when invoked without a subcommand.
var rootCmd = &cobra.Command{
	Use:   "inkroute",
	Short: "Single-layer PCB autorouter for conductive-ink 3D printing",
	Long: `inkroute routes a board outline, a set of typed component placements, and
an implied netlist into a set of Manhattan copper traces, then emits both
polygon geometry and raster masks suitable for conductive-ink PCB
fabrication.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command and exits the process with 0 on a fully
// successful route, 1 on any reported failure or internal error. This is
// the one place in the module that calls os.Exit.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errRoutingFailed) && !errors.Is(err, errReported) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(newRouteCmd())
	rootCmd.AddCommand(newRenderCmd())
}
