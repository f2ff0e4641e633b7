package cli

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/inkroute/inkroute/ioadapter"
	"github.com/inkroute/inkroute/output"
	"github.com/inkroute/inkroute/router"
)

func newRenderCmd() *cobra.Command {
	var positivePath, negativePath string
	var dpi int

	cmd := &cobra.Command{
		Use:   "render <input.json> <result.json>",
		Short: "Rasterize a previously computed routing result to PNG masks",
		Long: `render regenerates the positive (conductor) and negative (void) masks from
a routing result document plus the original input document it was computed
from. The input document supplies the board geometry, footprints and
placement; no re-routing happens.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(args[0], args[1], positivePath, negativePath, dpi)
		},
	}

	cmd.Flags().StringVar(&positivePath, "positive", "positive.png", "output path for the conductor mask")
	cmd.Flags().StringVar(&negativePath, "negative", "negative.png", "output path for the void mask")
	cmd.Flags().IntVar(&dpi, "dpi", output.DefaultDPI, "raster resolution in dots per inch")
	return cmd
}

func runRender(inputPath, resultPath, positivePath, negativePath string, dpi int) error {
	inFile, err := os.Open(inputPath)
	if err != nil {
		return fmt.Errorf("inkroute: opening %s: %w", inputPath, err)
	}
	defer inFile.Close()

	in, err := ioadapter.Decode(inFile)
	if err != nil {
		color.New(color.FgRed, color.Bold).Fprintln(os.Stderr, "input error:")
		fmt.Fprintln(os.Stderr, err)
		return errReported
	}

	resFile, err := os.Open(resultPath)
	if err != nil {
		return fmt.Errorf("inkroute: opening %s: %w", resultPath, err)
	}
	defer resFile.Close()

	result, err := ioadapter.DecodeResult(resFile, in.Board.GridResolutionMM)
	if err != nil {
		color.New(color.FgRed, color.Bold).Fprintln(os.Stderr, "result error:")
		fmt.Fprintln(os.Stderr, err)
		return errReported
	}

	pads, err := router.Pads(in)
	if err != nil {
		return err
	}

	geo := output.BuildGeometry(in.Board, in.Manufacturing.TraceWidthMM, result.Traces, pads)
	polys := append(append([]output.Polygon(nil), geo.Traces...), geo.Pads...)
	rasters := output.Rasterize(in.Board, polys, output.WithDPI(dpi))

	if err := ioadapter.WritePNG(positivePath, rasters.Positive); err != nil {
		return fmt.Errorf("inkroute: writing %s: %w", positivePath, err)
	}
	if err := ioadapter.WritePNG(negativePath, rasters.Negative); err != nil {
		return fmt.Errorf("inkroute: writing %s: %w", negativePath, err)
	}

	fmt.Fprintf(os.Stderr, "wrote %s and %s (%dx%d px at %d dpi)\n",
		positivePath, negativePath, rasters.Width, rasters.Height, dpi)
	if !result.Success {
		color.New(color.FgYellow).Fprintln(os.Stderr,
			"note: the result document reports failed nets; the masks cover only the routed subset")
	}
	return nil
}
