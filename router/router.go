package router

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/inkroute/inkroute/grid"
	"github.com/inkroute/inkroute/model"
	"github.com/inkroute/inkroute/netlist"
)

// Route runs inkroute's full placement + routing pipeline against in,
// returning a RoutingResult that is always populated — even when some nets
// can't be connected; failures are reported in the result, never by
// aborting.
func Route(in model.RouterInput, opts ...Option) model.RoutingResult {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	d := computeDerived(in)
	g, err := grid.New(in.Board.BoardWidthMM, in.Board.BoardHeightMM, in.Board.GridResolutionMM, toGridPoints(in.Board.OutlinePolygon), d.blockedRadiusCells)
	if err != nil {
		return model.RoutingResult{
			PlacementWarnings: []string{fmt.Errorf("%w: %v", ErrInvalidInput, err).Error()},
		}
	}

	placement := placeComponents(g, in.Board, in.Placement, in.Footprints, d)
	warnings := make([]string, 0, len(placement.Warnings))
	for _, w := range placement.Warnings {
		warnings = append(warnings, w.Error())
	}

	nets := netlist.ExtractNets(placement.Pads)
	ordered := netlist.PriorityOrder(nets)

	var signalNames []string
	byName := make(map[string]netlist.Net, len(ordered))
	var gnd, vcc *netlist.Net
	for i := range ordered {
		n := ordered[i]
		byName[n.Name] = n
		switch n.Kind {
		case model.GroundNet:
			gnd = &ordered[i]
		case model.PowerNet:
			vcc = &ordered[i]
		default:
			signalNames = append(signalNames, n.Name)
		}
	}
	var powerNames []string
	if gnd != nil {
		powerNames = append(powerNames, gnd.Name)
	}
	if vcc != nil {
		powerNames = append(powerNames, vcc.Name)
	}

	strategies := orderingStrategies(signalNames, powerNames)
	if o.Shuffled {
		r := rand.New(rand.NewSource(o.Seed))
		r.Shuffle(len(strategies), func(i, j int) { strategies[i], strategies[j] = strategies[j], strategies[i] })
	}

	maxAttempts := in.MaxAttempts
	if o.MaxAttempts > 0 {
		maxAttempts = o.MaxAttempts
	}
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxRipupAttempts
	}

	snapshot := g.Snapshot()

	best := runAttemptBudget(g, snapshot, placement.Pads, byName, strategies, d.tracePaddingCells, d.traceBlockPaddingCells, maxAttempts, false, o.OnAttempt)
	history := best.summaries()
	if !best.zeroFailures() {
		relaxed := runAttemptBudget(g, snapshot, placement.Pads, byName, strategies, d.tracePaddingCells, d.relaxedTraceBlockPadding, maxAttempts, true, o.OnAttempt)
		history = append(history, relaxed.summaries()...)
		if len(relaxed.attempts) > 0 && relaxed.failureCount() < best.failureCount() {
			best = relaxed
		}
	}

	result := model.RoutingResult{
		Success:           best.zeroFailures(),
		Traces:            best.traces,
		FailedNets:        best.failedNets(),
		Attempts:          history,
		PlacementWarnings: warnings,
	}
	return result
}

// attemptOutcome is the best rip-up attempt found within one attempt
// budget run (either at normal or relaxed trace_block_padding).
type attemptOutcome struct {
	traces   []model.Trace
	unrouted map[string][]model.Pad // net name -> still-unconnected pads
	attempts []model.AttemptSummary
}

func (a attemptOutcome) failureCount() int {
	n := 0
	for _, pads := range a.unrouted {
		n += len(pads)
	}
	return n
}

func (a attemptOutcome) zeroFailures() bool {
	return len(a.attempts) > 0 && a.failureCount() == 0
}

func (a attemptOutcome) summaries() []model.AttemptSummary {
	return a.attempts
}

func (a attemptOutcome) failedNets() []model.FailedNet {
	var out []model.FailedNet
	for name, pads := range a.unrouted {
		reason := "No path found after rip-up attempts"
		if model.ClassifyNet(name) != model.SignalNet {
			reason = "Power net could not reach all pads"
		}
		for _, p := range pads {
			out = append(out, model.FailedNet{
				NetName:        name,
				SourcePin:      p.PinID(),
				DestinationPin: p.PinID(),
				Reason:         reason,
			})
		}
	}
	// a.unrouted is a map; sort so identical inputs yield identical results.
	sort.Slice(out, func(i, j int) bool {
		if out[i].NetName != out[j].NetName {
			return out[i].NetName < out[j].NetName
		}
		return out[i].SourcePin < out[j].SourcePin
	})
	return out
}

// runAttemptBudget tries every ordering strategy (up to maxAttempts),
// resetting the grid to snapshot before each attempt, and returns the best
// (fewest-failures) outcome seen.
func runAttemptBudget(g *grid.Grid, snapshot []bool, allPads []model.Pad, byName map[string]netlist.Net, strategies []orderingStrategy, tracePadding, traceBlockPadding, maxAttempts int, relaxed bool, onAttempt func(int, AttemptProgress)) attemptOutcome {
	var best attemptOutcome
	bestFailures := -1

	for i, strat := range strategies {
		if i >= maxAttempts {
			break
		}
		g.Restore(snapshot)

		traces, unrouted := routeAttempt(g, allPads, byName, strat, tracePadding, traceBlockPadding)
		failures := 0
		for _, pads := range unrouted {
			failures += len(pads)
		}

		best.attempts = append(best.attempts, model.AttemptSummary{
			Strategy:          strat.Label,
			Failures:          failures,
			TraceBlockPadding: traceBlockPadding,
			Relaxed:           relaxed,
		})
		if onAttempt != nil {
			onAttempt(i, AttemptProgress{Strategy: strat.Label, Failures: failures, Relaxed: relaxed})
		}

		if bestFailures < 0 || failures < bestFailures {
			bestFailures = failures
			best.traces = traces
			best.unrouted = unrouted
		}
		if failures == 0 {
			break
		}
	}

	return best
}

// routeAttempt routes every net in strat.Order once, in order, power nets
// via the perimeter-biased strategy and signal nets directly, accumulating
// completed trace cells as keep-out for subsequent nets.
func routeAttempt(g *grid.Grid, allPads []model.Pad, byName map[string]netlist.Net, strat orderingStrategy, tracePadding, traceBlockPadding int) ([]model.Trace, map[string][]model.Pad) {
	var traces []model.Trace
	unrouted := make(map[string][]model.Pad)
	committed := make(map[model.Cell]struct{})

	for _, name := range strat.Order {
		n, ok := byName[name]
		if !ok {
			continue
		}
		net := netToRoute{Name: n.Name, Pads: n.Pads}

		var res netRouteResult
		if n.Kind == model.GroundNet || n.Kind == model.PowerNet {
			first := perimeterAnchorIndex(g, net.Pads)
			res = routeNetDirect(g, net, allPads, committed, tracePadding, traceBlockPadding, perimeterCost(g), first)
		} else {
			res = routeNetDirect(g, net, allPads, committed, tracePadding, traceBlockPadding, nil, 0)
		}

		if !res.OK {
			unrouted[n.Name] = res.Unrouted
			continue
		}
		if !checkNetClosure(net, res.Traces) {
			unrouted[n.Name] = n.Pads
			continue
		}
		traces = append(traces, res.Traces...)
		for _, t := range res.Traces {
			for _, c := range t.Path {
				committed[c] = struct{}{}
			}
		}
	}

	return traces, unrouted
}

func toGridPoints(pts []model.Point) []grid.Point {
	if pts == nil {
		return nil
	}
	out := make([]grid.Point, len(pts))
	for i, p := range pts {
		out[i] = grid.Point{X: p.X, Y: p.Y}
	}
	return out
}
