// Package cli implements inkroute's command-line interface: a Cobra root
// command with "route" and "render" subcommands.
//
// This package is the only place inkroute touches a terminal: it owns
// stderr diagnostics (github.com/fatih/color highlighting,
// github.com/briandowns/spinner rip-up progress) and the process exit
// code. The engine packages (model, grid, pathfinder, netlist, router,
// output) never import it and never write to stdout/stderr themselves.
package cli
