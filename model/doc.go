// Package model defines the data entities shared by every stage of the
// inkroute pipeline: board geometry, manufacturing constraints, footprints,
// placed components, pads, nets, traces, and the final routing result.
//
// Nothing in this package performs geometry math or pathfinding; it only
// holds the vocabulary the rest of the pipeline (grid, pathfinder, netlist,
// router, output) operates on. Types here are plain structs: no mutexes, no
// hidden state, safe to copy where noted.
package model
