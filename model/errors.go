package model

import "errors"

// ErrPlacementCollision marks a PlacementError condition: two
// pads sharing a grid cell, or a component body extending outside the
// board. Placement records these as warnings rather than aborting
// (route() never aborts).
var ErrPlacementCollision = errors.New("model: placement collision")
