package router

import "errors"

// ErrUnroutableNet names the UnroutableNet condition: a net that can't be
// fully connected even in the best rip-up attempt. Route never returns it;
// such pads are reported as FailedNet entries in the RoutingResult.
var ErrUnroutableNet = errors.New("router: net could not be fully connected")

// ErrInvalidInput indicates a RouterInput that is structurally unusable
// (e.g. a grid.New failure from malformed board geometry). This is
// inkroute's InternalError surface for the router layer.
var ErrInvalidInput = errors.New("router: invalid router input")
