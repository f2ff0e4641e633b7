// Package ioadapter translates between the JSON input/output documents and
// the engine's model.RouterInput / model.RoutingResult types.
//
// This is deliberately the only package in the module that imports
// encoding/json: (de)serialization and input validation live at this
// boundary, before the engine ever runs, so a malformed document is
// rejected as ErrInputMalformed without touching the router.
package ioadapter
