package ioadapter

import "errors"

// ErrInputMalformed is the InputError sentinel: malformed
// JSON, missing required fields, non-finite numbers, or a polygon with
// fewer than 3 vertices. fmt.Errorf("%w: ...") wraps it with the specific
// offending field.
var ErrInputMalformed = errors.New("ioadapter: malformed input document")
