package framework

import "errors"

// ErrUnsupportedSolution is returned by Operators given a Solution of a
// representation they do not handle.
var ErrUnsupportedSolution = errors.New("unsupported solution type")
