package cmd

import "errors"

// errInvalidFlag is returned for flag values that fail validation.
var errInvalidFlag = errors.New("invalid flag")
