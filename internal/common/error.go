package common

import "errors"

// ErrorValidation marks locally rejected user input.
var ErrorValidation = errors.New("validation error")
