package json

import "errors"

var errTrailingData = errors.New("json: trailing data after value")
