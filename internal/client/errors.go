package client

import "errors"

var ErrNilUI = errors.New("ui is nil")
