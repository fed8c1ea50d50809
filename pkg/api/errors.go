package api

import "errors"

var errAlreadyStarted = errors.New("api server already started")
