package client

import "errors"

// ErrFlowInProgress is returned when a flow is started while another one is
// still running.
var ErrFlowInProgress = errors.New("another flow is in progress")
