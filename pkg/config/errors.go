package config

import "errors"

var (
	errInvalidDuration   = errors.New("invalid duration")
	errEndpointsRequired = errors.New("endpoints list is required")
	errEndpointName      = errors.New("endpoint name is required")
	errEndpointAddress   = errors.New("endpoint address is required")
	errUnknownProbeKind  = errors.New("unknown probe kind")
	errPortRequired      = errors.New("port is required for tcp probes")
	errDuplicateEndpoint = errors.New("duplicate endpoint name")
)
