package sysinfo

import "errors"

var (
	errNoCPUInfo  = errors.New("no cpu entries in cpuinfo")
	errNoMemTotal = errors.New("meminfo is missing MemTotal")
)
