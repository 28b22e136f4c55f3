//go:build !windows

package main

import (
	"os"
	"syscall"
)

// terminationSignals trigger a graceful shutdown. SIGTERM is what most
// process supervisors send first.
var terminationSignals = []os.Signal{os.Interrupt, syscall.SIGTERM}
