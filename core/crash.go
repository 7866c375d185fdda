package core

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"sync"

	log "github.com/sirupsen/logrus"
)

// Finalizer restores the terminal; tcell.Screen satisfies it
type Finalizer interface {
	Fini()
}

var (
	crashMu     sync.Mutex
	crashScreen Finalizer

	crashOut io.Writer = os.Stderr
	exit               = os.Exit
)

// SetCrashScreen registers the screen HandleCrash restores before printing
func SetCrashScreen(s Finalizer) {
	crashMu.Lock()
	crashScreen = s
	crashMu.Unlock()
}

// HandleCrash is the unified panic handler: it restores the terminal,
// prints the panic with its stack trace and exits
func HandleCrash(r any) {
	if r == nil {
		return
	}

	crashMu.Lock()
	s := crashScreen
	crashScreen = nil
	crashMu.Unlock()
	if s != nil {
		s.Fini()
	}

	log.WithField("panic", r).Error("crash")
	fmt.Fprintf(crashOut, "\n\x1b[31mRATS CRASHED: %v\x1b[0m\n", r)
	fmt.Fprintf(crashOut, "Stack Trace:\n%s\n", debug.Stack())
	exit(1)
}

// Go runs fn in a new goroutine with panic recovery.
// Use this instead of the 'go' keyword to ensure terminal cleanup on crash.
func Go(fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				HandleCrash(r)
			}
		}()
		fn()
	}()
}
