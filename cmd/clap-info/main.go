package main

import (
	"fmt"
	"os"
	"runtime"
)

// CLAP requires main-thread calls to come from the thread that loaded the
// module; keep the main goroutine on the process main thread.
func init() {
	runtime.LockOSThread()
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
