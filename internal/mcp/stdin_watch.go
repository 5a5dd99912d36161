package mcp

import (
	"context"
	"os"
	"time"

	"leafcare/internal/logging"
)

// parentPollInterval is how often WatchParent checks the parent PID.
var parentPollInterval = 2 * time.Second

// WatchParent cancels the server context when the parent process goes away
// (the MCP client exited or restarted). The stdio transport owns stdin, so
// this only polls the parent PID and never reads.
//
// The goroutine exits when ctx is canceled or parent death is detected.
func WatchParent(ctx context.Context, cancelFn context.CancelFunc) {
	watchParent(ctx, cancelFn, os.Getppid)
}

func watchParent(ctx context.Context, cancelFn context.CancelFunc, getppid func() int) {
	ppid := getppid()
	interval := parentPollInterval
	logger := logging.New("mcp")
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if getppid() != ppid {
					logger.Warn("parent process died, initiating shutdown", "ppid", ppid)
					cancelFn()
					return
				}
			}
		}
	}()
}
