// Package cli implements the interactive CodeRefine client: a small REPL
// for registering, logging in, submitting code for analysis, and browsing
// past results.
package cli

import (
	"bufio"
	"context"
	"log"
	"os"
	"time"

	"github.com/dmitrijs2005/coderefine/internal/client/client"
	"github.com/dmitrijs2005/coderefine/internal/client/config"
)

type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

type App struct {
	config   *config.Config
	api      *client.APIClient
	userName string
	Mode     Mode
	reader   *bufio.Reader
}

func NewApp(c *config.Config) *App {
	api := client.NewAPIClient(c.ServerEndpointAddr, c.RequestTimeout)
	return &App{config: c, api: api, reader: bufio.NewReader(os.Stdin)}
}

func (a *App) setMode(mode Mode) {
	if a.Mode != mode {
		a.Mode = mode
		log.Printf("Switched to %s mode\n", mode)
	}
}

func (a *App) Run(ctx context.Context) {
	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.api.IsLoggedIn()
}

// StartOnlineStatusWatcher periodically pings the server and flips the
// displayed mode when availability changes.
func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
			err := a.api.Ping(pingCtx)
			cancel()

			if err != nil {
				a.setMode(ModeOffline)
			} else {
				a.setMode(ModeOnline)
			}

		case <-ctx.Done():
			return
		}
	}
}
