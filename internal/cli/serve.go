package cli

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"timefield/internal/webtui"

	"github.com/spf13/cobra"
)

func newServeCmd(app *App) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the picker in your browser (PTY + WebSocket demo, experimental)",
		Long: strings.TrimSpace(`
Serve the Bubble Tea picker over the web via a server-side PTY and a browser
terminal emulator.

Notes:
- Experimental demo mode (no auth).
- Each browser tab starts a picker subprocess on the server.
`),
		Example: strings.TrimSpace(`
# Serve the default picker on localhost
timefield serve --addr 127.0.0.1:3334

# Serve a preconfigured picker
timefield serve --locale de-DE --granularity second --addr :3334
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			srv, err := webtui.NewServer(webtui.ServerConfig{
				Addr:        strings.TrimSpace(addr),
				Locale:      app.Locale,
				Format:      app.TimeFormat,
				Granularity: app.Granularity,
				Value:       app.Value,
				Min:         app.Min,
				Max:         app.Max,
				Label:       app.Label,
				Required:    app.Required,
				Native:      app.Native,
			})
			if err != nil {
				return writeErr(cmd, err)
			}

			listenAddr := srv.Addr()
			if listenAddr == "" {
				return writeErr(cmd, errors.New("serve: missing --addr"))
			}

			_ = writeOut(cmd, app, map[string]any{
				"data": map[string]any{
					"addr":        listenAddr,
					"locale":      app.Locale,
					"granularity": app.Granularity,
					"startedAt":   time.Now().UTC().Format(time.RFC3339Nano),
				},
				"_hints": []string{
					"open http://" + listenAddr,
				},
			})

			fmt.Fprintf(cmd.ErrOrStderr(), "timefield serve running at http://%s (locale=%s)\n", listenAddr, strings.TrimSpace(app.Locale))
			return http.ListenAndServe(listenAddr, srv.Handler())
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "127.0.0.1:3334", "Bind address (host:port or :port)")
	return cmd
}
