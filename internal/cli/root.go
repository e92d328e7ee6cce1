package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"timefield/internal/format"
	"timefield/internal/timeinput"
	"timefield/internal/tui"

	"github.com/spf13/cobra"
)

type App struct {
	Locale      string
	TimeFormat  string
	Granularity string
	Value       string
	Min         string
	Max         string
	Label       string
	Required    bool
	Native      bool
	Output      string
	PrettyJSON  bool
}

var errCanceled = errors.New("canceled")

func NewRootCmd() *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:          "timefield",
		Short:        "Segmented time picker for the terminal (TUI + CLI)",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Pick a time interactively and print it
  timefield

  # German 24-hour layout at second granularity
  timefield --locale de-DE --granularity second

  # Explicit layout, preset value and plain output for scripts
  timefield --format "HH:mm" --value 09:30 --output text

  # Constrain the selectable range
  timefield --min 08:00 --max 17:30 --required
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPicker(cmd, app)
		},
	}

	cmd.PersistentFlags().StringVar(&app.Output, "output", envOr("TIMEFIELD_OUTPUT", "json"), "Output format (json|text)")
	cmd.PersistentFlags().BoolVar(&app.PrettyJSON, "pretty", false, "Pretty-print JSON output")

	// Picker options are persistent so `serve` inherits the same configuration.
	cmd.PersistentFlags().StringVar(&app.Locale, "locale", envOr("TIMEFIELD_LOCALE", "en-US"), "BCP 47 locale the layout derives from")
	cmd.PersistentFlags().StringVar(&app.TimeFormat, "format", envOr("TIMEFIELD_FORMAT", ""), `Explicit layout ("HH:mm", "h:mm:ss a"); empty derives from the locale`)
	cmd.PersistentFlags().StringVar(&app.Granularity, "granularity", envOr("TIMEFIELD_GRANULARITY", "minute"), "Time granularity (hour|minute|second)")
	cmd.PersistentFlags().StringVar(&app.Value, "value", "", "Initial value (HH:MM or HH:MM:SS)")
	cmd.PersistentFlags().StringVar(&app.Min, "min", "", "Earliest selectable time")
	cmd.PersistentFlags().StringVar(&app.Max, "max", "", "Latest selectable time")
	cmd.PersistentFlags().StringVar(&app.Label, "label", "Time", "Field label shown next to the input")
	cmd.PersistentFlags().BoolVar(&app.Required, "required", false, "Refuse to accept an empty value")
	cmd.PersistentFlags().BoolVar(&app.Native, "native", false, "Start in the single-field fallback editor")

	cmd.AddCommand(newLocalesCmd(app))
	cmd.AddCommand(newDocsCmd(app))
	cmd.AddCommand(newServeCmd(app))

	return cmd
}

func runPicker(cmd *cobra.Command, app *App) error {
	gran, err := timeinput.ParseGranularity(app.Granularity)
	if err != nil {
		return writeErr(cmd, err)
	}

	res, err := tui.Run(tui.Options{
		Label:       app.Label,
		Locale:      app.Locale,
		Format:      app.TimeFormat,
		Granularity: gran,
		Value:       app.Value,
		Min:         app.Min,
		Max:         app.Max,
		Required:    app.Required,
		Native:      app.Native,
	})
	if err != nil {
		return writeErr(cmd, err)
	}
	if !res.Accepted {
		return writeErr(cmd, errCanceled)
	}

	if app.Output == "text" {
		value := ""
		if res.Value != nil {
			value = *res.Value
		}
		return writeOut(cmd, app, value)
	}
	return writeOut(cmd, app, map[string]any{"data": map[string]any{"accepted": true, "value": res.Value}})
}

func envOr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func writeOut(cmd *cobra.Command, app *App, v any) error {
	return format.Write(cmd.OutOrStdout(), v, app.Output, app.PrettyJSON)
}

func writeErr(cmd *cobra.Command, err error) error {
	fmt.Fprintln(cmd.ErrOrStderr(), err.Error())
	return err
}
