package cli

import (
	"fmt"

	"timefield/internal/timeinput"

	"github.com/spf13/cobra"
)

func newLocalesCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "locales",
		Short: "List the built-in locale patterns",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			infos := timeinput.Locales()

			if app.Output == "text" {
				for _, li := range infos {
					fmt.Fprintf(cmd.OutOrStdout(), "%-6s  %-10s  %s/%s\n", li.Tag, li.Pattern, li.AM, li.PM)
				}
				return nil
			}

			rows := make([]map[string]any, 0, len(infos))
			for _, li := range infos {
				rows = append(rows, map[string]any{
					"tag":     li.Tag,
					"pattern": li.Pattern,
					"am":      li.AM,
					"pm":      li.PM,
				})
			}
			return writeOut(cmd, app, map[string]any{"data": map[string]any{"locales": rows}})
		},
	}
}
