package cmd

import (
	"encoding/json"
	"fcc_dashboard/internal/app"
	"fcc_dashboard/internal/view"
	"fmt"

	"github.com/spf13/cobra"
)

var (
	showJSON      bool
	showNarrative bool
	showWidth     int
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "在终端中显示仪表盘",
	RunE: func(cmd *cobra.Command, args []string) error {
		services := app.NewServices(cfg, nil)
		dashboard, err := services.Dashboard.GetDashboard(cmd.Context(), nil)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if showJSON {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(dashboard)
		}

		fmt.Fprintln(out, view.RenderTerminal(dashboard, services.Dataset.Records()))

		if showNarrative {
			text, err := services.Narrative.Terminal(showWidth)
			if err != nil {
				return err
			}
			fmt.Fprint(out, text)
		}
		return nil
	},
}

func init() {
	showCmd.Flags().BoolVar(&showJSON, "json", false, "以 JSON 输出")
	showCmd.Flags().BoolVar(&showNarrative, "narrative", false, "同时输出案例叙述")
	showCmd.Flags().IntVar(&showWidth, "width", 100, "叙述文本换行宽度")
}
