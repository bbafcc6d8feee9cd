package cmd

import (
	"fcc_dashboard/internal/app"
	"fcc_dashboard/pkg/cache"
	"fmt"

	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "导出静态仪表盘（HTML、图片、JSON、清单）到存储",
	RunE: func(cmd *cobra.Command, args []string) error {
		// 每张图只渲染一次，不需要缓存
		services := app.NewServices(cfg, cache.Noop{})

		result, err := services.Export.Export(cmd.Context())
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "export %s\n", result.ID)
		for _, f := range result.Files {
			fmt.Fprintf(out, "  %-22s %8d  %s\n", f.Name, f.Size, f.URL)
		}
		return nil
	},
}
