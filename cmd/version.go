package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// 构建时通过 -ldflags "-X fcc_dashboard/cmd.Version=..." 注入
var (
	Version   = "dev"
	BuildTime = "unknown"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "显示版本信息",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "fcc-dashboard %s (built %s)\n", Version, BuildTime)
	},
}
