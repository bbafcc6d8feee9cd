package cmd

import (
	"fcc_dashboard/internal/config"
	"fcc_dashboard/pkg/logger"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	configDir string
	cfg       *config.Config
)

var rootCmd = &cobra.Command{
	Use:           "fcc-dashboard",
	Short:         "FCC 数字化转型仪表盘",
	Long:          "展示 FCC 十二个月数字化转型指标的仪表盘：KPI、图表、HTML 页面与静态导出。",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.LoadConfig(configDir)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		logger.InitLogger(cfg)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Log.Sync()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configDir, "config", "c", "configs", "config.yaml 所在目录")

	rootCmd.AddCommand(serveCmd, showCmd, exportCmd, versionCmd)
}

// Execute 未指定子命令时启动 HTTP 服务
func Execute() {
	if len(os.Args) == 1 {
		rootCmd.SetArgs([]string{"serve"})
	}
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
