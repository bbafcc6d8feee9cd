package cmd

import (
	"fcc_dashboard/internal/app"
	"fcc_dashboard/internal/config"
	"fcc_dashboard/pkg/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var servePort string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "启动 HTTP 服务",
	RunE: func(cmd *cobra.Command, args []string) error {
		if servePort != "" {
			cfg.Server.Port = servePort
		}

		application, err := app.NewApp(cfg)
		if err != nil {
			return err
		}

		application.RegisterConfigCallback(func(c *config.Config) {
			logger.Log.Info("Dashboard settings updated",
				zap.String("title", c.Dashboard.Title),
				zap.Int("chart_width", c.Chart.Width),
				zap.Int("chart_height", c.Chart.Height),
			)
		})
		application.WatchConfig()

		return application.Run()
	},
}

func init() {
	serveCmd.Flags().StringVarP(&servePort, "port", "p", "", "监听端口，覆盖配置文件")
}
