// @title FCC 数字化转型仪表盘 API
// @version 1.0
// @description FCC 十二个月数字化转型指标：KPI、图表定义、图表图片与案例叙述。
// @termsOfService http://swagger.io/terms/

// @contact.name API支持
// @contact.url http://www.swagger.io/support
// @contact.email support@swagger.io

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080
// @BasePath /api

package main

import "fcc_dashboard/cmd"

func main() {
	cmd.Execute()
}
