package controller

import (
	"errors"
	"fcc_dashboard/internal/model"
	"fcc_dashboard/internal/service"
	"fcc_dashboard/internal/util"
	"fcc_dashboard/internal/view"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

type DashboardController struct {
	DashboardService *service.DashboardService
	RenderService    *service.RenderService
	NarrativeService *service.NarrativeService
}

func NewDashboardController(
	dashboardService *service.DashboardService,
	renderService *service.RenderService,
	narrativeService *service.NarrativeService,
) *DashboardController {
	return &DashboardController{
		DashboardService: dashboardService,
		RenderService:    renderService,
		NarrativeService: narrativeService,
	}
}

// @Summary 获取仪表盘
// @Description 返回标题、四个 KPI、四个图表定义以及月份筛选框；months 只回显，不影响计算
// @Tags 仪表盘
// @Produce json
// @Param months query string false "逗号分隔的月份，例如 Ene,Feb"
// @Success 200 {object} util.Response{data=model.Dashboard}
// @Router /dashboard [get]
func (c *DashboardController) GetDashboard(ctx *gin.Context) {
	dashboard, err := c.DashboardService.GetDashboard(ctx.Request.Context(), selectedMonths(ctx))
	if err != nil {
		util.HandleError(ctx, err)
		return
	}

	util.Success(ctx, dashboard)
}

// @Summary 获取 KPI
// @Tags 仪表盘
// @Produce json
// @Success 200 {object} util.Response{data=[]model.KPISummary}
// @Router /dashboard/kpis [get]
func (c *DashboardController) GetKPIs(ctx *gin.Context) {
	kpis, err := c.DashboardService.GetKPIs(ctx.Request.Context())
	if err != nil {
		util.HandleError(ctx, err)
		return
	}

	util.Success(ctx, kpis)
}

// @Summary 获取全部图表定义
// @Tags 图表
// @Produce json
// @Success 200 {object} util.Response{data=[]model.ChartSpec}
// @Router /dashboard/charts [get]
func (c *DashboardController) GetCharts(ctx *gin.Context) {
	charts, err := c.DashboardService.GetCharts(ctx.Request.Context())
	if err != nil {
		util.HandleError(ctx, err)
		return
	}

	util.Success(ctx, charts)
}

// @Summary 获取单个图表定义
// @Tags 图表
// @Produce json
// @Param kind path string true "图表类型" Enums(line, bar, area, radar)
// @Success 200 {object} util.Response{data=model.ChartSpec}
// @Failure 404 {object} util.Response
// @Router /dashboard/charts/{kind} [get]
func (c *DashboardController) GetChart(ctx *gin.Context) {
	spec, ok := c.chartSpec(ctx)
	if !ok {
		return
	}

	util.Success(ctx, spec)
}

// @Summary 获取图表图片
// @Tags 图表
// @Produce png
// @Param kind path string true "图表类型" Enums(line, bar, area, radar)
// @Success 200 {file} binary
// @Failure 404 {object} util.Response
// @Router /dashboard/charts/{kind}/image [get]
func (c *DashboardController) GetChartImage(ctx *gin.Context) {
	spec, ok := c.chartSpec(ctx)
	if !ok {
		return
	}

	png, err := c.RenderService.RenderPNG(ctx.Request.Context(), spec)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}

	ctx.Header("Cache-Control", "public, max-age=300")
	ctx.Data(http.StatusOK, util.MimePNG, png)
}

// @Summary 获取月度数据集
// @Tags 数据
// @Produce json
// @Success 200 {object} util.Response{data=[]model.MonthlyRecord}
// @Router /dashboard/dataset [get]
func (c *DashboardController) GetDataset(ctx *gin.Context) {
	util.Success(ctx, c.DashboardService.DatasetService.Records())
}

// @Summary 获取案例叙述
// @Tags 数据
// @Produce json
// @Success 200 {object} util.Response{data=model.Narrative}
// @Router /dashboard/narrative [get]
func (c *DashboardController) GetNarrative(ctx *gin.Context) {
	narrative, err := c.NarrativeService.GetNarrative()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, narrative)
}

// @Summary 预览自定义数据集
// @Description 用请求中的 12 个月数据计算 KPI 与图表，数据不合法时返回 400
// @Tags 数据
// @Accept json
// @Produce json
// @Param request body model.PreviewRequest true "月度数据"
// @Success 200 {object} util.Response{data=model.PreviewResponse}
// @Failure 400 {object} util.Response
// @Router /dashboard/preview [post]
func (c *DashboardController) Preview(ctx *gin.Context) {
	var req model.PreviewRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	resp, err := c.DashboardService.Preview(ctx.Request.Context(), req.Records)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}

	util.Success(ctx, resp)
}

// Page 渲染完整的 HTML 仪表盘
func (c *DashboardController) Page(ctx *gin.Context) {
	dashboard, err := c.DashboardService.GetDashboard(ctx.Request.Context(), selectedMonths(ctx))
	if err != nil {
		util.HandleError(ctx, err)
		return
	}

	narrativeHTML := ""
	if dashboard.Narrative {
		if narrativeHTML, err = c.NarrativeService.HTML(); err != nil {
			util.LogInternalError(ctx, err)
			return
		}
	}

	data := view.NewPageData(dashboard, narrativeHTML, chartImageURL, time.Now())
	ctx.Status(http.StatusOK)
	ctx.Header("Content-Type", util.MimeHTML)
	if err := view.RenderPage(ctx.Writer, data); err != nil {
		util.LogInternalError(ctx, err)
	}
}

func (c *DashboardController) chartSpec(ctx *gin.Context) (*model.ChartSpec, bool) {
	kind, ok := model.ParseChartKind(ctx.Param("kind"))
	if !ok {
		util.NotFound(ctx)
		return nil, false
	}

	spec, err := c.DashboardService.GetChart(ctx.Request.Context(), kind)
	if err != nil {
		if errors.Is(err, util.ErrUnknownChart) {
			util.NotFound(ctx)
			return nil, false
		}
		util.HandleError(ctx, err)
		return nil, false
	}
	return spec, true
}

func chartImageURL(kind model.ChartKind) string {
	return "/api/dashboard/charts/" + string(kind) + "/image"
}

// selectedMonths 支持 ?months=Ene,Feb 和 ?months=Ene&months=Feb 两种写法
func selectedMonths(ctx *gin.Context) []string {
	var months []string
	for _, raw := range ctx.QueryArray("months") {
		for _, m := range strings.Split(raw, ",") {
			if m = strings.TrimSpace(m); m != "" {
				months = append(months, m)
			}
		}
	}
	return months
}
