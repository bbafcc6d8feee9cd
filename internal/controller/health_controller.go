package controller

import (
	"fcc_dashboard/internal/service"
	"fcc_dashboard/internal/util"
	"net/http"

	"github.com/gin-gonic/gin"
)

type HealthController struct {
	DatasetService *service.DatasetService
	CacheType      string
}

func NewHealthController(datasetService *service.DatasetService, cacheType string) *HealthController {
	return &HealthController{DatasetService: datasetService, CacheType: cacheType}
}

// @Summary 健康检查
// @Description 检查内置数据集是否有效
// @Tags 系统
// @Produce json
// @Success 200 {object} util.Response
// @Failure 503 {object} util.Response
// @Router /health [get]
func (c *HealthController) HealthCheck(ctx *gin.Context) {
	if err := service.ValidateDataset(c.DatasetService.Records()); err != nil {
		util.Error(ctx, http.StatusServiceUnavailable, "Dataset invalid")
		return
	}

	util.Success(ctx, gin.H{
		"status": "ok",
		"components": gin.H{
			"dataset": "up",
			"cache":   c.CacheType,
		},
	})
}
