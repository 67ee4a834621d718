package controller

import (
	"context"
	"exam_platform_backend/internal/util"
	"exam_platform_backend/pkg/logger"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// healthPingTimeout 数据库探活上限，避免健康检查本身挂住
const healthPingTimeout = 2 * time.Second

// DatabaseHealth 数据库探活结果
type DatabaseHealth struct {
	Status          string  `json:"status"`
	Driver          string  `json:"driver"`
	LatencyMs       float64 `json:"latency_ms"`
	OpenConnections int     `json:"open_connections"`
}

type HealthReport struct {
	Status   string         `json:"status"`
	Database DatabaseHealth `json:"database"`
}

type HealthController struct {
	DB *gorm.DB
}

func NewHealthController(db *gorm.DB) *HealthController {
	return &HealthController{DB: db}
}

// @Summary 健康检查
// @Description 探测数据库连通性，返回驱动、延迟与连接数
// @Tags 系统
// @Produce json
// @Success 200 {object} util.Response{data=HealthReport}
// @Failure 503 {object} util.Response "数据库不可用"
// @Router /api/health [get]
func (c *HealthController) HealthCheck(ctx *gin.Context) {
	sqlDB, err := c.DB.DB()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	driver := c.DB.Dialector.Name()

	pingCtx, cancel := context.WithTimeout(ctx.Request.Context(), healthPingTimeout)
	defer cancel()

	start := time.Now()
	if err := sqlDB.PingContext(pingCtx); err != nil {
		logger.L().Warn("Database ping failed", zap.String("driver", driver), zap.Error(err))
		util.Error(ctx, http.StatusServiceUnavailable, "Database unavailable")
		return
	}
	latency := time.Since(start)

	util.Success(ctx, HealthReport{
		Status: "ok",
		Database: DatabaseHealth{
			Status:          "up",
			Driver:          driver,
			LatencyMs:       float64(latency.Microseconds()) / 1000,
			OpenConnections: sqlDB.Stats().OpenConnections,
		},
	})
}
