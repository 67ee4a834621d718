package controller

import (
	"exam_platform_backend/internal/service"
	"exam_platform_backend/internal/util"
	"strconv"

	"github.com/gin-gonic/gin"
)

type AnalyticsController struct {
	AnalyticsService *service.AnalyticsService
}

func NewAnalyticsController(analyticsService *service.AnalyticsService) *AnalyticsController {
	return &AnalyticsController{AnalyticsService: analyticsService}
}

// queryLimit 缺省或非法时返回 0，由服务层使用默认值
func queryLimit(ctx *gin.Context) int {
	limit, err := strconv.Atoi(ctx.Query("limit"))
	if err != nil {
		return 0
	}
	return limit
}

// GetOverview godoc
// @Summary 提交总览
// @Description 提交数、平均分与活跃学生数；教师只统计自己的试卷
// @Tags 学情分析
// @Produce  json
// @Security BearerAuth
// @Param   class_id query int false "班级ID"
// @Success 200 {object} util.Response{data=model.AnalyticsOverview}
// @Failure 403 {object} util.Response "学生无权访问"
// @Router /api/analytics/overview [get]
func (c *AnalyticsController) GetOverview(ctx *gin.Context) {
	scope := service.ScopeFor(util.GetUserFromContext(ctx), util.ParseOptionalUint(ctx.Query("class_id")))
	overview, err := c.AnalyticsService.Overview(scope)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, overview)
}

// GetWeakSkills godoc
// @Summary 薄弱技能
// @Description 按错题数降序返回技能标签
// @Tags 学情分析
// @Produce  json
// @Security BearerAuth
// @Param   class_id query int false "班级ID"
// @Param   limit query int false "返回条数，默认 5"
// @Success 200 {object} util.Response{data=[]model.SkillErrors}
// @Failure 403 {object} util.Response "学生无权访问"
// @Router /api/analytics/weak-skills [get]
func (c *AnalyticsController) GetWeakSkills(ctx *gin.Context) {
	scope := service.ScopeFor(util.GetUserFromContext(ctx), util.ParseOptionalUint(ctx.Query("class_id")))
	skills, err := c.AnalyticsService.WeakSkills(scope, queryLimit(ctx))
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, skills)
}

// GetWeakAreas godoc
// @Summary 薄弱环节
// @Description 技能与题型正确率、得分最低的试卷与学生（附带每个学生最薄弱的三个技能）
// @Tags 学情分析
// @Produce  json
// @Security BearerAuth
// @Param   class_id query int false "班级ID"
// @Param   limit query int false "每个列表的条数，默认 5"
// @Success 200 {object} util.Response{data=model.WeakAreas}
// @Failure 403 {object} util.Response "学生无权访问"
// @Router /api/analytics/weak-areas [get]
func (c *AnalyticsController) GetWeakAreas(ctx *gin.Context) {
	scope := service.ScopeFor(util.GetUserFromContext(ctx), util.ParseOptionalUint(ctx.Query("class_id")))
	areas, err := c.AnalyticsService.WeakAreas(scope, queryLimit(ctx))
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, areas)
}

// GetStudentPerformance godoc
// @Summary 学生成绩排行
// @Description 按平均分升序，最需要关注的学生在前
// @Tags 学情分析
// @Produce  json
// @Security BearerAuth
// @Param   class_id query int false "班级ID"
// @Param   limit query int false "返回条数，默认 10"
// @Success 200 {object} util.Response{data=[]model.StudentPerformance}
// @Failure 403 {object} util.Response "学生无权访问"
// @Router /api/analytics/student-performance [get]
func (c *AnalyticsController) GetStudentPerformance(ctx *gin.Context) {
	scope := service.ScopeFor(util.GetUserFromContext(ctx), util.ParseOptionalUint(ctx.Query("class_id")))
	perf, err := c.AnalyticsService.StudentPerformance(scope, queryLimit(ctx))
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, perf)
}

// GetStudentReport godoc
// @Summary 个人学习报告
// @Description 当前学生的成绩趋势、薄弱技能与评语
// @Tags 学情分析
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=model.StudentReport}
// @Failure 403 {object} util.Response "仅学生可访问"
// @Router /api/analytics/student-report [get]
func (c *AnalyticsController) GetStudentReport(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	report, err := c.AnalyticsService.StudentReport(claims.UserID)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, report)
}
