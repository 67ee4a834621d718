package controller

import (
	"exam_platform_backend/internal/model"
	"exam_platform_backend/internal/service"
	"exam_platform_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type SubmissionController struct {
	SubmissionService *service.SubmissionService
}

func NewSubmissionController(submissionService *service.SubmissionService) *SubmissionController {
	return &SubmissionController{SubmissionService: submissionService}
}

// Submit godoc
// @Summary 提交答卷
// @Description 客观题自动判分，主观题交由语言模型评分；不属于该试卷的题目会被忽略
// @Tags 提交
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "试卷ID"
// @Param   body body model.SubmitRequest true "作答列表"
// @Success 200 {object} util.Response{data=model.ScoreResult}
// @Failure 400 {object} util.Response "请求参数错误"
// @Failure 404 {object} util.Response "试卷不存在"
// @Router /api/papers/{id}/submit [post]
func (c *SubmissionController) Submit(ctx *gin.Context) {
	var req model.SubmitRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	claims := util.GetUserFromContext(ctx)
	result, err := c.SubmissionService.ScoreSubmission(ctx.Request.Context(), util.MustParseUint(ctx.Param("id")), claims.UserID, req.Answers)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, result)
}

// OverrideScore godoc
// @Summary 手动评分
// @Description 修改单题得分，提交总分重算为所有答案得分之和
// @Tags 提交
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "答案ID"
// @Param   body body model.OverrideScoreRequest true "新的分数"
// @Success 200 {object} util.Response{data=model.OverrideScoreResponse}
// @Failure 403 {object} util.Response "不是试卷创建者"
// @Failure 404 {object} util.Response "答案不存在"
// @Router /api/papers/submissions/answers/{id}/score [put]
func (c *SubmissionController) OverrideScore(ctx *gin.Context) {
	var req model.OverrideScoreRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	total, err := c.SubmissionService.OverrideAnswerScore(util.GetUserFromContext(ctx), util.MustParseUint(ctx.Param("id")), *req.Score, req.IsCorrect)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, model.OverrideScoreResponse{Message: "Score updated", TotalScore: total})
}

// GetSubmission godoc
// @Summary 提交详情
// @Tags 提交
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "提交ID"
// @Success 200 {object} util.Response{data=model.SubmissionDetail}
// @Failure 403 {object} util.Response "无权限"
// @Failure 404 {object} util.Response "提交不存在"
// @Router /api/papers/submissions/{id} [get]
func (c *SubmissionController) GetSubmission(ctx *gin.Context) {
	detail, err := c.SubmissionService.GetSubmissionDetail(util.GetUserFromContext(ctx), util.MustParseUint(ctx.Param("id")))
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, detail)
}

// ListStudentSubmissions godoc
// @Summary 学生的提交记录
// @Description 教师只能看到自己试卷上的提交
// @Tags 提交
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "学生ID"
// @Success 200 {object} util.Response{data=[]repository.StudentSubmission}
// @Failure 403 {object} util.Response "无权限"
// @Router /api/papers/students/{id}/submissions [get]
func (c *SubmissionController) ListStudentSubmissions(ctx *gin.Context) {
	subs, err := c.SubmissionService.ListStudentSubmissions(util.GetUserFromContext(ctx), util.MustParseUint(ctx.Param("id")))
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, subs)
}
