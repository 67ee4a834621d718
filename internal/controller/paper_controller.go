package controller

import (
	"exam_platform_backend/internal/model"
	"exam_platform_backend/internal/service"
	"exam_platform_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type PaperController struct {
	PaperService *service.PaperService
}

func NewPaperController(paperService *service.PaperService) *PaperController {
	return &PaperController{PaperService: paperService}
}

// CreatePaper godoc
// @Summary 创建试卷
// @Description 试卷与题目在同一事务中创建
// @Tags 试卷
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   body body model.CreatePaperRequest true "试卷与题目"
// @Success 201 {object} util.Response{data=object} "返回 paper_id"
// @Failure 400 {object} util.Response "请求参数错误"
// @Failure 403 {object} util.Response "无权限"
// @Failure 404 {object} util.Response "班级不存在"
// @Router /api/papers [post]
func (c *PaperController) CreatePaper(ctx *gin.Context) {
	var req model.CreatePaperRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	paper, err := c.PaperService.CreatePaper(util.GetUserFromContext(ctx), &req)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Created(ctx, gin.H{"paper_id": paper.ID})
}

// ListPapers godoc
// @Summary 试卷列表
// @Description 教师返回自己创建的试卷，管理员返回全部，学生返回所在班级的试卷及本人提交情况
// @Tags 试卷
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=[]model.PaperListItem}
// @Router /api/papers [get]
func (c *PaperController) ListPapers(ctx *gin.Context) {
	papers, err := c.PaperService.ListPapers(util.GetUserFromContext(ctx))
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, papers)
}

// GetPaper godoc
// @Summary 试卷详情
// @Description 学生视图隐藏标准答案，并附带最近一次提交
// @Tags 试卷
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "试卷ID"
// @Success 200 {object} util.Response{data=model.PaperDetail}
// @Failure 403 {object} util.Response "无权限"
// @Failure 404 {object} util.Response "试卷不存在"
// @Router /api/papers/{id} [get]
func (c *PaperController) GetPaper(ctx *gin.Context) {
	detail, err := c.PaperService.GetPaper(util.GetUserFromContext(ctx), util.MustParseUint(ctx.Param("id")))
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, detail)
}

// UpdateQuestion godoc
// @Summary 修改题目
// @Tags 试卷
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "题目ID"
// @Param   body body model.UpdateQuestionRequest true "需要修改的字段"
// @Success 200 {object} util.Response{data=model.Question}
// @Failure 403 {object} util.Response "不是试卷创建者"
// @Failure 404 {object} util.Response "题目不存在"
// @Router /api/papers/questions/{id} [put]
func (c *PaperController) UpdateQuestion(ctx *gin.Context) {
	var req model.UpdateQuestionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	question, err := c.PaperService.UpdateQuestion(util.GetUserFromContext(ctx), util.MustParseUint(ctx.Param("id")), &req)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, question)
}

// DeletePaper godoc
// @Summary 删除试卷
// @Description 同时删除题目、提交与答案
// @Tags 试卷
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "试卷ID"
// @Success 200 {object} util.Response
// @Failure 403 {object} util.Response "不是试卷创建者"
// @Failure 404 {object} util.Response "试卷不存在"
// @Router /api/papers/{id} [delete]
func (c *PaperController) DeletePaper(ctx *gin.Context) {
	if err := c.PaperService.DeletePaper(util.GetUserFromContext(ctx), util.MustParseUint(ctx.Param("id"))); err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"message": "Paper deleted"})
}
