package controller

import (
	"exam_platform_backend/internal/model"
	"exam_platform_backend/internal/service"
	"exam_platform_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ClassController struct {
	ClassService *service.ClassService
}

func NewClassController(classService *service.ClassService) *ClassController {
	return &ClassController{ClassService: classService}
}

// CreateClass godoc
// @Summary 创建班级
// @Tags 班级
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   body body model.CreateClassRequest true "班级信息"
// @Success 201 {object} util.Response{data=model.Class}
// @Failure 400 {object} util.Response "请求参数错误"
// @Failure 403 {object} util.Response "无权限"
// @Router /api/classes [post]
func (c *ClassController) CreateClass(ctx *gin.Context) {
	var req model.CreateClassRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	class, err := c.ClassService.CreateClass(util.GetUserFromContext(ctx), req.Name)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Created(ctx, class)
}

// ListClasses godoc
// @Summary 班级列表
// @Description 教师返回自己的班级，管理员返回全部
// @Tags 班级
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=[]model.Class}
// @Router /api/classes [get]
func (c *ClassController) ListClasses(ctx *gin.Context) {
	classes, err := c.ClassService.ListClasses(util.GetUserFromContext(ctx))
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, classes)
}

// EnrollStudent godoc
// @Summary 学生加入班级
// @Tags 班级
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "班级ID"
// @Param   body body model.EnrollRequest true "学生ID"
// @Success 200 {object} util.Response
// @Failure 400 {object} util.Response "只能加入学生"
// @Failure 403 {object} util.Response "不是班级所属教师"
// @Failure 404 {object} util.Response "班级或学生不存在"
// @Router /api/classes/{id}/students [post]
func (c *ClassController) EnrollStudent(ctx *gin.Context) {
	classID := util.MustParseUint(ctx.Param("id"))
	var req model.EnrollRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.ClassService.Enroll(util.GetUserFromContext(ctx), classID, req.StudentID); err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"class_id": classID, "student_id": req.StudentID})
}

// ListStudents godoc
// @Summary 班级学生列表
// @Tags 班级
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "班级ID"
// @Success 200 {object} util.Response{data=[]model.User}
// @Failure 403 {object} util.Response "不是班级所属教师"
// @Failure 404 {object} util.Response "班级不存在"
// @Router /api/classes/{id}/students [get]
func (c *ClassController) ListStudents(ctx *gin.Context) {
	students, err := c.ClassService.ListStudents(util.GetUserFromContext(ctx), util.MustParseUint(ctx.Param("id")))
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, students)
}
