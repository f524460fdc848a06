package controller

import (
	"eduquiz_backend/internal/model"
	"eduquiz_backend/internal/service"
	"eduquiz_backend/internal/util"
	"strconv"

	"github.com/gin-gonic/gin"
)

// AdminController 管理员模块：用户/班级/科目管理
type AdminController struct {
	UserService    *service.UserService
	ClassService   *service.ClassService
	SubjectService *service.SubjectService
}

func NewAdminController(userService *service.UserService, classService *service.ClassService, subjectService *service.SubjectService) *AdminController {
	return &AdminController{
		UserService:    userService,
		ClassService:   classService,
		SubjectService: subjectService,
	}
}

func pageParams(ctx *gin.Context) (int, int) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "20"))
	if page < 1 {
		page = util.DefaultPage
	}
	if limit < 1 {
		limit = util.DefaultLimit
	}
	return page, limit
}

// @Summary 创建用户
// @Tags 管理员模块
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body service.CreateUserReq true "用户信息"
// @Success 201 {object} util.Response
// @Router /api/admin/users [post]
func (c *AdminController) CreateUser(ctx *gin.Context) {
	var req service.CreateUserReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	user, err := c.UserService.CreateUser(req)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}

	util.Created(ctx, user)
}

// @Summary 用户列表
// @Tags 管理员模块
// @Produce json
// @Security ApiKeyAuth
// @Param role query string false "按角色过滤"
// @Param classId query int false "按班级过滤"
// @Success 200 {object} util.Response
// @Router /api/admin/users [get]
func (c *AdminController) ListUsers(ctx *gin.Context) {
	page, limit := pageParams(ctx)
	role := ctx.Query("role")
	classID := util.MustParseUint(ctx.Query("classId"))

	users, total, err := c.UserService.ListUsers(role, classID, page, limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, util.PageResponse{List: users, Total: total, Page: page, Limit: limit})
}

// @Summary 更新用户
// @Tags 管理员模块
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "用户ID"
// @Param body body service.UpdateUserReq true "更新信息"
// @Success 200 {object} util.Response
// @Router /api/admin/users/{id} [put]
func (c *AdminController) UpdateUser(ctx *gin.Context) {
	id := util.MustParseUint(ctx.Param("id"))

	var req service.UpdateUserReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	user, err := c.UserService.UpdateUser(id, req)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}

	util.Success(ctx, user)
}

// @Summary 删除用户
// @Tags 管理员模块
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "用户ID"
// @Success 200 {object} util.Response
// @Router /api/admin/users/{id} [delete]
func (c *AdminController) DeleteUser(ctx *gin.Context) {
	id := util.MustParseUint(ctx.Param("id"))

	if err := c.UserService.DeleteUser(id); err != nil {
		respondServiceError(ctx, err)
		return
	}

	util.Success(ctx, nil)
}

type ClassReq struct {
	Name string `json:"name" binding:"required"`
	Year int    `json:"year"`
}

// @Summary 创建班级
// @Tags 管理员模块
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body ClassReq true "班级信息"
// @Success 201 {object} util.Response
// @Router /api/admin/classes [post]
func (c *AdminController) CreateClass(ctx *gin.Context) {
	var req ClassReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	class := &model.Class{Name: req.Name, Year: req.Year}
	if err := c.ClassService.CreateClass(class); err != nil {
		respondServiceError(ctx, err)
		return
	}

	util.Created(ctx, class)
}

// @Summary 班级列表
// @Tags 管理员模块
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /api/admin/classes [get]
func (c *AdminController) ListClasses(ctx *gin.Context) {
	page, limit := pageParams(ctx)

	classes, total, err := c.ClassService.ListClasses(page, limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, util.PageResponse{List: classes, Total: total, Page: page, Limit: limit})
}

// @Summary 更新班级
// @Tags 管理员模块
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "班级ID"
// @Param body body ClassReq true "班级信息"
// @Success 200 {object} util.Response
// @Router /api/admin/classes/{id} [put]
func (c *AdminController) UpdateClass(ctx *gin.Context) {
	id := util.MustParseUint(ctx.Param("id"))

	var req ClassReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	class, err := c.ClassService.GetClass(id)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}

	class.Name = req.Name
	class.Year = req.Year
	if err := c.ClassService.UpdateClass(class); err != nil {
		respondServiceError(ctx, err)
		return
	}

	util.Success(ctx, class)
}

// @Summary 删除班级
// @Tags 管理员模块
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "班级ID"
// @Success 200 {object} util.Response
// @Router /api/admin/classes/{id} [delete]
func (c *AdminController) DeleteClass(ctx *gin.Context) {
	id := util.MustParseUint(ctx.Param("id"))

	if err := c.ClassService.DeleteClass(id); err != nil {
		respondServiceError(ctx, err)
		return
	}

	util.Success(ctx, nil)
}

// @Summary 班级学生名册
// @Tags 管理员模块
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "班级ID"
// @Success 200 {object} util.Response
// @Router /api/admin/classes/{id}/students [get]
func (c *AdminController) ListClassStudents(ctx *gin.Context) {
	id := util.MustParseUint(ctx.Param("id"))
	page, limit := pageParams(ctx)

	students, total, err := c.ClassService.ListStudents(id, page, limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, util.PageResponse{List: students, Total: total, Page: page, Limit: limit})
}

type AssignSubjectReq struct {
	SubjectID uint `json:"subjectId" binding:"required"`
}

// @Summary 给班级分配科目
// @Tags 管理员模块
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "班级ID"
// @Param body body AssignSubjectReq true "科目"
// @Success 200 {object} util.Response
// @Router /api/admin/classes/{id}/subjects [post]
func (c *AdminController) AssignSubject(ctx *gin.Context) {
	id := util.MustParseUint(ctx.Param("id"))

	var req AssignSubjectReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.ClassService.AssignSubject(id, req.SubjectID); err != nil {
		respondServiceError(ctx, err)
		return
	}

	util.Success(ctx, nil)
}

// @Summary 移除班级科目
// @Tags 管理员模块
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "班级ID"
// @Param subjectId path int true "科目ID"
// @Success 200 {object} util.Response
// @Router /api/admin/classes/{id}/subjects/{subjectId} [delete]
func (c *AdminController) RemoveSubject(ctx *gin.Context) {
	id := util.MustParseUint(ctx.Param("id"))
	subjectID := util.MustParseUint(ctx.Param("subjectId"))

	if err := c.ClassService.RemoveSubject(id, subjectID); err != nil {
		respondServiceError(ctx, err)
		return
	}

	util.Success(ctx, nil)
}

// @Summary 班级科目列表
// @Tags 管理员模块
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "班级ID"
// @Success 200 {object} util.Response
// @Router /api/admin/classes/{id}/subjects [get]
func (c *AdminController) ListClassSubjects(ctx *gin.Context) {
	id := util.MustParseUint(ctx.Param("id"))

	subjects, err := c.ClassService.ListSubjects(id)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, subjects)
}

type SubjectReq struct {
	Name        string `json:"name" binding:"required"`
	Code        string `json:"code"`
	Description string `json:"description"`
}

// @Summary 创建科目
// @Tags 管理员模块
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body SubjectReq true "科目信息"
// @Success 201 {object} util.Response
// @Router /api/admin/subjects [post]
func (c *AdminController) CreateSubject(ctx *gin.Context) {
	var req SubjectReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	subject := &model.Subject{Name: req.Name, Code: req.Code, Description: req.Description}
	if err := c.SubjectService.CreateSubject(subject); err != nil {
		respondServiceError(ctx, err)
		return
	}

	util.Created(ctx, subject)
}

// @Summary 科目列表
// @Tags 管理员模块
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /api/admin/subjects [get]
func (c *AdminController) ListSubjects(ctx *gin.Context) {
	page, limit := pageParams(ctx)

	subjects, total, err := c.SubjectService.ListSubjects(page, limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, util.PageResponse{List: subjects, Total: total, Page: page, Limit: limit})
}

// @Summary 更新科目
// @Tags 管理员模块
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "科目ID"
// @Param body body SubjectReq true "科目信息"
// @Success 200 {object} util.Response
// @Router /api/admin/subjects/{id} [put]
func (c *AdminController) UpdateSubject(ctx *gin.Context) {
	id := util.MustParseUint(ctx.Param("id"))

	var req SubjectReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	subject, err := c.SubjectService.GetSubject(id)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}

	subject.Name = req.Name
	subject.Code = req.Code
	subject.Description = req.Description
	if err := c.SubjectService.UpdateSubject(subject); err != nil {
		respondServiceError(ctx, err)
		return
	}

	util.Success(ctx, subject)
}

// @Summary 删除科目
// @Tags 管理员模块
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "科目ID"
// @Success 200 {object} util.Response
// @Router /api/admin/subjects/{id} [delete]
func (c *AdminController) DeleteSubject(ctx *gin.Context) {
	id := util.MustParseUint(ctx.Param("id"))

	if err := c.SubjectService.DeleteSubject(id); err != nil {
		respondServiceError(ctx, err)
		return
	}

	util.Success(ctx, nil)
}
