package controller

import (
	"eduquiz_backend/internal/service"
	"eduquiz_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ExperimentController struct {
	Service *service.ExperimentService
}

func NewExperimentController(svc *service.ExperimentService) *ExperimentController {
	return &ExperimentController{Service: svc}
}

// @Summary 创建实验
// @Tags 实验模块
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body service.ExperimentReq true "实验信息"
// @Success 201 {object} util.Response
// @Router /api/teacher/experiments [post]
func (c *ExperimentController) CreateExperiment(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.ExperimentReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	experiment, err := c.Service.CreateExperiment(user.UserID, req)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}

	util.Created(ctx, experiment)
}

// @Summary 实验列表（教师）
// @Tags 实验模块
// @Produce json
// @Security ApiKeyAuth
// @Param subjectId query int false "按科目过滤"
// @Success 200 {object} util.Response
// @Router /api/teacher/experiments [get]
func (c *ExperimentController) ListExperiments(ctx *gin.Context) {
	page, limit := pageParams(ctx)
	subjectID := util.MustParseUint(ctx.Query("subjectId"))

	experiments, total, err := c.Service.ListExperiments(subjectID, page, limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, util.PageResponse{List: experiments, Total: total, Page: page, Limit: limit})
}

// @Summary 更新实验
// @Tags 实验模块
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "实验ID"
// @Param body body service.ExperimentReq true "实验信息"
// @Success 200 {object} util.Response
// @Router /api/teacher/experiments/{id} [put]
func (c *ExperimentController) UpdateExperiment(ctx *gin.Context) {
	id := util.MustParseUint(ctx.Param("id"))

	var req service.ExperimentReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	experiment, err := c.Service.UpdateExperiment(id, req)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}

	util.Success(ctx, experiment)
}

// @Summary 删除实验
// @Tags 实验模块
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "实验ID"
// @Success 200 {object} util.Response
// @Router /api/teacher/experiments/{id} [delete]
func (c *ExperimentController) DeleteExperiment(ctx *gin.Context) {
	id := util.MustParseUint(ctx.Param("id"))

	if err := c.Service.DeleteExperiment(id); err != nil {
		respondServiceError(ctx, err)
		return
	}

	util.Success(ctx, nil)
}

// @Summary 实验列表（学生）
// @Tags 实验模块
// @Produce json
// @Security ApiKeyAuth
// @Param subjectId query int true "科目ID"
// @Success 200 {object} util.Response
// @Router /api/experiments [get]
func (c *ExperimentController) ListForStudent(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	page, limit := pageParams(ctx)
	subjectID := util.MustParseUint(ctx.Query("subjectId"))

	experiments, total, err := c.Service.ListForStudent(user.UserID, subjectID, page, limit)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}

	util.Success(ctx, util.PageResponse{List: experiments, Total: total, Page: page, Limit: limit})
}

// @Summary 实验详情（学生）
// @Tags 实验模块
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "实验ID"
// @Success 200 {object} util.Response
// @Router /api/experiments/{id} [get]
func (c *ExperimentController) GetForStudent(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	id := util.MustParseUint(ctx.Param("id"))

	experiment, err := c.Service.GetForStudent(user.UserID, id)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}

	util.Success(ctx, experiment)
}
