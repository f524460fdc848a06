package controller

import (
	"eduquiz_backend/internal/service"
	"eduquiz_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// QuizController 教师端：测验与题目管理、成绩与题目统计
type QuizController struct {
	QuizService      *service.QuizService
	AnalyticsService *service.AnalyticsService
}

func NewQuizController(quizService *service.QuizService, analyticsService *service.AnalyticsService) *QuizController {
	return &QuizController{
		QuizService:      quizService,
		AnalyticsService: analyticsService,
	}
}

// @Summary 创建测验
// @Tags 测验模块
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body service.QuizReq true "测验信息"
// @Success 201 {object} util.Response
// @Router /api/teacher/quizzes [post]
func (c *QuizController) CreateQuiz(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.QuizReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	quiz, err := c.QuizService.CreateQuiz(user.UserID, req)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}

	util.Created(ctx, quiz)
}

// @Summary 测验列表（教师）
// @Tags 测验模块
// @Produce json
// @Security ApiKeyAuth
// @Param subjectId query int false "按科目过滤"
// @Success 200 {object} util.Response
// @Router /api/teacher/quizzes [get]
func (c *QuizController) ListQuizzes(ctx *gin.Context) {
	page, limit := pageParams(ctx)
	subjectID := util.MustParseUint(ctx.Query("subjectId"))

	quizzes, total, err := c.QuizService.ListQuizzes(subjectID, page, limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, util.PageResponse{List: quizzes, Total: total, Page: page, Limit: limit})
}

// @Summary 测验详情（教师，含标准答案）
// @Tags 测验模块
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "测验ID"
// @Success 200 {object} util.Response
// @Router /api/teacher/quizzes/{id} [get]
func (c *QuizController) GetQuiz(ctx *gin.Context) {
	id := util.MustParseUint(ctx.Param("id"))

	quiz, questions, err := c.QuizService.GetQuizWithQuestions(id)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"quiz": quiz, "questions": questions})
}

// @Summary 更新测验
// @Tags 测验模块
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "测验ID"
// @Param body body service.QuizReq true "测验信息"
// @Success 200 {object} util.Response
// @Router /api/teacher/quizzes/{id} [put]
func (c *QuizController) UpdateQuiz(ctx *gin.Context) {
	id := util.MustParseUint(ctx.Param("id"))

	var req service.QuizReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	quiz, err := c.QuizService.UpdateQuiz(id, req)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}

	util.Success(ctx, quiz)
}

// @Summary 删除测验
// @Tags 测验模块
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "测验ID"
// @Success 200 {object} util.Response
// @Router /api/teacher/quizzes/{id} [delete]
func (c *QuizController) DeleteQuiz(ctx *gin.Context) {
	id := util.MustParseUint(ctx.Param("id"))

	if err := c.QuizService.DeleteQuiz(id); err != nil {
		respondServiceError(ctx, err)
		return
	}

	util.Success(ctx, nil)
}

type SetQuestionsReq struct {
	Questions []service.QuestionReq `json:"questions" binding:"required"`
}

// @Summary 整卷设置题目
// @Description 按提交顺序替换测验的全部题目
// @Tags 测验模块
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "测验ID"
// @Param body body SetQuestionsReq true "题目列表"
// @Success 200 {object} util.Response
// @Router /api/teacher/quizzes/{id}/questions [put]
func (c *QuizController) SetQuestions(ctx *gin.Context) {
	id := util.MustParseUint(ctx.Param("id"))

	var req SetQuestionsReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	questions, err := c.QuizService.SetQuestions(id, req.Questions)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}

	util.Success(ctx, questions)
}

// @Summary 添加题目
// @Tags 测验模块
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "测验ID"
// @Param body body service.QuestionReq true "题目"
// @Success 201 {object} util.Response
// @Router /api/teacher/quizzes/{id}/questions [post]
func (c *QuizController) AddQuestion(ctx *gin.Context) {
	id := util.MustParseUint(ctx.Param("id"))

	var req service.QuestionReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	question, err := c.QuizService.AddQuestion(id, req)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}

	util.Created(ctx, question)
}

// @Summary 更新题目
// @Tags 测验模块
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "题目ID"
// @Param body body service.QuestionReq true "题目"
// @Success 200 {object} util.Response
// @Router /api/teacher/questions/{id} [put]
func (c *QuizController) UpdateQuestion(ctx *gin.Context) {
	id := util.MustParseUint(ctx.Param("id"))

	var req service.QuestionReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	question, err := c.QuizService.UpdateQuestion(id, req)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}

	util.Success(ctx, question)
}

// @Summary 删除题目
// @Tags 测验模块
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "题目ID"
// @Success 200 {object} util.Response
// @Router /api/teacher/questions/{id} [delete]
func (c *QuizController) DeleteQuestion(ctx *gin.Context) {
	id := util.MustParseUint(ctx.Param("id"))

	if err := c.QuizService.DeleteQuestion(id); err != nil {
		respondServiceError(ctx, err)
		return
	}

	util.Success(ctx, nil)
}

// @Summary 测验作答记录（教师）
// @Tags 测验模块
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "测验ID"
// @Success 200 {object} util.Response
// @Router /api/teacher/quizzes/{id}/attempts [get]
func (c *QuizController) ListAttempts(ctx *gin.Context) {
	id := util.MustParseUint(ctx.Param("id"))
	page, limit := pageParams(ctx)

	attempts, total, err := c.QuizService.ListAttempts(id, page, limit)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}

	util.Success(ctx, util.PageResponse{List: attempts, Total: total, Page: page, Limit: limit})
}

// @Summary 题目正确率统计
// @Description 基于全部已提交作答统计某道题的答对人数与正确率
// @Tags 测验模块
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "题目ID"
// @Success 200 {object} util.Response
// @Router /api/teacher/questions/{id}/analytics [get]
func (c *QuizController) AnalyzeQuestion(ctx *gin.Context) {
	id := util.MustParseUint(ctx.Param("id"))

	stats, err := c.AnalyticsService.AnalyzeQuestion(ctx.Request.Context(), id)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}

	util.Success(ctx, stats)
}
