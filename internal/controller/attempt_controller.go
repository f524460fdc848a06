package controller

import (
	"eduquiz_backend/internal/service"
	"eduquiz_backend/internal/util"
	"eduquiz_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
)

// AttemptController 学生端：测验浏览、作答与成绩
type AttemptController struct {
	AttemptService *service.AttemptService
	QuizService    *service.QuizService
}

func NewAttemptController(attemptService *service.AttemptService, quizService *service.QuizService) *AttemptController {
	return &AttemptController{
		AttemptService: attemptService,
		QuizService:    quizService,
	}
}

// @Summary 我的科目
// @Tags 作答模块
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /api/subjects [get]
func (c *AttemptController) ListMySubjects(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	student, err := c.QuizService.UserRepo.FindByID(user.UserID)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	if student.ClassID == nil {
		util.Success(ctx, []interface{}{})
		return
	}

	subjects, err := c.QuizService.ClassRepo.ListSubjects(*student.ClassID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, subjects)
}

// @Summary 可作答的测验列表
// @Tags 作答模块
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /api/quizzes [get]
func (c *AttemptController) ListQuizzes(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	quizzes, err := c.QuizService.ListForStudent(user.UserID)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}

	util.Success(ctx, quizzes)
}

// @Summary 测验详情（学生）
// @Description 首次访问即开始作答；返回的题目不含标准答案
// @Tags 作答模块
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "测验ID"
// @Success 200 {object} util.Response
// @Router /api/quizzes/{id} [get]
func (c *AttemptController) GetQuiz(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	id := util.MustParseUint(ctx.Param("id"))

	detail, err := c.AttemptService.GetQuizForStudent(id, user.UserID)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}

	util.Success(ctx, detail)
}

// @Summary 开始作答
// @Tags 作答模块
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "测验ID"
// @Success 200 {object} util.Response
// @Router /api/quizzes/{id}/start [post]
func (c *AttemptController) StartAttempt(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	id := util.MustParseUint(ctx.Param("id"))

	attempt, err := c.AttemptService.StartAttempt(id, user.UserID)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}

	util.Success(ctx, attempt)
}

type SubmitAttemptReq struct {
	Answers map[string]interface{} `json:"answers"`
}

// @Summary 提交作答
// @Description 评分并写入成绩，提交后不可再次作答
// @Tags 作答模块
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "测验ID"
// @Param body body SubmitAttemptReq true "作答内容"
// @Success 200 {object} util.Response
// @Router /api/quizzes/{id}/submit [post]
func (c *AttemptController) SubmitAttempt(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	id := util.MustParseUint(ctx.Param("id"))

	var req SubmitAttemptReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	result, err := c.AttemptService.SubmitAttempt(id, user.UserID, req.Answers)
	if err != nil {
		monitoring.QuizSubmissionCounter.WithLabelValues("rejected").Inc()
		respondServiceError(ctx, err)
		return
	}

	monitoring.QuizSubmissionCounter.WithLabelValues("graded").Inc()
	util.Success(ctx, result)
}

// @Summary 我的成绩
// @Tags 作答模块
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /api/attempts [get]
func (c *AttemptController) ListMyResults(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	attempts, err := c.QuizService.ListStudentResults(user.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, attempts)
}
