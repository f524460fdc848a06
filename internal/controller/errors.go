package controller

import (
	"eduquiz_backend/internal/util"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// respondServiceError 将业务错误映射为 HTTP 响应
func respondServiceError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound),
		errors.Is(err, util.ErrQuizNotFound),
		errors.Is(err, util.ErrQuestionNotFound),
		errors.Is(err, util.ErrAttemptNotFound),
		errors.Is(err, util.ErrUserNotFound):
		util.NotFound(ctx)
	case errors.Is(err, util.ErrNotEnrolled),
		errors.Is(err, util.ErrPermissionDenied),
		errors.Is(err, util.ErrQuizNotAvailable),
		errors.Is(err, util.ErrQuizNotYetOpen),
		errors.Is(err, util.ErrQuizClosed):
		util.Error(ctx, http.StatusForbidden, err.Error())
	case errors.Is(err, util.ErrQuizAlreadySubmitted):
		util.Conflict(ctx, err.Error())
	case errors.Is(err, util.ErrAnswersRequired),
		errors.Is(err, util.ErrQuizHasNoQuestions),
		errors.Is(err, util.ErrEmailRegistered):
		util.BadRequest(ctx, err.Error())
	default:
		util.LogInternalError(ctx, err)
	}
}
