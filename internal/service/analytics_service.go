package service

import (
	"context"
	"eduquiz_backend/internal/model"
	"eduquiz_backend/internal/util"
	"eduquiz_backend/pkg/logger"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const questionStatsCacheTTL = 10 * time.Minute

type QuestionStore interface {
	FindQuestionByID(id uint) (*model.Question, error)
	ListQuestions(quizID uint) ([]model.Question, error)
}

type SubmittedAttemptStore interface {
	ListSubmittedByQuiz(quizID uint) ([]model.QuizAttempt, error)
}

// QuestionStats 单题正确率统计
type QuestionStats struct {
	QuestionID         uint    `json:"questionId"`
	CorrectCount       int     `json:"correctCount"`
	TotalAttempts      int     `json:"totalAttempts"`
	AccuracyPercentage float64 `json:"accuracyPercentage"`
}

type AnalyticsService struct {
	Questions QuestionStore
	Attempts  SubmittedAttemptStore
	Redis     *redis.Client
}

func NewAnalyticsService(questions QuestionStore, attempts SubmittedAttemptStore, rdb *redis.Client) *AnalyticsService {
	return &AnalyticsService{
		Questions: questions,
		Attempts:  attempts,
		Redis:     rdb,
	}
}

// AnalyzeQuestion 统计某道题在全部已提交作答中的正确率。比对逻辑与评分
// 完全一致（序号键查找 + 归一化 + 可接受答案集合），但每份作答只记对/错，
// 不计部分分值。单份作答数据异常按答错处理，不中断整体统计。结果短期
// 缓存，允许轻微滞后。
func (s *AnalyticsService) AnalyzeQuestion(ctx context.Context, questionID uint) (*QuestionStats, error) {
	cacheKey := fmt.Sprintf("question_stats:%d", questionID)
	if s.Redis != nil {
		if cached, err := s.Redis.Get(ctx, cacheKey).Result(); err == nil {
			var stats QuestionStats
			if err := json.Unmarshal([]byte(cached), &stats); err == nil {
				return &stats, nil
			}
		}
	}

	question, err := s.Questions.FindQuestionByID(questionID)
	if err != nil {
		return nil, err
	}

	questions, err := s.Questions.ListQuestions(question.QuizID)
	if err != nil {
		return nil, err
	}

	// 题目在试卷存储顺序中的位置即答案键
	ordinal := -1
	for i := range questions {
		if questions[i].ID == question.ID {
			ordinal = i
			break
		}
	}
	if ordinal < 0 {
		return nil, util.ErrQuestionNotFound
	}

	attempts, err := s.Attempts.ListSubmittedByQuiz(question.QuizID)
	if err != nil {
		return nil, err
	}

	correct := 0
	for i := range attempts {
		var answers map[string]interface{}
		if err := json.Unmarshal(attempts[i].Answers, &answers); err != nil {
			// 落库答案损坏：该份作答按答错计，继续统计
			logger.Log.Warn("malformed stored answers, counting as incorrect",
				zap.Uint("attemptId", attempts[i].ID),
				zap.Error(err),
			)
			continue
		}
		if answerIsCorrect(question, answers, ordinal) {
			correct++
		}
	}

	stats := &QuestionStats{
		QuestionID:         questionID,
		CorrectCount:       correct,
		TotalAttempts:      len(attempts),
		AccuracyPercentage: percentageOf(correct, len(attempts)),
	}

	if s.Redis != nil {
		if data, err := json.Marshal(stats); err == nil {
			s.Redis.Set(ctx, cacheKey, data, questionStatsCacheTTL)
		}
	}

	return stats, nil
}
