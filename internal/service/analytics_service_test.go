package service

import (
	"context"
	"encoding/json"
	"testing"

	"eduquiz_backend/internal/model"
	"eduquiz_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func submittedAttempt(id, quizID, studentID uint, answers string) *model.QuizAttempt {
	return &model.QuizAttempt{
		BaseModel: model.BaseModel{ID: id},
		QuizID:    quizID,
		StudentID: studentID,
		Status:    model.AttemptSubmitted,
		Answers:   json.RawMessage(answers),
	}
}

func newAnalyticsFixture() (*AnalyticsService, *fakeQuizStore, *fakeAttemptStore) {
	// 标准答案以选项下标录入，原文与下标两种作答都应判对
	q1 := mcq("法国的首都？", 10, []string{"Paris", "London", "Berlin"}, "0")
	q1.ID = 100
	q1.QuizID = 1
	q2 := shortQ("1+1", 5, "2")
	q2.ID = 101
	q2.QuizID = 1

	quizzes := &fakeQuizStore{
		quizzes: map[uint]*model.Quiz{
			1: {BaseModel: model.BaseModel{ID: 1}, SubjectID: 2, TotalMarks: 15, IsActive: true},
		},
		questions: map[uint][]model.Question{1: {q1, q2}},
	}
	attempts := newFakeAttemptStore()

	svc := NewAnalyticsService(quizzes, attempts, nil)
	return svc, quizzes, attempts
}

func TestAnalyzeQuestion(t *testing.T) {
	ctx := context.Background()

	t.Run("统计已提交作答中的正确率", func(t *testing.T) {
		svc, _, store := newAnalyticsFixture()

		store.attempts[attemptKey{1, 10}] = submittedAttempt(1, 1, 10, `{"0":"Paris"}`)
		store.attempts[attemptKey{1, 11}] = submittedAttempt(2, 1, 11, `{"question-0":"  pARIS "}`)
		store.attempts[attemptKey{1, 12}] = submittedAttempt(3, 1, 12, `{"0":"0"}`)
		store.attempts[attemptKey{1, 13}] = submittedAttempt(4, 1, 13, `{"0":"London"}`)

		stats, err := svc.AnalyzeQuestion(ctx, 100)
		require.NoError(t, err)

		assert.Equal(t, uint(100), stats.QuestionID)
		assert.Equal(t, 3, stats.CorrectCount)
		assert.Equal(t, 4, stats.TotalAttempts)
		assert.Equal(t, 75.0, stats.AccuracyPercentage)
	})

	t.Run("按题目在试卷中的位置取答案键", func(t *testing.T) {
		svc, _, store := newAnalyticsFixture()

		// 第二题（序号 1），答案键为 "1"
		store.attempts[attemptKey{1, 10}] = submittedAttempt(1, 1, 10, `{"0":"Paris","1":"2"}`)
		store.attempts[attemptKey{1, 11}] = submittedAttempt(2, 1, 11, `{"0":"Paris","1":"3"}`)

		stats, err := svc.AnalyzeQuestion(ctx, 101)
		require.NoError(t, err)

		assert.Equal(t, 1, stats.CorrectCount)
		assert.Equal(t, 2, stats.TotalAttempts)
		assert.Equal(t, 50.0, stats.AccuracyPercentage)
	})

	t.Run("落库答案损坏的作答按答错计", func(t *testing.T) {
		svc, _, store := newAnalyticsFixture()

		store.attempts[attemptKey{1, 10}] = submittedAttempt(1, 1, 10, `{"0":"Paris"}`)
		store.attempts[attemptKey{1, 11}] = submittedAttempt(2, 1, 11, `{broken`)

		stats, err := svc.AnalyzeQuestion(ctx, 100)
		require.NoError(t, err)

		assert.Equal(t, 1, stats.CorrectCount)
		assert.Equal(t, 2, stats.TotalAttempts)
		assert.Equal(t, 50.0, stats.AccuracyPercentage)
	})

	t.Run("没有作答时正确率为零", func(t *testing.T) {
		svc, _, _ := newAnalyticsFixture()

		stats, err := svc.AnalyzeQuestion(ctx, 100)
		require.NoError(t, err)

		assert.Equal(t, 0, stats.CorrectCount)
		assert.Equal(t, 0, stats.TotalAttempts)
		assert.Equal(t, 0.0, stats.AccuracyPercentage)
	})

	t.Run("未提交的作答不计入统计", func(t *testing.T) {
		svc, _, store := newAnalyticsFixture()

		store.attempts[attemptKey{1, 10}] = submittedAttempt(1, 1, 10, `{"0":"Paris"}`)
		inProgress := submittedAttempt(2, 1, 11, `{"0":"Paris"}`)
		inProgress.Status = model.AttemptInProgress
		store.attempts[attemptKey{1, 11}] = inProgress

		stats, err := svc.AnalyzeQuestion(ctx, 100)
		require.NoError(t, err)

		assert.Equal(t, 1, stats.TotalAttempts)
		assert.Equal(t, 1, stats.CorrectCount)
	})

	t.Run("题目不存在时报错", func(t *testing.T) {
		svc, _, _ := newAnalyticsFixture()

		_, err := svc.AnalyzeQuestion(ctx, 999)
		assert.ErrorIs(t, err, util.ErrQuestionNotFound)
	})
}
