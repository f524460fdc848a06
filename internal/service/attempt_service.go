package service

import (
	"eduquiz_backend/internal/model"
	"eduquiz_backend/internal/util"
	"eduquiz_backend/pkg/logger"
	"encoding/json"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// 作答相关的存储依赖以接口注入，便于替换与测试

type QuizStore interface {
	FindByID(id uint) (*model.Quiz, error)
	ListQuestions(quizID uint) ([]model.Question, error)
}

type AttemptStore interface {
	Create(attempt *model.QuizAttempt) error
	FindByQuizAndStudent(quizID, studentID uint) (*model.QuizAttempt, error)
	Update(attempt *model.QuizAttempt) error
}

type EnrollmentStore interface {
	HasSubject(classID, subjectID uint) (bool, error)
}

type StudentStore interface {
	FindByID(id uint) (*model.User, error)
}

type AttemptService struct {
	Quizzes     QuizStore
	Attempts    AttemptStore
	Enrollments EnrollmentStore
	Users       StudentStore
	now         func() time.Time
}

func NewAttemptService(quizzes QuizStore, attempts AttemptStore, enrollments EnrollmentStore, users StudentStore) *AttemptService {
	return &AttemptService{
		Quizzes:     quizzes,
		Attempts:    attempts,
		Enrollments: enrollments,
		Users:       users,
		now:         time.Now,
	}
}

// checkAccess 校验学生是否可作答：所在班级选修了测验科目、测验已启用且
// 处于作答时间窗口内。每次状态转换都要重新校验，不缓存详情页的结果。
func (s *AttemptService) checkAccess(quiz *model.Quiz, studentID uint) error {
	student, err := s.Users.FindByID(studentID)
	if err != nil {
		return err
	}
	if student.ClassID == nil {
		return util.ErrNotEnrolled
	}

	enrolled, err := s.Enrollments.HasSubject(*student.ClassID, quiz.SubjectID)
	if err != nil {
		return err
	}
	if !enrolled {
		return util.ErrNotEnrolled
	}

	if !quiz.IsActive {
		return util.ErrQuizNotAvailable
	}
	now := s.now()
	if quiz.StartTime != nil && now.Before(*quiz.StartTime) {
		return util.ErrQuizNotYetOpen
	}
	if quiz.EndTime != nil && now.After(*quiz.EndTime) {
		return util.ErrQuizClosed
	}

	return nil
}

// findOrCreateAttempt 查找或创建作答记录。(quiz, student) 上有唯一索引，
// 并发创建冲突时按"记录已存在"处理，重查后返回，不视为错误。
func (s *AttemptService) findOrCreateAttempt(quizID, studentID uint) (*model.QuizAttempt, error) {
	attempt, err := s.Attempts.FindByQuizAndStudent(quizID, studentID)
	if err == nil {
		return attempt, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	attempt = &model.QuizAttempt{
		QuizID:    quizID,
		StudentID: studentID,
		Status:    model.AttemptInProgress,
		StartedAt: s.now(),
	}
	if createErr := s.Attempts.Create(attempt); createErr != nil {
		// 唯一索引冲突：另一请求已创建，重查
		if existing, findErr := s.Attempts.FindByQuizAndStudent(quizID, studentID); findErr == nil {
			return existing, nil
		}
		return nil, createErr
	}
	return attempt, nil
}

// StartAttempt 开始作答。已提交的记录不可重新开始。
func (s *AttemptService) StartAttempt(quizID, studentID uint) (*model.QuizAttempt, error) {
	quiz, err := s.Quizzes.FindByID(quizID)
	if err != nil {
		return nil, err
	}

	if err := s.checkAccess(quiz, studentID); err != nil {
		return nil, err
	}

	attempt, err := s.findOrCreateAttempt(quizID, studentID)
	if err != nil {
		return nil, err
	}
	if attempt.Status == model.AttemptSubmitted {
		return nil, util.ErrQuizAlreadySubmitted
	}
	return attempt, nil
}

type SubmitResult struct {
	Score      int     `json:"score"`
	Percentage float64 `json:"percentage"`
}

// SubmitAttempt 提交作答并评分。一次性终态转换：写入得分、百分比、原始
// 作答与提交时间，此后该记录不再变更，重复提交直接拒绝。
func (s *AttemptService) SubmitAttempt(quizID, studentID uint, answers map[string]interface{}) (*SubmitResult, error) {
	if answers == nil {
		return nil, util.ErrAnswersRequired
	}

	quiz, err := s.Quizzes.FindByID(quizID)
	if err != nil {
		return nil, err
	}

	if err := s.checkAccess(quiz, studentID); err != nil {
		return nil, err
	}

	// 容忍开始请求丢失的情况：没有记录时在提交时补建
	attempt, err := s.findOrCreateAttempt(quizID, studentID)
	if err != nil {
		return nil, err
	}
	if attempt.Status == model.AttemptSubmitted {
		return nil, util.ErrQuizAlreadySubmitted
	}

	questions, err := s.Quizzes.ListQuestions(quizID)
	if err != nil {
		return nil, err
	}
	if len(questions) == 0 {
		return nil, util.ErrQuizHasNoQuestions
	}

	score, percentage := gradeSubmission(questions, answers, quiz.TotalMarks)

	// 原始作答原样落库，便于审计与统计复算
	blob, err := json.Marshal(answers)
	if err != nil {
		return nil, err
	}

	now := s.now()
	attempt.Status = model.AttemptSubmitted
	attempt.SubmittedAt = &now
	attempt.Score = score
	attempt.Percentage = percentage
	attempt.Answers = blob

	if err := s.Attempts.Update(attempt); err != nil {
		return nil, err
	}

	logger.Log.Info("quiz attempt graded",
		zap.Uint("quizId", quizID),
		zap.Uint("studentId", studentID),
		zap.Int("score", score),
		zap.Float64("percentage", percentage),
	)

	return &SubmitResult{Score: score, Percentage: percentage}, nil
}

// StudentQuestion 面向学生的题目视图，不含标准答案
type StudentQuestion struct {
	ID           uint            `json:"id"`
	Text         string          `json:"text"`
	QuestionType string          `json:"questionType"`
	Marks        int             `json:"marks"`
	Options      json.RawMessage `json:"options,omitempty"`
}

type StudentQuizDetail struct {
	Quiz      *model.Quiz        `json:"quiz"`
	Questions []StudentQuestion  `json:"questions"`
	Attempt   *model.QuizAttempt `json:"attempt"`
}

// GetQuizForStudent 学生查看测验详情。首次访问即开始作答；已提交的作答
// 原样返回（含成绩），不再转换状态。
func (s *AttemptService) GetQuizForStudent(quizID, studentID uint) (*StudentQuizDetail, error) {
	quiz, err := s.Quizzes.FindByID(quizID)
	if err != nil {
		return nil, err
	}

	attempt, err := s.Attempts.FindByQuizAndStudent(quizID, studentID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		attempt, err = s.StartAttempt(quizID, studentID)
	}
	if err != nil {
		return nil, err
	}

	questions, err := s.Quizzes.ListQuestions(quizID)
	if err != nil {
		return nil, err
	}

	studentQs := make([]StudentQuestion, len(questions))
	for i, q := range questions {
		studentQs[i] = StudentQuestion{
			ID:           q.ID,
			Text:         q.Text,
			QuestionType: q.QuestionType,
			Marks:        q.Marks,
			Options:      q.Options,
		}
	}

	return &StudentQuizDetail{
		Quiz:      quiz,
		Questions: studentQs,
		Attempt:   attempt,
	}, nil
}
