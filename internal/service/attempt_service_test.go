package service

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"eduquiz_backend/internal/model"
	"eduquiz_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeQuizStore struct {
	quizzes   map[uint]*model.Quiz
	questions map[uint][]model.Question
}

func (f *fakeQuizStore) FindByID(id uint) (*model.Quiz, error) {
	if q, ok := f.quizzes[id]; ok {
		return q, nil
	}
	return nil, util.ErrQuizNotFound
}

func (f *fakeQuizStore) ListQuestions(quizID uint) ([]model.Question, error) {
	return f.questions[quizID], nil
}

func (f *fakeQuizStore) FindQuestionByID(id uint) (*model.Question, error) {
	for _, qs := range f.questions {
		for i := range qs {
			if qs[i].ID == id {
				return &qs[i], nil
			}
		}
	}
	return nil, util.ErrQuestionNotFound
}

type attemptKey struct {
	quizID    uint
	studentID uint
}

type fakeAttemptStore struct {
	attempts map[attemptKey]*model.QuizAttempt
	nextID   uint
	missOnce bool // 第一次查找返回未找到，用于模拟并发创建竞争
}

func newFakeAttemptStore() *fakeAttemptStore {
	return &fakeAttemptStore{attempts: map[attemptKey]*model.QuizAttempt{}, nextID: 1}
}

func (f *fakeAttemptStore) Create(attempt *model.QuizAttempt) error {
	key := attemptKey{attempt.QuizID, attempt.StudentID}
	if _, exists := f.attempts[key]; exists {
		return errors.New("Error 1062: Duplicate entry")
	}
	attempt.ID = f.nextID
	f.nextID++
	stored := *attempt
	f.attempts[key] = &stored
	return nil
}

func (f *fakeAttemptStore) FindByQuizAndStudent(quizID, studentID uint) (*model.QuizAttempt, error) {
	if f.missOnce {
		f.missOnce = false
		return nil, gorm.ErrRecordNotFound
	}
	if a, ok := f.attempts[attemptKey{quizID, studentID}]; ok {
		copied := *a
		return &copied, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeAttemptStore) Update(attempt *model.QuizAttempt) error {
	stored := *attempt
	f.attempts[attemptKey{attempt.QuizID, attempt.StudentID}] = &stored
	return nil
}

func (f *fakeAttemptStore) ListSubmittedByQuiz(quizID uint) ([]model.QuizAttempt, error) {
	var result []model.QuizAttempt
	for _, a := range f.attempts {
		if a.QuizID == quizID && a.Status == model.AttemptSubmitted {
			result = append(result, *a)
		}
	}
	return result, nil
}

type fakeEnrollmentStore struct {
	enrolled map[attemptKey]bool // classID+subjectID 复用键结构
}

func (f *fakeEnrollmentStore) HasSubject(classID, subjectID uint) (bool, error) {
	return f.enrolled[attemptKey{classID, subjectID}], nil
}

type fakeStudentStore struct {
	students map[uint]*model.User
}

func (f *fakeStudentStore) FindByID(id uint) (*model.User, error) {
	if u, ok := f.students[id]; ok {
		return u, nil
	}
	return nil, util.ErrUserNotFound
}

// 一个已启用、无时间窗口限制的测验，学生 7 在班级 3 且选修科目 2
func newAttemptFixture() (*AttemptService, *fakeQuizStore, *fakeAttemptStore) {
	classID := uint(3)
	quizzes := &fakeQuizStore{
		quizzes: map[uint]*model.Quiz{
			1: {BaseModel: model.BaseModel{ID: 1}, SubjectID: 2, TotalMarks: 10, IsActive: true},
		},
		questions: map[uint][]model.Question{
			1: {
				func() model.Question {
					q := mcq("法国的首都？", 10, []string{"Paris", "London", "Berlin"}, "Paris")
					q.ID = 100
					q.QuizID = 1
					return q
				}(),
			},
		},
	}
	attempts := newFakeAttemptStore()
	enrollments := &fakeEnrollmentStore{enrolled: map[attemptKey]bool{{classID, 2}: true}}
	students := &fakeStudentStore{students: map[uint]*model.User{
		7: {BaseModel: model.BaseModel{ID: 7}, Role: model.Student, ClassID: &classID},
	}}

	svc := NewAttemptService(quizzes, attempts, enrollments, students)
	return svc, quizzes, attempts
}

func TestStartAttempt(t *testing.T) {
	t.Run("首次开始创建作答记录", func(t *testing.T) {
		svc, _, store := newAttemptFixture()

		attempt, err := svc.StartAttempt(1, 7)
		require.NoError(t, err)
		assert.Equal(t, model.AttemptInProgress, attempt.Status)
		assert.Len(t, store.attempts, 1)
	})

	t.Run("重复开始返回同一条记录", func(t *testing.T) {
		svc, _, store := newAttemptFixture()

		first, err := svc.StartAttempt(1, 7)
		require.NoError(t, err)
		second, err := svc.StartAttempt(1, 7)
		require.NoError(t, err)

		assert.Equal(t, first.ID, second.ID)
		assert.Len(t, store.attempts, 1)
	})

	t.Run("已提交的测验不可重新开始", func(t *testing.T) {
		svc, _, _ := newAttemptFixture()

		_, err := svc.StartAttempt(1, 7)
		require.NoError(t, err)
		_, err = svc.SubmitAttempt(1, 7, map[string]interface{}{"0": "Paris"})
		require.NoError(t, err)

		_, err = svc.StartAttempt(1, 7)
		assert.ErrorIs(t, err, util.ErrQuizAlreadySubmitted)
	})

	t.Run("未选修科目的学生被拒绝", func(t *testing.T) {
		svc, _, _ := newAttemptFixture()
		svc.Enrollments = &fakeEnrollmentStore{enrolled: map[attemptKey]bool{}}

		_, err := svc.StartAttempt(1, 7)
		assert.ErrorIs(t, err, util.ErrNotEnrolled)
	})

	t.Run("未分班的学生被拒绝", func(t *testing.T) {
		svc, _, _ := newAttemptFixture()
		svc.Users = &fakeStudentStore{students: map[uint]*model.User{
			7: {BaseModel: model.BaseModel{ID: 7}, Role: model.Student},
		}}

		_, err := svc.StartAttempt(1, 7)
		assert.ErrorIs(t, err, util.ErrNotEnrolled)
	})

	t.Run("停用的测验不可作答", func(t *testing.T) {
		svc, quizzes, _ := newAttemptFixture()
		quizzes.quizzes[1].IsActive = false

		_, err := svc.StartAttempt(1, 7)
		assert.ErrorIs(t, err, util.ErrQuizNotAvailable)
	})

	t.Run("未到开始时间不可作答", func(t *testing.T) {
		svc, quizzes, _ := newAttemptFixture()
		start := time.Now().Add(time.Hour)
		quizzes.quizzes[1].StartTime = &start

		_, err := svc.StartAttempt(1, 7)
		assert.ErrorIs(t, err, util.ErrQuizNotYetOpen)
	})

	t.Run("已过结束时间不可作答", func(t *testing.T) {
		svc, quizzes, _ := newAttemptFixture()
		end := time.Now().Add(-time.Hour)
		quizzes.quizzes[1].EndTime = &end

		_, err := svc.StartAttempt(1, 7)
		assert.ErrorIs(t, err, util.ErrQuizClosed)
	})

	t.Run("并发创建冲突时重查已有记录", func(t *testing.T) {
		svc, _, store := newAttemptFixture()

		// 模拟竞争：本请求查不到记录，但另一请求已抢先创建，
		// Create 报唯一索引冲突后应重查并返回已有记录
		store.attempts[attemptKey{1, 7}] = &model.QuizAttempt{
			BaseModel: model.BaseModel{ID: 42},
			QuizID:    1, StudentID: 7,
			Status: model.AttemptInProgress,
		}
		store.missOnce = true

		attempt, err := svc.StartAttempt(1, 7)
		require.NoError(t, err)
		assert.Equal(t, uint(42), attempt.ID)
	})
}

func TestSubmitAttempt(t *testing.T) {
	t.Run("提交评分并落库", func(t *testing.T) {
		svc, _, store := newAttemptFixture()

		_, err := svc.StartAttempt(1, 7)
		require.NoError(t, err)

		result, err := svc.SubmitAttempt(1, 7, map[string]interface{}{"0": "Paris"})
		require.NoError(t, err)
		assert.Equal(t, 10, result.Score)
		assert.Equal(t, 100.0, result.Percentage)

		stored := store.attempts[attemptKey{1, 7}]
		assert.Equal(t, model.AttemptSubmitted, stored.Status)
		assert.NotNil(t, stored.SubmittedAt)
		assert.Equal(t, 10, stored.Score)

		var blob map[string]interface{}
		require.NoError(t, json.Unmarshal(stored.Answers, &blob))
		assert.Equal(t, "Paris", blob["0"])
	})

	t.Run("缺少作答内容直接拒绝", func(t *testing.T) {
		svc, _, _ := newAttemptFixture()

		_, err := svc.SubmitAttempt(1, 7, nil)
		assert.ErrorIs(t, err, util.ErrAnswersRequired)
	})

	t.Run("空作答对象允许提交并计零分", func(t *testing.T) {
		svc, _, _ := newAttemptFixture()

		result, err := svc.SubmitAttempt(1, 7, map[string]interface{}{})
		require.NoError(t, err)
		assert.Equal(t, 0, result.Score)
		assert.Equal(t, 0.0, result.Percentage)
	})

	t.Run("未开始直接提交时补建记录", func(t *testing.T) {
		svc, _, store := newAttemptFixture()

		result, err := svc.SubmitAttempt(1, 7, map[string]interface{}{"0": "Paris"})
		require.NoError(t, err)
		assert.Equal(t, 10, result.Score)
		assert.Equal(t, model.AttemptSubmitted, store.attempts[attemptKey{1, 7}].Status)
	})

	t.Run("重复提交被拒绝且成绩不变", func(t *testing.T) {
		svc, _, store := newAttemptFixture()

		_, err := svc.SubmitAttempt(1, 7, map[string]interface{}{"0": "Paris"})
		require.NoError(t, err)

		_, err = svc.SubmitAttempt(1, 7, map[string]interface{}{"0": "London"})
		assert.ErrorIs(t, err, util.ErrQuizAlreadySubmitted)
		assert.Equal(t, 10, store.attempts[attemptKey{1, 7}].Score)
	})

	t.Run("没有题目的测验不可提交", func(t *testing.T) {
		svc, quizzes, _ := newAttemptFixture()
		quizzes.questions[1] = nil

		_, err := svc.SubmitAttempt(1, 7, map[string]interface{}{"0": "Paris"})
		assert.ErrorIs(t, err, util.ErrQuizHasNoQuestions)
	})

	t.Run("提交时重新校验时间窗口", func(t *testing.T) {
		svc, quizzes, _ := newAttemptFixture()

		_, err := svc.StartAttempt(1, 7)
		require.NoError(t, err)

		// 作答期间窗口关闭
		end := time.Now().Add(-time.Minute)
		quizzes.quizzes[1].EndTime = &end

		_, err = svc.SubmitAttempt(1, 7, map[string]interface{}{"0": "Paris"})
		assert.ErrorIs(t, err, util.ErrQuizClosed)
	})
}

func TestGetQuizForStudent(t *testing.T) {
	t.Run("首次访问即开始作答且不返回标准答案", func(t *testing.T) {
		svc, _, store := newAttemptFixture()

		detail, err := svc.GetQuizForStudent(1, 7)
		require.NoError(t, err)

		assert.Equal(t, model.AttemptInProgress, detail.Attempt.Status)
		assert.Len(t, store.attempts, 1)

		require.Len(t, detail.Questions, 1)
		assert.Equal(t, uint(100), detail.Questions[0].ID)
		assert.NotEmpty(t, detail.Questions[0].Options)

		// 学生视图结构体不含标准答案字段，选项保留
		raw, err := json.Marshal(detail.Questions[0])
		require.NoError(t, err)
		assert.NotContains(t, string(raw), "correctAnswer")
		assert.Contains(t, string(raw), "Paris")
	})

	t.Run("已提交后返回成绩不报错", func(t *testing.T) {
		svc, _, _ := newAttemptFixture()

		_, err := svc.SubmitAttempt(1, 7, map[string]interface{}{"0": "Paris"})
		require.NoError(t, err)

		detail, err := svc.GetQuizForStudent(1, 7)
		require.NoError(t, err)
		assert.Equal(t, model.AttemptSubmitted, detail.Attempt.Status)
		assert.Equal(t, 10, detail.Attempt.Score)
	})
}
