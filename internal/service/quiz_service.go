package service

import (
	"eduquiz_backend/internal/model"
	"eduquiz_backend/internal/repository"
	"eduquiz_backend/internal/util"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

type QuizService struct {
	QuizRepo    *repository.QuizRepository
	AttemptRepo *repository.AttemptRepository
	ClassRepo   *repository.ClassRepository
	UserRepo    *repository.UserRepository
}

func NewQuizService(quizRepo *repository.QuizRepository, attemptRepo *repository.AttemptRepository, classRepo *repository.ClassRepository, userRepo *repository.UserRepository) *QuizService {
	return &QuizService{
		QuizRepo:    quizRepo,
		AttemptRepo: attemptRepo,
		ClassRepo:   classRepo,
		UserRepo:    userRepo,
	}
}

type QuizReq struct {
	SubjectID    uint       `json:"subjectId" binding:"required"`
	ExperimentID *uint      `json:"experimentId"`
	Title        string     `json:"title" binding:"required"`
	Description  string     `json:"description"`
	TotalMarks   int        `json:"totalMarks"`
	StartTime    *time.Time `json:"startTime"`
	EndTime      *time.Time `json:"endTime"`
	IsActive     *bool      `json:"isActive"`
}

type QuestionReq struct {
	Text          string          `json:"text" binding:"required"`
	QuestionType  string          `json:"questionType" binding:"required"`
	Marks         int             `json:"marks"`
	Options       json.RawMessage `json:"options"`
	CorrectAnswer string          `json:"correctAnswer"`
}

func validateQuestion(req *QuestionReq) error {
	switch req.QuestionType {
	case model.QuestionMultipleChoice, model.QuestionShortAnswer, model.QuestionLongAnswer:
	default:
		return fmt.Errorf("unknown question type: %s", req.QuestionType)
	}
	if req.Marks < 0 {
		return errors.New("marks must not be negative")
	}
	return nil
}

func (s *QuizService) CreateQuiz(creatorID uint, req QuizReq) (*model.Quiz, error) {
	if req.TotalMarks < 0 {
		return nil, errors.New("totalMarks must not be negative")
	}

	quiz := &model.Quiz{
		SubjectID:    req.SubjectID,
		ExperimentID: req.ExperimentID,
		CreatorID:    creatorID,
		Title:        req.Title,
		Description:  req.Description,
		TotalMarks:   req.TotalMarks,
		StartTime:    req.StartTime,
		EndTime:      req.EndTime,
		IsActive:     true,
	}
	if req.IsActive != nil {
		quiz.IsActive = *req.IsActive
	}

	if err := s.QuizRepo.Create(quiz); err != nil {
		return nil, err
	}
	return quiz, nil
}

func (s *QuizService) UpdateQuiz(quizID uint, req QuizReq) (*model.Quiz, error) {
	quiz, err := s.QuizRepo.FindByID(quizID)
	if err != nil {
		return nil, err
	}
	if req.TotalMarks < 0 {
		return nil, errors.New("totalMarks must not be negative")
	}

	quiz.SubjectID = req.SubjectID
	quiz.ExperimentID = req.ExperimentID
	quiz.Title = req.Title
	quiz.Description = req.Description
	quiz.TotalMarks = req.TotalMarks
	quiz.StartTime = req.StartTime
	quiz.EndTime = req.EndTime
	if req.IsActive != nil {
		quiz.IsActive = *req.IsActive
	}

	if err := s.QuizRepo.Update(quiz); err != nil {
		return nil, err
	}
	return quiz, nil
}

func (s *QuizService) DeleteQuiz(quizID uint) error {
	return s.QuizRepo.Delete(quizID)
}

// GetQuizWithQuestions 教师视图，包含标准答案
func (s *QuizService) GetQuizWithQuestions(quizID uint) (*model.Quiz, []model.Question, error) {
	quiz, err := s.QuizRepo.FindByID(quizID)
	if err != nil {
		return nil, nil, err
	}
	questions, err := s.QuizRepo.ListQuestions(quizID)
	return quiz, questions, err
}

func (s *QuizService) ListQuizzes(subjectID uint, page, limit int) ([]model.Quiz, int64, error) {
	return s.QuizRepo.ListBySubject(subjectID, page, limit)
}

// SetQuestions 整卷替换题目，插入顺序即出题顺序（也是作答的序号键顺序）
func (s *QuizService) SetQuestions(quizID uint, reqs []QuestionReq) ([]model.Question, error) {
	if _, err := s.QuizRepo.FindByID(quizID); err != nil {
		return nil, err
	}

	questions := make([]model.Question, len(reqs))
	for i := range reqs {
		if err := validateQuestion(&reqs[i]); err != nil {
			return nil, err
		}
		questions[i] = model.Question{
			QuizID:        quizID,
			Text:          reqs[i].Text,
			QuestionType:  reqs[i].QuestionType,
			Marks:         reqs[i].Marks,
			Options:       reqs[i].Options,
			CorrectAnswer: reqs[i].CorrectAnswer,
		}
	}

	if err := s.QuizRepo.ReplaceQuestions(quizID, questions); err != nil {
		return nil, err
	}
	return s.QuizRepo.ListQuestions(quizID)
}

func (s *QuizService) AddQuestion(quizID uint, req QuestionReq) (*model.Question, error) {
	if _, err := s.QuizRepo.FindByID(quizID); err != nil {
		return nil, err
	}
	if err := validateQuestion(&req); err != nil {
		return nil, err
	}

	question := &model.Question{
		QuizID:        quizID,
		Text:          req.Text,
		QuestionType:  req.QuestionType,
		Marks:         req.Marks,
		Options:       req.Options,
		CorrectAnswer: req.CorrectAnswer,
	}
	if err := s.QuizRepo.CreateQuestion(question); err != nil {
		return nil, err
	}
	return question, nil
}

func (s *QuizService) UpdateQuestion(questionID uint, req QuestionReq) (*model.Question, error) {
	question, err := s.QuizRepo.FindQuestionByID(questionID)
	if err != nil {
		return nil, err
	}
	if err := validateQuestion(&req); err != nil {
		return nil, err
	}

	question.Text = req.Text
	question.QuestionType = req.QuestionType
	question.Marks = req.Marks
	question.Options = req.Options
	question.CorrectAnswer = req.CorrectAnswer

	if err := s.QuizRepo.UpdateQuestion(question); err != nil {
		return nil, err
	}
	return question, nil
}

func (s *QuizService) DeleteQuestion(questionID uint) error {
	return s.QuizRepo.DeleteQuestion(questionID)
}

// ListAttempts 教师查看某测验的全部作答记录
func (s *QuizService) ListAttempts(quizID uint, page, limit int) ([]model.QuizAttempt, int64, error) {
	if _, err := s.QuizRepo.FindByID(quizID); err != nil {
		return nil, 0, err
	}
	return s.AttemptRepo.ListByQuiz(quizID, page, limit)
}

// ListForStudent 学生可见的测验：其班级选修科目下的全部测验
func (s *QuizService) ListForStudent(studentID uint) ([]model.Quiz, error) {
	student, err := s.UserRepo.FindByID(studentID)
	if err != nil {
		return nil, err
	}
	if student.ClassID == nil {
		return nil, util.ErrNotEnrolled
	}

	subjects, err := s.ClassRepo.ListSubjects(*student.ClassID)
	if err != nil {
		return nil, err
	}
	subjectIDs := make([]uint, len(subjects))
	for i, sub := range subjects {
		subjectIDs[i] = sub.ID
	}

	return s.QuizRepo.ListBySubjects(subjectIDs)
}

// ListStudentResults 学生查看自己的全部作答与成绩
func (s *QuizService) ListStudentResults(studentID uint) ([]model.QuizAttempt, error) {
	return s.AttemptRepo.ListByStudent(studentID)
}
