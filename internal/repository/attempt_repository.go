package repository

import (
	"eduquiz_backend/internal/model"

	"gorm.io/gorm"
)

type AttemptRepository struct {
	DB *gorm.DB
}

func NewAttemptRepository(db *gorm.DB) *AttemptRepository {
	return &AttemptRepository{DB: db}
}

func (r *AttemptRepository) Create(attempt *model.QuizAttempt) error {
	return r.DB.Create(attempt).Error
}

func (r *AttemptRepository) FindByQuizAndStudent(quizID, studentID uint) (*model.QuizAttempt, error) {
	var attempt model.QuizAttempt
	err := r.DB.Where("quiz_id = ? AND student_id = ?", quizID, studentID).First(&attempt).Error
	if err != nil {
		return nil, err
	}
	return &attempt, nil
}

func (r *AttemptRepository) Update(attempt *model.QuizAttempt) error {
	return r.DB.Save(attempt).Error
}

// ListSubmittedByQuiz 返回某测验的全部已提交作答，供题目正确率统计使用
func (r *AttemptRepository) ListSubmittedByQuiz(quizID uint) ([]model.QuizAttempt, error) {
	var attempts []model.QuizAttempt
	err := r.DB.Where("quiz_id = ? AND status = ?", quizID, model.AttemptSubmitted).
		Order("submitted_at asc").
		Find(&attempts).Error
	return attempts, err
}

func (r *AttemptRepository) ListByQuiz(quizID uint, page, limit int) ([]model.QuizAttempt, int64, error) {
	query := r.DB.Model(&model.QuizAttempt{}).Where("quiz_id = ?", quizID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var attempts []model.QuizAttempt
	offset := (page - 1) * limit
	err := query.Preload("Student").Order("created_at desc").Offset(offset).Limit(limit).Find(&attempts).Error
	return attempts, total, err
}

func (r *AttemptRepository) ListByStudent(studentID uint) ([]model.QuizAttempt, error) {
	var attempts []model.QuizAttempt
	err := r.DB.Preload("Quiz").Preload("Quiz.Subject").
		Where("student_id = ?", studentID).
		Order("created_at desc").
		Find(&attempts).Error
	return attempts, err
}
