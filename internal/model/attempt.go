package model

import (
	"encoding/json"
	"time"
)

const (
	AttemptInProgress = "in_progress"
	AttemptSubmitted  = "submitted"
)

// QuizAttempt 一名学生对一份测验的作答记录，(quiz, student) 唯一。
// Answers 在提交时原样落库，便于审计与题目统计复算。
// swagger:model QuizAttempt
type QuizAttempt struct {
	BaseModel
	QuizID      uint            `gorm:"uniqueIndex:idx_quiz_student;not null" json:"quizId"`
	Quiz        Quiz            `gorm:"foreignKey:QuizID" json:"quiz,omitempty"`
	StudentID   uint            `gorm:"uniqueIndex:idx_quiz_student;not null" json:"studentId"`
	Student     *User           `gorm:"foreignKey:StudentID" json:"student,omitempty"`
	Status      string          `gorm:"size:20;default:'in_progress'" json:"status"` // in_progress, submitted
	StartedAt   time.Time       `json:"startedAt"`
	SubmittedAt *time.Time      `json:"submittedAt"`
	Score       int             `gorm:"default:0" json:"score"`
	Percentage  float64         `gorm:"type:decimal(5,2);default:0" json:"percentage"`
	Answers     json.RawMessage `gorm:"type:json" json:"answers,omitempty"`
}

func (QuizAttempt) TableName() string {
	return "quiz_attempts"
}
