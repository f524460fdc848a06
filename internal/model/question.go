package model

import "encoding/json"

const (
	QuestionMultipleChoice = "multiple_choice"
	QuestionShortAnswer    = "short_answer"
	QuestionLongAnswer     = "long_answer"
)

// Question 测验题目。选择题的 Options 为 JSON 数组；CorrectAnswer 可以是
// 选项原文，也可以是字符串形式的 0 基选项下标。
// swagger:model Question
type Question struct {
	BaseModel
	QuizID        uint            `gorm:"index;not null" json:"quizId"`
	Text          string          `gorm:"type:text;not null" json:"text"`
	QuestionType  string          `gorm:"size:50;not null" json:"questionType"` // multiple_choice, short_answer, long_answer
	Marks         int             `gorm:"default:0" json:"marks"`
	Options       json.RawMessage `gorm:"type:json" json:"options"` // JSON: []string，仅选择题
	CorrectAnswer string          `gorm:"type:text" json:"correctAnswer,omitempty"`
}

func (Question) TableName() string {
	return "questions"
}
