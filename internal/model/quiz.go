package model

import "time"

// Quiz 某一科目下的测验，可选关联实验
// swagger:model Quiz
type Quiz struct {
	BaseModel
	SubjectID    uint       `gorm:"index;not null" json:"subjectId"`
	Subject      Subject    `gorm:"foreignKey:SubjectID" json:"subject,omitempty"`
	ExperimentID *uint      `gorm:"index" json:"experimentId"`
	CreatorID    uint       `gorm:"index" json:"creatorId"`
	Title        string     `gorm:"size:255;not null" json:"title"`
	Description  string     `gorm:"type:text" json:"description"`
	TotalMarks   int        `gorm:"default:0" json:"totalMarks"`
	StartTime    *time.Time `json:"startTime"` // 为空表示不限制开始时间
	EndTime      *time.Time `json:"endTime"`   // 为空表示不限制截止时间
	IsActive     bool       `gorm:"default:true" json:"isActive"`
}

func (Quiz) TableName() string {
	return "quizzes"
}
