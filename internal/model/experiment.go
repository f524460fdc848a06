package model

// Experiment 教师在某一科目下发布的实验文档
// swagger:model Experiment
type Experiment struct {
	BaseModel
	SubjectID   uint    `gorm:"index;not null" json:"subjectId"`
	Subject     Subject `gorm:"foreignKey:SubjectID" json:"subject,omitempty"`
	CreatorID   uint    `gorm:"index" json:"creatorId"`
	Title       string  `gorm:"size:255;not null" json:"title"`
	Aim         string  `gorm:"type:text" json:"aim"`
	Procedure   string  `gorm:"type:text" json:"procedure"`
	Description string  `gorm:"type:text" json:"description"`
}

func (Experiment) TableName() string {
	return "experiments"
}
