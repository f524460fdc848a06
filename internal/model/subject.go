package model

// swagger:model Subject
type Subject struct {
	BaseModel
	Name        string `gorm:"size:100;not null" json:"name"`
	Code        string `gorm:"size:50;unique;not null" json:"code"`
	Description string `gorm:"type:text" json:"description"`
}

func (Subject) TableName() string {
	return "subjects"
}
