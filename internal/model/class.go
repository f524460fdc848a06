package model

// swagger:model Class
type Class struct {
	BaseModel
	Name     string `gorm:"size:100;not null" json:"name"`
	Year     int    `gorm:"not null" json:"year"`
	Students []User `gorm:"foreignKey:ClassID" json:"students,omitempty"`
}

func (Class) TableName() string {
	return "classes"
}

// ClassSubject 班级选修科目关联，(class, subject) 唯一
type ClassSubject struct {
	BaseModel
	ClassID   uint `gorm:"uniqueIndex:idx_class_subject;not null" json:"classId"`
	SubjectID uint `gorm:"uniqueIndex:idx_class_subject;not null" json:"subjectId"`
}

func (ClassSubject) TableName() string {
	return "class_subjects"
}
