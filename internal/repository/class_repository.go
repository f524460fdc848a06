package repository

import (
	"eduquiz_backend/internal/model"

	"gorm.io/gorm"
)

type ClassRepository struct {
	DB *gorm.DB
}

func NewClassRepository(db *gorm.DB) *ClassRepository {
	return &ClassRepository{DB: db}
}

func (r *ClassRepository) Create(class *model.Class) error {
	return r.DB.Create(class).Error
}

func (r *ClassRepository) FindByID(id uint) (*model.Class, error) {
	var class model.Class
	err := r.DB.First(&class, id).Error
	if err != nil {
		return nil, err
	}
	return &class, nil
}

func (r *ClassRepository) List(page, limit int) ([]model.Class, int64, error) {
	var total int64
	if err := r.DB.Model(&model.Class{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var classes []model.Class
	offset := (page - 1) * limit
	err := r.DB.Order("name asc").Offset(offset).Limit(limit).Find(&classes).Error
	return classes, total, err
}

func (r *ClassRepository) Update(class *model.Class) error {
	return r.DB.Save(class).Error
}

func (r *ClassRepository) Delete(id uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("class_id = ?", id).Delete(&model.ClassSubject{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Class{}, id).Error
	})
}

func (r *ClassRepository) AddSubject(classID, subjectID uint) error {
	return r.DB.Create(&model.ClassSubject{ClassID: classID, SubjectID: subjectID}).Error
}

func (r *ClassRepository) RemoveSubject(classID, subjectID uint) error {
	return r.DB.Where("class_id = ? AND subject_id = ?", classID, subjectID).
		Delete(&model.ClassSubject{}).Error
}

// HasSubject 判断班级是否关联了某一科目（即选课/注册判定）
func (r *ClassRepository) HasSubject(classID, subjectID uint) (bool, error) {
	var count int64
	err := r.DB.Model(&model.ClassSubject{}).
		Where("class_id = ? AND subject_id = ?", classID, subjectID).
		Count(&count).Error
	return count > 0, err
}

func (r *ClassRepository) ListSubjects(classID uint) ([]model.Subject, error) {
	var subjects []model.Subject
	err := r.DB.Table("subjects s").
		Joins("JOIN class_subjects cs ON cs.subject_id = s.id").
		Where("cs.class_id = ? AND s.deleted_at IS NULL AND cs.deleted_at IS NULL", classID).
		Order("s.name asc").
		Find(&subjects).Error
	return subjects, err
}
