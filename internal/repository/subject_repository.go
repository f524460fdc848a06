package repository

import (
	"eduquiz_backend/internal/model"

	"gorm.io/gorm"
)

type SubjectRepository struct {
	DB *gorm.DB
}

func NewSubjectRepository(db *gorm.DB) *SubjectRepository {
	return &SubjectRepository{DB: db}
}

func (r *SubjectRepository) Create(subject *model.Subject) error {
	return r.DB.Create(subject).Error
}

func (r *SubjectRepository) FindByID(id uint) (*model.Subject, error) {
	var subject model.Subject
	err := r.DB.First(&subject, id).Error
	if err != nil {
		return nil, err
	}
	return &subject, nil
}

func (r *SubjectRepository) List(page, limit int) ([]model.Subject, int64, error) {
	var total int64
	if err := r.DB.Model(&model.Subject{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var subjects []model.Subject
	offset := (page - 1) * limit
	err := r.DB.Order("name asc").Offset(offset).Limit(limit).Find(&subjects).Error
	return subjects, total, err
}

func (r *SubjectRepository) Update(subject *model.Subject) error {
	return r.DB.Save(subject).Error
}

func (r *SubjectRepository) Delete(id uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("subject_id = ?", id).Delete(&model.ClassSubject{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Subject{}, id).Error
	})
}
