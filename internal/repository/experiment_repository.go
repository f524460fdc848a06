package repository

import (
	"eduquiz_backend/internal/model"

	"gorm.io/gorm"
)

type ExperimentRepository struct {
	DB *gorm.DB
}

func NewExperimentRepository(db *gorm.DB) *ExperimentRepository {
	return &ExperimentRepository{DB: db}
}

func (r *ExperimentRepository) Create(experiment *model.Experiment) error {
	return r.DB.Create(experiment).Error
}

func (r *ExperimentRepository) FindByID(id uint) (*model.Experiment, error) {
	var experiment model.Experiment
	err := r.DB.Preload("Subject").First(&experiment, id).Error
	if err != nil {
		return nil, err
	}
	return &experiment, nil
}

func (r *ExperimentRepository) ListBySubject(subjectID uint, page, limit int) ([]model.Experiment, int64, error) {
	query := r.DB.Model(&model.Experiment{})
	if subjectID > 0 {
		query = query.Where("subject_id = ?", subjectID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var experiments []model.Experiment
	offset := (page - 1) * limit
	err := query.Preload("Subject").Order("created_at desc").Offset(offset).Limit(limit).Find(&experiments).Error
	return experiments, total, err
}

func (r *ExperimentRepository) Update(experiment *model.Experiment) error {
	return r.DB.Save(experiment).Error
}

func (r *ExperimentRepository) Delete(id uint) error {
	return r.DB.Delete(&model.Experiment{}, id).Error
}
