package service

import (
	"eduquiz_backend/internal/model"
	"eduquiz_backend/internal/repository"
	"eduquiz_backend/internal/util"
	"errors"
)

type ExperimentService struct {
	ExperimentRepo *repository.ExperimentRepository
	ClassRepo      *repository.ClassRepository
	UserRepo       *repository.UserRepository
}

func NewExperimentService(experimentRepo *repository.ExperimentRepository, classRepo *repository.ClassRepository, userRepo *repository.UserRepository) *ExperimentService {
	return &ExperimentService{
		ExperimentRepo: experimentRepo,
		ClassRepo:      classRepo,
		UserRepo:       userRepo,
	}
}

type ExperimentReq struct {
	SubjectID   uint   `json:"subjectId" binding:"required"`
	Title       string `json:"title" binding:"required"`
	Aim         string `json:"aim"`
	Procedure   string `json:"procedure"`
	Description string `json:"description"`
}

func (s *ExperimentService) CreateExperiment(creatorID uint, req ExperimentReq) (*model.Experiment, error) {
	experiment := &model.Experiment{
		SubjectID:   req.SubjectID,
		CreatorID:   creatorID,
		Title:       req.Title,
		Aim:         req.Aim,
		Procedure:   req.Procedure,
		Description: req.Description,
	}
	if err := s.ExperimentRepo.Create(experiment); err != nil {
		return nil, err
	}
	return experiment, nil
}

func (s *ExperimentService) UpdateExperiment(id uint, req ExperimentReq) (*model.Experiment, error) {
	experiment, err := s.ExperimentRepo.FindByID(id)
	if err != nil {
		return nil, err
	}

	experiment.SubjectID = req.SubjectID
	experiment.Title = req.Title
	experiment.Aim = req.Aim
	experiment.Procedure = req.Procedure
	experiment.Description = req.Description

	if err := s.ExperimentRepo.Update(experiment); err != nil {
		return nil, err
	}
	return experiment, nil
}

func (s *ExperimentService) DeleteExperiment(id uint) error {
	return s.ExperimentRepo.Delete(id)
}

func (s *ExperimentService) GetExperiment(id uint) (*model.Experiment, error) {
	return s.ExperimentRepo.FindByID(id)
}

func (s *ExperimentService) ListExperiments(subjectID uint, page, limit int) ([]model.Experiment, int64, error) {
	return s.ExperimentRepo.ListBySubject(subjectID, page, limit)
}

// checkStudentSubject 校验学生班级是否选修了某科目
func (s *ExperimentService) checkStudentSubject(studentID, subjectID uint) error {
	student, err := s.UserRepo.FindByID(studentID)
	if err != nil {
		return err
	}
	if student.ClassID == nil {
		return util.ErrNotEnrolled
	}
	enrolled, err := s.ClassRepo.HasSubject(*student.ClassID, subjectID)
	if err != nil {
		return err
	}
	if !enrolled {
		return util.ErrNotEnrolled
	}
	return nil
}

func (s *ExperimentService) ListForStudent(studentID, subjectID uint, page, limit int) ([]model.Experiment, int64, error) {
	if subjectID == 0 {
		return nil, 0, errors.New("subjectId is required")
	}
	if err := s.checkStudentSubject(studentID, subjectID); err != nil {
		return nil, 0, err
	}
	return s.ExperimentRepo.ListBySubject(subjectID, page, limit)
}

func (s *ExperimentService) GetForStudent(studentID, experimentID uint) (*model.Experiment, error) {
	experiment, err := s.ExperimentRepo.FindByID(experimentID)
	if err != nil {
		return nil, err
	}
	if err := s.checkStudentSubject(studentID, experiment.SubjectID); err != nil {
		return nil, err
	}
	return experiment, nil
}
