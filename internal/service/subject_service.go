package service

import (
	"eduquiz_backend/internal/model"
	"eduquiz_backend/internal/repository"
)

type SubjectService struct {
	SubjectRepo *repository.SubjectRepository
}

func NewSubjectService(subjectRepo *repository.SubjectRepository) *SubjectService {
	return &SubjectService{SubjectRepo: subjectRepo}
}

func (s *SubjectService) CreateSubject(subject *model.Subject) error {
	return s.SubjectRepo.Create(subject)
}

func (s *SubjectService) GetSubject(id uint) (*model.Subject, error) {
	return s.SubjectRepo.FindByID(id)
}

func (s *SubjectService) ListSubjects(page, limit int) ([]model.Subject, int64, error) {
	return s.SubjectRepo.List(page, limit)
}

func (s *SubjectService) UpdateSubject(subject *model.Subject) error {
	return s.SubjectRepo.Update(subject)
}

func (s *SubjectService) DeleteSubject(id uint) error {
	return s.SubjectRepo.Delete(id)
}
