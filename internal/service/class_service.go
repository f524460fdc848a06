package service

import (
	"eduquiz_backend/internal/model"
	"eduquiz_backend/internal/repository"
)

type ClassService struct {
	ClassRepo *repository.ClassRepository
	UserRepo  *repository.UserRepository
}

func NewClassService(classRepo *repository.ClassRepository, userRepo *repository.UserRepository) *ClassService {
	return &ClassService{ClassRepo: classRepo, UserRepo: userRepo}
}

func (s *ClassService) CreateClass(class *model.Class) error {
	return s.ClassRepo.Create(class)
}

func (s *ClassService) GetClass(id uint) (*model.Class, error) {
	return s.ClassRepo.FindByID(id)
}

func (s *ClassService) ListClasses(page, limit int) ([]model.Class, int64, error) {
	return s.ClassRepo.List(page, limit)
}

func (s *ClassService) UpdateClass(class *model.Class) error {
	return s.ClassRepo.Update(class)
}

func (s *ClassService) DeleteClass(id uint) error {
	return s.ClassRepo.Delete(id)
}

// AssignSubject 给班级分配科目，学生由此获得该科目下测验的作答资格
func (s *ClassService) AssignSubject(classID, subjectID uint) error {
	exists, err := s.ClassRepo.HasSubject(classID, subjectID)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	return s.ClassRepo.AddSubject(classID, subjectID)
}

func (s *ClassService) RemoveSubject(classID, subjectID uint) error {
	return s.ClassRepo.RemoveSubject(classID, subjectID)
}

func (s *ClassService) ListSubjects(classID uint) ([]model.Subject, error) {
	return s.ClassRepo.ListSubjects(classID)
}

// ListStudents 班级学生名册
func (s *ClassService) ListStudents(classID uint, page, limit int) ([]model.User, int64, error) {
	return s.UserRepo.List(string(model.Student), classID, page, limit)
}
