package service

import (
	"eduquiz_backend/internal/model"
	"eduquiz_backend/internal/repository"
	"eduquiz_backend/internal/util"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserService struct {
	UserRepo *repository.UserRepository
}

func NewUserService(userRepo *repository.UserRepository) *UserService {
	return &UserService{UserRepo: userRepo}
}

type CreateUserReq struct {
	Name     string         `json:"name" binding:"required"`
	Email    string         `json:"email" binding:"required,email"`
	Password string         `json:"password" binding:"required,min=6"`
	Role     model.UserRole `json:"role" binding:"required"`
	ClassID  *uint          `json:"classId"`
}

// CreateUser 管理员创建账号（教师/学生），学生可同时指定班级
func (s *UserService) CreateUser(req CreateUserReq) (*model.User, error) {
	_, err := s.UserRepo.FindByEmail(req.Email)
	if err == nil {
		return nil, util.ErrEmailRegistered
	} else if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: string(hashed),
		Role:     req.Role,
		ClassID:  req.ClassID,
	}
	if err := s.UserRepo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

type UpdateUserReq struct {
	Name     *string `json:"name"`
	ClassID  *uint   `json:"classId"`
	Disabled *bool   `json:"disabled"`
}

func (s *UserService) UpdateUser(userID uint, req UpdateUserReq) (*model.User, error) {
	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.ClassID != nil {
		user.ClassID = req.ClassID
	}
	if req.Disabled != nil {
		user.Disabled = *req.Disabled
	}

	if err := s.UserRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) ListUsers(role string, classID uint, page, limit int) ([]model.User, int64, error) {
	return s.UserRepo.List(role, classID, page, limit)
}

func (s *UserService) DeleteUser(userID uint) error {
	return s.UserRepo.Delete(userID)
}

func (s *UserService) GetUser(userID uint) (*model.User, error) {
	return s.UserRepo.FindByID(userID)
}
