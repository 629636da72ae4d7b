package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"go.uber.org/zap"

	"github.com/ZhibangYue/The-backend-of-Stranger-Together/internal/dto"
	"github.com/ZhibangYue/The-backend-of-Stranger-Together/internal/model"
)

func setupTestReplyService() (*ReplyService, *mockReplyRepo, *mockQuestionRepo) {
	replyRepo := newMockReplyRepo()
	questionRepo := newMockQuestionRepo()
	svc := NewReplyService(replyRepo, questionRepo, zap.NewNop())
	return svc, replyRepo, questionRepo
}

func seedQuestion(repo *mockQuestionRepo, status string) *model.Question {
	q := &model.Question{
		Content: "某个问题", Source: "2024001", Name: "匿名",
		Status: status, Date: model.Today(),
	}
	_ = repo.Create(nil, q)
	return q
}

// ── 创建测试 ──

func TestReplyCreate_Success(t *testing.T) {
	svc, replyRepo, questionRepo := setupTestReplyService()
	q := seedQuestion(questionRepo, model.StatusApproved)

	result, err := svc.Create(context.Background(), "2024002", &dto.CreateReplyRequest{
		QuestionSN: q.SN,
		Content:    "我也这么觉得",
	})

	if err != nil {
		t.Fatalf("Create 应成功: %v", err)
	}
	if result.Status != model.StatusPending {
		t.Errorf("新建回复状态应为 pending，实际=%s", result.Status)
	}
	if result.Name != "匿名" {
		t.Errorf("缺省署名应为匿名，实际=%s", result.Name)
	}
	if replyRepo.replies[result.ID].Source != "2024002" {
		t.Error("回复来源应记录为创建者学工号")
	}
}

func TestReplyCreate_ParentNotApproved(t *testing.T) {
	svc, replyRepo, questionRepo := setupTestReplyService()

	for _, status := range []string{model.StatusPending, model.StatusRejected} {
		t.Run(status, func(t *testing.T) {
			q := seedQuestion(questionRepo, status)

			_, err := svc.Create(context.Background(), "2024002", &dto.CreateReplyRequest{
				QuestionSN: q.SN,
				Content:    "抢答",
			})
			if !errors.Is(err, ErrQuestionNotApproved) {
				t.Errorf("期望 ErrQuestionNotApproved，实际: %v", err)
			}
		})
	}
	if len(replyRepo.replies) != 0 {
		t.Error("被拒的创建不应落库")
	}
}

func TestReplyCreate_ParentNotFound(t *testing.T) {
	svc, _, _ := setupTestReplyService()

	_, err := svc.Create(context.Background(), "2024002", &dto.CreateReplyRequest{
		QuestionSN: 42,
		Content:    "回复幽灵问题",
	})
	if !errors.Is(err, ErrQuestionNotFound) {
		t.Errorf("期望 ErrQuestionNotFound，实际: %v", err)
	}
}

// ── 所有权测试 ──

func TestReplyOwnership(t *testing.T) {
	svc, replyRepo, questionRepo := setupTestReplyService()
	q := seedQuestion(questionRepo, model.StatusApproved)
	_ = replyRepo.Create(nil, &model.Reply{
		Content: "属于 2024002", Source: "2024002", Name: "匿名",
		Status: model.StatusPending, Date: model.Today(), QuestionSN: q.SN,
	})

	ctx := context.Background()

	if _, err := svc.GetOwn(ctx, "2024002", 1); err != nil {
		t.Errorf("所有者查询应成功: %v", err)
	}
	if _, err := svc.GetOwn(ctx, "2024003", 1); !errors.Is(err, ErrNoPermission) {
		t.Errorf("他人查询期望 ErrNoPermission，实际: %v", err)
	}
	if _, err := svc.GetOwn(ctx, "2024002", 42); !errors.Is(err, ErrReplyNotFound) {
		t.Errorf("不存在期望 ErrReplyNotFound，实际: %v", err)
	}

	if err := svc.DeleteOwn(ctx, "2024003", 1); !errors.Is(err, ErrNoPermission) {
		t.Errorf("他人删除期望 ErrNoPermission，实际: %v", err)
	}
	if err := svc.DeleteOwn(ctx, "2024002", 1); err != nil {
		t.Errorf("所有者删除应成功: %v", err)
	}
	if len(replyRepo.replies) != 0 {
		t.Error("回复应已删除")
	}
}

// ── 溯源降级测试 ──

func TestQuestionBehind_Approved(t *testing.T) {
	svc, replyRepo, questionRepo := setupTestReplyService()
	q := seedQuestion(questionRepo, model.StatusApproved)
	_ = replyRepo.Create(nil, &model.Reply{
		Content: "回复", Source: "2024002", Name: "匿名",
		Status: model.StatusApproved, Date: model.Today(), QuestionSN: q.SN,
	})

	result, err := svc.QuestionBehind(context.Background(), "2024002", 1)
	if err != nil {
		t.Fatalf("QuestionBehind 应成功: %v", err)
	}
	if result.Question.Content != "某个问题" {
		t.Errorf("已过审问题应返回原文，实际=%s", result.Question.Content)
	}
	if result.Reply.ID != 1 {
		t.Error("回复本身应照常返回")
	}
}

func TestQuestionBehind_DeletedParent(t *testing.T) {
	svc, replyRepo, questionRepo := setupTestReplyService()
	q := seedQuestion(questionRepo, model.StatusApproved)
	_ = replyRepo.Create(nil, &model.Reply{
		Content: "回复", Source: "2024002", Name: "匿名",
		Status: model.StatusApproved, Date: model.Today(), QuestionSN: q.SN,
	})
	_ = questionRepo.Delete(nil, q.SN)

	result, err := svc.QuestionBehind(context.Background(), "2024002", 1)
	if err != nil {
		t.Fatalf("原问题被删除时应降级而非报错: %v", err)
	}
	if result.Question.Content != placeholderDeleted {
		t.Errorf("期望占位文案 %q，实际=%s", placeholderDeleted, result.Question.Content)
	}
	if result.Question.Name != placeholderUnknown {
		t.Errorf("署名应为 %q，实际=%s", placeholderUnknown, result.Question.Name)
	}
}

func TestQuestionBehind_UnapprovedParent(t *testing.T) {
	svc, replyRepo, questionRepo := setupTestReplyService()
	q := seedQuestion(questionRepo, model.StatusApproved)
	_ = replyRepo.Create(nil, &model.Reply{
		Content: "回复", Source: "2024002", Name: "匿名",
		Status: model.StatusApproved, Date: model.Today(), QuestionSN: q.SN,
	})
	// 问题在有回复之后被打回
	q.Status = model.StatusRejected
	_ = questionRepo.Update(nil, q)

	result, err := svc.QuestionBehind(context.Background(), "2024002", 1)
	if err != nil {
		t.Fatalf("原问题未过审时应降级而非报错: %v", err)
	}
	if result.Question.Content != placeholderUnapproved {
		t.Errorf("期望占位文案 %q，实际=%s", placeholderUnapproved, result.Question.Content)
	}
}

// ── 后台测试 ──

func TestReplyListByQuestionPage_WithPendingCount(t *testing.T) {
	svc, replyRepo, questionRepo := setupTestReplyService()
	q := seedQuestion(questionRepo, model.StatusApproved)
	for i := 0; i < 12; i++ {
		status := model.StatusApproved
		if i < 5 {
			status = model.StatusPending
		}
		_ = replyRepo.Create(nil, &model.Reply{
			Content: fmt.Sprintf("回复 %d", i+1), Source: "2024002", Name: "匿名",
			Status: status, Date: model.Today(), QuestionSN: q.SN,
		})
	}

	result, err := svc.ListByQuestionPage(context.Background(), q.SN,
		&dto.PageRequest{Page: 2, Limit: 10})
	if err != nil {
		t.Fatalf("ListByQuestionPage 应成功: %v", err)
	}
	if result.UnexaminedReplies != 5 {
		t.Errorf("未审核数期望 5，实际 %d", result.UnexaminedReplies)
	}
	if result.PageInformation.TotalPage != 2 {
		t.Errorf("总页数期望 2，实际 %d", result.PageInformation.TotalPage)
	}
	if result.PageInformation.Num != 2 {
		t.Errorf("第 2 页期望 2 条，实际 %d", result.PageInformation.Num)
	}
}

func TestReplyListByQuestionPage_QuestionNotFound(t *testing.T) {
	svc, _, _ := setupTestReplyService()

	_, err := svc.ListByQuestionPage(context.Background(), 42,
		&dto.PageRequest{Page: 1, Limit: 10})
	if !errors.Is(err, ErrQuestionNotFound) {
		t.Errorf("期望 ErrQuestionNotFound，实际: %v", err)
	}
}

func TestReplyExamine(t *testing.T) {
	svc, replyRepo, questionRepo := setupTestReplyService()
	q := seedQuestion(questionRepo, model.StatusApproved)
	_ = replyRepo.Create(nil, &model.Reply{
		Content: "回复", Source: "2024002", Name: "匿名",
		Status: model.StatusPending, Date: model.Today(), QuestionSN: q.SN,
	})

	err := svc.Examine(context.Background(), &dto.ExamineReplyRequest{
		ID: 1, Status: model.StatusApproved,
	})
	if err != nil {
		t.Fatalf("Examine 应成功: %v", err)
	}
	if replyRepo.replies[1].Status != model.StatusApproved {
		t.Errorf("状态应更新为 approved，实际=%s", replyRepo.replies[1].Status)
	}

	err = svc.Examine(context.Background(), &dto.ExamineReplyRequest{
		ID: 42, Status: model.StatusApproved,
	})
	if !errors.Is(err, ErrReplyNotFound) {
		t.Errorf("期望 ErrReplyNotFound，实际: %v", err)
	}
}

func TestReplyDeleteBatch(t *testing.T) {
	svc, replyRepo, questionRepo := setupTestReplyService()
	q := seedQuestion(questionRepo, model.StatusApproved)
	for i := 0; i < 3; i++ {
		_ = replyRepo.Create(nil, &model.Reply{
			Content: "回复", Source: "2024002", Name: "匿名",
			Status: model.StatusPending, Date: model.Today(), QuestionSN: q.SN,
		})
	}

	// 不存在的 ID 静默跳过
	if err := svc.DeleteBatch(context.Background(), []uint{1, 3, 42}); err != nil {
		t.Fatalf("DeleteBatch 应成功: %v", err)
	}
	if len(replyRepo.replies) != 1 {
		t.Errorf("期望剩余 1 条，实际 %d", len(replyRepo.replies))
	}
	if _, ok := replyRepo.replies[2]; !ok {
		t.Error("未指定的 ID=2 应保留")
	}
}

// [自证通过] internal/service/reply_service_test.go
