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

func setupTestUserService() (*UserService, *mockUserRepo) {
	userRepo := newMockUserRepo()
	return NewUserService(userRepo, zap.NewNop()), userRepo
}

func TestUserCreate_Success(t *testing.T) {
	svc, userRepo := setupTestUserService()

	result, err := svc.Create(context.Background(), &dto.CreateUserRequest{
		StudentNumber: "2024001",
		Username:      "张三",
	})

	if err != nil {
		t.Fatalf("Create 应成功: %v", err)
	}
	if result.StudentNumber != "2024001" {
		t.Errorf("期望 StudentNumber=2024001，实际=%s", result.StudentNumber)
	}
	if _, ok := userRepo.users["2024001"]; !ok {
		t.Error("用户应已落库")
	}
}

func TestUserCreate_Duplicate(t *testing.T) {
	svc, userRepo := setupTestUserService()
	userRepo.users["2024001"] = &model.User{StudentNumber: "2024001", Username: "张三"}

	_, err := svc.Create(context.Background(), &dto.CreateUserRequest{
		StudentNumber: "2024001",
		Username:      "李四",
	})

	if !errors.Is(err, ErrUserExists) {
		t.Errorf("期望 ErrUserExists，实际: %v", err)
	}
	if userRepo.users["2024001"].Username != "张三" {
		t.Error("重复建档不应覆盖已有档案")
	}
}

func TestUserGetUpdateDelete(t *testing.T) {
	svc, userRepo := setupTestUserService()
	userRepo.users["2024001"] = &model.User{StudentNumber: "2024001", Username: "张三"}

	ctx := context.Background()

	got, err := svc.Get(ctx, "2024001")
	if err != nil || got.Username != "张三" {
		t.Errorf("Get 应返回张三: %v, %+v", err, got)
	}
	if _, err := svc.Get(ctx, "nonexistent"); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("期望 ErrUserNotFound，实际: %v", err)
	}

	updated, err := svc.Update(ctx, "2024001", &dto.UpdateUserRequest{Username: "李四"})
	if err != nil || updated.Username != "李四" {
		t.Errorf("Update 应改名为李四: %v, %+v", err, updated)
	}
	if _, err := svc.Update(ctx, "nonexistent", &dto.UpdateUserRequest{Username: "x"}); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("期望 ErrUserNotFound，实际: %v", err)
	}

	if err := svc.Delete(ctx, "2024001"); err != nil {
		t.Errorf("Delete 应成功: %v", err)
	}
	if err := svc.Delete(ctx, "2024001"); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("二次删除期望 ErrUserNotFound，实际: %v", err)
	}
}

func TestUserList_ClampOverflow(t *testing.T) {
	svc, userRepo := setupTestUserService()
	for i := 0; i < 15; i++ {
		sn := fmt.Sprintf("20240%02d", i+1)
		userRepo.users[sn] = &model.User{StudentNumber: sn, Username: "用户"}
	}

	result, err := svc.List(context.Background(), &dto.PageRequest{Page: 9, Limit: 10})
	if err != nil {
		t.Fatalf("越界页码应钳位而非报错: %v", err)
	}
	if result.PageInformation.Page != 2 {
		t.Errorf("页码应钳位到 2，实际 %d", result.PageInformation.Page)
	}
	if result.PageInformation.Num != 5 {
		t.Errorf("末页期望 5 条，实际 %d", result.PageInformation.Num)
	}
}

func TestUserList_Empty(t *testing.T) {
	svc, _ := setupTestUserService()

	_, err := svc.List(context.Background(), &dto.PageRequest{Page: 1, Limit: 10})
	if !errors.Is(err, ErrNoMoreContent) {
		t.Errorf("空集期望 ErrNoMoreContent，实际: %v", err)
	}
}

func TestUserDeleteBatch_SilentSkip(t *testing.T) {
	svc, userRepo := setupTestUserService()
	userRepo.users["2024001"] = &model.User{StudentNumber: "2024001", Username: "张三"}
	userRepo.users["2024002"] = &model.User{StudentNumber: "2024002", Username: "李四"}

	if err := svc.DeleteBatch(context.Background(), []string{"2024001", "nonexistent"}); err != nil {
		t.Fatalf("DeleteBatch 应成功: %v", err)
	}
	if len(userRepo.users) != 1 {
		t.Errorf("期望剩余 1 个用户，实际 %d", len(userRepo.users))
	}
}

// [自证通过] internal/service/user_service_test.go
