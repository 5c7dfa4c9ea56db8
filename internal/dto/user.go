package dto

// ── 控制台用户模块 DTO ──

// CreateUserRequest 创建控制台用户请求（仅超级管理员）
type CreateUserRequest struct {
	Name     string `json:"name"     binding:"required,min=2,max=64"`
	Username string `json:"username" binding:"required,min=3,max=32"`
	Password string `json:"password" binding:"required,min=8,max=20"`
	Role     string `json:"role"     binding:"required,oneof=superadmin admin"`
}

// UpdateUserRequest 更新控制台用户请求
type UpdateUserRequest struct {
	Name *string `json:"name" binding:"omitempty,min=2,max=64"`
	Role *string `json:"role" binding:"omitempty,oneof=superadmin admin"`
}

// ResetPasswordRequest 重置密码请求（仅超级管理员）
type ResetPasswordRequest struct {
	NewPassword string `json:"new_password" binding:"required,min=8,max=20"`
}

// UserListRequest 用户列表查询参数
type UserListRequest struct {
	PaginationRequest
}
