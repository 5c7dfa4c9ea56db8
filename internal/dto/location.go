package dto

// ── 督导地点模块 DTO ──

// CreateLocationRequest 创建地点请求
type CreateLocationRequest struct {
	Name      string `json:"name"       binding:"required,min=2,max=64"`
	IsDefault bool   `json:"is_default"`
}

// UpdateLocationRequest 更新地点请求
type UpdateLocationRequest struct {
	Name      *string `json:"name"       binding:"omitempty,min=2,max=64"`
	IsDefault *bool   `json:"is_default"`
	IsActive  *bool   `json:"is_active"`
}

// LocationResponse 地点响应
type LocationResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	IsDefault bool   `json:"is_default"`
	IsActive  bool   `json:"is_active"`
	CreatedAt string `json:"created_at"`
}

// LocationBrief 地点简要信息
type LocationBrief struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
