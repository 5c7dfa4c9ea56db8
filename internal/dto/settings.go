package dto

// ── 引擎设置模块 DTO ──

// UpdateSettingsRequest 更新引擎设置请求（整体重写单例）
type UpdateSettingsRequest struct {
	ExcludeVicePrincipals *bool   `json:"exclude_vice_principals"`
	ExcludeGuards         *bool   `json:"exclude_guards"`
	AutoExcludeTeachers   *bool   `json:"auto_exclude_teachers"`
	StaffPerDay           *int    `json:"staff_per_day" binding:"omitempty,min=1,max=50"`
	SiteMode              *string `json:"site_mode"     binding:"omitempty,oneof=unified separate"`
}

// SettingsResponse 引擎设置响应
type SettingsResponse struct {
	ExcludeVicePrincipals bool   `json:"exclude_vice_principals"`
	ExcludeGuards         bool   `json:"exclude_guards"`
	AutoExcludeTeachers   bool   `json:"auto_exclude_teachers"`
	StaffPerDay           int    `json:"staff_per_day"`
	SiteMode              string `json:"site_mode"`
	UpdatedAt             string `json:"updated_at"`
}
