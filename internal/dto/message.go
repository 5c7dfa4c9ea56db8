package dto

// ── 消息模块 DTO ──

// ComposeMessagesRequest 生成排班通知文本请求
type ComposeMessagesRequest struct {
	RosterID string `json:"roster_id" binding:"required,uuid"`
	Kind     string `json:"kind"      binding:"required,oneof=assignment reminder"`
}

// MessageLogListRequest 消息记录列表查询参数
type MessageLogListRequest struct {
	StaffID string `form:"staff_id" binding:"omitempty,uuid"`
	Kind    string `form:"kind"     binding:"omitempty,oneof=assignment reminder"`
	PaginationRequest
}

// MessageResponse 消息文本响应
type MessageResponse struct {
	ID        string `json:"id"`
	StaffID   string `json:"staff_id"`
	StaffName string `json:"staff_name,omitempty"`
	Kind      string `json:"kind"`
	Body      string `json:"body"`
	SentAt    string `json:"sent_at"`
}
