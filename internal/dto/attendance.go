package dto

// ── 考勤模块 DTO ──

// SignInRequest 签到请求
type SignInRequest struct {
	StaffID  string `json:"staff_id"  binding:"required,uuid"`
	DutyDate string `json:"duty_date" binding:"required,datetime=2006-01-02"`
}

// SignOutRequest 签退请求
type SignOutRequest struct {
	StaffID  string `json:"staff_id"  binding:"required,uuid"`
	DutyDate string `json:"duty_date" binding:"required,datetime=2006-01-02"`
}

// AttendanceListRequest 考勤列表查询参数
type AttendanceListRequest struct {
	DutyDate string `form:"duty_date" binding:"omitempty,datetime=2006-01-02"`
	StaffID  string `form:"staff_id"  binding:"omitempty,uuid"`
	Status   string `form:"status"    binding:"omitempty,oneof=pending on_duty completed absent no_sign_out"`
	PaginationRequest
}

// AttendanceResponse 考勤记录响应
type AttendanceResponse struct {
	ID          string `json:"id"`
	StaffID     string `json:"staff_id"`
	StaffName   string `json:"staff_name,omitempty"`
	DutyDate    string `json:"duty_date"`
	Status      string `json:"status"`
	SignInTime  string `json:"sign_in_time,omitempty"`
	SignOutTime string `json:"sign_out_time,omitempty"`
	IsLate      bool   `json:"is_late"`
}
