package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"motabe/backend/internal/model"
	pkgerrors "motabe/backend/pkg/errors"
)

// AttendanceRepository 考勤记录数据访问接口
type AttendanceRepository interface {
	Create(ctx context.Context, record *model.AttendanceRecord) error
	GetByStaffAndDate(ctx context.Context, staffID string, dutyDate time.Time) (*model.AttendanceRecord, error)
	Update(ctx context.Context, record *model.AttendanceRecord) error
	List(ctx context.Context, filter AttendanceFilter, offset, limit int) ([]model.AttendanceRecord, int64, error)
}

// AttendanceFilter 考勤列表过滤条件
type AttendanceFilter struct {
	DutyDate *time.Time
	StaffID  string
	Status   string
}

type attendanceRepo struct {
	db *gorm.DB
}

// NewAttendanceRepo 创建 AttendanceRepository 实例
func NewAttendanceRepo(db *gorm.DB) AttendanceRepository {
	return &attendanceRepo{db: db}
}

func (r *attendanceRepo) Create(ctx context.Context, record *model.AttendanceRecord) error {
	return r.db.WithContext(ctx).Create(record).Error
}

func (r *attendanceRepo) GetByStaffAndDate(ctx context.Context, staffID string, dutyDate time.Time) (*model.AttendanceRecord, error) {
	var record model.AttendanceRecord
	err := r.db.WithContext(ctx).
		Where("staff_id = ? AND duty_date = ?", staffID, dutyDate).
		First(&record).Error
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *attendanceRepo) Update(ctx context.Context, record *model.AttendanceRecord) error {
	oldVersion := record.Version
	result := r.db.WithContext(ctx).
		Model(record).
		Where("record_id = ? AND version = ?", record.RecordID, oldVersion).
		Updates(map[string]interface{}{
			"status":        record.Status,
			"sign_in_time":  record.SignInTime,
			"sign_out_time": record.SignOutTime,
			"is_late":       record.IsLate,
			"updated_by":    record.UpdatedBy,
			"version":       oldVersion + 1,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return pkgerrors.ErrOptimisticLock
	}
	record.Version = oldVersion + 1
	return nil
}

func (r *attendanceRepo) List(ctx context.Context, filter AttendanceFilter, offset, limit int) ([]model.AttendanceRecord, int64, error) {
	var records []model.AttendanceRecord
	var total int64

	db := r.db.WithContext(ctx).Model(&model.AttendanceRecord{})
	if filter.DutyDate != nil {
		db = db.Where("duty_date = ?", *filter.DutyDate)
	}
	if filter.StaffID != "" {
		db = db.Where("staff_id = ?", filter.StaffID)
	}
	if filter.Status != "" {
		db = db.Where("status = ?", filter.Status)
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := db.Offset(offset).Limit(limit).
		Order("duty_date DESC, created_at ASC").
		Find(&records).Error
	return records, total, err
}
