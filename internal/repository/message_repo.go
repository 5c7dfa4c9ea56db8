package repository

import (
	"context"

	"gorm.io/gorm"

	"motabe/backend/internal/model"
)

// MessageLogRepository 消息记录数据访问接口
type MessageLogRepository interface {
	BatchCreate(ctx context.Context, logs []model.MessageLog) error
	List(ctx context.Context, staffID, kind string, offset, limit int) ([]model.MessageLog, int64, error)
}

type messageLogRepo struct {
	db *gorm.DB
}

// NewMessageLogRepo 创建 MessageLogRepository 实例
func NewMessageLogRepo(db *gorm.DB) MessageLogRepository {
	return &messageLogRepo{db: db}
}

func (r *messageLogRepo) BatchCreate(ctx context.Context, logs []model.MessageLog) error {
	if len(logs) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&logs).Error
}

func (r *messageLogRepo) List(ctx context.Context, staffID, kind string, offset, limit int) ([]model.MessageLog, int64, error) {
	var logs []model.MessageLog
	var total int64

	db := r.db.WithContext(ctx).Model(&model.MessageLog{})
	if staffID != "" {
		db = db.Where("staff_id = ?", staffID)
	}
	if kind != "" {
		db = db.Where("kind = ?", kind)
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := db.Offset(offset).Limit(limit).
		Order("sent_at DESC").
		Find(&logs).Error
	return logs, total, err
}
