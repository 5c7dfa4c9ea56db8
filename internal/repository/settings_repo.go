package repository

import (
	"context"

	"gorm.io/gorm"

	"motabe/backend/internal/model"
)

// EngineSettingsRepository 引擎设置数据访问接口（单行强类型）
type EngineSettingsRepository interface {
	Get(ctx context.Context) (*model.EngineSettings, error)
	Update(ctx context.Context, settings *model.EngineSettings) error
}

type engineSettingsRepo struct {
	db *gorm.DB
}

// NewEngineSettingsRepo 创建 EngineSettingsRepository 实例
func NewEngineSettingsRepo(db *gorm.DB) EngineSettingsRepository {
	return &engineSettingsRepo{db: db}
}

// Get 读取单例设置行（由迁移脚本保证始终存在）
func (r *engineSettingsRepo) Get(ctx context.Context) (*model.EngineSettings, error) {
	var settings model.EngineSettings
	err := r.db.WithContext(ctx).
		Where("singleton = ?", true).
		First(&settings).Error
	if err != nil {
		return nil, err
	}
	return &settings, nil
}

// Update 整体重写单例设置行
func (r *engineSettingsRepo) Update(ctx context.Context, settings *model.EngineSettings) error {
	return r.db.WithContext(ctx).
		Model(&model.EngineSettings{}).
		Where("singleton = ?", true).
		Updates(map[string]interface{}{
			"exclude_vice_principals": settings.ExcludeVicePrincipals,
			"exclude_guards":          settings.ExcludeGuards,
			"auto_exclude_teachers":   settings.AutoExcludeTeachers,
			"staff_per_day":           settings.StaffPerDay,
			"site_mode":               settings.SiteMode,
			"updated_by":              settings.UpdatedBy,
		}).Error
}
