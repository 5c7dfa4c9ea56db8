package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"motabe/backend/internal/dto"
	"motabe/backend/internal/repository"
)

// SettingsService 引擎设置业务接口（单例读写）
type SettingsService interface {
	Get(ctx context.Context) (*dto.SettingsResponse, error)
	Update(ctx context.Context, req *dto.UpdateSettingsRequest, callerID string) (*dto.SettingsResponse, error)
}

type settingsService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewSettingsService 创建 SettingsService 实例
func NewSettingsService(repo *repository.Repository, logger *zap.Logger) SettingsService {
	return &settingsService{repo: repo, logger: logger}
}

func (s *settingsService) Get(ctx context.Context) (*dto.SettingsResponse, error) {
	settings, err := s.repo.Settings.Get(ctx)
	if err != nil {
		s.logger.Error("查询引擎设置失败", zap.Error(err))
		return nil, err
	}
	return &dto.SettingsResponse{
		ExcludeVicePrincipals: settings.ExcludeVicePrincipals,
		ExcludeGuards:         settings.ExcludeGuards,
		AutoExcludeTeachers:   settings.AutoExcludeTeachers,
		StaffPerDay:           settings.StaffPerDay,
		SiteMode:              settings.SiteMode,
		UpdatedAt:             settings.UpdatedAt.Format(time.RFC3339),
	}, nil
}

// Update 局部字段合并后整体重写单例行。
// 设置只影响之后的生成，已存在的排班不受影响。
func (s *settingsService) Update(ctx context.Context, req *dto.UpdateSettingsRequest, callerID string) (*dto.SettingsResponse, error) {
	settings, err := s.repo.Settings.Get(ctx)
	if err != nil {
		s.logger.Error("查询引擎设置失败", zap.Error(err))
		return nil, err
	}

	if req.ExcludeVicePrincipals != nil {
		settings.ExcludeVicePrincipals = *req.ExcludeVicePrincipals
	}
	if req.ExcludeGuards != nil {
		settings.ExcludeGuards = *req.ExcludeGuards
	}
	if req.AutoExcludeTeachers != nil {
		settings.AutoExcludeTeachers = *req.AutoExcludeTeachers
	}
	if req.StaffPerDay != nil {
		settings.StaffPerDay = *req.StaffPerDay
	}
	if req.SiteMode != nil {
		settings.SiteMode = *req.SiteMode
	}
	settings.UpdatedBy = &callerID

	if err := s.repo.Settings.Update(ctx, settings); err != nil {
		s.logger.Error("更新引擎设置失败", zap.Error(err))
		return nil, err
	}
	return s.Get(ctx)
}
