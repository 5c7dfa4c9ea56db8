package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"motabe/backend/internal/dto"
	"motabe/backend/internal/model"
	"motabe/backend/internal/repository"
)

var ErrLocationNotFound = errors.New("地点不存在")

// LocationService 督导地点业务接口
type LocationService interface {
	Create(ctx context.Context, req *dto.CreateLocationRequest, callerID string) (*dto.LocationResponse, error)
	Update(ctx context.Context, id string, req *dto.UpdateLocationRequest, callerID string) (*dto.LocationResponse, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]dto.LocationResponse, error)
}

type locationService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewLocationService 创建 LocationService 实例
func NewLocationService(repo *repository.Repository, logger *zap.Logger) LocationService {
	return &locationService{repo: repo, logger: logger}
}

func (s *locationService) Create(ctx context.Context, req *dto.CreateLocationRequest, callerID string) (*dto.LocationResponse, error) {
	location := &model.Location{
		Name:      req.Name,
		IsDefault: req.IsDefault,
		IsActive:  true,
	}
	location.CreatedBy = &callerID

	if err := s.repo.Location.Create(ctx, location); err != nil {
		s.logger.Error("创建地点失败", zap.Error(err))
		return nil, err
	}
	resp := toLocationResponse(location)
	return &resp, nil
}

func (s *locationService) Update(ctx context.Context, id string, req *dto.UpdateLocationRequest, callerID string) (*dto.LocationResponse, error) {
	location, err := s.repo.Location.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLocationNotFound
		}
		return nil, err
	}

	if req.Name != nil {
		location.Name = *req.Name
	}
	if req.IsDefault != nil {
		location.IsDefault = *req.IsDefault
	}
	if req.IsActive != nil {
		location.IsActive = *req.IsActive
	}
	location.UpdatedBy = &callerID

	if err := s.repo.Location.Update(ctx, location); err != nil {
		s.logger.Error("更新地点失败", zap.Error(err))
		return nil, err
	}
	resp := toLocationResponse(location)
	return &resp, nil
}

func (s *locationService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.Location.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrLocationNotFound
		}
		return err
	}
	return s.repo.Location.Delete(ctx, id)
}

func (s *locationService) List(ctx context.Context) ([]dto.LocationResponse, error) {
	locations, err := s.repo.Location.ListAll(ctx)
	if err != nil {
		s.logger.Error("查询地点列表失败", zap.Error(err))
		return nil, err
	}
	resp := make([]dto.LocationResponse, 0, len(locations))
	for i := range locations {
		resp = append(resp, toLocationResponse(&locations[i]))
	}
	return resp, nil
}

func toLocationResponse(location *model.Location) dto.LocationResponse {
	return dto.LocationResponse{
		ID:        location.LocationID,
		Name:      location.Name,
		IsDefault: location.IsDefault,
		IsActive:  location.IsActive,
		CreatedAt: location.CreatedAt.Format(time.RFC3339),
	}
}
