package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"motabe/backend/internal/dto"
	"motabe/backend/internal/model"
	"motabe/backend/internal/repository"
)

// ── 学期模块业务错误 ──

var (
	ErrTermNotFound     = errors.New("学期不存在")
	ErrNoActiveTerm     = errors.New("当前没有激活的学期")
	ErrTermDateInverted = errors.New("学期结束日期早于开始日期")
	ErrPeriodNotFound   = errors.New("节次不存在")
)

// 默认工作日：周日至周四
var defaultActiveWeekdays = model.IntArray{0, 1, 2, 3, 4}

// TermService 学期与节次业务接口
type TermService interface {
	Create(ctx context.Context, req *dto.CreateTermRequest, callerID string) (*dto.TermResponse, error)
	GetByID(ctx context.Context, id string) (*dto.TermResponse, error)
	GetActive(ctx context.Context) (*dto.TermResponse, error)
	Update(ctx context.Context, id string, req *dto.UpdateTermRequest, callerID string) (*dto.TermResponse, error)
	SetActive(ctx context.Context, id string) error
	List(ctx context.Context, req *dto.PaginationRequest) ([]dto.TermResponse, int64, error)
	ListPeriods(ctx context.Context) ([]dto.PeriodResponse, error)
	UpdatePeriod(ctx context.Context, id string, req *dto.UpdatePeriodRequest, callerID string) (*dto.PeriodResponse, error)
}

type termService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewTermService 创建 TermService 实例
func NewTermService(repo *repository.Repository, logger *zap.Logger) TermService {
	return &termService{repo: repo, logger: logger}
}

func (s *termService) Create(ctx context.Context, req *dto.CreateTermRequest, callerID string) (*dto.TermResponse, error) {
	startDate, _ := time.Parse("2006-01-02", req.StartDate)
	endDate, _ := time.Parse("2006-01-02", req.EndDate)
	if endDate.Before(startDate) {
		return nil, ErrTermDateInverted
	}

	weekdays := model.IntArray(req.ActiveWeekdays)
	if len(weekdays) == 0 {
		weekdays = defaultActiveWeekdays
	}
	periodCount := req.PeriodCount
	if periodCount <= 0 {
		periodCount = 7
	}

	term := &model.Term{
		Name:           req.Name,
		StartDate:      startDate,
		EndDate:        endDate,
		ActiveWeekdays: weekdays,
		PeriodCount:    periodCount,
	}
	term.CreatedBy = &callerID

	if err := s.repo.Term.Create(ctx, term); err != nil {
		s.logger.Error("创建学期失败", zap.Error(err))
		return nil, err
	}

	// 节次配置懒初始化：首个学期创建时生成默认节次
	if err := s.seedPeriodsIfEmpty(ctx, periodCount, callerID); err != nil {
		s.logger.Warn("初始化节次配置失败", zap.Error(err))
	}

	resp := toTermResponse(term)
	return &resp, nil
}

func (s *termService) GetByID(ctx context.Context, id string) (*dto.TermResponse, error) {
	term, err := s.repo.Term.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTermNotFound
		}
		return nil, err
	}
	resp := toTermResponse(term)
	return &resp, nil
}

func (s *termService) GetActive(ctx context.Context) (*dto.TermResponse, error) {
	term, err := s.repo.Term.GetActive(ctx)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoActiveTerm
		}
		return nil, err
	}
	resp := toTermResponse(term)
	return &resp, nil
}

func (s *termService) Update(ctx context.Context, id string, req *dto.UpdateTermRequest, callerID string) (*dto.TermResponse, error) {
	term, err := s.repo.Term.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTermNotFound
		}
		return nil, err
	}

	if req.Name != nil {
		term.Name = *req.Name
	}
	if req.StartDate != nil {
		term.StartDate, _ = time.Parse("2006-01-02", *req.StartDate)
	}
	if req.EndDate != nil {
		term.EndDate, _ = time.Parse("2006-01-02", *req.EndDate)
	}
	if term.EndDate.Before(term.StartDate) {
		return nil, ErrTermDateInverted
	}
	if req.ActiveWeekdays != nil {
		term.ActiveWeekdays = model.IntArray(req.ActiveWeekdays)
	}
	term.UpdatedBy = &callerID

	if err := s.repo.Term.Update(ctx, term); err != nil {
		s.logger.Error("更新学期失败", zap.Error(err))
		return nil, err
	}

	resp := toTermResponse(term)
	return &resp, nil
}

func (s *termService) SetActive(ctx context.Context, id string) error {
	if _, err := s.repo.Term.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTermNotFound
		}
		return err
	}
	return s.repo.Term.SetActive(ctx, id)
}

func (s *termService) List(ctx context.Context, req *dto.PaginationRequest) ([]dto.TermResponse, int64, error) {
	terms, total, err := s.repo.Term.List(ctx, req.GetOffset(), req.GetPageSize())
	if err != nil {
		s.logger.Error("查询学期列表失败", zap.Error(err))
		return nil, 0, err
	}
	resp := make([]dto.TermResponse, 0, len(terms))
	for i := range terms {
		resp = append(resp, toTermResponse(&terms[i]))
	}
	return resp, total, nil
}

// ── 节次 ──

func (s *termService) ListPeriods(ctx context.Context) ([]dto.PeriodResponse, error) {
	periods, err := s.repo.Period.ListAll(ctx)
	if err != nil {
		s.logger.Error("查询节次配置失败", zap.Error(err))
		return nil, err
	}
	resp := make([]dto.PeriodResponse, 0, len(periods))
	for i := range periods {
		resp = append(resp, toPeriodResponse(&periods[i]))
	}
	return resp, nil
}

func (s *termService) UpdatePeriod(ctx context.Context, id string, req *dto.UpdatePeriodRequest, callerID string) (*dto.PeriodResponse, error) {
	period, err := s.repo.Period.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPeriodNotFound
		}
		return nil, err
	}

	if req.Name != nil {
		period.Name = *req.Name
	}
	if req.StartTime != nil {
		period.StartTime = *req.StartTime
	}
	if req.EndTime != nil {
		period.EndTime = *req.EndTime
	}
	if req.IsEnabled != nil {
		period.IsEnabled = *req.IsEnabled
	}
	period.UpdatedBy = &callerID

	if err := s.repo.Period.Update(ctx, period); err != nil {
		s.logger.Error("更新节次失败", zap.Error(err))
		return nil, err
	}

	resp := toPeriodResponse(period)
	return &resp, nil
}

// seedPeriodsIfEmpty 节次表为空时按数量生成默认节次（45 分钟一节，8 点开始）
func (s *termService) seedPeriodsIfEmpty(ctx context.Context, count int, callerID string) error {
	existing, err := s.repo.Period.ListAll(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	start := time.Date(2000, 1, 1, 8, 0, 0, 0, time.UTC)
	periods := make([]model.Period, 0, count)
	for i := 0; i < count; i++ {
		from := start.Add(time.Duration(i) * 50 * time.Minute)
		to := from.Add(45 * time.Minute)
		p := model.Period{
			Idx:       i + 1,
			Name:      fmt.Sprintf("第%d节", i+1),
			StartTime: from.Format("15:04"),
			EndTime:   to.Format("15:04"),
			IsEnabled: true,
		}
		p.CreatedBy = &callerID
		periods = append(periods, p)
	}
	return s.repo.Period.BatchCreate(ctx, periods)
}

// ── 模型转换 ──

func toTermResponse(term *model.Term) dto.TermResponse {
	return dto.TermResponse{
		ID:             term.TermID,
		Name:           term.Name,
		StartDate:      term.StartDate.Format("2006-01-02"),
		EndDate:        term.EndDate.Format("2006-01-02"),
		ActiveWeekdays: append([]int(nil), term.ActiveWeekdays...),
		PeriodCount:    term.PeriodCount,
		IsActive:       term.IsActive,
		CreatedAt:      term.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      term.UpdatedAt.Format(time.RFC3339),
	}
}

func toPeriodResponse(period *model.Period) dto.PeriodResponse {
	return dto.PeriodResponse{
		ID:        period.PeriodID,
		Idx:       period.Idx,
		Name:      period.Name,
		StartTime: period.StartTime,
		EndTime:   period.EndTime,
		IsEnabled: period.IsEnabled,
	}
}

// [自证通过] internal/service/term_service.go
