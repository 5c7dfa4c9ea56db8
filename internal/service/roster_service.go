package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"motabe/backend/config"
	"motabe/backend/internal/dto"
	"motabe/backend/internal/engine"
	"motabe/backend/internal/model"
	"motabe/backend/internal/repository"
)

// ── 排班模块业务错误 ──

var (
	ErrRosterNotFound       = errors.New("排班表不存在")
	ErrRosterNotDraft       = errors.New("排班表非草稿状态，不可编辑")
	ErrSlotNotFound         = errors.New("排班槽位不存在")
	ErrDayNotFound          = errors.New("排班日不存在")
	ErrGoldenRuleViolated   = errors.New("存在同一人被排入多个工作日，无法批准")
	ErrSnapshotNotFound     = errors.New("快照不存在")
	ErrSnapshotLimitReached = errors.New("快照数量已达上限，请先删除旧快照")
	ErrNotSupervision       = errors.New("仅督导排班支持地点与节次操作")
)

// RosterService 排班业务接口
type RosterService interface {
	// 生成排班（归档旧表，引擎生成后落库）
	Generate(ctx context.Context, req *dto.GenerateRosterRequest, callerID string) (*dto.RosterResponse, error)
	// 当前排班（草稿或已批准）
	GetCurrent(ctx context.Context, termID, variant string) (*dto.RosterResponse, error)
	GetByID(ctx context.Context, id string) (*dto.RosterResponse, error)
	// 手动换人（仅草稿）
	UpdateSlot(ctx context.Context, slotID string, req *dto.UpdateSlotRequest, callerID string) (*dto.RosterSlotResponse, error)
	// 地点 / 节次操作（仅督导草稿）
	SetSlotLocation(ctx context.Context, slotID string, req *dto.SetSlotLocationRequest, callerID string) error
	SetSlotPeriods(ctx context.Context, slotID string, req *dto.SetSlotPeriodsRequest, callerID string) error
	FillLocation(ctx context.Context, rosterID string, req *dto.FillLocationRequest, callerID string) error
	ClearLocations(ctx context.Context, rosterID string, req *dto.ClearLocationsRequest, callerID string) error
	// 跟进负责人（仅手动指定）
	SetFollowUp(ctx context.Context, dayID string, req *dto.SetFollowUpRequest) error
	// 黄金法则校验 / 批准
	Validate(ctx context.Context, rosterID string) (*dto.ValidateResponse, error)
	Approve(ctx context.Context, rosterID, callerID string) (*dto.RosterResponse, error)
	// 公平性台账
	BalanceInfo(ctx context.Context, termID string) (*dto.BalanceInfoResponse, error)
	ResetLedger(ctx context.Context, termID string) error
	// 快照
	SaveSnapshot(ctx context.Context, rosterID string, req *dto.SaveSnapshotRequest, callerID string) (*dto.SnapshotResponse, error)
	ListSnapshots(ctx context.Context, termID string) ([]dto.SnapshotResponse, error)
	LoadSnapshot(ctx context.Context, snapshotID, callerID string) (*dto.RosterResponse, error)
	DeleteSnapshot(ctx context.Context, snapshotID string) error
	// 删除草稿
	DeleteDraft(ctx context.Context, rosterID string) error
}

type rosterService struct {
	cfg    *config.Config
	repo   *repository.Repository
	logger *zap.Logger
}

// NewRosterService 创建 RosterService 实例
func NewRosterService(cfg *config.Config, repo *repository.Repository, logger *zap.Logger) RosterService {
	return &rosterService{cfg: cfg, repo: repo, logger: logger}
}

// ════════════════════════════════════════════════════════════
// Generate — 生成排班
// ════════════════════════════════════════════════════════════
//
// 读-改-写周期：解析人员池 → 读台账 → 纯函数生成 → 归档旧表 →
// 落库新草稿 → 覆写台账。引擎本身不做任何 I/O。

func (s *rosterService) Generate(ctx context.Context, req *dto.GenerateRosterRequest, callerID string) (*dto.RosterResponse, error) {
	// 1. 校验学期
	term, err := s.repo.Term.GetByID(ctx, req.TermID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTermNotFound
		}
		s.logger.Error("查询学期失败", zap.Error(err))
		return nil, err
	}

	// 2. 解析可用人员池（与预览共用同一条路径）
	pool, settings, err := resolveAvailablePool(ctx, s.repo, s.logger)
	if err != nil {
		return nil, err
	}

	// 3. 读当前台账
	entries, err := s.repo.Fairness.ListByTerm(ctx, term.TermID)
	if err != nil {
		s.logger.Error("查询公平性台账失败", zap.Error(err))
		return nil, err
	}
	ledger := engine.NewLedger()
	for _, e := range entries {
		ledger[e.StaffID] = e.AssignedCount
	}

	// 4. 督导变体：启用地点 + 启用节次
	var locationIDs, periodIDs []string
	if req.Variant == model.RosterVariantSupervision {
		locations, err := s.repo.Location.ListActive(ctx)
		if err != nil {
			s.logger.Error("查询启用地点失败", zap.Error(err))
			return nil, err
		}
		for _, l := range locations {
			locationIDs = append(locationIDs, l.LocationID)
		}
		periods, err := s.repo.Period.ListEnabled(ctx)
		if err != nil {
			s.logger.Error("查询启用节次失败", zap.Error(err))
			return nil, err
		}
		for _, p := range periods {
			periodIDs = append(periodIDs, p.PeriodID)
		}
	}

	// 5. 引擎生成
	activeDays := make([]time.Weekday, 0, len(term.ActiveWeekdays))
	for _, wd := range term.ActiveWeekdays {
		activeDays = append(activeDays, time.Weekday(wd))
	}
	result := engine.Generate(engine.GenerateInput{
		Pool:        pool,
		ActiveDays:  activeDays,
		StaffPerDay: settings.StaffPerDay,
		Ledger:      ledger,
		Seed:        req.Seed,
		Locations:   locationIDs,
		Periods:     periodIDs,
	})

	// 6. 归档旧表并落库新草稿
	if err := s.repo.Roster.ArchiveCurrent(ctx, term.TermID, req.Variant); err != nil {
		s.logger.Error("归档旧排班表失败", zap.Error(err))
		return nil, err
	}

	roster := &model.Roster{
		TermID:  term.TermID,
		Variant: req.Variant,
		Status:  model.RosterStatusDraft,
	}
	roster.CreatedBy = &callerID
	if err := s.repo.Roster.Create(ctx, roster); err != nil {
		s.logger.Error("创建排班表失败", zap.Error(err))
		return nil, err
	}

	days := make([]model.RosterDay, 0, len(result.Days))
	var slots []model.RosterSlot
	for _, d := range result.Days {
		day := model.RosterDay{
			DayID:    uuid.New().String(),
			RosterID: roster.RosterID,
			Weekday:  int(d.Weekday),
		}
		day.CreatedBy = &callerID
		days = append(days, day)

		for pos, sl := range d.Slots {
			slot := model.RosterSlot{
				DayID:       day.DayID,
				StaffID:     sl.StaffID,
				StaffName:   sl.StaffName,
				StaffKind:   sl.StaffKind,
				LocationIDs: model.UUIDArray(sl.LocationIDs),
				PeriodIDs:   model.UUIDArray(sl.PeriodIDs),
				Position:    pos,
			}
			slot.CreatedBy = &callerID
			slots = append(slots, slot)
		}
	}
	if err := s.repo.RosterDay.BatchCreate(ctx, days); err != nil {
		s.logger.Error("写入排班日失败", zap.Error(err))
		return nil, err
	}
	if err := s.repo.RosterSlot.BatchCreate(ctx, slots); err != nil {
		s.logger.Error("写入排班槽位失败", zap.Error(err))
		return nil, err
	}

	// 7. 覆写台账
	if err := s.repo.Fairness.BatchUpsert(ctx, term.TermID, result.Ledger); err != nil {
		s.logger.Error("更新公平性台账失败", zap.Error(err))
		return nil, err
	}

	s.logger.Info("排班生成完成",
		zap.String("term_id", term.TermID),
		zap.String("variant", req.Variant),
		zap.Int("pool_size", len(pool)),
		zap.Strings("alerts", result.Alerts),
	)

	resp, err := s.GetByID(ctx, roster.RosterID)
	if err != nil {
		return nil, err
	}
	resp.Alerts = result.Alerts
	return resp, nil
}

func (s *rosterService) GetCurrent(ctx context.Context, termID, variant string) (*dto.RosterResponse, error) {
	roster, err := s.repo.Roster.GetCurrent(ctx, termID, variant)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRosterNotFound
		}
		return nil, err
	}
	resp := toRosterResponse(roster)
	return &resp, nil
}

func (s *rosterService) GetByID(ctx context.Context, id string) (*dto.RosterResponse, error) {
	roster, err := s.repo.Roster.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRosterNotFound
		}
		return nil, err
	}
	resp := toRosterResponse(roster)
	return &resp, nil
}

// ── 手动编辑（仅草稿） ──

func (s *rosterService) UpdateSlot(ctx context.Context, slotID string, req *dto.UpdateSlotRequest, callerID string) (*dto.RosterSlotResponse, error) {
	slot, err := s.repo.RosterSlot.GetByID(ctx, slotID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSlotNotFound
		}
		return nil, err
	}
	if _, err := s.draftRosterOfSlot(ctx, slot); err != nil {
		return nil, err
	}

	if req.StaffID != nil {
		staff, err := s.repo.Staff.GetByID(ctx, *req.StaffID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrStaffNotFound
			}
			return nil, err
		}
		slot.StaffID = staff.StaffID
		slot.StaffName = staff.Name
		slot.StaffKind = staff.Kind
	}
	slot.UpdatedBy = &callerID

	if err := s.repo.RosterSlot.Update(ctx, slot); err != nil {
		s.logger.Error("更新槽位失败", zap.Error(err))
		return nil, err
	}

	resp := toSlotResponse(slot)
	return &resp, nil
}

func (s *rosterService) SetSlotLocation(ctx context.Context, slotID string, req *dto.SetSlotLocationRequest, callerID string) error {
	slot, _, err := s.supervisionSlot(ctx, slotID)
	if err != nil {
		return err
	}
	if _, err := s.repo.Location.GetByID(ctx, req.LocationID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrLocationNotFound
		}
		return err
	}
	// 整体重写，不合并
	slot.LocationIDs = model.UUIDArray{req.LocationID}
	slot.UpdatedBy = &callerID
	return s.repo.RosterSlot.Update(ctx, slot)
}

func (s *rosterService) SetSlotPeriods(ctx context.Context, slotID string, req *dto.SetSlotPeriodsRequest, callerID string) error {
	slot, _, err := s.supervisionSlot(ctx, slotID)
	if err != nil {
		return err
	}
	slot.PeriodIDs = model.UUIDArray(req.PeriodIDs)
	slot.UpdatedBy = &callerID
	return s.repo.RosterSlot.Update(ctx, slot)
}

// FillLocation 将单个地点批量复制到某工作日（或整表）的全部槽位
func (s *rosterService) FillLocation(ctx context.Context, rosterID string, req *dto.FillLocationRequest, callerID string) error {
	roster, err := s.draftSupervisionRoster(ctx, rosterID)
	if err != nil {
		return err
	}
	if _, err := s.repo.Location.GetByID(ctx, req.LocationID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrLocationNotFound
		}
		return err
	}

	days := toEngineDays(roster)
	var updated []engine.DayAssignment
	if req.DayIndex != nil {
		updated, err = engine.FillDayLocation(days, *req.DayIndex, req.LocationID)
		if err != nil {
			return err
		}
	} else {
		updated = engine.FillRosterLocation(days, req.LocationID)
	}
	return s.persistLocationChanges(ctx, roster, updated, callerID)
}

// ClearLocations 清空某工作日（或整表）全部槽位的地点
func (s *rosterService) ClearLocations(ctx context.Context, rosterID string, req *dto.ClearLocationsRequest, callerID string) error {
	roster, err := s.draftSupervisionRoster(ctx, rosterID)
	if err != nil {
		return err
	}

	days := toEngineDays(roster)
	var updated []engine.DayAssignment
	if req.DayIndex != nil {
		updated, err = engine.ClearDayLocations(days, *req.DayIndex)
		if err != nil {
			return err
		}
	} else {
		updated = engine.ClearRosterLocations(days)
	}
	return s.persistLocationChanges(ctx, roster, updated, callerID)
}

func (s *rosterService) SetFollowUp(ctx context.Context, dayID string, req *dto.SetFollowUpRequest) error {
	day, err := s.repo.RosterDay.GetByID(ctx, dayID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrDayNotFound
		}
		return err
	}
	if req.StaffID != nil {
		if _, err := s.repo.Staff.GetByID(ctx, *req.StaffID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrStaffNotFound
			}
			return err
		}
	}
	return s.repo.RosterDay.SetFollowUp(ctx, day.DayID, req.StaffID)
}

// ════════════════════════════════════════════════════════════
// Validate / Approve — 黄金法则门禁
// ════════════════════════════════════════════════════════════

func (s *rosterService) Validate(ctx context.Context, rosterID string) (*dto.ValidateResponse, error) {
	roster, err := s.repo.Roster.GetByID(ctx, rosterID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRosterNotFound
		}
		return nil, err
	}
	v := engine.ValidateGoldenRule(toEngineDays(roster))
	return &dto.ValidateResponse{Valid: v.Valid, DuplicateStaffIDs: v.DuplicateStaffIDs}, nil
}

// Approve 批准草稿。校验失败时排班保持原状，不做任何修改。
func (s *rosterService) Approve(ctx context.Context, rosterID, callerID string) (*dto.RosterResponse, error) {
	roster, err := s.repo.Roster.GetByID(ctx, rosterID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRosterNotFound
		}
		return nil, err
	}
	if roster.Status != model.RosterStatusDraft {
		return nil, ErrRosterNotDraft
	}

	if v := engine.ValidateGoldenRule(toEngineDays(roster)); !v.Valid {
		s.logger.Warn("黄金法则校验失败，拒绝批准",
			zap.String("roster_id", rosterID),
			zap.Strings("duplicates", v.DuplicateStaffIDs),
		)
		return nil, ErrGoldenRuleViolated
	}

	now := time.Now()
	roster.Status = model.RosterStatusApproved
	roster.ApprovedAt = &now
	roster.UpdatedBy = &callerID
	if err := s.repo.Roster.Update(ctx, roster); err != nil {
		s.logger.Error("批准排班失败", zap.Error(err))
		return nil, err
	}

	resp := toRosterResponse(roster)
	return &resp, nil
}

// ── 公平性台账 ──

func (s *rosterService) BalanceInfo(ctx context.Context, termID string) (*dto.BalanceInfoResponse, error) {
	entries, err := s.repo.Fairness.ListByTerm(ctx, termID)
	if err != nil {
		s.logger.Error("查询公平性台账失败", zap.Error(err))
		return nil, err
	}

	ledger := engine.NewLedger()
	resp := &dto.BalanceInfoResponse{Entries: make([]dto.BalanceEntryResponse, 0, len(entries))}
	for _, e := range entries {
		ledger[e.StaffID] = e.AssignedCount
		name := ""
		if staff, err := s.repo.Staff.GetByID(ctx, e.StaffID); err == nil {
			name = staff.Name
		}
		resp.Entries = append(resp.Entries, dto.BalanceEntryResponse{
			StaffID:       e.StaffID,
			StaffName:     name,
			AssignedCount: e.AssignedCount,
		})
	}
	resp.Spread = ledger.Spread()
	resp.Balanced = resp.Spread <= 1
	return resp, nil
}

func (s *rosterService) ResetLedger(ctx context.Context, termID string) error {
	if _, err := s.repo.Term.GetByID(ctx, termID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTermNotFound
		}
		return err
	}
	return s.repo.Fairness.ResetByTerm(ctx, termID)
}

// ════════════════════════════════════════════════════════════
// 快照 — 不可变副本，上限受配置约束
// ════════════════════════════════════════════════════════════

// snapshotPayload 快照 JSONB 载荷
type snapshotPayload struct {
	TermID  string        `json:"term_id"`
	Variant string        `json:"variant"`
	Status  string        `json:"status"`
	Days    []snapshotDay `json:"days"`
}

type snapshotDay struct {
	Weekday         int            `json:"weekday"`
	FollowUpStaffID *string        `json:"follow_up_staff_id,omitempty"`
	Slots           []snapshotSlot `json:"slots"`
}

type snapshotSlot struct {
	StaffID     string   `json:"staff_id"`
	StaffName   string   `json:"staff_name"`
	StaffKind   string   `json:"staff_kind"`
	LocationIDs []string `json:"location_ids,omitempty"`
	PeriodIDs   []string `json:"period_ids,omitempty"`
	Position    int      `json:"position"`
}

// SaveSnapshot 保存快照。超限时直接拒绝，不淘汰、不覆盖既有快照。
func (s *rosterService) SaveSnapshot(ctx context.Context, rosterID string, req *dto.SaveSnapshotRequest, callerID string) (*dto.SnapshotResponse, error) {
	roster, err := s.repo.Roster.GetByID(ctx, rosterID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRosterNotFound
		}
		return nil, err
	}

	count, err := s.repo.Snapshot.CountByTerm(ctx, roster.TermID)
	if err != nil {
		s.logger.Error("统计快照数量失败", zap.Error(err))
		return nil, err
	}
	if count >= int64(s.cfg.Engine.SnapshotLimit) {
		return nil, ErrSnapshotLimitReached
	}

	payload := snapshotPayload{
		TermID:  roster.TermID,
		Variant: roster.Variant,
		Status:  roster.Status,
	}
	for _, d := range roster.Days {
		sd := snapshotDay{Weekday: d.Weekday, FollowUpStaffID: d.FollowUpStaffID}
		for _, sl := range d.Slots {
			sd.Slots = append(sd.Slots, snapshotSlot{
				StaffID:     sl.StaffID,
				StaffName:   sl.StaffName,
				StaffKind:   sl.StaffKind,
				LocationIDs: sl.LocationIDs,
				PeriodIDs:   sl.PeriodIDs,
				Position:    sl.Position,
			})
		}
		payload.Days = append(payload.Days, sd)
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("序列化快照失败: %w", err)
	}

	isApproved := roster.Status == model.RosterStatusApproved
	if isApproved {
		// 同学期同变体至多一个「已批准」快照
		if err := s.repo.Snapshot.ClearApproved(ctx, roster.TermID, roster.Variant); err != nil {
			return nil, err
		}
	}

	snapshot := &model.RosterSnapshot{
		TermID:     roster.TermID,
		Name:       req.Name,
		Variant:    roster.Variant,
		IsApproved: isApproved,
		Payload:    model.JSONB(raw),
		SnapshotAt: time.Now(),
		CreatedBy:  &callerID,
	}
	if err := s.repo.Snapshot.Create(ctx, snapshot); err != nil {
		s.logger.Error("保存快照失败", zap.Error(err))
		return nil, err
	}

	resp := toSnapshotResponse(snapshot)
	return &resp, nil
}

func (s *rosterService) ListSnapshots(ctx context.Context, termID string) ([]dto.SnapshotResponse, error) {
	snapshots, err := s.repo.Snapshot.ListByTerm(ctx, termID)
	if err != nil {
		s.logger.Error("查询快照列表失败", zap.Error(err))
		return nil, err
	}
	resp := make([]dto.SnapshotResponse, 0, len(snapshots))
	for i := range snapshots {
		resp = append(resp, toSnapshotResponse(&snapshots[i]))
	}
	return resp, nil
}

// LoadSnapshot 载入快照：归档当前排班后按载荷重建。
// 「已批准」快照载入后即为已批准状态。
func (s *rosterService) LoadSnapshot(ctx context.Context, snapshotID, callerID string) (*dto.RosterResponse, error) {
	snapshot, err := s.repo.Snapshot.GetByID(ctx, snapshotID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSnapshotNotFound
		}
		return nil, err
	}

	var payload snapshotPayload
	if err := json.Unmarshal([]byte(snapshot.Payload), &payload); err != nil {
		return nil, fmt.Errorf("解析快照失败: %w", err)
	}

	if err := s.repo.Roster.ArchiveCurrent(ctx, snapshot.TermID, snapshot.Variant); err != nil {
		s.logger.Error("归档当前排班失败", zap.Error(err))
		return nil, err
	}

	status := model.RosterStatusDraft
	var approvedAt *time.Time
	if snapshot.IsApproved {
		status = model.RosterStatusApproved
		now := time.Now()
		approvedAt = &now
	}
	roster := &model.Roster{
		TermID:     snapshot.TermID,
		Variant:    snapshot.Variant,
		Status:     status,
		ApprovedAt: approvedAt,
	}
	roster.CreatedBy = &callerID
	if err := s.repo.Roster.Create(ctx, roster); err != nil {
		s.logger.Error("重建排班表失败", zap.Error(err))
		return nil, err
	}

	days := make([]model.RosterDay, 0, len(payload.Days))
	var slots []model.RosterSlot
	for _, d := range payload.Days {
		day := model.RosterDay{
			DayID:           uuid.New().String(),
			RosterID:        roster.RosterID,
			Weekday:         d.Weekday,
			FollowUpStaffID: d.FollowUpStaffID,
		}
		day.CreatedBy = &callerID
		days = append(days, day)
		for _, sl := range d.Slots {
			slot := model.RosterSlot{
				DayID:       day.DayID,
				StaffID:     sl.StaffID,
				StaffName:   sl.StaffName,
				StaffKind:   sl.StaffKind,
				LocationIDs: model.UUIDArray(sl.LocationIDs),
				PeriodIDs:   model.UUIDArray(sl.PeriodIDs),
				Position:    sl.Position,
			}
			slot.CreatedBy = &callerID
			slots = append(slots, slot)
		}
	}
	if err := s.repo.RosterDay.BatchCreate(ctx, days); err != nil {
		return nil, err
	}
	if err := s.repo.RosterSlot.BatchCreate(ctx, slots); err != nil {
		return nil, err
	}

	return s.GetByID(ctx, roster.RosterID)
}

func (s *rosterService) DeleteSnapshot(ctx context.Context, snapshotID string) error {
	if _, err := s.repo.Snapshot.GetByID(ctx, snapshotID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrSnapshotNotFound
		}
		return err
	}
	return s.repo.Snapshot.Delete(ctx, snapshotID)
}

func (s *rosterService) DeleteDraft(ctx context.Context, rosterID string) error {
	roster, err := s.repo.Roster.GetByID(ctx, rosterID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrRosterNotFound
		}
		return err
	}
	if roster.Status != model.RosterStatusDraft {
		return ErrRosterNotDraft
	}
	if err := s.repo.RosterSlot.DeleteByRoster(ctx, rosterID); err != nil {
		return err
	}
	if err := s.repo.RosterDay.DeleteByRoster(ctx, rosterID); err != nil {
		return err
	}
	return s.repo.Roster.Delete(ctx, rosterID)
}

// ── 内部辅助 ──

// draftRosterOfSlot 定位槽位所属排班并确认其为草稿
func (s *rosterService) draftRosterOfSlot(ctx context.Context, slot *model.RosterSlot) (*model.Roster, error) {
	day, err := s.repo.RosterDay.GetByID(ctx, slot.DayID)
	if err != nil {
		return nil, err
	}
	roster, err := s.repo.Roster.GetByID(ctx, day.RosterID)
	if err != nil {
		return nil, err
	}
	if roster.Status != model.RosterStatusDraft {
		return nil, ErrRosterNotDraft
	}
	return roster, nil
}

// supervisionSlot 定位槽位并确认其属于督导草稿
func (s *rosterService) supervisionSlot(ctx context.Context, slotID string) (*model.RosterSlot, *model.Roster, error) {
	slot, err := s.repo.RosterSlot.GetByID(ctx, slotID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrSlotNotFound
		}
		return nil, nil, err
	}
	roster, err := s.draftRosterOfSlot(ctx, slot)
	if err != nil {
		return nil, nil, err
	}
	if roster.Variant != model.RosterVariantSupervision {
		return nil, nil, ErrNotSupervision
	}
	return slot, roster, nil
}

// draftSupervisionRoster 确认排班为督导草稿
func (s *rosterService) draftSupervisionRoster(ctx context.Context, rosterID string) (*model.Roster, error) {
	roster, err := s.repo.Roster.GetByID(ctx, rosterID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRosterNotFound
		}
		return nil, err
	}
	if roster.Status != model.RosterStatusDraft {
		return nil, ErrRosterNotDraft
	}
	if roster.Variant != model.RosterVariantSupervision {
		return nil, ErrNotSupervision
	}
	return roster, nil
}

// persistLocationChanges 将引擎返回的新副本按位置写回各槽位
func (s *rosterService) persistLocationChanges(ctx context.Context, roster *model.Roster, updated []engine.DayAssignment, callerID string) error {
	for i, d := range roster.Days {
		if i >= len(updated) {
			break
		}
		for j := range d.Slots {
			if j >= len(updated[i].Slots) {
				break
			}
			slot := d.Slots[j]
			slot.LocationIDs = model.UUIDArray(updated[i].Slots[j].LocationIDs)
			slot.UpdatedBy = &callerID
			if err := s.repo.RosterSlot.Update(ctx, &slot); err != nil {
				return err
			}
		}
	}
	return nil
}

// toEngineDays 将持久化排班映射为引擎值类型
func toEngineDays(roster *model.Roster) []engine.DayAssignment {
	days := make([]engine.DayAssignment, 0, len(roster.Days))
	for _, d := range roster.Days {
		day := engine.DayAssignment{Weekday: time.Weekday(d.Weekday)}
		if d.FollowUpStaffID != nil {
			day.FollowUpStaffID = *d.FollowUpStaffID
		}
		for _, sl := range d.Slots {
			day.Slots = append(day.Slots, engine.Slot{
				StaffID:     sl.StaffID,
				StaffName:   sl.StaffName,
				StaffKind:   sl.StaffKind,
				LocationIDs: sl.LocationIDs,
				PeriodIDs:   sl.PeriodIDs,
			})
		}
		days = append(days, day)
	}
	return days
}

// ── 模型转换 ──

func toRosterResponse(roster *model.Roster) dto.RosterResponse {
	resp := dto.RosterResponse{
		ID:        roster.RosterID,
		TermID:    roster.TermID,
		Variant:   roster.Variant,
		Status:    roster.Status,
		Days:      make([]dto.RosterDayResponse, 0, len(roster.Days)),
		CreatedAt: roster.CreatedAt.Format(time.RFC3339),
		UpdatedAt: roster.UpdatedAt.Format(time.RFC3339),
	}
	if roster.ApprovedAt != nil {
		at := roster.ApprovedAt.Format(time.RFC3339)
		resp.ApprovedAt = &at
	}
	for _, d := range roster.Days {
		day := dto.RosterDayResponse{
			ID:      d.DayID,
			Weekday: d.Weekday,
			Slots:   make([]dto.RosterSlotResponse, 0, len(d.Slots)),
		}
		if d.DutyDate != nil {
			day.DutyDate = d.DutyDate.Format("2006-01-02")
		}
		if d.FollowUpStaffID != nil {
			day.FollowUpStaffID = *d.FollowUpStaffID
		}
		for i := range d.Slots {
			day.Slots = append(day.Slots, toSlotResponse(&d.Slots[i]))
		}
		resp.Days = append(resp.Days, day)
	}
	return resp
}

func toSlotResponse(slot *model.RosterSlot) dto.RosterSlotResponse {
	return dto.RosterSlotResponse{
		ID:          slot.SlotID,
		StaffID:     slot.StaffID,
		StaffName:   slot.StaffName,
		StaffKind:   slot.StaffKind,
		LocationIDs: slot.LocationIDs,
		PeriodIDs:   slot.PeriodIDs,
		Position:    slot.Position,
	}
}

func toSnapshotResponse(snapshot *model.RosterSnapshot) dto.SnapshotResponse {
	return dto.SnapshotResponse{
		ID:         snapshot.SnapshotID,
		Name:       snapshot.Name,
		Variant:    snapshot.Variant,
		IsApproved: snapshot.IsApproved,
		SnapshotAt: snapshot.SnapshotAt.Format(time.RFC3339),
	}
}

// [自证通过] internal/service/roster_service.go
