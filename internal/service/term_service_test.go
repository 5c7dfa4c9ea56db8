package service

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"go.uber.org/zap"

	"motabe/backend/internal/dto"
	"motabe/backend/internal/repository"
)

func setupTestTermService() (TermService, *repository.Repository) {
	repo := newMockRepository()
	return NewTermService(repo, zap.NewNop()), repo
}

func TestTermService_Create_DefaultWeekdays(t *testing.T) {
	svc, _ := setupTestTermService()

	resp, err := svc.Create(context.Background(), &dto.CreateTermRequest{
		Name:      "2026秋季学期",
		StartDate: "2026-09-01",
		EndDate:   "2027-01-20",
	}, "user-admin")
	if err != nil {
		t.Fatalf("Create 应成功: %v", err)
	}
	if !reflect.DeepEqual(resp.ActiveWeekdays, []int{0, 1, 2, 3, 4}) {
		t.Errorf("缺省工作日应为周日至周四，实际=%v", resp.ActiveWeekdays)
	}
	if resp.PeriodCount != 7 {
		t.Errorf("期望PeriodCount=7，实际=%d", resp.PeriodCount)
	}
	if resp.IsActive {
		t.Error("新建学期不应自动激活")
	}
}

func TestTermService_Create_SeedsDefaultPeriods(t *testing.T) {
	svc, _ := setupTestTermService()
	ctx := context.Background()

	if _, err := svc.Create(ctx, &dto.CreateTermRequest{
		Name:        "2026秋季学期",
		StartDate:   "2026-09-01",
		EndDate:     "2027-01-20",
		PeriodCount: 3,
	}, "user-admin"); err != nil {
		t.Fatalf("Create 应成功: %v", err)
	}

	periods, err := svc.ListPeriods(ctx)
	if err != nil {
		t.Fatalf("ListPeriods 应成功: %v", err)
	}
	if len(periods) != 3 {
		t.Fatalf("期望初始化3个节次，实际=%d", len(periods))
	}
	if periods[0].Name != "第1节" || periods[0].StartTime != "08:00" || periods[0].EndTime != "08:45" {
		t.Errorf("首节次期望 第1节 08:00-08:45，实际=%s %s-%s",
			periods[0].Name, periods[0].StartTime, periods[0].EndTime)
	}
	if periods[1].StartTime != "08:50" {
		t.Errorf("第二节次期望08:50开始，实际=%s", periods[1].StartTime)
	}
}

func TestTermService_Create_DateInverted(t *testing.T) {
	svc, _ := setupTestTermService()

	_, err := svc.Create(context.Background(), &dto.CreateTermRequest{
		Name:      "倒置学期",
		StartDate: "2027-01-20",
		EndDate:   "2026-09-01",
	}, "user-admin")
	if !errors.Is(err, ErrTermDateInverted) {
		t.Errorf("期望ErrTermDateInverted，实际=%v", err)
	}
}

func TestTermService_SetActive_SwitchesTerm(t *testing.T) {
	svc, _ := setupTestTermService()
	ctx := context.Background()

	first, err := svc.Create(ctx, &dto.CreateTermRequest{
		Name: "2026春季学期", StartDate: "2026-03-01", EndDate: "2026-07-10",
	}, "user-admin")
	if err != nil {
		t.Fatalf("Create 应成功: %v", err)
	}
	second, err := svc.Create(ctx, &dto.CreateTermRequest{
		Name: "2026秋季学期", StartDate: "2026-09-01", EndDate: "2027-01-20",
	}, "user-admin")
	if err != nil {
		t.Fatalf("Create 应成功: %v", err)
	}

	if err := svc.SetActive(ctx, first.ID); err != nil {
		t.Fatalf("SetActive 应成功: %v", err)
	}
	if err := svc.SetActive(ctx, second.ID); err != nil {
		t.Fatalf("SetActive 应成功: %v", err)
	}

	active, err := svc.GetActive(ctx)
	if err != nil {
		t.Fatalf("GetActive 应成功: %v", err)
	}
	if active.ID != second.ID {
		t.Errorf("期望激活学期=%s，实际=%s", second.ID, active.ID)
	}
}

func TestTermService_GetActive_NoneActive(t *testing.T) {
	svc, _ := setupTestTermService()

	_, err := svc.GetActive(context.Background())
	if !errors.Is(err, ErrNoActiveTerm) {
		t.Errorf("期望ErrNoActiveTerm，实际=%v", err)
	}
}

func TestTermService_UpdatePeriod_Disable(t *testing.T) {
	svc, _ := setupTestTermService()
	ctx := context.Background()

	if _, err := svc.Create(ctx, &dto.CreateTermRequest{
		Name: "2026秋季学期", StartDate: "2026-09-01", EndDate: "2027-01-20", PeriodCount: 2,
	}, "user-admin"); err != nil {
		t.Fatalf("Create 应成功: %v", err)
	}
	periods, err := svc.ListPeriods(ctx)
	if err != nil {
		t.Fatalf("ListPeriods 应成功: %v", err)
	}

	disabled := false
	updated, err := svc.UpdatePeriod(ctx, periods[0].ID, &dto.UpdatePeriodRequest{IsEnabled: &disabled}, "user-admin")
	if err != nil {
		t.Fatalf("UpdatePeriod 应成功: %v", err)
	}
	if updated.IsEnabled {
		t.Error("期望节次被停用")
	}
}

func TestTermService_UpdatePeriod_NotFound(t *testing.T) {
	svc, _ := setupTestTermService()

	name := "午休"
	_, err := svc.UpdatePeriod(context.Background(), "period-missing", &dto.UpdatePeriodRequest{Name: &name}, "user-admin")
	if !errors.Is(err, ErrPeriodNotFound) {
		t.Errorf("期望ErrPeriodNotFound，实际=%v", err)
	}
}
