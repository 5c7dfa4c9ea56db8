package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"motabe/backend/config"
	"motabe/backend/internal/dto"
	"motabe/backend/internal/model"
	"motabe/backend/internal/repository"
)

func setupTestStaffService() (StaffService, *repository.Repository) {
	repo := newMockRepository()
	cfg := &config.Config{Engine: config.EngineConfig{DefaultStaffPerDay: 2, SnapshotLimit: 10}}
	return NewStaffService(cfg, repo, zap.NewNop()), repo
}

func intPtr(v int) *int { return &v }

func TestStaffService_Create_Success(t *testing.T) {
	svc, _ := setupTestStaffService()

	resp, err := svc.Create(context.Background(), &dto.CreateStaffRequest{
		Name:       "王老师",
		Kind:       model.StaffKindTeacher,
		LastPeriod: intPtr(5),
	}, "user-admin")
	if err != nil {
		t.Fatalf("Create 应成功: %v", err)
	}
	if resp.Name != "王老师" {
		t.Errorf("期望Name=王老师，实际=%s", resp.Name)
	}
	if !resp.IsActive {
		t.Error("新建教职工应默认启用")
	}
}

func TestStaffService_Create_TeacherNeedsLastPeriod(t *testing.T) {
	svc, _ := setupTestStaffService()

	_, err := svc.Create(context.Background(), &dto.CreateStaffRequest{
		Name: "缺节次老师",
		Kind: model.StaffKindTeacher,
	}, "user-admin")
	if !errors.Is(err, ErrTeacherNeedPeriod) {
		t.Errorf("期望ErrTeacherNeedPeriod，实际=%v", err)
	}
}

func TestStaffService_GetByID_NotFound(t *testing.T) {
	svc, _ := setupTestStaffService()

	_, err := svc.GetByID(context.Background(), "staff-missing")
	if !errors.Is(err, ErrStaffNotFound) {
		t.Errorf("期望ErrStaffNotFound，实际=%v", err)
	}
}

func TestStaffService_Update_Deactivate(t *testing.T) {
	svc, _ := setupTestStaffService()
	ctx := context.Background()

	created, err := svc.Create(ctx, &dto.CreateStaffRequest{
		Name: "李主任",
		Kind: model.StaffKindAdmin,
		Role: model.RoleDeputy,
	}, "user-admin")
	if err != nil {
		t.Fatalf("Create 应成功: %v", err)
	}

	inactive := false
	updated, err := svc.Update(ctx, created.ID, &dto.UpdateStaffRequest{IsActive: &inactive}, "user-admin")
	if err != nil {
		t.Fatalf("Update 应成功: %v", err)
	}
	if updated.IsActive {
		t.Error("期望IsActive=false")
	}
}

func TestStaffService_Delete_CascadesExclusionRule(t *testing.T) {
	svc, repo := setupTestStaffService()
	ctx := context.Background()

	created, err := svc.Create(ctx, &dto.CreateStaffRequest{
		Name: "张文员",
		Kind: model.StaffKindAdmin,
		Role: model.RoleClerk,
	}, "user-admin")
	if err != nil {
		t.Fatalf("Create 应成功: %v", err)
	}
	if err := svc.SetExclusion(ctx, created.ID, &dto.SetExclusionRequest{IsExcluded: true}, "user-admin"); err != nil {
		t.Fatalf("SetExclusion 应成功: %v", err)
	}

	if err := svc.Delete(ctx, created.ID); err != nil {
		t.Fatalf("Delete 应成功: %v", err)
	}
	if _, err := repo.ExclusionRule.GetByStaffID(ctx, created.ID); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("删除人员后排除规则应随之删除，实际=%v", err)
	}
}

func TestStaffService_List_MarksExcluded(t *testing.T) {
	svc, _ := setupTestStaffService()
	ctx := context.Background()

	a, err := svc.Create(ctx, &dto.CreateStaffRequest{Name: "甲", Kind: model.StaffKindAdmin, Role: model.RoleClerk}, "user-admin")
	if err != nil {
		t.Fatalf("Create 应成功: %v", err)
	}
	if _, err := svc.Create(ctx, &dto.CreateStaffRequest{Name: "乙", Kind: model.StaffKindAdmin, Role: model.RoleClerk}, "user-admin"); err != nil {
		t.Fatalf("Create 应成功: %v", err)
	}
	if err := svc.SetExclusion(ctx, a.ID, &dto.SetExclusionRequest{IsExcluded: true}, "user-admin"); err != nil {
		t.Fatalf("SetExclusion 应成功: %v", err)
	}

	list, total, err := svc.List(ctx, &dto.StaffListRequest{})
	if err != nil {
		t.Fatalf("List 应成功: %v", err)
	}
	if total != 2 {
		t.Errorf("期望total=2，实际=%d", total)
	}
	for _, item := range list {
		want := item.ID == a.ID
		if item.IsExcluded != want {
			t.Errorf("人员 %s 期望IsExcluded=%v，实际=%v", item.Name, want, item.IsExcluded)
		}
	}
}

func TestStaffService_PoolPreview_AppliesRules(t *testing.T) {
	svc, _ := setupTestStaffService()
	ctx := context.Background()

	// 4 名教师 + 文员、副校长、保安各 1；默认设置排除副校长与保安
	for i := 1; i <= 4; i++ {
		if _, err := svc.Create(ctx, &dto.CreateStaffRequest{
			Name:       fmt.Sprintf("教师%d", i),
			Kind:       model.StaffKindTeacher,
			LastPeriod: intPtr(i),
		}, "user-admin"); err != nil {
			t.Fatalf("创建教师失败: %v", err)
		}
	}
	if _, err := svc.Create(ctx, &dto.CreateStaffRequest{Name: "文员", Kind: model.StaffKindAdmin, Role: model.RoleClerk}, "user-admin"); err != nil {
		t.Fatalf("创建文员失败: %v", err)
	}
	if _, err := svc.Create(ctx, &dto.CreateStaffRequest{Name: "副校长", Kind: model.StaffKindAdmin, Role: model.RoleVicePrincipal}, "user-admin"); err != nil {
		t.Fatalf("创建副校长失败: %v", err)
	}
	if _, err := svc.Create(ctx, &dto.CreateStaffRequest{Name: "保安", Kind: model.StaffKindAdmin, Role: model.RoleGuard}, "user-admin"); err != nil {
		t.Fatalf("创建保安失败: %v", err)
	}

	// 再用排除规则剔除一名教师
	staffList, _, err := svc.List(ctx, &dto.StaffListRequest{Kind: model.StaffKindTeacher})
	if err != nil {
		t.Fatalf("List 应成功: %v", err)
	}
	if err := svc.SetExclusion(ctx, staffList[0].ID, &dto.SetExclusionRequest{IsExcluded: true}, "user-admin"); err != nil {
		t.Fatalf("SetExclusion 应成功: %v", err)
	}

	preview, err := svc.PoolPreview(ctx)
	if err != nil {
		t.Fatalf("PoolPreview 应成功: %v", err)
	}
	if preview.TeacherCount != 3 {
		t.Errorf("期望TeacherCount=3，实际=%d", preview.TeacherCount)
	}
	if preview.AdminCount != 1 {
		t.Errorf("期望AdminCount=1（副校长/保安被默认排除），实际=%d", preview.AdminCount)
	}
	if len(preview.Staff) != 4 {
		t.Errorf("期望可用池=4人，实际=%d", len(preview.Staff))
	}
	// 无激活学期时按 5 个工作日估算
	if preview.SuggestedPerDay != 1 {
		t.Errorf("期望SuggestedPerDay=1，实际=%d", preview.SuggestedPerDay)
	}
}
