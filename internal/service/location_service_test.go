package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"motabe/backend/internal/dto"
	"motabe/backend/internal/repository"
)

func setupTestLocationService() (LocationService, *repository.Repository) {
	repo := newMockRepository()
	return NewLocationService(repo, zap.NewNop()), repo
}

func TestLocationService_Create_Success(t *testing.T) {
	svc, _ := setupTestLocationService()

	resp, err := svc.Create(context.Background(), &dto.CreateLocationRequest{
		Name:      "东门岗亭",
		IsDefault: true,
	}, "user-admin")
	if err != nil {
		t.Fatalf("Create 应成功: %v", err)
	}
	if resp.Name != "东门岗亭" {
		t.Errorf("期望Name=东门岗亭，实际=%s", resp.Name)
	}
	if !resp.IsDefault {
		t.Error("期望IsDefault=true")
	}
	if !resp.IsActive {
		t.Error("新建地点应默认启用")
	}
}

func TestLocationService_Update_Deactivate(t *testing.T) {
	svc, _ := setupTestLocationService()
	ctx := context.Background()

	created, err := svc.Create(ctx, &dto.CreateLocationRequest{Name: "旧教学楼"}, "user-admin")
	if err != nil {
		t.Fatalf("Create 应成功: %v", err)
	}

	inactive := false
	updated, err := svc.Update(ctx, created.ID, &dto.UpdateLocationRequest{IsActive: &inactive}, "user-admin")
	if err != nil {
		t.Fatalf("Update 应成功: %v", err)
	}
	if updated.IsActive {
		t.Error("期望IsActive=false")
	}
}

func TestLocationService_Update_NotFound(t *testing.T) {
	svc, _ := setupTestLocationService()

	name := "不存在"
	_, err := svc.Update(context.Background(), "loc-missing", &dto.UpdateLocationRequest{Name: &name}, "user-admin")
	if !errors.Is(err, ErrLocationNotFound) {
		t.Errorf("期望ErrLocationNotFound，实际=%v", err)
	}
}

func TestLocationService_Delete_ThenList(t *testing.T) {
	svc, _ := setupTestLocationService()
	ctx := context.Background()

	created, err := svc.Create(ctx, &dto.CreateLocationRequest{Name: "临时岗位"}, "user-admin")
	if err != nil {
		t.Fatalf("Create 应成功: %v", err)
	}
	if err := svc.Delete(ctx, created.ID); err != nil {
		t.Fatalf("Delete 应成功: %v", err)
	}

	list, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("List 应成功: %v", err)
	}
	if len(list) != 0 {
		t.Errorf("删除后期望列表为空，实际=%d", len(list))
	}
}
