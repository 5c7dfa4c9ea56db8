package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap"

	"motabe/backend/config"
	"motabe/backend/internal/dto"
	"motabe/backend/internal/model"
	"motabe/backend/internal/repository"
)

func setupTestMessageService() (MessageService, RosterService, *repository.Repository) {
	repo := newMockRepository()
	cfg := &config.Config{Engine: config.EngineConfig{DefaultStaffPerDay: 2, SnapshotLimit: 10}}
	rosterSvc := NewRosterService(cfg, repo, zap.NewNop())
	return NewMessageService(repo, zap.NewNop()), rosterSvc, repo
}

func TestMessageService_Compose_RequiresApproved(t *testing.T) {
	svc, rosterSvc, repo := setupTestMessageService()
	term := seedRosterFixtures(t, repo)
	roster := generateTestRoster(t, rosterSvc, term.TermID, model.RosterVariantDuty)

	_, err := svc.Compose(context.Background(), &dto.ComposeMessagesRequest{
		RosterID: roster.ID,
		Kind:     model.MessageKindAssignment,
	}, "user-admin")
	if !errors.Is(err, ErrRosterNotApproved) {
		t.Errorf("草稿排班应拒绝生成通知，实际=%v", err)
	}
}

func TestMessageService_Compose_OnePerStaff(t *testing.T) {
	svc, rosterSvc, repo := setupTestMessageService()
	term := seedRosterFixtures(t, repo)
	roster := generateTestRoster(t, rosterSvc, term.TermID, model.RosterVariantDuty)
	ctx := context.Background()

	if _, err := rosterSvc.Approve(ctx, roster.ID, "user-admin"); err != nil {
		t.Fatalf("Approve 应成功: %v", err)
	}

	messages, err := svc.Compose(ctx, &dto.ComposeMessagesRequest{
		RosterID: roster.ID,
		Kind:     model.MessageKindAssignment,
	}, "user-admin")
	if err != nil {
		t.Fatalf("Compose 应成功: %v", err)
	}
	// 10 人各排一天，每人一条
	if len(messages) != 10 {
		t.Fatalf("期望10条通知，实际=%d", len(messages))
	}
	for _, msg := range messages {
		if !strings.Contains(msg.Body, "老师您好") {
			t.Errorf("通知正文格式不符，实际=%q", msg.Body)
		}
		if !strings.Contains(msg.Body, "排班已发布") {
			t.Errorf("排班通知应包含发布文案，实际=%q", msg.Body)
		}
	}
}

func TestMessageService_Compose_ReminderVariant(t *testing.T) {
	svc, rosterSvc, repo := setupTestMessageService()
	term := seedRosterFixtures(t, repo)
	roster := generateTestRoster(t, rosterSvc, term.TermID, model.RosterVariantDuty)
	ctx := context.Background()

	if _, err := rosterSvc.Approve(ctx, roster.ID, "user-admin"); err != nil {
		t.Fatalf("Approve 应成功: %v", err)
	}

	messages, err := svc.Compose(ctx, &dto.ComposeMessagesRequest{
		RosterID: roster.ID,
		Kind:     model.MessageKindReminder,
	}, "user-admin")
	if err != nil {
		t.Fatalf("Compose 应成功: %v", err)
	}
	for _, msg := range messages {
		if !strings.Contains(msg.Body, "请准时到岗") {
			t.Errorf("提醒通知应包含到岗文案，实际=%q", msg.Body)
		}
	}
}

func TestMessageService_Compose_SupervisionMentionsLocation(t *testing.T) {
	svc, rosterSvc, repo := setupTestMessageService()
	term := seedRosterFixtures(t, repo)
	roster := generateTestRoster(t, rosterSvc, term.TermID, model.RosterVariantSupervision)
	ctx := context.Background()

	if _, err := rosterSvc.Approve(ctx, roster.ID, "user-admin"); err != nil {
		t.Fatalf("Approve 应成功: %v", err)
	}

	messages, err := svc.Compose(ctx, &dto.ComposeMessagesRequest{
		RosterID: roster.ID,
		Kind:     model.MessageKindAssignment,
	}, "user-admin")
	if err != nil {
		t.Fatalf("Compose 应成功: %v", err)
	}

	withLocation := 0
	for _, msg := range messages {
		if strings.Contains(msg.Body, "东门") || strings.Contains(msg.Body, "操场") {
			withLocation++
		}
	}
	if withLocation != len(messages) {
		t.Errorf("督导通知应全部包含地点名，实际%d/%d", withLocation, len(messages))
	}
}

func TestMessageService_List_RecordsComposeHistory(t *testing.T) {
	svc, rosterSvc, repo := setupTestMessageService()
	term := seedRosterFixtures(t, repo)
	roster := generateTestRoster(t, rosterSvc, term.TermID, model.RosterVariantDuty)
	ctx := context.Background()

	if _, err := rosterSvc.Approve(ctx, roster.ID, "user-admin"); err != nil {
		t.Fatalf("Approve 应成功: %v", err)
	}
	if _, err := svc.Compose(ctx, &dto.ComposeMessagesRequest{
		RosterID: roster.ID,
		Kind:     model.MessageKindAssignment,
	}, "user-admin"); err != nil {
		t.Fatalf("Compose 应成功: %v", err)
	}

	list, total, err := svc.List(ctx, &dto.MessageLogListRequest{Kind: model.MessageKindAssignment})
	if err != nil {
		t.Fatalf("List 应成功: %v", err)
	}
	if total != 10 || len(list) != 10 {
		t.Errorf("期望10条记录，实际total=%d len=%d", total, len(list))
	}
}
