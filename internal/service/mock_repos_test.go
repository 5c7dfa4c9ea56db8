package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"gorm.io/gorm"

	"motabe/backend/internal/model"
	"motabe/backend/internal/repository"
)

// ── Mock UserRepository ──

type mockUserRepo struct {
	users map[string]*model.User
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[string]*model.User)}
}

func (m *mockUserRepo) Create(_ context.Context, user *model.User) error {
	if user.UserID == "" {
		user.UserID = "user-" + user.Username
	}
	m.users[user.UserID] = user
	return nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id string) (*model.User, error) {
	if u, ok := m.users[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) GetByUsername(_ context.Context, username string) (*model.User, error) {
	for _, u := range m.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) Update(_ context.Context, user *model.User) error {
	m.users[user.UserID] = user
	return nil
}

func (m *mockUserRepo) Delete(_ context.Context, id string) error {
	delete(m.users, id)
	return nil
}

func (m *mockUserRepo) List(_ context.Context, _, _ int) ([]model.User, int64, error) {
	var result []model.User
	for _, u := range m.users {
		result = append(result, *u)
	}
	return result, int64(len(result)), nil
}

func (m *mockUserRepo) Count(_ context.Context) (int64, error) {
	return int64(len(m.users)), nil
}

// ── Mock StaffRepository ──

type mockStaffRepo struct {
	staff map[string]*model.Staff
}

func newMockStaffRepo() *mockStaffRepo {
	return &mockStaffRepo{staff: make(map[string]*model.Staff)}
}

func (m *mockStaffRepo) Create(_ context.Context, staff *model.Staff) error {
	if staff.StaffID == "" {
		staff.StaffID = "staff-" + staff.Name
	}
	m.staff[staff.StaffID] = staff
	return nil
}

func (m *mockStaffRepo) GetByID(_ context.Context, id string) (*model.Staff, error) {
	if s, ok := m.staff[id]; ok {
		return s, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockStaffRepo) Update(_ context.Context, staff *model.Staff) error {
	m.staff[staff.StaffID] = staff
	return nil
}

func (m *mockStaffRepo) Delete(_ context.Context, id string) error {
	delete(m.staff, id)
	return nil
}

func (m *mockStaffRepo) List(_ context.Context, filter repository.StaffFilter, _, _ int) ([]model.Staff, int64, error) {
	var result []model.Staff
	for _, s := range m.staff {
		if filter.Kind != "" && s.Kind != filter.Kind {
			continue
		}
		if filter.IsActive != nil && s.IsActive != *filter.IsActive {
			continue
		}
		if filter.Keyword != "" && !strings.Contains(s.Name, filter.Keyword) {
			continue
		}
		result = append(result, *s)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].StaffID < result[j].StaffID })
	return result, int64(len(result)), nil
}

func (m *mockStaffRepo) ListActive(_ context.Context) ([]model.Staff, error) {
	var result []model.Staff
	for _, s := range m.staff {
		if s.IsActive {
			result = append(result, *s)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].StaffID < result[j].StaffID })
	return result, nil
}

// ── Mock ExclusionRuleRepository ──

type mockExclusionRuleRepo struct {
	rules map[string]*model.ExclusionRule // staffID → rule
}

func newMockExclusionRuleRepo() *mockExclusionRuleRepo {
	return &mockExclusionRuleRepo{rules: make(map[string]*model.ExclusionRule)}
}

func (m *mockExclusionRuleRepo) Upsert(_ context.Context, rule *model.ExclusionRule) error {
	if rule.RuleID == "" {
		rule.RuleID = "rule-" + rule.StaffID
	}
	m.rules[rule.StaffID] = rule
	return nil
}

func (m *mockExclusionRuleRepo) GetByStaffID(_ context.Context, staffID string) (*model.ExclusionRule, error) {
	if r, ok := m.rules[staffID]; ok {
		return r, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockExclusionRuleRepo) ListAll(_ context.Context) ([]model.ExclusionRule, error) {
	var result []model.ExclusionRule
	for _, r := range m.rules {
		result = append(result, *r)
	}
	return result, nil
}

func (m *mockExclusionRuleRepo) DeleteByStaffID(_ context.Context, staffID string) error {
	delete(m.rules, staffID)
	return nil
}

// ── Mock EngineSettingsRepository ──

type mockSettingsRepo struct {
	settings *model.EngineSettings
}

func newMockSettingsRepo() *mockSettingsRepo {
	return &mockSettingsRepo{settings: &model.EngineSettings{
		Singleton:             true,
		ExcludeVicePrincipals: true,
		ExcludeGuards:         true,
		StaffPerDay:           2,
		SiteMode:              model.SiteModeUnified,
	}}
}

func (m *mockSettingsRepo) Get(_ context.Context) (*model.EngineSettings, error) {
	return m.settings, nil
}

func (m *mockSettingsRepo) Update(_ context.Context, settings *model.EngineSettings) error {
	m.settings = settings
	return nil
}

// ── Mock TermRepository ──

type mockTermRepo struct {
	terms map[string]*model.Term
}

func newMockTermRepo() *mockTermRepo {
	return &mockTermRepo{terms: make(map[string]*model.Term)}
}

func (m *mockTermRepo) Create(_ context.Context, term *model.Term) error {
	if term.TermID == "" {
		term.TermID = "term-" + term.Name
	}
	m.terms[term.TermID] = term
	return nil
}

func (m *mockTermRepo) GetByID(_ context.Context, id string) (*model.Term, error) {
	if t, ok := m.terms[id]; ok {
		return t, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockTermRepo) GetActive(_ context.Context) (*model.Term, error) {
	for _, t := range m.terms {
		if t.IsActive {
			return t, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockTermRepo) Update(_ context.Context, term *model.Term) error {
	m.terms[term.TermID] = term
	return nil
}

func (m *mockTermRepo) SetActive(_ context.Context, id string) error {
	for _, t := range m.terms {
		t.IsActive = t.TermID == id
	}
	return nil
}

func (m *mockTermRepo) List(_ context.Context, _, _ int) ([]model.Term, int64, error) {
	var result []model.Term
	for _, t := range m.terms {
		result = append(result, *t)
	}
	return result, int64(len(result)), nil
}

// ── Mock PeriodRepository ──

type mockPeriodRepo struct {
	periods map[string]*model.Period
}

func newMockPeriodRepo() *mockPeriodRepo {
	return &mockPeriodRepo{periods: make(map[string]*model.Period)}
}

func (m *mockPeriodRepo) BatchCreate(_ context.Context, periods []model.Period) error {
	for i := range periods {
		p := periods[i]
		if p.PeriodID == "" {
			p.PeriodID = fmt.Sprintf("period-%d", p.Idx)
		}
		m.periods[p.PeriodID] = &p
	}
	return nil
}

func (m *mockPeriodRepo) GetByID(_ context.Context, id string) (*model.Period, error) {
	if p, ok := m.periods[id]; ok {
		return p, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockPeriodRepo) ListAll(_ context.Context) ([]model.Period, error) {
	var result []model.Period
	for _, p := range m.periods {
		result = append(result, *p)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Idx < result[j].Idx })
	return result, nil
}

func (m *mockPeriodRepo) ListEnabled(_ context.Context) ([]model.Period, error) {
	var result []model.Period
	for _, p := range m.periods {
		if p.IsEnabled {
			result = append(result, *p)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Idx < result[j].Idx })
	return result, nil
}

func (m *mockPeriodRepo) Update(_ context.Context, period *model.Period) error {
	m.periods[period.PeriodID] = period
	return nil
}

// ── Mock LocationRepository ──

type mockLocationRepo struct {
	locations map[string]*model.Location
}

func newMockLocationRepo() *mockLocationRepo {
	return &mockLocationRepo{locations: make(map[string]*model.Location)}
}

func (m *mockLocationRepo) Create(_ context.Context, loc *model.Location) error {
	if loc.LocationID == "" {
		loc.LocationID = "loc-" + loc.Name
	}
	m.locations[loc.LocationID] = loc
	return nil
}

func (m *mockLocationRepo) GetByID(_ context.Context, id string) (*model.Location, error) {
	if l, ok := m.locations[id]; ok {
		return l, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockLocationRepo) Update(_ context.Context, loc *model.Location) error {
	m.locations[loc.LocationID] = loc
	return nil
}

func (m *mockLocationRepo) Delete(_ context.Context, id string) error {
	delete(m.locations, id)
	return nil
}

func (m *mockLocationRepo) ListAll(_ context.Context) ([]model.Location, error) {
	var result []model.Location
	for _, l := range m.locations {
		result = append(result, *l)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].LocationID < result[j].LocationID })
	return result, nil
}

func (m *mockLocationRepo) ListActive(_ context.Context) ([]model.Location, error) {
	var result []model.Location
	for _, l := range m.locations {
		if l.IsActive {
			result = append(result, *l)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].LocationID < result[j].LocationID })
	return result, nil
}

// ── Mock 排班三件套（共享底层存储） ──

// rosterStore 排班/排班日/槽位的共享内存存储
type rosterStore struct {
	rosters map[string]*model.Roster
	days    map[string]*model.RosterDay
	slots   map[string]*model.RosterSlot
	terms   map[string]*model.Term // 模拟 Preload("Term")
	seq     int
}

func newRosterStore() *rosterStore {
	return &rosterStore{
		rosters: make(map[string]*model.Roster),
		days:    make(map[string]*model.RosterDay),
		slots:   make(map[string]*model.RosterSlot),
	}
}

// assemble 按真实 Repository 的 Preload 行为组装 Days/Slots
func (st *rosterStore) assemble(roster *model.Roster) *model.Roster {
	out := *roster
	out.Days = nil
	if term, ok := st.terms[roster.TermID]; ok {
		t := *term
		out.Term = &t
	}
	for _, d := range st.days {
		if d.RosterID != roster.RosterID {
			continue
		}
		day := *d
		day.Slots = nil
		for _, sl := range st.slots {
			if sl.DayID == day.DayID {
				day.Slots = append(day.Slots, *sl)
			}
		}
		sort.Slice(day.Slots, func(i, j int) bool { return day.Slots[i].Position < day.Slots[j].Position })
		out.Days = append(out.Days, day)
	}
	sort.Slice(out.Days, func(i, j int) bool { return out.Days[i].Weekday < out.Days[j].Weekday })
	return &out
}

type mockRosterRepo struct{ st *rosterStore }

func (m *mockRosterRepo) Create(_ context.Context, roster *model.Roster) error {
	m.st.seq++
	if roster.RosterID == "" {
		roster.RosterID = fmt.Sprintf("roster-%d", m.st.seq)
	}
	roster.CreatedAt = time.Now()
	m.st.rosters[roster.RosterID] = roster
	return nil
}

func (m *mockRosterRepo) GetByID(_ context.Context, id string) (*model.Roster, error) {
	if r, ok := m.st.rosters[id]; ok {
		return m.st.assemble(r), nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockRosterRepo) GetCurrent(_ context.Context, termID, variant string) (*model.Roster, error) {
	var latest *model.Roster
	for _, r := range m.st.rosters {
		if r.TermID != termID || r.Variant != variant || r.Status == model.RosterStatusArchived {
			continue
		}
		if latest == nil || r.CreatedAt.After(latest.CreatedAt) {
			latest = r
		}
	}
	if latest == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return m.st.assemble(latest), nil
}

func (m *mockRosterRepo) Update(_ context.Context, roster *model.Roster) error {
	stored, ok := m.st.rosters[roster.RosterID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	stored.Status = roster.Status
	stored.ApprovedAt = roster.ApprovedAt
	stored.UpdatedBy = roster.UpdatedBy
	return nil
}

func (m *mockRosterRepo) ArchiveCurrent(_ context.Context, termID, variant string) error {
	for _, r := range m.st.rosters {
		if r.TermID == termID && r.Variant == variant && r.Status != model.RosterStatusArchived {
			r.Status = model.RosterStatusArchived
		}
	}
	return nil
}

func (m *mockRosterRepo) Delete(_ context.Context, id string) error {
	delete(m.st.rosters, id)
	return nil
}

type mockRosterDayRepo struct{ st *rosterStore }

func (m *mockRosterDayRepo) BatchCreate(_ context.Context, days []model.RosterDay) error {
	for i := range days {
		d := days[i]
		if d.DayID == "" {
			m.st.seq++
			d.DayID = fmt.Sprintf("day-%d", m.st.seq)
		}
		m.st.days[d.DayID] = &d
	}
	return nil
}

func (m *mockRosterDayRepo) GetByID(_ context.Context, id string) (*model.RosterDay, error) {
	if d, ok := m.st.days[id]; ok {
		day := *d
		for _, sl := range m.st.slots {
			if sl.DayID == id {
				day.Slots = append(day.Slots, *sl)
			}
		}
		return &day, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockRosterDayRepo) SetFollowUp(_ context.Context, dayID string, staffID *string) error {
	if d, ok := m.st.days[dayID]; ok {
		d.FollowUpStaffID = staffID
		return nil
	}
	return gorm.ErrRecordNotFound
}

func (m *mockRosterDayRepo) DeleteByRoster(_ context.Context, rosterID string) error {
	for id, d := range m.st.days {
		if d.RosterID == rosterID {
			delete(m.st.days, id)
		}
	}
	return nil
}

type mockRosterSlotRepo struct{ st *rosterStore }

func (m *mockRosterSlotRepo) BatchCreate(_ context.Context, slots []model.RosterSlot) error {
	for i := range slots {
		sl := slots[i]
		if sl.SlotID == "" {
			m.st.seq++
			sl.SlotID = fmt.Sprintf("slot-%d", m.st.seq)
		}
		m.st.slots[sl.SlotID] = &sl
	}
	return nil
}

func (m *mockRosterSlotRepo) GetByID(_ context.Context, id string) (*model.RosterSlot, error) {
	if sl, ok := m.st.slots[id]; ok {
		return sl, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockRosterSlotRepo) Update(_ context.Context, slot *model.RosterSlot) error {
	if _, ok := m.st.slots[slot.SlotID]; !ok {
		return gorm.ErrRecordNotFound
	}
	m.st.slots[slot.SlotID] = slot
	return nil
}

func (m *mockRosterSlotRepo) DeleteByRoster(_ context.Context, rosterID string) error {
	for dayID, d := range m.st.days {
		if d.RosterID != rosterID {
			continue
		}
		for slotID, sl := range m.st.slots {
			if sl.DayID == dayID {
				delete(m.st.slots, slotID)
			}
		}
	}
	return nil
}

// ── Mock FairnessRepository ──

type mockFairnessRepo struct {
	counts map[string]map[string]int // termID → staffID → count
}

func newMockFairnessRepo() *mockFairnessRepo {
	return &mockFairnessRepo{counts: make(map[string]map[string]int)}
}

func (m *mockFairnessRepo) ListByTerm(_ context.Context, termID string) ([]model.FairnessEntry, error) {
	var result []model.FairnessEntry
	for staffID, count := range m.counts[termID] {
		result = append(result, model.FairnessEntry{
			TermID:        termID,
			StaffID:       staffID,
			AssignedCount: count,
		})
	}
	return result, nil
}

func (m *mockFairnessRepo) BatchUpsert(_ context.Context, termID string, counts map[string]int) error {
	if m.counts[termID] == nil {
		m.counts[termID] = make(map[string]int)
	}
	for staffID, count := range counts {
		m.counts[termID][staffID] = count
	}
	return nil
}

func (m *mockFairnessRepo) ResetByTerm(_ context.Context, termID string) error {
	delete(m.counts, termID)
	return nil
}

// ── Mock SnapshotRepository ──

type mockSnapshotRepo struct {
	snapshots map[string]*model.RosterSnapshot
	seq       int
}

func newMockSnapshotRepo() *mockSnapshotRepo {
	return &mockSnapshotRepo{snapshots: make(map[string]*model.RosterSnapshot)}
}

func (m *mockSnapshotRepo) Create(_ context.Context, snapshot *model.RosterSnapshot) error {
	m.seq++
	if snapshot.SnapshotID == "" {
		snapshot.SnapshotID = fmt.Sprintf("snap-%d", m.seq)
	}
	m.snapshots[snapshot.SnapshotID] = snapshot
	return nil
}

func (m *mockSnapshotRepo) GetByID(_ context.Context, id string) (*model.RosterSnapshot, error) {
	if s, ok := m.snapshots[id]; ok {
		return s, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockSnapshotRepo) ListByTerm(_ context.Context, termID string) ([]model.RosterSnapshot, error) {
	var result []model.RosterSnapshot
	for _, s := range m.snapshots {
		if s.TermID == termID {
			result = append(result, *s)
		}
	}
	return result, nil
}

func (m *mockSnapshotRepo) CountByTerm(_ context.Context, termID string) (int64, error) {
	var total int64
	for _, s := range m.snapshots {
		if s.TermID == termID {
			total++
		}
	}
	return total, nil
}

func (m *mockSnapshotRepo) ClearApproved(_ context.Context, termID, variant string) error {
	for _, s := range m.snapshots {
		if s.TermID == termID && s.Variant == variant {
			s.IsApproved = false
		}
	}
	return nil
}

func (m *mockSnapshotRepo) Delete(_ context.Context, id string) error {
	delete(m.snapshots, id)
	return nil
}

// ── Mock AttendanceRepository ──

type mockAttendanceRepo struct {
	records map[string]*model.AttendanceRecord
	seq     int
}

func newMockAttendanceRepo() *mockAttendanceRepo {
	return &mockAttendanceRepo{records: make(map[string]*model.AttendanceRecord)}
}

func (m *mockAttendanceRepo) Create(_ context.Context, record *model.AttendanceRecord) error {
	m.seq++
	if record.RecordID == "" {
		record.RecordID = fmt.Sprintf("att-%d", m.seq)
	}
	m.records[record.RecordID] = record
	return nil
}

func (m *mockAttendanceRepo) GetByStaffAndDate(_ context.Context, staffID string, dutyDate time.Time) (*model.AttendanceRecord, error) {
	for _, r := range m.records {
		if r.StaffID == staffID && r.DutyDate.Equal(dutyDate) {
			return r, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockAttendanceRepo) Update(_ context.Context, record *model.AttendanceRecord) error {
	m.records[record.RecordID] = record
	return nil
}

func (m *mockAttendanceRepo) List(_ context.Context, filter repository.AttendanceFilter, _, _ int) ([]model.AttendanceRecord, int64, error) {
	var result []model.AttendanceRecord
	for _, r := range m.records {
		if filter.StaffID != "" && r.StaffID != filter.StaffID {
			continue
		}
		if filter.Status != "" && r.Status != filter.Status {
			continue
		}
		if filter.DutyDate != nil && !r.DutyDate.Equal(*filter.DutyDate) {
			continue
		}
		result = append(result, *r)
	}
	return result, int64(len(result)), nil
}

// ── Mock MessageLogRepository ──

type mockMessageLogRepo struct {
	logs []model.MessageLog
}

func newMockMessageLogRepo() *mockMessageLogRepo {
	return &mockMessageLogRepo{}
}

func (m *mockMessageLogRepo) BatchCreate(_ context.Context, logs []model.MessageLog) error {
	for i := range logs {
		if logs[i].MessageID == "" {
			logs[i].MessageID = fmt.Sprintf("msg-%d", len(m.logs)+i+1)
		}
	}
	m.logs = append(m.logs, logs...)
	return nil
}

func (m *mockMessageLogRepo) List(_ context.Context, staffID, kind string, _, _ int) ([]model.MessageLog, int64, error) {
	var result []model.MessageLog
	for _, l := range m.logs {
		if staffID != "" && l.StaffID != staffID {
			continue
		}
		if kind != "" && l.Kind != kind {
			continue
		}
		result = append(result, l)
	}
	return result, int64(len(result)), nil
}

// ── 聚合工厂 ──

// newMockRepository 构造全 mock 的 Repository 聚合
func newMockRepository() *repository.Repository {
	st := newRosterStore()
	termRepo := newMockTermRepo()
	st.terms = termRepo.terms
	return &repository.Repository{
		User:          newMockUserRepo(),
		Staff:         newMockStaffRepo(),
		ExclusionRule: newMockExclusionRuleRepo(),
		Settings:      newMockSettingsRepo(),
		Term:          termRepo,
		Period:        newMockPeriodRepo(),
		Location:      newMockLocationRepo(),
		Roster:        &mockRosterRepo{st: st},
		RosterDay:     &mockRosterDayRepo{st: st},
		RosterSlot:    &mockRosterSlotRepo{st: st},
		Fairness:      newMockFairnessRepo(),
		Snapshot:      newMockSnapshotRepo(),
		Attendance:    newMockAttendanceRepo(),
		MessageLog:    newMockMessageLogRepo(),
	}
}
