package model

import "time"

// ── 排班表取值常量 ──

const (
	RosterVariantDuty        = "duty"        // 值日
	RosterVariantSupervision = "supervision" // 督导（带地点/节次）
)

const (
	RosterStatusDraft    = "draft"    // 草稿，可编辑
	RosterStatusApproved = "approved" // 已批准
	RosterStatusArchived = "archived" // 已归档（被重新生成替换）
)

// Roster 排班表 — 对应 rosters（一个排班周期）
type Roster struct {
	RosterID   string     `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"roster_id"`
	TermID     string     `gorm:"type:uuid;not null"                             json:"term_id"`
	Variant    string     `gorm:"type:varchar(15);not null"                      json:"variant"` // duty | supervision
	Status     string     `gorm:"type:varchar(15);not null;default:'draft'"      json:"status"`  // draft | approved | archived
	ApprovedAt *time.Time `json:"approved_at,omitempty"`
	VersionedModel

	// 关联
	Term *Term       `gorm:"foreignKey:TermID;references:TermID" json:"term,omitempty"`
	Days []RosterDay `gorm:"foreignKey:RosterID"                 json:"days,omitempty"`
}

// TableName 指定表名
func (Roster) TableName() string { return "rosters" }

// RosterDay 排班日表 — 对应 roster_days
type RosterDay struct {
	DayID           string     `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"day_id"`
	RosterID        string     `gorm:"type:uuid;not null"                             json:"roster_id"`
	Weekday         int        `gorm:"type:smallint;not null"                         json:"weekday"` // 0=周日 … 6=周六
	DutyDate        *time.Time `gorm:"type:date"                                      json:"duty_date,omitempty"`
	FollowUpStaffID *string    `gorm:"type:uuid"                                      json:"follow_up_staff_id,omitempty"` // 督导变体：当日跟进负责人
	BaseModel

	// 关联
	Slots []RosterSlot `gorm:"foreignKey:DayID" json:"slots,omitempty"`
}

// TableName 指定表名
func (RosterDay) TableName() string { return "roster_days" }

// RosterSlot 排班槽位表 — 对应 roster_slots
// staff_name/staff_kind 为分配时刻的冗余快照，名册后续变更不影响历史排班
type RosterSlot struct {
	SlotID      string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"slot_id"`
	DayID       string    `gorm:"type:uuid;not null"                             json:"day_id"`
	StaffID     string    `gorm:"type:uuid;not null"                             json:"staff_id"`
	StaffName   string    `gorm:"type:varchar(100);not null"                     json:"staff_name"`
	StaffKind   string    `gorm:"type:varchar(10);not null"                      json:"staff_kind"`
	LocationIDs UUIDArray `gorm:"type:uuid[]"                                    json:"location_ids,omitempty"` // 督导变体
	PeriodIDs   UUIDArray `gorm:"type:uuid[]"                                    json:"period_ids,omitempty"`   // 督导变体
	Position    int       `gorm:"type:smallint;not null;default:0"               json:"position"`
	VersionedModel
}

// TableName 指定表名
func (RosterSlot) TableName() string { return "roster_slots" }

// FairnessEntry 公平性台账表 — 对应 fairness_entries
// 每学期每人累计被排次数；仅生成器递增，学期初由调用方显式重置
type FairnessEntry struct {
	EntryID       string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"entry_id"`
	TermID        string `gorm:"type:uuid;not null;uniqueIndex:uq_fairness_term_staff" json:"term_id"`
	StaffID       string `gorm:"type:uuid;not null;uniqueIndex:uq_fairness_term_staff" json:"staff_id"`
	AssignedCount int    `gorm:"not null;default:0"                             json:"assigned_count"`
	VersionedModel
}

// TableName 指定表名
func (FairnessEntry) TableName() string { return "fairness_entries" }

// RosterSnapshot 排班表快照 — 对应 roster_snapshots
// 不可变副本：整表序列化为 JSONB，保存后不再修改
type RosterSnapshot struct {
	SnapshotID string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"snapshot_id"`
	TermID     string    `gorm:"type:uuid;not null"                             json:"term_id"`
	Name       string    `gorm:"type:varchar(100);not null"                     json:"name"`
	Variant    string    `gorm:"type:varchar(15);not null"                      json:"variant"`
	IsApproved bool      `gorm:"not null;default:false"                         json:"is_approved"`
	Payload    JSONB     `gorm:"type:jsonb;not null"                            json:"payload"`
	SnapshotAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"             json:"snapshot_at"`
	CreatedAt  time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"             json:"created_at"`
	CreatedBy  *string   `gorm:"type:uuid"                                      json:"created_by,omitempty"`
}

// TableName 指定表名
func (RosterSnapshot) TableName() string { return "roster_snapshots" }

// [自证通过] internal/model/roster.go
