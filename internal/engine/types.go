// Package engine 排班分配引擎。
//
// 纯函数集合：输入（人员池、规则、公平性台账），输出（排班 + 诊断提示），
// 不做任何 I/O 或持久化，台账传入后复制更新、绝不原地修改。
// 调用方（Service 层）负责读写数据库并串行化读-改-写周期。
package engine

import "time"

// ── 人员 ──

const (
	KindTeacher = "teacher" // 教师
	KindAdmin   = "admin"   // 行政人员
)

// 职务族：引擎按族匹配自动排除规则
var (
	vicePrincipalRoles = map[string]bool{"vice_principal": true, "assistant_principal": true}
	guardRoles         = map[string]bool{"guard": true, "watchman": true}
)

// Staff 引擎视角的教职工（与存储层解耦的纯值类型）
type Staff struct {
	ID         string
	Name       string
	Kind       string // teacher | admin
	Role       string // 行政职务代码，教师为空
	LastPeriod int    // 教师当日最后授课节次；行政人员为 0
}

// ExclusionRule 排除规则：is_excluded=true 的人员绝不进入可用池
type ExclusionRule struct {
	StaffID    string
	IsExcluded bool
}

// Settings 引擎设置（由设置面拥有，引擎只读）
type Settings struct {
	ExcludeVicePrincipals bool // 自动排除副校长职务族
	ExcludeGuards         bool // 自动排除保安职务族
	AutoExcludeTeachers   bool // 行政人员（排除前）≥ 5 时排除全部教师
	StaffPerDay           int  // 期望每日人数
}

// autoExcludeAdminThreshold 触发教师自动排除的行政人员数下限
const autoExcludeAdminThreshold = 5

// ── 排班输出 ──

// Slot 单个排班槽位；人员姓名/类别为分配时刻快照
type Slot struct {
	StaffID     string
	StaffName   string
	StaffKind   string
	LocationIDs []string // 督导变体：地点
	PeriodIDs   []string // 督导变体：启用节次
}

// DayAssignment 一个工作日的排班
type DayAssignment struct {
	Weekday         time.Weekday
	Slots           []Slot
	FollowUpStaffID string // 督导变体：跟进负责人，仅手动指定
}

// ── 生成器输入 / 输出 ──

// GenerateInput 生成器输入
type GenerateInput struct {
	Pool        []Staff        // 已解析的可用池（ResolvePool 的输出）
	ActiveDays  []time.Weekday // 本周期内的工作日，顺序即排班顺序
	StaffPerDay int            // 期望每日人数；< 1 时钳制为 1
	Ledger      Ledger         // 当前公平性台账；nil 视为空账
	Seed        int64          // 行政人员洗牌种子；0 时由池内人员 ID 派生
	Locations   []string       // 督导变体：启用地点 ID；为空则不做地点分配
	Periods     []string       // 督导变体：启用节次 ID，整组挂到每个槽位
}

// GenerateResult 生成器输出
type GenerateResult struct {
	Days   []DayAssignment
	Ledger Ledger   // 更新后的新台账（输入台账不被修改）
	Alerts []string // 非致命诊断提示，按产生顺序排列
}

// ValidationResult 黄金法则校验结果
type ValidationResult struct {
	Valid             bool
	DuplicateStaffIDs []string // 在多个工作日出现的人员 ID（升序）
}
