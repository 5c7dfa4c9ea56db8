package engine

import (
	"fmt"
	"reflect"
	"strings"
	"testing"
	"time"
)

// 周日至周四，五个工作日
var fiveDays = []time.Weekday{time.Sunday, time.Monday, time.Tuesday, time.Wednesday, time.Thursday}

// makePool 生成 nTeacher 个教师 + nAdmin 个行政人员
func makePool(nTeacher, nAdmin int) []Staff {
	pool := make([]Staff, 0, nTeacher+nAdmin)
	for i := 0; i < nTeacher; i++ {
		pool = append(pool, Staff{
			ID:         fmt.Sprintf("t-%d", i+1),
			Name:       fmt.Sprintf("教师%d", i+1),
			Kind:       KindTeacher,
			LastPeriod: (i % 7) + 1,
		})
	}
	for i := 0; i < nAdmin; i++ {
		pool = append(pool, Staff{
			ID:   fmt.Sprintf("a-%d", i+1),
			Name: fmt.Sprintf("行政%d", i+1),
			Kind: KindAdmin,
			Role: "clerk",
		})
	}
	return pool
}

// collectAssigned 统计每人被排到的工作日数
func collectAssigned(days []DayAssignment) map[string]int {
	counts := make(map[string]int)
	for _, d := range days {
		for _, s := range d.Slots {
			counts[s.StaffID]++
		}
	}
	return counts
}

// ════════════════════════════════════════════════════════════
// 场景用例
// ════════════════════════════════════════════════════════════

// 场景A: 10 人池、5 个工作日、每日 2 人 → 每日恰好 2 人，10 人各用一次，零提示
func TestGenerate_ScenarioA_ExactFit(t *testing.T) {
	res := Generate(GenerateInput{
		Pool:        makePool(5, 5),
		ActiveDays:  fiveDays,
		StaffPerDay: 2,
	})

	if len(res.Alerts) != 0 {
		t.Errorf("零提示期望落空: %v", res.Alerts)
	}
	if len(res.Days) != 5 {
		t.Fatalf("工作日数 = %d, 期望 5", len(res.Days))
	}
	for i, d := range res.Days {
		if len(d.Slots) != 2 {
			t.Errorf("第 %d 日槽位数 = %d, 期望 2", i, len(d.Slots))
		}
	}
	counts := collectAssigned(res.Days)
	if len(counts) != 10 {
		t.Errorf("参与人数 = %d, 期望 10", len(counts))
	}
	for id, n := range counts {
		if n != 1 {
			t.Errorf("%s 被排 %d 次, 期望 1", id, n)
		}
	}
}

// 场景B: 7 人池、5 个工作日、每日 2 人（配额 10 > 池 7）
// → 7 人各用一次，按 2,2,1,1,1 摊平，并提示缺口 3
func TestGenerate_ScenarioB_Shortfall(t *testing.T) {
	res := Generate(GenerateInput{
		Pool:        makePool(4, 3),
		ActiveDays:  fiveDays,
		StaffPerDay: 2,
	})

	counts := collectAssigned(res.Days)
	if len(counts) != 7 {
		t.Errorf("参与人数 = %d, 期望 7", len(counts))
	}
	for id, n := range counts {
		if n != 1 {
			t.Errorf("%s 被排 %d 次, 期望 1", id, n)
		}
	}

	// 每日人数在 ⌊7/5⌋=1 与 ⌈7/5⌉=2 之间, 共两日为 2
	twos := 0
	for i, d := range res.Days {
		switch len(d.Slots) {
		case 2:
			twos++
		case 1:
		default:
			t.Errorf("第 %d 日槽位数 = %d, 期望 1 或 2", i, len(d.Slots))
		}
	}
	if twos != 2 {
		t.Errorf("2 人日数 = %d, 期望 2", twos)
	}

	found := false
	for _, a := range res.Alerts {
		if strings.Contains(a, "缺口 3") {
			found = true
		}
	}
	if !found {
		t.Errorf("应提示缺口 3, 实际: %v", res.Alerts)
	}
}

// 池多于配额: 盈余人员不排入，且绝不重复排人
func TestGenerate_Surplus(t *testing.T) {
	res := Generate(GenerateInput{
		Pool:        makePool(8, 5), // 13 人, 配额 10
		ActiveDays:  fiveDays,
		StaffPerDay: 2,
	})

	counts := collectAssigned(res.Days)
	if len(counts) != 10 {
		t.Errorf("参与人数 = %d, 期望 10", len(counts))
	}
	for id, n := range counts {
		if n != 1 {
			t.Errorf("%s 被排 %d 次, 期望 1", id, n)
		}
	}

	found := false
	for _, a := range res.Alerts {
		if strings.Contains(a, "3 人未被排入") {
			found = true
		}
	}
	if !found {
		t.Errorf("应提示 3 人未被排入, 实际: %v", res.Alerts)
	}
}

// ════════════════════════════════════════════════════════════
// 不变量
// ════════════════════════════════════════════════════════════

// 黄金法则按构造成立
func TestGenerate_GoldenRuleByConstruction(t *testing.T) {
	for _, n := range []struct{ teachers, admins, perDay int }{
		{5, 5, 2}, {10, 0, 3}, {0, 8, 2}, {3, 3, 1}, {20, 10, 4},
	} {
		res := Generate(GenerateInput{
			Pool:        makePool(n.teachers, n.admins),
			ActiveDays:  fiveDays,
			StaffPerDay: n.perDay,
		})
		v := ValidateGoldenRule(res.Days)
		if !v.Valid {
			t.Errorf("teachers=%d admins=%d perDay=%d: 生成结果违反黄金法则: %v",
				n.teachers, n.admins, n.perDay, v.DuplicateStaffIDs)
		}
	}
}

// 空池 / 零工作日不报错，返回空排班 + 提示
func TestGenerate_DegenerateInputs(t *testing.T) {
	res := Generate(GenerateInput{Pool: nil, ActiveDays: fiveDays, StaffPerDay: 2})
	if len(res.Alerts) == 0 {
		t.Error("空池应产生提示")
	}
	if len(res.Days) != 5 {
		t.Errorf("空池仍应返回 %d 个空工作日", 5)
	}

	res = Generate(GenerateInput{Pool: makePool(2, 2), ActiveDays: nil, StaffPerDay: 2})
	if len(res.Days) != 0 {
		t.Error("零工作日应返回空排班")
	}
	if len(res.Alerts) == 0 {
		t.Error("零工作日应产生提示")
	}
}

// 负的期望每日人数钳制为 1 而非失败
func TestGenerate_NegativePerDayClamped(t *testing.T) {
	res := Generate(GenerateInput{
		Pool:        makePool(3, 2),
		ActiveDays:  fiveDays,
		StaffPerDay: -4,
	})
	counts := collectAssigned(res.Days)
	if len(counts) != 5 {
		t.Errorf("参与人数 = %d, 期望 5（每日钳制为 1）", len(counts))
	}
}

// 教师按最后授课节次升序优先铺排
func TestGenerate_TeacherOrderByLastPeriod(t *testing.T) {
	pool := []Staff{
		{ID: "t-late", Name: "晚", Kind: KindTeacher, LastPeriod: 7},
		{ID: "t-early", Name: "早", Kind: KindTeacher, LastPeriod: 2},
		{ID: "t-mid", Name: "中", Kind: KindTeacher, LastPeriod: 4},
	}
	res := Generate(GenerateInput{
		Pool:        pool,
		ActiveDays:  fiveDays[:3],
		StaffPerDay: 1,
	})
	// 轮转起点是第一个工作日，下课最早的教师先落位
	if res.Days[0].Slots[0].StaffID != "t-early" {
		t.Errorf("首日首位 = %s, 期望 t-early", res.Days[0].Slots[0].StaffID)
	}
	if res.Days[1].Slots[0].StaffID != "t-mid" {
		t.Errorf("次日首位 = %s, 期望 t-mid", res.Days[1].Slots[0].StaffID)
	}
}

// 行政补位优先选择台账累计次数低者
func TestGenerate_AdminPrefersLowLedgerCount(t *testing.T) {
	pool := []Staff{
		{ID: "a-busy", Name: "多", Kind: KindAdmin},
		{ID: "a-free", Name: "少", Kind: KindAdmin},
	}
	ledger := Ledger{"a-busy": 5, "a-free": 0}

	res := Generate(GenerateInput{
		Pool:        pool,
		ActiveDays:  fiveDays[:1],
		StaffPerDay: 1,
		Ledger:      ledger,
	})
	if res.Days[0].Slots[0].StaffID != "a-free" {
		t.Errorf("落位 = %s, 期望累计次数低的 a-free", res.Days[0].Slots[0].StaffID)
	}
}

// 同池同种子的两次运行结果完全一致
func TestGenerate_Deterministic(t *testing.T) {
	in := GenerateInput{
		Pool:        makePool(4, 9),
		ActiveDays:  fiveDays,
		StaffPerDay: 2,
		Ledger:      Ledger{"a-1": 3, "a-2": 1},
	}
	r1 := Generate(in)
	r2 := Generate(in)
	if !reflect.DeepEqual(r1.Days, r2.Days) {
		t.Error("同池同种子的两次生成应完全一致")
	}
	if !reflect.DeepEqual(r1.Ledger, r2.Ledger) {
		t.Error("两次生成的台账更新应一致")
	}
}

// 显式种子覆盖派生种子
func TestGenerate_ExplicitSeed(t *testing.T) {
	in := GenerateInput{
		Pool:        makePool(0, 10),
		ActiveDays:  fiveDays,
		StaffPerDay: 1,
		Seed:        42,
	}
	r1 := Generate(in)
	r2 := Generate(in)
	if !reflect.DeepEqual(r1.Days, r2.Days) {
		t.Error("同种子生成应一致")
	}
}

// 台账更新：落位者 +1，输入台账不被修改
func TestGenerate_LedgerUpdate(t *testing.T) {
	ledger := Ledger{"t-1": 2}
	res := Generate(GenerateInput{
		Pool:        makePool(5, 5),
		ActiveDays:  fiveDays,
		StaffPerDay: 2,
		Ledger:      ledger,
	})

	if ledger["t-1"] != 2 {
		t.Error("输入台账被原地修改")
	}
	if res.Ledger["t-1"] != 3 {
		t.Errorf("t-1 新计数 = %d, 期望 3", res.Ledger["t-1"])
	}
	total := 0
	for _, v := range res.Ledger {
		total += v
	}
	if total != 2+10 {
		t.Errorf("台账总增量 = %d, 期望 10", total-2)
	}
}

// ════════════════════════════════════════════════════════════
// 督导扩展
// ════════════════════════════════════════════════════════════

func TestGenerate_SupervisionLocationsAndPeriods(t *testing.T) {
	res := Generate(GenerateInput{
		Pool:        makePool(3, 3),
		ActiveDays:  fiveDays[:2],
		StaffPerDay: 3,
		Locations:   []string{"loc-1", "loc-2"},
		Periods:     []string{"p-1", "p-2", "p-3"},
	})

	for i, d := range res.Days {
		for j, s := range d.Slots {
			if len(s.LocationIDs) != 1 {
				t.Fatalf("第 %d 日第 %d 槽位地点数 = %d, 期望 1", i, j, len(s.LocationIDs))
			}
			// 地点轮转: 槽位 j 分到 locations[j%2]
			want := []string{"loc-1", "loc-2"}[j%2]
			if s.LocationIDs[0] != want {
				t.Errorf("第 %d 日第 %d 槽位地点 = %s, 期望 %s", i, j, s.LocationIDs[0], want)
			}
			if len(s.PeriodIDs) != 3 {
				t.Errorf("槽位应挂载全部 3 个启用节次, 实际 %d", len(s.PeriodIDs))
			}
		}
	}
}

func TestGenerate_DutyVariantHasNoLocations(t *testing.T) {
	res := Generate(GenerateInput{
		Pool:        makePool(3, 2),
		ActiveDays:  fiveDays,
		StaffPerDay: 1,
	})
	for _, d := range res.Days {
		for _, s := range d.Slots {
			if len(s.LocationIDs) != 0 || len(s.PeriodIDs) != 0 {
				t.Fatal("值日变体不应带地点/节次")
			}
		}
	}
}
