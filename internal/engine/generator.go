package engine

import (
	"fmt"
	"hash/fnv"
	"math/rand"
	"sort"
)

// ════════════════════════════════════════════════════════════
// Generate — 核心分配算法
// ════════════════════════════════════════════════════════════
//
// 四阶段贪心分配：
//
//	阶段1 配额：按池大小与期望每日人数计算每日目标
//	      （池不足时按最大余数法摊平，多出的 1 人给靠前的工作日）
//	阶段2 教师：按当日最后授课节次升序轮转铺入各工作日
//	      （下课早的教师更适合课后值班，优先消化）
//	阶段3 行政：按台账累计次数从低到高补齐每日剩余配额；
//	      计数相同时按种子洗牌后的位置决胜，同池同种子可复现
//	阶段4 督导扩展：地点轮转分配到当日槽位，启用节次整组挂载
//
// 黄金法则在生成期内由候选移除保证：一人落位后即退出本轮全部候选。
// 任何输入都不会失败：空池 / 零工作日返回空排班 + 提示。
func Generate(in GenerateInput) GenerateResult {
	var alerts []string

	ledger := in.Ledger.Clone()

	if len(in.ActiveDays) == 0 {
		alerts = append(alerts, "无可用工作日，未生成排班")
		return GenerateResult{Days: nil, Ledger: ledger, Alerts: alerts}
	}
	if len(in.Pool) == 0 {
		alerts = append(alerts, "可用人员池为空，未生成排班")
		days := make([]DayAssignment, len(in.ActiveDays))
		for i, wd := range in.ActiveDays {
			days[i] = DayAssignment{Weekday: wd}
		}
		return GenerateResult{Days: days, Ledger: ledger, Alerts: alerts}
	}

	perDay := in.StaffPerDay
	if perDay < 1 {
		perDay = 1 // 调用方误传负数时钳制，保持引擎全函数
	}

	// ── 阶段1: 每日配额 ──

	dayCount := len(in.ActiveDays)
	poolSize := len(in.Pool)
	quota := perDay * dayCount

	targets := make([]int, dayCount)
	switch {
	case poolSize >= quota:
		for i := range targets {
			targets[i] = perDay
		}
		if poolSize > quota {
			alerts = append(alerts, fmt.Sprintf("人员池多于配额，本周期 %d 人未被排入", poolSize-quota))
		}
	default:
		// 池不足：最大余数法摊平，多出的 1 人给列表靠前的工作日
		base := poolSize / dayCount
		rem := poolSize % dayCount
		for i := range targets {
			targets[i] = base
			if i < rem {
				targets[i]++
			}
		}
		alerts = append(alerts, fmt.Sprintf("可用人员不足，缺口 %d 人（需要 %d，实有 %d）", quota-poolSize, quota, poolSize))
		if rem != 0 {
			alerts = append(alerts, "人数无法均分，各工作日排班人数存在 1 人差异")
		}
	}

	// ── 阶段2: 教师铺排 ──

	var teachers, admins []Staff
	for _, s := range in.Pool {
		if s.Kind == KindTeacher {
			teachers = append(teachers, s)
		} else {
			admins = append(admins, s)
		}
	}

	// 最后授课节次升序；stable 保持名册原序作为隐式决胜
	sort.SliceStable(teachers, func(i, j int) bool {
		return teachers[i].LastPeriod < teachers[j].LastPeriod
	})

	days := make([]DayAssignment, dayCount)
	for i, wd := range in.ActiveDays {
		days[i] = DayAssignment{Weekday: wd}
	}

	cursor := 0
	for _, t := range teachers {
		placed := false
		for k := 0; k < dayCount; k++ {
			idx := (cursor + k) % dayCount
			if len(days[idx].Slots) < targets[idx] {
				days[idx].Slots = append(days[idx].Slots, newSlot(t, in.Periods))
				ledger[t.ID]++
				cursor = idx + 1
				placed = true
				break
			}
		}
		if !placed {
			break // 全部工作日已满，剩余教师即为未排入的盈余
		}
	}

	// ── 阶段3: 行政补齐 ──

	// 计数相同时的决胜顺序：种子洗牌后的位置（同池同种子可复现）
	seed := in.Seed
	if seed == 0 {
		seed = deriveSeed(in.Pool)
	}
	shuffled := shuffleStaff(admins, seed)

	remaining := shuffled
	for i := range days {
		for len(days[i].Slots) < targets[i] && len(remaining) > 0 {
			pick := 0
			for j := 1; j < len(remaining); j++ {
				if ledger[remaining[j].ID] < ledger[remaining[pick].ID] {
					pick = j
				}
			}
			chosen := remaining[pick]
			days[i].Slots = append(days[i].Slots, newSlot(chosen, in.Periods))
			ledger[chosen.ID]++
			remaining = append(remaining[:pick], remaining[pick+1:]...)
		}
	}

	// ── 阶段4: 督导扩展（地点轮转） ──

	if len(in.Locations) > 0 {
		for i := range days {
			assignLocationsRoundRobin(days[i].Slots, in.Locations)
		}
	}

	return GenerateResult{Days: days, Ledger: ledger, Alerts: alerts}
}

// newSlot 由人员构造槽位快照；督导变体挂载全部启用节次
func newSlot(s Staff, periods []string) Slot {
	slot := Slot{
		StaffID:   s.ID,
		StaffName: s.Name,
		StaffKind: s.Kind,
	}
	if len(periods) > 0 {
		slot.PeriodIDs = append([]string(nil), periods...)
	}
	return slot
}

// assignLocationsRoundRobin 将启用地点轮转分配到一日的槽位上
func assignLocationsRoundRobin(slots []Slot, locations []string) {
	for i := range slots {
		slots[i].LocationIDs = []string{locations[i%len(locations)]}
	}
}

// deriveSeed 从池内人员 ID（排序后）派生稳定种子
func deriveSeed(pool []Staff) int64 {
	ids := make([]string, 0, len(pool))
	for _, s := range pool {
		ids = append(ids, s.ID)
	}
	sort.Strings(ids)

	h := fnv.New64a()
	for _, id := range ids {
		h.Write([]byte(id))
	}
	return int64(h.Sum64())
}

// shuffleStaff 种子确定性 Fisher–Yates 洗牌，不修改输入
func shuffleStaff(staff []Staff, seed int64) []Staff {
	out := append([]Staff(nil), staff...)
	rng := rand.New(rand.NewSource(seed))
	rng.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}
