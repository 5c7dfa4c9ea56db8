package engine

import (
	"errors"
	"fmt"
)

// ── 地点/节次分配器（督导变体，独立于生成器） ──
//
// 全部操作是对目标槽位 location_ids / period_ids 的整体重写：
// 不做合并、不保留历史。输入排班不被修改，返回新副本。

var (
	ErrDayIndexOutOfRange  = errors.New("工作日序号超出范围")
	ErrSlotIndexOutOfRange = errors.New("槽位序号超出范围")
)

// cloneDays 深拷贝排班（槽位切片与其内部切片均独立）
func cloneDays(days []DayAssignment) []DayAssignment {
	out := make([]DayAssignment, len(days))
	for i, d := range days {
		out[i] = d
		out[i].Slots = make([]Slot, len(d.Slots))
		for j, s := range d.Slots {
			out[i].Slots[j] = s
			out[i].Slots[j].LocationIDs = append([]string(nil), s.LocationIDs...)
			out[i].Slots[j].PeriodIDs = append([]string(nil), s.PeriodIDs...)
		}
	}
	return out
}

// SetSlotLocation 为单个槽位重写地点
func SetSlotLocation(days []DayAssignment, dayIdx, slotIdx int, locationID string) ([]DayAssignment, error) {
	if dayIdx < 0 || dayIdx >= len(days) {
		return nil, fmt.Errorf("%w: %d", ErrDayIndexOutOfRange, dayIdx)
	}
	if slotIdx < 0 || slotIdx >= len(days[dayIdx].Slots) {
		return nil, fmt.Errorf("%w: %d", ErrSlotIndexOutOfRange, slotIdx)
	}
	out := cloneDays(days)
	out[dayIdx].Slots[slotIdx].LocationIDs = []string{locationID}
	return out, nil
}

// SetSlotPeriods 为单个槽位重写启用节次
func SetSlotPeriods(days []DayAssignment, dayIdx, slotIdx int, periodIDs []string) ([]DayAssignment, error) {
	if dayIdx < 0 || dayIdx >= len(days) {
		return nil, fmt.Errorf("%w: %d", ErrDayIndexOutOfRange, dayIdx)
	}
	if slotIdx < 0 || slotIdx >= len(days[dayIdx].Slots) {
		return nil, fmt.Errorf("%w: %d", ErrSlotIndexOutOfRange, slotIdx)
	}
	out := cloneDays(days)
	out[dayIdx].Slots[slotIdx].PeriodIDs = append([]string(nil), periodIDs...)
	return out, nil
}

// FillDayLocation 将一个地点批量复制到某工作日的全部槽位
func FillDayLocation(days []DayAssignment, dayIdx int, locationID string) ([]DayAssignment, error) {
	if dayIdx < 0 || dayIdx >= len(days) {
		return nil, fmt.Errorf("%w: %d", ErrDayIndexOutOfRange, dayIdx)
	}
	out := cloneDays(days)
	for j := range out[dayIdx].Slots {
		out[dayIdx].Slots[j].LocationIDs = []string{locationID}
	}
	return out, nil
}

// FillRosterLocation 将一个地点批量复制到整个排班的全部槽位
func FillRosterLocation(days []DayAssignment, locationID string) []DayAssignment {
	out := cloneDays(days)
	for i := range out {
		for j := range out[i].Slots {
			out[i].Slots[j].LocationIDs = []string{locationID}
		}
	}
	return out
}

// ClearDayLocations 清空某工作日全部槽位的地点
func ClearDayLocations(days []DayAssignment, dayIdx int) ([]DayAssignment, error) {
	if dayIdx < 0 || dayIdx >= len(days) {
		return nil, fmt.Errorf("%w: %d", ErrDayIndexOutOfRange, dayIdx)
	}
	out := cloneDays(days)
	for j := range out[dayIdx].Slots {
		out[dayIdx].Slots[j].LocationIDs = nil
	}
	return out, nil
}

// ClearRosterLocations 清空整个排班全部槽位的地点
func ClearRosterLocations(days []DayAssignment) []DayAssignment {
	out := cloneDays(days)
	for i := range out {
		for j := range out[i].Slots {
			out[i].Slots[j].LocationIDs = nil
		}
	}
	return out
}
