package engine

import (
	"errors"
	"testing"
	"time"
)

func supervisionDays() []DayAssignment {
	return []DayAssignment{
		{
			Weekday: time.Sunday,
			Slots: []Slot{
				{StaffID: "t-1", LocationIDs: []string{"loc-1"}, PeriodIDs: []string{"p-1", "p-2"}},
				{StaffID: "a-1", LocationIDs: []string{"loc-2"}, PeriodIDs: []string{"p-1", "p-2"}},
			},
		},
		{
			Weekday: time.Monday,
			Slots: []Slot{
				{StaffID: "t-2", LocationIDs: []string{"loc-1"}, PeriodIDs: []string{"p-1"}},
			},
		},
	}
}

func TestSetSlotLocation(t *testing.T) {
	orig := supervisionDays()
	out, err := SetSlotLocation(orig, 0, 1, "loc-9")
	if err != nil {
		t.Fatalf("SetSlotLocation: %v", err)
	}
	if got := out[0].Slots[1].LocationIDs; len(got) != 1 || got[0] != "loc-9" {
		t.Errorf("槽位地点 = %v, 期望 [loc-9]", got)
	}
	// 整体重写，不合并
	if orig[0].Slots[1].LocationIDs[0] != "loc-2" {
		t.Error("输入排班被原地修改")
	}
	if out[0].Slots[0].LocationIDs[0] != "loc-1" {
		t.Error("其他槽位不应受影响")
	}
}

func TestSetSlotLocation_OutOfRange(t *testing.T) {
	days := supervisionDays()
	if _, err := SetSlotLocation(days, 5, 0, "loc-1"); !errors.Is(err, ErrDayIndexOutOfRange) {
		t.Errorf("err = %v, 期望 ErrDayIndexOutOfRange", err)
	}
	if _, err := SetSlotLocation(days, 0, 9, "loc-1"); !errors.Is(err, ErrSlotIndexOutOfRange) {
		t.Errorf("err = %v, 期望 ErrSlotIndexOutOfRange", err)
	}
	if _, err := SetSlotLocation(days, -1, 0, "loc-1"); !errors.Is(err, ErrDayIndexOutOfRange) {
		t.Errorf("err = %v, 期望 ErrDayIndexOutOfRange", err)
	}
}

func TestSetSlotPeriods_Rewrite(t *testing.T) {
	orig := supervisionDays()
	out, err := SetSlotPeriods(orig, 0, 0, []string{"p-3"})
	if err != nil {
		t.Fatalf("SetSlotPeriods: %v", err)
	}
	if got := out[0].Slots[0].PeriodIDs; len(got) != 1 || got[0] != "p-3" {
		t.Errorf("节次 = %v, 期望整体重写为 [p-3]", got)
	}
	if len(orig[0].Slots[0].PeriodIDs) != 2 {
		t.Error("输入排班被原地修改")
	}
}

func TestFillDayLocation(t *testing.T) {
	out, err := FillDayLocation(supervisionDays(), 0, "loc-7")
	if err != nil {
		t.Fatalf("FillDayLocation: %v", err)
	}
	for j, s := range out[0].Slots {
		if len(s.LocationIDs) != 1 || s.LocationIDs[0] != "loc-7" {
			t.Errorf("首日第 %d 槽位地点 = %v, 期望 [loc-7]", j, s.LocationIDs)
		}
	}
	if out[1].Slots[0].LocationIDs[0] != "loc-1" {
		t.Error("其他工作日不应受影响")
	}
}

func TestFillRosterLocation(t *testing.T) {
	out := FillRosterLocation(supervisionDays(), "loc-0")
	for i, d := range out {
		for j, s := range d.Slots {
			if len(s.LocationIDs) != 1 || s.LocationIDs[0] != "loc-0" {
				t.Errorf("第 %d 日第 %d 槽位地点 = %v, 期望 [loc-0]", i, j, s.LocationIDs)
			}
		}
	}
}

func TestClearLocations(t *testing.T) {
	orig := supervisionDays()
	out, err := ClearDayLocations(orig, 0)
	if err != nil {
		t.Fatalf("ClearDayLocations: %v", err)
	}
	for _, s := range out[0].Slots {
		if len(s.LocationIDs) != 0 {
			t.Errorf("首日槽位地点应被清空, 实际 %v", s.LocationIDs)
		}
	}
	if len(out[1].Slots[0].LocationIDs) != 1 {
		t.Error("其他工作日不应被清空")
	}

	all := ClearRosterLocations(orig)
	for i, d := range all {
		for _, s := range d.Slots {
			if len(s.LocationIDs) != 0 {
				t.Errorf("第 %d 日槽位地点应被清空", i)
			}
		}
	}
	if len(orig[0].Slots[0].LocationIDs) != 1 {
		t.Error("输入排班被原地修改")
	}
}
