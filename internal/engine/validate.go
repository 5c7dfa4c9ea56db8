package engine

import "sort"

// ValidateGoldenRule 黄金法则校验：一个排班周期内，任何人至多出现在一个工作日。
//
// 生成器按构造保证该法则；手动编辑可能引入重复，
// 因此批准前必须再次校验，校验失败时禁止批准。
func ValidateGoldenRule(days []DayAssignment) ValidationResult {
	counts := make(map[string]int)
	for _, d := range days {
		seen := make(map[string]bool, len(d.Slots))
		for _, s := range d.Slots {
			if seen[s.StaffID] {
				continue // 同日重复只计一次，跨日才算违规
			}
			seen[s.StaffID] = true
			counts[s.StaffID]++
		}
	}

	var dups []string
	for id, n := range counts {
		if n > 1 {
			dups = append(dups, id)
		}
	}
	sort.Strings(dups)

	return ValidationResult{Valid: len(dups) == 0, DuplicateStaffIDs: dups}
}
