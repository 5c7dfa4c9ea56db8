package engine

// ResolvePool 将完整名册过滤为可用池。
//
// 规则按固定顺序执行，每条只做减法：
//  1. 显式排除规则（is_excluded=true）
//  2. 副校长职务族（设置开启时）
//  3. 保安职务族（设置开启时）
//  4. 行政人员（排除前）≥ 5 且设置开启时，排除全部教师
//
// 纯过滤，无副作用；空结果合法，由调用方处理。
// 输出顺序：教师按输入顺序在前，行政人员按输入顺序在后。
func ResolvePool(teachers, admins []Staff, rules []ExclusionRule, st Settings) []Staff {
	excluded := make(map[string]bool, len(rules))
	for _, r := range rules {
		if r.IsExcluded {
			excluded[r.StaffID] = true
		}
	}

	// 教师自动排除的判定基于排除前的行政人员总数
	dropTeachers := st.AutoExcludeTeachers && len(admins) >= autoExcludeAdminThreshold

	pool := make([]Staff, 0, len(teachers)+len(admins))

	if !dropTeachers {
		for _, t := range teachers {
			if excluded[t.ID] {
				continue
			}
			pool = append(pool, t)
		}
	}

	for _, a := range admins {
		if excluded[a.ID] {
			continue
		}
		if st.ExcludeVicePrincipals && vicePrincipalRoles[a.Role] {
			continue
		}
		if st.ExcludeGuards && guardRoles[a.Role] {
			continue
		}
		pool = append(pool, a)
	}

	return pool
}

// SuggestedPerDay 根据池大小与工作日数推荐每日人数。
// ceil(pool/days)，下限 1；仅供参考，生成器与 UI 均可覆盖。
func SuggestedPerDay(poolSize, activeDayCount int) int {
	if activeDayCount < 1 {
		activeDayCount = 1
	}
	if poolSize < 1 {
		return 1
	}
	n := (poolSize + activeDayCount - 1) / activeDayCount
	if n < 1 {
		n = 1
	}
	return n
}

// IsEvenDistribution 判断推荐人数能否把池刚好均分到各工作日。
// false 时 UI 显示“分配不均”提示。
func IsEvenDistribution(perDay, activeDayCount, poolSize int) bool {
	return perDay*activeDayCount == poolSize
}
