package engine

import "testing"

func lastPeriod(n int) int { return n }

func testTeachers() []Staff {
	return []Staff{
		{ID: "t-1", Name: "教师一", Kind: KindTeacher, LastPeriod: lastPeriod(5)},
		{ID: "t-2", Name: "教师二", Kind: KindTeacher, LastPeriod: lastPeriod(3)},
		{ID: "t-3", Name: "教师三", Kind: KindTeacher, LastPeriod: lastPeriod(7)},
	}
}

func testAdmins() []Staff {
	return []Staff{
		{ID: "a-1", Name: "行政一", Kind: KindAdmin, Role: "clerk"},
		{ID: "a-2", Name: "行政二", Kind: KindAdmin, Role: "vice_principal"},
		{ID: "a-3", Name: "行政三", Kind: KindAdmin, Role: "guard"},
		{ID: "a-4", Name: "行政四", Kind: KindAdmin, Role: "counselor"},
	}
}

func poolIDs(pool []Staff) map[string]bool {
	ids := make(map[string]bool, len(pool))
	for _, s := range pool {
		ids[s.ID] = true
	}
	return ids
}

func TestResolvePool_NoRules(t *testing.T) {
	pool := ResolvePool(testTeachers(), testAdmins(), nil, Settings{})
	if len(pool) != 7 {
		t.Fatalf("池大小 = %d, 期望 7", len(pool))
	}
	// 顺序：教师在前（输入顺序），行政在后
	if pool[0].ID != "t-1" || pool[3].ID != "a-1" {
		t.Errorf("池顺序错误: %s, %s", pool[0].ID, pool[3].ID)
	}
}

func TestResolvePool_ExplicitExclusion(t *testing.T) {
	rules := []ExclusionRule{
		{StaffID: "t-2", IsExcluded: true},
		{StaffID: "a-1", IsExcluded: true},
		{StaffID: "a-4", IsExcluded: false}, // 未排除的规则不生效
	}
	pool := ResolvePool(testTeachers(), testAdmins(), rules, Settings{})
	ids := poolIDs(pool)
	if ids["t-2"] || ids["a-1"] {
		t.Error("显式排除的人员不应出现在可用池中")
	}
	if !ids["a-4"] {
		t.Error("is_excluded=false 的规则不应排除人员")
	}
}

func TestResolvePool_RoleFamilies(t *testing.T) {
	st := Settings{ExcludeVicePrincipals: true, ExcludeGuards: true}
	pool := ResolvePool(testTeachers(), testAdmins(), nil, st)
	ids := poolIDs(pool)
	if ids["a-2"] {
		t.Error("副校长职务族应被自动排除")
	}
	if ids["a-3"] {
		t.Error("保安职务族应被自动排除")
	}
	if !ids["a-1"] || !ids["a-4"] {
		t.Error("其他行政人员不应受职务族排除影响")
	}
}

func TestResolvePool_AutoExcludeTeachers(t *testing.T) {
	admins := []Staff{
		{ID: "a-1", Kind: KindAdmin}, {ID: "a-2", Kind: KindAdmin},
		{ID: "a-3", Kind: KindAdmin}, {ID: "a-4", Kind: KindAdmin},
		{ID: "a-5", Kind: KindAdmin},
	}
	st := Settings{AutoExcludeTeachers: true}

	pool := ResolvePool(testTeachers(), admins, nil, st)
	for _, s := range pool {
		if s.Kind == KindTeacher {
			t.Fatal("行政人员 ≥ 5 时全部教师应被排除")
		}
	}

	// 行政人员仅 4 人时不触发
	pool = ResolvePool(testTeachers(), admins[:4], nil, st)
	ids := poolIDs(pool)
	if !ids["t-1"] {
		t.Error("行政人员 < 5 时教师不应被排除")
	}
}

func TestResolvePool_ThresholdCountsPreExclusion(t *testing.T) {
	// 阈值判定基于排除前的行政人员总数：5 人中 2 人被显式排除，教师仍应被排除
	admins := []Staff{
		{ID: "a-1", Kind: KindAdmin}, {ID: "a-2", Kind: KindAdmin},
		{ID: "a-3", Kind: KindAdmin}, {ID: "a-4", Kind: KindAdmin},
		{ID: "a-5", Kind: KindAdmin},
	}
	rules := []ExclusionRule{
		{StaffID: "a-1", IsExcluded: true},
		{StaffID: "a-2", IsExcluded: true},
	}
	pool := ResolvePool(testTeachers(), admins, rules, Settings{AutoExcludeTeachers: true})
	for _, s := range pool {
		if s.Kind == KindTeacher {
			t.Fatal("阈值应基于排除前行政人数判定")
		}
	}
}

func TestResolvePool_EmptyResultIsValid(t *testing.T) {
	rules := []ExclusionRule{
		{StaffID: "t-1", IsExcluded: true},
	}
	pool := ResolvePool(testTeachers()[:1], nil, rules, Settings{})
	if len(pool) != 0 {
		t.Errorf("池大小 = %d, 期望 0", len(pool))
	}
}

func TestSuggestedPerDay(t *testing.T) {
	cases := []struct {
		pool, days, want int
	}{
		{10, 5, 2},
		{7, 5, 2},  // ceil(7/5)=2
		{3, 5, 1},  // 下限 1
		{0, 5, 1},  // 空池仍返回 1
		{10, 0, 10}, // 零工作日钳制为 1 日
		{-3, 5, 1}, // 负数钳制
	}
	for _, c := range cases {
		if got := SuggestedPerDay(c.pool, c.days); got != c.want {
			t.Errorf("SuggestedPerDay(%d, %d) = %d, 期望 %d", c.pool, c.days, got, c.want)
		}
	}
}

func TestIsEvenDistribution(t *testing.T) {
	if !IsEvenDistribution(2, 5, 10) {
		t.Error("2×5=10 应为均分")
	}
	if IsEvenDistribution(2, 5, 7) {
		t.Error("2×5≠7 应为不均分")
	}
}
