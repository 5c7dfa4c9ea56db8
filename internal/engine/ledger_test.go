package engine

import "testing"

func TestLedger_CloneIndependent(t *testing.T) {
	l := Ledger{"t-1": 2, "a-1": 0}
	c := l.Clone()
	c["t-1"] = 9
	c["new"] = 1
	if l["t-1"] != 2 {
		t.Error("副本修改影响了原台账")
	}
	if _, ok := l["new"]; ok {
		t.Error("副本新增键泄漏到原台账")
	}
}

func TestLedger_CloneNil(t *testing.T) {
	var l Ledger
	c := l.Clone()
	if c == nil {
		t.Fatal("nil 台账的副本应为空账而非 nil")
	}
	c["t-1"] = 1
	if c.Count("t-1") != 1 {
		t.Error("空账副本应可写")
	}
}

func TestLedger_Count(t *testing.T) {
	l := Ledger{"t-1": 3}
	if l.Count("t-1") != 3 {
		t.Errorf("Count(t-1) = %d, 期望 3", l.Count("t-1"))
	}
	if l.Count("unknown") != 0 {
		t.Error("未记录人员计数应为 0")
	}
}

func TestLedger_Spread(t *testing.T) {
	cases := []struct {
		name string
		l    Ledger
		want int
	}{
		{"空账", Ledger{}, 0},
		{"单人", Ledger{"t-1": 4}, 0},
		{"均衡", Ledger{"t-1": 2, "t-2": 2, "a-1": 2}, 0},
		{"差一", Ledger{"t-1": 2, "t-2": 3}, 1},
		{"不均衡", Ledger{"t-1": 0, "t-2": 5, "a-1": 2}, 5},
	}
	for _, c := range cases {
		if got := c.l.Spread(); got != c.want {
			t.Errorf("%s: Spread() = %d, 期望 %d", c.name, got, c.want)
		}
	}
}
