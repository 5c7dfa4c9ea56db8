package engine

// Ledger 公平性台账：staffID → 当前学期累计被排次数。
// 仅生成器递增；除调用方显式重置外单调不减。
type Ledger map[string]int

// Clone 返回台账的独立副本；nil 台账返回空账
func (l Ledger) Clone() Ledger {
	out := make(Ledger, len(l))
	for k, v := range l {
		out[k] = v
	}
	return out
}

// Count 查询某人累计次数；未记录视为 0
func (l Ledger) Count(staffID string) int {
	return l[staffID]
}

// Spread 返回台账内最大与最小计数之差。
// 0 或 1 视为均衡；更大的值由 UI 呈现为不均衡警示。
func (l Ledger) Spread() int {
	if len(l) == 0 {
		return 0
	}
	first := true
	var min, max int
	for _, v := range l {
		if first {
			min, max = v, v
			first = false
			continue
		}
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	return max - min
}

// NewLedger 创建空台账
func NewLedger() Ledger {
	return make(Ledger)
}
