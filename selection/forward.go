package selection

// Forward 是序贯前向选择（SFS）：
// 对每个未入选变量，候选列集合 = 已入选变量 ∪ {该变量}。
// 列顺序为入选顺序在前、候选在后，保证打分函数看到稳定的列排布。
type Forward struct{}

func (Forward) Name() string { return "sequential_forward" }

func (Forward) Candidates(nvars int, important []int) []Candidate {
	rest := remaining(nvars, important)
	out := make([]Candidate, 0, len(rest))
	for _, v := range rest {
		cols := make([]int, 0, len(important)+1)
		cols = append(cols, important...)
		cols = append(cols, v)
		out = append(out, Candidate{Variable: v, Columns: cols})
	}
	return out
}
