package selection

// Backward 是序贯后向选择（SBS）：
// 对每个未入选变量，候选列集合 = 全量变量 \ (已入选变量 ∪ {该变量})。
// 此时"入选"的语义是被淘汰：每轮淘汰一个变量，先被淘汰的越不重要。
type Backward struct{}

func (Backward) Name() string { return "sequential_backward" }

func (Backward) Candidates(nvars int, important []int) []Candidate {
	rest := remaining(nvars, important)
	out := make([]Candidate, 0, len(rest))
	for _, v := range rest {
		cols := make([]int, 0, len(rest)-1)
		for _, c := range rest {
			if c != v {
				cols = append(cols, c)
			}
		}
		out = append(out, Candidate{Variable: v, Columns: cols})
	}
	return out
}
