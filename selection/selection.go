// Package selection 提供选择策略：给定变量总数与已入选变量集合，
// 生成本轮要评估的 (候选变量, 包含列集合) 序列。
package selection

// Candidate 是一轮中的单个候选：被评估的变量，以及打分时 inputs 应包含的列集合。
type Candidate struct {
	Variable int   // 被评估变量的列下标
	Columns  []int // 打分时包含的列下标集合
}

// Strategy 是选择策略接口。
//
// 约定：
//   - 纯函数，无状态
//   - 对 (nvars, important) 恰好产出 nvars - len(important) 个候选
//   - 候选按变量下标升序排列，保证下游平局裁决可复现
type Strategy interface {
	// Name 返回策略名称（用于配置与结果的 method 字段展示）
	Name() string

	// Candidates 生成一轮的候选序列。important 是已入选变量的列下标，按入选顺序排列。
	Candidates(nvars int, important []int) []Candidate
}

// remaining 返回尚未出现在 important 中的变量下标，升序。
func remaining(nvars int, important []int) []int {
	used := make(map[int]bool, len(important))
	for _, v := range important {
		used[v] = true
	}
	out := make([]int, 0, nvars-len(important))
	for v := 0; v < nvars; v++ {
		if !used[v] {
			out = append(out, v)
		}
	}
	return out
}
