// Package result 保存一次变量重要性运行的全部产出：
// 逐轮得分账本，以及由每轮胜出者派生的重要变量序列。
package result

import (
	"encoding/json"
	"fmt"

	"github.com/impkit/impkit/core"
)

// Round 是单轮的原始结果：本轮每个候选变量的得分，以及胜出者。
type Round struct {
	Scores map[string]float64 `json:"scores"`
	Winner string             `json:"winner"`
}

// ImportanceResult 是运行的唯一产出物，只追加。
//
// 约定：
//   - 每轮恰好提交一个胜出变量，提交顺序即重要性排名（第一个最重要）
//   - 一轮一经提交不可修改；引擎在轮与轮之间单线程提交
//   - 每轮得分表只包含尚未入选的变量
type ImportanceResult struct {
	method    string
	variables []string
	varSet    map[string]bool
	rounds    []Round
	ranking   []string
	chosen    map[string]bool
}

// New 创建空结果。method 是显式必填的方法名（不从任何函数名派生），
// variables 是固定的全量变量名，二者在运行期间不再变化。
func New(method string, variables []string) *ImportanceResult {
	varSet := make(map[string]bool, len(variables))
	for _, v := range variables {
		varSet[v] = true
	}
	return &ImportanceResult{
		method:    method,
		variables: append([]string(nil), variables...),
		varSet:    varSet,
		chosen:    make(map[string]bool),
	}
}

// Method 返回方法名。
func (r *ImportanceResult) Method() string { return r.method }

// Variables 返回全量变量名。
func (r *ImportanceResult) Variables() []string {
	return append([]string(nil), r.variables...)
}

// AddNewResults 提交一轮结果：本轮得分表 + 胜出变量。
// 校验失败时整轮拒绝，账本不变。
func (r *ImportanceResult) AddNewResults(scores map[string]float64, nextImportant string) error {
	remaining := len(r.variables) - len(r.ranking)
	if remaining == 0 {
		return core.NewDomainError(core.ModuleEngine, core.ErrorCodeInvalidInput,
			"importance result: all variables already ranked")
	}
	if !r.varSet[nextImportant] {
		return core.NewDomainError(core.ModuleEngine, core.ErrorCodeInvalidInput,
			fmt.Sprintf("importance result: unknown variable %q", nextImportant))
	}
	if r.chosen[nextImportant] {
		return core.NewDomainError(core.ModuleEngine, core.ErrorCodeInvalidInput,
			fmt.Sprintf("importance result: variable %q already ranked", nextImportant))
	}
	if len(scores) != remaining {
		return core.NewDomainError(core.ModuleEngine, core.ErrorCodeInvalidInput,
			fmt.Sprintf("importance result: round has %d scores, expected %d", len(scores), remaining))
	}
	if _, ok := scores[nextImportant]; !ok {
		return core.NewDomainError(core.ModuleEngine, core.ErrorCodeInvalidInput,
			fmt.Sprintf("importance result: winner %q missing from round scores", nextImportant))
	}
	for v := range scores {
		if !r.varSet[v] || r.chosen[v] {
			return core.NewDomainError(core.ModuleEngine, core.ErrorCodeInvalidInput,
				fmt.Sprintf("importance result: score for invalid candidate %q", v))
		}
	}

	copied := make(map[string]float64, len(scores))
	for v, s := range scores {
		copied[v] = s
	}
	r.rounds = append(r.rounds, Round{Scores: copied, Winner: nextImportant})
	r.ranking = append(r.ranking, nextImportant)
	r.chosen[nextImportant] = true
	return nil
}

// Ranking 返回重要变量序列（提交顺序即排名，第一个最重要）。
func (r *ImportanceResult) Ranking() []string {
	return append([]string(nil), r.ranking...)
}

// NumRounds 返回已提交轮数。
func (r *ImportanceResult) NumRounds() int { return len(r.rounds) }

// Round 返回第 i 轮的原始结果（副本，用于审计）。
func (r *ImportanceResult) Round(i int) (Round, error) {
	if i < 0 || i >= len(r.rounds) {
		return Round{}, core.NewDomainError(core.ModuleEngine, core.ErrorCodeNotFound,
			fmt.Sprintf("importance result: round %d of %d", i, len(r.rounds)))
	}
	return copyRound(r.rounds[i]), nil
}

// Rounds 返回全部轮次的原始结果（副本，用于审计）。
func (r *ImportanceResult) Rounds() []Round {
	out := make([]Round, len(r.rounds))
	for i, rd := range r.rounds {
		out[i] = copyRound(rd)
	}
	return out
}

func copyRound(rd Round) Round {
	scores := make(map[string]float64, len(rd.Scores))
	for v, s := range rd.Scores {
		scores[v] = s
	}
	return Round{Scores: scores, Winner: rd.Winner}
}

// Snapshot 是结果的可序列化视图，供 Store 落盘与外部消费。
type Snapshot struct {
	Method    string   `json:"method"`
	Variables []string `json:"variables"`
	Rounds    []Round  `json:"rounds"`
	Ranking   []string `json:"ranking"`
}

// Snapshot 生成当前结果的快照。
func (r *ImportanceResult) Snapshot() Snapshot {
	return Snapshot{
		Method:    r.method,
		Variables: r.Variables(),
		Rounds:    r.Rounds(),
		Ranking:   r.Ranking(),
	}
}

// MarshalJSON 按 Snapshot 形态序列化。
func (r *ImportanceResult) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.Snapshot())
}
