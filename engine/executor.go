package engine

import (
	"context"
	"fmt"

	"github.com/impkit/impkit/core"
	"github.com/impkit/impkit/selection"
)

// VarScore 是一轮中单个候选的打分结果。
type VarScore struct {
	Variable int     // 候选变量的列下标
	Score    float64 // 打分回调的返回值
}

// RoundExecutor 执行一轮的全部候选打分。
//
// 契约：
//   - 返回的切片与 candidates 位置一一对应
//   - 调用时本轮的已入选变量集合已冻结；下一轮在胜出者提交前不会开始（严格轮间屏障）
//   - 任一候选打分失败整轮失败，不产出部分结果
//
// 引擎的轮间控制流不关心一轮内部如何执行，串行与并行实现等价可替换。
type RoundExecutor interface {
	ExecuteRound(
		ctx context.Context,
		training, scoring core.DataPair,
		candidates []selection.Candidate,
		fn core.ScoreFn,
	) ([]VarScore, error)
}

// SerialExecutor 是参考实现：逐个候选顺序打分，无重叠。
type SerialExecutor struct{}

func (SerialExecutor) ExecuteRound(
	ctx context.Context,
	training, scoring core.DataPair,
	candidates []selection.Candidate,
	fn core.ScoreFn,
) ([]VarScore, error) {
	out := make([]VarScore, 0, len(candidates))
	for _, cand := range candidates {
		score, err := fn(ctx, training.Subset(cand.Columns), scoring.Subset(cand.Columns))
		if err != nil {
			return nil, fmt.Errorf("score variable %d: %w", cand.Variable, err)
		}
		out = append(out, VarScore{Variable: cand.Variable, Score: score})
	}
	return out, nil
}
