package engine

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/impkit/impkit/core"
	"github.com/impkit/impkit/selection"
)

// ParallelExecutor 并发执行一轮的候选打分。
// 输入数据只读，可安全共享；结果按候选位置写入各自的槽，保持与串行执行相同的顺序。
// 任一候选失败时取消其余候选并返回首个错误，整轮中止。
type ParallelExecutor struct {
	MaxConcurrent int // 最大并发数（0 表示无限制）
}

func (p ParallelExecutor) ExecuteRound(
	ctx context.Context,
	training, scoring core.DataPair,
	candidates []selection.Candidate,
	fn core.ScoreFn,
) ([]VarScore, error) {
	out := make([]VarScore, len(candidates))

	eg, ctx := errgroup.WithContext(ctx)
	if p.MaxConcurrent > 0 {
		eg.SetLimit(p.MaxConcurrent)
	}

	for i, cand := range candidates {
		i, cand := i, cand
		eg.Go(func() error {
			score, err := fn(ctx, training.Subset(cand.Columns), scoring.Subset(cand.Columns))
			if err != nil {
				return fmt.Errorf("score variable %d: %w", cand.Variable, err)
			}
			// 每个槽只有一个写者，无需加锁
			out[i] = VarScore{Variable: cand.Variable, Score: score}
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
