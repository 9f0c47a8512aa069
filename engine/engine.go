// Package engine 实现序贯选择引擎：逐轮生成候选、调用外部打分回调、
// 按打分策略裁决胜出者，并把结果追加进 ImportanceResult 账本。
//
// 状态流转：Init → RoundRunning → RoundCommitted → (RoundRunning | Done)。
// 每轮恰好提交一个变量；已提交的变量不再进入后续候选；轮数精确等于 NImportant。
package engine

import (
	"context"
	"fmt"

	"github.com/impkit/impkit/core"
	"github.com/impkit/impkit/result"
	"github.com/impkit/impkit/selection"
	"github.com/impkit/impkit/strategy"
)

// Runner 是一次序贯选择运行的全部配置。
type Runner struct {
	// Training / Scoring 是 (inputs, outputs) 数据对，分别传给打分回调的两个参数
	Training core.DataPair
	Scoring  core.DataPair

	// ScoreFn 是外部打分回调
	ScoreFn core.ScoreFn

	// Selector 从一轮得分中选出最优下标；用名称配置时先经 strategy.Resolve
	Selector strategy.Selector

	// Strategy 生成每轮的候选序列
	Strategy selection.Strategy

	// Method 是结果中的方法名，显式必填
	Method string

	// VariableNames 可选；缺省取训练 inputs 的列名
	VariableNames []string

	// NImportant 是要排出的变量个数；0 表示全部
	NImportant int

	// Executor 可选；缺省 SerialExecutor。并行执行只发生在一轮内部，轮间屏障不变
	Executor RoundExecutor

	// Sink 可选；设置后每轮提交即落盘，落盘失败视为运行失败
	Sink *ResultSink
}

// Run 执行整个选择过程，返回 ImportanceResult。
// 打分回调的错误原样向上传播并中止当前轮，不提交部分结果。
func (r *Runner) Run(ctx context.Context) (*result.ImportanceResult, error) {
	// Init：校验配置与数据，确定变量名与轮数
	if r.ScoreFn == nil {
		return nil, core.NewDomainError(core.ModuleEngine, core.ErrorCodeInvalidInput, "engine: ScoreFn is required")
	}
	if r.Selector == nil {
		return nil, core.NewDomainError(core.ModuleEngine, core.ErrorCodeInvalidInput, "engine: Selector is required")
	}
	if r.Strategy == nil {
		return nil, core.NewDomainError(core.ModuleEngine, core.ErrorCodeInvalidInput, "engine: Strategy is required")
	}
	if r.Method == "" {
		return nil, core.NewDomainError(core.ModuleEngine, core.ErrorCodeInvalidInput, "engine: Method is required")
	}
	if err := r.Training.Verify(); err != nil {
		return nil, fmt.Errorf("training data: %w", err)
	}
	if err := r.Scoring.Verify(); err != nil {
		return nil, fmt.Errorf("scoring data: %w", err)
	}

	varNames := r.VariableNames
	if varNames == nil {
		varNames = r.Training.Inputs.Columns()
	}
	nvars := len(varNames)
	if nvars == 0 {
		return nil, core.NewDomainError(core.ModuleEngine, core.ErrorCodeInvalidInput, "engine: no variables")
	}
	if cols := r.Training.Inputs.Columns(); len(cols) != nvars {
		return nil, core.NewDomainError(core.ModuleEngine, core.ErrorCodeInvalidInput,
			fmt.Sprintf("engine: %d variable names for %d columns", nvars, len(cols)))
	}

	nimportant := r.NImportant
	if nimportant == 0 {
		nimportant = nvars
	}
	if nimportant < 0 || nimportant > nvars {
		return nil, core.NewDomainError(core.ModuleEngine, core.ErrorCodeInvalidInput,
			fmt.Sprintf("engine: NImportant %d out of range [1, %d]", nimportant, nvars))
	}

	exec := r.Executor
	if exec == nil {
		exec = SerialExecutor{}
	}

	res := result.New(r.Method, varNames)
	important := make([]int, 0, nimportant)

	for round := 0; round < nimportant; round++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		// RoundRunning：候选集在 important 冻结后生成，一轮内只读
		candidates := r.Strategy.Candidates(nvars, important)
		scores, err := exec.ExecuteRound(ctx, r.Training, r.Scoring, candidates, r.ScoreFn)
		if err != nil {
			return nil, fmt.Errorf("round %d: %w", round, err)
		}
		if len(scores) != len(candidates) {
			return nil, core.NewDomainError(core.ModuleEngine, core.ErrorCodeInvalidInput,
				fmt.Sprintf("round %d: executor returned %d scores for %d candidates", round, len(scores), len(candidates)))
		}

		// RoundCommitted：按候选顺序裁决胜出者，整轮一次性入账
		vals := make([]float64, len(scores))
		roundScores := make(map[string]float64, len(scores))
		for i, vs := range scores {
			vals[i] = vs.Score
			roundScores[varNames[vs.Variable]] = vs.Score
		}
		best := r.Selector(vals)
		if best < 0 || best >= len(scores) {
			return nil, core.NewDomainError(core.ModuleEngine, core.ErrorCodeInvalidInput,
				fmt.Sprintf("round %d: selector returned index %d for %d scores", round, best, len(scores)))
		}
		winner := scores[best].Variable
		if err := res.AddNewResults(roundScores, varNames[winner]); err != nil {
			return nil, fmt.Errorf("round %d: %w", round, err)
		}
		important = append(important, winner)

		if r.Sink != nil {
			if err := r.Sink.SaveRound(ctx, res, round); err != nil {
				return nil, fmt.Errorf("round %d: %w", round, err)
			}
		}
	}

	// Done
	if r.Sink != nil {
		if err := r.Sink.SaveSnapshot(ctx, res); err != nil {
			return nil, err
		}
	}
	return res, nil
}
