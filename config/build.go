package config

import (
	"fmt"

	"github.com/impkit/impkit/core"
	"github.com/impkit/impkit/engine"
	"github.com/impkit/impkit/selection"
	"github.com/impkit/impkit/store"
	"github.com/impkit/impkit/strategy"
)

// Build 根据配置组装一个可运行的 engine.Runner。
// 数据对与打分回调无法放进配置文件，由代码侧传入。
func Build(cfg *Config, training, scoring core.DataPair, fn core.ScoreFn) (*engine.Runner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	r := cfg.Run

	var sel strategy.Selector
	var err error
	if r.ScoringExpr != "" {
		sel, err = strategy.CELSelector(r.Scoring, r.ScoringExpr)
	} else {
		sel, err = strategy.Resolve(r.Scoring)
	}
	if err != nil {
		return nil, err
	}

	var selStrategy selection.Strategy
	switch r.Selection {
	case "", "forward":
		selStrategy = selection.Forward{}
	case "backward":
		selStrategy = selection.Backward{}
	}

	var exec engine.RoundExecutor
	switch r.Executor.Type {
	case "parallel":
		exec = engine.ParallelExecutor{MaxConcurrent: r.Executor.MaxConcurrent}
	default:
		exec = engine.SerialExecutor{}
	}

	var sink *engine.ResultSink
	switch r.Store.Type {
	case "memory":
		sink = &engine.ResultSink{Store: store.NewMemoryStore(), Prefix: r.Store.Prefix, TTL: r.Store.TTL}
	case "redis":
		rs, err := store.NewRedisStore(r.Store.Addr, r.Store.DB)
		if err != nil {
			return nil, fmt.Errorf("connect redis store: %w", err)
		}
		sink = &engine.ResultSink{Store: rs, Prefix: r.Store.Prefix, TTL: r.Store.TTL}
	}

	return &engine.Runner{
		Training:      training,
		Scoring:       scoring,
		ScoreFn:       fn,
		Selector:      sel,
		Strategy:      selStrategy,
		Method:        r.Method,
		VariableNames: r.VariableNames,
		NImportant:    r.NImportant,
		Executor:      exec,
		Sink:          sink,
	}, nil
}
