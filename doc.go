// Package impkit 是一个变量重要性评估工具包（Importance Kit）。
//
// 设计要点：
// - Engine-first: 序贯选择引擎逐轮运行（候选生成 → 外部打分 → 策略裁决 → 入账）
// - 策略可插拔: 打分策略（argmin/argmax/CEL 表达式）与选择策略（前向/后向）均为封闭可配置项
// - 执行可替换: 一轮内部串行或并行执行等价，轮间屏障由引擎保证
package impkit

import (
	"github.com/impkit/impkit/core"
	"github.com/impkit/impkit/engine"
	"github.com/impkit/impkit/result"
)

// 轻量 facade：便于用户直接 import "impkit" 使用核心抽象。
type Runner = engine.Runner
type ImportanceResult = result.ImportanceResult
type Dataset = core.Dataset
type DataPair = core.DataPair
type ScoreFn = core.ScoreFn
