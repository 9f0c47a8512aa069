// Package strategy 提供打分策略：从一轮得分中选出“最优”候选的规则。
// 最优不一定是最大：损失类指标越小越好，技巧类指标越大越好。
package strategy

import (
	"fmt"
	"sort"

	"github.com/impkit/impkit/core"
)

// Selector 从一轮得分中返回最优下标。
//
// 约定：
//   - 纯函数，无状态
//   - scores 按候选生成顺序排列（上游按变量下标升序生成候选）
//   - 完全相等的得分取先出现的下标，因此平局总是落在下标最小的变量上
type Selector func(scores []float64) int

// 注册表是封闭枚举：只有下列名称，配置期校验，不支持运行时注册。
const (
	// ArgMin 分数越小越好（损失类指标，如 MSE）
	ArgMin = "argmin"
	// ArgMax 分数越大越好（技巧类指标，如 Peirce）
	ArgMax = "argmax"
)

var registry = map[string]Selector{
	ArgMin: argMin,
	ArgMax: argMax,
}

// Names 返回已注册的策略名称列表（排序），用于错误提示与配置校验。
func Names() []string {
	names := make([]string, 0, len(registry))
	for n := range registry {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Resolve 将策略名称解析为 Selector。
// 未知名称返回 UNRECOGNIZED_SCORING_STRATEGY 错误；直接持有 Selector 的调用方无需经过这里。
func Resolve(name string) (Selector, error) {
	sel, ok := registry[name]
	if !ok {
		return nil, core.NewDomainError(core.ModuleStrategy, core.ErrorCodeUnrecognizedScoringStrategy,
			fmt.Sprintf("unrecognized scoring strategy %q (supported: %v)", name, Names()))
	}
	return sel, nil
}

func argMin(scores []float64) int {
	best := 0
	for i := 1; i < len(scores); i++ {
		if scores[i] < scores[best] {
			best = i
		}
	}
	return best
}

func argMax(scores []float64) int {
	best := 0
	for i := 1; i < len(scores); i++ {
		if scores[i] > scores[best] {
			best = i
		}
	}
	return best
}
