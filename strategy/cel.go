package strategy

import (
	"math"

	"github.com/impkit/impkit/pkg/dsl"
)

// CELSelector 把 CEL 得分变换表达式与基础方向组合成 Selector：
// 先对每个得分求表达式值作为比较键，再按 direction（argmin/argmax）取最优。
//
// 典型用法：
//   - ("argmin", "score < 0.5 ? 0.5 - score : score - 0.5") → 选离 0.5 最近的
//   - ("argmin", "-score") → 等价于 argmax
//
// 表达式在这里（配置期）编译，编译失败立刻报错。
func CELSelector(direction, expr string) (Selector, error) {
	base, err := Resolve(direction)
	if err != nil {
		return nil, err
	}
	compiled, err := dsl.Compile(expr)
	if err != nil {
		return nil, err
	}

	// 求值失败的候选给最差键，不参与胜出
	worst := math.Inf(1)
	if direction == ArgMax {
		worst = math.Inf(-1)
	}

	return func(scores []float64) int {
		keys := make([]float64, len(scores))
		for i, s := range scores {
			k, err := compiled.Eval(s)
			if err != nil {
				k = worst
			}
			keys[i] = k
		}
		return base(keys)
	}, nil
}
