// Package metrics 提供多分类列联表与由其派生的技巧评分
// （Peirce、Heidke、Gerrity）。这些函数可以直接用在打分回调里为模型预测打分。
package metrics

import (
	"fmt"
	"sort"

	"github.com/impkit/impkit/core"
)

// Forecast 是真值/预测序列的封闭表示：只有 Labels 与 Probs 两种实现。
// 显式的类型区分取代"看形状猜语义"，歧义在编译期就消失。
type Forecast interface {
	rows() int
	forecast()
}

// Labels 是确定型标签序列，一行一个类别标签。
type Labels []float64

func (l Labels) rows() int { return len(l) }
func (Labels) forecast()   {}

// Probs 是概率型预测：行 = 样本，列 = 类别，每行是各类别的概率（或 one-hot）。
// 各行宽度必须一致。
type Probs [][]float64

func (p Probs) rows() int { return len(p) }
func (Probs) forecast()   {}

func (p Probs) width() int {
	if len(p) == 0 {
		return 0
	}
	return len(p[0])
}

// ContingencyTable 构建 k×k 列联表：行 = 预测类别，列 = 观测类别，
// 每格是非负计数，总和等于样本数。
//
// 分派规则（按序）：
//  1. 真值与预测行数不一致 → LENGTH_MISMATCH（先于任何构表）
//  2. 真值为 Probs：预测必须是同宽的 Probs，否则
//     UNMATCHING_PROBABILISTIC_FORECASTS；二者按行 argmax 压成硬标签后计数，
//     k = 类别轴宽度，classes 被忽略
//  3. 真值为 Labels、预测为 Probs：必须提供 classes 顺序（argmax 的类别归属
//     否则无法确定），缺失 → AMBIGUOUS_PROBABILISTIC_FORECASTS；预测按
//     classes[argmax] 压成硬标签
//  4. 双 Labels：classes 缺省为真值∪预测去重后升序
//
// 不在 classes 中的标签不计入任何格子。
func ContingencyTable(truths, predictions Forecast, classes []float64) ([][]float64, error) {
	if truths.rows() != predictions.rows() {
		return nil, core.NewDomainError(core.ModuleMetrics, core.ErrorCodeLengthMismatch,
			fmt.Sprintf("contingency table: %d truths vs %d predictions", truths.rows(), predictions.rows()))
	}

	switch t := truths.(type) {
	case Probs:
		p, ok := predictions.(Probs)
		if !ok || p.width() != t.width() {
			return nil, core.NewDomainError(core.ModuleMetrics, core.ErrorCodeUnmatchingProbabilisticForecasts,
				"contingency table: probabilistic truths require probabilistic predictions with the same class width")
		}
		k := t.width()
		table := newTable(k)
		for i := range t {
			table[argmaxRow(p[i])][argmaxRow(t[i])]++
		}
		return table, nil

	case Labels:
		var preds Labels
		switch p := predictions.(type) {
		case Probs:
			if classes == nil {
				return nil, core.NewDomainError(core.ModuleMetrics, core.ErrorCodeAmbiguousProbabilisticForecasts,
					"contingency table: probabilistic predictions with deterministic truths require an explicit classes ordering")
			}
			if p.width() > len(classes) {
				return nil, core.NewDomainError(core.ModuleMetrics, core.ErrorCodeInvalidInput,
					fmt.Sprintf("contingency table: predictions have %d classes but only %d class labels given", p.width(), len(classes)))
			}
			preds = make(Labels, len(p))
			for i := range p {
				preds[i] = classes[argmaxRow(p[i])]
			}
		case Labels:
			preds = p
		}

		cls := classes
		if cls == nil {
			cls = sortedUnion(t, preds)
		}
		index := make(map[float64]int, len(cls))
		for i, c := range cls {
			index[c] = i
		}
		table := newTable(len(cls))
		for i := range t {
			pi, okp := index[preds[i]]
			ti, okt := index[t[i]]
			if !okp || !okt {
				continue
			}
			table[pi][ti]++
		}
		return table, nil
	}

	return nil, core.NewDomainError(core.ModuleMetrics, core.ErrorCodeInvalidInput, "contingency table: unknown forecast type")
}

func newTable(k int) [][]float64 {
	table := make([][]float64, k)
	for i := range table {
		table[i] = make([]float64, k)
	}
	return table
}

// argmaxRow 返回行内最大值的下标；相等取先出现的。
func argmaxRow(row []float64) int {
	best := 0
	for i := 1; i < len(row); i++ {
		if row[i] > row[best] {
			best = i
		}
	}
	return best
}

// sortedUnion 返回两个标签序列的去重升序并集。
func sortedUnion(a, b Labels) []float64 {
	seen := make(map[float64]bool, len(a)+len(b))
	out := make([]float64, 0, len(a)+len(b))
	for _, l := range a {
		if !seen[l] {
			seen[l] = true
			out = append(out, l)
		}
	}
	for _, l := range b {
		if !seen[l] {
			seen[l] = true
			out = append(out, l)
		}
	}
	sort.Float64s(out)
	return out
}
