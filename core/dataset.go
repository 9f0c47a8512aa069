package core

import (
	"fmt"
	"strconv"
)

// Dataset 是输入数据的领域接口。
//
// 设计原则：
//   - 引擎只依赖此接口，不关心数据的具体载体（内存矩阵、带列名的表、特征库加载结果等）
//   - 列裁剪（Subset）保持行顺序与行数不变
//   - 数据一旦进入引擎即视为只读，可以安全地在并发打分调用间共享
type Dataset interface {
	// Len 返回行数（样本数）
	Len() int

	// Columns 返回列标识（变量名），顺序固定
	Columns() []string

	// Subset 返回仅包含指定列（按下标）的数据，保持行顺序与行数
	Subset(cols []int) Dataset

	// Float64Matrix 以 行 × 列 的 [][]float64 形式物化数据
	Float64Matrix() [][]float64
}

// Matrix 是最常用的 Dataset 实现：行 × 列的 float64 矩阵。
// 列名即列下标（"0"、"1"、...）；需要有意义的变量名时使用 Table。
type Matrix [][]float64

func (m Matrix) Len() int { return len(m) }

func (m Matrix) Columns() []string {
	if len(m) == 0 {
		return nil
	}
	cols := make([]string, len(m[0]))
	for i := range cols {
		cols[i] = strconv.Itoa(i)
	}
	return cols
}

func (m Matrix) Subset(cols []int) Dataset {
	return subsetColumns(m, m.Columns(), cols)
}

func (m Matrix) Float64Matrix() [][]float64 { return m }

// Table 是带列名的 Dataset 实现，行为与 Matrix 一致。
type Table struct {
	Names []string
	Rows  [][]float64
}

// NewTable 创建一个带列名的 Table。
func NewTable(names []string, rows [][]float64) *Table {
	return &Table{Names: names, Rows: rows}
}

func (t *Table) Len() int { return len(t.Rows) }

func (t *Table) Columns() []string { return t.Names }

func (t *Table) Subset(cols []int) Dataset {
	return subsetColumns(t.Rows, t.Names, cols)
}

func (t *Table) Float64Matrix() [][]float64 { return t.Rows }

// subsetColumns 按列下标裁剪，列名跟随原始数据，保持行顺序。
func subsetColumns(rows [][]float64, names []string, cols []int) *Table {
	outNames := make([]string, len(cols))
	for i, c := range cols {
		outNames[i] = names[c]
	}
	out := make([][]float64, len(rows))
	for r, row := range rows {
		sub := make([]float64, len(cols))
		for i, c := range cols {
			sub[i] = row[c]
		}
		out[r] = sub
	}
	return &Table{Names: outNames, Rows: out}
}

// DataPair 是 (inputs, outputs) 数据对；训练与打分各提供一份。
// Outputs 对引擎完全透明，只做行数校验后原样传给打分回调。
type DataPair struct {
	Inputs  Dataset
	Outputs []float64
}

// Verify 校验数据对：inputs 非空且与 outputs 行数一致。
func (p DataPair) Verify() error {
	if p.Inputs == nil {
		return NewDomainError(ModuleEngine, ErrorCodeInvalidInput, "data pair: inputs is nil")
	}
	if p.Inputs.Len() != len(p.Outputs) {
		return NewDomainError(ModuleEngine, ErrorCodeLengthMismatch,
			fmt.Sprintf("data pair: inputs has %d rows but outputs has %d", p.Inputs.Len(), len(p.Outputs)))
	}
	return nil
}

// Subset 返回 inputs 列裁剪后的数据对，outputs 原样共享。
func (p DataPair) Subset(cols []int) DataPair {
	return DataPair{Inputs: p.Inputs.Subset(cols), Outputs: p.Outputs}
}
