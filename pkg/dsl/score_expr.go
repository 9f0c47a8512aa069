// Package dsl 提供基于 CEL (Common Expression Language) 的得分变换表达式。
// CEL 是 Google 开发的表达式语言，具有类型安全、高性能、线程安全等特性。
package dsl

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/google/cel-go/cel"
)

var (
	// celEnv 是全局的 CEL 环境，线程安全，可复用
	celEnv     *cel.Env
	celEnvOnce sync.Once
	celEnvErr  error
)

// getCELEnv 获取或创建 CEL 环境，只声明一个 double 变量 score。
func getCELEnv() (*cel.Env, error) {
	celEnvOnce.Do(func() {
		celEnv, celEnvErr = cel.NewEnv(
			cel.Variable("score", cel.DoubleType),
		)
	})
	return celEnv, celEnvErr
}

// ScoreExpr 是编译好的得分变换表达式：double score -> double key。
// 编译一次，可并发多次 Eval。
//
// 表达式语法（CEL 标准语法），例如：
//   - `-score`                          → 取反（把最大化问题翻成最小化）
//   - `score * score`                   → 惩罚偏离零的得分
//   - `score < 0.5 ? 0.5 - score : score - 0.5` → 离 0.5 的距离
type ScoreExpr struct {
	expr string
	prg  cel.Program
}

// Compile 编译得分变换表达式。
// 表达式必须产出 double，否则在这里（配置期）直接报错。
func Compile(expr string) (*ScoreExpr, error) {
	env, err := getCELEnv()
	if err != nil {
		return nil, fmt.Errorf("cel env: %w", err)
	}
	ast, issues := env.Compile(expr)
	if issues != nil && issues.Err() != nil {
		return nil, fmt.Errorf("compile %q: %w", expr, issues.Err())
	}
	if !reflect.DeepEqual(ast.OutputType(), cel.DoubleType) {
		return nil, fmt.Errorf("compile %q: output type is %v, want double", expr, ast.OutputType())
	}
	prg, err := env.Program(ast)
	if err != nil {
		return nil, fmt.Errorf("program %q: %w", expr, err)
	}
	return &ScoreExpr{expr: expr, prg: prg}, nil
}

// Expr 返回原始表达式文本。
func (e *ScoreExpr) Expr() string { return e.expr }

// Eval 对单个得分求值，返回变换后的比较键。
func (e *ScoreExpr) Eval(score float64) (float64, error) {
	out, _, err := e.prg.Eval(map[string]any{"score": score})
	if err != nil {
		return 0, fmt.Errorf("eval %q: %w", e.expr, err)
	}
	f, ok := out.Value().(float64)
	if !ok {
		return 0, fmt.Errorf("eval %q: result %v is not double", e.expr, out.Value())
	}
	return f, nil
}
