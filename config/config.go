// Package config 提供运行配置的加载、校验与组装（支持 YAML/JSON）。
// 策略名称在这里（配置期）对照封闭注册表校验，未知名称立刻报错，
// 不会等到运行中途才发现。
package config

import (
	"encoding/json"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/impkit/impkit/core"
	"github.com/impkit/impkit/pkg/dsl"
	"github.com/impkit/impkit/strategy"
)

// Config 是一次重要性评估运行的配置结构。
type Config struct {
	Run RunConfig `yaml:"run" json:"run"`
}

// RunConfig 描述运行参数；数据与打分回调由代码侧提供。
type RunConfig struct {
	// Method 是结果中的方法名，显式必填
	Method string `yaml:"method" json:"method"`

	// Selection 是选择策略：forward（缺省）/ backward
	Selection string `yaml:"selection" json:"selection"`

	// Scoring 是打分策略名称：argmin / argmax
	Scoring string `yaml:"scoring" json:"scoring"`

	// ScoringExpr 可选：CEL 得分变换表达式，与 Scoring 组合使用
	ScoringExpr string `yaml:"scoring_expr" json:"scoring_expr"`

	// NImportant 要排出的变量个数；0 表示全部
	NImportant int `yaml:"nimportant" json:"nimportant"`

	// VariableNames 可选；缺省取训练 inputs 的列名
	VariableNames []string `yaml:"variable_names" json:"variable_names"`

	Executor ExecutorConfig `yaml:"executor" json:"executor"`
	Store    StoreConfig    `yaml:"store" json:"store"`
}

// ExecutorConfig 配置一轮内部的执行方式。
type ExecutorConfig struct {
	Type          string `yaml:"type" json:"type"`                     // serial（缺省）/ parallel
	MaxConcurrent int    `yaml:"max_concurrent" json:"max_concurrent"` // parallel 时的并发上限，0 表示无限制
}

// StoreConfig 配置结果落盘；Type 为空表示不落盘。
type StoreConfig struct {
	Type   string `yaml:"type" json:"type"` // memory / redis
	Addr   string `yaml:"addr" json:"addr"` // redis 地址
	DB     int    `yaml:"db" json:"db"`
	Prefix string `yaml:"prefix" json:"prefix"`
	TTL    int    `yaml:"ttl" json:"ttl"` // 秒，0 表示不过期
}

// LoadFromYAML 从 YAML 文件加载运行配置。
func LoadFromYAML(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}

	return &cfg, nil
}

// LoadFromJSON 从 JSON 文件加载运行配置。
func LoadFromJSON(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse json: %w", err)
	}

	return &cfg, nil
}

// Validate 校验配置：方法名必填，各策略名称必须在各自的封闭枚举内，
// CEL 表达式（若有）必须可编译。
func (c *Config) Validate() error {
	r := c.Run
	if r.Method == "" {
		return core.NewDomainError(core.ModuleConfig, core.ErrorCodeInvalidInput, "config: run.method is required")
	}
	switch r.Selection {
	case "", "forward", "backward":
	default:
		return core.NewDomainError(core.ModuleConfig, core.ErrorCodeInvalidInput,
			fmt.Sprintf("config: unknown selection strategy %q (supported: [backward forward])", r.Selection))
	}
	if _, err := strategy.Resolve(r.Scoring); err != nil {
		return err
	}
	if r.ScoringExpr != "" {
		if _, err := dsl.Compile(r.ScoringExpr); err != nil {
			return core.NewDomainError(core.ModuleConfig, core.ErrorCodeInvalidInput,
				fmt.Sprintf("config: scoring_expr: %v", err))
		}
	}
	if r.NImportant < 0 {
		return core.NewDomainError(core.ModuleConfig, core.ErrorCodeInvalidInput,
			fmt.Sprintf("config: nimportant %d is negative", r.NImportant))
	}
	switch r.Executor.Type {
	case "", "serial", "parallel":
	default:
		return core.NewDomainError(core.ModuleConfig, core.ErrorCodeInvalidInput,
			fmt.Sprintf("config: unknown executor type %q (supported: [parallel serial])", r.Executor.Type))
	}
	switch r.Store.Type {
	case "", "memory", "redis":
	default:
		return core.NewDomainError(core.ModuleConfig, core.ErrorCodeInvalidInput,
			fmt.Sprintf("config: unknown store type %q (supported: [memory redis])", r.Store.Type))
	}
	if r.Store.Type == "redis" && r.Store.Addr == "" {
		return core.NewDomainError(core.ModuleConfig, core.ErrorCodeInvalidInput, "config: redis store requires addr")
	}
	return nil
}
