package config

import (
	"context"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/impkit/impkit/core"
	"github.com/impkit/impkit/engine"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestLoadFromYAML(t *testing.T) {
	path := writeFile(t, "run.yaml", `
run:
  method: sfs-skill
  selection: forward
  scoring: argmax
  nimportant: 2
  executor:
    type: parallel
    max_concurrent: 4
  store:
    type: memory
    prefix: exp42
`)

	cfg, err := LoadFromYAML(path)
	if err != nil {
		t.Fatalf("LoadFromYAML() error = %v", err)
	}
	if cfg.Run.Method != "sfs-skill" || cfg.Run.Scoring != "argmax" || cfg.Run.NImportant != 2 {
		t.Errorf("unexpected run config: %+v", cfg.Run)
	}
	if cfg.Run.Executor.Type != "parallel" || cfg.Run.Executor.MaxConcurrent != 4 {
		t.Errorf("unexpected executor config: %+v", cfg.Run.Executor)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() error = %v", err)
	}
}

func TestLoadFromJSON(t *testing.T) {
	path := writeFile(t, "run.json", `{
  "run": {
    "method": "sbs-loss",
    "selection": "backward",
    "scoring": "argmin"
  }
}`)

	cfg, err := LoadFromJSON(path)
	if err != nil {
		t.Fatalf("LoadFromJSON() error = %v", err)
	}
	if cfg.Run.Selection != "backward" {
		t.Errorf("selection = %q, want backward", cfg.Run.Selection)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() error = %v", err)
	}
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		cfg := &Config{}
		cfg.Run.Method = "m"
		cfg.Run.Scoring = "argmin"
		return cfg
	}

	tests := []struct {
		name   string
		mutate func(*Config)
		check  func(error) bool
	}{
		{
			name:   "missing method",
			mutate: func(c *Config) { c.Run.Method = "" },
			check:  core.IsInvalidInput,
		},
		{
			name:   "unknown scoring strategy has distinct code",
			mutate: func(c *Config) { c.Run.Scoring = "mean" },
			check:  core.IsUnrecognizedScoringStrategy,
		},
		{
			name:   "unknown selection strategy",
			mutate: func(c *Config) { c.Run.Selection = "exhaustive" },
			check:  core.IsInvalidInput,
		},
		{
			name:   "broken scoring expr",
			mutate: func(c *Config) { c.Run.ScoringExpr = "score +" },
			check:  core.IsInvalidInput,
		},
		{
			name:   "unknown executor",
			mutate: func(c *Config) { c.Run.Executor.Type = "distributed" },
			check:  core.IsInvalidInput,
		},
		{
			name:   "unknown store",
			mutate: func(c *Config) { c.Run.Store.Type = "mysql" },
			check:  core.IsInvalidInput,
		},
		{
			name:   "redis store without addr",
			mutate: func(c *Config) { c.Run.Store.Type = "redis" },
			check:  core.IsInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base()
			tt.mutate(cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("Validate() expected error, got nil")
			}
			if !tt.check(err) {
				t.Errorf("Validate() error = %v, wrong code", err)
			}
		})
	}

	t.Run("valid config passes", func(t *testing.T) {
		if err := base().Validate(); err != nil {
			t.Errorf("Validate() error = %v", err)
		}
	})
}

func TestBuild_RunsEndToEnd(t *testing.T) {
	cfg := &Config{}
	cfg.Run.Method = "sfs"
	cfg.Run.Scoring = "argmax"
	cfg.Run.NImportant = 2
	cfg.Run.Executor = ExecutorConfig{Type: "parallel", MaxConcurrent: 2}
	cfg.Run.Store = StoreConfig{Type: "memory", Prefix: "t"}

	inputs := core.NewTable([]string{"a", "b", "c"}, [][]float64{{1, 2, 3}, {4, 5, 6}})
	pair := core.DataPair{Inputs: inputs, Outputs: []float64{0, 1}}

	fn := func(_ context.Context, training, _ core.DataPair) (float64, error) {
		cols := training.Inputs.Columns()
		return map[string]float64{"a": 0.9, "b": 0.5, "c": 0.7}[cols[len(cols)-1]], nil
	}

	runner, err := Build(cfg, pair, pair, fn)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if _, ok := runner.Executor.(engine.ParallelExecutor); !ok {
		t.Errorf("executor = %T, want ParallelExecutor", runner.Executor)
	}
	if runner.Sink == nil {
		t.Fatal("sink not configured")
	}
	defer runner.Sink.Store.Close()

	res, err := runner.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if got, want := res.Ranking(), []string{"a", "c"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Ranking() = %v, want %v", got, want)
	}
}

func TestBuild_CELScoringExpr(t *testing.T) {
	cfg := &Config{}
	cfg.Run.Method = "sfs"
	cfg.Run.Scoring = "argmin"
	cfg.Run.ScoringExpr = "-score" // argmin of -score == argmax
	cfg.Run.NImportant = 1

	inputs := core.NewTable([]string{"a", "b"}, [][]float64{{1, 2}})
	pair := core.DataPair{Inputs: inputs, Outputs: []float64{1}}

	fn := func(_ context.Context, training, _ core.DataPair) (float64, error) {
		cols := training.Inputs.Columns()
		return map[string]float64{"a": 0.1, "b": 0.9}[cols[len(cols)-1]], nil
	}

	runner, err := Build(cfg, pair, pair, fn)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	res, err := runner.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if got := res.Ranking(); len(got) != 1 || got[0] != "b" {
		t.Errorf("Ranking() = %v, want [b]", got)
	}
}
