package engine

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/impkit/impkit/core"
	"github.com/impkit/impkit/result"
)

// ResultSink 把已提交的轮次与最终快照落盘到 core.Store，用于审计与断点查看。
//
// key 形态：
//   - {prefix}:{method}:round:{i} → 第 i 轮的得分与胜出者
//   - {prefix}:{method}:result    → 完整结果快照（含排名）
type ResultSink struct {
	Store  core.Store
	Prefix string // key 前缀，默认 "impkit"
	TTL    int    // 秒，0 表示不过期
}

func (s *ResultSink) prefix() string {
	if s.Prefix == "" {
		return "impkit"
	}
	return s.Prefix
}

// SaveRound 写入第 i 轮的原始结果。
func (s *ResultSink) SaveRound(ctx context.Context, res *result.ImportanceResult, i int) error {
	rd, err := res.Round(i)
	if err != nil {
		return err
	}
	data, err := json.Marshal(rd)
	if err != nil {
		return fmt.Errorf("marshal round %d: %w", i, err)
	}
	key := fmt.Sprintf("%s:%s:round:%d", s.prefix(), res.Method(), i)
	if err := s.Store.Set(ctx, key, data, s.TTL); err != nil {
		return fmt.Errorf("store round %d: %w", i, err)
	}
	return nil
}

// SaveSnapshot 写入完整结果快照。
func (s *ResultSink) SaveSnapshot(ctx context.Context, res *result.ImportanceResult) error {
	data, err := json.Marshal(res)
	if err != nil {
		return fmt.Errorf("marshal result: %w", err)
	}
	key := fmt.Sprintf("%s:%s:result", s.prefix(), res.Method())
	if err := s.Store.Set(ctx, key, data, s.TTL); err != nil {
		return fmt.Errorf("store result: %w", err)
	}
	return nil
}
