// Package feature 把外部特征库中的数据物化成引擎可用的 Dataset。
package feature

import (
	"context"
	"fmt"

	feastsdk "github.com/feast-dev/feast/sdk/go"
	feasttypes "github.com/feast-dev/feast/sdk/go/protos/feast/types"

	"github.com/impkit/impkit/core"
	"github.com/impkit/impkit/pkg/conv"
)

// FeastLoader 从 Feast Feature Store 拉取在线特征，
// 物化成 core.Table：行 = 实体，列 = 特征（即待评估的变量）。
//
// Feast 是开源的 Feature Store，gRPC Feature Server 默认端口 6565。
// 参考：https://github.com/feast-dev/feast
type FeastLoader struct {
	client *feastsdk.GrpcClient

	// Project 项目名称
	Project string
}

// NewFeastLoader 创建 Feast gRPC 客户端。
func NewFeastLoader(host string, port int, project string) (*FeastLoader, error) {
	if port == 0 {
		port = 6565
	}
	client, err := feastsdk.NewGrpcClient(host, port)
	if err != nil {
		return nil, fmt.Errorf("connect feast %s:%d: %w", host, port, err)
	}
	return &FeastLoader{client: client, Project: project}, nil
}

// Load 拉取 entityRows × features 的在线特征。
// 返回的 Table 列名即特征名，可直接作为引擎的变量名来源。
// 任一特征缺失或非数值时整体失败——重要性评估的输入矩阵不允许有洞。
func (l *FeastLoader) Load(ctx context.Context, features []string, entityRows []feastsdk.Row) (*core.Table, error) {
	if len(features) == 0 {
		return nil, core.NewDomainError(core.ModuleFeature, core.ErrorCodeInvalidInput, "feast load: no features")
	}
	if len(entityRows) == 0 {
		return nil, core.NewDomainError(core.ModuleFeature, core.ErrorCodeInvalidInput, "feast load: no entity rows")
	}

	resp, err := l.client.GetOnlineFeatures(ctx, &feastsdk.OnlineFeaturesRequest{
		Features: features,
		Entities: entityRows,
		Project:  l.Project,
	})
	if err != nil {
		return nil, fmt.Errorf("feast get online features: %w", err)
	}

	rows := resp.Rows()
	if len(rows) != len(entityRows) {
		return nil, core.NewDomainError(core.ModuleFeature, core.ErrorCodeLengthMismatch,
			fmt.Sprintf("feast load: %d entity rows but %d response rows", len(entityRows), len(rows)))
	}

	matrix := make([][]float64, len(rows))
	for i, row := range rows {
		vec := make([]float64, len(features))
		for j, name := range features {
			val, ok := row[name]
			if !ok {
				return nil, core.NewDomainError(core.ModuleFeature, core.ErrorCodeNotFound,
					fmt.Sprintf("feast load: feature %q missing for entity %d", name, i))
			}
			f, ok := conv.ToFloat64(featureValue(val))
			if !ok {
				return nil, core.NewDomainError(core.ModuleFeature, core.ErrorCodeInvalidInput,
					fmt.Sprintf("feast load: feature %q for entity %d is not numeric", name, i))
			}
			vec[j] = f
		}
		matrix[i] = vec
	}

	return core.NewTable(features, matrix), nil
}

// Close 关闭 gRPC 连接。
func (l *FeastLoader) Close() error {
	l.client = nil
	return nil
}

// featureValue 从 SDK 的 protobuf Value 中取出 Go 值。
func featureValue(v *feasttypes.Value) any {
	if v == nil {
		return nil
	}
	switch val := v.GetVal().(type) {
	case *feasttypes.Value_DoubleVal:
		return val.DoubleVal
	case *feasttypes.Value_FloatVal:
		return val.FloatVal
	case *feasttypes.Value_Int64Val:
		return val.Int64Val
	case *feasttypes.Value_Int32Val:
		return val.Int32Val
	case *feasttypes.Value_BoolVal:
		return val.BoolVal
	case *feasttypes.Value_StringVal:
		return val.StringVal
	default:
		return nil
	}
}
