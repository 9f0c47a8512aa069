// Package conv 提供类型转换的泛型工具，用于简化各模块中的重复逻辑。
package conv

// ToFloat64 将 any 转为 float64。
// 支持 float64、float32、int、int64、int32；bool 视为 1.0/0.0。
func ToFloat64(v any) (float64, bool) {
	if v == nil {
		return 0, false
	}
	switch val := v.(type) {
	case float64:
		return val, true
	case float32:
		return float64(val), true
	case int:
		return float64(val), true
	case int64:
		return float64(val), true
	case int32:
		return float64(val), true
	case bool:
		if val {
			return 1.0, true
		}
		return 0.0, true
	default:
		return 0, false
	}
}

// ToMatrix 将行优先的 map 序列按列名顺序展开成矩阵，convert 失败的条目跳过整行。
func ToMatrix[K comparable](rows []map[K]any, cols []K) [][]float64 {
	out := make([][]float64, 0, len(rows))
	for _, row := range rows {
		vec := make([]float64, len(cols))
		ok := true
		for i, c := range cols {
			f, fine := ToFloat64(row[c])
			if !fine {
				ok = false
				break
			}
			vec[i] = f
		}
		if ok {
			out = append(out, vec)
		}
	}
	return out
}
