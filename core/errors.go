package core

// DomainError 是领域层的统一错误类型。
//
// 设计原则：
//   - 所有领域层错误都使用此类型
//   - 提供错误代码（Code）和消息（Message）
//   - 支持错误检查函数（IsXXX）
//
// 使用场景：
//   - 数据校验错误：LENGTH_MISMATCH, INVALID_INPUT
//   - 列联表错误：AMBIGUOUS_PROBABILISTIC_FORECASTS, UNMATCHING_PROBABILISTIC_FORECASTS
//   - 策略错误：UNRECOGNIZED_SCORING_STRATEGY
//   - Store 错误：NOT_FOUND
type DomainError struct {
	Code    string // 错误代码（如 "LENGTH_MISMATCH", "NOT_FOUND"）
	Message string // 错误消息
	Module  string // 模块名称（如 "engine", "metrics", "store"）
}

func (e *DomainError) Error() string {
	return e.Message
}

// GetDomainError 获取 DomainError，如果不是则返回 nil
func GetDomainError(err error) *DomainError {
	if err == nil {
		return nil
	}
	if domainErr, ok := err.(*DomainError); ok {
		return domainErr
	}
	return nil
}

// NewDomainError 创建新的领域错误
func NewDomainError(module, code, message string) *DomainError {
	return &DomainError{
		Module:  module,
		Code:    code,
		Message: message,
	}
}

// 错误代码常量
const (
	// ErrorCodeLengthMismatch 真值与预测值（或 inputs 与 outputs）行数不一致
	ErrorCodeLengthMismatch = "LENGTH_MISMATCH"
	// ErrorCodeAmbiguousProbabilisticForecasts 概率型预测但缺少 classes 顺序，argmax 的类别归属无法确定
	ErrorCodeAmbiguousProbabilisticForecasts = "AMBIGUOUS_PROBABILISTIC_FORECASTS"
	// ErrorCodeUnmatchingProbabilisticForecasts 概率型真值与预测值的类别轴宽度不一致
	ErrorCodeUnmatchingProbabilisticForecasts = "UNMATCHING_PROBABILISTIC_FORECASTS"
	// ErrorCodeUnrecognizedScoringStrategy 打分策略名称不在注册表中
	ErrorCodeUnrecognizedScoringStrategy = "UNRECOGNIZED_SCORING_STRATEGY"
	// ErrorCodeNotFound 资源不存在
	ErrorCodeNotFound = "NOT_FOUND"
	// ErrorCodeInvalidInput 输入无效
	ErrorCodeInvalidInput = "INVALID_INPUT"
)

// 模块名称常量
const (
	ModuleEngine   = "engine"   // 序贯选择引擎
	ModuleMetrics  = "metrics"  // 列联表与技巧评分
	ModuleStrategy = "strategy" // 打分策略
	ModuleStore    = "store"    // 存储模块
	ModuleConfig   = "config"   // 配置模块
	ModuleFeature  = "feature"  // 数据集加载
)

// ErrStoreNotFound 是 Store 层的 key 不存在错误。
var ErrStoreNotFound = NewDomainError(ModuleStore, ErrorCodeNotFound, "store: key not found")

func hasCode(err error, code string) bool {
	if domainErr := GetDomainError(err); domainErr != nil {
		return domainErr.Code == code
	}
	return false
}

// IsLengthMismatch 检查错误是否为 LENGTH_MISMATCH
func IsLengthMismatch(err error) bool {
	return hasCode(err, ErrorCodeLengthMismatch)
}

// IsAmbiguousProbabilisticForecasts 检查错误是否为 AMBIGUOUS_PROBABILISTIC_FORECASTS
func IsAmbiguousProbabilisticForecasts(err error) bool {
	return hasCode(err, ErrorCodeAmbiguousProbabilisticForecasts)
}

// IsUnmatchingProbabilisticForecasts 检查错误是否为 UNMATCHING_PROBABILISTIC_FORECASTS
func IsUnmatchingProbabilisticForecasts(err error) bool {
	return hasCode(err, ErrorCodeUnmatchingProbabilisticForecasts)
}

// IsUnrecognizedScoringStrategy 检查错误是否为 UNRECOGNIZED_SCORING_STRATEGY
func IsUnrecognizedScoringStrategy(err error) bool {
	return hasCode(err, ErrorCodeUnrecognizedScoringStrategy)
}

// IsNotFound 检查错误是否为 NOT_FOUND
func IsNotFound(err error) bool {
	return hasCode(err, ErrorCodeNotFound)
}

// IsInvalidInput 检查错误是否为 INVALID_INPUT
func IsInvalidInput(err error) bool {
	return hasCode(err, ErrorCodeInvalidInput)
}
