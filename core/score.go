package core

import "context"

// ScoreFn 是外部打分回调：用训练数据对训练（或以任意方式使用），
// 再对打分数据对求一个标量分数。
//
// 约定：
//   - 必须是输入的纯函数，不要求副作用
//   - 可能很昂贵（例如每次调用重新训练一个模型），引擎不设超时
//   - 返回 error 时当前轮次中止，不提交任何部分结果
type ScoreFn func(ctx context.Context, training, scoring DataPair) (float64, error)
