package metrics

// 三个多分类技巧评分都定义在列联表上：行 = 预测，列 = 观测。
// k=1 或某个边际为零时公式出现除零，结果按 IEEE 语义产出 NaN/Inf
// 原样返回，不在内部拦截——调用方需保证至少两个类别且边际非零。

// PeirceSkillScore 计算多分类 Peirce 技巧评分
// （又名 Hanssen–Kuipers 判别、True Skill Statistic）。
// 完美对角表为 1，预测与真值独立时趋于 0。
func PeirceSkillScore(truths, predictions Forecast, classes []float64) (float64, error) {
	table, err := ContingencyTable(truths, predictions, classes)
	if err != nil {
		return 0, err
	}
	return peirceFromTable(table), nil
}

// HeidkeSkillScore 计算多分类 Heidke 技巧评分。
// 与 Peirce 仅分母不同：用预测×观测边际积代替观测边际平方和。
func HeidkeSkillScore(truths, predictions Forecast, classes []float64) (float64, error) {
	table, err := ContingencyTable(truths, predictions, classes)
	if err != nil {
		return 0, err
	}
	return heidkeFromTable(table), nil
}

// GerrityScore 计算多分类 Gerrity 评分：
// 按观测相对频率为列联表每格加权。k=2 时代数上等于 Peirce 评分。
func GerrityScore(truths, predictions Forecast, classes []float64) (float64, error) {
	table, err := ContingencyTable(truths, predictions, classes)
	if err != nil {
		return 0, err
	}
	return gerrityFromTable(table), nil
}

// tableSums 返回总数 n、预测边际（按行求和）与观测边际（按列求和）。
func tableSums(table [][]float64) (n float64, forecast, observed []float64) {
	k := len(table)
	forecast = make([]float64, k)
	observed = make([]float64, k)
	for i := range table {
		for j, v := range table[i] {
			n += v
			forecast[i] += v
			observed[j] += v
		}
	}
	return n, forecast, observed
}

func tableTrace(table [][]float64) float64 {
	var tr float64
	for i := range table {
		tr += table[i][i]
	}
	return tr
}

func dot(a, b []float64) float64 {
	var s float64
	for i := range a {
		s += a[i] * b[i]
	}
	return s
}

func peirceFromTable(table [][]float64) float64 {
	n, nf, no := tableSums(table)
	correct := tableTrace(table)
	return (correct/n - dot(nf, no)/(n*n)) / (1 - dot(no, no)/(n*n))
}

func heidkeFromTable(table [][]float64) float64 {
	n, nf, no := tableSums(table)
	correct := tableTrace(table)
	return (correct/n - dot(nf, no)/(n*n)) / (1 - dot(nf, no)/(n*n))
}

func gerrityFromTable(table [][]float64) float64 {
	k := len(table)
	n, _, observed := tableSums(table)

	// a[j] = (1 - cumsum(p_o)[j]) / cumsum(p_o)[j]，j = 0..k-2
	a := make([]float64, 0, k-1)
	var cum float64
	for j := 0; j < k-1; j++ {
		cum += observed[j] / n
		a = append(a, (1-cum)/cum)
	}

	// 对称评分矩阵 s：对角项奖励命中，偏离对角按距离 (j-i) 扣分
	s := newTable(k)
	for i := 0; i < k; i++ {
		for j := 0; j < k; j++ {
			switch {
			case i == j:
				s[i][j] = (sumInv(a[:j]) + sum(a[j:])) / float64(k-1)
			case i < j:
				s[i][j] = (sumInv(a[:i]) - float64(j-i) + sum(a[j:])) / float64(k-1)
			default:
				s[i][j] = s[j][i]
			}
		}
	}

	var score float64
	for i := range table {
		for j := range table[i] {
			score += table[i][j] / n * s[i][j]
		}
	}
	return score
}

func sum(xs []float64) float64 {
	var s float64
	for _, x := range xs {
		s += x
	}
	return s
}

func sumInv(xs []float64) float64 {
	var s float64
	for _, x := range xs {
		s += 1 / x
	}
	return s
}
