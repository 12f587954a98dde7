package metrics

import (
	"math"
	"sort"

	"github.com/kgocks/bamboo/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// logLossEpsilon は log(0) を避けるための予測確率のクリップ幅。
const logLossEpsilon = 1e-15

// AUC は ROC 曲線下面積を計算する。yTrue は 0/1 の二値ラベル、
// yPred はスコア（大きいほど陽性寄り）。同点のスコアは 0.5 ペア分として
// 数える。ラベルが片側しかない場合は未定義として 0.5 を返す。
func AUC(yTrue, yPred *mat.VecDense) (float64, error) {
	n, err := validateVectors("AUC", yTrue, yPred)
	if err != nil {
		return 0, err
	}

	nPos, nNeg, err := countBinaryLabels("AUC", yTrue, n)
	if err != nil {
		return 0, err
	}
	if nPos == 0 || nNeg == 0 {
		return 0.5, nil
	}

	// スコア順位（同点は平均順位）から Mann-Whitney の U 統計量を得る
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	sort.Slice(idx, func(a, b int) bool {
		return yPred.AtVec(idx[a]) < yPred.AtVec(idx[b])
	})

	ranks := make([]float64, n)
	for i := 0; i < n; {
		j := i
		for j+1 < n && yPred.AtVec(idx[j+1]) == yPred.AtVec(idx[i]) {
			j++
		}
		avg := float64(i+j+2) / 2 // 1始まりの平均順位
		for k := i; k <= j; k++ {
			ranks[idx[k]] = avg
		}
		i = j + 1
	}

	var sumPosRanks float64
	for i := 0; i < n; i++ {
		if yTrue.AtVec(i) == 1 {
			sumPosRanks += ranks[i]
		}
	}

	u := sumPosRanks - float64(nPos)*float64(nPos+1)/2
	return u / (float64(nPos) * float64(nNeg)), nil
}

// AUCMatrix は行列形式の入力に対してAUCを計算する。
// 複数列の行列は先頭列のみを用いる。
func AUCMatrix(yTrue, yPred mat.Matrix) (float64, error) {
	yTrueVec, yPredVec, err := firstColumns("AUCMatrix", yTrue, yPred)
	if err != nil {
		return 0, err
	}
	return AUC(yTrueVec, yPredVec)
}

// firstColumns は行列の組の先頭列をベクトルの組として取り出す。
func firstColumns(op string, yTrue, yPred mat.Matrix) (*mat.VecDense, *mat.VecDense, error) {
	if yTrue == nil || yPred == nil {
		return nil, nil, errors.NewValueError(op, "nil matrix")
	}

	rTrue, cTrue := yTrue.Dims()
	rPred, cPred := yPred.Dims()
	if rTrue == 0 || cTrue == 0 || rPred == 0 || cPred == 0 {
		return nil, nil, errors.NewValueError(op, "empty matrix")
	}
	if rTrue != rPred {
		return nil, nil, errors.NewDimensionError(op, rTrue, rPred, 0)
	}

	yTrueVec := mat.NewVecDense(rTrue, nil)
	yPredVec := mat.NewVecDense(rPred, nil)
	for i := 0; i < rTrue; i++ {
		yTrueVec.SetVec(i, yTrue.At(i, 0))
		yPredVec.SetVec(i, yPred.At(i, 0))
	}
	return yTrueVec, yPredVec, nil
}

// countBinaryLabels はラベルが 0/1 のみであることを確認しつつ陽性・陰性の
// 件数を数える。
func countBinaryLabels(op string, yTrue *mat.VecDense, n int) (nPos, nNeg int, err error) {
	for i := 0; i < n; i++ {
		switch yTrue.AtVec(i) {
		case 1:
			nPos++
		case 0:
			nNeg++
		default:
			return 0, 0, errors.NewValueError(op, "labels must be binary (0 or 1)")
		}
	}
	return nPos, nNeg, nil
}

// BinaryLogLoss は二値分類の対数損失を計算する。予測確率は
// [ε, 1-ε] にクリップしてから評価する。
func BinaryLogLoss(yTrue, yPred *mat.VecDense) (float64, error) {
	n, err := validateVectors("BinaryLogLoss", yTrue, yPred)
	if err != nil {
		return 0, err
	}
	if _, _, err := countBinaryLabels("BinaryLogLoss", yTrue, n); err != nil {
		return 0, err
	}

	// LogLoss = -(1/n) * Σ[y·log(p) + (1-y)·log(1-p)]
	var sum float64
	for i := 0; i < n; i++ {
		p := math.Min(math.Max(yPred.AtVec(i), logLossEpsilon), 1-logLossEpsilon)
		if yTrue.AtVec(i) == 1 {
			sum += math.Log(p)
		} else {
			sum += math.Log(1 - p)
		}
	}
	return -sum / float64(n), nil
}

// ClassificationError は誤分類率（ラベル不一致の割合）を計算する
func ClassificationError(yTrue, yPred *mat.VecDense) (float64, error) {
	n, err := validateVectors("ClassificationError", yTrue, yPred)
	if err != nil {
		return 0, err
	}

	miss := 0
	for i := 0; i < n; i++ {
		if yTrue.AtVec(i) != yPred.AtVec(i) {
			miss++
		}
	}
	return float64(miss) / float64(n), nil
}

// Accuracy は正解率（1 - 誤分類率）を計算する
func Accuracy(yTrue, yPred *mat.VecDense) (float64, error) {
	errRate, err := ClassificationError(yTrue, yPred)
	if err != nil {
		return 0, err
	}
	return 1 - errRate, nil
}
