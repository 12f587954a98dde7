// Package model はModelingDataが駆動する推定器の共通インターフェースを定義します。
// bambooは学習アルゴリズム自体を提供しないため、このパッケージが外部推定器との契約になります。
package model

import (
	"gonum.org/v1/gonum/mat"
)

// Fitter は学習可能なモデルのインターフェース
type Fitter interface {
	// Fit はモデルを訓練データで学習させる
	Fit(X, y mat.Matrix) error
}

// WeightedFitter はサンプル重み付き学習に対応したモデルのインターフェース
type WeightedFitter interface {
	Fitter

	// FitWeighted はサンプル重みを考慮してモデルを学習させる
	// sampleWeightの長さはXの行数と一致しなければならない
	FitWeighted(X, y mat.Matrix, sampleWeight []float64) error
}

// RowPredictor は特徴量1行ごとに予測値を返すモデルのインターフェース
type RowPredictor interface {
	// PredictRow は特徴量1行に対する予測値を返す
	PredictRow(x []float64) (float64, error)
}

// RowProbaPredictor は特徴量1行ごとにクラス確率を返すモデルのインターフェース
type RowProbaPredictor interface {
	// PredictProbaRow は特徴量1行に対する各クラスの確率を返す。
	// 返されるスライスのi番目は、学習データに現れるターゲット値を
	// 昇順に並べたときのi番目のクラスに対応しなければならない。
	PredictProbaRow(x []float64) ([]float64, error)
}

// Regressor は回帰モデルのインターフェース
type Regressor interface {
	Fitter
	RowPredictor
}

// Classifier は分類モデルのインターフェース
type Classifier interface {
	Fitter
	RowProbaPredictor
}
