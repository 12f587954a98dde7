package modeling

import (
	"math/rand/v2"

	"github.com/kgocks/bamboo/frame"
	"github.com/kgocks/bamboo/pkg/errors"
	"github.com/kgocks/bamboo/pkg/log"
)

// Balancing strategies accepted by Balanced.
const (
	StrategyTruncate = "truncate"
	StrategySample   = "sample"
)

type balanceConfig struct {
	sampleSize int
	seed       int64
}

// BalanceOption configures Balanced.
type BalanceOption func(*balanceConfig)

// WithSampleSize sets the total number of rows drawn by the "sample"
// strategy. Defaults to the current row count.
func WithSampleSize(n int) BalanceOption {
	return func(cfg *balanceConfig) { cfg.sampleSize = n }
}

// WithBalanceSeed sets the sampling seed. Defaults to 1.
func WithBalanceSeed(seed int64) BalanceOption {
	return func(cfg *balanceConfig) { cfg.seed = seed }
}

// Balanced returns a class-balanced copy of the dataset.
//
// "truncate" keeps the first m rows of every class where m is the
// smallest class count, so the result is deterministic. "sample" draws
// sampleSize/NumClasses rows per class uniformly with replacement using
// the configured seed. Classes concatenate in ascending key order.
func (md *ModelingData) Balanced(strategy string, opts ...BalanceOption) (*ModelingData, error) {
	if md.Len() == 0 {
		return nil, errors.Wrap(errors.ErrEmptyData, "ModelingData.Balanced")
	}

	cfg := balanceConfig{sampleSize: md.Len(), seed: 1}
	for _, opt := range opts {
		opt(&cfg)
	}

	var (
		balanced *ModelingData
		err      error
	)
	switch strategy {
	case StrategyTruncate:
		balanced, err = md.balanceTruncate()
	case StrategySample:
		balanced, err = md.balanceSample(cfg.sampleSize, cfg.seed)
	default:
		return nil, errors.NewValidationError("strategy", `must be "truncate" or "sample"`, strategy)
	}
	if err != nil {
		return nil, err
	}

	log.GetLoggerWithName("modeling").Debug("Classes balanced",
		log.OperationKey, log.OperationBalance,
		log.StrategyKey, strategy,
		log.SamplesKey, balanced.Len(),
		log.ClassesKey, balanced.NumClasses())
	return balanced, nil
}

// balanceTruncate keeps the first minCount positions of every class in
// original row order.
func (md *ModelingData) balanceTruncate() (*ModelingData, error) {
	grouped := md.GroupedTargets()
	m := grouped.MinCount()

	positions := make([]int, 0, m*grouped.NumGroups())
	for _, key := range grouped.Keys() {
		classPositions, _ := grouped.Positions(key)
		positions = append(positions, classPositions[:m]...)
	}
	return md.takeRows(positions)
}

// balanceSample draws sampleSize/NumClasses rows per class with
// replacement. Integer division: the result may hold slightly fewer rows
// than requested.
func (md *ModelingData) balanceSample(sampleSize int, seed int64) (*ModelingData, error) {
	if sampleSize <= 0 {
		return nil, errors.NewValidationError("sampleSize", "must be positive", sampleSize)
	}

	grouped := md.GroupedTargets()
	perClass := sampleSize / grouped.NumGroups()
	r := rand.New(rand.NewPCG(uint64(seed), uint64(seed)))

	positions := make([]int, 0, perClass*grouped.NumGroups())
	for _, key := range grouped.Keys() {
		classPositions, _ := grouped.Positions(key)
		for i := 0; i < perClass; i++ {
			positions = append(positions, classPositions[r.IntN(len(classPositions))])
		}
	}
	return md.takeRows(positions)
}

// BalanceWeights computes inverse class-frequency sample weights:
// n_samples / (n_classes * count(class of row i)), aligned to the
// targets' row labels. Useful with estimators that accept weights
// instead of resampling the data.
func (md *ModelingData) BalanceWeights() (*frame.Series, error) {
	n := md.Len()
	if n == 0 {
		return nil, errors.Wrap(errors.ErrEmptyData, "ModelingData.BalanceWeights")
	}

	grouped := md.GroupedTargets()
	numClasses := grouped.NumGroups()
	counts := grouped.Counts()

	weights := make([]float64, n)
	for i := 0; i < n; i++ {
		weights[i] = float64(n) / (float64(numClasses) * float64(counts[md.targets.Value(i)]))
	}
	return frame.NewFloatSeries("balance_weight", weights, md.targets.Labels()), nil
}
