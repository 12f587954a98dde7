package modeling

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/kgocks/bamboo/pkg/errors"
	"github.com/kgocks/bamboo/pkg/log"
)

// DefaultTestSize is the test fraction used when neither a test size nor
// a train size is configured.
const DefaultTestSize = 0.25

// Split is one train/test partition of row positions.
type Split struct {
	Train []int
	Test  []int
}

// ShuffleSplit draws a single random train/test partition. The same seed
// always yields the same partition.
type ShuffleSplit struct {
	TestSize  float64 // fraction in (0,1); 0 derives it from TrainSize or the default
	TrainSize float64 // fraction in (0,1); 0 means the complement of TestSize
	Seed      int64
}

// NewShuffleSplit creates a splitter. Sizes are fractions of the row
// count; pass 0 to leave one unset.
func NewShuffleSplit(testSize, trainSize float64, seed int64) *ShuffleSplit {
	return &ShuffleSplit{TestSize: testSize, TrainSize: trainSize, Seed: seed}
}

// Split partitions n row positions. The test set takes the first
// ceil(testSize*n) positions of a seeded permutation, the train set the
// following floor(trainSize*n) (or the remainder when TrainSize is unset).
func (ss *ShuffleSplit) Split(n int) (*Split, error) {
	if n <= 0 {
		return nil, errors.NewValueError("ShuffleSplit.Split", "no rows to split")
	}
	if ss.TestSize < 0 || ss.TestSize >= 1 {
		return nil, errors.NewValidationError("testSize", "must be a fraction in (0, 1)", ss.TestSize)
	}
	if ss.TrainSize < 0 || ss.TrainSize >= 1 {
		return nil, errors.NewValidationError("trainSize", "must be a fraction in (0, 1)", ss.TrainSize)
	}

	var nTest int
	switch {
	case ss.TestSize > 0:
		nTest = int(math.Ceil(ss.TestSize * float64(n)))
	case ss.TrainSize > 0:
		nTest = n - int(math.Floor(ss.TrainSize*float64(n)))
	default:
		nTest = int(math.Ceil(DefaultTestSize * float64(n)))
	}

	nTrain := n - nTest
	if ss.TrainSize > 0 {
		nTrain = int(math.Floor(ss.TrainSize * float64(n)))
	}
	if nTest+nTrain > n {
		return nil, errors.NewValidationError("testSize+trainSize",
			fmt.Sprintf("requested %d test and %d train rows from %d", nTest, nTrain, n), ss.TestSize+ss.TrainSize)
	}

	r := rand.New(rand.NewPCG(uint64(ss.Seed), uint64(ss.Seed)))
	perm := r.Perm(n)

	test := make([]int, nTest)
	copy(test, perm[:nTest])
	train := make([]int, nTrain)
	copy(train, perm[nTest:nTest+nTrain])

	return &Split{Train: train, Test: test}, nil
}

type splitConfig struct {
	testSize  float64
	trainSize float64
	seed      int64
}

// SplitOption configures TrainTestSplit.
type SplitOption func(*splitConfig)

// WithTestSize sets the test fraction.
func WithTestSize(f float64) SplitOption {
	return func(cfg *splitConfig) { cfg.testSize = f }
}

// WithTrainSize sets the train fraction.
func WithTrainSize(f float64) SplitOption {
	return func(cfg *splitConfig) { cfg.trainSize = f }
}

// WithSeed sets the shuffle seed.
func WithSeed(seed int64) SplitOption {
	return func(cfg *splitConfig) { cfg.seed = seed }
}

// TrainTestSplit partitions the dataset into a train and a test subset.
// Both subsets carry features, targets and weights selected at the same
// positions. Defaults: test fraction 0.25, seed 1.
func (md *ModelingData) TrainTestSplit(opts ...SplitOption) (train, test *ModelingData, err error) {
	cfg := splitConfig{seed: 1}
	for _, opt := range opts {
		opt(&cfg)
	}

	ss := NewShuffleSplit(cfg.testSize, cfg.trainSize, cfg.seed)
	split, err := ss.Split(md.Len())
	if err != nil {
		return nil, nil, err
	}

	train, err = md.takeRows(split.Train)
	if err != nil {
		return nil, nil, err
	}
	test, err = md.takeRows(split.Test)
	if err != nil {
		return nil, nil, err
	}

	log.GetLoggerWithName("modeling").Debug("Dataset split",
		log.OperationKey, log.OperationSplit,
		log.TrainRowsKey, len(split.Train),
		log.TestRowsKey, len(split.Test),
		log.RandomSeedKey, cfg.seed)
	return train, test, nil
}

// Fold is one cross-validation fold of row positions.
type Fold struct {
	Train []int
	Test  []int
}

// KFold splits row positions into k consecutive folds, optionally over a
// seeded shuffle of the rows.
type KFold struct {
	NSplits int
	Shuffle bool
	Seed    int64
}

// NewKFold creates a k-fold splitter. Fewer than 2 splits falls back to 5.
func NewKFold(nSplits int, shuffle bool, seed int64) *KFold {
	if nSplits < 2 {
		nSplits = 5
	}
	return &KFold{NSplits: nSplits, Shuffle: shuffle, Seed: seed}
}

// Split generates the train/test positions of every fold. Fold sizes
// differ by at most one row.
func (kf *KFold) Split(n int) ([]Fold, error) {
	if n < kf.NSplits {
		return nil, errors.NewValueError("KFold.Split",
			fmt.Sprintf("cannot split %d rows into %d folds", n, kf.NSplits))
	}

	indices := make([]int, n)
	for i := range indices {
		indices[i] = i
	}
	if kf.Shuffle {
		r := rand.New(rand.NewPCG(uint64(kf.Seed), uint64(kf.Seed)))
		r.Shuffle(len(indices), func(i, j int) {
			indices[i], indices[j] = indices[j], indices[i]
		})
	}

	folds := make([]Fold, kf.NSplits)
	foldSize := n / kf.NSplits
	remainder := n % kf.NSplits

	start := 0
	for i := 0; i < kf.NSplits; i++ {
		size := foldSize
		if i < remainder {
			size++
		}

		test := make([]int, size)
		copy(test, indices[start:start+size])

		train := make([]int, 0, n-size)
		train = append(train, indices[:start]...)
		train = append(train, indices[start+size:]...)

		folds[i] = Fold{Train: train, Test: test}
		start += size
	}
	return folds, nil
}
