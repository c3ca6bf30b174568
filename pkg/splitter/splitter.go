// Package splitter partitions dataset items into training and testing subsets.
package splitter

import (
	"math/rand"
	"time"

	"github.com/dtnitsch/dataset-split/models"
	"github.com/dtnitsch/dataset-split/pkg/dataset"
)

// Seed picks the shuffle seed for a run: the fixed seed in deterministic
// mode, otherwise a fresh value from the clock.
func Seed(cfg models.SplitConfig) int64 {
	if cfg.Deterministic {
		return cfg.FixedSeed
	}
	return time.Now().UnixNano()
}

// NewRand returns a PRNG owned by the caller. Nothing here touches the
// package-level math/rand source.
func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// TrainingSize returns floor(2n/3). For n=1 this is 0, so the whole item
// goes to the testing subset.
func TrainingSize(n int) int {
	return n * 2 / 3
}

// Partition shuffles a copy of ids and slices it at TrainingSize.
// ids itself is left untouched.
func Partition(ids []string, rng *rand.Rand) (training, testing []string) {
	shuffled := make([]string, len(ids))
	copy(shuffled, ids)

	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	k := TrainingSize(len(shuffled))
	return shuffled[:k:k], shuffled[k:]
}

// Split seeds a generator from cfg and partitions the candidate names with
// it. Identifiers are derived from the shuffled names, so both lists line
// up index for index.
func Split(names []string, cfg models.SplitConfig) models.Split {
	seed := Seed(cfg)
	trainingFiles, testingFiles := Partition(names, NewRand(seed))
	return models.Split{
		Training:      dataset.Identifiers(trainingFiles),
		Testing:       dataset.Identifiers(testingFiles),
		TrainingFiles: trainingFiles,
		TestingFiles:  testingFiles,
		Seed:          seed,
	}
}
