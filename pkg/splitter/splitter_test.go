package splitter

import (
	"fmt"
	"sort"
	"strings"
	"testing"

	"github.com/dtnitsch/dataset-split/models"
)

func makeIDs(n int) []string {
	ids := make([]string, n)
	for i := range ids {
		ids[i] = fmt.Sprintf("item%03d", i)
	}
	return ids
}

func TestTrainingSize(t *testing.T) {
	tests := []struct {
		n    int
		want int
	}{
		{0, 0},
		{1, 0},
		{2, 1},
		{3, 2},
		{9, 6},
		{10, 6},
		{11, 7},
		{100, 66},
	}

	for _, tt := range tests {
		if got := TrainingSize(tt.n); got != tt.want {
			t.Errorf("TrainingSize(%d) = %d, want %d", tt.n, got, tt.want)
		}
	}
}

func TestPartition_Sizes(t *testing.T) {
	for _, n := range []int{0, 1, 2, 3, 4, 5, 10, 31, 100} {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			training, testing := Partition(makeIDs(n), NewRand(1))

			if len(training) != n*2/3 {
				t.Errorf("len(training) = %d, want %d", len(training), n*2/3)
			}
			if len(testing) != n-n*2/3 {
				t.Errorf("len(testing) = %d, want %d", len(testing), n-n*2/3)
			}
		})
	}
}

func TestPartition_Empty(t *testing.T) {
	training, testing := Partition(nil, NewRand(1))
	if len(training) != 0 || len(testing) != 0 {
		t.Errorf("Partition(nil) = %v, %v, want both empty", training, testing)
	}
}

func TestPartition_SingleItemGoesToTesting(t *testing.T) {
	training, testing := Partition([]string{"only"}, NewRand(7))
	if len(training) != 0 {
		t.Errorf("training = %v, want empty", training)
	}
	if len(testing) != 1 || testing[0] != "only" {
		t.Errorf("testing = %v, want [only]", testing)
	}
}

func TestPartition_Completeness(t *testing.T) {
	ids := []string{"a", "b", "a", "c", "d", "e", "f", "c", "g"}
	training, testing := Partition(ids, NewRand(99))

	counts := make(map[string]int)
	for _, id := range ids {
		counts[id]++
	}
	for _, id := range append(append([]string{}, training...), testing...) {
		counts[id]--
	}
	for id, c := range counts {
		if c != 0 {
			t.Errorf("identifier %q count mismatch: %d", id, c)
		}
	}
}

func TestPartition_DoesNotMutateInput(t *testing.T) {
	ids := makeIDs(20)
	orig := append([]string(nil), ids...)

	Partition(ids, NewRand(3))

	for i := range ids {
		if ids[i] != orig[i] {
			t.Fatalf("input mutated at %d: %q != %q", i, ids[i], orig[i])
		}
	}
}

func TestPartition_TrainingAppendDoesNotClobberTesting(t *testing.T) {
	training, testing := Partition(makeIDs(9), NewRand(5))
	first := testing[0]

	_ = append(training, "extra")

	if testing[0] != first {
		t.Errorf("append to training overwrote testing[0]: %q", testing[0])
	}
}

func TestPartition_SameSeedSameSplit(t *testing.T) {
	ids := makeIDs(50)

	train1, test1 := Partition(ids, NewRand(models.DefaultFixedSeed))
	train2, test2 := Partition(ids, NewRand(models.DefaultFixedSeed))

	for i := range train1 {
		if train1[i] != train2[i] {
			t.Fatalf("training[%d] differs: %q vs %q", i, train1[i], train2[i])
		}
	}
	for i := range test1 {
		if test1[i] != test2[i] {
			t.Fatalf("testing[%d] differs: %q vs %q", i, test1[i], test2[i])
		}
	}
}

func TestPartition_Shuffles(t *testing.T) {
	ids := makeIDs(50)
	training, testing := Partition(ids, NewRand(11))

	got := append(append([]string{}, training...), testing...)
	if sort.StringsAreSorted(got) {
		t.Error("Partition() left 50 items in input order")
	}
}

func TestSeed(t *testing.T) {
	cfg := models.DefaultSplitConfig()
	cfg.Deterministic = true
	cfg.FixedSeed = 42

	if got := Seed(cfg); got != 42 {
		t.Errorf("Seed(deterministic) = %d, want 42", got)
	}

	cfg.Deterministic = false
	if got := Seed(cfg); got == 42 {
		t.Error("Seed(non-deterministic) returned the fixed seed")
	}
}

func TestSplit_Deterministic(t *testing.T) {
	cfg := models.DefaultSplitConfig()
	cfg.Deterministic = true
	ids := makeIDs(30)

	s1 := Split(ids, cfg)
	s2 := Split(ids, cfg)

	if s1.Seed != models.DefaultFixedSeed {
		t.Errorf("Seed = %d, want %d", s1.Seed, models.DefaultFixedSeed)
	}
	items1, items2 := s1.Items(), s2.Items()
	for i := range items1 {
		if items1[i] != items2[i] {
			t.Fatalf("split differs at %d: %q vs %q", i, items1[i], items2[i])
		}
	}
	if len(s1.Training) != 20 || len(s1.Testing) != 10 {
		t.Errorf("sizes = %d/%d, want 20/10", len(s1.Training), len(s1.Testing))
	}
}

func TestSplit_ReplayFromRecordedSeed(t *testing.T) {
	ids := makeIDs(25)
	s := Split(ids, models.DefaultSplitConfig())

	training, testing := Partition(ids, NewRand(s.Seed))
	replayed := models.Split{Training: training, Testing: testing}.Items()
	for i, id := range s.Items() {
		if replayed[i] != id {
			t.Fatalf("replay differs at %d: %q vs %q", i, replayed[i], id)
		}
	}
}

func TestSplit_FilesLineUpWithIdentifiers(t *testing.T) {
	cfg := models.DefaultSplitConfig()
	cfg.Deterministic = true
	names := []string{"a.1.html.gz", "a.2.html.gz", "b.html.gz", "c.html.gz", "a.3.html.gz", "d.html.gz"}

	s := Split(names, cfg)

	if len(s.TrainingFiles) != len(s.Training) || len(s.TestingFiles) != len(s.Testing) {
		t.Fatalf("file lists %d/%d do not match identifiers %d/%d",
			len(s.TrainingFiles), len(s.TestingFiles), len(s.Training), len(s.Testing))
	}
	seen := make(map[string]bool)
	for i, id := range s.Items() {
		file := s.File(i)
		if !strings.HasPrefix(file, id+".") {
			t.Errorf("item %d: file %q does not belong to identifier %q", i, file, id)
		}
		if seen[file] {
			t.Errorf("file %q appears twice", file)
		}
		seen[file] = true
	}
	if len(seen) != len(names) {
		t.Errorf("split covers %d files, want %d", len(seen), len(names))
	}
}
