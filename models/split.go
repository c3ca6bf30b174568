package models

// Split is the disjoint (training, testing) partition of one shuffled
// identifier list. Training followed by Testing is the shuffled list.
type Split struct {
	Training []string
	Testing  []string
	// TrainingFiles and TestingFiles hold the filename behind each
	// identifier, index for index. Two files can share an identifier, so
	// only the filename says which item went where.
	TrainingFiles []string
	TestingFiles  []string
	// Seed that produced the shuffle, recorded so a split can be replayed.
	Seed int64
}

// Total returns the number of identifiers across both subsets.
func (s Split) Total() int {
	return len(s.Training) + len(s.Testing)
}

// Items returns the shuffled list the split was sliced from.
func (s Split) Items() []string {
	items := make([]string, 0, s.Total())
	items = append(items, s.Training...)
	return append(items, s.Testing...)
}

// File returns the filename recorded for position i of the shuffled list,
// or "" when the split carries no filenames.
func (s Split) File(i int) string {
	if i < len(s.Training) {
		if i < len(s.TrainingFiles) {
			return s.TrainingFiles[i]
		}
		return ""
	}
	i -= len(s.Training)
	if i < len(s.TestingFiles) {
		return s.TestingFiles[i]
	}
	return ""
}
