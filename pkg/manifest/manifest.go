package manifest

// SplitManifest is the YAML export of one split. It carries the seed so
// the same shuffle can be replayed from the same candidate list.
type SplitManifest struct {
	GeneratedAt   string   `yaml:"generated_at"`
	DatasetDir    string   `yaml:"dataset_dir"`
	Suffix        string   `yaml:"suffix"`
	Deterministic bool     `yaml:"deterministic"`
	Seed          int64    `yaml:"seed"`
	Total         int      `yaml:"total"`
	TrainingCount int      `yaml:"training_count"`
	TestingCount  int      `yaml:"testing_count"`
	Training      []string `yaml:"training"`
	Testing       []string `yaml:"testing"`
	TrainingFiles []string `yaml:"training_files,omitempty"`
	TestingFiles  []string `yaml:"testing_files,omitempty"`
}
