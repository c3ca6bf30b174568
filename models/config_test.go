package models

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestDefaultSplitConfig(t *testing.T) {
	cfg := DefaultSplitConfig()

	if cfg.DatasetDir != "dataset" {
		t.Errorf("DatasetDir = %q, want %q", cfg.DatasetDir, "dataset")
	}
	if cfg.Suffix != "html.gz" {
		t.Errorf("Suffix = %q, want %q", cfg.Suffix, "html.gz")
	}
	if cfg.Deterministic {
		t.Error("Deterministic = true, want false")
	}
	if cfg.FixedSeed != 12345678 {
		t.Errorf("FixedSeed = %d, want 12345678", cfg.FixedSeed)
	}
	if cfg.UniqueIDs {
		t.Error("UniqueIDs = true, want false")
	}
}

func TestLoadConfig(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    SplitConfig
		wantErr bool
	}{
		{
			name:    "empty file keeps defaults",
			content: "",
			want:    DefaultSplitConfig(),
		},
		{
			name:    "partial override",
			content: "dataset_dir: corpus\ndeterministic: true\n",
			want: SplitConfig{
				DatasetDir:    "corpus",
				Suffix:        "html.gz",
				Deterministic: true,
				FixedSeed:     12345678,
			},
		},
		{
			name:    "all keys",
			content: "dataset_dir: data\nsuffix: .txt\ndeterministic: true\nfixed_seed: 42\nunique_ids: true\n",
			want: SplitConfig{
				DatasetDir:    "data",
				Suffix:        ".txt",
				Deterministic: true,
				FixedSeed:     42,
				UniqueIDs:     true,
			},
		},
		{
			name:    "unknown key",
			content: "causal: true\n",
			wantErr: true,
		},
		{
			name:    "empty suffix",
			content: "suffix: \"\"\n",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := LoadConfig(writeConfig(t, tt.content))
			if (err != nil) != tt.wantErr {
				t.Fatalf("LoadConfig() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if got != tt.want {
				t.Errorf("LoadConfig() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("LoadConfig() expected error for missing file")
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("LoadConfig() error = %v, want fs.ErrNotExist", err)
	}
}

func TestSplit_Items(t *testing.T) {
	s := Split{Training: []string{"a", "b"}, Testing: []string{"c"}}

	if s.Total() != 3 {
		t.Errorf("Total() = %d, want 3", s.Total())
	}
	items := s.Items()
	want := []string{"a", "b", "c"}
	if len(items) != len(want) {
		t.Fatalf("Items() = %v, want %v", items, want)
	}
	for i := range want {
		if items[i] != want[i] {
			t.Errorf("Items()[%d] = %q, want %q", i, items[i], want[i])
		}
	}
}

func TestSplit_File(t *testing.T) {
	s := Split{
		Training:      []string{"a", "b"},
		Testing:       []string{"a"},
		TrainingFiles: []string{"a.2.html.gz", "b.html.gz"},
		TestingFiles:  []string{"a.1.html.gz"},
	}

	tests := []struct {
		pos  int
		want string
	}{
		{0, "a.2.html.gz"},
		{1, "b.html.gz"},
		{2, "a.1.html.gz"},
		{3, ""},
	}
	for _, tt := range tests {
		if got := s.File(tt.pos); got != tt.want {
			t.Errorf("File(%d) = %q, want %q", tt.pos, got, tt.want)
		}
	}

	if got := (Split{Training: []string{"a"}}).File(0); got != "" {
		t.Errorf("File(0) without filenames = %q, want empty", got)
	}
}
