package report

import (
	"bytes"
	"errors"
	"testing"

	"github.com/dtnitsch/dataset-split/models"
)

func TestWriteCounts(t *testing.T) {
	tests := []struct {
		name  string
		split models.Split
		want  string
	}{
		{
			name: "nine items",
			split: models.Split{
				Training: []string{"a", "b", "c", "d", "e", "f"},
				Testing:  []string{"g", "h", "i"},
			},
			want: "6 files in the training set\n3 files in the testing set\n",
		},
		{
			name:  "empty",
			split: models.Split{},
			want:  "0 files in the training set\n0 files in the testing set\n",
		},
		{
			name:  "single item",
			split: models.Split{Testing: []string{"only"}},
			want:  "0 files in the training set\n1 files in the testing set\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := WriteCounts(&buf, tt.split); err != nil {
				t.Fatalf("WriteCounts() error = %v", err)
			}
			if buf.String() != tt.want {
				t.Errorf("WriteCounts() = %q, want %q", buf.String(), tt.want)
			}
		})
	}
}

type failWriter struct{}

func (failWriter) Write(p []byte) (int, error) {
	return 0, errors.New("closed")
}

func TestWriteCounts_WriterError(t *testing.T) {
	if err := WriteCounts(failWriter{}, models.Split{}); err == nil {
		t.Error("WriteCounts() expected error from failing writer")
	}
}
