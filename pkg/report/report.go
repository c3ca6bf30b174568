package report

import (
	"fmt"
	"io"

	"github.com/dtnitsch/dataset-split/models"
)

// WriteCounts prints the size of each subset, training first.
func WriteCounts(w io.Writer, s models.Split) error {
	if _, err := fmt.Fprintf(w, "%d files in the training set\n", len(s.Training)); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	if _, err := fmt.Fprintf(w, "%d files in the testing set\n", len(s.Testing)); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}
