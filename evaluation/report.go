// SPDX-License-Identifier: MIT

package evaluation

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"sync"

	"github.com/spf13/afero"

	"github.com/katalvlaran/triad/similarity"
)

// Report file names under the output directory.
const (
	SummaryFile         = "evaluation_summary.csv"
	SimilaritiesDir     = "similarities"
	PRCurveFile         = "precision_recall_curves.csv"
	thresholdFileSuffix = "_evaluation_with_threshold.csv"
	topKFileSuffix      = "_evaluation_top_k.csv"
)

var (
	summaryHeader   = []string{"Project", "Approach", "Precision", "Recall", "F1", "MAP"}
	thresholdHeader = []string{"Approach", "Project", "Threshold", "Precision", "Recall", "F1", "Amount"}
	topKHeader      = []string{"Approach", "Project", "K", "Precision", "Recall", "F1", "Amount"}
)

// Reporter writes similarity matrices and evaluation results as CSV files
// under one output directory. Appending writers create the file with its
// header on first use. A Reporter is safe for concurrent use.
type Reporter struct {
	fs  afero.Fs
	dir string
	mu  sync.Mutex
}

// NewReporter returns a Reporter writing below dir on fs.
func NewReporter(fs afero.Fs, dir string) *Reporter {
	return &Reporter{fs: fs, dir: dir}
}

// Dir returns the output directory.
func (r *Reporter) Dir() string { return r.dir }

// SimilarityPath returns <dir>/similarities/<project>_<approach>.csv.
func (r *Reporter) SimilarityPath(project, approach string) string {
	return filepath.Join(r.dir, SimilaritiesDir, project+"_"+approach+".csv")
}

// WriteSimilarity writes m to SimilarityPath, replacing any previous file.
func (r *Reporter) WriteSimilarity(project, approach string, m *similarity.Matrix) (string, error) {
	path := r.SimilarityPath(project, approach)
	if err := r.fs.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("create %s: %w", filepath.Dir(path), err)
	}
	f, err := r.fs.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return "", fmt.Errorf("open %s: %w", path, err)
	}
	if err := m.WriteCSV(f); err != nil {
		_ = f.Close()
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close %s: %w", path, err)
	}
	return path, nil
}

// AppendSummary appends one "Project,Approach,Precision,Recall,F1,MAP" row
// to evaluation_summary.csv.
func (r *Reporter) AppendSummary(project, approach string, prf PRF, mapScore float64) error {
	row := []string{project, approach, f4(prf.Precision), f4(prf.Recall), f4(prf.F1), f4(mapScore)}
	return r.appendRows(filepath.Join(r.dir, SummaryFile), summaryHeader, [][]string{row})
}

// AppendThresholds appends the sweep rows to <approach>_evaluation_with_threshold.csv.
func (r *Reporter) AppendThresholds(approach, project string, results []ThresholdResult) error {
	rows := make([][]string, 0, len(results))
	for _, res := range results {
		rows = append(rows, []string{
			approach, project, f4(res.Threshold),
			f4(res.Precision), f4(res.Recall), f4(res.F1), strconv.Itoa(res.Amount),
		})
	}
	return r.appendRows(filepath.Join(r.dir, approach+thresholdFileSuffix), thresholdHeader, rows)
}

// AppendTopK appends the top-k rows to <approach>_evaluation_top_k.csv.
func (r *Reporter) AppendTopK(approach, project string, results []TopKResult) error {
	rows := make([][]string, 0, len(results))
	for _, res := range results {
		rows = append(rows, []string{
			approach, project, strconv.Itoa(res.K),
			f4(res.Precision), f4(res.Recall), f4(res.F1), strconv.Itoa(res.Amount),
		})
	}
	return r.appendRows(filepath.Join(r.dir, approach+topKFileSuffix), topKHeader, rows)
}

// AppendPRCurve appends the interpolated precisions of approach to
// <dir>/<project>/precision_recall_curves.csv. The header names the recall
// level of every column ("R0.05", …).
func (r *Reporter) AppendPRCurve(project, approach string, precisions []float64) error {
	header := make([]string, 0, len(precisions)+1)
	header = append(header, "Approach")
	row := make([]string, 0, len(precisions)+1)
	row = append(row, approach)
	for i, p := range precisions {
		header = append(header, "R"+strconv.FormatFloat(RecallLevel(i, len(precisions)), 'f', 2, 64))
		row = append(row, f4(p))
	}
	return r.appendRows(filepath.Join(r.dir, project, PRCurveFile), header, [][]string{row})
}

func (r *Reporter) appendRows(path string, header []string, rows [][]string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.fs.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create %s: %w", filepath.Dir(path), err)
	}
	fresh := true
	if info, err := r.fs.Stat(path); err == nil && info.Size() > 0 {
		fresh = false
	}
	f, err := r.fs.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}

	w := csv.NewWriter(f)
	if fresh {
		_ = w.Write(header)
	}
	_ = w.WriteAll(rows) // WriteAll flushes
	if err := w.Error(); err != nil {
		_ = f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}

func f4(v float64) string { return strconv.FormatFloat(v, 'f', 4, 64) }
