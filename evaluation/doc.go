// Package evaluation scores recovered trace links against a gold standard.
//
// It provides the gold-standard loader, set metrics (precision, recall, F1),
// ranking metrics (average precision, MAP, interpolated precision at recall
// levels), paired significance statistics (Wilcoxon signed-rank p-value,
// Cliff's delta), threshold and top-k sweeps, and CSV report writers.
//
// Files are read and written through afero, so every function runs against
// an in-memory filesystem in tests.
package evaluation
