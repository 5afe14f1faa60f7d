// Package ir implements the information-retrieval scoring models.
//
// VSM weights the combined source and target term-document matrix with
// TF-IDF and scores pairs by cosine similarity. LSI does the same after a
// rank-k SVD reconstruction of the TF-IDF table. JSD compares token
// distributions with the Jensen-Shannon divergence. Union averages the
// three. Every model returns a similarity.Matrix whose rows are sorted by
// descending score.
//
//	model, err := ir.ByName("VSM", nil)
//	if err != nil {
//		// ir.ErrUnknownModel
//	}
//	sims, err := model.Compute(requirements, code)
package ir
