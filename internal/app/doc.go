// Package app wires configuration, dataset loading, the recovery pipeline
// and the evaluation reports into one run over every configured project.
//
// Projects are independent: they are processed concurrently (bounded by
// the configured parallelism) and a failing project is logged and reported
// without stopping the others. Report files are written afterwards in
// configured project order, so their rows do not depend on scheduling.
package app
