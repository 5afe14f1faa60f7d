// Package triad recovers traceability links between software artifacts,
// e.g. requirements and source code, and measures how good they are.
//
// 🚀 What is triad?
//
//	A pure-Go implementation of TRIAD-style link recovery:
//		• IR models: VSM, LSI, JSD and their IR-Union bridge
//		• Biterm enrichment: an intermediate tier (design documents) votes on
//		  the term pairs appended to the source and target artifacts
//		• Transitivity: scores adjusted along s → i → t and longer paths
//		• Evaluation: precision/recall/F1, MAP, precision-recall curves,
//		  Wilcoxon signed-rank test and Cliff's delta against the IR baseline
//
// Under the hood, everything is organized in flat packages:
//
//	matrix/         dense row-major matrix, kernels, SVD
//	textproc/       normalization, identifier splitting, stopwords, stemming
//	artifact/       artifacts, biterms, collections, dataset loader
//	tdm/            term-document matrices and TF-IDF weighting
//	similarity/     sparse similarity matrix, fusion, CSV output
//	ir/             VSM, LSI, JSD, IR-Union
//	enrichment/     consensus biterm selection and tier extension
//	transitivity/   multi-hop closure over three tiers
//	pipeline/       two-tier and three-tier recovery runs
//	evaluation/     gold standards, metrics, statistics, reports
//	config/         viper configuration
//	cmd/triad       the command line tool
//
// Quick ASCII picture of the three tiers:
//
//	  source ──────────── target
//	      \                /
//	       └─ intermediate ┘
//
//	go install github.com/katalvlaran/triad/cmd/triad@latest
package triad
