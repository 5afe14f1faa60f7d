// SPDX-License-Identifier: MIT

package config

// Config is the run configuration of the triad command.
type Config struct {
	IRMethod     string             `mapstructure:"irMethod" yaml:"irMethod" validate:"required,oneof=VSM LSI JSD"`
	RunTriad     bool               `mapstructure:"runTriad" yaml:"runTriad"`
	DoEvaluate   bool               `mapstructure:"doEvaluate" yaml:"doEvaluate"`
	DatasetRoot  string             `mapstructure:"datasetRoot" yaml:"datasetRoot"`
	OutputDir    string             `mapstructure:"outputDir" yaml:"outputDir" validate:"required"`
	Parallelism  int                `mapstructure:"parallelism" yaml:"parallelism" validate:"min=1,max=64"`
	IR           IRConfig           `mapstructure:"ir" yaml:"ir"`
	Projects     []ProjectConfig    `mapstructure:"projects" yaml:"projects" validate:"required,min=1,unique=Name,dive"`
	Enrichment   EnrichmentConfig   `mapstructure:"enrichment" yaml:"enrichment"`
	Transitivity TransitivityConfig `mapstructure:"transitivity" yaml:"transitivity"`
	Evaluation   EvaluationConfig   `mapstructure:"evaluation" yaml:"evaluation"`
	Log          LogConfig          `mapstructure:"log" yaml:"log"`
}

// ProjectConfig names one dataset and its tiers. Paths are relative to
// DatasetRoot unless absolute.
type ProjectConfig struct {
	Name             string      `mapstructure:"name" yaml:"name" validate:"required,excludesall=/\\"`
	Source           TierConfig  `mapstructure:"source" yaml:"source"`
	Intermediate     *TierConfig `mapstructure:"intermediate" yaml:"intermediate,omitempty"`
	Target           TierConfig  `mapstructure:"target" yaml:"target"`
	GoldStandardPath string      `mapstructure:"goldStandardPath" yaml:"goldStandardPath"`
}

// TierConfig locates the artifacts of one tier.
type TierConfig struct {
	Path        string `mapstructure:"path" yaml:"path" validate:"required"`
	Type        string `mapstructure:"type" yaml:"type" validate:"artifactkind"`
	Precomputed bool   `mapstructure:"precomputed" yaml:"precomputed,omitempty"`
}

// IRConfig mirrors ir.Options. Vocabulary applies to VSM and LSI.
type IRConfig struct {
	Vocabulary string `mapstructure:"vocabulary" yaml:"vocabulary" validate:"oneof=biterm token"`
	MaxRank    int    `mapstructure:"maxRank" yaml:"maxRank" validate:"min=1"`
}

// EnrichmentConfig mirrors enrichment.Options.
type EnrichmentConfig struct {
	M                float64 `mapstructure:"m" yaml:"m" validate:"gt=0,lte=1"`
	TopK             int     `mapstructure:"topK" yaml:"topK" validate:"min=1"`
	MinAgreements    float64 `mapstructure:"minAgreements" yaml:"minAgreements" validate:"gte=0"`
	MaxBitermsPerDoc int     `mapstructure:"maxBitermsPerDoc" yaml:"maxBitermsPerDoc" validate:"gte=0"`
	MaxRepPerBiterm  int     `mapstructure:"maxRepPerBiterm" yaml:"maxRepPerBiterm" validate:"min=1"`
}

// TransitivityConfig mirrors transitivity.Options plus the on/off switch.
type TransitivityConfig struct {
	Enabled bool    `mapstructure:"enabled" yaml:"enabled"`
	TopK    int     `mapstructure:"topK" yaml:"topK" validate:"min=1"`
	M       float64 `mapstructure:"m" yaml:"m" validate:"gte=0,lte=1"`
	Policy  string  `mapstructure:"policy" yaml:"policy" validate:"oneof=multiplicative max"`
}

// EvaluationConfig controls the evaluation reports.
type EvaluationConfig struct {
	RecallLevels   int     `mapstructure:"recallLevels" yaml:"recallLevels" validate:"min=1"`
	ThresholdStart float64 `mapstructure:"thresholdStart" yaml:"thresholdStart" validate:"gte=0"`
	ThresholdEnd   float64 `mapstructure:"thresholdEnd" yaml:"thresholdEnd" validate:"gtefield=ThresholdStart"`
	ThresholdStep  float64 `mapstructure:"thresholdStep" yaml:"thresholdStep" validate:"gt=0"`
	TopK           []int   `mapstructure:"topK" yaml:"topK" validate:"dive,min=0"`
}

// LogConfig selects the slog handler.
type LogConfig struct {
	Level  string `mapstructure:"level" yaml:"level" validate:"oneof=debug info warn error"`
	Format string `mapstructure:"format" yaml:"format" validate:"oneof=text json"`
}

// Default returns the built-in configuration without projects.
func Default() Config {
	return Config{
		IRMethod:    "VSM",
		RunTriad:    true,
		DoEvaluate:  true,
		DatasetRoot: "dataset",
		OutputDir:   "experiments/output",
		Parallelism: 1,
		IR:          IRConfig{Vocabulary: "biterm", MaxRank: 100},
		Enrichment: EnrichmentConfig{
			M:                0.5,
			TopK:             3,
			MinAgreements:    2,
			MaxBitermsPerDoc: 24,
			MaxRepPerBiterm:  4,
		},
		Transitivity: TransitivityConfig{
			Enabled: true,
			TopK:    3,
			M:       0.5,
			Policy:  "multiplicative",
		},
		Evaluation: EvaluationConfig{
			RecallLevels:   20,
			ThresholdStart: 0.1,
			ThresholdEnd:   0.9,
			ThresholdStep:  0.1,
			TopK:           []int{1, 3, 5},
		},
		Log: LogConfig{Level: "info", Format: "text"},
	}
}

// Template returns Default with one example project, as written by
// WriteDefault.
func Template() Config {
	c := Default()
	c.Projects = []ProjectConfig{{
		Name:             "example",
		Source:           TierConfig{Path: "example/requirements", Type: "TEXTUAL"},
		Intermediate:     &TierConfig{Path: "example/design", Type: "TEXTUAL"},
		Target:           TierConfig{Path: "example/code", Type: "JAVA_CODE"},
		GoldStandardPath: "example/answer.csv",
	}}
	return c
}
