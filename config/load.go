// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/afero"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/triad/artifact"
)

const (
	// EnvPrefix prefixes every environment override (TRIAD_IRMETHOD, TRIAD_ENRICHMENT_TOPK, ...).
	EnvPrefix = "TRIAD"

	// FileName is the config file looked up in the working directory.
	FileName = "triad.yaml"

	// HomeFileName is the config file looked up in the home directory.
	HomeFileName = ".triad.yaml"
)

// validate caches struct metadata across calls.
var validate *validator.Validate

func init() {
	validate = validator.New()
	_ = validate.RegisterValidation("artifactkind", func(fl validator.FieldLevel) bool {
		_, err := artifact.ParseKind(fl.Field().String())
		return err == nil
	})
}

// Load builds the configuration from, in increasing priority: Default(),
// the config file, and TRIAD_* environment variables (a .env file in the
// working directory is loaded first when present).
//
// With path empty, ./triad.yaml and then $HOME/.triad.yaml are tried; no
// file at all is not an error. An explicit path must exist.
func Load(fs afero.Fs, path string) (Config, error) {
	// A missing .env is fine.
	_ = godotenv.Load()

	v := viper.New()
	v.SetFs(fs)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v, Default())

	if path == "" {
		path = locate(fs)
	}
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return Config{}, fmt.Errorf("read config %s: %w", path, err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	cfg.normalize()

	return cfg, nil
}

func locate(fs afero.Fs) string {
	candidates := []string{FileName}
	if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates, filepath.Join(home, HomeFileName))
	}
	for _, c := range candidates {
		if info, err := fs.Stat(c); err == nil && !info.IsDir() {
			return c
		}
	}
	return ""
}

func setDefaults(v *viper.Viper, d Config) {
	v.SetDefault("irMethod", d.IRMethod)
	v.SetDefault("runTriad", d.RunTriad)
	v.SetDefault("doEvaluate", d.DoEvaluate)
	v.SetDefault("datasetRoot", d.DatasetRoot)
	v.SetDefault("outputDir", d.OutputDir)
	v.SetDefault("parallelism", d.Parallelism)

	v.SetDefault("ir.vocabulary", d.IR.Vocabulary)
	v.SetDefault("ir.maxRank", d.IR.MaxRank)

	v.SetDefault("enrichment.m", d.Enrichment.M)
	v.SetDefault("enrichment.topK", d.Enrichment.TopK)
	v.SetDefault("enrichment.minAgreements", d.Enrichment.MinAgreements)
	v.SetDefault("enrichment.maxBitermsPerDoc", d.Enrichment.MaxBitermsPerDoc)
	v.SetDefault("enrichment.maxRepPerBiterm", d.Enrichment.MaxRepPerBiterm)

	v.SetDefault("transitivity.enabled", d.Transitivity.Enabled)
	v.SetDefault("transitivity.topK", d.Transitivity.TopK)
	v.SetDefault("transitivity.m", d.Transitivity.M)
	v.SetDefault("transitivity.policy", d.Transitivity.Policy)

	v.SetDefault("evaluation.recallLevels", d.Evaluation.RecallLevels)
	v.SetDefault("evaluation.thresholdStart", d.Evaluation.ThresholdStart)
	v.SetDefault("evaluation.thresholdEnd", d.Evaluation.ThresholdEnd)
	v.SetDefault("evaluation.thresholdStep", d.Evaluation.ThresholdStep)
	v.SetDefault("evaluation.topK", d.Evaluation.TopK)

	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.format", d.Log.Format)
}

// normalize folds case-insensitive enumerations to their canonical spelling.
func (c *Config) normalize() {
	c.IRMethod = strings.ToUpper(strings.TrimSpace(c.IRMethod))
	c.IR.Vocabulary = strings.ToLower(strings.TrimSpace(c.IR.Vocabulary))
	c.Transitivity.Policy = strings.ToLower(strings.TrimSpace(c.Transitivity.Policy))
	c.Log.Level = strings.ToLower(strings.TrimSpace(c.Log.Level))
	c.Log.Format = strings.ToLower(strings.TrimSpace(c.Log.Format))
}

// Validate checks c against its struct tags. Every failure wraps
// ErrInvalidConfig.
func Validate(c Config) error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

// WriteDefault writes Template() as YAML to path. An existing file is kept
// unless force is set.
func WriteDefault(fs afero.Fs, path string, force bool) error {
	if !force {
		if _, err := fs.Stat(path); err == nil {
			return fmt.Errorf("%s: %w", path, ErrConfigExists)
		}
	}
	out, err := yaml.Marshal(Template())
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := fs.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
	}
	if err := afero.WriteFile(fs, path, out, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
