package builder

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/heartmarshall/frenchdict/internal/domain"
)

// Config holds build pipeline settings.
type Config struct {
	OutputDir       string         `yaml:"output_dir"        env:"DICTBUILD_OUTPUT_DIR"        env-default:"public/data/dicts"`
	IndexFile       string         `yaml:"index_file"        env:"DICTBUILD_INDEX_FILE"        env-default:"index.json"`
	SplitByCategory bool           `yaml:"split_by_category" env:"DICTBUILD_SPLIT_BY_CATEGORY"`
	DryRun          bool           `yaml:"dry_run"           env:"DICTBUILD_DRY_RUN"`
	SourceDateEpoch string         `yaml:"source_date_epoch" env:"SOURCE_DATE_EPOCH"`
	Gonggong        GonggongConfig `yaml:"gonggong"`
	Wordlist        WordlistConfig `yaml:"wordlist"`
}

// GonggongConfig describes the text dictionary source.
type GonggongConfig struct {
	Path             string `yaml:"path"              env:"DICTBUILD_GONGGONG_PATH"`
	ID               string `yaml:"id"                env:"DICTBUILD_GONGGONG_ID"          env-default:"gonggong"`
	Name             string `yaml:"name"              env:"DICTBUILD_GONGGONG_NAME"        env-default:"公共法语学习词典"`
	Description      string `yaml:"description"       env:"DICTBUILD_GONGGONG_DESCRIPTION" env-default:"面向初学者的法汉学习词典"`
	IndexDescription string `yaml:"index_description" env:"DICTBUILD_GONGGONG_INDEX_DESC"  env-default:"公共法语学习词典，含释义与例句"`
	Level            string `yaml:"level"             env:"DICTBUILD_GONGGONG_LEVEL"       env-default:"A1-B2"`
	Source           string `yaml:"source"            env:"DICTBUILD_GONGGONG_SOURCE"`
	License          string `yaml:"license"           env:"DICTBUILD_GONGGONG_LICENSE"`
	Version          string `yaml:"version"           env:"DICTBUILD_GONGGONG_VERSION"`
}

// WordlistConfig describes the CSV wordlist source.
type WordlistConfig struct {
	Dir              string `yaml:"dir"               env:"DICTBUILD_WORDLIST_DIR"`
	ID               string `yaml:"id"                env:"DICTBUILD_WORDLIST_ID"          env-default:"french_dict"`
	Name             string `yaml:"name"              env:"DICTBUILD_WORDLIST_NAME"        env-default:"French Dictionary (Wiktionary)"`
	Description      string `yaml:"description"       env:"DICTBUILD_WORDLIST_DESCRIPTION" env-default:"基于 Wiktionary 的法语词表，含全部词性"`
	IndexDescription string `yaml:"index_description" env:"DICTBUILD_WORDLIST_INDEX_DESC"  env-default:"Wiktionary 法语词表"`
	Level            string `yaml:"level"             env:"DICTBUILD_WORDLIST_LEVEL"       env-default:"A1-C2"`
	Source           string `yaml:"source"            env:"DICTBUILD_WORDLIST_SOURCE"      env-default:"https://github.com/hbenbel/French-Dictionary"`
	License          string `yaml:"license"           env:"DICTBUILD_WORDLIST_LICENSE"     env-default:"MIT"`
	Version          string `yaml:"version"           env:"DICTBUILD_WORDLIST_VERSION"`
	LemmasOnly       bool   `yaml:"lemmas_only"       env:"DICTBUILD_WORDLIST_LEMMAS_ONLY" env-default:"true"`
}

// LoadConfig reads build configuration from a YAML file and environment variables.
// Priority: ENV > YAML > defaults (via env-default tags).
func LoadConfig(path string) (*Config, error) {
	var cfg Config

	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("builder config: file %s not found", path)
		}
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("builder config: read %s: %w", path, err)
		}
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("builder config: read env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("builder config: %w", err)
	}
	return &cfg, nil
}

// Validate checks the settings the pipeline cannot run without.
func (c *Config) Validate() error {
	var errs []domain.FieldError
	if c.OutputDir == "" {
		errs = append(errs, domain.FieldError{Field: "output_dir", Message: "required"})
	}
	if c.IndexFile == "" {
		errs = append(errs, domain.FieldError{Field: "index_file", Message: "required"})
	}
	if c.Gonggong.ID == "" {
		errs = append(errs, domain.FieldError{Field: "gonggong.id", Message: "required"})
	}
	if c.Wordlist.ID == "" {
		errs = append(errs, domain.FieldError{Field: "wordlist.id", Message: "required"})
	}
	if c.Gonggong.ID != "" && c.Gonggong.ID == c.Wordlist.ID {
		errs = append(errs, domain.FieldError{Field: "wordlist.id", Message: "must differ from gonggong.id"})
	}
	if _, err := c.generatedAt(); err != nil {
		errs = append(errs, domain.FieldError{Field: "source_date_epoch", Message: err.Error()})
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// generatedAt returns the pinned build time, or the zero time when unset.
func (c *Config) generatedAt() (time.Time, error) {
	if c.SourceDateEpoch == "" {
		return time.Time{}, nil
	}
	secs, err := strconv.ParseInt(c.SourceDateEpoch, 10, 64)
	if err != nil || secs < 0 {
		return time.Time{}, fmt.Errorf("must be a non-negative unix timestamp (got %q)", c.SourceDateEpoch)
	}
	return time.Unix(secs, 0).UTC(), nil
}
