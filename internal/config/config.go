package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/5dollarhigh/grocerytrace/internal/logger"
)

type Config struct {
	DB        string        `toml:"db"`
	UploadDir string        `toml:"upload_dir"`
	OCRLang   string        `toml:"ocr_lang"`
	Port      string        `toml:"port"`
	Logger    logger.Config `toml:"logger"`
}

const (
	defaultDBFile    = "grocerytrace.db"
	defaultUploadDir = "uploads"
	defaultOCRLang   = "eng"
	defaultPort      = "8080"
)

// Parse reads the TOML configuration file and applies GROCERYTRACE_*
// env overrides on top. A missing file is not an error, defaults apply.
func Parse(file string) (*Config, error) {
	conf := &Config{}

	content, err := os.ReadFile(file)
	if err == nil {
		if err := toml.Unmarshal(content, conf); err != nil {
			return nil, fmt.Errorf("unable to parse config file %s: %w", file, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, err
	}

	conf.parseEnv()
	conf.applyDefaults()

	return conf, nil
}

func (c *Config) parseEnv() {
	if db := os.Getenv("GROCERYTRACE_DB"); db != "" {
		c.DB = db
	}

	if dir := os.Getenv("GROCERYTRACE_UPLOAD_DIR"); dir != "" {
		c.UploadDir = dir
	}

	if lang := os.Getenv("GROCERYTRACE_OCR_LANG"); lang != "" {
		c.OCRLang = lang
	}

	if port := os.Getenv("GROCERYTRACE_PORT"); port != "" {
		c.Port = port
	}

	if level := os.Getenv("GROCERYTRACE_LOG_LEVEL"); level != "" {
		c.Logger.Level = logger.Level(level)
	}

	if format := os.Getenv("GROCERYTRACE_LOG_FORMAT"); format != "" {
		c.Logger.Format = logger.Format(format)
	}

	if output := os.Getenv("GROCERYTRACE_LOG_OUTPUT"); output != "" {
		c.Logger.Output = output
	}
}

func (c *Config) applyDefaults() {
	if c.DB == "" {
		c.DB = defaultDBFile
	}

	if c.UploadDir == "" {
		c.UploadDir = defaultUploadDir
	}

	if c.OCRLang == "" {
		c.OCRLang = defaultOCRLang
	}

	if c.Port == "" {
		c.Port = defaultPort
	}

	if c.Logger.Level == "" {
		c.Logger.Level = logger.LevelInfo
	}

	if c.Logger.Format == "" {
		c.Logger.Format = logger.FormatText
	}

	if c.Logger.Output == "" {
		c.Logger.Output = "stdout"
	}
}
