package config

import (
	"os"
	"runtime"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

// DefaultFile is the optional per-directory configuration file looked up
// by every tool.
const DefaultFile = "dicom-tools.yaml"

type Config struct {
	DecompressTool string `yaml:"decompress_tool"`
	DicomdirTool   string `yaml:"dicomdir_tool"`
	Workers        int    `yaml:"workers"`
	ReadLimit      int    `yaml:"read_limit"`
}

// Default returns the configuration used when no file or environment
// overrides are present. The external tools are the DCMTK binaries.
func Default() *Config {
	return &Config{
		DecompressTool: "dcmdjpeg",
		DicomdirTool:   "dcmmkdir",
		Workers:        runtime.NumCPU() * 2,
		ReadLimit:      5,
	}
}

// Load reads the YAML configuration file if it exists, then applies .env
// and environment variable overrides on top of the defaults.
func Load(filePath string) (*Config, error) {
	cfg := Default()

	if filePath != "" {
		data, err := os.ReadFile(filePath)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, err
			}
		case !os.IsNotExist(err):
			return nil, err
		}
	}

	// .env values become regular environment variables; a missing file is fine.
	_ = godotenv.Load()
	cfg.applyEnv()

	if cfg.Workers < 1 {
		cfg.Workers = 1
	}
	if cfg.ReadLimit < 1 {
		cfg.ReadLimit = 1
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("DICOM_DECOMPRESS_TOOL"); v != "" {
		c.DecompressTool = v
	}
	if v := os.Getenv("DICOM_MKDIR_TOOL"); v != "" {
		c.DicomdirTool = v
	}
	if v := os.Getenv("DICOM_WORKERS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Workers = n
		}
	}
}
