package sixdegrees

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the yaml analysis configuration
type Config struct {
	// Depth is the exact separation counted per vertex (6 = sixth degree)
	Depth int `yaml:"depth"`
	// Concurrency is the number of goroutines per scan, negative uses every cpu
	Concurrency int `yaml:"concurrency"`
	// Analyses to run, see DefaultAnalyses
	Analyses []string `yaml:"analyses"`
	// ReportTemplate renders the text report using {{placeholders}}
	ReportTemplate string `yaml:"report-template"`
}

// NewConfig reads config from file
func NewConfig(filePath string) (*Config, error) {
	bin, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err = yaml.Unmarshal(bin, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Marshal encodes the config as yaml
func (c Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

// GenerateSample creates a sample yaml file with default values
func GenerateSample(filePath string) error {
	bin, err := DefaultConfig.Marshal()
	if err != nil {
		return err
	}
	return os.WriteFile(filePath, bin, 0644)
}
