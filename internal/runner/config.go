package runner

import (
	"os"
	"path/filepath"

	"github.com/projectdiscovery/gologger"
	fileutil "github.com/projectdiscovery/utils/file"
	"gopkg.in/yaml.v3"

	"github.com/projectdiscovery/sixdegrees"
)

// defaultAnalysisConfigPath is `$HOME/.config/sixdegrees/analysis.yaml`
func defaultAnalysisConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", "sixdegrees", "analysis.yaml"), nil
}

// loadDefaultConfig makes the user's default analysis config the package
// default, creating it from sixdegrees.DefaultConfig on first run
func loadDefaultConfig() {
	cfgPath, err := defaultAnalysisConfigPath()
	if err != nil {
		gologger.Verbose().Msgf("could not locate home directory: %v", err)
		return
	}
	if fileutil.FileExists(cfgPath) {
		// if it exists use that data as default
		if bin, err := os.ReadFile(cfgPath); err == nil {
			var cfg sixdegrees.Config
			if errx := yaml.Unmarshal(bin, &cfg); errx == nil {
				mergeConfig(&sixdegrees.DefaultConfig, &cfg)
				return
			}
		}
	}
	if err := os.MkdirAll(filepath.Dir(cfgPath), 0700); err != nil {
		gologger.Error().Msgf("failed to create config dir for %v got: %v", cfgPath, err)
		return
	}
	bin, err := sixdegrees.DefaultConfig.Marshal()
	if err != nil {
		gologger.Error().Msgf("failed to encode default config got: %v", err)
		return
	}
	if err := os.WriteFile(cfgPath, bin, 0600); err != nil {
		gologger.Error().Msgf("failed to save default config to %v got: %v", cfgPath, err)
	}
}

// mergeConfig copies every non empty field of src into dst
func mergeConfig(dst, src *sixdegrees.Config) {
	if src.Depth != 0 {
		dst.Depth = src.Depth
	}
	if src.Concurrency != 0 {
		dst.Concurrency = src.Concurrency
	}
	if len(src.Analyses) > 0 {
		dst.Analyses = src.Analyses
	}
	if src.ReportTemplate != "" {
		dst.ReportTemplate = src.ReportTemplate
	}
}
