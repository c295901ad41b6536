package runner

import (
	"fmt"
	"os"
	"slices"

	errorutil "github.com/projectdiscovery/utils/errors"
	fileutil "github.com/projectdiscovery/utils/file"

	"github.com/projectdiscovery/sixdegrees"
)

// validate checks input sources and values that can be checked before
// any file is read
func (o *Options) validate() error {
	o.stdin = o.Input == "" && fileutil.HasStdin()
	if o.Input == "" && !o.stdin {
		return errorutil.New("no input found, use -i or pipe an edge list to stdin")
	}
	if o.Input != "" && !fileutil.FileExists(o.Input) {
		return errorutil.NewWithTag("sixdegrees", "input file %v does not exist", o.Input)
	}
	if o.Depth < 0 {
		return errorutil.New("depth cannot be negative")
	}
	if o.Histogram != "" {
		if _, err := sixdegrees.ExporterForFile(o.Histogram); err != nil {
			return err
		}
	}
	if o.Template != "" && !fileutil.FileExists(o.Template) {
		return errorutil.NewWithTag("sixdegrees", "template file %v does not exist", o.Template)
	}
	return nil
}

// resolveConfig layers the analysis config sources: package defaults,
// the -ac file, then explicitly set flags
func (o *Options) resolveConfig() (sixdegrees.Config, error) {
	cfg := sixdegrees.DefaultConfig
	cfg.Analyses = slices.Clone(cfg.Analyses)

	if o.AnalysisConfig != "" {
		fileCfg, err := sixdegrees.NewConfig(o.AnalysisConfig)
		if err != nil {
			return cfg, fmt.Errorf("failed to read analysis config %v: %w", o.AnalysisConfig, err)
		}
		mergeConfig(&cfg, fileCfg)
	}

	if o.Depth > 0 {
		cfg.Depth = o.Depth
	}
	if o.Concurrency != 0 {
		cfg.Concurrency = o.Concurrency
	}
	if len(o.Analyses) > 0 {
		cfg.Analyses = o.Analyses
	}
	if o.Template != "" {
		bin, err := os.ReadFile(o.Template)
		if err != nil {
			return cfg, err
		}
		cfg.ReportTemplate = string(bin)
	}
	return cfg, nil
}
