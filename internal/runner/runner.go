package runner

import (
	"os"

	"github.com/projectdiscovery/goflags"
	"github.com/projectdiscovery/gologger"
	"github.com/projectdiscovery/gologger/levels"
)

type Options struct {
	Input          string              // tab separated edge list (file or stdin)
	Analyses       goflags.StringSlice // analyses to run
	Depth          int                 // exact separation to count
	Concurrency    int                 // goroutines per scan
	Output         string
	JSON           bool
	Histogram      string // histogram image/tsv path
	Frequencies    string // frequency vector tsv path
	Metrics        string // prometheus textfile path
	Template       string // report template file
	Config         string
	AnalysisConfig string
	Verbose        bool
	Silent         bool
	// internal/unexported fields
	stdin bool
}

func ParseFlags() *Options {
	opts := &Options{}
	flagSet := goflags.NewFlagSet()
	flagSet.SetDescription(`Sixth degree reachability, distance and neighborhood similarity statistics for large undirected graphs.`)

	flagSet.CreateGroup("input", "Input",
		flagSet.StringVarP(&opts.Input, "input", "i", "", "tab separated two column edge list (file or stdin)"),
	)

	flagSet.CreateGroup("analysis", "Analysis",
		flagSet.StringSliceVarP(&opts.Analyses, "analysis", "a", nil, "analyses to run (sixth-degree,distance,similarity)", goflags.CommaSeparatedStringSliceOptions),
		flagSet.IntVarP(&opts.Depth, "depth", "d", 0, "exact separation counted per vertex (default 6)"),
		flagSet.IntVarP(&opts.Concurrency, "concurrency", "c", 0, "goroutines per scan, -1 uses every cpu (default 1)"),
	)

	flagSet.CreateGroup("output", "Output",
		flagSet.StringVarP(&opts.Output, "output", "o", "", "output file to write the report"),
		flagSet.BoolVarP(&opts.JSON, "json", "j", false, "write the report as json"),
		flagSet.StringVarP(&opts.Histogram, "histogram", "hg", "", "write the path distribution histogram at the analysed depth (png, svg, pdf, tsv)"),
		flagSet.StringVarP(&opts.Frequencies, "frequencies", "fq", "", "write the path distribution frequency vector as tsv"),
		flagSet.StringVarP(&opts.Metrics, "metrics", "m", "", "write run metrics in prometheus text format"),
		flagSet.StringVarP(&opts.Template, "template", "t", "", "report template file using {{placeholders}}"),
	)

	flagSet.CreateGroup("config", "Config",
		flagSet.StringVar(&opts.Config, "config", "", `sixdegrees cli config file (default '$HOME/.config/sixdegrees/config.yaml')`),
		flagSet.StringVar(&opts.AnalysisConfig, "ac", "", `sixdegrees analysis config file (default '$HOME/.config/sixdegrees/analysis.yaml')`),
	)

	flagSet.CreateGroup("debug", "Debug",
		flagSet.BoolVarP(&opts.Verbose, "verbose", "v", false, "display verbose output"),
		flagSet.BoolVar(&opts.Silent, "silent", false, "display results only"),
		flagSet.CallbackVar(printVersion, "version", "display sixdegrees version"),
	)

	if err := flagSet.Parse(); err != nil {
		gologger.Fatal().Msgf("Could not read flags: %s\n", err)
	}

	if opts.Config != "" {
		if err := flagSet.MergeConfigFile(opts.Config); err != nil {
			gologger.Error().Msgf("failed to read config file got %v", err)
		}
	}

	if opts.Silent {
		gologger.DefaultLogger.SetMaxLevel(levels.LevelSilent)
	} else if opts.Verbose {
		gologger.DefaultLogger.SetMaxLevel(levels.LevelVerbose)
	}
	showBanner()
	loadDefaultConfig()

	if err := opts.validate(); err != nil {
		gologger.Fatal().Msgf("sixdegrees: %v", err)
	}
	return opts
}

func printVersion() {
	gologger.Info().Msgf("Current version: %s", version)
	os.Exit(0)
}
