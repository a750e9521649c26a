package runner

import (
	"github.com/projectdiscovery/goflags"
	"github.com/projectdiscovery/gologger"
	"github.com/projectdiscovery/gologger/levels"
)

// Options holds the flags common to every abnfctl subcommand.
type Options struct {
	File      string
	Rule      string
	Import    string
	Dialect   string
	ConfigDir string
	Config    string
	Input     string
	MaxStates int
	Verbose   bool
	Silent    bool
}

// ParseFlags parses os.Args (with the subcommand word already stripped by
// main) into an Options, the same flag vocabulary across every subcommand
// so users don't have to remember a different surface per verb.
func ParseFlags() *Options {
	opts := &Options{}
	flagSet := goflags.NewFlagSet()
	flagSet.SetDescription(`Inspect, compile, and translate ABNF grammars.`)

	flagSet.CreateGroup("input", "Input",
		flagSet.StringVarP(&opts.File, "file", "f", "", "catalog file to read (stdin if omitted)"),
		flagSet.StringVarP(&opts.Rule, "rule", "r", "", "rulename to operate on"),
		flagSet.StringVarP(&opts.Input, "input", "i", "", "sample input string for test/equivalence queries"),
	)

	flagSet.CreateGroup("output", "Output",
		flagSet.StringVarP(&opts.Dialect, "dialect", "d", "", "regex dialect to emit (ecmascript, pcre, pcre2, java, python, ruby, perl, re2, rust, go, swift, posix-bre, posix-ere, iregexp)"),
		flagSet.BoolVarP(&opts.Verbose, "verbose", "v", false, "display verbose output"),
		flagSet.BoolVar(&opts.Silent, "silent", false, "display results only"),
	)

	flagSet.CreateGroup("config", "Config",
		flagSet.StringVar(&opts.Config, "config", "", "abnfctl config file (default '$HOME/.config/abnfctl/config.yaml')"),
		flagSet.IntVarP(&opts.MaxStates, "max-states", "ms", 0, "override the compiler's per-rule state budget"),
	)

	if err := flagSet.Parse(); err != nil {
		gologger.Fatal().Msgf("could not read flags: %s\n", err)
	}

	if opts.Silent {
		gologger.DefaultLogger.SetMaxLevel(levels.LevelSilent)
	} else if opts.Verbose {
		gologger.DefaultLogger.SetMaxLevel(levels.LevelVerbose)
	}

	return opts
}
