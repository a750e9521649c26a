// Command abnfctl is a thin CLI adapter over the grammarswiki engine: it
// reads an ABNF catalog, resolves imports, compiles a rule to a Dfa, and
// answers rule-listing, regex-synthesis, equivalence, ambiguity, and
// enumeration queries against it.
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	grammarswiki "github.com/awwright/grammarswiki-sub003"
	"github.com/awwright/grammarswiki-sub003/abnf"
	"github.com/awwright/grammarswiki-sub003/ambiguity"
	"github.com/awwright/grammarswiki-sub003/catalog"
	"github.com/awwright/grammarswiki-sub003/compiler"
	"github.com/awwright/grammarswiki-sub003/internal/runner"
	"github.com/awwright/grammarswiki-sub003/symbolclass"
	"github.com/projectdiscovery/gologger"
)

func main() {
	if len(os.Args) < 2 {
		gologger.Fatal().Msgf("usage: abnfctl <command> [flags]")
	}
	command := os.Args[1]
	os.Args = append(os.Args[:1], os.Args[2:]...)
	opts := runner.ParseFlags()
	fileCfg := runner.LoadFileConfig(opts.Config)

	cfg := compiler.DefaultConfig()
	cfg.MaxStates = fileCfg.MaxStates
	if opts.MaxStates > 0 {
		cfg.MaxStates = opts.MaxStates
	}
	dialectName := fileCfg.Dialect
	if opts.Dialect != "" {
		dialectName = opts.Dialect
	}

	var exitCode int
	switch command {
	case "abnf-list-rulenames":
		exitCode = cmdListRulenames(opts)
	case "abnf-list-rules":
		exitCode = cmdListRules(opts)
	case "abnf-to-regex":
		exitCode = cmdToRegex(opts, cfg, dialectName)
	case "abnf-expression-test-input":
		exitCode = cmdTestInput(opts, cfg)
	case "abnf-equivalent-inputs":
		exitCode = cmdEquivalentInputs(opts, cfg)
	case "abnf-ambiguous-concat":
		exitCode = cmdAmbiguousConcat(opts, cfg)
	case "abnf-generate":
		exitCode = cmdGenerate(opts, cfg)
	case "catalog-list":
		exitCode = cmdCatalogList(opts)
	case "translate":
		exitCode = cmdTranslate(opts)
	default:
		gologger.Error().Msgf("unrecognised command %q", command)
		exitCode = 1
	}
	os.Exit(exitCode)
}

func readCatalog(opts *runner.Options) (abnf.Rulelist, error) {
	var bin []byte
	var err error
	if opts.File == "" {
		bin, err = io.ReadAll(os.Stdin)
	} else {
		bin, err = os.ReadFile(opts.File)
	}
	if err != nil {
		return abnf.Rulelist{}, err
	}
	return abnf.ParseRulelist(abnf.Normalize(bin))
}

func dereferencedCatalog(opts *runner.Options) (abnf.Rulelist, error) {
	root, err := readCatalog(opts)
	if err != nil {
		return abnf.Rulelist{}, err
	}
	if opts.File == "" {
		return root, nil
	}
	loader := runner.FilesystemLoader(filepath.Dir(opts.File))
	return catalog.Dereference(root, loader)
}

func cmdListRulenames(opts *runner.Options) int {
	rl, err := readCatalog(opts)
	if err != nil {
		gologger.Error().Msgf("%v", err)
		return 2
	}
	for _, name := range rl.RuleNames() {
		fmt.Println(name)
	}
	return 0
}

func cmdListRules(opts *runner.Options) int {
	rl, err := readCatalog(opts)
	if err != nil {
		gologger.Error().Msgf("%v", err)
		return 2
	}
	fmt.Print(abnf.Print(rl))
	return 0
}

func cmdToRegex(opts *runner.Options, cfg compiler.Config, dialectName string) int {
	if opts.Rule == "" {
		gologger.Error().Msg("abnf-to-regex requires --rule")
		return 1
	}
	rl, err := dereferencedCatalog(opts)
	if err != nil {
		gologger.Error().Msgf("%v", err)
		return 2
	}
	d, err := compiler.Compile(rl, opts.Rule, cfg)
	if err != nil {
		gologger.Error().Msgf("%v", err)
		return 2
	}
	dialect, err := runner.DialectByName(dialectName)
	if err != nil {
		gologger.Error().Msgf("%v", err)
		return 1
	}
	tree := grammarswiki.ToRegex(d)
	fmt.Println(grammarswiki.Emit(tree, dialect))
	return 0
}

func cmdTestInput(opts *runner.Options, cfg compiler.Config) int {
	if opts.Rule == "" {
		gologger.Error().Msg("abnf-expression-test-input requires --rule")
		return 1
	}
	rl, err := dereferencedCatalog(opts)
	if err != nil {
		gologger.Error().Msgf("%v", err)
		return 2
	}
	d, err := compiler.Compile(rl, opts.Rule, cfg)
	if err != nil {
		gologger.Error().Msgf("%v", err)
		return 2
	}
	input := opts.Input
	if input == "" {
		bin, _ := io.ReadAll(os.Stdin)
		input = strings.TrimRight(string(bin), "\r\n")
	}
	if d.Contains(grammarswiki.StringToSymbols(input)) {
		fmt.Println("match")
		return 0
	}
	fmt.Println("no match")
	return 2
}

func cmdEquivalentInputs(opts *runner.Options, cfg compiler.Config) int {
	if opts.Rule == "" || opts.Input == "" {
		gologger.Error().Msg("abnf-equivalent-inputs requires --rule and --input")
		return 1
	}
	rl, err := dereferencedCatalog(opts)
	if err != nil {
		gologger.Error().Msgf("%v", err)
		return 2
	}
	res, err := ambiguity.EquivalentInputs(rl, opts.Rule, grammarswiki.StringToSymbols(opts.Input), cfg)
	if err != nil {
		gologger.Error().Msgf("%v", err)
		return 2
	}
	if !res.Live {
		fmt.Println("non-live")
		return 2
	}
	it := res.Inputs.Iterate()
	for {
		seq, ok := it.Next()
		if !ok {
			break
		}
		fmt.Println(symbolsToString(seq))
	}
	return 0
}

func cmdAmbiguousConcat(opts *runner.Options, cfg compiler.Config) int {
	parts := strings.SplitN(opts.Rule, ",", 2)
	if len(parts) != 2 {
		gologger.Error().Msg("abnf-ambiguous-concat requires --rule A,B")
		return 1
	}
	rl, err := dereferencedCatalog(opts)
	if err != nil {
		gologger.Error().Msgf("%v", err)
		return 2
	}
	a, err := compiler.Compile(rl, strings.TrimSpace(parts[0]), cfg)
	if err != nil {
		gologger.Error().Msgf("%v", err)
		return 2
	}
	b, err := compiler.Compile(rl, strings.TrimSpace(parts[1]), cfg)
	if err != nil {
		gologger.Error().Msgf("%v", err)
		return 2
	}
	d := ambiguity.Decompose(a, b)
	if d.Unambiguous() {
		fmt.Println("unambiguous")
		return 0
	}
	fmt.Println("ambiguous")
	it := d.Overlap.Iterate()
	for i := 0; i < 20; i++ {
		seq, ok := it.Next()
		if !ok {
			break
		}
		fmt.Println(symbolsToString(seq))
	}
	return 0
}

func cmdGenerate(opts *runner.Options, cfg compiler.Config) int {
	if opts.Rule == "" {
		gologger.Error().Msg("abnf-generate requires --rule")
		return 1
	}
	rl, err := dereferencedCatalog(opts)
	if err != nil {
		gologger.Error().Msgf("%v", err)
		return 2
	}
	d, err := compiler.Compile(rl, opts.Rule, cfg)
	if err != nil {
		gologger.Error().Msgf("%v", err)
		return 2
	}
	it := d.Iterate()
	for i := 0; i < 100; i++ {
		seq, ok := it.Next()
		if !ok {
			break
		}
		fmt.Println(symbolsToString(seq))
	}
	return 0
}

func cmdCatalogList(opts *runner.Options) int {
	rl, err := dereferencedCatalog(opts)
	if err != nil {
		gologger.Error().Msgf("%v", err)
		return 2
	}
	for _, name := range rl.RuleNames() {
		report := abnf.Dependencies(rl, name)
		status := "ok"
		if len(report.Recursive) > 0 {
			status = "recursive"
		} else if len(report.Undefined) > 0 {
			status = "undefined:" + strings.Join(report.Undefined, ",")
		}
		fmt.Printf("%s\t%s\n", name, status)
	}
	return 0
}

func cmdTranslate(opts *runner.Options) int {
	rl, err := dereferencedCatalog(opts)
	if err != nil {
		gologger.Error().Msgf("%v", err)
		return 2
	}
	fmt.Print(abnf.Print(rl))
	return 0
}

func symbolsToString(seq []symbolclass.Symbol) string {
	b := make([]byte, len(seq))
	for i, s := range seq {
		b[i] = byte(s)
	}
	return string(b)
}
