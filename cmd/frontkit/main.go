/*
Frontkit drives one of the toolkit's four grammar registries (regex, arith,
json, jack) over an input source, printing the DFA transition table, the
parser-visible token stream, the concrete parse tree, and the converted AST
in sequence.

Usage:

	frontkit [flags] [FILE]

The flags are:

	-g, --grammar NAME
		Grammar registry to run: regex, arith, json, or jack. Defaults to
		the config file's grammar, or "json" if no config is given.

	-r, --repl
		Read and process one line at a time from stdin using GNU
		readline-based input instead of treating the input as a single
		source document.

	-c, --config FILE
		TOML config file of overrides (see internal/frontkit/frontcfg), merged on
		top of the built-in default.

	--compile-cache FILE
		After a successful build, write the DFA and LL(1) table to FILE as
		a rezi-encoded compiled bundle.

	--use-cache FILE
		Skip DFA and LL(1) table construction and restore both from a
		compiled bundle previously written with --compile-cache (the
		grammar itself is rebuilt from the bundle's production list).

With no FILE argument, source is read from stdin (ignored in -repl mode,
which reads stdin itself one line at a time).

Exit codes: 0 on success, 1 on a lexical, syntactic, or AST conversion
error, 2 on a bad invocation or a grammar that fails to build.
*/
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/arlenholt/frontkit/internal/frontkit/ast"
	"github.com/arlenholt/frontkit/internal/frontkit/automaton"
	"github.com/arlenholt/frontkit/internal/frontkit/diag"
	"github.com/arlenholt/frontkit/internal/frontkit/frontcfg"
	"github.com/arlenholt/frontkit/internal/frontkit/grammar"
	"github.com/arlenholt/frontkit/internal/frontkit/grammars/arithgram"
	"github.com/arlenholt/frontkit/internal/frontkit/grammars/jackgram"
	"github.com/arlenholt/frontkit/internal/frontkit/grammars/jsongram"
	"github.com/arlenholt/frontkit/internal/frontkit/grammars/regexgram"
	"github.com/arlenholt/frontkit/internal/frontkit/lex"
	"github.com/arlenholt/frontkit/internal/frontkit/parse"
	"github.com/arlenholt/frontkit/internal/frontkit/symbol"
	"github.com/arlenholt/frontkit/internal/version"
	"github.com/chzyer/readline"
	"github.com/spf13/pflag"
)

const (
	// ExitSuccess indicates a clean run.
	ExitSuccess = iota

	// ExitSourceError indicates a lexical, syntactic, or AST conversion
	// failure against otherwise-good input and grammar.
	ExitSourceError

	// ExitInitError indicates a bad invocation or a grammar/DFA that
	// failed to build.
	ExitInitError
)

// registry bundles one grammar package's exported build functions so the
// CLI can dispatch on -grammar without a big per-name switch at every call
// site.
type registry struct {
	Name         string
	BuildDFA     func() (*automaton.DFA, error)
	BuildGrammar func() (*grammar.Grammar, error)
	BuildVisitor func() *ast.Visitor
	LexConfig    func() lex.Config
	Namer        symbol.Namer
}

var registries = map[string]registry{
	"regex": {
		Name:         "regex",
		BuildDFA:     regexgram.BuildDFA,
		BuildGrammar: regexgram.BuildGrammar,
		BuildVisitor: regexgram.BuildVisitor,
		LexConfig:    regexgram.LexConfig,
		Namer:        regexgram.Namer,
	},
	"arith": {
		Name:         "arith",
		BuildDFA:     arithgram.BuildDFA,
		BuildGrammar: arithgram.BuildGrammar,
		BuildVisitor: arithgram.BuildVisitor,
		LexConfig:    arithgram.LexConfig,
		Namer:        arithgram.Namer,
	},
	"json": {
		Name:         "json",
		BuildDFA:     jsongram.BuildDFA,
		BuildGrammar: jsongram.BuildGrammar,
		BuildVisitor: jsongram.BuildVisitor,
		LexConfig:    jsongram.LexConfig,
		Namer:        jsongram.Namer,
	},
	"jack": {
		Name:         "jack",
		BuildDFA:     jackgram.BuildDFA,
		BuildGrammar: jackgram.BuildGrammar,
		BuildVisitor: jackgram.BuildVisitor,
		LexConfig:    jackgram.LexConfig,
		Namer:        jackgram.Namer,
	},
}

var (
	returnCode   = ExitSuccess
	flagVersion  = pflag.BoolP("version", "v", false, "Print the frontkit version and exit")
	flagGrammar  = pflag.StringP("grammar", "g", "", "Grammar registry to run: regex, arith, json, or jack")
	flagRepl     = pflag.BoolP("repl", "r", false, "Read and process one line at a time via readline")
	flagConfig   = pflag.StringP("config", "c", "", "TOML config file of overrides")
	flagCompile  = pflag.String("compile-cache", "", "Write the built DFA and LL(1) table to FILE")
	flagUseCache = pflag.String("use-cache", "", "Restore the DFA and LL(1) table from FILE instead of building them")
)

func main() {
	defer func() {
		if panicErr := recover(); panicErr != nil {
			panic(fmt.Sprintf("unrecoverable panic occurred: %v", panicErr))
		} else {
			os.Exit(returnCode)
		}
	}()

	pflag.Parse()

	if *flagVersion {
		fmt.Println(version.Current)
		return
	}

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
		returnCode = ExitInitError
		return
	}

	grammarName := cfg.Grammar
	if *flagGrammar != "" {
		grammarName = *flagGrammar
	}
	reg, ok := registries[grammarName]
	if !ok {
		fmt.Fprintf(os.Stderr, "ERROR: unknown grammar %q (want regex, arith, json, or jack)\n", grammarName)
		returnCode = ExitInitError
		return
	}

	dfa, g, table, err := buildOrRestore(reg, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
		returnCode = ExitInitError
		return
	}

	parser := parse.NewWithTable(g, table)
	visitor := reg.BuildVisitor()
	lexCfg := reg.LexConfig()
	if cfg.MaxIdentLength > 0 {
		lexCfg.MaxLength = cfg.MaxIdentLength
	}
	discard := extendedDiscard(reg.Namer, cfg.ExtraDiscard)

	fmt.Println(dfa.StringWithNamer(reg.Namer))
	fmt.Println(table.StringWithNamer(reg.Namer, g))

	if *flagRepl {
		returnCode = runRepl(dfa, parser, visitor, lexCfg, discard, reg.Namer)
		return
	}

	src, err := readSource(pflag.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
		returnCode = ExitInitError
		return
	}

	returnCode = runOnce(dfa, parser, visitor, lexCfg, discard, src, os.Stdout, reg.Namer)
}

func loadConfig() (frontcfg.Config, error) {
	cfg := frontcfg.Default()
	if *flagConfig == "" {
		return cfg, nil
	}
	fileCfg, err := frontcfg.Load(*flagConfig)
	if err != nil {
		return frontcfg.Config{}, err
	}
	return cfg.Merge(fileCfg), nil
}

// buildOrRestore builds reg's DFA and grammar from scratch, or restores
// both (plus the LL(1) table) from a compiled bundle if -use-cache was
// given (falling back to cfg.CompileCache as the default cache path when
// -use-cache was not given but a config file names one). When
// -compile-cache is given explicitly, the freshly built bundle is written
// out for a later run to restore.
func buildOrRestore(reg registry, cfg frontcfg.Config) (*automaton.DFA, *grammar.Grammar, *grammar.Table, error) {
	useCache := *flagUseCache
	if useCache == "" {
		useCache = cfg.CompileCache
	}

	if useCache != "" {
		bundle, err := frontcfg.LoadBundle(useCache)
		if err != nil {
			return nil, nil, nil, err
		}
		if bundle.Grammar != reg.Name {
			return nil, nil, nil, fmt.Errorf("cmd/frontkit: cached bundle is for grammar %q, not %q", bundle.Grammar, reg.Name)
		}
		g, table, dfa, err := bundle.Restore()
		return dfa, g, table, err
	}

	dfa, err := reg.BuildDFA()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("build DFA: %w", err)
	}
	g, err := reg.BuildGrammar()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("build grammar: %w", err)
	}
	table, err := g.LLTable()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("build LL(1) table: %w", err)
	}

	if *flagCompile != "" {
		bundle := frontcfg.NewCompiledBundle(reg.Name, g, table, dfa)
		if err := frontcfg.Save(*flagCompile, bundle); err != nil {
			return nil, nil, nil, err
		}
	}

	return dfa, g, table, nil
}

// extendedDiscard adapts a Namer's Discardable with a by-name override
// list from config, letting a TOML file discard additional terminal
// Kinds (e.g. a COMMENT kind in a grammar that doesn't discard it by
// default) without needing their numeric Kind value.
func extendedDiscard(namer symbol.Namer, extra []string) func(symbol.Kind) bool {
	extraSet := make(map[string]bool, len(extra))
	for _, name := range extra {
		extraSet[name] = true
	}
	return func(k symbol.Kind) bool {
		return namer.Discardable(k) || extraSet[namer.Name(k)]
	}
}

func readSource(arg string) (string, error) {
	var r io.Reader = os.Stdin
	if arg != "" {
		f, err := os.Open(arg)
		if err != nil {
			return "", fmt.Errorf("open %s: %w", arg, err)
		}
		defer f.Close()
		r = f
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("read source: %w", err)
	}
	return string(data), nil
}

// runOnce lexes, parses, and converts src in a single pass, printing each
// stage's output to out using namer to render grammar-specific Kind names
// instead of the generic Kind.String() placeholder. It returns ExitSuccess
// or ExitSourceError.
func runOnce(dfa *automaton.DFA, parser *parse.Parser, visitor *ast.Visitor, lexCfg lex.Config, discard func(symbol.Kind) bool, src string, out io.Writer, namer symbol.Namer) int {
	raw := lex.New(dfa, lexCfg, src)
	stream := lex.Filter(raw, discard)

	tokens := collectTokens(stream)
	fmt.Fprintln(out, "-- tokens --")
	for _, tok := range tokens {
		fmt.Fprintln(out, tok.StringWithNamer(namer))
	}

	tree, err := parser.Parse(lex.Filter(lex.New(dfa, lexCfg, src), discard))
	if err != nil {
		d := diag.New()
		d.Errorf("%s", err.Error())
		fmt.Fprintln(out, "-- parse tree (partial) --")
		fmt.Fprintln(out, tree.StringWithNamer(namer))
		fmt.Fprint(out, d.Report(80))
		fmt.Fprintln(out)
		return ExitSourceError
	}
	fmt.Fprintln(out, "-- parse tree --")
	fmt.Fprintln(out, tree.StringWithNamer(namer))

	astRoot := visitor.Convert(tree)
	fmt.Fprintln(out, "-- ast --")
	fmt.Fprintln(out, astRoot.StringWithNamer(namer))

	return ExitSuccess
}

func collectTokens(stream lex.TokenStream) []symbol.Token {
	var out []symbol.Token
	for stream.HasNext() {
		out = append(out, stream.Next())
	}
	out = append(out, stream.Next())
	return out
}

// runRepl drives one diag.Buffer-scoped pipeline pass per line read from
// stdin via GNU readline, grounded on
// dekarrin-tunaq/internal/input.InteractiveCommandReader's readline.NewEx
// / Readline() loop.
func runRepl(dfa *automaton.DFA, parser *parse.Parser, visitor *ast.Visitor, lexCfg lex.Config, discard func(symbol.Kind) bool, namer symbol.Namer) int {
	rl, err := readline.NewEx(&readline.Config{Prompt: "frontkit> "})
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: create readline: %s\n", err.Error())
		return ExitInitError
	}
	defer rl.Close()

	code := ExitSuccess
	for {
		line, err := rl.Readline()
		if err != nil {
			break
		}
		if line == "" {
			continue
		}
		if runOnce(dfa, parser, visitor, lexCfg, discard, line, os.Stdout, namer) != ExitSuccess {
			code = ExitSourceError
		}
	}
	return code
}
