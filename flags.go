package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"slices"

	"github.com/mystic-pages/sitefix/internal/flagvalue"
	"github.com/peterbourgon/ff/v3"
)

var (
	errHelp             = flag.ErrHelp
	errInvalidArguments = errors.New("invalid arguments")
)

// _commands lists the commands sitefix knows, in help order.
var _commands = []string{"format", "highlight", "audit", "validate"}

// _envPrefix prefixes the environment variables
// that may stand in for flags.
const _envPrefix = "SITEFIX"

// params holds all arguments for sitefix.
type params struct {
	version bool
	help    Help
	config  string

	Rules     string
	Skip      []flagvalue.String
	Keywords  []flagvalue.String
	Recursive bool
	DryRun    bool
	Jobs      int
	Debug     flagvalue.FileSwitch

	// format
	Reflow bool
	Select string

	// validate
	Show  bool
	Color bool
	Style string

	Command string
	Paths   []string
}

// cliParser parses the command line arguments for sitefix.
type cliParser struct {
	Stdout io.Writer
	Stderr io.Writer
}

func (cmd *cliParser) newFlagSet() (*params, *flag.FlagSet) {
	flag := flag.NewFlagSet("sitefix", flag.ContinueOnError)
	flag.SetOutput(cmd.Stderr)
	flag.Usage = func() {
		DefaultHelp.Write(cmd.Stderr)
	}

	var p params

	// Page selection:
	flag.BoolVar(&p.Recursive, "recursive", false, "")
	flag.BoolVar(&p.Recursive, "r", false, "")
	flag.StringVar(&p.Rules, "rules", "", "")
	flag.Var(flagvalue.ListOf(&p.Skip), "skip", "")
	flag.Var(flagvalue.ListOf(&p.Keywords), "keyword", "")

	// Writing:
	flag.BoolVar(&p.DryRun, "dry-run", false, "")
	flag.BoolVar(&p.DryRun, "n", false, "")
	flag.BoolVar(&p.Reflow, "reflow", false, "")
	flag.StringVar(&p.Select, "select", ".result-content", "")

	// Reporting:
	flag.BoolVar(&p.Show, "show", false, "")
	flag.BoolVar(&p.Color, "color", false, "")
	flag.StringVar(&p.Style, "style", "monokai", "")

	// Program-level:
	flag.IntVar(&p.Jobs, "jobs", 0, "")
	flag.StringVar(&p.config, "config", "", "")
	flag.Var(&p.Debug, "debug", "")
	flag.BoolVar(&p.version, "version", false, "")
	flag.Var(&p.help, "help", "")
	flag.Var(&p.help, "h", "")

	return &p, flag
}

func (cmd *cliParser) Parse(args []string) (*params, error) {
	p, fset := cmd.newFlagSet()
	err := ff.Parse(fset, args,
		ff.WithEnvVarPrefix(_envPrefix),
		ff.WithEnvVarSplit(","),
		ff.WithConfigFileFlag("config"),
		ff.WithConfigFileParser(ff.PlainParser),
	)
	if err != nil {
		// ff's errors say where the bad value came from:
		// the command line, the environment, or a config file.
		if !errors.Is(err, errHelp) {
			fmt.Fprintln(cmd.Stderr, err)
		}
		return nil, err
	}
	args = fset.Args()

	if p.version {
		fmt.Fprintln(cmd.Stdout, "sitefix", _version)
		return nil, errHelp
	}

	if p.help == DefaultHelp && len(args) > 0 {
		// The user might have done "-h rules"
		// instead of "-h=rules".
		// If the argument is a known help topic,
		// take it.
		if _, ok := _helpTopics[Help(args[0])]; ok {
			p.help = Help(args[0])
		}
	}

	switch p.help {
	case NoHelp:
		// proceed as usual
	default:
		if err := p.help.Write(cmd.Stderr); err != nil {
			fmt.Fprintln(cmd.Stderr, err)
		}
		return nil, errHelp
	}

	if len(args) == 0 {
		fmt.Fprintln(cmd.Stderr, "Please provide a command.")
		UsageHelp.Write(cmd.Stderr)
		return nil, errInvalidArguments
	}

	p.Command, p.Paths = args[0], args[1:]
	if !slices.Contains(_commands, p.Command) {
		fmt.Fprintf(cmd.Stderr, "Unknown command %q: valid commands are %q\n", p.Command, _commands)
		UsageHelp.Write(cmd.Stderr)
		return nil, errInvalidArguments
	}
	if len(p.Paths) == 0 {
		p.Paths = []string{"."}
	}

	if p.Jobs < 0 {
		fmt.Fprintln(cmd.Stderr, "-jobs must not be negative.")
		return nil, errInvalidArguments
	}

	return p, nil
}
