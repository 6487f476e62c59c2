package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"

	"braces.dev/errtrace"
	"github.com/mystic-pages/sitefix/internal/flagvalue"
	"github.com/mystic-pages/sitefix/internal/highlight"
	"github.com/mystic-pages/sitefix/internal/page"
	"github.com/mystic-pages/sitefix/internal/rules"
	"github.com/mystic-pages/sitefix/internal/site"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	cmd := mainCmd{
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
	os.Exit(cmd.Run(os.Args[1:]))
}

// mainCmd is the actual entry point to the program.
type mainCmd struct {
	Stdout io.Writer // == os.Stdout
	Stderr io.Writer // == os.Stderr
}

func (cmd *mainCmd) Run(args []string) (exitCode int) {
	opts, err := (&cliParser{
		Stdout: cmd.Stdout,
		Stderr: cmd.Stderr,
	}).Parse(args)
	if err != nil {
		// '$cmd -h' should exit with zero.
		if errors.Is(err, errHelp) {
			return 0
		}
		// No need to print anything.
		// Parse prints messages.
		return 1
	}

	if err := cmd.run(context.Background(), opts); err != nil {
		// The report already describes what was found.
		if !errors.Is(err, errFindings) {
			fmt.Fprintf(cmd.Stderr, "sitefix: %v\n", err)
		}
		return 1
	}
	return 0
}

func (cmd *mainCmd) run(ctx context.Context, opts *params) (err error) {
	debugw, closeDebug, err := opts.Debug.Create(cmd.Stderr)
	if err != nil {
		return fmt.Errorf("open debug log: %w", err)
	}
	defer func() {
		err = errors.Join(err, closeDebug())
	}()

	log := newLogger(debugw)
	defer func() { _ = log.Sync() }()

	rs := rules.Default()
	if opts.Rules != "" {
		rs, err = rules.Load(opts.Rules)
		if err != nil {
			return fmt.Errorf("load rules: %w", err)
		}
		log.Debug("loaded rules", zap.String("path", opts.Rules))
	}
	rs.AddSkipFiles(flagvalue.Strings(opts.Skip)...)
	rs.AddReadingKeywords(flagvalue.Strings(opts.Keywords)...)

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	pool := pagePool{Jobs: jobs, Log: log}
	finder := site.Finder{Recursive: opts.Recursive, Log: log}

	switch opts.Command {
	case "format":
		f := Formatter{
			Stdout: cmd.Stdout,
			Log:    log,
			Pool:   &pool,
			Filter: &site.Filter{Keywords: rs.ReadingKeywords, Skip: rs.SkipFiles},
			Labels: rs.FormatLabels,
			CSS:    rs.HighlightCSS,
			DryRun: opts.DryRun,
		}
		if opts.Reflow {
			f.Reflow, err = page.Compile(opts.Select)
			if err != nil {
				return fmt.Errorf("bad -select %q: %w", opts.Select, err)
			}
		}
		pages, err := finder.Find(opts.Paths...)
		if err != nil {
			return errtrace.Wrap(err)
		}
		return errtrace.Wrap(f.Format(ctx, pages))

	case "highlight":
		h := LabelHighlighter{
			Stdout:     cmd.Stdout,
			Log:        log,
			Pool:       &pool,
			Filter:     &site.Filter{Keywords: rs.ReadingKeywords, Skip: rs.SkipFiles},
			Labels:     rs.HighlightLabels,
			PowerWords: rs.PowerWords,
			DryRun:     opts.DryRun,
		}
		pages, err := finder.Find(opts.Paths...)
		if err != nil {
			return errtrace.Wrap(err)
		}
		return errtrace.Wrap(h.Highlight(ctx, pages))

	case "audit":
		a := Auditor{
			Stdout: cmd.Stdout,
			Log:    log,
			Pool:   &pool,
			Files:  rs.AuditFiles,
		}
		pages, err := a.Targets(opts.Paths...)
		if err != nil {
			return errtrace.Wrap(err)
		}
		return errtrace.Wrap(a.Audit(ctx, pages))

	case "validate":
		v := Validator{
			Stdout: cmd.Stdout,
			Log:    log,
			Pool:   &pool,
		}
		if opts.Show {
			v.Excerpts = &highlight.Highlighter{
				Style:   highlight.Style(opts.Style),
				Color:   opts.Color,
				Context: 1,
			}
		}
		pages, err := finder.Find(opts.Paths...)
		if err != nil {
			return errtrace.Wrap(err)
		}
		return errtrace.Wrap(v.Validate(ctx, pages))

	default:
		// Parse rejects unknown commands.
		return fmt.Errorf("unknown command %q", opts.Command)
	}
}

// newLogger builds a logger for debug output.
// Output to io.Discard disables logging entirely.
func newLogger(w io.Writer) *zap.Logger {
	if w == io.Discard {
		return zap.NewNop()
	}

	cfg := zap.NewDevelopmentEncoderConfig()
	cfg.TimeKey = ""
	return zap.New(zapcore.NewCore(
		zapcore.NewConsoleEncoder(cfg),
		zapcore.AddSync(w),
		zapcore.DebugLevel,
	))
}
