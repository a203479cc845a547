package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/cobra"

	internalLoader "github.com/goliatone/go-deckgen/internal/presets/loader"
	"github.com/goliatone/go-deckgen/pkg/presets"
)

// embeddedConfig selects the catalog compiled into the binary.
const embeddedConfig = "embedded"

// errAlerted marks a failure already reported to the user as an alert.
var errAlerted = errors.New("deckgen: alert shown")

type app struct {
	in     io.Reader
	out    io.Writer
	errOut io.Writer

	configPath string
	verbose    bool
	logger     *slog.Logger
}

func newRootCommand(in io.Reader, out, errOut io.Writer) *cobra.Command {
	a := &app{in: in, out: out, errOut: errOut}

	root := &cobra.Command{
		Use:   "deckgen",
		Short: "Pick a presentation template and render slide decks",
		Long: `deckgen matches presentation templates from a YAML presets catalog and
renders JSON deck content into .pptx files.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			a.logger = newLogger(a.errOut, a.verbose)
		},
	}
	root.SetIn(in)
	root.SetOut(out)
	root.SetErr(errOut)

	root.PersistentFlags().StringVar(&a.configPath, "config", presets.DefaultLocation,
		`presets catalog: file path, http(s) URL or "embedded"`)
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "debug logging on stderr")

	root.AddCommand(
		newMatchCommand(a),
		newStylesCommand(a),
		newGenerateCommand(a),
		newPreviewCommand(a),
		newInteractiveCommand(a),
		newServeCommand(a),
	)
	return root
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	if !verbose {
		return slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

// loadConfig resolves --config into a source and parses it.
func (a *app) loadConfig(ctx context.Context) (*presets.Config, error) {
	src, loader, err := a.source()
	if err != nil {
		return nil, err
	}
	cfg, err := presets.Load(ctx, loader, src, a.logger)
	if err != nil {
		return nil, fmt.Errorf("load presets %q: %w", a.configPath, err)
	}
	return cfg, nil
}

func (a *app) source() (presets.Source, presets.Loader, error) {
	location := strings.TrimSpace(a.configPath)
	switch {
	case location == "" || location == embeddedConfig:
		loader := internalLoader.New(presets.NewLoaderOptions(presets.WithFileSystem(presets.EmbeddedFS())))
		return presets.SourceFromFS(presets.EmbeddedName), loader, nil
	case strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://"):
		src, err := presets.ParseSourceURL(location)
		if err != nil {
			return nil, nil, fmt.Errorf("--config: %w", err)
		}
		loader := internalLoader.New(presets.NewLoaderOptions(presets.WithHTTPFallback(15 * time.Second)))
		return src, loader, nil
	default:
		return presets.SourceFromFile(location), internalLoader.New(presets.NewLoaderOptions()), nil
	}
}
