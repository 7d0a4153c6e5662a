package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	travel "github.com/Vnwedo/Travel-Recommendation"
	"github.com/Vnwedo/Travel-Recommendation/engine"
	travelfs "github.com/Vnwedo/Travel-Recommendation/fs"
	travelhtml "github.com/Vnwedo/Travel-Recommendation/html"
	travelhttp "github.com/Vnwedo/Travel-Recommendation/http"
	travellipgloss "github.com/Vnwedo/Travel-Recommendation/lipgloss"
	travelslog "github.com/Vnwedo/Travel-Recommendation/slog"
	"github.com/Vnwedo/Travel-Recommendation/timezone"
	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct{}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	DataURL  string        `env:"DATA_URL" help:"URL of the dataset document"`
	DataFile string        `env:"DATA_FILE" help:"Load the dataset from a local file instead of over HTTP"`
	Timeout  time.Duration `short:"t" default:"10s" help:"Dataset fetch timeout"`
	Format   string        `enum:"text,html" default:"text" help:"Output format (text or html)"`
	Query    string        `arg:"" optional:"" help:"Search term; omit for interactive mode"`
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("travelsearch"),
		kong.Description("Search travel recommendations: countries and cities, beaches, temples"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags
	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	_, err = parser.Parse(args)
	if err != nil {
		return err
	}

	if cli.DataURL == "" && cli.DataFile == "" {
		return fmt.Errorf("either --data-url or --data-file is required")
	}

	logger := newLogger(stderr)

	// Wire dependencies
	var loader travel.DatasetLoader
	if cli.DataFile != "" {
		loader = travelfs.NewLoader(cli.DataFile)
	} else {
		loader = travelhttp.NewLoader(cli.DataURL, travelhttp.WithTimeout(cli.Timeout))
	}
	loader = travelslog.NewLoggingLoader(loader, logger)

	eng := engine.New(loader, engine.WithAnnotator(timezone.NewAnnotator()))
	search := travelslog.NewLoggingSearchService(eng, logger.With("session", eng.ID()))

	var renderer travel.Renderer
	switch cli.Format {
	case "html":
		renderer = travelhtml.NewRenderer(stdout)
	default:
		renderer = travellipgloss.NewRenderer(stdout)
	}

	if cli.Query != "" {
		return runSearch(ctx, search, renderer, cli.Query)
	}
	return runInteractive(ctx, search, renderer, stdin, stdout)
}

// runSearch executes a single search action and renders the outcome.
func runSearch(ctx context.Context, search travel.SearchService, renderer travel.Renderer, query string) error {
	view, err := search.Search(ctx, query)
	if err != nil {
		return fmt.Errorf("recommendations are unavailable: %s", travel.ErrorMessage(err))
	}
	return renderer.Render(view)
}

// runInteractive reads search terms from stdin until EOF or "quit".
// "reset" clears the results surface without touching the dataset.
func runInteractive(ctx context.Context, search travel.SearchService, renderer travel.Renderer, stdin io.Reader, stdout io.Writer) error {
	fmt.Fprintln(stdout, `Type a destination (e.g. "japan"), or "beaches", "temples", "countries".`)
	fmt.Fprintln(stdout, `Commands: "reset" clears results, "quit" exits.`)

	scanner := bufio.NewScanner(stdin)
	for {
		fmt.Fprint(stdout, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(stdout)
			return scanner.Err()
		}

		line := strings.TrimSpace(scanner.Text())
		switch strings.ToLower(line) {
		case "quit", "exit":
			return nil
		case "reset":
			if err := renderer.Reset(); err != nil {
				return err
			}
			continue
		}

		if err := runSearch(ctx, search, renderer, line); err != nil {
			// A failed load is terminal for this search; the prompt
			// stays open so the user can trigger another attempt.
			fmt.Fprintln(stdout, err)
		}
	}
}

// newLogger builds the process logger from LOG_LEVEL and LOG_FORMAT.
func newLogger(w io.Writer) *slog.Logger {
	lvl := slog.LevelInfo
	switch strings.ToLower(os.Getenv("LOG_LEVEL")) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	}

	if strings.ToLower(os.Getenv("LOG_FORMAT")) == "json" {
		return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: lvl}))
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}))
}
