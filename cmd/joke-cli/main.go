package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/triplewood/joke-cli/exchange"
	"github.com/triplewood/joke-cli/joke"
	"github.com/triplewood/joke-cli/model"
	"github.com/triplewood/joke-cli/store"
	"github.com/triplewood/joke-cli/ui"
)

const (
	ExitSuccess      = 0
	ExitGeneralError = 1
	ExitUsageError   = 2
	ExitDataError    = 3
)

func main() {
	app := &cli.App{
		Name:    "joke-cli",
		Usage:   "Fetch, copy, share and keep random jokes",
		Version: "0.1.0",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "endpoint",
				Aliases: []string{"e"},
				Value:   joke.DefaultEndpoint,
				Usage:   "Joke service endpoint",
				EnvVars: []string{"JOKE_CLI_ENDPOINT"},
			},
			&cli.DurationFlag{
				Name:  "timeout",
				Value: joke.DefaultTimeout,
				Usage: "HTTP timeout for a single fetch",
			},
			&cli.StringFlag{
				Name:    "db",
				Aliases: []string{"d"},
				Value:   getDefaultDBPath(),
				Usage:   "Database file path for saved jokes",
				EnvVars: []string{"JOKE_CLI_DB"},
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "Enable debug logging (non-interactive commands only)",
			},
		},
		// No subcommand: open the interactive screen.
		Action: runInteractive,
		Commands: []*cli.Command{
			{
				Name:  "fetch",
				Usage: "Fetch one joke and print it",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Print the full record as JSON",
					},
				},
				Action: fetchJoke,
			},
			{
				Name:  "share",
				Usage: "Fetch one joke and put the share text on the clipboard",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:    "print",
						Aliases: []string{"p"},
						Usage:   "Print the share text instead of using the clipboard",
					},
				},
				Action: shareJoke,
			},
			{
				Name:   "save",
				Usage:  "Fetch one joke and keep it",
				Action: saveJoke,
			},
			{
				Name:  "saved",
				Usage: "List saved jokes",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:    "limit",
						Aliases: []string{"l"},
						Value:   50,
						Usage:   "Maximum number of jokes to return",
					},
					&cli.IntFlag{
						Name:    "offset",
						Aliases: []string{"o"},
						Value:   0,
						Usage:   "Offset for pagination",
					},
					&cli.StringFlag{
						Name:    "since",
						Aliases: []string{"s"},
						Usage:   "Show jokes saved since duration (e.g., 7d, 2w, 3m, 1y)",
					},
				},
				Action: listSaved,
			},
			{
				Name:      "remove",
				Usage:     "Remove a saved joke",
				ArgsUsage: "<rowid>",
				Action:    removeSaved,
			},
			{
				Name:  "export",
				Usage: "Export saved jokes to a JSON file",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Output file (default: stdout)",
					},
				},
				Action: exportSaved,
			},
			{
				Name:      "import",
				Usage:     "Import saved jokes from a JSON file",
				ArgsUsage: "<file>",
				Action:    importSaved,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitGeneralError)
	}
}

func getDefaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "joke-cli.db"
	}
	return filepath.Join(home, ".config", "joke-cli", "joke-cli.db")
}

// getLogger builds the logger for non-interactive commands. Callers must
// invoke the returned sync func on exit.
func getLogger(c *cli.Context) (*zap.Logger, func()) {
	if !c.Bool("verbose") {
		return zap.NewNop(), func() {}
	}
	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	logger, err := config.Build()
	if err != nil {
		return zap.NewNop(), func() {}
	}
	return logger, func() { _ = logger.Sync() }
}

func getFetcher(c *cli.Context, logger *zap.Logger) *joke.Fetcher {
	return joke.NewFetcher(
		c.String("endpoint"),
		joke.WithTimeout(c.Duration("timeout")),
		joke.WithLogger(logger),
	)
}

func getStore(c *cli.Context) (*store.Store, error) {
	dbPath := c.String("db")

	if dbPath != ":memory:" {
		dir := filepath.Dir(dbPath)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	s, err := store.New(dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	return s, nil
}

func outputJSON(v interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

// runInteractive starts the single-screen UI. The logger stays nop here:
// interactive mode owns the terminal.
func runInteractive(c *cli.Context) error {
	if c.NArg() > 0 {
		return cli.Exit(fmt.Sprintf("unknown command %q", c.Args().Get(0)), ExitUsageError)
	}

	fetcher := getFetcher(c, zap.NewNop())

	// A broken database disables saving but never blocks the screen.
	var saver ui.Saver
	if s, err := getStore(c); err == nil {
		defer s.Close()
		saver = s
	}

	p := tea.NewProgram(ui.New(fetcher, saver), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return cli.Exit(fmt.Sprintf("UI error: %v", err), ExitGeneralError)
	}
	return nil
}

func fetchJoke(c *cli.Context) error {
	logger, sync := getLogger(c)
	defer sync()

	fetcher := getFetcher(c, logger)
	j, err := fetcher.Fetch(c.Context)
	if err != nil {
		return cli.Exit(err.Error(), ExitDataError)
	}

	if c.Bool("json") {
		return outputJSON(j)
	}
	fmt.Println(j.Text)
	return nil
}

func shareJoke(c *cli.Context) error {
	logger, sync := getLogger(c)
	defer sync()

	fetcher := getFetcher(c, logger)
	j, err := fetcher.Fetch(c.Context)
	if err != nil {
		return cli.Exit(err.Error(), ExitDataError)
	}

	text := j.ShareText(fetcher.Endpoint())

	if c.Bool("print") {
		fmt.Println(text)
		return nil
	}

	if err := clipboard.WriteAll(text); err != nil {
		// No clipboard available (e.g. headless session): print instead.
		fmt.Fprintf(os.Stderr, "clipboard unavailable (%v), printing instead\n", err)
		fmt.Println(text)
		return nil
	}

	fmt.Println("Share text copied to clipboard.")
	return nil
}

func saveJoke(c *cli.Context) error {
	logger, sync := getLogger(c)
	defer sync()

	fetcher := getFetcher(c, logger)
	j, err := fetcher.Fetch(c.Context)
	if err != nil {
		return cli.Exit(err.Error(), ExitDataError)
	}

	s, err := getStore(c)
	if err != nil {
		return cli.Exit(err.Error(), ExitDataError)
	}
	defer s.Close()

	saved := model.NewSavedJoke(j, time.Now())
	if err := s.Save(saved); err != nil {
		return cli.Exit(fmt.Sprintf("Failed to save joke: %v", err), ExitDataError)
	}

	return outputJSON(map[string]interface{}{
		"success": true,
		"joke":    saved,
	})
}

func listSaved(c *cli.Context) error {
	s, err := getStore(c)
	if err != nil {
		return cli.Exit(err.Error(), ExitDataError)
	}
	defer s.Close()

	opts, err := store.BuildQueryOptions(
		c.Int("limit"),
		c.Int("offset"),
		c.String("since"),
	)
	if err != nil {
		return cli.Exit(fmt.Sprintf("Invalid query options: %v", err), ExitUsageError)
	}

	jokes, err := s.All(opts)
	if err != nil {
		return cli.Exit(fmt.Sprintf("Failed to get saved jokes: %v", err), ExitDataError)
	}

	return outputJSON(map[string]interface{}{
		"count":  len(jokes),
		"limit":  opts.Limit,
		"offset": opts.Offset,
		"jokes":  jokes,
	})
}

func removeSaved(c *cli.Context) error {
	if c.NArg() < 1 {
		return cli.Exit("Usage: joke-cli remove <rowid>", ExitUsageError)
	}

	var rowID int64
	if _, err := fmt.Sscanf(c.Args().Get(0), "%d", &rowID); err != nil {
		return cli.Exit("Invalid rowid", ExitUsageError)
	}

	s, err := getStore(c)
	if err != nil {
		return cli.Exit(err.Error(), ExitDataError)
	}
	defer s.Close()

	if err := s.Delete(rowID); err != nil {
		return cli.Exit(fmt.Sprintf("Failed to remove saved joke: %v", err), ExitDataError)
	}

	return outputJSON(map[string]interface{}{
		"success": true,
		"rowid":   rowID,
	})
}

func exportSaved(c *cli.Context) error {
	s, err := getStore(c)
	if err != nil {
		return cli.Exit(err.Error(), ExitDataError)
	}
	defer s.Close()

	jokes, err := s.All(store.QueryOptions{})
	if err != nil {
		return cli.Exit(fmt.Sprintf("Failed to get saved jokes: %v", err), ExitDataError)
	}

	outputPath := c.String("output")
	if outputPath == "" {
		return exchange.Generate(os.Stdout, jokes)
	}

	file, err := os.Create(outputPath)
	if err != nil {
		return cli.Exit(fmt.Sprintf("Failed to create output file: %v", err), ExitDataError)
	}
	defer file.Close()

	if err := exchange.Generate(file, jokes); err != nil {
		return cli.Exit(fmt.Sprintf("Failed to export: %v", err), ExitDataError)
	}

	return outputJSON(map[string]interface{}{
		"success": true,
		"file":    outputPath,
		"count":   len(jokes),
	})
}

func importSaved(c *cli.Context) error {
	if c.NArg() < 1 {
		return cli.Exit("Usage: joke-cli import <file>", ExitUsageError)
	}

	file, err := os.Open(c.Args().Get(0))
	if err != nil {
		return cli.Exit(fmt.Sprintf("Failed to open file: %v", err), ExitDataError)
	}
	defer file.Close()

	jokes, err := exchange.Parse(file)
	if err != nil {
		return cli.Exit(fmt.Sprintf("Failed to parse file: %v", err), ExitDataError)
	}

	s, err := getStore(c)
	if err != nil {
		return cli.Exit(err.Error(), ExitDataError)
	}
	defer s.Close()

	imported := 0
	skipped := 0
	var errors []string

	for _, j := range jokes {
		if err := s.Save(j); err != nil {
			// Duplicates are expected when merging collections.
			skipped++
			if err != store.ErrDuplicate {
				errors = append(errors, fmt.Sprintf("%s: %v", j.JokeID, err))
			}
			continue
		}
		imported++
	}

	return outputJSON(map[string]interface{}{
		"success":  true,
		"imported": imported,
		"skipped":  skipped,
		"total":    len(jokes),
		"errors":   errors,
	})
}
