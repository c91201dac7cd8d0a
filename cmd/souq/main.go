package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/lmittmann/tint"

	"github.com/souqlabs/souq/internal/config"
	"github.com/souqlabs/souq/internal/i18n"
	"github.com/souqlabs/souq/internal/session"
	"github.com/souqlabs/souq/internal/tui"
	"github.com/souqlabs/souq/pkg/client"
)

// version is set at build time via -ldflags "-X main.version=..."
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "version", "-v":
			fmt.Println("souq " + version)
			return nil
		case "help", "--help", "-h":
			printHelp()
			return nil
		case "logout":
			return runLogout()
		}
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger, closeLog, err := openLogger(cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	loc, err := i18n.New(cfg.Lang)
	if err != nil {
		return err
	}

	sessionPath, err := session.DefaultPath()
	if err != nil {
		return err
	}
	store := session.NewStore(sessionPath)

	c := client.New(cfg.APIURL, cfg.HTTPTimeout, logger)
	app := tui.NewApp(c, loc, store, version)

	logger.Info("starting", "version", version, "api_url", cfg.APIURL, "lang", loc.Lang(), "dir", loc.Dir().String())

	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui error: %w", err)
	}
	return nil
}

// openLogger writes diagnostics to a file; the terminal belongs to the TUI.
func openLogger(cfg *config.Config) (*slog.Logger, func(), error) {
	path := cfg.LogFile
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, nil, fmt.Errorf("get home dir: %w", err)
		}
		path = filepath.Join(home, ".souq", "souq.log")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	logger := slog.New(tint.NewHandler(f, &tint.Options{NoColor: true}))
	return logger, func() { f.Close() }, nil //nolint:errcheck // best-effort close
}

// runLogout clears the persisted session record.
func runLogout() error {
	path, err := session.DefaultPath()
	if err != nil {
		return err
	}
	store := session.NewStore(path)
	if _, ok := store.Load(); !ok {
		fmt.Println("no active session")
		return nil
	}
	if err := store.Clear(); err != nil {
		return err
	}
	fmt.Println("logged out")
	return nil
}

func printHelp() {
	fmt.Print(`souq - terminal storefront

usage:
  souq            launch the storefront
  souq logout     clear the saved session
  souq version    print the version

environment:
  SOUQ_API_URL       backend base URL (default http://localhost:5000)
  SOUQ_LANG          ui language: ar, en or fr (default ar)
  SOUQ_HTTP_TIMEOUT  request timeout (default 30s)
  SOUQ_LOG_FILE      diagnostic log path (default ~/.souq/souq.log)
`)
}
