package main

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/marcus/inkwell/internal/app"
	"github.com/marcus/inkwell/internal/config"
	"github.com/marcus/inkwell/internal/vault"
)

// Version is set at build time via ldflags
var Version = ""

var (
	vaultFlag    = flag.String("vault", "", "vault root directory (overrides config)")
	configPath   = flag.String("config", "", "path to config file")
	debugFlag    = flag.Bool("debug", false, "enable debug logging")
	versionFlag  = flag.Bool("version", false, "print version and exit")
	shortVersion = flag.Bool("v", false, "print version and exit (short)")
)

func main() {
	flag.Parse()

	if *versionFlag || *shortVersion {
		fmt.Printf("inkwell version %s\n", effectiveVersion(Version))
		os.Exit(0)
	}

	logLevel := slog.LevelInfo
	if *debugFlag {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	}))

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	root := cfg.Vault.Root
	if *vaultFlag != "" {
		root = *vaultFlag
	}
	index, err := vault.Open(config.ExpandPath(root))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open vault: %v\n", err)
		os.Exit(1)
	}

	watcher, err := vault.WatchVault(index.Root(), logger)
	if err != nil {
		logger.Warn("vault watching disabled", "err", err)
	} else {
		defer watcher.Close()
	}

	// Optional NOTE argument: open it, creating an empty buffer when the
	// file does not exist yet.
	var notePath, content string
	if arg := flag.Arg(0); arg != "" {
		notePath = vault.NormalizePath(arg)
		content, err = index.Read(notePath)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			fmt.Fprintf(os.Stderr, "Failed to read %s: %v\n", notePath, err)
			os.Exit(1)
		}
	}

	model := app.New(cfg, *configPath, index, watcher, logger, notePath, content)
	p := tea.NewProgram(model, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running application: %v\n", err)
		os.Exit(1)
	}
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFrom(path)
	}
	return config.Load()
}

// effectiveVersion returns the version string, with fallback to build info.
func effectiveVersion(v string) string {
	if v != "" {
		return v
	}

	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "unknown"
	}
	if info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}

	var revision string
	var dirty bool
	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			revision = setting.Value
		case "vcs.modified":
			dirty = setting.Value == "true"
		}
	}
	if revision != "" {
		ver := "devel+" + revision
		if len(ver) > 20 {
			ver = ver[:20]
		}
		if dirty {
			ver += "+dirty"
		}
		return ver
	}
	return "devel"
}

func init() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: inkwell [options] [NOTE]\n\n")
		fmt.Fprintf(os.Stderr, "A fiction writer's companion for markdown vaults.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}
}
