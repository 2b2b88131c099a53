package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/lixenwraith/gridview/colour"
	"github.com/lixenwraith/gridview/config"
)

var (
	// Version is set at build time
	Version = "dev"
	// Commit is set at build time
	Commit = "none"
)

// App holds the CLI application state
type App struct {
	root *cobra.Command

	configPath string
	colourMode string
	logPath    string

	config  *config.Config
	logFile *os.File
}

// NewApp creates the CLI with all subcommands registered
func NewApp() *App {
	a := &App{}

	a.root = &cobra.Command{
		Use:   "gridview",
		Short: "Render text through a compositional character-grid renderer",
		Long: `gridview lays out text with borders, padding, wrapping and scrolling,
adapting colours to what the terminal supports.

Configuration is read from the user config directory (gridview/config.toml)
unless --config is given.`,
		SilenceUsage: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return a.setup()
		},
	}

	a.root.PersistentFlags().StringVar(&a.configPath, "config", "", "Config file (default: user config dir)")
	a.root.PersistentFlags().StringVar(&a.colourMode, "colour", "", "Colour mode: auto, truecolour, ansi256, ansi16, greyscale, identity")
	a.root.PersistentFlags().StringVar(&a.logPath, "log", "", "Write diagnostic log to file")

	a.root.AddCommand(a.versionCmd())
	a.root.AddCommand(a.catCmd())
	a.root.AddCommand(a.viewCmd())
	a.root.AddCommand(a.paletteCmd())
	a.root.AddCommand(a.configCmd())

	return a
}

// Execute runs the CLI application
func (a *App) Execute() error {
	return a.root.Execute()
}

// Close releases the log file
func (a *App) Close() error {
	if a.logFile != nil {
		return a.logFile.Close()
	}
	return nil
}

// setup opens the log and loads configuration before any subcommand runs
func (a *App) setup() error {
	if a.logPath == "" {
		log.SetOutput(io.Discard)
	} else {
		f, err := os.OpenFile(a.logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("opening log: %w", err)
		}
		a.logFile = f
		log.SetOutput(f)
		log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	}

	path := a.resolvedConfigPath()
	cfg, err := config.LoadFrom(path)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if a.colourMode != "" {
		cfg.Colour.Mode = a.colourMode
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("--colour: %w", err)
		}
	}
	a.config = cfg
	log.Printf("config %s: colour=%s border=%s wrap=%s", path, cfg.Colour.Mode, cfg.Border.Line, cfg.Text.Wrap)
	return nil
}

// transform returns the colour transform for the selected mode
func (a *App) transform() colour.Transform {
	return a.config.Transform()
}

// outputProfile picks the escape sequence profile for one-shot output
// Explicit modes already quantize colours, so the profile only has to carry them
func (a *App) outputProfile() termenv.Profile {
	mode, _ := colour.ParseMode(a.config.Colour.Mode)
	switch mode {
	case colour.ModeTrueColour, colour.ModeIdentity:
		return termenv.TrueColor
	case colour.ModeAnsi256, colour.ModeAnsi16, colour.ModeGreyscale:
		return termenv.ANSI256
	}
	return colour.DetectProfile()
}

func (a *App) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "gridview %s (commit: %s)\n", Version, Commit)
		},
	}
}
