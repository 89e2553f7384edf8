package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	themesync "github.com/hellenic-development/figma-theme-sync"
	"github.com/hellenic-development/figma-theme-sync/pkg/config"
	"github.com/hellenic-development/figma-theme-sync/pkg/cssvar"
	"github.com/hellenic-development/figma-theme-sync/pkg/figma"
	"github.com/hellenic-development/figma-theme-sync/pkg/watch"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

const version = figma.Version

var (
	figmaURL     string
	accessToken  string
	snapshotPath string
	outputFile   string
	configFile   string
	contentGroup string
	paletteGroup string
	emitHex      bool
	dryRun       bool
	saveSnapshot string
)

func main() {
	// Load .env so FIGMA_TOKEN need not be exported; missing file is fine.
	godotenv.Load()

	rootCmd := &cobra.Command{
		Use:   "figma-theme-sync",
		Short: "Sync Figma palette colors into CSS custom properties",
		Long:  "A tool that reads color swatches from a Figma file's Content/Palette frames and writes them as CSS custom properties for use with rgb(var(--token))",
		Run:   runSync,
	}

	addSyncFlags := func(cmd *cobra.Command) {
		cmd.Flags().StringVarP(&figmaURL, "url", "u", "", "Figma file URL")
		cmd.Flags().StringVarP(&accessToken, "token", "t", "", "Figma Personal Access Token (default $FIGMA_TOKEN)")
		cmd.Flags().StringVarP(&snapshotPath, "snapshot", "s", "", "Local snapshot of a Figma file API response (overrides --url)")
		cmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output stylesheet (default theme.css)")
		cmd.Flags().StringVarP(&configFile, "config", "c", "", "YAML config file (themesync.yaml)")
		cmd.Flags().StringVar(&contentGroup, "content", "", "Name of the content container frame (default Content)")
		cmd.Flags().StringVar(&paletteGroup, "palette", "", "Name of the per-group palette frame (default Palette)")
		cmd.Flags().BoolVar(&emitHex, "hex", false, "Also emit --<token>-hex companion variables")
	}

	addSyncFlags(rootCmd)
	rootCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Print the rendered :root block instead of writing the stylesheet")
	rootCmd.Flags().StringVar(&saveSnapshot, "save-snapshot", "", "Also save the fetched file response to this path")

	watchCmd := &cobra.Command{
		Use:   "watch",
		Short: "Re-sync whenever the snapshot file changes",
		Run:   runWatch,
	}
	addSyncFlags(watchCmd)

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("figma-theme-sync version %s\n", version)
		},
	}

	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(versionCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// loadSettings merges the optional config file with CLI flags; flags win.
func loadSettings() (*config.Config, error) {
	cfg := config.Default()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if figmaURL != "" {
		cfg.FileURL = figmaURL
	}
	if snapshotPath != "" {
		cfg.Snapshot = snapshotPath
	}
	if outputFile != "" {
		cfg.Output = outputFile
	}
	if contentGroup != "" {
		cfg.ContentGroup = contentGroup
	}
	if paletteGroup != "" {
		cfg.PaletteGroup = paletteGroup
	}
	if emitHex {
		cfg.Hex = true
	}
	return cfg, nil
}

func optionsFrom(cfg *config.Config) themesync.Options {
	token := accessToken
	if token == "" {
		token = cfg.Token()
	}
	return themesync.Options{
		AccessToken:  token,
		FileURL:      cfg.FileURL,
		SnapshotPath: cfg.Snapshot,
		ContentGroup: cfg.ContentGroup,
		PaletteGroup: cfg.PaletteGroup,
		Overrides:    cfg.Overrides,
		Hex:          cfg.Hex,
		Logger:       &cliLogger{},
	}
}

func runSync(cmd *cobra.Command, args []string) {
	green := color.New(color.FgGreen)
	red := color.New(color.FgRed)
	cyan := color.New(color.FgCyan)

	cyan.Println("\n🎨 Figma Theme Sync")
	cyan.Println("===================")
	cyan.Println()

	cfg, err := loadSettings()
	if err != nil {
		red.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	opts := optionsFrom(cfg)

	if !dryRun {
		sink, err := cssvar.OpenStylesheet(cfg.Output)
		if err != nil {
			red.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		opts.Sink = sink
	}

	result, err := themesync.Run(opts)
	if err != nil {
		red.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	if saveSnapshot != "" && opts.SnapshotPath == "" {
		fileResp, err := themesync.Fetch(opts.AccessToken, opts.FileURL)
		if err != nil {
			red.Printf("Error saving snapshot: %v\n", err)
			os.Exit(1)
		}
		if err := figma.SaveSnapshot(saveSnapshot, fileResp); err != nil {
			red.Printf("Error saving snapshot: %v\n", err)
			os.Exit(1)
		}
		green.Printf("💾 Snapshot saved to %s\n", saveSnapshot)
	}

	printSummary(result)

	if dryRun {
		fmt.Println(result.CSS)
		return
	}
	green.Printf("\n✨ Successfully synced %d token(s) to %s\n\n", len(result.Tokens), cfg.Output)
}

func runWatch(cmd *cobra.Command, args []string) {
	red := color.New(color.FgRed)
	cyan := color.New(color.FgCyan)

	cfg, err := loadSettings()
	if err != nil {
		red.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	if cfg.Snapshot == "" {
		red.Println("Error: watch mode requires a snapshot file (--snapshot or config)")
		os.Exit(1)
	}

	logger := &cliLogger{}
	sync := func(path string) {
		opts := optionsFrom(cfg)
		opts.SnapshotPath = path

		sink, err := cssvar.OpenStylesheet(cfg.Output)
		if err != nil {
			logger.Errorf("%v", err)
			return
		}
		opts.Sink = sink

		result, err := themesync.Run(opts)
		if err != nil {
			logger.Errorf("Sync failed: %v", err)
			return
		}
		logger.Infof("Synced %d token(s) to %s", len(result.Tokens), cfg.Output)
	}

	// Initial sync before watching.
	sync(cfg.Snapshot)

	debounce := time.Duration(cfg.Watch.DebounceMs) * time.Millisecond
	watcher, err := watch.New(cfg.Snapshot, debounce, sync, logger)
	if err != nil {
		red.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	if err := watcher.Start(); err != nil {
		red.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	defer watcher.Stop()

	cyan.Println("Press Ctrl+C to stop.")
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	<-sig
}

func printSummary(result *themesync.Result) {
	cyan := color.New(color.FgCyan)

	cyan.Println("\n📊 Sync Summary:")
	if result.FileName != "" {
		fmt.Printf("  • File: %s\n", result.FileName)
	}
	fmt.Printf("  • Tokens: %d\n", len(result.Tokens))
	for group, count := range result.GroupCounts {
		fmt.Printf("  • %s: %d swatch(es)\n", group, count)
	}
}

// cliLogger implements themesync.Logger with colored terminal output.
type cliLogger struct{}

func (l *cliLogger) Infof(format string, args ...any) {
	color.New(color.FgYellow).Printf(format+"\n", args...)
}

func (l *cliLogger) Warnf(format string, args ...any) {
	color.New(color.FgYellow).Printf("⚠ "+format+"\n", args...)
}

func (l *cliLogger) Errorf(format string, args ...any) {
	color.New(color.FgRed).Printf("✗ "+format+"\n", args...)
}
