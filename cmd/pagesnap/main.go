package main

import (
	"context"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/pders01/pagesnap/internal/config"
	"github.com/pders01/pagesnap/internal/debuglog"
	"github.com/pders01/pagesnap/internal/site"
	"github.com/pders01/pagesnap/internal/tui"
	"github.com/pders01/pagesnap/internal/watch"
)

// Version is the version of the application, set at build time
var Version = "dev"

var (
	configPath string
	sitePath   string
	watchSite  bool
	quiet      bool
	logLevel   string
	outputPath string
)

var rootCmd = &cobra.Command{
	Use:   "pagesnap [site]",
	Short: "Browse a scroll-snapped single-page site in the terminal",
	Long: `pagesnap renders a one-page site as full-screen panels. The mouse wheel
and drag gestures move one page at a time, the dots on the right jump to a
page, and pulling down on the banner reloads the site.`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runSite,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version of pagesnap",
	Run: func(cmd *cobra.Command, args []string) {
		out := stdout(cmd)
		fmt.Fprintf(out, "pagesnap %s\n", Version)
		fmt.Fprintln(out, "scroll-snapped sites in the terminal")
		fmt.Fprintln(out, "github.com/pders01/pagesnap")
	},
}

var generateConfigCmd = &cobra.Command{
	Use:   "generate-config",
	Short: "Write the default configuration file",
	RunE: func(cmd *cobra.Command, args []string) error {
		path := outputPath
		if path == "" {
			path = config.DefaultPath()
		}
		if err := config.GenerateDefaultConfig(path); err != nil {
			return fmt.Errorf("generating config: %w", err)
		}
		fmt.Fprintf(stdout(cmd), "Generated default configuration at: %s\n", path)
		return nil
	},
}

var validateCmd = &cobra.Command{
	Use:   "validate [site]",
	Short: "Check a site manifest and print its pages",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := ""
		if len(args) == 1 {
			path = args[0]
		}
		m, err := site.Load(path)
		if err != nil {
			return err
		}
		printSummary(stdout(cmd), m)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to configuration file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error, off)")
	rootCmd.Flags().StringVar(&sitePath, "site", "", "path to a site manifest (.toml, .yaml)")
	rootCmd.Flags().BoolVar(&watchSite, "watch", false, "reload the site when the manifest changes")
	rootCmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "skip startup banner")
	generateConfigCmd.Flags().StringVarP(&outputPath, "output", "o", "", "where to write the file")

	rootCmd.AddCommand(versionCmd, generateConfigCmd, validateCmd)
}

func stdout(cmd *cobra.Command) io.Writer {
	if cmd == nil {
		return os.Stdout
	}
	return cmd.OutOrStdout()
}

func printSummary(w io.Writer, m *site.Manifest) {
	source := m.Source
	if source == "" {
		source = "built-in"
	}
	fmt.Fprintf(w, "%s (%s)\n", m.Title, source)
	for i, p := range m.Pages {
		fmt.Fprintf(w, "  %d. %-12s %-8s %s\n", i+1, p.ID, p.Kind, p.Title)
	}
	fmt.Fprintf(w, "cards: %d  dots: %t  contact: %t  tutorial: %t\n",
		len(m.Cards), m.Dots, m.HasPopup(), m.HasVideo())
}

func runSite(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if len(args) == 1 {
		cfg.Site.Path = args[0]
	}
	if sitePath != "" {
		cfg.Site.Path = sitePath
	}
	if cmd.Flags().Changed("watch") {
		cfg.Site.Watch = watchSite
	}
	if logLevel != "" {
		cfg.Log.Level = logLevel
	}

	if err := debuglog.Setup(debuglog.ParseLogLevel(cfg.Log.Level), cfg.Log.File); err != nil {
		return err
	}
	defer debuglog.Close()

	m, err := site.Load(cfg.Site.Path)
	if err != nil {
		return err
	}

	var w *watch.Watcher
	if cfg.Site.Watch && m.Source != "" {
		w, err = watch.New(m.Source, 0)
		if err != nil {
			return err
		}
		if err := w.Start(context.Background()); err != nil {
			return err
		}
		defer w.Close()
	}

	if !quiet {
		tui.ShowBanner(Version)
	}

	debuglog.Infof("starting %s with %d pages", m.Title, len(m.Pages))
	app := tui.NewApp(m, cfg, nil, w)
	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running ui: %w", err)
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
