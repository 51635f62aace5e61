// Package main provides the CLI entrypoint for fastfingers.
package main

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/hjort/fastfingers/internal/config"
	"github.com/hjort/fastfingers/internal/game"
	"github.com/hjort/fastfingers/internal/generator"
	"github.com/hjort/fastfingers/internal/model"
	"github.com/hjort/fastfingers/internal/tui"
	"github.com/hjort/fastfingers/internal/wordlist"
)

const (
	defaultGameTime  = 60
	defaultMinLength = 2
	defaultMaxLength = 10
	defaultWords     = 1000
)

var (
	gameVocab     string
	gameTime      int
	gameMinLength int
	gameMaxLength int
	gameWords     int
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "fastfingers",
		Short:         "Terminal typing speed trainer",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runGameCmd,
	}

	rootCmd.PersistentFlags().StringVar(&gameVocab, "vocab", "", "path to a vocabulary file, one word per line (default: bundled list)")
	rootCmd.PersistentFlags().IntVar(&gameTime, "game_time", defaultGameTime, "round length in seconds")
	rootCmd.PersistentFlags().IntVar(&gameMinLength, "min_length", defaultMinLength, "shortest word to include")
	rootCmd.PersistentFlags().IntVar(&gameMaxLength, "max_length", defaultMaxLength, "longest word to include")
	rootCmd.PersistentFlags().IntVar(&gameWords, "words", defaultWords, "number of words loaded from the vocabulary")

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newVocabCmd())

	return rootCmd
}

func runGameCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	words, err := loadVocabulary(cfg)
	if err != nil {
		return err
	}

	session := game.NewSession(generator.New(words), cfg.GameTime)
	model := tui.NewModel(session, cfg.GameTime, terminalWidth())
	program := tea.NewProgram(model, tea.WithAltScreen())
	final, err := program.Run()
	if err != nil {
		if errors.Is(err, tea.ErrInterrupted) || errors.Is(err, tea.ErrProgramKilled) {
			return nil
		}
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	finalModel, ok := final.(*tui.Model)
	if !ok || finalModel.Interrupted() {
		return nil
	}
	return printReport(cmd.OutOrStdout(), finalModel.Report())
}

// resolveConfig merges the config file into the flag values and
// validates the result. Flags set on the command line win.
func resolveConfig(cmd *cobra.Command) (model.Config, error) {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return model.Config{}, fmt.Errorf("failed to load config: %w", err)
	}
	applyStringConfig(cmd, "vocab", &gameVocab, fileCfg.Game.Vocab)
	applyIntConfig(cmd, "game_time", &gameTime, fileCfg.Game.Time)
	applyIntConfig(cmd, "min_length", &gameMinLength, fileCfg.Game.MinLength)
	applyIntConfig(cmd, "max_length", &gameMaxLength, fileCfg.Game.MaxLength)
	applyIntConfig(cmd, "words", &gameWords, fileCfg.Game.Words)

	cfg := model.Config{
		VocabPath: gameVocab,
		GameTime:  gameTime,
		MinLength: gameMinLength,
		MaxLength: gameMaxLength,
		Words:     gameWords,
	}

	if err := validateConfig(cfg); err != nil {
		return model.Config{}, err
	}
	return cfg, nil
}

func loadVocabulary(cfg model.Config) ([]string, error) {
	opts := wordlist.Options{
		MinLength: cfg.MinLength,
		MaxLength: cfg.MaxLength,
		MaxWords:  cfg.Words,
	}
	if cfg.VocabPath == "" {
		words, err := wordlist.LoadDefault(opts)
		if err != nil {
			return nil, fmt.Errorf("failed to load bundled vocabulary: %w", err)
		}
		return words, nil
	}
	words, err := wordlist.Load(cfg.VocabPath, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to load vocabulary %s: %w", cfg.VocabPath, err)
	}
	return words, nil
}

// terminalWidth reports the stdout terminal width, or 0 when it cannot
// be determined (the prompt is then rendered unclipped until the first
// window size message).
func terminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return 0
	}
	return width
}

func printReport(w io.Writer, rep model.Report) error {
	if _, err := fmt.Fprintf(w, "ACC: %.2f%%\n", rep.Accuracy); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	if _, err := fmt.Fprintf(w, "CPM: %d\n", int(math.Round(rep.CPM))); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	if _, err := fmt.Fprintf(w, "WPM: %d\n", int(math.Round(rep.WPM))); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func newVocabCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "vocab",
		Short: "Print the filtered vocabulary",
		Args:  cobra.NoArgs,
		RunE:  runVocabCmd,
	}
}

func runVocabCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	words, err := loadVocabulary(cfg)
	if err != nil {
		return err
	}
	for _, word := range words {
		if _, err := fmt.Fprintln(cmd.OutOrStdout(), word); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# fastfingers configuration
# Uncomment a value to enable it. CLI flags override config values.

[game]
# vocab = ""        # Path to a vocabulary file (default: bundled list)
# time = %d         # Round length in seconds
# min-length = %d   # Shortest word to include
# max-length = %d   # Longest word to include
# words = %d        # Number of words loaded from the vocabulary
`,
		defaultGameTime,
		defaultMinLength,
		defaultMaxLength,
		defaultWords,
	)
}

func validateConfig(cfg model.Config) error {
	if cfg.GameTime <= 0 {
		return fmt.Errorf("--game_time must be > 0")
	}
	if cfg.MinLength < 1 {
		return fmt.Errorf("--min_length must be >= 1")
	}
	if cfg.MaxLength < cfg.MinLength {
		return fmt.Errorf("--max_length must be >= --min_length")
	}
	if cfg.Words <= 0 {
		return fmt.Errorf("--words must be > 0")
	}
	return nil
}
