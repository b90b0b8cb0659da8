// Package main provides the CLI entrypoint for lumora.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/vidyajay1/Lumora/internal/challenge"
	"github.com/vidyajay1/Lumora/internal/config"
	"github.com/vidyajay1/Lumora/internal/kv"
	"github.com/vidyajay1/Lumora/internal/model"
	"github.com/vidyajay1/Lumora/internal/progress"
	"github.com/vidyajay1/Lumora/internal/progressui"
	"github.com/vidyajay1/Lumora/internal/stats"
	"github.com/vidyajay1/Lumora/internal/tui"
	"github.com/vidyajay1/Lumora/internal/userdata"
)

var (
	prefsDifficulty    string
	prefsCategories    []string
	prefsNotifications bool
	prefsReminderTime  string

	resetConfirmed bool
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "lumora",
		Short:         "Daily self-improvement challenges",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runTodayUICmd,
	}

	rootCmd.AddCommand(newTodayCmd())
	rootCmd.AddCommand(newGenerateCmd())
	rootCmd.AddCommand(newCompleteCmd())
	rootCmd.AddCommand(newProgressCmd())
	rootCmd.AddCommand(newHistoryCmd())
	rootCmd.AddCommand(newPrefsCmd())
	rootCmd.AddCommand(newExportCmd())
	rootCmd.AddCommand(newResetCmd())
	rootCmd.AddCommand(newConfigCmd())

	return rootCmd
}

func openData() (*kv.Store, *userdata.Store, error) {
	st, err := kv.Open(config.DefaultDBPath())
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open db: %w", err)
	}
	return st, userdata.New(st), nil
}

func closeStore(st *kv.Store) {
	if cerr := st.Close(); cerr != nil {
		logErrf("failed to close db: %v\n", cerr)
	}
}

func runTodayUICmd(_ *cobra.Command, _ []string) error {
	st, data, err := openData()
	if err != nil {
		return err
	}
	defer closeStore(st)

	ctx := context.Background()
	tracker := progress.New(data)
	tracker.Bootstrap(ctx)
	gen := challenge.New(data)
	gen.Initialize(ctx)

	day := model.DayKey(time.Now())
	uiModel := tui.NewModel(gen, tracker, day)
	program := tea.NewProgram(uiModel, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

func newTodayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "today",
		Short: "Print today's challenges",
		Args:  cobra.NoArgs,
		RunE:  runTodayCmd,
	}
}

func runTodayCmd(cmd *cobra.Command, _ []string) error {
	st, data, err := openData()
	if err != nil {
		return err
	}
	defer closeStore(st)

	ctx := context.Background()
	progress.New(data).Bootstrap(ctx)
	gen := challenge.New(data)
	gen.Initialize(ctx)

	challenges := gen.TodaysChallenges(ctx)
	day := model.DayKey(time.Now())
	return stats.RenderChallenges(cmd.OutOrStdout(), day, challenges, stats.TerminalWidth())
}

func newGenerateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "generate",
		Short: "Generate an uncached challenge batch",
		Args:  cobra.NoArgs,
		RunE:  runGenerateCmd,
	}
}

func runGenerateCmd(cmd *cobra.Command, _ []string) error {
	st, data, err := openData()
	if err != nil {
		return err
	}
	defer closeStore(st)

	ctx := context.Background()
	gen := challenge.New(data)
	gen.Initialize(ctx)

	challenges := gen.GenerateDaily(ctx)
	day := model.DayKey(time.Now())
	return stats.RenderChallenges(cmd.OutOrStdout(), day, challenges, stats.TerminalWidth())
}

func newCompleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "complete <challenge-id>",
		Short: "Mark a challenge as completed",
		Args:  cobra.ExactArgs(1),
		RunE:  runCompleteCmd,
	}
}

func runCompleteCmd(cmd *cobra.Command, args []string) error {
	st, data, err := openData()
	if err != nil {
		return err
	}
	defer closeStore(st)

	ctx := context.Background()
	tracker := progress.New(data)
	if !tracker.UpdateProgress(ctx, args[0], true) {
		return fmt.Errorf("failed to record completion for %s", args[0])
	}
	summary := tracker.Summary(ctx)
	if _, err := fmt.Fprintf(cmd.OutOrStdout(),
		"Completed. Current streak: %d day(s), total: %d\n",
		summary.CurrentStreak, summary.TotalChallenges); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func newProgressCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "progress",
		Short: "Show progress and history",
		Args:  cobra.NoArgs,
		RunE:  runProgressCmd,
	}
}

func runProgressCmd(_ *cobra.Command, _ []string) error {
	st, data, err := openData()
	if err != nil {
		return err
	}
	defer closeStore(st)

	tracker := progress.New(data)
	summary := tracker.Summary(context.Background())
	uiModel := progressui.NewModel(data, summary)
	program := tea.NewProgram(uiModel, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run progress TUI: %w", err)
	}
	return nil
}

func newHistoryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "history",
		Short: "Print the generated-challenge history",
		Args:  cobra.NoArgs,
		RunE:  runHistoryCmd,
	}
}

func runHistoryCmd(cmd *cobra.Command, _ []string) error {
	st, data, err := openData()
	if err != nil {
		return err
	}
	defer closeStore(st)

	ctx := context.Background()
	history, err := data.LoadHistory(ctx)
	if err != nil {
		return fmt.Errorf("failed to load history: %w", err)
	}
	summary := progress.New(data).Summary(ctx)
	out := cmd.OutOrStdout()
	if err := stats.RenderSummary(out, summary); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(out, ""); err != nil {
		return err
	}
	return stats.RenderHistory(out, history, stats.TerminalWidth())
}

func newPrefsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prefs",
		Short: "Show or update preferences",
		Args:  cobra.NoArgs,
		RunE:  runPrefsCmd,
	}
	cmd.Flags().StringVar(&prefsDifficulty, "difficulty", "", "challenge difficulty (easy, medium, hard)")
	cmd.Flags().StringSliceVar(&prefsCategories, "categories", nil, "challenge categories")
	cmd.Flags().BoolVar(&prefsNotifications, "notifications", true, "enable the daily reminder preference")
	cmd.Flags().StringVar(&prefsReminderTime, "reminder", "", "reminder time (HH:MM)")
	return cmd
}

func runPrefsCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyStringConfig(cmd, "difficulty", &prefsDifficulty, fileCfg.Challenges.Difficulty)
	applySliceConfig(cmd, "categories", &prefsCategories, fileCfg.Challenges.Categories)
	applyBoolConfig(cmd, "notifications", &prefsNotifications, fileCfg.Challenges.Notifications)
	applyStringConfig(cmd, "reminder", &prefsReminderTime, fileCfg.Challenges.ReminderTime)

	st, data, err := openData()
	if err != nil {
		return err
	}
	defer closeStore(st)

	ctx := context.Background()
	prefs, err := data.LoadPreferences(ctx)
	if err != nil {
		return fmt.Errorf("failed to load preferences: %w", err)
	}

	changed := false
	if prefsDifficulty != "" {
		difficulty := model.Difficulty(prefsDifficulty)
		if !difficulty.Valid() {
			return fmt.Errorf("invalid difficulty %q (easy, medium, hard)", prefsDifficulty)
		}
		prefs.Difficulty = difficulty
		changed = true
	}
	if len(prefsCategories) > 0 {
		prefs.Categories = normalizeCategories(prefsCategories)
		changed = true
	}
	if cmd.Flags().Changed("notifications") || fileCfg.Challenges.Notifications != nil {
		prefs.Notifications = prefsNotifications
		changed = true
	}
	if prefsReminderTime != "" {
		prefs.ReminderTime = prefsReminderTime
		changed = true
	}
	if changed {
		if err := data.SavePreferences(ctx, prefs); err != nil {
			return fmt.Errorf("failed to save preferences: %w", err)
		}
	}

	out := cmd.OutOrStdout()
	if _, err := fmt.Fprintf(out, "Difficulty: %s\n", prefs.Difficulty); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(out, "Categories: %s\n", strings.Join(prefs.Categories, ", ")); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(out, "Notifications: %v\n", prefs.Notifications); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(out, "Reminder: %s\n", prefs.ReminderTime); err != nil {
		return err
	}
	return nil
}

func normalizeCategories(categories []string) []string {
	out := make([]string, 0, len(categories))
	seen := map[string]bool{}
	for _, cat := range categories {
		cat = strings.TrimSpace(strings.ToLower(cat))
		if cat == "" || seen[cat] {
			continue
		}
		seen[cat] = true
		out = append(out, cat)
	}
	return out
}

func newExportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export",
		Short: "Export all data as JSON",
		Args:  cobra.NoArgs,
		RunE:  runExportCmd,
	}
}

func runExportCmd(cmd *cobra.Command, _ []string) error {
	st, data, err := openData()
	if err != nil {
		return err
	}
	defer closeStore(st)

	snapshot, err := data.Export(context.Background())
	if err != nil {
		return fmt.Errorf("failed to export data: %w", err)
	}
	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(snapshot); err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}
	return nil
}

func newResetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Delete all stored data",
		Args:  cobra.NoArgs,
		RunE:  runResetCmd,
	}
	cmd.Flags().BoolVar(&resetConfirmed, "yes", false, "confirm deletion")
	return cmd
}

func runResetCmd(cmd *cobra.Command, _ []string) error {
	if !resetConfirmed {
		return fmt.Errorf("this deletes all local data; re-run with --yes to confirm")
	}
	st, data, err := openData()
	if err != nil {
		return err
	}
	defer closeStore(st)

	if err := data.ClearAll(context.Background()); err != nil {
		return fmt.Errorf("failed to clear data: %w", err)
	}
	if _, err := fmt.Fprintln(cmd.OutOrStdout(), "All data cleared."); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
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

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applySliceConfig(cmd *cobra.Command, name string, target *[]string, value *[]string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyBoolConfig(cmd *cobra.Command, name string, target, value *bool) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	defaults := userdata.DefaultPreferences()
	return fmt.Sprintf(`# lumora configuration
# Uncomment a value to enable it. CLI flags override config values.

[challenges]
# difficulty = %q          # Challenge difficulty (easy, medium, hard)
# categories = ["personal", "health", "learning"]
# notifications = %v       # Daily reminder preference
# reminder-time = %q       # Reminder time (HH:MM)
`,
		string(defaults.Difficulty),
		defaults.Notifications,
		defaults.ReminderTime,
	)
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
