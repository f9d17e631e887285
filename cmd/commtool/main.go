package main

import (
	"errors"
	"fmt"
	"os"

	"commtool/internal/app"
	"commtool/internal/config"

	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// newApp reads the config and creates an App. The caller must defer
// app.Close(). operation identifies the CLI command being run.
// A missing config file falls back to the default paths, so the tool
// works out of the box without an init step.
func newApp(operation string) (*app.App, error) {
	defaults, err := app.GetDefaults()
	if err != nil {
		return nil, fmt.Errorf("getting defaults: %w", err)
	}

	cfg, err := config.ReadFromFile(defaults["config_path"])
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			cfg = config.NewConfig(defaults["data_root"])
		} else {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	a, err := app.NewApp(cfg, operation)
	if err != nil {
		return nil, fmt.Errorf("initializing app: %w", err)
	}

	return a, nil
}

var rootCmd = &cobra.Command{
	Use:   "commtool",
	Short: "Commission tracking tool",
}

// config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage tool configuration",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		defaults, err := app.GetDefaults()
		if err != nil {
			return fmt.Errorf("failed to get defaults: %w", err)
		}

		cfg := config.NewConfig(defaults["data_root"])
		if err := config.Init(defaults["config_path"], cfg); err != nil {
			return fmt.Errorf("failed to initialize config: %w", err)
		}

		fmt.Printf("Configuration initialized at %s\n", defaults["config_path"])
		fmt.Printf("Data Root: %s\n", cfg.DataRoot)
		return nil
	},
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "View configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		defaults, err := app.GetDefaults()
		if err != nil {
			return fmt.Errorf("failed to get defaults: %w", err)
		}

		cfg, err := config.ReadFromFile(defaults["config_path"])
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				cfg = config.NewConfig(defaults["data_root"])
				fmt.Println("No config file found, showing defaults.")
			} else {
				return fmt.Errorf("failed to read config: %w", err)
			}
		}

		fmt.Printf("Data Root: %s\n", cfg.DataRoot)
		fmt.Printf("Log Dir:   %s\n", cfg.LogDir)
		return nil
	},
}

// prefs command
var prefsCmd = &cobra.Command{
	Use:   "prefs",
	Short: "View user preferences",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("LoadConfig")
		if err != nil {
			return err
		}
		defer a.Close()

		prefs, err := a.Service().LoadConfig()
		if err != nil {
			return fmt.Errorf("loading preferences: %w", err)
		}

		fmt.Printf("Username:      %s\n", prefs.Username)
		fmt.Printf("Theme:         %s\n", prefs.Theme)
		fmt.Printf("Primary Color: %s\n", prefs.PrimaryColor)
		fmt.Printf("Language:      %s\n", prefs.Language)
		fmt.Printf("Zoom Level:    %s\n", prefs.ZoomLevel)
		return nil
	},
}

// list command
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all commissions",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("LoadAllComms")
		if err != nil {
			return err
		}
		defer a.Close()

		comms, err := a.Service().LoadAllComms()
		if err != nil {
			return fmt.Errorf("loading comms: %w", err)
		}

		if len(comms) == 0 {
			fmt.Println("No commissions found.")
			return nil
		}

		for _, c := range comms {
			price := fmt.Sprintf("%d %s", c.Price, c.Currency)
			if c.Price == 0 {
				price = "Request"
			}
			pinned := ""
			if c.Pinned {
				pinned = "  [pinned]"
			}
			fmt.Printf("%-28s  %-10s  %-8s  %-12s  %s  %s%s\n",
				c.ID, c.Status, c.Priority, price, c.Deadline, c.Title, pinned)
		}
		return nil
	},
}

// migrate command
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Migrate the legacy flat comms file to per-commission folders",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("MigrateLegacy")
		if err != nil {
			return err
		}
		defer a.Close()

		summary, err := a.Service().MigrateLegacy()
		if err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}

		fmt.Printf("Migrated %d/%d commission(s)\n", summary.Migrated, summary.Total)
		for _, f := range summary.Failures {
			fmt.Printf("  failed: %s (%s)\n", f.Name, f.Reason)
		}
		return nil
	},
}

// cleanup command
var cleanupCmd = &cobra.Command{
	Use:   "cleanup",
	Short: "Delete commission folders without a valid record",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("CleanupOrphans")
		if err != nil {
			return err
		}
		defer a.Close()

		summary, err := a.Service().CleanupOrphans()
		if err != nil {
			return fmt.Errorf("cleanup failed: %w", err)
		}

		fmt.Printf("Deleted %d orphaned folder(s)\n", summary.Deleted)
		for _, name := range summary.Removed {
			fmt.Printf("  removed: %s\n", name)
		}
		for _, f := range summary.Failures {
			fmt.Printf("  failed: %s (%s)\n", f.Name, f.Reason)
		}
		return nil
	},
}

// ref command
var refCmd = &cobra.Command{
	Use:   "ref",
	Short: "Manage commission references",
}

var refListCmd = &cobra.Command{
	Use:   "ls COMM_ID",
	Short: "List a commission's references",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("ListReferences")
		if err != nil {
			return err
		}
		defer a.Close()

		refs, err := a.Service().ListReferences(args[0])
		if err != nil {
			return fmt.Errorf("listing references: %w", err)
		}

		if len(refs) == 0 {
			fmt.Println("No references found.")
			return nil
		}

		for _, r := range refs {
			dims := ""
			if r.Width > 0 {
				dims = fmt.Sprintf("  %dx%d", r.Width, r.Height)
			}
			fmt.Printf("%-6s  %8d  %s%s\n", r.Type, r.Size, r.Name, dims)
		}
		return nil
	},
}

var refOpenCmd = &cobra.Command{
	Use:   "open COMM_ID FILENAME",
	Short: "Open a reference with the system viewer",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("OpenFile")
		if err != nil {
			return err
		}
		defer a.Close()

		path, err := a.Service().ReferencePath(args[0], args[1])
		if err != nil {
			return fmt.Errorf("resolving reference: %w", err)
		}
		if err := a.Service().OpenFile(path); err != nil {
			return fmt.Errorf("opening file: %w", err)
		}
		return nil
	},
}

var refDeleteCmd = &cobra.Command{
	Use:   "rm COMM_ID FILENAME",
	Short: "Delete a reference",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("DeleteReference")
		if err != nil {
			return err
		}
		defer a.Close()

		if err := a.Service().DeleteReference(args[0], args[1]); err != nil {
			return fmt.Errorf("deleting reference: %w", err)
		}
		fmt.Printf("Deleted %s\n", args[1])
		return nil
	},
}

// open command
var openCmd = &cobra.Command{
	Use:   "open",
	Short: "Reveal the data folder in the file browser",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("OpenDataFolder")
		if err != nil {
			return err
		}
		defer a.Close()

		return a.Service().OpenDataFolder()
	},
}

// wipe command
var wipeCmd = &cobra.Command{
	Use:   "wipe",
	Short: "Delete all stored data",
	RunE: func(cmd *cobra.Command, args []string) error {
		confirmed, _ := cmd.Flags().GetBool("yes")
		if !confirmed {
			return fmt.Errorf("refusing to delete all data without --yes")
		}

		a, err := newApp("DeleteAllData")
		if err != nil {
			return err
		}
		defer a.Close()

		summary, err := a.Service().DeleteAllData()
		if err != nil {
			return fmt.Errorf("wipe failed: %w", err)
		}

		fmt.Printf("Removed %d storage path(s)\n", len(summary.Removed))
		for _, f := range summary.Failures {
			fmt.Printf("  failed: %s (%s)\n", f.Name, f.Reason)
		}
		if summary.RootRemoved {
			fmt.Println("Data root removed.")
		}
		return nil
	},
}

func init() {
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configListCmd)

	refCmd.AddCommand(refListCmd)
	refCmd.AddCommand(refOpenCmd)
	refCmd.AddCommand(refDeleteCmd)

	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(prefsCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(cleanupCmd)
	rootCmd.AddCommand(refCmd)
	rootCmd.AddCommand(openCmd)
	rootCmd.AddCommand(wipeCmd)
	wipeCmd.Flags().BoolP("yes", "y", false, "Confirm deletion of all data")
}
