package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/ternarybob/banner"

	"github.com/dyike/BriefingGo/config"
	"github.com/dyike/BriefingGo/pkg/briefing"
	"github.com/dyike/BriefingGo/pkg/calendar"
)

const version = "1.0.0"

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	// Initialize configuration early
	cfg := config.DefaultConfig()

	rootCmd := &cobra.Command{
		Use:   "briefinggo",
		Short: "BriefingGo - Daily Economic Briefing Service",
		Long: `BriefingGo assembles a Korean-language market briefing from live index
quotes and Google News coverage, generates it with an LLM and publishes it to
a Telegram channel. Run without arguments for the interactive mode.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.EnsureDirectories(); err != nil {
				return fmt.Errorf("failed to create directories: %w", err)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// Default behavior: start interactive mode
			return runInteractiveMode(cfg)
		},
	}

	// Add subcommands
	rootCmd.AddCommand(newRunCmd(cfg))
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newConfigCmd(cfg))

	// Global flags
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug mode")

	return rootCmd
}

// newRunCmd creates the run command
func newRunCmd(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Produce and deliver one briefing",
		Long: `Produce one briefing for today (or the given date) and send it to the
configured Telegram channel.
Example: briefinggo run --date=2026-08-30 --mode=saturday --dry-run`,
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, _ := cmd.Flags().GetString("mode")
			date, _ := cmd.Flags().GetString("date")
			dryRun, _ := cmd.Flags().GetBool("dry-run")

			return runBriefingCommand(cfg, mode, date, dryRun)
		},
	}

	cmd.Flags().String("mode", "", "Force briefing mode: weekday, saturday or sunday (derived from the date if not provided)")
	cmd.Flags().String("date", "", "Briefing date in YYYY-MM-DD format (today if not provided)")
	cmd.Flags().Bool("dry-run", false, "Generate and log the briefing without sending it to Telegram")

	return cmd
}

// newVersionCmd creates the version command
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("BriefingGo v" + version)
			fmt.Println("Daily Economic Briefing Service")
		},
	}
}

// newConfigCmd creates the config command
func newConfigCmd(cfg *config.Config) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration management",
		Long:  "Manage BriefingGo configuration settings",
	}

	// config show subcommand
	configCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Run: func(cmd *cobra.Command, args []string) {
			showConfig(cfg)
		},
	})

	// config validate subcommand
	configCmd.AddCommand(&cobra.Command{
		Use:   "validate",
		Short: "Validate configuration and dependencies",
		RunE: func(cmd *cobra.Command, args []string) error {
			return validateConfig(cfg)
		},
	})

	return configCmd
}

// runBriefingCommand executes one full briefing run
func runBriefingCommand(cfg *config.Config, modeStr, date string, dryRun bool) error {
	ctx := context.Background()

	var mode calendar.Mode
	if modeStr != "" {
		parsed, err := calendar.ParseMode(modeStr)
		if err != nil {
			return err
		}
		mode = parsed
	}

	banner.PrintSimple("BriefingGo", version)

	session := briefing.NewSession(cfg, mode, date, dryRun)
	result, err := session.Execute(ctx)
	if err != nil {
		return fmt.Errorf("briefing run failed: %w", err)
	}

	DisplayRunResult(result)
	return nil
}

// showConfig displays the current configuration
func showConfig(cfg *config.Config) {
	fmt.Println("📋 Current BriefingGo Configuration:")
	fmt.Println("═══════════════════════════════════════")
	fmt.Printf("Project Directory:    %s\n", cfg.ProjectDir)
	fmt.Printf("Data Directory:       %s\n", cfg.DataDir)
	fmt.Printf("Cache Directory:      %s\n", cfg.DataCacheDir)
	fmt.Printf("Run Log File:         %s\n", cfg.LogFilePath)
	fmt.Println()
	fmt.Printf("Gemini Models:        %s\n", strings.Join(cfg.GeminiModels, ", "))
	fmt.Printf("Max Gen Attempts:     %d\n", cfg.MaxGenAttempts)
	fmt.Printf("Backoff Seconds:      %d\n", cfg.BackoffSeconds)
	fmt.Println()
	fmt.Printf("Market Source:        %s\n", cfg.MarketSource)
	fmt.Printf("Articles Per Query:   %d\n", cfg.ArticlesPerQuery)
	fmt.Printf("Article Max Chars:    %d\n", cfg.ArticleMaxChars)
	fmt.Println()
	fmt.Printf("Cache Enabled:        %t\n", cfg.CacheEnabled)
	fmt.Printf("Debug Mode:           %t\n", cfg.Debug)
	fmt.Println()

	fmt.Println("🔌 API Configuration:")
	fmt.Println("─────────────────────")
	if cfg.GeminiAPIKey != "" {
		fmt.Println("Gemini API:           ✅ Configured")
	} else {
		fmt.Println("Gemini API:           ❌ Not configured")
	}

	if cfg.DeepSeekAPIKey != "" {
		fmt.Println("DeepSeek API:         ✅ Configured")
	} else {
		fmt.Println("DeepSeek API:         ❌ Not configured")
	}

	if cfg.TelegramBotToken != "" && cfg.TelegramChannelID != "" {
		fmt.Println("Telegram:             ✅ Configured")
	} else {
		fmt.Println("Telegram:             ❌ Not configured")
	}

	if cfg.LongportAppKey != "" && cfg.LongportAppSecret != "" && cfg.LongportAccessToken != "" {
		fmt.Println("Longport API:         ✅ Configured")
	} else {
		fmt.Println("Longport API:         ❌ Not configured")
	}
}

// validateConfig validates the configuration and dependencies
func validateConfig(cfg *config.Config) error {
	fmt.Println("🔍 Validating BriefingGo Configuration...")
	fmt.Println("═══════════════════════════════════════")

	// Check directories
	fmt.Print("📁 Checking directories... ")
	if err := cfg.EnsureDirectories(); err != nil {
		fmt.Println("❌")
		return fmt.Errorf("directory validation failed: %w", err)
	}
	fmt.Println("✅")

	// Check API keys
	fmt.Print("🔑 Checking API keys... ")
	warnings := []string{}

	if cfg.GeminiAPIKey == "" {
		warnings = append(warnings, "Gemini API key not configured; generation falls back to DeepSeek if set")
	}

	if cfg.GeminiAPIKey == "" && cfg.DeepSeekAPIKey == "" {
		warnings = append(warnings, "No generation backend configured; runs will produce the key-missing notice")
	}

	if cfg.TelegramBotToken == "" || cfg.TelegramChannelID == "" {
		warnings = append(warnings, "Telegram credentials not configured; briefings will only be logged")
	}

	if cfg.MarketSource == "longport" && cfg.LongportAccessToken == "" {
		warnings = append(warnings, "Market source is longport but Longport credentials are missing")
	}

	if len(warnings) > 0 {
		fmt.Println("⚠️")
		for _, warning := range warnings {
			fmt.Printf("  ⚠️  %s\n", warning)
		}
	} else {
		fmt.Println("✅")
	}

	// Check configuration values
	fmt.Print("⚙️  Checking configuration values... ")
	if cfg.MaxGenAttempts < 1 || cfg.MaxGenAttempts > 10 {
		fmt.Println("❌")
		return fmt.Errorf("max generation attempts must be between 1 and 10")
	}

	if cfg.ArticlesPerQuery < 1 || cfg.ArticlesPerQuery > 10 {
		fmt.Println("❌")
		return fmt.Errorf("articles per query must be between 1 and 10")
	}

	if len(cfg.GeminiModels) == 0 {
		fmt.Println("❌")
		return fmt.Errorf("at least one Gemini model must be configured")
	}
	fmt.Println("✅")

	fmt.Println()
	if len(warnings) == 0 {
		fmt.Println("✅ Configuration validation completed successfully!")
	} else {
		fmt.Printf("⚠️  Configuration validation completed with %d warnings.\n", len(warnings))
		fmt.Println("Some features may be limited without proper API configuration.")
	}

	fmt.Println()
	fmt.Println("💡 Tips:")
	fmt.Println("  • Set GEMINI_API_KEY for briefing generation")
	fmt.Println("  • Set TELEGRAM_BOT_TOKEN and TELEGRAM_CHANNEL_ID to deliver briefings")
	fmt.Println("  • Use 'briefinggo run --dry-run' to test without sending")

	return nil
}
