package cli

import (
	"fmt"

	"github.com/dyike/BriefingGo/config"
)

// runInteractiveMode walks the user through one or more briefing runs
func runInteractiveMode(cfg *config.Config) error {
	DisplayWelcomeBanner()

	for {
		date, err := PromptForDate()
		if err != nil {
			return err
		}

		mode, err := PromptForMode()
		if err != nil {
			return err
		}

		dryRun, err := PromptForDryRun()
		if err != nil {
			return err
		}

		if err := runBriefingCommand(cfg, string(mode), date, dryRun); err != nil {
			fmt.Printf("❌ Briefing failed: %v\n", err)
		}

		again, err := PromptForAnotherRun()
		if err != nil {
			return err
		}
		if !again {
			fmt.Println("👋 Thank you for using BriefingGo!")
			return nil
		}
		fmt.Println()
	}
}
