package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/AlecAivazis/survey/v2"

	"github.com/dyike/BriefingGo/pkg/calendar"
)

// PromptForDate prompts the user for a briefing date
func PromptForDate() (string, error) {
	today := time.Now().Format("2006-01-02")

	var dateStr string
	prompt := &survey.Input{
		Message: "Enter the briefing date (YYYY-MM-DD):",
		Default: today,
		Help:    "The date decides the briefing mode and which holidays apply.",
	}

	err := survey.AskOne(prompt, &dateStr, survey.WithValidator(func(val interface{}) error {
		str, ok := val.(string)
		if !ok {
			return fmt.Errorf("invalid input")
		}
		str = strings.TrimSpace(str)
		if str == "" {
			return fmt.Errorf("date cannot be empty")
		}
		if _, err := time.Parse("2006-01-02", str); err != nil {
			return fmt.Errorf("invalid date format, use YYYY-MM-DD")
		}
		return nil
	}))
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(dateStr), nil
}

// PromptForMode prompts the user to pick a briefing mode
func PromptForMode() (calendar.Mode, error) {
	var selected string

	options := []string{
		"auto - Derive the mode from the date's weekday",
		"weekday - Morning market briefing",
		"saturday - Weekly wrap-up",
		"sunday - Week-ahead outlook",
	}

	prompt := &survey.Select{
		Message: "Select briefing mode:",
		Options: options,
		Help:    "Force a mode to preview a weekend briefing on a weekday, or leave on auto.",
		Default: options[0],
	}

	err := survey.AskOne(prompt, &selected)
	if err != nil {
		return "", err
	}

	name := strings.Split(selected, " -")[0]
	if name == "auto" {
		return "", nil
	}
	return calendar.ParseMode(name)
}

// PromptForDryRun asks whether to skip Telegram delivery
func PromptForDryRun() (bool, error) {
	var dryRun bool
	prompt := &survey.Confirm{
		Message: "Dry run (generate and log only, no Telegram send)?",
		Default: false,
	}

	err := survey.AskOne(prompt, &dryRun)
	if err != nil {
		return false, err
	}

	return dryRun, nil
}

// PromptForAnotherRun asks whether to run again after a completed briefing
func PromptForAnotherRun() (bool, error) {
	var again bool
	prompt := &survey.Confirm{
		Message: "Run another briefing?",
		Default: false,
	}

	err := survey.AskOne(prompt, &again)
	if err != nil {
		return false, err
	}

	return again, nil
}
