package common

import (
	"fmt"

	"github.com/ternarybob/banner"
)

// PrintBanner displays the startup banner with the target project
func PrintBanner(serviceName string, cfg *Config, configFile, logFile string) {
	b := banner.New().
		SetStyle(banner.StyleDouble).
		SetBorderColor(banner.ColorPurple).
		SetTextColor(banner.ColorWhite).
		SetBold(true).
		SetWidth(80)

	fmt.Printf("\n")

	b.PrintTopLine()
	b.PrintCenteredText("JIRA AUTO CLOSE")
	b.PrintCenteredText(serviceName)
	b.PrintSeparatorLine()

	b.PrintKeyValue("Version", GetVersion(), 15)
	b.PrintKeyValue("Build", GetBuild(), 15)
	b.PrintKeyValue("Jira", cfg.Jira.BaseURL, 15)
	b.PrintKeyValue("Project", cfg.Jira.ProjectKey, 15)
	b.PrintKeyValue("Transition", cfg.Jira.DoneTransitionID, 15)
	b.PrintBottomLine()

	fmt.Printf("\n")

	if configFile != "" {
		fmt.Printf("📋 Config File: %s\n", configFile)
	}
	if logFile != "" {
		fmt.Printf("📝 Log File: %s\n", logFile)
	}
	fmt.Printf("\n")
}

// PrintColorizedMessage prints a message with specified color
func PrintColorizedMessage(color, message string) {
	fmt.Printf("%s%s%s\n", color, message, banner.ColorReset)
}

// PrintSuccess prints a success message in green
func PrintSuccess(message string) {
	PrintColorizedMessage(banner.ColorGreen, fmt.Sprintf("✓ %s", message))
}

// PrintWarning prints a warning message in yellow
func PrintWarning(message string) {
	PrintColorizedMessage(banner.ColorYellow, fmt.Sprintf("⚠ %s", message))
}

// PrintError prints an error message in red
func PrintError(message string) {
	PrintColorizedMessage(banner.ColorRed, fmt.Sprintf("✗ %s", message))
}
