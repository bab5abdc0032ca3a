package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"github.com/facturio/qascan/internal/config"
)

func initCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Generate a qascan configuration file",
		Long: `Generate a documented qascan configuration file with sensible defaults.

By default, creates qascan.yaml in the current directory with full
documentation. Use --interactive for a guided setup wizard.

Examples:
  # Create qascan.yaml in current directory
  qascan init

  # Custom output path
  qascan init --config custom.yaml

  # Overwrite existing file
  qascan init --force

  # Generate smaller config with essential options only
  qascan init --minimal

  # Interactive setup wizard
  qascan init --interactive
  qascan init -i`,
		RunE: runInit,
	}

	cmd.Flags().StringP("config", "c", "qascan.yaml",
		"Output path for the config file")
	cmd.Flags().BoolP("force", "f", false,
		"Overwrite existing config file")
	cmd.Flags().Bool("minimal", false,
		"Generate minimal config with essential options only")
	cmd.Flags().BoolP("interactive", "i", false,
		"Interactive setup wizard")

	return cmd
}

func runInit(cmd *cobra.Command, args []string) error {
	configPath, _ := cmd.Flags().GetString("config")
	force, _ := cmd.Flags().GetBool("force")
	minimal, _ := cmd.Flags().GetBool("minimal")
	interactive, _ := cmd.Flags().GetBool("interactive")

	var environment config.Environment = config.EnvironmentProduction
	var runMode config.RunMode = config.RunModeStandard

	// Run interactive setup if requested
	if interactive {
		var err error
		var interactiveConfigPath string
		environment, runMode, interactiveConfigPath, err = runInteractiveSetup(configPath)
		if err != nil {
			return err
		}
		configPath = interactiveConfigPath
	}

	// Check if file exists
	if !force {
		if _, err := os.Stat(configPath); err == nil {
			return fmt.Errorf("%s already exists. Use --force to overwrite", configPath)
		}
	}

	// Check if parent directory exists
	dir := filepath.Dir(configPath)
	if dir != "." && dir != "" {
		if _, err := os.Stat(dir); os.IsNotExist(err) {
			return fmt.Errorf("directory does not exist: %s", dir)
		}
	}

	var content string
	if minimal {
		content = config.GetMinimalConfigTemplate()
	} else {
		content = config.GetFullConfigTemplate(environment, runMode)
	}

	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	// Print success message with absolute path if possible, otherwise use relative path
	displayPath := configPath
	if absPath, err := filepath.Abs(configPath); err == nil {
		displayPath = absPath
	}
	fmt.Printf("Created %s\n", displayPath)
	fmt.Println("\nSign in through the console, then run 'qascan run'.")

	return nil
}

func runInteractiveSetup(defaultConfigPath string) (config.Environment, config.RunMode, string, error) {
	fmt.Println()
	fmt.Println("qascan Configuration Setup")
	fmt.Println("==========================")
	fmt.Println()

	// Environment selection
	environments := []struct {
		Label string
		Value config.Environment
	}{
		{"Production", config.EnvironmentProduction},
		{"Staging", config.EnvironmentStaging},
		{"Local development", config.EnvironmentLocal},
	}

	environmentTemplates := &promptui.SelectTemplates{
		Label:    "{{ . }}",
		Active:   "\U0001F449 {{ .Label | cyan }}",
		Inactive: "   {{ .Label | white }}",
		Selected: "\U00002705 {{ .Label | green }}",
	}

	environmentPrompt := promptui.Select{
		Label:     "Which deployment should be verified?",
		Items:     environments,
		Templates: environmentTemplates,
	}

	environmentIdx, _, err := environmentPrompt.Run()
	if err != nil {
		return "", "", "", fmt.Errorf("environment selection cancelled: %w", err)
	}
	selectedEnvironment := environments[environmentIdx].Value

	fmt.Println()

	// Run mode selection
	runModes := []struct {
		Label       string
		Description string
		Value       config.RunMode
	}{
		{"Standard (recommended)", "Mocked notifications, seeded data is cleaned up", config.RunModeStandard},
		{"Read-only", "No live sends, no data left behind", config.RunModeReadonly},
		{"Live", "Real email/SMS delivery, consumes credits", config.RunModeLive},
	}

	runModeTemplates := &promptui.SelectTemplates{
		Label:    "{{ . }}",
		Active:   "\U0001F449 {{ .Label | cyan }} - {{ .Description | faint }}",
		Inactive: "   {{ .Label | white }} - {{ .Description | faint }}",
		Selected: "\U00002705 {{ .Label | green }}",
	}

	runModePrompt := promptui.Select{
		Label:     "How invasive may QA runs be?",
		Items:     runModes,
		Templates: runModeTemplates,
	}

	runModeIdx, _, err := runModePrompt.Run()
	if err != nil {
		return "", "", "", fmt.Errorf("run mode selection cancelled: %w", err)
	}
	selectedRunMode := runModes[runModeIdx].Value

	fmt.Println()

	// Output path prompt
	outputPrompt := promptui.Prompt{
		Label:   "Output file path",
		Default: defaultConfigPath,
	}

	outputPath, err := outputPrompt.Run()
	if err != nil {
		return "", "", "", fmt.Errorf("output path input cancelled: %w", err)
	}

	// Use default if empty
	if outputPath == "" {
		outputPath = defaultConfigPath
	}

	fmt.Println()
	fmt.Printf("Creating %s... ", outputPath)

	return selectedEnvironment, selectedRunMode, outputPath, nil
}
