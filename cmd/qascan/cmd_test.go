package main

import (
	"testing"
)

func TestRunCmd_FlagsExist(t *testing.T) {
	cmd := runCmd()

	expectedFlags := []string{"system", "live-notifications", "keep-data", "admin", "format", "output", "no-progress", "config"}
	for _, flagName := range expectedFlags {
		flag := cmd.Flags().Lookup(flagName)
		if flag == nil {
			t.Errorf("Missing expected flag: --%s", flagName)
		}
	}
}

func TestRunCmd_ShortFlags(t *testing.T) {
	cmd := runCmd()

	shortFlags := map[string]string{
		"s": "system",
		"f": "format",
		"o": "output",
		"c": "config",
	}

	for short, long := range shortFlags {
		flag := cmd.Flags().ShorthandLookup(short)
		if flag == nil {
			t.Errorf("Missing short flag -%s for --%s", short, long)
		}
	}
}

func TestVerifyCmd_FlagsExist(t *testing.T) {
	cmd := verifyCmd()

	expectedFlags := []string{"manifest", "dist", "routes", "concurrency", "json", "config"}
	for _, flagName := range expectedFlags {
		flag := cmd.Flags().Lookup(flagName)
		if flag == nil {
			t.Errorf("Missing expected flag: --%s", flagName)
		}
	}
}

func TestCatalogCmd_FlagsExist(t *testing.T) {
	cmd := catalogCmd()

	for _, flagName := range []string{"system", "json"} {
		flag := cmd.Flags().Lookup(flagName)
		if flag == nil {
			t.Errorf("Missing expected flag: --%s", flagName)
		}
	}
}

func TestInitCmd_DefaultValues(t *testing.T) {
	cmd := initCmd()

	configFlag := cmd.Flags().Lookup("config")
	if configFlag == nil {
		t.Fatal("config flag not found")
	}
	if configFlag.DefValue != "qascan.yaml" {
		t.Errorf("Expected default config path 'qascan.yaml', got '%s'", configFlag.DefValue)
	}
}

func TestExitErrorMessage(t *testing.T) {
	err := &ExitError{Code: 2, Message: "no session token"}
	if err.Error() != "no session token" {
		t.Errorf("Error() = %q", err.Error())
	}

	silent := &ExitError{Code: 1}
	if silent.Error() != "" {
		t.Errorf("silent exit should have empty message, got %q", silent.Error())
	}
}
