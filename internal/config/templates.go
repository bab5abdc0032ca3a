package config

import "strconv"

// Environment represents the deployment a config targets
type Environment string

const (
	EnvironmentProduction Environment = "production"
	EnvironmentStaging    Environment = "staging"
	EnvironmentLocal      Environment = "local"
)

// RunMode represents how invasive a generated config allows runs to be
type RunMode string

const (
	// RunModeReadonly keeps notifications mocked and leaves no data behind
	RunModeReadonly RunMode = "readonly"

	// RunModeStandard mocks notifications but allows seeding with cleanup
	RunModeStandard RunMode = "standard"

	// RunModeLive sends real notifications; consumes credits
	RunModeLive RunMode = "live"
)

// EnvironmentPreset holds connection presets per environment
type EnvironmentPreset struct {
	BaseURL        string
	TimeoutSeconds int
}

// RunModePreset holds run switches per mode
type RunModePreset struct {
	LiveNotifications bool
	KeepData          bool
}

// GetEnvironmentPresets returns presets for the known deployments
func GetEnvironmentPresets() map[Environment]EnvironmentPreset {
	return map[Environment]EnvironmentPreset{
		EnvironmentProduction: {
			BaseURL:        DefaultBaseURL,
			TimeoutSeconds: DefaultTimeoutSeconds,
		},
		EnvironmentStaging: {
			BaseURL:        "https://staging-api.facturio.app",
			TimeoutSeconds: DefaultTimeoutSeconds,
		},
		EnvironmentLocal: {
			BaseURL:        "http://localhost:3001",
			TimeoutSeconds: 5,
		},
	}
}

// GetRunModePresets returns run switches for each mode
func GetRunModePresets() map[RunMode]RunModePreset {
	return map[RunMode]RunModePreset{
		RunModeReadonly: {LiveNotifications: false, KeepData: false},
		RunModeStandard: {LiveNotifications: false, KeepData: false},
		RunModeLive:     {LiveNotifications: true, KeepData: false},
	}
}

// GetFullConfigTemplate generates a documented YAML config for the given
// environment and run mode
func GetFullConfigTemplate(env Environment, mode RunMode) string {
	envPreset, ok := GetEnvironmentPresets()[env]
	if !ok {
		envPreset = GetEnvironmentPresets()[EnvironmentProduction]
	}
	modePreset, ok := GetRunModePresets()[mode]
	if !ok {
		modePreset = GetRunModePresets()[RunModeStandard]
	}

	return `# qascan configuration
# Generated by 'qascan init'. All values shown are the effective defaults
# for the selected environment; delete anything you do not need.

api:
  # Backend API root. Overridable at deploy time via ` + BaseURLEnvVar + `.
  base_url: ` + envPreset.BaseURL + `

  # Per-probe timeout. A timed-out probe becomes a failed result, it never
  # hangs the run.
  timeout_seconds: ` + strconv.Itoa(envPreset.TimeoutSeconds) + `

run:
  # Restrict the catalog to one subsystem (auth, clients, products,
  # invoices, payments, templates, notifications, storage, admin).
  # Empty runs the whole catalog.
  system: ""

  # Send real email/SMS instead of mock mode. Live mode consumes credits.
  live_notifications: ` + strconv.FormatBool(modePreset.LiveNotifications) + `

  # Skip post-run cleanup of entities created during the run.
  keep_data: ` + strconv.FormatBool(modePreset.KeepData) + `

  # Interactive progress bar (auto-disabled for JSON output and CI).
  show_progress: true

verify:
  # Build-time page dependency manifest and the frontend build output it
  # is verified against.
  manifest_path: ` + DefaultManifestPath + `
  dist_dir: ` + DefaultDistDir + `

  # Bounded concurrency for per-page checks.
  concurrency: ` + strconv.Itoa(DefaultVerifyConcurrency) + `

  # Gitignore-style patterns for build artifacts that should not count as
  # missing dependencies.
  ignore_file: ` + DefaultIgnoreFile + `

output:
  # text, json or digest
  format: text

  # Where exported report files are written.
  directory: .

session:
  # Override the token store location (default: ~/.qascan/session.json).
  store_path: ""
`
}

// GetMinimalConfigTemplate generates a config with essential options only
func GetMinimalConfigTemplate() string {
	return `# qascan configuration (minimal)
api:
  base_url: ` + DefaultBaseURL + `
run:
  live_notifications: false
verify:
  manifest_path: ` + DefaultManifestPath + `
  dist_dir: ` + DefaultDistDir + `
`
}
