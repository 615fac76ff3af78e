package domain

// Config is the cictl configuration declared in the YAML config file.
type Config struct {
	ConfigFormatVersion string `yaml:"config_format_version"`

	// Provider names the CI system the variable table targets. Only
	// "github" ships a built-in table; Variables can override or replace
	// individual entries for other providers.
	Provider string `yaml:"provider"`

	// ReleaseBranch is the single branch or tag eligible to deploy.
	ReleaseBranch string `yaml:"release_branch"`

	// DeployStage is the pipeline stage during which deploys may happen.
	DeployStage string `yaml:"deploy_stage"`

	Execution ExecutionSettings `yaml:"execution"`
	History   HistorySettings   `yaml:"history"`

	// Variables overrides entries of the provider variable table, keyed by
	// table slot name (event, ref, head_ref, stage, ...).
	Variables map[string]string `yaml:"variables,omitempty"`

	// Stages maps a pipeline stage name to the commands it runs.
	Stages map[string][]StageCommand `yaml:"stages,omitempty"`
}

// ExecutionSettings controls how commands are spawned.
type ExecutionSettings struct {
	// Shell is the shell binary used for `sh -c` style execution;
	// "auto" resolves $SHELL and falls back to /bin/sh.
	Shell string `yaml:"shell"`
}

// HistorySettings controls run-history persistence.
type HistorySettings struct {
	Enabled bool `yaml:"enabled"`
}

// StageCommand is one command of a configured pipeline stage.
type StageCommand struct {
	Description string `yaml:"description"`
	Command     string `yaml:"command"`
	Retry       int    `yaml:"retry"`
	Sleep       int    `yaml:"sleep"`
	// Secret masks the command in banners, logs and history.
	Secret bool `yaml:"secret,omitempty"`
}

// DeployBuildStage returns the configured deploy stage, defaulting to the
// deploy entry point when unset or unrecognized.
func (c Config) DeployBuildStage() BuildStage {
	if stage := ParseBuildStage(c.DeployStage); stage != StageUnknown {
		return stage
	}
	return StageDeploy
}

// StageCommands returns the configured commands for a stage, or nil when
// the stage has none (an empty stage is a successful no-op).
func (c Config) StageCommands(stage BuildStage) []StageCommand {
	return c.Stages[string(stage)]
}

// Policy builds the retry policy for a stage command.
func (sc StageCommand) Policy() RetryPolicy {
	return RetryPolicy{MaxRetries: sc.Retry, SleepSeconds: sc.Sleep}.Normalize()
}
