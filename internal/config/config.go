package config

// Config represents the full application configuration.
type Config struct {
	Commit        CommitConfig        `yaml:"commit"`
	Preview       PreviewConfig       `yaml:"preview"`
	Git           GitConfig           `yaml:"git"`
	Output        OutputConfig        `yaml:"output"`
	Store         StoreConfig         `yaml:"store"`
	Observability ObservabilityConfig `yaml:"observability"`
}

// CommitConfig bounds the recommended changed-line count per commit.
// The band is configuration only; there is deliberately no runtime flag
// for it, so a team convention cannot be bypassed ad hoc.
type CommitConfig struct {
	MinLines int `yaml:"minLines"`
	MaxLines int `yaml:"maxLines"`
}

// PreviewConfig controls how much of the parsed diff is shown up front.
type PreviewConfig struct {
	MaxHunks int `yaml:"maxHunks"` // Hunks previewed before staging
	MaxLines int `yaml:"maxLines"` // Body lines per hunk preview
}

// GitConfig locates the repository and names the push remote.
type GitConfig struct {
	RepositoryDir string `yaml:"repositoryDir"`
	Remote        string `yaml:"remote"`
}

// OutputConfig configures the optional markdown session report.
// An empty directory disables report writing.
type OutputConfig struct {
	Directory string `yaml:"directory"`
}

// StoreConfig configures the commit ledger.
type StoreConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"`
}

// ObservabilityConfig configures logging.
type ObservabilityConfig struct {
	Logging LoggingConfig `yaml:"logging"`
}

// LoggingConfig configures the structured logger.
type LoggingConfig struct {
	Enabled bool   `yaml:"enabled"`
	Level   string `yaml:"level"`  // debug, info, warn, error
	Format  string `yaml:"format"` // json, human
}
