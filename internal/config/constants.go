package config

// File and directory name constants used throughout forgekit.
const (
	// ConfigDir is the subdirectory name under $XDG_CONFIG_HOME
	ConfigDir = "forgekit"

	// ConfigFile is the user configuration filename inside ConfigDir
	ConfigFile = "config.yaml"

	// MarkerFile is the per-project marker written by init
	MarkerFile = ".forgekit"

	// ClaudeDirName is the agent directory inside a project
	ClaudeDirName = ".claude"

	// SkillsDirName is the standard directory name for skills
	SkillsDirName = "skills"

	// CommandsDirName is the standard directory name for commands
	CommandsDirName = "commands"

	// RootEnv overrides install root discovery
	RootEnv = "FORGEKIT_ROOT"

	// DefaultGit is the version-control executable used when none is configured
	DefaultGit = "git"
)
