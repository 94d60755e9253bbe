package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Following the XDG base directory layout:
// User config: ~/.config/forgekit/config.yaml (or $XDG_CONFIG_HOME/forgekit/config.yaml)

// ErrRootNotFound is returned when no install root can be located
var ErrRootNotFound = errors.New("forgekit install root not found")

// Root sources, reported by status and doctor
const (
	SourceFlag       = "flag"
	SourceEnv        = "env"
	SourceConfig     = "config"
	SourceExecutable = "executable"
)

// FileConfig is the on-disk user configuration
type FileConfig struct {
	InstallPath string `yaml:"install_path,omitempty"`
	Git         string `yaml:"git,omitempty"`
	Strict      bool   `yaml:"strict,omitempty"`
	LogLevel    string `yaml:"log_level,omitempty"`
}

// Options carries the command-line inputs that influence Settings
type Options struct {
	Root       string // --root
	ProjectDir string // -C/--dir
	ConfigPath string // --config
	Strict     bool   // --strict
	Verbose    bool   // --verbose
}

// Settings is resolved once per invocation and passed to every command
type Settings struct {
	// InstallRoot is the absolute toolkit directory; empty when RootErr is set
	InstallRoot string
	// RootSource records which input produced InstallRoot
	RootSource string
	// RootErr is set when no usable install root could be resolved
	RootErr error

	// ProjectDir is the directory whose .claude links are managed
	ProjectDir string

	ConfigPath string
	GitBinary  string
	Strict     bool
	LogLevel   string
}

// DefaultConfigPath returns $XDG_CONFIG_HOME/forgekit/config.yaml
func DefaultConfigPath() (string, error) {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, ConfigDir, ConfigFile), nil
}

// LoadFile reads the user config. A missing file yields an empty config.
func LoadFile(path string) (*FileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &FileConfig{}, nil
		}
		return nil, err
	}

	var cfg FileConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &cfg, nil
}

// SaveFile writes the user config, creating its directory
func SaveFile(path string, cfg *FileConfig) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Resolve builds Settings from flags, environment, user config and the
// location of the running executable, in that order of precedence.
func Resolve(opts Options) (*Settings, error) {
	s := &Settings{
		GitBinary: DefaultGit,
		Strict:    opts.Strict,
		LogLevel:  "warn",
	}

	configPath := opts.ConfigPath
	if configPath == "" {
		p, err := DefaultConfigPath()
		if err == nil {
			configPath = p
		}
	}
	s.ConfigPath = configPath

	fileCfg := &FileConfig{}
	if configPath != "" {
		loaded, err := LoadFile(configPath)
		if err != nil {
			return nil, err
		}
		fileCfg = loaded
	}

	if fileCfg.Git != "" {
		s.GitBinary = fileCfg.Git
	}
	if fileCfg.Strict {
		s.Strict = true
	}
	if fileCfg.LogLevel != "" {
		s.LogLevel = fileCfg.LogLevel
	}
	if opts.Verbose {
		s.LogLevel = "debug"
	}

	projectDir := opts.ProjectDir
	if projectDir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("getting working directory: %w", err)
		}
		projectDir = cwd
	}
	abs, err := filepath.Abs(projectDir)
	if err != nil {
		return nil, fmt.Errorf("resolving project directory: %w", err)
	}
	s.ProjectDir = abs

	switch {
	case opts.Root != "":
		s.setExplicitRoot(opts.Root, SourceFlag)
	case os.Getenv(RootEnv) != "":
		s.setExplicitRoot(os.Getenv(RootEnv), SourceEnv)
	case fileCfg.InstallPath != "":
		s.setExplicitRoot(expandHome(fileCfg.InstallPath), SourceConfig)
	default:
		root, err := ExecutableRoot()
		if err != nil {
			s.RootErr = err
		} else {
			s.InstallRoot = root
			s.RootSource = SourceExecutable
		}
	}

	return s, nil
}

// RequireRoot returns the install root or the error that prevented resolving it
func (s *Settings) RequireRoot() (string, error) {
	if s.RootErr != nil {
		return "", s.RootErr
	}
	if s.InstallRoot == "" {
		return "", ErrRootNotFound
	}
	return s.InstallRoot, nil
}

func (s *Settings) setExplicitRoot(path, source string) {
	abs, err := filepath.Abs(path)
	if err != nil {
		s.RootErr = fmt.Errorf("resolving install root %s: %w", path, err)
		return
	}
	info, err := os.Stat(abs)
	if err != nil {
		s.RootErr = fmt.Errorf("install root %s (from %s): %w", abs, source, err)
		return
	}
	if !info.IsDir() {
		s.RootErr = fmt.Errorf("install root %s (from %s) is not a directory", abs, source)
		return
	}
	s.InstallRoot = abs
	s.RootSource = source
}

// ExecutableRoot walks up from the running binary's real location
func ExecutableRoot() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("locating executable: %w", err)
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return FindInstallRoot(filepath.Dir(exe))
}

// FindInstallRoot returns the first directory at or above start that
// contains both a skills and a commands directory.
func FindInstallRoot(start string) (string, error) {
	dir, err := filepath.Abs(start)
	if err != nil {
		return "", err
	}

	for {
		if isDir(filepath.Join(dir, SkillsDirName)) && isDir(filepath.Join(dir, CommandsDirName)) {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break // reached filesystem root
		}
		dir = parent
	}

	return "", fmt.Errorf("%w above %s", ErrRootNotFound, start)
}

// ClaudeDir returns <project>/.claude
func ClaudeDir(projectDir string) string {
	return filepath.Join(projectDir, ClaudeDirName)
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

func expandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, strings.TrimPrefix(path, "~"))
	}
	return path
}
