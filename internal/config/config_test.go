package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// makeRoot creates an install root with skills and commands directories
func makeRoot(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, SkillsDirName), 0755))
	require.NoError(t, os.MkdirAll(filepath.Join(root, CommandsDirName), 0755))
	return root
}

func TestFindInstallRoot(t *testing.T) {
	root := makeRoot(t)
	nested := filepath.Join(root, "bin", "linux")
	require.NoError(t, os.MkdirAll(nested, 0755))

	tests := []struct {
		name  string
		start string
	}{
		{"at root", root},
		{"one level down", filepath.Join(root, "bin")},
		{"two levels down", nested},
		{"inside skills", filepath.Join(root, SkillsDirName)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FindInstallRoot(tt.start)
			require.NoError(t, err)
			assert.Equal(t, root, got)
		})
	}
}

func TestFindInstallRoot_NotFound(t *testing.T) {
	dir := t.TempDir()
	// Only one of the two subtrees
	require.NoError(t, os.MkdirAll(filepath.Join(dir, SkillsDirName), 0755))

	_, err := FindInstallRoot(dir)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrRootNotFound))
}

func TestLoadFile_Missing(t *testing.T) {
	cfg, err := LoadFile(filepath.Join(t.TempDir(), "config.yaml"))
	require.NoError(t, err)
	assert.Equal(t, FileConfig{}, *cfg)
}

func TestSaveAndLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	want := &FileConfig{
		InstallPath: "/opt/forgekit",
		Git:         "/usr/local/bin/git",
		Strict:      true,
		LogLevel:    "debug",
	}

	require.NoError(t, SaveFile(path, want))

	got, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestLoadFile_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("install_path: [unterminated"), 0644))

	_, err := LoadFile(path)
	assert.Error(t, err)
}

func TestDefaultConfigPath_XDG(t *testing.T) {
	xdg := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)

	path, err := DefaultConfigPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(xdg, "forgekit", "config.yaml"), path)
}

func TestResolve_Precedence(t *testing.T) {
	flagRoot := makeRoot(t)
	envRoot := makeRoot(t)
	fileRoot := makeRoot(t)
	project := t.TempDir()

	configPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, SaveFile(configPath, &FileConfig{InstallPath: fileRoot, Git: "mygit"}))

	t.Run("flag wins", func(t *testing.T) {
		t.Setenv(RootEnv, envRoot)
		s, err := Resolve(Options{Root: flagRoot, ProjectDir: project, ConfigPath: configPath})
		require.NoError(t, err)
		assert.Equal(t, flagRoot, s.InstallRoot)
		assert.Equal(t, SourceFlag, s.RootSource)
		assert.Equal(t, "mygit", s.GitBinary)
	})

	t.Run("env over config", func(t *testing.T) {
		t.Setenv(RootEnv, envRoot)
		s, err := Resolve(Options{ProjectDir: project, ConfigPath: configPath})
		require.NoError(t, err)
		assert.Equal(t, envRoot, s.InstallRoot)
		assert.Equal(t, SourceEnv, s.RootSource)
	})

	t.Run("config file", func(t *testing.T) {
		t.Setenv(RootEnv, "")
		s, err := Resolve(Options{ProjectDir: project, ConfigPath: configPath})
		require.NoError(t, err)
		assert.Equal(t, fileRoot, s.InstallRoot)
		assert.Equal(t, SourceConfig, s.RootSource)
	})
}

func TestResolve_Defaults(t *testing.T) {
	root := makeRoot(t)
	project := t.TempDir()

	s, err := Resolve(Options{
		Root:       root,
		ProjectDir: project,
		ConfigPath: filepath.Join(t.TempDir(), "missing.yaml"),
	})
	require.NoError(t, err)

	assert.Equal(t, project, s.ProjectDir)
	assert.Equal(t, DefaultGit, s.GitBinary)
	assert.Equal(t, "warn", s.LogLevel)
	assert.False(t, s.Strict)

	got, err := s.RequireRoot()
	require.NoError(t, err)
	assert.Equal(t, root, got)
}

func TestResolve_VerboseAndStrict(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, SaveFile(configPath, &FileConfig{Strict: true, LogLevel: "info"}))

	s, err := Resolve(Options{Root: makeRoot(t), ProjectDir: t.TempDir(), ConfigPath: configPath})
	require.NoError(t, err)
	assert.True(t, s.Strict)
	assert.Equal(t, "info", s.LogLevel)

	s, err = Resolve(Options{Root: makeRoot(t), ProjectDir: t.TempDir(), ConfigPath: configPath, Verbose: true})
	require.NoError(t, err)
	assert.Equal(t, "debug", s.LogLevel)
}

func TestResolve_BadExplicitRoot(t *testing.T) {
	file := filepath.Join(t.TempDir(), "not-a-dir")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0644))

	tests := []struct {
		name string
		root string
	}{
		{"missing", filepath.Join(t.TempDir(), "nope")},
		{"regular file", file},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := Resolve(Options{
				Root:       tt.root,
				ProjectDir: t.TempDir(),
				ConfigPath: filepath.Join(t.TempDir(), "missing.yaml"),
			})
			require.NoError(t, err, "resolve itself should not fail")
			require.Error(t, s.RootErr)

			_, err = s.RequireRoot()
			assert.Error(t, err)
		})
	}
}

func TestResolve_InvalidConfigFails(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("strict: [oops"), 0644))

	_, err := Resolve(Options{ProjectDir: t.TempDir(), ConfigPath: configPath})
	assert.Error(t, err)
}

func TestExpandHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	assert.Equal(t, filepath.Join(home, "forgekit"), expandHome("~/forgekit"))
	assert.Equal(t, "/abs/path", expandHome("/abs/path"))
}
