package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"logsim/internal/devices"
)

const defaultMaxDiagnostics = 100

// Config mirrors logsim.toml.
type Config struct {
	Project ProjectConfig `toml:"project"`
	Check   CheckConfig   `toml:"check"`
	Devices DevicesConfig `toml:"devices"`
}

type ProjectConfig struct {
	Name string `toml:"name"`
}

type CheckConfig struct {
	// Include lists directories, relative to the manifest, scanned by
	// `logsim check` when no path is given.
	Include        []string `toml:"include"`
	MaxDiagnostics int      `toml:"max_diagnostics"`
}

type DevicesConfig struct {
	MaxInputs int `toml:"max_inputs"`
}

// Manifest is a loaded logsim.toml.
type Manifest struct {
	Path   string
	Root   string
	Config Config
}

// Default returns the configuration written by `logsim init`.
func Default(name string) Config {
	return Config{
		Project: ProjectConfig{Name: name},
		Check: CheckConfig{
			Include:        []string{"."},
			MaxDiagnostics: defaultMaxDiagnostics,
		},
		Devices: DevicesConfig{MaxInputs: devices.DefaultMaxInputs},
	}
}

// Load decodes the manifest at path. Missing optional keys take their
// default values.
func Load(path string) (*Manifest, error) {
	var cfg Config
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if !meta.IsDefined("project") {
		return nil, fmt.Errorf("%s: missing [project]", path)
	}
	if !meta.IsDefined("project", "name") || strings.TrimSpace(cfg.Project.Name) == "" {
		return nil, fmt.Errorf("%s: missing [project].name", path)
	}
	if !meta.IsDefined("check", "include") {
		cfg.Check.Include = []string{"."}
	}
	if !meta.IsDefined("check", "max_diagnostics") {
		cfg.Check.MaxDiagnostics = defaultMaxDiagnostics
	} else if cfg.Check.MaxDiagnostics < 0 {
		return nil, fmt.Errorf("%s: [check].max_diagnostics must be >= 0", path)
	}
	if !meta.IsDefined("devices", "max_inputs") {
		cfg.Devices.MaxInputs = devices.DefaultMaxInputs
	} else if cfg.Devices.MaxInputs < 1 {
		return nil, fmt.Errorf("%s: [devices].max_inputs must be >= 1", path)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("%s: unknown key %q", path, undecoded[0].String())
	}
	return &Manifest{Path: path, Root: filepath.Dir(path), Config: cfg}, nil
}

// LoadFrom finds and loads the manifest above startDir.
func LoadFrom(startDir string) (*Manifest, bool, error) {
	path, ok, err := Find(startDir)
	if err != nil || !ok {
		return nil, ok, err
	}
	m, err := Load(path)
	if err != nil {
		return nil, true, err
	}
	return m, true, nil
}

// IncludeDirs resolves [check].include against the manifest directory.
func (m *Manifest) IncludeDirs() []string {
	out := make([]string, 0, len(m.Config.Check.Include))
	for _, dir := range m.Config.Check.Include {
		if filepath.IsAbs(dir) {
			out = append(out, dir)
			continue
		}
		out = append(out, filepath.Join(m.Root, filepath.FromSlash(dir)))
	}
	return out
}

// Write stores cfg as dir/logsim.toml. An existing manifest is kept.
func Write(dir string, cfg Config) (string, error) {
	path := filepath.Join(dir, ManifestName)
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return "", fmt.Errorf("%s already exists", path)
		}
		return "", err
	}
	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		_ = f.Close()
		return "", fmt.Errorf("%s: %w", path, err)
	}
	return path, f.Close()
}
