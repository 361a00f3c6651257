package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ImGajeed76/pathman/internal/util"
	sftpmanager "github.com/ImGajeed76/pathman/pkg/pathman/sftp"
)

// Backend names accepted in the settings file.
const (
	BackendLocal  = "local"
	BackendMemory = "memory"
	BackendSFTP   = "sftp"
)

const DefaultLogLevel = "warn"

// Settings holds the values a pathman run is configured with.
type Settings struct {
	BaseURL  string // Public URL the base path is served under
	BasePath string // Filesystem directory that BaseURL maps to
	Backend  string // One of BackendLocal, BackendMemory, BackendSFTP (Default local)
	LogLevel string // trace, debug, info, warn or error (Default warn)
	SFTP     SFTPSettings
}

type SFTPSettings struct {
	Host           string
	Port           int // (Default 22)
	User           string
	KeyFile        string // Private key used instead of a password when set
	KnownHostsFile string // Host keys are not verified when empty
}

// ConnectionDetails converts the settings into what the SFTP client manager dials with.
// The password, if any, comes from the Store.
func (s SFTPSettings) ConnectionDetails(password string) sftpmanager.ConnectionDetails {
	return sftpmanager.ConnectionDetails{
		Hostname:       s.Host,
		Port:           s.Port,
		Username:       s.User,
		Password:       password,
		KeyFile:        s.KeyFile,
		KnownHostsFile: s.KnownHostsFile,
	}
}

// SettingsOverride uses pointer fields to distinguish between unset and zero values
// when loading a partial settings file. See [Settings] for field descriptions.
type SettingsOverride struct {
	BaseURL  *string               `yaml:"base_url,omitempty"`
	BasePath *string               `yaml:"base_path,omitempty"`
	Backend  *string               `yaml:"backend,omitempty"`
	LogLevel *string               `yaml:"log_level,omitempty"`
	SFTP     *SFTPSettingsOverride `yaml:"sftp,omitempty"`
}

type SFTPSettingsOverride struct {
	Host           *string `yaml:"host,omitempty"`
	Port           *int    `yaml:"port,omitempty"`
	User           *string `yaml:"user,omitempty"`
	KeyFile        *string `yaml:"key_file,omitempty"`
	KnownHostsFile *string `yaml:"known_hosts,omitempty"`
}

func DefaultSettings() *Settings {
	return &Settings{
		Backend:  BackendLocal,
		LogLevel: DefaultLogLevel,
		SFTP: SFTPSettings{
			Port: sftpmanager.DefaultPort,
		},
	}
}

// Merge applies non-nil values from override onto s.
func (s *Settings) Merge(override *SettingsOverride) {
	if override == nil {
		return
	}
	setIf(&s.BaseURL, override.BaseURL)
	setIf(&s.BasePath, override.BasePath)
	setIf(&s.Backend, override.Backend)
	setIf(&s.LogLevel, override.LogLevel)

	if o := override.SFTP; o != nil {
		setIf(&s.SFTP.Host, o.Host)
		setIf(&s.SFTP.Port, o.Port)
		setIf(&s.SFTP.User, o.User)
		setIf(&s.SFTP.KeyFile, o.KeyFile)
		setIf(&s.SFTP.KnownHostsFile, o.KnownHostsFile)
	}
}

// Validate reports settings that cannot produce a working backend.
func (s *Settings) Validate() error {
	switch s.Backend {
	case BackendLocal, BackendMemory:
	case BackendSFTP:
		if s.SFTP.Host == "" || s.SFTP.User == "" {
			return fmt.Errorf("sftp backend requires sftp.host and sftp.user")
		}
	default:
		return fmt.Errorf("unknown backend %q", s.Backend)
	}
	return nil
}

// Level maps LogLevel to the logger's level.
func (s *Settings) Level() util.LogLevel {
	return util.ParseLogLevel(s.LogLevel)
}

// LoadSettingsOverrideFile reads a YAML settings file without merging it.
func LoadSettingsOverrideFile(path string) (*SettingsOverride, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var override SettingsOverride
	if err := yaml.Unmarshal(data, &override); err != nil {
		return nil, fmt.Errorf("failed to unmarshal settings file: %w", err)
	}
	return &override, nil
}

// LoadSettings merges the file at path over the defaults. An empty path yields the
// defaults.
func LoadSettings(path string) (*Settings, error) {
	settings := DefaultSettings()
	if path == "" {
		return settings, nil
	}

	override, err := LoadSettingsOverrideFile(path)
	if err != nil {
		return nil, err
	}
	settings.Merge(override)
	return settings, nil
}

func setIf[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}
