package config

import (
	"errors"
	"fmt"

	"github.com/zalando/go-keyring"
)

// Keys used by pathman in the Store.
const (
	KeySFTPPassword = "sftp-password"
	KeyBaseURL      = "base-url"
	KeyBasePath     = "base-path"
)

// Store keeps values in the system keyring, namespaced by service.
type Store struct {
	service string
}

// NewStore returns a Store for the given service name.
func NewStore(service string) (*Store, error) {
	if service == "" {
		return nil, fmt.Errorf("service name cannot be empty")
	}
	return &Store{service: service}, nil
}

func (s *Store) Set(key, value string) error {
	if key == "" {
		return fmt.Errorf("key cannot be empty")
	}
	return keyring.Set(s.service, key, value)
}

// Get returns the value for key, or "" if it is not set.
func (s *Store) Get(key string) string {
	value, _ := s.Lookup(key)
	return value
}

// Lookup returns the value for key and whether it was set.
func (s *Store) Lookup(key string) (string, bool) {
	if key == "" {
		return "", false
	}

	value, err := keyring.Get(s.service, key)
	if err != nil {
		return "", false
	}
	return value, true
}

// Delete removes key. Deleting a missing key is not an error.
func (s *Store) Delete(key string) error {
	if key == "" {
		return fmt.Errorf("key cannot be empty")
	}
	if err := keyring.Delete(s.service, key); err != nil && !errors.Is(err, keyring.ErrNotFound) {
		return err
	}
	return nil
}

// DeleteAll forgets every value of the service.
func (s *Store) DeleteAll() error {
	return keyring.DeleteAll(s.service)
}

// ApplyBasePair fills an unset base pair in settings from the remembered values.
func (s *Store) ApplyBasePair(settings *Settings) {
	if settings.BaseURL == "" {
		settings.BaseURL = s.Get(KeyBaseURL)
	}
	if settings.BasePath == "" {
		settings.BasePath = s.Get(KeyBasePath)
	}
}
