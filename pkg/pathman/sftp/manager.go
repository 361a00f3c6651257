package sftpmanager

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/pkg/sftp"
	"golang.org/x/crypto/ssh"
	"golang.org/x/crypto/ssh/knownhosts"

	"github.com/ImGajeed76/pathman/internal/util"
)

var (
	globalManager *Manager
	once          sync.Once
)

// Default configuration values
const (
	DefaultPort              = 22
	DefaultMaxIdleTime       = 5 * time.Minute
	DefaultConnectTimeout    = 10 * time.Second
	DefaultMaxRetries        = 3
	DefaultRetryDelay        = 1 * time.Second
	DefaultKeepAliveInterval = 30 * time.Second
	DefaultMaxConnections    = 10
	DefaultCleanupInterval   = 2 * time.Minute
)

// ConnectionDetails holds the information needed to establish an SFTP connection
type ConnectionDetails struct {
	Hostname string
	Port     int
	Username string
	Password string
	// KeyFile is a private key used instead of, or in addition to, Password.
	KeyFile string
	// KnownHostsFile enables host key verification. Without it any host key is accepted.
	KnownHostsFile    string
	ConnectTimeout    time.Duration
	MaxRetries        int
	RetryDelay        time.Duration
	KeepAliveInterval time.Duration
}

// String returns a unique string representation of the connection details
func (cd ConnectionDetails) String() string {
	return fmt.Sprintf("%s@%s:%d", cd.Username, cd.Hostname, cd.Port)
}

// applyDefaults sets default values for unspecified fields
func (cd *ConnectionDetails) applyDefaults() {
	if cd.Port == 0 {
		cd.Port = DefaultPort
	}
	if cd.ConnectTimeout == 0 {
		cd.ConnectTimeout = DefaultConnectTimeout
	}
	if cd.MaxRetries == 0 {
		cd.MaxRetries = DefaultMaxRetries
	}
	if cd.RetryDelay == 0 {
		cd.RetryDelay = DefaultRetryDelay
	}
	if cd.KeepAliveInterval == 0 {
		cd.KeepAliveInterval = DefaultKeepAliveInterval
	}
}

// clientConfig builds the ssh client configuration for the details.
func (cd ConnectionDetails) clientConfig() (*ssh.ClientConfig, error) {
	var auth []ssh.AuthMethod

	if cd.KeyFile != "" {
		key, err := os.ReadFile(cd.KeyFile)
		if err != nil {
			return nil, fmt.Errorf("read key file: %w", err)
		}
		signer, err := ssh.ParsePrivateKey(key)
		if err != nil {
			return nil, fmt.Errorf("parse key file: %w", err)
		}
		auth = append(auth, ssh.PublicKeys(signer))
	}
	if cd.Password != "" {
		auth = append(auth, ssh.Password(cd.Password))
	}
	if len(auth) == 0 {
		return nil, fmt.Errorf("no authentication method for %s", cd)
	}

	hostKeyCallback := ssh.InsecureIgnoreHostKey()
	if cd.KnownHostsFile != "" {
		cb, err := knownhosts.New(cd.KnownHostsFile)
		if err != nil {
			return nil, fmt.Errorf("load known hosts: %w", err)
		}
		hostKeyCallback = cb
	}

	return &ssh.ClientConfig{
		User:            cd.Username,
		Auth:            auth,
		HostKeyCallback: hostKeyCallback,
		Timeout:         cd.ConnectTimeout,
	}, nil
}

// clientInfo holds the SFTP client and its last used timestamp
type clientInfo struct {
	client    *sftp.Client
	sshClient *ssh.Client
	lastUsed  time.Time
}

// ManagerConfig holds the configuration for the SFTP manager
type ManagerConfig struct {
	MaxIdleTime     time.Duration
	MaxConnections  int
	CleanupInterval time.Duration
}

// Manager pools SFTP clients by connection details and closes idle ones.
type Manager struct {
	clients map[string]*clientInfo
	mu      sync.RWMutex
	config  ManagerConfig
	done    chan struct{}
	closed  sync.Once
	log     util.Logger
}

// NewManager creates a new Manager with the given configuration
func NewManager(config ManagerConfig) *Manager {
	if config.MaxIdleTime == 0 {
		config.MaxIdleTime = DefaultMaxIdleTime
	}
	if config.MaxConnections == 0 {
		config.MaxConnections = DefaultMaxConnections
	}
	if config.CleanupInterval == 0 {
		config.CleanupInterval = DefaultCleanupInterval
	}

	m := &Manager{
		clients: make(map[string]*clientInfo),
		config:  config,
		done:    make(chan struct{}),
		log:     util.GetLogger("sftpmanager"),
	}
	go m.cleanup()
	return m
}

// GetGlobalManager returns the global SFTP manager instance, creating it if needed
func GetGlobalManager() *Manager {
	once.Do(func() {
		globalManager = NewManager(ManagerConfig{})
	})
	return globalManager
}

// GetClient is a convenience function that uses the global manager
func GetClient(ctx context.Context, details ConnectionDetails) (*sftp.Client, error) {
	return GetGlobalManager().GetClient(ctx, details)
}

// GetClient returns a pooled SFTP client for the given connection details, dialing a
// new one when none is cached or the cached one is dead.
func (m *Manager) GetClient(ctx context.Context, details ConnectionDetails) (*sftp.Client, error) {
	details.applyDefaults()
	key := details.String()

	if client, ok := m.getExistingClient(key); ok {
		return client, nil
	}

	m.mu.RLock()
	full := len(m.clients) >= m.config.MaxConnections
	m.mu.RUnlock()
	if full {
		return nil, fmt.Errorf("connection pool limit reached (%d)", m.config.MaxConnections)
	}

	var err error
	for attempt := 0; attempt <= details.MaxRetries; attempt++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		var client *sftp.Client
		if client, err = m.createNewClient(details); err == nil {
			return client, nil
		}
		m.log.Debug().Err(err).Str("conn", key).Int("attempt", attempt+1).Msg("sftp dial failed")

		if attempt < details.MaxRetries {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(details.RetryDelay):
			}
		}
	}
	return nil, fmt.Errorf("failed to create client after %d attempts: %w", details.MaxRetries+1, err)
}

func (m *Manager) getExistingClient(key string) (*sftp.Client, bool) {
	m.mu.Lock()
	info, exists := m.clients[key]
	if exists {
		info.lastUsed = time.Now()
	}
	m.mu.Unlock()

	if !exists {
		return nil, false
	}

	// Test if connection is still alive
	if _, err := info.client.Getwd(); err == nil {
		return info.client, true
	}

	m.mu.Lock()
	delete(m.clients, key)
	m.mu.Unlock()
	info.close()
	return nil, false
}

func (m *Manager) createNewClient(details ConnectionDetails) (*sftp.Client, error) {
	sshConfig, err := details.clientConfig()
	if err != nil {
		return nil, err
	}

	sshClient, err := ssh.Dial("tcp", fmt.Sprintf("%s:%d", details.Hostname, details.Port), sshConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to dial SSH: %w", err)
	}

	if details.KeepAliveInterval > 0 {
		go m.keepAlive(sshClient, details.KeepAliveInterval)
	}

	sftpClient, err := sftp.NewClient(sshClient)
	if err != nil {
		sshClient.Close()
		return nil, fmt.Errorf("failed to create SFTP client: %w", err)
	}

	m.Add(details.String(), sftpClient, sshClient)
	return sftpClient, nil
}

// Add registers an already connected client under key. sshClient may be nil for
// clients that run over a custom transport.
func (m *Manager) Add(key string, client *sftp.Client, sshClient *ssh.Client) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.clients[key] = &clientInfo{
		client:    client,
		sshClient: sshClient,
		lastUsed:  time.Now(),
	}
}

func (m *Manager) keepAlive(client *ssh.Client, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if _, _, err := client.SendRequest("keepalive@openssh.com", true, nil); err != nil {
				return
			}
		case <-m.done:
			return
		}
	}
}

// cleanup periodically checks for and removes idle connections
func (m *Manager) cleanup() {
	ticker := time.NewTicker(m.config.CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			m.evictIdle(time.Now())
		case <-m.done:
			return
		}
	}
}

func (m *Manager) evictIdle(now time.Time) {
	var idle []*clientInfo

	m.mu.Lock()
	for key, info := range m.clients {
		if now.Sub(info.lastUsed) > m.config.MaxIdleTime {
			idle = append(idle, info)
			delete(m.clients, key)
			m.log.Debug().Str("conn", key).Msg("closing idle sftp client")
		}
	}
	m.mu.Unlock()

	// closing waits on the network, so it happens outside the lock
	for _, info := range idle {
		info.close()
	}
}

// Close closes all connections and stops the cleanup goroutine
func (m *Manager) Close() {
	m.closed.Do(func() { close(m.done) })

	m.mu.Lock()
	clients := m.clients
	m.clients = make(map[string]*clientInfo)
	m.mu.Unlock()

	for _, info := range clients {
		info.close()
	}
}

// Stats returns the last use time of every pooled connection
func (m *Manager) Stats() map[string]time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()

	stats := make(map[string]time.Time, len(m.clients))
	for key, info := range m.clients {
		stats[key] = info.lastUsed
	}
	return stats
}

func (ci *clientInfo) close() {
	ci.client.Close()
	if ci.sshClient != nil {
		ci.sshClient.Close()
	}
}
