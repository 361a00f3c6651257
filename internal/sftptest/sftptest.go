// Package sftptest serves an in-memory SFTP filesystem over a pipe pair.
package sftptest

import (
	"io"
	"sync"
	"testing"

	"github.com/pkg/sftp"
	"github.com/stretchr/testify/require"
)

// Pipe is one client/server pair. Either side can be closed first: closing the
// client ends Serve, and Shutdown also works when the client is still open.
type Pipe struct {
	Client *sftp.Client
	server *sftp.RequestServer

	clientWrite *io.PipeWriter
	serverWrite *io.PipeWriter
	hold        sync.RWMutex
}

// NewPipe starts a server on sftp.InMemHandler and connects a client to it.
func NewPipe() (*Pipe, error) {
	clientRead, serverWrite := io.Pipe()
	serverRead, clientWrite := io.Pipe()

	p := &Pipe{
		server: sftp.NewRequestServer(struct {
			io.Reader
			io.WriteCloser
		}{serverRead, serverWrite}, sftp.InMemHandler()),
		clientWrite: clientWrite,
		serverWrite: serverWrite,
	}
	go func() {
		// Serve leaves its write end open on EOF, which would keep Client.Close
		// waiting for a reply that never comes.
		_ = p.server.Serve()
		p.hold.RLock()
		_ = serverWrite.Close()
		p.hold.RUnlock()
	}()

	client, err := sftp.NewClientPipe(clientRead, clientWrite)
	if err != nil {
		p.Shutdown()
		return nil, err
	}
	p.Client = client
	return p, nil
}

// Stall keeps the server from hanging up after the client closed, so a
// Client.Close blocks until release is called.
func (p *Pipe) Stall() (release func()) {
	p.hold.Lock()
	return p.hold.Unlock
}

// Shutdown tears the pair down. It is safe to call after the client was
// already closed elsewhere.
func (p *Pipe) Shutdown() {
	_ = p.clientWrite.Close()
	_ = p.serverWrite.Close()
	_ = p.server.Close()
	if p.Client != nil {
		_ = p.Client.Close()
	}
}

// NewClient returns a connected client that is torn down with the test.
func NewClient(t testing.TB) *sftp.Client {
	t.Helper()

	p, err := NewPipe()
	require.NoError(t, err)
	t.Cleanup(p.Shutdown)
	return p.Client
}
