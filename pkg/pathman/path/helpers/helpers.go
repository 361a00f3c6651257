package helpers

import (
	"io"
	"runtime"
)

const (
	minBufferSize = 512
	baseSize      = 4 * 1024
	maxBufferSize = 1 * 1024 * 1024
)

// GetOptimalBufferSize returns the buffer size to use when copying a file of fileSize bytes.
func GetOptimalBufferSize(fileSize int64) int {
	if fileSize < minBufferSize {
		return minBufferSize
	}

	// For small files, use file size as buffer size
	if fileSize < int64(baseSize) {
		return int(fileSize)
	}

	// Scale buffer size based on available CPU cores, capped at 1MB
	scaledSize := baseSize * runtime.GOMAXPROCS(0)
	if scaledSize > maxBufferSize {
		return maxBufferSize
	}

	return scaledSize
}

// CopyBuffered copies src to dst through a buffer sized for a payload of size bytes.
func CopyBuffered(dst io.Writer, src io.Reader, size int64) (int64, error) {
	buf := make([]byte, GetOptimalBufferSize(size))
	return io.CopyBuffer(dst, src, buf)
}
