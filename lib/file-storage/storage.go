package filestorage

import (
	"bytes"
	"context"
	"io"
	"sync"

	"github.com/pkg/errors"
)

// NewMemory keeps uploads in process. Used when S3 is switched off and in tests.
func NewMemory() Provider {
	return &memory{
		files: map[string][]byte{},
	}
}

type memory struct {
	mu    sync.RWMutex
	files map[string][]byte
}

func (m *memory) UploadCandidateDoc(_ context.Context, candidateID, fileName, _ string, body io.Reader, _ int64) (string, error) {
	data, err := io.ReadAll(body)
	if err != nil {
		return "", errors.Wrap(err, "error reading upload")
	}
	key := candidateDocKey(candidateID, fileName)
	m.mu.Lock()
	defer m.mu.Unlock()
	m.files[key] = data
	return URLScheme + key, nil
}

func (m *memory) GetFile(_ context.Context, url string) (io.ReadCloser, error) {
	key, ok := KeyFromURL(url)
	if !ok {
		return nil, errors.Errorf("not a storage url: %s", url)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	data, ok := m.files[key]
	if !ok {
		return nil, ErrFileNotFound
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}
