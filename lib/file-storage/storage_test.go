package filestorage

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestMemoryStorage(t *testing.T) {
	storage := NewMemory()
	url, err := storage.UploadCandidateDoc(context.Background(), "c-1", "../../Ahmed_Resume.pdf", "application/pdf", strings.NewReader("resume"), 6)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(url, URLScheme+"candidates/c-1/"))
	require.True(t, strings.HasSuffix(url, "-Ahmed_Resume.pdf"))

	t.Run(`read back`, func(t *testing.T) {
		file, err := storage.GetFile(context.Background(), url)
		require.NoError(t, err)
		defer file.Close()
		data, err := io.ReadAll(file)
		require.NoError(t, err)
		require.Equal(t, "resume", string(data))
	})
	t.Run(`unknown key`, func(t *testing.T) {
		_, err := storage.GetFile(context.Background(), URLScheme+"candidates/c-1/missing")
		require.True(t, errors.Is(err, ErrFileNotFound))
	})
	t.Run(`external url`, func(t *testing.T) {
		_, err := storage.GetFile(context.Background(), "https://example.com/cv.pdf")
		require.Error(t, err)
	})
}
