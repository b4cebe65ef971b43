package filestorage

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/pkg/errors"
)

// URLScheme marks document urls that point into our own storage.
const URLScheme = "storage://"

type Provider interface {
	UploadCandidateDoc(ctx context.Context, candidateID, fileName, contentType string, body io.Reader, size int64) (url string, err error)
	GetFile(ctx context.Context, url string) (io.ReadCloser, error)
}

func NewHandler(s3client *minio.Client, bucketName string) Provider {
	return &impl{
		s3client:   s3client,
		bucketName: bucketName,
	}
}

type impl struct {
	s3client   *minio.Client
	bucketName string
}

func (i impl) UploadCandidateDoc(ctx context.Context, candidateID, fileName, contentType string, body io.Reader, size int64) (string, error) {
	key := candidateDocKey(candidateID, fileName)
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	_, err := i.s3client.PutObject(ctx, i.bucketName, key, body, size, minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return "", errors.Wrap(err, "error uploading file to s3")
	}
	return URLScheme + key, nil
}

func (i impl) GetFile(ctx context.Context, url string) (io.ReadCloser, error) {
	key, ok := KeyFromURL(url)
	if !ok {
		return nil, errors.Errorf("not a storage url: %s", url)
	}
	obj, err := i.s3client.GetObject(ctx, i.bucketName, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, errors.Wrap(err, "error getting file from s3")
	}
	if _, err = obj.Stat(); err != nil {
		obj.Close()
		if minio.ToErrorResponse(err).Code == "NoSuchKey" {
			return nil, ErrFileNotFound
		}
		return nil, errors.Wrap(err, "error getting file from s3")
	}
	return obj, nil
}

var ErrFileNotFound = errors.New("file not found")

func KeyFromURL(url string) (string, bool) {
	if !strings.HasPrefix(url, URLScheme) {
		return "", false
	}
	return strings.TrimPrefix(url, URLScheme), true
}

func candidateDocKey(candidateID, fileName string) string {
	name := path.Base(strings.ReplaceAll(fileName, "\\", "/"))
	if name == "." || name == "/" || name == "" {
		name = "file"
	}
	return fmt.Sprintf("candidates/%s/%s-%s", candidateID, uuid.NewString(), name)
}
