package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/GlennDumoulin/food-orders/storefront-svc/internal/domain"
)

// FileBlobStore keeps uploaded images under Root and serves them below BaseURL.
type FileBlobStore struct {
	Root    string
	BaseURL string
}

func NewFileBlobStore(root, baseURL string) *FileBlobStore {
	return &FileBlobStore{Root: root, BaseURL: strings.TrimRight(baseURL, "/")}
}

func (s *FileBlobStore) Upload(ctx context.Context, blobPath string, body io.Reader) (domain.Thumbnail, error) {
	full, clean, err := s.resolve(blobPath)
	if err != nil {
		return domain.Thumbnail{}, err
	}
	if err := os.MkdirAll(filepath.Dir(full), 0755); err != nil {
		return domain.Thumbnail{}, domain.Collaborator("blob.upload", err)
	}

	dst, err := os.Create(full)
	if err != nil {
		return domain.Thumbnail{}, domain.Collaborator("blob.upload", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, body); err != nil {
		return domain.Thumbnail{}, domain.Collaborator("blob.upload", err)
	}
	return domain.Thumbnail{URL: s.BaseURL + "/uploads/" + clean, Path: clean}, nil
}

// Delete removes the blob. A blob that is already gone is not an error.
func (s *FileBlobStore) Delete(ctx context.Context, blobPath string) error {
	full, _, err := s.resolve(blobPath)
	if err != nil {
		return err
	}
	if err := os.Remove(full); err != nil && !errors.Is(err, os.ErrNotExist) {
		return domain.Collaborator("blob.delete", err)
	}
	return nil
}

func (s *FileBlobStore) resolve(blobPath string) (string, string, error) {
	clean := path.Clean("/" + blobPath)[1:]
	if clean == "" {
		return "", "", fmt.Errorf("%w: empty blob path", domain.ErrInvalidInput)
	}
	return filepath.Join(s.Root, filepath.FromSlash(clean)), clean, nil
}
