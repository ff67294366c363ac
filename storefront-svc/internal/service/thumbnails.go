package service

import (
	"context"
	"errors"
	"io"
	"path"
	"strings"

	"github.com/GlennDumoulin/food-orders/storefront-svc/internal/domain"

	"go.uber.org/zap"
)

// BlobPath builds "<folder>/<subfolder>/<file>" with spaces in the subfolder replaced by underscores.
func BlobPath(folder, subfolder, filename string) string {
	return path.Join(folder, strings.ReplaceAll(subfolder, " ", "_"), path.Base(filename))
}

// replaceThumbnail uploads body to blobPath and hands the result to persist. The previous
// image is removed only after persist succeeded; when persist fails the new upload is removed
// and the record keeps pointing at the old image.
func replaceThumbnail(ctx context.Context, blobs BlobStore, logger *zap.Logger, previous domain.Thumbnail, blobPath string, body io.Reader, persist func(domain.Thumbnail) error) (domain.Thumbnail, error) {
	stored, err := blobs.Upload(ctx, blobPath, body)
	if err != nil {
		return domain.Thumbnail{}, err
	}
	if err := persist(stored); err != nil {
		if stored.Path != previous.Path {
			removeBlob(ctx, blobs, logger, stored.Path, "unused upload left behind")
		}
		return domain.Thumbnail{}, err
	}
	if previous.Path != "" && previous.Path != stored.Path {
		removeBlob(ctx, blobs, logger, previous.Path, "replaced image left behind")
	}
	return stored, nil
}

// removeBlob deletes a file nothing references anymore. Failures only leak storage and are logged.
func removeBlob(ctx context.Context, blobs BlobStore, logger *zap.Logger, blobPath, msg string) {
	if blobPath == "" {
		return
	}
	if err := blobs.Delete(ctx, blobPath); err != nil && !errors.Is(err, domain.ErrNotFound) {
		logger.Warn(msg, zap.String("path", blobPath), zap.Error(err))
	}
}
