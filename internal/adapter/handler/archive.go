package handler

import (
	"context"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/minutes-generator/errors"
)

// archiveURLExpiry bounds how long a presigned download link stays valid.
const archiveURLExpiry = 1 * time.Hour

// ArchiveBrowser is the read side of the artifact archive.
type ArchiveBrowser interface {
	ListArtifacts(ctx context.Context, prefix string) ([]string, error)
	ArtifactURL(ctx context.Context, objectName string, expiry time.Duration) (string, error)
}

// ArchiveController serves browsing of archived meeting artifacts
type ArchiveController struct {
	store  ArchiveBrowser
	logger *zap.Logger
}

// NewArchiveController creates a new archive controller
func NewArchiveController(store ArchiveBrowser, logger *zap.Logger) *ArchiveController {
	return &ArchiveController{store: store, logger: logger}
}

// List returns archived artifact object names, optionally filtered by prefix
func (ac *ArchiveController) List(c echo.Context) error {
	prefix := c.QueryParam("prefix")

	objects, err := ac.store.ListArtifacts(c.Request().Context(), prefix)
	if err != nil {
		return HandleError(ac.logger, c, errors.ErrStorageFailed("list", err))
	}
	if objects == nil {
		objects = []string{}
	}

	return HandleSuccess(ac.logger, c, map[string]interface{}{
		"objects": objects,
		"count":   len(objects),
	})
}

// DownloadURL returns a presigned URL for one archived artifact
func (ac *ArchiveController) DownloadURL(c echo.Context) error {
	objectName := c.QueryParam("object")
	if objectName == "" {
		return HandleError(ac.logger, c, errors.ErrInvalidArgument("missing object query parameter"))
	}

	url, err := ac.store.ArtifactURL(c.Request().Context(), objectName, archiveURLExpiry)
	if err != nil {
		return HandleError(ac.logger, c, errors.ErrStorageFailed("presign", err))
	}

	return HandleSuccess(ac.logger, c, map[string]interface{}{
		"object": objectName,
		"url":    url,
	})
}
