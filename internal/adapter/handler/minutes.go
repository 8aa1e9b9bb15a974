package handler

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/minutes-generator/errors"
	dto "github.com/johnquangdev/minutes-generator/internal/adapter/dto/minutes"
	"github.com/johnquangdev/minutes-generator/internal/infrastructure/storage"
	minutesuse "github.com/johnquangdev/minutes-generator/internal/usecase/minutes"
	"github.com/johnquangdev/minutes-generator/pkg/config"
)

// MinutesController handles the minutes-generation endpoint
type MinutesController struct {
	svc     minutesuse.Service
	archive *storage.ArchiveStore
	cfg     *config.Config
	logger  *zap.Logger
}

// NewMinutesController creates a new minutes controller. archive may be nil
// when recording archival is disabled.
func NewMinutesController(svc minutesuse.Service, archive *storage.ArchiveStore, cfg *config.Config, logger *zap.Logger) *MinutesController {
	return &MinutesController{
		svc:     svc,
		archive: archive,
		cfg:     cfg,
		logger:  logger,
	}
}

// Generate accepts a multipart artifact upload and returns generated minutes
func (mc *MinutesController) Generate(c echo.Context) error {
	var req dto.GenerateMinutesRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(mc.logger, c, errors.ErrInvalidPayload())
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(mc.logger, c, errors.ErrInvalidArgument(err.Error()))
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return HandleError(mc.logger, c, errors.ErrInvalidArgument("missing file upload"))
	}

	maxBytes := int64(mc.cfg.Upload.MaxSizeMB) << 20
	if fileHeader.Size > maxBytes {
		return HandleError(mc.logger, c, errors.ErrInvalidArgument(
			fmt.Sprintf("file exceeds %dMB limit", mc.cfg.Upload.MaxSizeMB)))
	}

	localPath, err := mc.spoolUpload(fileHeader)
	if err != nil {
		return HandleError(mc.logger, c, errors.ErrInternal(err))
	}
	defer func() {
		if rmErr := os.Remove(localPath); rmErr != nil && !os.IsNotExist(rmErr) {
			if mc.logger != nil {
				mc.logger.Warn("failed to remove uploaded file",
					zap.String("path", localPath),
					zap.Error(rmErr))
			}
		}
	}()

	participants := minutesuse.ParseParticipants(req.Participants)
	opts := minutesuse.SummaryOptions{MaxLen: req.MaxLen, MinLen: req.MinLen}

	result, err := mc.svc.GenerateMinutes(c.Request().Context(), localPath, participants, opts)
	if err != nil {
		return HandleError(mc.logger, c, err)
	}

	resp := dto.FromResult(result)

	// Archival is best effort: a storage failure never fails the request.
	if mc.archive != nil {
		key, archErr := mc.archive.ArchiveArtifact(c.Request().Context(), localPath)
		if archErr != nil {
			if mc.logger != nil {
				mc.logger.Warn("artifact archival failed",
					zap.String("filename", fileHeader.Filename),
					zap.Error(archErr))
			}
		} else {
			resp.ArchiveKey = key
		}
	}

	return HandleSuccess(mc.logger, c, resp)
}

// spoolUpload copies the multipart file to the temp dir, keeping the
// original extension so the pipeline can classify it.
func (mc *MinutesController) spoolUpload(fileHeader *multipart.FileHeader) (string, error) {
	src, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open upload: %w", err)
	}
	defer src.Close()

	if err := os.MkdirAll(mc.cfg.Upload.TempDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create temp dir: %w", err)
	}

	ext := filepath.Ext(fileHeader.Filename)
	localPath := filepath.Join(mc.cfg.Upload.TempDir, "upload-"+uuid.NewString()+ext)

	dst, err := os.Create(localPath)
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(localPath)
		return "", fmt.Errorf("failed to write temp file: %w", err)
	}

	return localPath, nil
}
