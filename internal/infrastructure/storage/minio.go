package storage

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/johnquangdev/minutes-generator/pkg/config"
)

// ArchiveStore keeps copies of uploaded meeting artifacts in MinIO. The
// bucket stays private; generated minutes are never written here.
type ArchiveStore struct {
	client *minio.Client
	bucket string
}

// NewArchiveStore creates the MinIO client and ensures the bucket exists.
func NewArchiveStore(cfg *config.StorageConfig) (*ArchiveStore, error) {
	minioClient, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create MinIO client: %w", err)
	}

	store := &ArchiveStore{
		client: minioClient,
		bucket: cfg.BucketName,
	}

	if err := store.ensureBucket(context.Background()); err != nil {
		return nil, fmt.Errorf("failed to initialize bucket: %w", err)
	}

	return store, nil
}

func (s *ArchiveStore) ensureBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket existence: %w", err)
	}

	if !exists {
		if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{}); err != nil {
			return fmt.Errorf("failed to create bucket: %w", err)
		}
	}

	return nil
}

// ArchiveArtifact uploads a local artifact file and returns the object name.
// Objects are keyed by upload date so old recordings are easy to expire.
func (s *ArchiveStore) ArchiveArtifact(ctx context.Context, localPath string) (string, error) {
	ext := filepath.Ext(localPath)
	objectName := fmt.Sprintf("uploads/%s/%s%s",
		time.Now().UTC().Format("2006-01-02"), uuid.NewString(), ext)

	_, err := s.client.FPutObject(ctx, s.bucket, objectName, localPath, minio.PutObjectOptions{
		ContentType: contentTypeForExt(ext),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload artifact: %w", err)
	}

	return objectName, nil
}

// ArtifactURL returns a presigned download URL for an archived artifact.
func (s *ArchiveStore) ArtifactURL(ctx context.Context, objectName string, expiry time.Duration) (string, error) {
	url, err := s.client.PresignedGetObject(ctx, s.bucket, objectName, expiry, nil)
	if err != nil {
		return "", fmt.Errorf("failed to generate presigned URL: %w", err)
	}
	return url.String(), nil
}

// ListArtifacts lists archived objects under a prefix.
func (s *ArchiveStore) ListArtifacts(ctx context.Context, prefix string) ([]string, error) {
	var objects []string

	objectCh := s.client.ListObjects(ctx, s.bucket, minio.ListObjectsOptions{
		Prefix:    prefix,
		Recursive: true,
	})

	for object := range objectCh {
		if object.Err != nil {
			return nil, fmt.Errorf("error listing objects: %w", object.Err)
		}
		objects = append(objects, object.Key)
	}

	return objects, nil
}

func contentTypeForExt(ext string) string {
	switch ext {
	case ".txt":
		return "text/plain"
	case ".wav":
		return "audio/wav"
	case ".mp3":
		return "audio/mpeg"
	default:
		return "application/octet-stream"
	}
}
