package handler

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubArchiveBrowser struct {
	objects   []string
	url       string
	err       error
	gotPrefix string
	gotObject string
}

func (s *stubArchiveBrowser) ListArtifacts(ctx context.Context, prefix string) ([]string, error) {
	s.gotPrefix = prefix
	if s.err != nil {
		return nil, s.err
	}
	return s.objects, nil
}

func (s *stubArchiveBrowser) ArtifactURL(ctx context.Context, objectName string, expiry time.Duration) (string, error) {
	s.gotObject = objectName
	if s.err != nil {
		return "", s.err
	}
	return s.url, nil
}

func TestArchiveList(t *testing.T) {
	store := &stubArchiveBrowser{objects: []string{
		"uploads/2024-03-01/abc.mp3",
		"uploads/2024-03-02/def.txt",
	}}
	ac := NewArchiveController(store, nil)

	e := newEcho()
	req := httptest.NewRequest(http.MethodGet, "/v1/archive/artifacts?prefix=uploads/2024-03-01/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, ac.List(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "uploads/2024-03-01/", store.gotPrefix)
	assert.Contains(t, rec.Body.String(), "uploads/2024-03-01/abc.mp3")
	assert.Contains(t, rec.Body.String(), `"count":2`)
}

func TestArchiveList_EmptyBucket(t *testing.T) {
	ac := NewArchiveController(&stubArchiveBrowser{}, nil)

	e := newEcho()
	req := httptest.NewRequest(http.MethodGet, "/v1/archive/artifacts", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, ac.List(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"objects":[]`)
}

func TestArchiveList_StorageError(t *testing.T) {
	ac := NewArchiveController(&stubArchiveBrowser{err: fmt.Errorf("bucket gone")}, nil)

	e := newEcho()
	req := httptest.NewRequest(http.MethodGet, "/v1/archive/artifacts", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, ac.List(c))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestArchiveDownloadURL(t *testing.T) {
	store := &stubArchiveBrowser{url: "https://minio.local/presigned"}
	ac := NewArchiveController(store, nil)

	e := newEcho()
	req := httptest.NewRequest(http.MethodGet, "/v1/archive/artifacts/url?object=uploads/2024-03-01/abc.mp3", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, ac.DownloadURL(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "uploads/2024-03-01/abc.mp3", store.gotObject)
	assert.Contains(t, rec.Body.String(), "https://minio.local/presigned")
}

func TestArchiveDownloadURL_MissingObject(t *testing.T) {
	ac := NewArchiveController(&stubArchiveBrowser{}, nil)

	e := newEcho()
	req := httptest.NewRequest(http.MethodGet, "/v1/archive/artifacts/url", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, ac.DownloadURL(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRouter_NoArchiveRoutesWhenDisabled(t *testing.T) {
	cfg := testConfig(t)
	rt := NewRouter(cfg, NewMinutesController(&stubService{}, nil, cfg, nil), nil, nil)

	e := newEcho()
	rt.Setup(e)

	req := httptest.NewRequest(http.MethodGet, "/v1/archive/artifacts", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRouter_ArchiveRoutesRegistered(t *testing.T) {
	cfg := testConfig(t)
	ac := NewArchiveController(&stubArchiveBrowser{objects: []string{"uploads/a.txt"}}, nil)
	rt := NewRouter(cfg, NewMinutesController(&stubService{}, nil, cfg, nil), ac, nil)

	e := newEcho()
	rt.Setup(e)

	req := httptest.NewRequest(http.MethodGet, "/v1/archive/artifacts", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "uploads/a.txt")
}
