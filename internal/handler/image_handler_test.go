package handler

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"faktor/internal/domain"
	"faktor/mocks"
)

func newImageRouter(svc *mocks.MockImageService) *gin.Engine {
	h := NewImageHandler(svc)
	r := gin.New()
	g := r.Group("/api/v1/images")
	g.PUT("/:kind", h.Upload)
	g.GET("/:kind", h.Get)
	g.DELETE("/:kind", h.Delete)
	return r
}

func multipartUpload(t *testing.T, r *gin.Engine, path string, content []byte) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", "logo.png")
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPut, path, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestImageHandler_Upload(t *testing.T) {
	svc := new(mocks.MockImageService)
	r := newImageRouter(svc)

	content := []byte("png bytes")
	svc.On("Upload", mock.Anything, domain.ImageLogo, content).Return(nil)

	w := multipartUpload(t, r, "/api/v1/images/logo", content)

	assert.Equal(t, http.StatusOK, w.Code)
	svc.AssertExpectations(t)
}

func TestImageHandler_Upload_MissingFile(t *testing.T) {
	svc := new(mocks.MockImageService)
	r := newImageRouter(svc)

	req := httptest.NewRequest(http.MethodPut, "/api/v1/images/logo", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "MISSING_FILE")
	svc.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything, mock.Anything)
}

func TestImageHandler_Upload_NotPNG(t *testing.T) {
	svc := new(mocks.MockImageService)
	r := newImageRouter(svc)

	content := []byte("not a png")
	svc.On("Upload", mock.Anything, domain.ImageSignature, content).Return(domain.ErrNotPNG)

	w := multipartUpload(t, r, "/api/v1/images/signature", content)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "NOT_PNG")
}

func TestImageHandler_Upload_TooLarge(t *testing.T) {
	svc := new(mocks.MockImageService)
	r := newImageRouter(svc)

	content := []byte("huge")
	svc.On("Upload", mock.Anything, domain.ImageLogo, content).Return(domain.ErrImageTooLarge)

	w := multipartUpload(t, r, "/api/v1/images/logo", content)

	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
}

func TestImageHandler_Get(t *testing.T) {
	svc := new(mocks.MockImageService)
	r := newImageRouter(svc)

	svc.On("Get", mock.Anything, domain.ImageLogo).Return([]byte("png bytes"), nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/images/logo", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
	assert.Equal(t, `inline; filename="logo.png"`, w.Header().Get("Content-Disposition"))
}

func TestImageHandler_Get_NotFound(t *testing.T) {
	svc := new(mocks.MockImageService)
	r := newImageRouter(svc)

	svc.On("Get", mock.Anything, domain.ImageSignature).Return(nil, domain.ErrImageNotFound)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/images/signature", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "IMAGE_NOT_FOUND")
}

func TestImageHandler_Get_InvalidKind(t *testing.T) {
	svc := new(mocks.MockImageService)
	r := newImageRouter(svc)

	svc.On("Get", mock.Anything, domain.ImageKind("banner")).Return(nil, domain.ErrInvalidImageKind)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/images/banner", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestImageHandler_Delete(t *testing.T) {
	svc := new(mocks.MockImageService)
	r := newImageRouter(svc)

	svc.On("Delete", mock.Anything, domain.ImageSignature).Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/images/signature", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	svc.AssertExpectations(t)
}
