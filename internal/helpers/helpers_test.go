package helpers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"image"
	"image/png"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/farellandr/eventportal/internal/gateway"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestGatewayStatus(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{&gateway.StatusError{Code: 404}, http.StatusNotFound},
		{fmt.Errorf("registration 3: %w", gateway.ErrNotFound), http.StatusNotFound},
		{&gateway.StatusError{Code: 409}, http.StatusConflict},
		{&gateway.StatusError{Code: 403}, http.StatusForbidden},
		{&gateway.StatusError{Code: 422}, http.StatusBadRequest},
		{&gateway.StatusError{Code: 500}, http.StatusBadGateway},
		{errors.New("dial tcp: connection refused"), http.StatusBadGateway},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, GatewayStatus(tt.err), tt.err.Error())
	}
}

func TestRespondWithGatewayError(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	RespondWithGatewayError(c, &gateway.StatusError{Code: 503}, "Failed to create event.")

	assert.Equal(t, http.StatusBadGateway, w.Code)
	var body ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Bad Gateway", body.Error)
	assert.Equal(t, "Failed to create event.", body.Message)
}

func TestParseIDAndQueryInt(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/?page=3&size=abc&keyword=", nil)
	c.Params = gin.Params{{Key: "id", Value: "42"}, {Key: "bad", Value: "-1"}}

	id, err := ParseID(c, "id")
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)

	_, err = ParseID(c, "bad")
	assert.Error(t, err)

	assert.Equal(t, 3, QueryInt(c, "page", 1))
	assert.Equal(t, 8, QueryInt(c, "size", 8))
	assert.Equal(t, 1, QueryInt(c, "missing", 1))

	assert.True(t, HasAnyQuery(c, "category", "keyword"))
	assert.False(t, HasAnyQuery(c, "category", "location"))
}

func TestPassSigner(t *testing.T) {
	signer := NewPassSigner("pass-secret")
	claims := PassClaims{RegistrationID: 31, EventID: 4, UserID: 12}

	code := signer.Sign(claims)
	assert.True(t, strings.HasPrefix(code, "EVP.31.4.12."))

	got, err := signer.Verify(code)
	require.NoError(t, err)
	assert.Equal(t, claims, got)

	tampered := strings.Replace(code, "EVP.31.", "EVP.32.", 1)
	_, err = signer.Verify(tampered)
	assert.ErrorIs(t, err, ErrInvalidPass)

	_, err = NewPassSigner("other").Verify(code)
	assert.ErrorIs(t, err, ErrInvalidPass)

	_, err = signer.Verify("garbage")
	assert.ErrorIs(t, err, ErrInvalidPass)
}

func multipartContext(t *testing.T, filename string, content []byte) *gin.Context {
	t.Helper()
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("image", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodPost, "/", &body)
	c.Request.Header.Set("Content-Type", writer.FormDataContentType())
	return c
}

func TestUploadFile(t *testing.T) {
	var img bytes.Buffer
	require.NoError(t, png.Encode(&img, image.NewRGBA(image.Rect(0, 0, 2, 2))))

	base := t.TempDir()
	c := multipartContext(t, "poster.png", img.Bytes())
	header, err := c.FormFile("image")
	require.NoError(t, err)

	fullPath, publicURL, err := UploadFile(c, header, "event_images", ImageUploadConfig(base))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(publicURL, "/uploads/event_images/"))
	assert.Equal(t, ".png", filepath.Ext(fullPath))

	_, err = os.Stat(fullPath)
	require.NoError(t, err)
	require.NoError(t, DeleteFile(fullPath))
}

func TestUploadFile_RejectsText(t *testing.T) {
	c := multipartContext(t, "notes.png", []byte("plain text pretending to be an image"))
	header, err := c.FormFile("image")
	require.NoError(t, err)

	_, _, err = UploadFile(c, header, "event_images", ImageUploadConfig(t.TempDir()))
	assert.ErrorContains(t, err, "invalid file type")
}
