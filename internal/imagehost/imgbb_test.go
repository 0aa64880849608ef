package imagehost

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))

		require.NoError(t, r.ParseMultipartForm(MaxPhotoSize))
		file, header, err := r.FormFile("image")
		require.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "player.jpg", header.Filename)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data":{"url":"https://i.ibb.co/abc/player.jpg"},"success":true}`))
	}))
	defer srv.Close()

	client := NewClientWithEndpoint("test-key", srv.URL)
	url, err := client.Upload(context.Background(), "player.jpg", strings.NewReader("fake image bytes"))
	require.NoError(t, err)
	assert.Equal(t, "https://i.ibb.co/abc/player.jpg", url)
}

func TestUploadServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad key", http.StatusBadRequest)
	}))
	defer srv.Close()

	client := NewClientWithEndpoint("test-key", srv.URL)
	_, err := client.Upload(context.Background(), "player.jpg", strings.NewReader("x"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "400")
}

func TestUploadReportedFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":{},"success":false}`))
	}))
	defer srv.Close()

	client := NewClientWithEndpoint("test-key", srv.URL)
	_, err := client.Upload(context.Background(), "player.jpg", strings.NewReader("x"))
	require.Error(t, err)
}

func TestUploadWithoutKey(t *testing.T) {
	client := NewClient("")
	_, err := client.Upload(context.Background(), "player.jpg", strings.NewReader("x"))
	require.Error(t, err)
}
