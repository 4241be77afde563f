package pestdetect

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectNormalizesConfidence(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "secret-key", r.URL.Query().Get("api_key"))

		err := r.ParseMultipartForm(1 << 20)
		require.NoError(t, err)
		_, header, err := r.FormFile("file")
		require.NoError(t, err)
		assert.Equal(t, "leaf.jpg", header.Filename)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"predictions":[{"class":"aphid","confidence":0.91,"x":10},{"class":"mite","confidence":0.42}]}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "secret-key")
	predictions, err := client.Detect(context.Background(), "leaf.jpg", strings.NewReader("fake-image-bytes"))
	require.NoError(t, err)
	require.Len(t, predictions, 2)

	assert.Equal(t, "aphid", predictions[0]["class"])
	assert.Equal(t, 0.91, predictions[0]["score"])
	assert.Equal(t, float64(10), predictions[0]["x"])
	_, hasConfidence := predictions[0]["confidence"]
	assert.False(t, hasConfidence)
}

func TestDetectBareArrayResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"class":"locust","confidence":0.75}]`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "")
	predictions, err := client.Detect(context.Background(), "crop.png", strings.NewReader("img"))
	require.NoError(t, err)
	require.Len(t, predictions, 1)
	assert.Equal(t, 0.75, predictions[0]["score"])
}

func TestDetectUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model unavailable", http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := NewClient(server.URL, "")
	_, err := client.Detect(context.Background(), "crop.png", strings.NewReader("img"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "503")
}

func TestDetectEmptyPredictions(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"predictions":[]}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "")
	predictions, err := client.Detect(context.Background(), "crop.png", strings.NewReader("img"))
	require.NoError(t, err)
	assert.Empty(t, predictions)
	assert.NotNil(t, predictions)
}
