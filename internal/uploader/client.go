// Package uploader is a thin client for the external image hosting
// service. The service is opaque to the rest of the application: it takes
// image bytes and a target folder and hands back a hosted URL.
package uploader

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path"
	"time"

	"github.com/google/uuid"
)

// Client talks to the image hosting endpoint configured at startup.
type Client struct {
	Endpoint string
	HTTP     *http.Client
}

type uploadResponse struct {
	URL string `json:"url"`
}

func New(endpoint string) *Client {
	return &Client{
		Endpoint: endpoint,
		HTTP:     &http.Client{Timeout: 30 * time.Second},
	}
}

// Enabled reports whether an endpoint was configured.
func (u *Client) Enabled() bool { return u.Endpoint != "" }

// Upload sends the image to the hosting service and returns the hosted
// URL. The stored object name is a fresh UUID so repeated uploads of the
// same file never collide; folder groups images by resource (tours, blog,
// testimonials, categories).
func (u *Client) Upload(ctx context.Context, folder, filename string, r io.Reader) (string, error) {
	name := uuid.NewString() + path.Ext(filename)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	if err := mw.WriteField("folder", folder); err != nil {
		return "", err
	}
	fw, err := mw.CreateFormFile("file", name)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(fw, r); err != nil {
		return "", err
	}
	if err := mw.Close(); err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u.Endpoint, &buf)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := u.HTTP.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return "", fmt.Errorf("image host returned status %d", resp.StatusCode)
	}

	var result uploadResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", err
	}
	if result.URL == "" {
		return "", fmt.Errorf("image host returned empty url")
	}
	return result.URL, nil
}
