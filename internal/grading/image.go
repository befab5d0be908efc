package grading

import (
	"context"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"

	"github.com/mathcoach/mathcoach/internal/llm"
)

// maxImageBytes caps how much of the answer photo is read. Phone photos
// sit well under this; anything larger is not a homework picture.
const maxImageBytes = 8 << 20

// ImageFetcher retrieves the student's answer image for inline submission.
type ImageFetcher interface {
	Fetch(ctx context.Context, url string) (*llm.ImagePart, error)
}

// HTTPFetcher fetches images over HTTP(S).
type HTTPFetcher struct {
	client *http.Client
}

// NewHTTPFetcher creates an HTTPFetcher. A nil client uses
// http.DefaultClient, leaving worst-case latency to its defaults.
func NewHTTPFetcher(client *http.Client) *HTTPFetcher {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPFetcher{client: client}
}

// Fetch downloads the image at url. Non-2xx statuses and network errors
// are returned as errors; the caller resolves them to fallback. The MIME
// type comes from the Content-Type header when it names an image, else
// defaults to image/jpeg.
func (f *HTTPFetcher) Fetch(ctx context.Context, url string) (*llm.ImagePart, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build image request: %w", err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch image: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("fetch image: unexpected status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxImageBytes))
	if err != nil {
		return nil, fmt.Errorf("read image body: %w", err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("image body is empty")
	}

	return &llm.ImagePart{
		MIMEType: imageMIME(resp.Header.Get("Content-Type")),
		Data:     data,
	}, nil
}

// imageMIME picks a usable image media type from a Content-Type header.
func imageMIME(contentType string) string {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err == nil && strings.HasPrefix(mediaType, "image/") {
		return mediaType
	}
	return "image/jpeg"
}
