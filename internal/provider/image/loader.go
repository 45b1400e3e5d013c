// Package image turns the image reference carried by a generation request
// into bytes a provider can attach: a data URI, bare base64 or an http(s)
// URL.
package image

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/davidbz/lessongen/internal/domain"
)

const (
	// DefaultFetchTimeout bounds downloading an image by URL.
	DefaultFetchTimeout = 15 * time.Second
	// MaxImageBytes caps the decoded or downloaded image size.
	MaxImageBytes = 20 << 20

	defaultMIMEType = "image/jpeg"
)

var (
	// ErrEmptyImage is returned for a blank image reference.
	ErrEmptyImage = errors.New("empty image reference")
	// ErrImageTooLarge is returned when an image exceeds MaxImageBytes.
	ErrImageTooLarge = errors.New("image too large")
)

// Loader resolves image references.
type Loader struct {
	client  *http.Client
	timeout time.Duration
}

// Option configures a Loader.
type Option func(*Loader)

// WithHTTPClient replaces the client used for URL fetches.
func WithHTTPClient(client *http.Client) Option {
	return func(l *Loader) {
		l.client = client
	}
}

// WithFetchTimeout overrides DefaultFetchTimeout.
func WithFetchTimeout(timeout time.Duration) Option {
	return func(l *Loader) {
		if timeout > 0 {
			l.timeout = timeout
		}
	}
}

// NewLoader creates a loader.
func NewLoader(opts ...Option) *Loader {
	l := &Loader{
		client:  http.DefaultClient,
		timeout: DefaultFetchTimeout,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load resolves ref into image bytes and a MIME type.
func (l *Loader) Load(ctx context.Context, ref string) (*domain.Image, error) {
	ref = strings.TrimSpace(ref)
	switch {
	case ref == "":
		return nil, ErrEmptyImage
	case strings.HasPrefix(ref, "data:"):
		return decodeDataURI(ref)
	case strings.HasPrefix(ref, "http://"), strings.HasPrefix(ref, "https://"):
		return l.fetch(ctx, ref)
	default:
		return decodeBase64(ref, "")
	}
}

// DataURI encodes img as a base64 data URI.
func DataURI(img *domain.Image) string {
	return "data:" + img.MIMEType + ";base64," + base64.StdEncoding.EncodeToString(img.Data)
}

func decodeDataURI(ref string) (*domain.Image, error) {
	header, payload, ok := strings.Cut(strings.TrimPrefix(ref, "data:"), ",")
	if !ok {
		return nil, errors.New("malformed data URI")
	}

	mimeType, encoding, _ := strings.Cut(header, ";")
	if encoding != "base64" {
		return nil, fmt.Errorf("unsupported data URI encoding %q", encoding)
	}

	return decodeBase64(payload, mimeType)
}

func decodeBase64(payload, mimeType string) (*domain.Image, error) {
	payload = strings.Map(func(r rune) rune {
		if r == '\n' || r == '\r' || r == ' ' || r == '\t' {
			return -1
		}
		return r
	}, payload)

	if base64.StdEncoding.DecodedLen(len(payload)) > MaxImageBytes {
		return nil, ErrImageTooLarge
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		// Some clients strip padding.
		var rawErr error
		data, rawErr = base64.RawStdEncoding.DecodeString(strings.TrimRight(payload, "="))
		if rawErr != nil {
			return nil, fmt.Errorf("invalid base64 image: %w", err)
		}
	}

	return newImage(data, mimeType)
}

func (l *Loader) fetch(ctx context.Context, url string) (*domain.Image, error) {
	ctx, cancel := context.WithTimeout(ctx, l.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build image request: %w", err)
	}

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch image: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to fetch image: status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, MaxImageBytes+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read image: %w", err)
	}
	if len(data) > MaxImageBytes {
		return nil, ErrImageTooLarge
	}

	mimeType, _, _ := strings.Cut(resp.Header.Get("Content-Type"), ";")
	return newImage(data, strings.TrimSpace(mimeType))
}

func newImage(data []byte, mimeType string) (*domain.Image, error) {
	if len(data) == 0 {
		return nil, ErrEmptyImage
	}

	if !strings.HasPrefix(mimeType, "image/") {
		mimeType = http.DetectContentType(data)
	}
	if !strings.HasPrefix(mimeType, "image/") {
		mimeType = defaultMIMEType
	}

	return &domain.Image{Data: data, MIMEType: mimeType}, nil
}
