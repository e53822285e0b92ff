// Package api is the HTTP client for the reconciliation service: one
// best-effort readiness probe at startup and one multipart upload per
// submission, with no retries at any layer.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/recondesk-dev/recondesk/internal/model"
)

// Form field names expected by the upload endpoint.
const (
	exchangeField = "exchange_file"
	pspField      = "psp_file"
)

// Client talks to the reconciliation service.
type Client struct {
	uploadURL string
	hc        *http.Client
}

// NewClient creates a Client for the given upload URL. The zero http.Client
// is used: no client-side timeout, the transport's own limits govern.
func NewClient(uploadURL string) *Client {
	return &Client{uploadURL: uploadURL, hc: &http.Client{}}
}

// UploadURL returns the configured upload endpoint.
func (c *Client) UploadURL() string { return c.uploadURL }

// HealthURL derives the health-check address from the upload URL by stripping
// its final path segment.
func (c *Client) HealthURL() string {
	u, err := url.Parse(c.uploadURL)
	if err != nil {
		return c.uploadURL
	}
	u.Path = path.Dir(u.Path)
	if u.Path == "." {
		u.Path = "/"
	}
	u.RawQuery = ""
	return u.String()
}

// ProbeReady issues one best-effort GET against the health URL. Success, an
// HTTP error status, and a network failure all settle to ready; the probe
// never retries and never leaves the caller blocked.
func (c *Client) ProbeReady(ctx context.Context) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.HealthURL(), nil)
	if err != nil {
		return
	}
	resp, err := c.hc.Do(req)
	if err != nil {
		return
	}
	io.Copy(io.Discard, resp.Body)
	resp.Body.Close()
}

// Upload submits the two selected CSV files as a multipart POST and returns
// the normalized result. Preconditions: both paths non-empty, else a
// *ValidationError is returned and no network call is made. onProgress may be
// nil; when set it receives monotonically non-decreasing percentages.
func (c *Client) Upload(ctx context.Context, exchangePath, pspPath string, onProgress ProgressFunc) (*model.ReconciliationResult, error) {
	if strings.TrimSpace(exchangePath) == "" || strings.TrimSpace(pspPath) == "" {
		return nil, &ValidationError{Msg: "both Exchange and PSP files must be selected"}
	}

	body, contentType, err := buildMultipart(exchangePath, pspPath)
	if err != nil {
		return nil, err
	}

	total := int64(body.Len())
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.uploadURL, newProgressReader(body, total, onProgress))
	if err != nil {
		return nil, fmt.Errorf("building upload request: %w", err)
	}
	req.Header.Set("Content-Type", contentType)
	req.ContentLength = total

	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, &TransportError{Network: true, Cause: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Network: true, Cause: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &TransportError{StatusCode: resp.StatusCode, Body: string(raw)}
	}

	var result model.ReconciliationResult
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, &ResponseFormatError{Cause: err}
	}
	result.Normalize()
	return &result, nil
}

// buildMultipart assembles the two-part form body in memory, mirroring how a
// browser form submission would package the files.
func buildMultipart(exchangePath, pspPath string) (*bytes.Buffer, string, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	for _, part := range []struct {
		field string
		path  string
	}{
		{exchangeField, exchangePath},
		{pspField, pspPath},
	} {
		f, err := os.Open(part.path)
		if err != nil {
			return nil, "", &ValidationError{Msg: fmt.Sprintf("cannot read %s: %v", part.path, err)}
		}
		w, err := mw.CreateFormFile(part.field, filepath.Base(part.path))
		if err != nil {
			f.Close()
			return nil, "", fmt.Errorf("creating form part %s: %w", part.field, err)
		}
		if _, err := io.Copy(w, f); err != nil {
			f.Close()
			return nil, "", fmt.Errorf("copying %s: %w", part.path, err)
		}
		f.Close()
	}

	if err := mw.Close(); err != nil {
		return nil, "", fmt.Errorf("closing multipart body: %w", err)
	}
	return &buf, mw.FormDataContentType(), nil
}
