package vrplib

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

// httpClient serves every URL source: one GET per call, no retries.
var httpClient = &http.Client{Timeout: 15 * time.Second}

// Read resolves a source locator to text content. A locator beginning
// with "http://" or "https://" is fetched with a single GET; anything
// else is treated as a local file path and read whole.
//
// Failures wrap the underlying transport or filesystem error together
// with the locator; a reachable URL with a non-2xx status wraps
// ErrBadStatus.
//
// Complexity: O(size of the source).
func Read(src string) (string, error) {
	if strings.HasPrefix(src, "http://") || strings.HasPrefix(src, "https://") {
		return readURL(src)
	}

	data, err := os.ReadFile(src)
	if err != nil {
		return "", fmt.Errorf("vrplib: read %s: %w", src, err)
	}

	return string(data), nil
}

// readURL performs the single GET and drains the body.
func readURL(url string) (string, error) {
	resp, err := httpClient.Get(url)
	if err != nil {
		return "", fmt.Errorf("vrplib: get %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return "", fmt.Errorf("%w: %s (%s)", ErrBadStatus, resp.Status, url)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("vrplib: get %s: %w", url, err)
	}

	return string(data), nil
}
