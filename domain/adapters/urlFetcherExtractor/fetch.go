package urlFetcherExtractor

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"golang.org/x/net/html/charset"

	"newsCrawler/domain/model"
)

// ErrStatus is returned for responses outside the 2xx range.
var ErrStatus = errors.New("unexpected status")

var utf8BOM = []byte("\xef\xbb\xbf")

// Fetch GETs rawURL, retrying failed attempts with a linearly growing wait.
// A failed fetch is reported through the error and FetchResult.Success; it is
// up to the caller to skip the url.
func (fe *HTTPFetcherExtractor) Fetch(ctx context.Context, rawURL string) (model.FetchResult, error) {
	result := model.FetchResult{URL: rawURL}

	var lastErr error
	for attempt := 0; attempt < fe.maxRetries; attempt++ {
		result.Attempts = attempt + 1

		body, err := fe.fetchOnce(ctx, rawURL)
		if err == nil {
			result.Body = body
			result.Success = true
			return result, nil
		}
		lastErr = err

		if ctx.Err() != nil || attempt == fe.maxRetries-1 {
			break
		}

		wait := fe.backoff(attempt)
		fe.logger.Warnw("fetch failed, retrying",
			"url", rawURL,
			"attempt", attempt+1,
			"of", fe.maxRetries,
			"wait", wait,
			"error", err,
		)
		select {
		case <-ctx.Done():
			lastErr = ctx.Err()
		case <-fe.sleep(wait):
		}
		if ctx.Err() != nil {
			break
		}
	}

	return result, fmt.Errorf("fetch %s: giving up after %d attempts: %w", rawURL, result.Attempts, lastErr)
}

// backoff is the wait before the retry that follows failed attempt index attempt.
func (fe *HTTPFetcherExtractor) backoff(attempt int) time.Duration {
	return fe.backoffBase + time.Duration(attempt)*fe.backoffIncrement
}

func (fe *HTTPFetcherExtractor) fetchOnce(ctx context.Context, rawURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, http.NoBody)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", fe.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml;q=0.9,*/*;q=0.8")

	resp, err := fe.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, fe.maxBodyBytes))
		return "", fmt.Errorf("%w: %d", ErrStatus, resp.StatusCode)
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, fe.maxBodyBytes))
	if err != nil {
		return "", fmt.Errorf("read body: %w", err)
	}

	return decode(raw, resp.Header.Get("Content-Type"))
}

// decode converts raw to text using the declared or sniffed charset. When
// nothing is declared and the bytes are valid UTF-8, UTF-8 wins over the
// windows-1252 guess html sniffing would otherwise make.
func decode(raw []byte, contentType string) (string, error) {
	enc, name, certain := charset.DetermineEncoding(raw, contentType)

	if name == "utf-8" || (!certain && utf8.Valid(raw)) {
		return strings.ToValidUTF8(string(bytes.TrimPrefix(raw, utf8BOM)), "\uFFFD"), nil
	}

	decoded, err := enc.NewDecoder().Bytes(raw)
	if err != nil {
		return "", fmt.Errorf("decode %s body: %w", name, err)
	}
	return string(decoded), nil
}
