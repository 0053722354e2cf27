package fetch

import (
	"context"
	"fmt"
	"math/rand"
	"mime"
	"strings"
	"time"

	"github.com/valyala/fasthttp"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/transform"
)

const (
	// CatalogOrigin is the fixed origin all catalog URLs resolve against.
	CatalogOrigin = "https://www.metacritic.com"

	// UserAgent sent with every page request.
	UserAgent = "Mozilla/5.0"

	requestTimeout = 10 * time.Second
)

// PageURL builds the deterministic catalog listing URL for one page number.
func PageURL(page int) string {
	return fmt.Sprintf("%s/browse/game/?releaseYearMin=1958&releaseYearMax=2025&page=%d", CatalogOrigin, page)
}

// Result carries one fetched page body together with timing and size
// instrumentation for the observability side-channel.
type Result struct {
	Page    int
	URL     string
	Body    string
	Bytes   int
	Elapsed time.Duration
}

// Client fetches catalog pages over fasthttp. A non-success status or a
// transport error is returned as an error; the caller treats the page as
// absent and keeps going.
type Client struct {
	client *fasthttp.Client
}

// NewClient creates a catalog page client.
func NewClient() *Client {
	return &Client{
		client: &fasthttp.Client{
			ReadTimeout:  requestTimeout,
			WriteTimeout: requestTimeout,
		},
	}
}

// FetchPage downloads one catalog page and returns its body as UTF-8 text.
func (c *Client) FetchPage(ctx context.Context, page int) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	url := PageURL(page)
	req.SetRequestURI(url)
	req.Header.SetMethod(fasthttp.MethodGet)
	req.Header.SetUserAgent(UserAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")
	req.Header.Set("Accept-Encoding", "gzip")

	start := time.Now()
	if err := c.client.DoTimeout(req, resp, requestTimeout); err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	elapsed := time.Since(start)

	if resp.StatusCode() != fasthttp.StatusOK {
		return nil, fmt.Errorf("HTTP %d", resp.StatusCode())
	}

	body := resp.Body()
	if string(resp.Header.Peek("Content-Encoding")) == "gzip" {
		unzipped, err := resp.BodyGunzip()
		if err != nil {
			return nil, fmt.Errorf("failed to decompress body: %w", err)
		}
		body = unzipped
	}

	decoded, err := DecodeBody(body, string(resp.Header.Peek("Content-Type")))
	if err != nil {
		return nil, fmt.Errorf("failed to decode body: %w", err)
	}

	return &Result{
		Page:    page,
		URL:     url,
		Body:    decoded,
		Bytes:   len(body),
		Elapsed: elapsed,
	}, nil
}

// Pace sleeps for the configured base delay plus a uniform sub-second
// jitter. Applied after each successful fetch to throttle request rate
// independent of concurrency.
func Pace(delaySeconds float64) {
	jitter := rand.Float64()
	time.Sleep(time.Duration((delaySeconds + jitter) * float64(time.Second)))
}

// DecodeBody converts a response body to UTF-8 using the charset declared
// in the Content-Type header. Unknown or absent charsets pass the body
// through unchanged.
func DecodeBody(body []byte, contentType string) (string, error) {
	charset := charsetFromContentType(contentType)
	if charset == "" || strings.EqualFold(charset, "utf-8") {
		return string(body), nil
	}

	enc, err := htmlindex.Get(charset)
	if err != nil {
		// Unrecognized charset label, serve the body as-is.
		return string(body), nil
	}

	decoded, _, err := transform.Bytes(enc.NewDecoder(), body)
	if err != nil {
		return "", fmt.Errorf("charset %s: %w", charset, err)
	}
	return string(decoded), nil
}

func charsetFromContentType(contentType string) string {
	if contentType == "" {
		return ""
	}
	_, params, err := mime.ParseMediaType(contentType)
	if err != nil {
		return ""
	}
	return params["charset"]
}
