// Package fetch implements the default Fetcher: a net/http-based page fetch
// honoring a configurable connect/read timeout and redirect policy, with
// DNS resolutions cached via the dnscache package.
package fetch

import (
	"context"
	"fmt"
	"io"
	"io/ioutil"
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/frejajensen9/web-based-search-engine-24/config"
	"github.com/frejajensen9/web-based-search-engine-24/crawler"
	"github.com/frejajensen9/web-based-search-engine-24/dnscache"
	"github.com/frejajensen9/web-based-search-engine-24/internal/logging"
)

// FetchError wraps a fetch failure (network error, timeout, or a non-2xx
// response after redirects). The crawler treats any non-nil error from
// Fetch identically: skip the page silently.
type FetchError struct {
	URL        string
	StatusCode int
	Cause      error
}

func (e *FetchError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("fetch %s: %v", e.URL, e.Cause)
	}
	return fmt.Sprintf("fetch %s: status %d", e.URL, e.StatusCode)
}

func (e *FetchError) Unwrap() error { return e.Cause }

// Client implements crawler.Fetcher using net/http.
type Client struct {
	httpClient *http.Client
}

// NewClient builds a Client from config.Config.Fetcher. The connect timeout
// bounds the dialer; the read timeout bounds the whole request via
// http.Client.Timeout; redirects are capped via a custom CheckRedirect
// (net/http's own default cap is 10, higher than the configured default of 5).
func NewClient() (*Client, error) {
	connectTimeout, err := time.ParseDuration(config.Config.Fetcher.ConnectTimeout)
	if err != nil {
		return nil, fmt.Errorf("fetch: bad connect_timeout: %w", err)
	}
	readTimeout, err := time.ParseDuration(config.Config.Fetcher.ReadTimeout)
	if err != nil {
		return nil, fmt.Errorf("fetch: bad read_timeout: %w", err)
	}

	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		Dial: (&net.Dialer{
			Timeout: connectTimeout,
		}).Dial,
		TLSHandshakeTimeout: 10 * time.Second,
	}

	cachingDial, err := dnscache.Dial(transport.Dial, config.Config.Fetcher.MaxDNSCacheEntries)
	if err != nil {
		return nil, fmt.Errorf("fetch: failed to construct dns-caching dialer: %w", err)
	}
	transport.Dial = cachingDial

	maxRedirects := config.Config.Fetcher.MaxRedirects
	httpClient := &http.Client{
		Transport: transport,
		Timeout:   readTimeout,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			if len(via) > maxRedirects {
				return fmt.Errorf("stopped after %d redirects", maxRedirects)
			}
			return nil
		},
	}

	return &Client{httpClient: httpClient}, nil
}

// NewClientWithTransport builds a Client around an explicit RoundTripper,
// bypassing DNS caching and dialer construction entirely. Tests use this
// with a fake transport (see internal/testutil) to exercise Client.Fetch
// without any network I/O.
func NewClientWithTransport(rt http.RoundTripper) *Client {
	return &Client{httpClient: &http.Client{Transport: rt}}
}

// Fetch implements crawler.Fetcher.
func (c *Client) Fetch(ctx context.Context, rawURL string) (crawler.Page, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return crawler.Page{}, &FetchError{URL: rawURL, Cause: err}
	}
	req.Header.Set("User-Agent", config.Config.Fetcher.UserAgent)

	logging.Debug("fetching %s", rawURL)
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return crawler.Page{}, &FetchError{URL: rawURL, Cause: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return crawler.Page{}, &FetchError{URL: rawURL, StatusCode: resp.StatusCode}
	}

	limit := config.Config.Fetcher.MaxContentBytes
	body, err := ioutil.ReadAll(io.LimitReader(resp.Body, limit))
	if err != nil {
		return crawler.Page{}, &FetchError{URL: rawURL, Cause: err}
	}

	lastModified := time.Time{}
	if lm := resp.Header.Get("Last-Modified"); lm != "" {
		if parsed, err := http.ParseTime(lm); err == nil {
			lastModified = parsed
		}
	}

	return crawler.Page{
		Body:          body,
		LastModified:  lastModified,
		ContentLength: resp.ContentLength,
	}, nil
}

// Stat implements result.Origin: a best-effort HEAD request to resolve a
// result row's live last-modified time and size, never used on the crawl
// path itself.
func (c *Client) Stat(rawURL string) (lastModified time.Time, size int64, ok bool) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return time.Time{}, 0, false
	}
	req, err := http.NewRequest(http.MethodHead, u.String(), nil)
	if err != nil {
		return time.Time{}, 0, false
	}
	req.Header.Set("User-Agent", config.Config.Fetcher.UserAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return time.Time{}, 0, false
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return time.Time{}, 0, false
	}

	lm := time.Time{}
	if hdr := resp.Header.Get("Last-Modified"); hdr != "" {
		if parsed, err := http.ParseTime(hdr); err == nil {
			lm = parsed
		}
	}
	return lm, resp.ContentLength, true
}
