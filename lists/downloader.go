package lists

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/sirupsen/logrus"

	"github.com/0xERR0R/tldextract/config"
	"github.com/0xERR0R/tldextract/evt"
	"github.com/0xERR0R/tldextract/log"
	"github.com/0xERR0R/tldextract/util"
)

const (
	defaultDownloadTimeout  = 5 * time.Second
	defaultDownloadAttempts = uint(3)
	defaultDownloadCooldown = 500 * time.Millisecond
)

func logger() *logrus.Entry {
	return log.PrefixedLog("lists")
}

// TransientError represents a temporary error like timeout, network errors...
type TransientError struct {
	inner error
}

func (e *TransientError) Error() string {
	return fmt.Sprintf("temporary error occurred: %v", e.inner)
}

func (e *TransientError) Unwrap() error {
	return e.inner
}

// FileDownloader is able to download some text file
type FileDownloader interface {
	DownloadFile(ctx context.Context, link string) (io.ReadCloser, error)
}

// HTTPDownloader downloads files via HTTP protocol
type HTTPDownloader struct {
	downloadTimeout  time.Duration
	downloadAttempts uint
	downloadCooldown time.Duration
	httpTransport    http.RoundTripper
}

type DownloaderOption func(c *HTTPDownloader)

func NewDownloader(options ...DownloaderOption) *HTTPDownloader {
	d := &HTTPDownloader{
		downloadTimeout:  defaultDownloadTimeout,
		downloadAttempts: defaultDownloadAttempts,
		downloadCooldown: defaultDownloadCooldown,
		httpTransport:    util.NewHTTPTransport(),
	}

	for _, opt := range options {
		opt(d)
	}

	return d
}

// NewDownloaderFromConfig creates a downloader using the `downloads` configuration section.
func NewDownloaderFromConfig(cfg config.Downloader, options ...DownloaderOption) *HTTPDownloader {
	opts := []DownloaderOption{
		WithTimeout(cfg.Timeout.ToDuration()),
		WithAttempts(cfg.Attempts),
		WithCooldown(cfg.Cooldown.ToDuration()),
	}

	return NewDownloader(append(opts, options...)...)
}

// WithTimeout sets the download timeout
func WithTimeout(timeout time.Duration) DownloaderOption {
	return func(d *HTTPDownloader) {
		d.downloadTimeout = timeout
	}
}

// WithCooldown sets the pause between 2 download attempts
func WithCooldown(cooldown time.Duration) DownloaderOption {
	return func(d *HTTPDownloader) {
		d.downloadCooldown = cooldown
	}
}

// WithAttempts sets the attempt number for retry
func WithAttempts(downloadAttempts uint) DownloaderOption {
	return func(d *HTTPDownloader) {
		d.downloadAttempts = downloadAttempts
	}
}

// WithTransport sets the HTTP transport
func WithTransport(httpTransport http.RoundTripper) DownloaderOption {
	return func(d *HTTPDownloader) {
		d.httpTransport = httpTransport
	}
}

// StatusError is returned when the server answers with anything but 200.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("got status code %d", e.Code)
}

// Temporary returns true for server side errors, rate limiting and request timeouts.
func (e *StatusError) Temporary() bool {
	return e.Code >= http.StatusInternalServerError ||
		e.Code == http.StatusTooManyRequests ||
		e.Code == http.StatusRequestTimeout
}

// DownloadFile implements `FileDownloader`.
//
// Each attempt is bounded by the download timeout, and the whole download by `ctx`.
// A status that won't change by asking again (404, 403...) ends the download.
func (d *HTTPDownloader) DownloadFile(ctx context.Context, link string) (io.ReadCloser, error) {
	client := &http.Client{
		Timeout:   d.downloadTimeout,
		Transport: d.httpTransport,
	}

	logger().WithField("link", link).Info("starting download")

	var body io.ReadCloser

	err := retry.Do(
		func() (err error) {
			body, err = d.attempt(ctx, client, link)
			if err != nil {
				onDownloadError(link)
			}

			return err
		},
		retry.Context(ctx),
		retry.Attempts(d.downloadAttempts),
		retry.DelayType(retry.FixedDelay),
		retry.Delay(d.downloadCooldown),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			logDownloadError(logger().WithFields(logrus.Fields{
				"link":    link,
				"attempt": fmt.Sprintf("%d/%d", n+1, d.downloadAttempts),
			}), err)
		}))

	return body, err
}

func (d *HTTPDownloader) attempt(ctx context.Context, client *http.Client, link string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, link, nil)
	if err != nil {
		return nil, retry.Unrecoverable(err)
	}

	resp, err := client.Do(req)
	if err != nil {
		var netErr net.Error
		if errors.As(err, &netErr) && netErr.Timeout() {
			return nil, &TransientError{inner: netErr}
		}

		return nil, err
	}

	if resp.StatusCode == http.StatusOK {
		return resp.Body, nil
	}

	_ = resp.Body.Close()

	statusErr := &StatusError{Code: resp.StatusCode}
	if !statusErr.Temporary() {
		logDownloadError(logger().WithField("link", link), statusErr)

		return nil, retry.Unrecoverable(statusErr)
	}

	return nil, statusErr
}

func logDownloadError(logger *logrus.Entry, err error) {
	var (
		transientErr *TransientError
		dnsErr       *net.DNSError
	)

	switch {
	case errors.As(err, &transientErr):
		logger.Warnf("Temporary network err / Timeout occurred: %s", transientErr)
	case errors.As(err, &dnsErr):
		logger.Warnf("Name resolution err: %s", dnsErr.Err)
	default:
		logger.Warnf("Can't download file: %s", err)
	}
}

func onDownloadError(link string) {
	evt.Bus().Publish(evt.CachingFailedDownloadChanged, link)
}
