package lists

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/0xERR0R/tldextract/config"
	"github.com/0xERR0R/tldextract/lists/snapshot"
	"github.com/0xERR0R/tldextract/log"
)

var errNoFallbackURL = errors.New("no fallback URL configured")

// SourceOpener gives access to the text of a suffix list source.
type SourceOpener interface {
	fmt.Stringer

	Open(ctx context.Context) (io.ReadCloser, error)
}

// SourceOpenerFactory creates the opener of a source.
type SourceOpenerFactory interface {
	NewSourceOpener(source config.BytesSource) (SourceOpener, error)
}

// Openers creates source openers sharing a downloader and a list of fallback URLs.
type Openers struct {
	downloader   FileDownloader
	fallbackURLs []string
}

// NewOpeners creates an opener factory. `fallbackURLs` are used by `remote` sources.
func NewOpeners(downloader FileDownloader, fallbackURLs []string) *Openers {
	return &Openers{downloader: downloader, fallbackURLs: fallbackURLs}
}

// NewSourceOpener implements `SourceOpenerFactory`.
func (o *Openers) NewSourceOpener(source config.BytesSource) (SourceOpener, error) {
	switch source.Type {
	case config.BytesSourceTypeText:
		return &textOpener{source: source}, nil

	case config.BytesSourceTypeHttp:
		if source.IsRemoteDefault() {
			return &fallbackOpener{source: source, downloader: o.downloader, urls: o.fallbackURLs}, nil
		}

		return &httpOpener{source: source, downloader: o.downloader}, nil

	case config.BytesSourceTypeFile:
		return &fileOpener{source: source}, nil

	case config.BytesSourceTypeSnapshot:
		return &snapshotOpener{}, nil
	}

	return nil, fmt.Errorf("cannot open %s", source)
}

type textOpener struct {
	source config.BytesSource
}

func (o *textOpener) Open(context.Context) (io.ReadCloser, error) {
	return io.NopCloser(strings.NewReader(o.source.From)), nil
}

func (o *textOpener) String() string {
	return fmt.Sprintf("inline: %s", o.source)
}

type httpOpener struct {
	source     config.BytesSource
	downloader FileDownloader
}

func (o *httpOpener) Open(ctx context.Context) (io.ReadCloser, error) {
	return o.downloader.DownloadFile(ctx, o.source.From)
}

func (o *httpOpener) String() string {
	return o.source.String()
}

// fallbackOpener downloads the first URL that works.
type fallbackOpener struct {
	source     config.BytesSource
	downloader FileDownloader
	urls       []string
}

func (o *fallbackOpener) Open(ctx context.Context) (io.ReadCloser, error) {
	err := errNoFallbackURL

	for _, url := range o.urls {
		var body io.ReadCloser

		body, err = o.downloader.DownloadFile(ctx, url)
		if err == nil {
			return body, nil
		}

		log.FromCtx(ctx).WithField("link", url).Warnf("can't download suffix list, trying next URL: %s", err)

		if ctx.Err() != nil {
			break
		}
	}

	return nil, err
}

func (o *fallbackOpener) String() string {
	return o.source.String()
}

type fileOpener struct {
	source config.BytesSource
}

func (o *fileOpener) Open(context.Context) (io.ReadCloser, error) {
	return os.Open(o.source.From)
}

func (o *fileOpener) String() string {
	return o.source.String()
}

type snapshotOpener struct{}

func (o *snapshotOpener) Open(context.Context) (io.ReadCloser, error) {
	return io.NopCloser(strings.NewReader(snapshot.Data)), nil
}

func (o *snapshotOpener) String() string {
	return "snapshot"
}
