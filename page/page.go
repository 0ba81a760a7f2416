// Package page locates and loads the document a palette is built from.
package page

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/swatchkit/swatchkit/dom"
	"github.com/swatchkit/swatchkit/filesystem"
	"github.com/swatchkit/swatchkit/internal/cache"
	"github.com/swatchkit/swatchkit/log"
	"github.com/swatchkit/swatchkit/network"
)

// Stdin is the location that reads the document from standard input.
const Stdin = "-"

// Kind tells where a document came from.
type Kind int

const (
	File Kind = iota
	Input
	Remote
)

func (k Kind) String() string {
	switch k {
	case Input:
		return "stdin"
	case Remote:
		return "remote"
	default:
		return "file"
	}
}

// Source describes a loaded document.
type Source struct {
	Location string
	Kind     Kind
	Cached   bool
	Size     int
}

// KindOf classifies a location.
func KindOf(location string) Kind {
	switch {
	case location == Stdin:
		return Input
	case strings.HasPrefix(location, "http://"), strings.HasPrefix(location, "https://"):
		return Remote
	default:
		return File
	}
}

// stdin is swapped in tests.
var stdin io.Reader = os.Stdin

// Read returns the raw bytes of the document at location. Remote documents are served
// from the page cache while fresh and stored there after a fetch.
func Read(ctx context.Context, location string) ([]byte, Source, error) {
	source := Source{Location: location, Kind: KindOf(location)}

	var (
		data []byte
		err  error
	)

	switch source.Kind {
	case Input:
		data, err = io.ReadAll(stdin)
	case Remote:
		data, source.Cached, err = fetch(ctx, location)
	default:
		data, err = filesystem.API().ReadFile(location)
	}
	if err != nil {
		return nil, source, fmt.Errorf("load %s: %w", location, err)
	}

	source.Size = len(data)
	log.WithFields(logrus.Fields{
		"location": location,
		"kind":     source.Kind.String(),
		"bytes":    source.Size,
		"cached":   source.Cached,
	}).Infof("document loaded")
	return data, source, nil
}

// Load reads and parses the document at location.
func Load(ctx context.Context, location string) (*dom.Document, Source, error) {
	data, source, err := Read(ctx, location)
	if err != nil {
		return nil, source, err
	}

	doc, err := dom.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, source, err
	}
	return doc, source, nil
}

func fetch(ctx context.Context, url string) ([]byte, bool, error) {
	k := cache.GenerateKey(url)
	if cache.Enabled() {
		if entry, ok := cache.Read(k); ok {
			return entry.Body, true, nil
		}
	}

	body, contentType, err := network.Get(ctx, url)
	if err != nil {
		return nil, false, err
	}

	if cache.Enabled() {
		entry := &cache.Entry{URL: url, ContentType: contentType, Body: body, FetchedAt: time.Now()}
		if err := cache.Write(k, entry); err != nil {
			log.Warnf("could not cache %s: %s", url, err)
		}
	}
	return body, false, nil
}
