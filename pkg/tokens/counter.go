// Package tokens counts model tokens and characters in source content.
package tokens

import (
	"fmt"
	"sync"
	"unicode/utf8"

	"github.com/charmbracelet/log"
	"github.com/pkoukk/tiktoken-go"
	tiktokenloader "github.com/pkoukk/tiktoken-go-loader"
)

// DefaultEncoding is the encoding used when none is configured.
const DefaultEncoding = "cl100k_base"

var loaderOnce sync.Once

// useOfflineLoader makes tiktoken read its BPE ranks from embedded data
// instead of downloading them.
func useOfflineLoader() {
	loaderOnce.Do(func() {
		tiktoken.SetBpeLoader(tiktokenloader.NewOfflineLoader())
	})
}

// Metrics are the counts for one piece of content.
type Metrics struct {
	Tokens int `json:"tokens"`
	Chars  int `json:"chars"`
}

// Counter counts tokens with a tiktoken encoding. When the encoding cannot
// be built it estimates one token per four bytes. Safe for concurrent use.
type Counter struct {
	encoding string
	enc      *tiktoken.Tiktoken
	err      error
	logger   *log.Logger
	warnOnce sync.Once
}

// NewCounter builds a counter for the named encoding. An empty name selects
// DefaultEncoding. A nil logger selects log.Default.
func NewCounter(encoding string, logger *log.Logger) *Counter {
	if encoding == "" {
		encoding = DefaultEncoding
	}
	if logger == nil {
		logger = log.Default()
	}

	useOfflineLoader()
	enc, err := tiktoken.GetEncoding(encoding)
	if err != nil {
		err = fmt.Errorf("load encoding %s: %w", encoding, err)
	}

	return &Counter{encoding: encoding, enc: enc, err: err, logger: logger}
}

// Encoding returns the configured encoding name.
func (c *Counter) Encoding() string {
	return c.encoding
}

// Estimated reports whether counts are byte estimates.
func (c *Counter) Estimated() bool {
	return c.enc == nil
}

// Count returns the token and rune counts of content. Special token text is
// counted as ordinary text.
func (c *Counter) Count(content string) Metrics {
	return Metrics{Tokens: c.tokens(content), Chars: utf8.RuneCountInString(content)}
}

func (c *Counter) tokens(content string) int {
	if c.enc == nil {
		c.warnOnce.Do(func() {
			c.logger.Warn("token encoder unavailable, estimating from bytes",
				"encoding", c.encoding, "error", c.err)
		})
		return (len(content) + 3) / 4
	}
	return len(c.enc.Encode(content, nil, nil))
}
