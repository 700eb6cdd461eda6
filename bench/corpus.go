package bench

import (
	"fmt"
	"os"
	"strings"

	"github.com/mhr3/strbench/ascii"
	"github.com/mhr3/strbench/utf8"
)

// Source supplies the initial corpus text.
type Source interface {
	Read() (string, error)
}

// FileSource reads the corpus from a file.
type FileSource struct {
	Path string
}

func (f FileSource) Read() (string, error) {
	b, err := os.ReadFile(f.Path)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// StringSource is an in-memory corpus.
type StringSource string

func (s StringSource) Read() (string, error) {
	return string(s), nil
}

// Corpus is the haystack. It only ever grows, and it is owned by a single
// goroutine: engines only see the strings returned by Snapshot.
type Corpus struct {
	buf strings.Builder
}

// NewCorpus returns a corpus holding text.
func NewCorpus(text string) *Corpus {
	c := &Corpus{}
	c.buf.WriteString(text)
	return c
}

// Load reads the initial text from src. Any failure is fatal to a run and
// is reported wrapped in ErrCorpusUnavailable.
func Load(src Source) (*Corpus, error) {
	text, err := src.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorpusUnavailable, err)
	}
	return NewCorpus(text), nil
}

// Append adds suffix to the end of the corpus.
func (c *Corpus) Append(suffix string) {
	c.buf.WriteString(suffix)
}

// Snapshot returns the current text. Later appends never change a snapshot
// already handed out.
func (c *Corpus) Snapshot() string {
	return c.buf.String()
}

// Len returns the corpus size in bytes.
func (c *Corpus) Len() int {
	return c.buf.Len()
}

// CorpusInfo summarizes a corpus for the startup log.
type CorpusInfo struct {
	Bytes     int
	ASCII     bool
	ValidUTF8 bool
}

// Describe inspects the current text.
func (c *Corpus) Describe() CorpusInfo {
	s := c.Snapshot()
	return CorpusInfo{
		Bytes:     len(s),
		ASCII:     ascii.ValidString(s),
		ValidUTF8: utf8.ValidString(s),
	}
}
