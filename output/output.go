// Package output delivers rendered text to its destination: standard
// output, a text file in a chosen character encoding, or a PNG raster of
// the text drawn in a monospace TrueType font.
package output

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/unicode"
)

// ErrUnknownEncoding is returned for an encoding name that neither the
// IANA nor the WHATWG registry knows.
var ErrUnknownEncoding = errors.New("unknown encoding")

// Sink receives the rendered text of one conversion.
type Sink interface {
	Write(text string) error
}

// ErrRasterNeedsPath is returned when PNG output is requested without a
// file to write it to.
var ErrRasterNeedsPath = errors.New("png output needs an output file")

// Open picks the sink for path: w when path is empty and an encoded text
// file otherwise. With raster set the text is drawn into a PNG at path
// instead, whatever its extension, and the encoding is not used.
func Open(path, encodingName string, raster bool, w io.Writer) (Sink, error) {
	switch {
	case raster && path == "":
		return nil, ErrRasterNeedsPath
	case raster:
		return NewPNG(path, DefaultPNGOptions()), nil
	case path == "":
		return NewStdout(w), nil
	}
	return NewFile(path, encodingName)
}

// Stdout writes text unchanged to a writer, normally os.Stdout.
type Stdout struct {
	w io.Writer
}

// NewStdout returns a sink writing to w.
func NewStdout(w io.Writer) *Stdout {
	return &Stdout{w: w}
}

// Write implements Sink.
func (s *Stdout) Write(text string) error {
	_, err := io.WriteString(s.w, text)
	return errors.Wrap(err, "failed to write standard output")
}

// File writes text to a file in a fixed character encoding.
type File struct {
	path         string
	encodingName string
	enc          encoding.Encoding
}

// NewFile returns a sink for path. The encoding is resolved now, so an
// unknown name fails before anything is created on disk. An empty name
// means UTF-8.
func NewFile(path, encodingName string) (*File, error) {
	enc, err := LookupEncoding(encodingName)
	if err != nil {
		return nil, err
	}
	return &File{path: path, encodingName: encodingName, enc: enc}, nil
}

// Write implements Sink. The text is encoded before the file is touched,
// so a character the encoding cannot represent leaves no partial output.
func (f *File) Write(text string) (err error) {
	encoded, err := f.enc.NewEncoder().String(text)
	if err != nil {
		return errors.Wrapf(err, "failed to encode output as %s", f.name())
	}

	out, err := os.Create(f.path)
	if err != nil {
		return errors.Wrap(err, "failed to create output file")
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = errors.Wrap(cerr, "failed to close output file")
		}
	}()

	_, err = io.WriteString(out, encoded)
	return errors.Wrap(err, "failed to write output file")
}

func (f *File) name() string {
	if f.encodingName == "" {
		return "utf-8"
	}
	return f.encodingName
}

// LookupEncoding resolves an encoding name, trying IANA names and aliases
// first and WHATWG labels second. An empty name means UTF-8.
func LookupEncoding(name string) (encoding.Encoding, error) {
	if name == "" {
		return unicode.UTF8, nil
	}
	if enc, err := ianaindex.IANA.Encoding(name); err == nil && enc != nil {
		return enc, nil
	}
	if enc, err := htmlindex.Get(name); err == nil {
		return enc, nil
	}
	return nil, errors.Wrapf(ErrUnknownEncoding, "%q", name)
}
