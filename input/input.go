// Package input opens puzzle input files.  Paths are resolved through
// github.com/grailbio/base/file, so anything with a registered file
// implementation works, and paths ending in .gz are decompressed on the fly.
package input

import (
	"bufio"
	"context"
	"io"
	"io/ioutil"
	"strings"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/file"
	"github.com/grailbio/base/fileio"
	"github.com/klauspost/compress/gzip"
)

const maxLineSize = 16 * 1024 * 1024

type reader struct {
	io.Reader
	ctx  context.Context
	f    file.File
	gz   *gzip.Reader
	path string
}

// Close closes the decompressor, if any, and then the underlying file.
func (r *reader) Close() error {
	var err error
	if r.gz != nil {
		err = r.gz.Close()
	}
	if cerr := r.f.Close(r.ctx); cerr != nil && err == nil {
		err = errors.E(cerr, "close", r.path)
	}
	return err
}

// Open opens path for reading.  The caller must Close the result.
func Open(ctx context.Context, path string) (io.ReadCloser, error) {
	f, err := file.Open(ctx, path)
	if err != nil {
		return nil, errors.E(err, "open", path)
	}
	r := &reader{Reader: f.Reader(ctx), ctx: ctx, f: f, path: path}
	switch fileio.DetermineType(path) {
	case fileio.Gzip:
		if r.gz, err = gzip.NewReader(r.Reader); err != nil {
			_ = f.Close(ctx)
			return nil, errors.E(err, "gzip", path)
		}
		r.Reader = r.gz
	}
	return r, nil
}

// ReadString returns the full contents of path.
func ReadString(ctx context.Context, path string) (s string, err error) {
	var in io.ReadCloser
	if in, err = Open(ctx, path); err != nil {
		return
	}
	defer func() {
		if cerr := in.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	data, err := ioutil.ReadAll(in)
	if err != nil {
		return "", errors.E(err, "read", path)
	}
	return string(data), nil
}

// ReadLines returns the lines of path with line terminators ("\n" or
// "\r\n") removed.  A trailing newline does not produce an empty last line.
func ReadLines(ctx context.Context, path string) (lines []string, err error) {
	var in io.ReadCloser
	if in, err = Open(ctx, path); err != nil {
		return
	}
	defer func() {
		if cerr := in.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	// Scanner does not handle very long lines unless we specify an adequate
	// buffer size in advance.
	scanner := bufio.NewScanner(in)
	scanner.Buffer(nil, maxLineSize)
	for scanner.Scan() {
		lines = append(lines, strings.TrimSuffix(scanner.Text(), "\r"))
	}
	if err = scanner.Err(); err != nil {
		return nil, errors.E(err, "read", path)
	}
	return lines, nil
}
