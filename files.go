/*
 * files.go, part of gocube.
 *
 * Copyright 2021 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package cube

import (
	"bufio"
	"errors"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"go.uber.org/zap"
)

//zstdCloser gives *zstd.Decoder the io.ReadCloser shape. Its Close
//doesn't return an error.
type zstdCloser struct {
	*zstd.Decoder
}

func (z zstdCloser) Close() error {
	z.Decoder.Close()
	return nil
}

type nopCloser struct {
	io.Reader
}

func (nopCloser) Close() error { return nil }

//decompressor returns a function that wraps a reader with the decompressor
//that corresponds to the file name: .zst or .zstd for Zstandard, .gz for gzip
//and nothing otherwise.
func decompressor(name string) (string, func(io.Reader) (io.ReadCloser, error)) {
	lname := strings.ToLower(name)
	switch {
	case strings.HasSuffix(lname, ".zst"), strings.HasSuffix(lname, ".zstd"):
		return "zstd", func(r io.Reader) (io.ReadCloser, error) {
			d, err := zstd.NewReader(r)
			if err != nil {
				return nil, err
			}
			return zstdCloser{d}, nil
		}
	case strings.HasSuffix(lname, ".gz"):
		return "gzip", func(r io.Reader) (io.ReadCloser, error) { return gzip.NewReader(r) }
	}
	return "none", func(r io.Reader) (io.ReadCloser, error) { return nopCloser{r}, nil }
}

//FileRead reads the cube file with the given name. Files ending in .gz are read
//as gzip-compressed, and files ending in .zst or .zstd as Zstandard-compressed.
//The file is closed before the function returns.
func FileRead(name string, opts ...*Options) (*Cubefile, error) {
	o := pickOptions(opts)
	f, err := os.Open(name)
	if err != nil {
		e := newError(IOError, secSource, 0, "unable to open file").wrap(err)
		e.filename = name
		e.Decorate("FileRead")
		return nil, e
	}
	defer f.Close()
	kind, newReader := decompressor(name)
	o.logger.Debug("reading cube file", zap.String("file", name), zap.String("compression", kind))
	r, err := newReader(bufio.NewReader(f))
	if err != nil {
		e := newError(IOError, secSource, 0, "unable to set up %s decompression", kind).wrap(err)
		e.filename = name
		e.Decorate("FileRead")
		return nil, e
	}
	defer r.Close()
	C, err := read(r, o)
	if err != nil {
		var e *Error
		if errors.As(err, &e) {
			e.filename = name
		}
		return nil, errDecorate(err, "FileRead")
	}
	C.filename = name
	return C, nil
}
