// Copyright 2016 The BMC Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package main

import (
	"compress/bzip2"
	"compress/gzip"
	"io"
	"os"
	"strings"
)

// path2Reader opens p for reading, transparently decompressing .gz/.bz2
// suffixes, the way cmd/gini's path2Reader does. "-" means stdin.
func path2Reader(p string) (io.Reader, error) {
	if p == "-" {
		return os.Stdin, nil
	}
	st, err := os.Stat(p)
	if err != nil {
		return nil, err
	}
	if st.Mode()&os.ModeSymlink != 0 {
		q, err := os.Readlink(p)
		if err != nil {
			return nil, err
		}
		p = q
	}
	f, err := os.Open(p)
	if err != nil {
		return nil, err
	}
	if strings.HasSuffix(p, ".gz") {
		return gzip.NewReader(f)
	}
	if strings.HasSuffix(p, ".bz2") {
		return bzip2.NewReader(f), nil
	}
	return f, nil
}

// path2Writer opens p for writing. "-" means stdout. An empty p means no
// output is wanted at all, and path2Writer returns a nil io.Writer.
func path2Writer(p string) (io.WriteCloser, error) {
	if p == "" {
		return nil, nil
	}
	if p == "-" {
		return nopCloser{os.Stdout}, nil
	}
	return os.Create(p)
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

// stripCompressedSuffix removes a trailing .gz/.bz2 so format detection
// runs against the underlying file's real extension.
func stripCompressedSuffix(p string) string {
	if strings.HasSuffix(p, ".gz") {
		return p[:len(p)-len(".gz")]
	}
	if strings.HasSuffix(p, ".bz2") {
		return p[:len(p)-len(".bz2")]
	}
	return p
}

// isAIGPath reports whether p names an AIGER file by extension, and
// whether it is the binary (.aig) rather than ascii (.aag) variant.
func isAIGPath(p string) (aigFmt bool, binary bool) {
	q := stripCompressedSuffix(p)
	if strings.HasSuffix(q, ".aig") {
		return true, true
	}
	if strings.HasSuffix(q, ".aag") {
		return true, false
	}
	return false, false
}
