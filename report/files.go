/*
 * files.go, part of gonci.
 *
 *
 * Copyright 2024 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
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
 *
 */

//Package report writes the outputs of a run: the raw interaction list and the
//files for the descriptors, optionally compressed.
package report

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/rmera/gonci/internal/logging"
)

//Compression formats.
const (
	None = ""
	Zstd = "zst"
	Gzip = "gz"
)

//ParseCompression checks a compression name: "", "none", "zst", "zstd", "gz" or "gzip".
func ParseCompression(s string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return None, nil
	case "zst", "zstd":
		return Zstd, nil
	case "gz", "gzip":
		return Gzip, nil
	}
	return None, fmt.Errorf("unknown compression %q, use zst or gz", s)
}

type file struct {
	f *os.File
	h io.WriteCloser //nil for plain files
}

func (F *file) Write(p []byte) (int, error) {
	if F.h != nil {
		return F.h.Write(p)
	}
	return F.f.Write(p)
}

func (F *file) Close() error {
	var err error
	if F.h != nil {
		err = F.h.Close()
	}
	if e := F.f.Close(); err == nil {
		err = e
	}
	return err
}

//Create creates the file name, with the .zst or .gz extension added if compress
//asks for it, and returns it with its final name. Closing the returned writer
//flushes the compressor and closes the file.
func Create(name, compress string) (io.WriteCloser, string, error) {
	if compress != None {
		name += "." + compress
	}
	f, err := os.Create(name)
	if err != nil {
		return nil, name, newError(name, "Create", err)
	}
	F := &file{f: f}
	switch compress {
	case Zstd:
		F.h, err = zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
	case Gzip:
		F.h, err = gzip.NewWriterLevel(f, gzip.BestCompression)
	case None:
	default:
		err = fmt.Errorf("unknown compression %q", compress)
	}
	if err != nil {
		f.Close()
		return nil, name, newError(name, "Create", err)
	}
	return F, name, nil
}

//Writer writes the files of one run, all with the same prefix and compression.
type Writer struct {
	Prefix   string
	Compress string
	log      logging.Logger
	written  []string
}

//NewWriter returns a writer for files named prefix + suffix. A nil log is
//replaced by the nop logger.
func NewWriter(prefix, compress string, log logging.Logger) *Writer {
	if log == nil {
		log = logging.NewNopLogger()
	}
	return &Writer{Prefix: prefix, Compress: compress, log: log}
}

//Write creates the file prefix + suffix and gives it to fn. It returns the name
//of the file.
func (W *Writer) Write(suffix string, fn func(io.Writer) error) (string, error) {
	return W.write(suffix, W.Compress, fn)
}

//WritePlain is like Write, but never compresses. It is used for files that other
//programs read, such as the PyMOL script.
func (W *Writer) WritePlain(suffix string, fn func(io.Writer) error) (string, error) {
	return W.write(suffix, None, fn)
}

func (W *Writer) write(suffix, compress string, fn func(io.Writer) error) (string, error) {
	w, name, err := Create(W.Prefix+suffix, compress)
	if err != nil {
		return name, err
	}
	if err := fn(w); err != nil {
		w.Close()
		return name, newError(name, "Write", err)
	}
	if err := w.Close(); err != nil {
		return name, newError(name, "Write", err)
	}
	W.written = append(W.written, name)
	W.log.Info("file written", logging.String("file", name))
	return name, nil
}

//Written returns the names of the files written so far.
func (W *Writer) Written() []string {
	return W.written
}

//Error is a failure writing an output file.
type Error struct {
	message  string
	filename string
	deco     []string
}

func newError(name, caller string, err error) *Error {
	return &Error{message: err.Error(), filename: name, deco: []string{caller}}
}

func (err *Error) Error() string {
	return fmt.Sprintf("can't write %s: %s", err.filename, err.message)
}

//Decorate adds new information to the error
func (err *Error) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

//FileName returns the name of the file that could not be written.
func (err *Error) FileName() string { return err.filename }

//Critical returns true.
func (err *Error) Critical() bool { return true }
