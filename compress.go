/*
 * compress.go, part of goligand.
 *
 *
 * Copyright 2024 rmeraaatacademicosdotutadotcl
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
 * goligand is developed at Universidad de Tarapaca (UTA)
 *
 *
 */

package chem

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"os"
	"strings"

	"github.com/edsrzf/mmap-go"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

//structureSource is what openStructureFile returns. Close releases the
//decompressor or the mapping, then the underlying file.
type structureSource struct {
	r      io.Reader
	fp     *os.File
	mm     mmap.MMap
	closer func() error //decompressor, may be nil
}

func (S *structureSource) Read(p []byte) (int, error) {
	return S.r.Read(p)
}

func (S *structureSource) Close() error {
	var errs []error
	if S.closer != nil {
		if err := S.closer(); err != nil {
			errs = append(errs, err)
		}
	}
	if S.mm != nil {
		if err := S.mm.Unmap(); err != nil {
			errs = append(errs, err)
		}
	}
	if err := S.fp.Close(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

//openStructureFile opens name for reading. Files ending in .gz are read through a gzip
//decompressor, .zst through zstd. Other files are memory-mapped; if the mapping
//fails, a buffered reader is used instead.
func openStructureFile(name string) (io.ReadCloser, error) {
	fp, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	src := &structureSource{fp: fp}
	switch {
	case strings.HasSuffix(name, ".gz"):
		zr, err := gzip.NewReader(bufio.NewReader(fp))
		if err != nil {
			fp.Close()
			return nil, err
		}
		src.r = zr
		src.closer = zr.Close
	case strings.HasSuffix(name, ".zst"):
		zr, err := zstd.NewReader(bufio.NewReader(fp))
		if err != nil {
			fp.Close()
			return nil, err
		}
		src.r = zr
		src.closer = func() error { zr.Close(); return nil }
	default:
		fi, err := fp.Stat()
		if err != nil {
			fp.Close()
			return nil, err
		}
		//zero-length files can't be mapped
		if fi.Size() > 0 {
			if mm, err := mmap.Map(fp, mmap.RDONLY, 0); err == nil {
				src.mm = mm
				src.r = bytes.NewReader(mm)
				break
			}
		}
		src.r = bufio.NewReader(fp)
	}
	return src, nil
}

//compressedExt returns the compression suffix of name (".gz" or ".zst") or
//the empty string.
func compressedExt(name string) string {
	for _, e := range []string{".gz", ".zst"} {
		if strings.HasSuffix(name, e) {
			return e
		}
	}
	return ""
}
