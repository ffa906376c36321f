// Marquee - Movie Catalog Browser
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package uploads

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// FieldName is the multipart form field that carries the image.
const FieldName = "image"

// maxFormMemory is how much of a multipart body is buffered in memory
// before spilling to temp files.
const maxFormMemory = 1 << 20

var (
	// ErrNoFile is returned when the request has no file in FieldName.
	ErrNoFile = errors.New("no file in upload")

	// ErrTooLarge is returned when the request body exceeds the size cap.
	ErrTooLarge = errors.New("upload too large")
)

// Result describes a stored upload.
type Result struct {
	Name string // file name inside the upload directory
	Path string // full path on disk
	Size int64
}

// DiskStorage writes uploads into a single directory.
type DiskStorage struct {
	dir      string
	maxBytes int64
	now      func() time.Time
}

// NewDiskStorage creates the upload directory if needed. maxBytes <= 0
// disables the request size cap.
func NewDiskStorage(dir string, maxBytes int64) (*DiskStorage, error) {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &DiskStorage{dir: dir, maxBytes: maxBytes, now: time.Now}, nil
}

// Dir returns the upload directory.
func (s *DiskStorage) Dir() string {
	return s.dir
}

// FileName returns the stored name for an upload received at t: the Unix
// time in milliseconds followed by the extension of the client's file name.
// The client's base name is never used.
func FileName(original string, t time.Time) string {
	return strconv.FormatInt(t.UnixMilli(), 10) + safeExt(original)
}

// safeExt keeps the extension only when it is a plain dot-alphanumeric suffix.
func safeExt(name string) string {
	ext := filepath.Ext(filepath.Base(name))
	if len(ext) < 2 || len(ext) > 16 {
		return ""
	}
	for _, c := range ext[1:] {
		if (c < 'a' || c > 'z') && (c < 'A' || c > 'Z') && (c < '0' || c > '9') {
			return ""
		}
	}
	return ext
}

// Save reads the FieldName file from a multipart request and writes it to
// the upload directory.
func (s *DiskStorage) Save(w http.ResponseWriter, r *http.Request) (*Result, error) {
	if s.maxBytes > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, s.maxBytes)
	}

	if err := r.ParseMultipartForm(maxFormMemory); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return nil, ErrTooLarge
		}
		if errors.Is(err, http.ErrNotMultipart) {
			return nil, ErrNoFile
		}
		return nil, fmt.Errorf("parse upload: %w", err)
	}
	defer r.MultipartForm.RemoveAll() //nolint:errcheck // temp files only

	file, header, err := r.FormFile(FieldName)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, ErrNoFile
		}
		return nil, fmt.Errorf("read upload: %w", err)
	}
	defer file.Close()

	name := FileName(header.Filename, s.now())
	dest := filepath.Join(s.dir, name)

	size, err := saveReaderToFile(file, s.dir, dest)
	if err != nil {
		return nil, err
	}
	return &Result{Name: name, Path: dest, Size: size}, nil
}

// saveReaderToFile streams reader into a temp file in dir and renames it to
// destPath, so a partially written upload is never visible.
func saveReaderToFile(reader io.Reader, dir, destPath string) (int64, error) {
	tmp, err := os.CreateTemp(dir, ".upload-*")
	if err != nil {
		return 0, fmt.Errorf("failed to create file: %w", err)
	}
	tmpName := tmp.Name()

	size, err := io.Copy(tmp, reader)
	closeErr := tmp.Close()

	if err != nil {
		os.Remove(tmpName) //nolint:errcheck // Best effort cleanup on error
		return 0, fmt.Errorf("failed to save upload: %w", err)
	}
	if closeErr != nil {
		os.Remove(tmpName) //nolint:errcheck // Best effort cleanup on error
		return 0, fmt.Errorf("failed to close upload: %w", closeErr)
	}

	if err := os.Rename(tmpName, destPath); err != nil {
		os.Remove(tmpName) //nolint:errcheck // Best effort cleanup on error
		return 0, fmt.Errorf("failed to move upload into place: %w", err)
	}
	return size, nil
}
