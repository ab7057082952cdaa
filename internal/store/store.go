package store

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/reitmaier/banjara-api/internal/errors"
)

// ExistsFunc answers whether an asset with the given content hash is
// already known to the owning entity repository.
type ExistsFunc func(ctx context.Context, hash string) (bool, error)

// Store persists uploaded byte streams as content-addressed files in a
// single directory. Incoming bytes always land in a uniquely-named temp
// file first; the final name is only taken by an atomic rename, so a
// partially-written file can never be mistaken for a complete asset.
type Store struct {
	dir string
}

// New creates the directory if needed and returns a store over it
func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.IOError(err)
	}
	return &Store{dir: dir}, nil
}

// Dir returns the directory assets are stored under
func (s *Store) Dir() string { return s.dir }

// Ingest writes the stream to a temp file, hashes it, checks the hash
// against exists, and renames the temp file to <hash>.<ext>. On any
// failure the temp file is removed; callers must persist metadata only
// after Ingest returns successfully.
func (s *Store) Ingest(ctx context.Context, r io.Reader, ext string, exists ExistsFunc) (hash string, path string, err error) {
	tmpPath := filepath.Join(s.dir, uuid.NewString()+".tmp")
	hash, err = writeTemp(tmpPath, r)
	if err != nil {
		return "", "", err
	}

	found, err := exists(ctx, hash)
	if err != nil {
		os.Remove(tmpPath)
		return "", "", err
	}
	if found {
		os.Remove(tmpPath)
		return hash, "", errors.New(errors.CodeConflict, fmt.Sprintf("asset with hash (%s) already exists", hash))
	}

	path = filepath.Join(s.dir, hash+"."+ext)
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return "", "", errors.IOError(err)
	}
	return hash, path, nil
}

// SaveNamed writes the stream to a temp file and renames it to the
// given final name. Used for assets whose stored names are not derived
// from their content hash (query recordings, comments, translation
// audio); the temp-then-rename discipline is the same as Ingest.
func (s *Store) SaveNamed(r io.Reader, name string) (string, error) {
	tmpPath := filepath.Join(s.dir, uuid.NewString()+".tmp")
	if _, err := writeTemp(tmpPath, r); err != nil {
		return "", err
	}

	path := filepath.Join(s.dir, name)
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return "", errors.IOError(err)
	}
	return path, nil
}

// Remove deletes a stored asset; used by callers cleaning up after a
// metadata insert failed.
func (s *Store) Remove(path string) {
	os.Remove(path)
}

// writeTemp copies r into tmpPath while hashing it, removing tmpPath on
// any error
func writeTemp(tmpPath string, r io.Reader) (string, error) {
	file, err := os.Create(tmpPath)
	if err != nil {
		return "", errors.IOError(err)
	}

	// MD5 is a dedup key here, not a security boundary
	digest := md5.New()
	_, err = io.Copy(io.MultiWriter(file, digest), r)
	closeErr := file.Close()
	if err == nil {
		err = closeErr
	}
	if err != nil {
		os.Remove(tmpPath)
		return "", errors.IOError(err)
	}
	return hex.EncodeToString(digest.Sum(nil)), nil
}
