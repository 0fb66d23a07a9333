package core

import (
	"encoding/hex"
	"hash"
	"io"

	"github.com/smarty/curator/contracts"
)

type ContentHasher struct {
	files  contracts.FileOpener
	hasher func() hash.Hash
}

func NewContentHasher(files contracts.FileOpener, hasher func() hash.Hash) *ContentHasher {
	return &ContentHasher{files: files, hasher: hasher}
}

// Digest streams the file through the hash and returns the lowercase hex
// digest. Failures are returned as *contracts.ReadError and never retried.
func (this *ContentHasher) Digest(path string) (string, error) {
	source, err := this.files.Open(path)
	if err != nil {
		return "", &contracts.ReadError{Path: path, Err: err}
	}
	defer func() { _ = source.Close() }()

	reader := NewHashReader(source, this.hasher())
	_, err = io.Copy(io.Discard, reader)
	if err != nil {
		return "", &contracts.ReadError{Path: path, Err: err}
	}
	return hex.EncodeToString(reader.Sum(nil)), nil
}
