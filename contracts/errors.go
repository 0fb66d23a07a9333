package contracts

import (
	"errors"
	"fmt"
)

var (
	ErrUsage               = errors.New("usage: curate [flags] <manifest csv> <source directory> <destination directory>")
	ErrUnknownAlgorithm    = errors.New("unknown hash algorithm")
	ErrMalformedManifest   = errors.New("malformed manifest")
	ErrManifestNotFile     = errors.New("manifest must be an existing file")
	ErrSourceRoot          = errors.New("source must be an existing directory")
	ErrDestinationIsFile   = errors.New("destination already exists as a file")
	ErrDestinationNotEmpty = errors.New("destination already exists and is not empty")
)

// ReadError reports a file that could not be opened or read to completion.
type ReadError struct {
	Path string
	Err  error
}

func (this *ReadError) Error() string {
	return fmt.Sprintf("reading %q: %s", this.Path, this.Err)
}

func (this *ReadError) Unwrap() error { return this.Err }
