package core

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/smarty/curator/contracts"
)

const (
	manifestFilenameColumn = "Filename"
	manifestColumnCount    = 2
	byteOrderMark          = "\ufeff"
)

type ManifestLoaderFileSystem interface {
	contracts.FileChecker
	contracts.FileOpener
}

// ManifestLoader reads the CSV manifest: a header naming the Filename and
// digest columns, then exactly two fields per row.
type ManifestLoader struct {
	fileSystem ManifestLoaderFileSystem
	hashColumn string
}

func NewManifestLoader(fileSystem ManifestLoaderFileSystem, hashColumn string) *ManifestLoader {
	return &ManifestLoader{fileSystem: fileSystem, hashColumn: hashColumn}
}

func (this *ManifestLoader) Load(path string) (contracts.Manifest, error) {
	info, err := this.fileSystem.Stat(path)
	if err != nil || !contracts.IsRegular(info) {
		return nil, fmt.Errorf("%w: %q", contracts.ErrManifestNotFile, path)
	}
	reader, err := this.fileSystem.Open(path)
	if err != nil {
		return nil, &contracts.ReadError{Path: path, Err: err}
	}
	defer func() { _ = reader.Close() }()
	return this.Parse(reader)
}

func (this *ManifestLoader) Parse(source io.Reader) (contracts.Manifest, error) {
	reader := csv.NewReader(source)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("%w: missing header row", contracts.ErrMalformedManifest)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s", contracts.ErrMalformedManifest, err)
	}
	filenameIndex, hashIndex, err := this.columns(header)
	if err != nil {
		return nil, err
	}

	manifest := make(contracts.Manifest)
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %s", contracts.ErrMalformedManifest, err)
		}
		if len(record) != manifestColumnCount {
			line, _ := reader.FieldPos(0)
			return nil, fmt.Errorf("%w: line %d has %d fields; each row must have exactly two (%q and %q)",
				contracts.ErrMalformedManifest, line, len(record), manifestFilenameColumn, this.hashColumn)
		}
		manifest.Add(record[filenameIndex], record[hashIndex])
	}
	return manifest, nil
}

func (this *ManifestLoader) columns(header []string) (filenameIndex, hashIndex int, err error) {
	if len(header) != manifestColumnCount {
		return 0, 0, fmt.Errorf("%w: header must have exactly two columns (%q and %q)",
			contracts.ErrMalformedManifest, manifestFilenameColumn, this.hashColumn)
	}
	filenameIndex, hashIndex = -1, -1
	for index, name := range header {
		switch strings.TrimPrefix(name, byteOrderMark) {
		case manifestFilenameColumn:
			filenameIndex = index
		case this.hashColumn:
			hashIndex = index
		}
	}
	if filenameIndex < 0 || hashIndex < 0 {
		return 0, 0, fmt.Errorf("%w: header must name the %q and %q columns",
			contracts.ErrMalformedManifest, manifestFilenameColumn, this.hashColumn)
	}
	return filenameIndex, hashIndex, nil
}
