package contracts

import (
	"io"
	"os"
)

type FileOpener interface {
	Open(path string) (io.ReadCloser, error)
}

// FileCreator creates a new file, failing if one already exists at path.
type FileCreator interface {
	Create(path string) (io.WriteCloser, error)
}

type DirectoryMaker interface {
	MkdirAll(path string) error
}

type DirectoryLister interface {
	Listing(path string) ([]FileInfo, error)
}

type FileReader interface {
	ReadFile(path string) ([]byte, error)
}

type FileChecker interface {
	Stat(path string) (FileInfo, error)
}

type FileInfo interface {
	Path() string
	Size() int64
	Mode() os.FileMode
}

func IsRegular(info FileInfo) bool {
	return info != nil && info.Mode().IsRegular()
}

func IsDirectory(info FileInfo) bool {
	return info != nil && info.Mode().IsDir()
}
