package shell

import (
	"io"
	"os"
	"path/filepath"

	"github.com/smarty/curator/contracts"
)

type DiskFileSystem struct{}

func NewDiskFileSystem() *DiskFileSystem {
	return &DiskFileSystem{}
}

func (this *DiskFileSystem) Stat(path string) (contracts.FileInfo, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	return newFileInfo(path, info), nil
}

func (this *DiskFileSystem) Listing(path string) (listing []contracts.FileInfo, err error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, err
	}
	for _, entry := range entries {
		info, err := entry.Info()
		if err != nil {
			return nil, err
		}
		listing = append(listing, newFileInfo(filepath.Join(path, entry.Name()), info))
	}
	return listing, nil
}

func (this *DiskFileSystem) Open(path string) (io.ReadCloser, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	return file, nil
}

func (this *DiskFileSystem) Create(path string) (io.WriteCloser, error) {
	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		return nil, err
	}
	return file, nil
}

func (this *DiskFileSystem) MkdirAll(path string) error {
	return os.MkdirAll(path, 0755)
}

func (this *DiskFileSystem) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

////////////////////////////////////////

type FileInfo struct {
	path string
	size int64
	mode os.FileMode
}

func newFileInfo(path string, info os.FileInfo) FileInfo {
	return FileInfo{path: path, size: info.Size(), mode: info.Mode()}
}

func (this FileInfo) Path() string      { return this.path }
func (this FileInfo) Size() int64       { return this.size }
func (this FileInfo) Mode() os.FileMode { return this.mode }
