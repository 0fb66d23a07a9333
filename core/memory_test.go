package core

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/smarty/curator/contracts"
)

type inMemoryFileSystem struct {
	mutex       sync.Mutex
	fileSystem  map[string]*file
	errOpen     map[string]error
	errRead     map[string]error
	errCreate   map[string]error
	errWrite    map[string]error
	errMkdirAll map[string]error
}

func newInMemoryFileSystem() *inMemoryFileSystem {
	return &inMemoryFileSystem{
		fileSystem:  make(map[string]*file),
		errOpen:     make(map[string]error),
		errRead:     make(map[string]error),
		errCreate:   make(map[string]error),
		errWrite:    make(map[string]error),
		errMkdirAll: make(map[string]error),
	}
}

func (this *inMemoryFileSystem) Stat(path string) (contracts.FileInfo, error) {
	this.mutex.Lock()
	defer this.mutex.Unlock()
	file, found := this.fileSystem[filepath.Clean(path)]
	if !found {
		return nil, os.ErrNotExist
	}
	return file, nil
}

func (this *inMemoryFileSystem) Listing(path string) (files []contracts.FileInfo, err error) {
	this.mutex.Lock()
	defer this.mutex.Unlock()
	prefix := filepath.Clean(path) + string(filepath.Separator)
	for name, file := range this.fileSystem {
		if strings.HasPrefix(name, prefix) && !strings.Contains(name[len(prefix):], string(filepath.Separator)) {
			files = append(files, file)
		}
	}
	sort.Slice(files, func(i, j int) bool { return files[i].Path() < files[j].Path() })
	return files, nil
}

func (this *inMemoryFileSystem) Open(path string) (io.ReadCloser, error) {
	this.mutex.Lock()
	defer this.mutex.Unlock()
	path = filepath.Clean(path)
	if err := this.errOpen[path]; err != nil {
		return nil, err
	}
	file, found := this.fileSystem[path]
	if !found || file.directory {
		return nil, os.ErrNotExist
	}
	var reader io.Reader = bytes.NewReader(file.contents)
	if err := this.errRead[path]; err != nil {
		reader = io.MultiReader(reader, &failingReader{err: err})
	}
	return io.NopCloser(reader), nil
}

func (this *inMemoryFileSystem) Create(path string) (io.WriteCloser, error) {
	this.mutex.Lock()
	defer this.mutex.Unlock()
	path = filepath.Clean(path)
	if err := this.errCreate[path]; err != nil {
		return nil, err
	}
	if _, found := this.fileSystem[path]; found {
		return nil, os.ErrExist
	}
	if parent, found := this.fileSystem[filepath.Dir(path)]; !found || !parent.directory {
		return nil, os.ErrNotExist
	}
	created := &file{path: path, errWrite: this.errWrite[path]}
	this.fileSystem[path] = created
	return created, nil
}

func (this *inMemoryFileSystem) MkdirAll(path string) error {
	this.mutex.Lock()
	defer this.mutex.Unlock()
	path = filepath.Clean(path)
	if err := this.errMkdirAll[path]; err != nil {
		return err
	}
	for current := path; ; current = filepath.Dir(current) {
		if existing, found := this.fileSystem[current]; found && !existing.directory {
			return os.ErrExist
		}
		this.fileSystem[current] = &file{path: current, directory: true}
		if parent := filepath.Dir(current); parent == current {
			return nil
		}
	}
}

func (this *inMemoryFileSystem) ReadFile(path string) ([]byte, error) {
	this.mutex.Lock()
	defer this.mutex.Unlock()
	file, found := this.fileSystem[filepath.Clean(path)]
	if !found || file.directory {
		return nil, os.ErrNotExist
	}
	return file.contents, nil
}

func (this *inMemoryFileSystem) WriteFile(path string, content []byte) {
	path = filepath.Clean(path)
	_ = this.MkdirAll(filepath.Dir(path))
	this.mutex.Lock()
	defer this.mutex.Unlock()
	this.fileSystem[path] = &file{path: path, contents: content}
}

/////////////////////////////////////////////////

type file struct {
	path      string
	contents  []byte
	directory bool
	errWrite  error
}

func (this *file) Write(p []byte) (n int, err error) {
	if this.errWrite != nil {
		return 0, this.errWrite
	}
	this.contents = append(this.contents, p...)
	return len(p), nil
}

func (this *file) Close() error { return nil }
func (this *file) Path() string { return this.path }
func (this *file) Size() int64  { return int64(len(this.contents)) }
func (this *file) Mode() os.FileMode {
	if this.directory {
		return os.ModeDir | 0755
	}
	return 0644
}

type failingReader struct{ err error }

func (this *failingReader) Read([]byte) (int, error) { return 0, this.err }
