package core

import (
	"io"
	"sync"

	"github.com/smarty/curator/contracts"
)

// ResultWriter renders one line per result. Each line is written with a
// single call while holding the lock, so lines never interleave.
type ResultWriter struct {
	mutex  sync.Mutex
	writer io.Writer
}

func NewResultWriter(writer io.Writer) *ResultWriter {
	return &ResultWriter{writer: writer}
}

func (this *ResultWriter) WriteHeader() error {
	return this.writeLine(contracts.ResultHeader)
}

func (this *ResultWriter) Write(result contracts.VerificationResult) error {
	return this.writeLine(result.Line())
}

func (this *ResultWriter) writeLine(line string) error {
	this.mutex.Lock()
	defer this.mutex.Unlock()
	_, err := io.WriteString(this.writer, line+"\n")
	return err
}
