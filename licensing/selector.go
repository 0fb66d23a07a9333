package licensing

import (
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/smarty/curator/contracts"
)

const (
	sourceArchiveSuffix    = "-sources.jar"
	binaryArchiveExtension = "jar"
)

// Selector picks a sniffer from the file name alone. A source archive also
// carries the binary archive extension, so the suffix is checked first.
type Selector struct {
	text    *TextSniffer
	logger  *zap.Logger
	unknown *UnknownSniffer
}

func NewSelector(catalog *Catalog, files contracts.FileOpener, headerLines int, logger *zap.Logger) *Selector {
	return &Selector{
		text:    NewTextSniffer(catalog, files, headerLines, logger),
		logger:  logger,
		unknown: NewUnknownSniffer(),
	}
}

func (this *Selector) Select(path string) contracts.LicenseSniffer {
	name := filepath.Base(path)

	switch {
	case strings.HasSuffix(name, sourceArchiveSuffix):
		return this.sourceArchive()
	case extension(name) == binaryArchiveExtension:
		return NewArchiveBinarySniffer(this.sourceArchive, this.logger)
	case this.text.catalog.IsSourceFile(name):
		return this.text
	default:
		return this.unknown
	}
}

func (this *Selector) sourceArchive() contracts.LicenseSniffer {
	return NewArchiveAggregateSniffer(this.text, this.logger)
}
