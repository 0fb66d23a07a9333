package licensing

import (
	"github.com/klauspost/compress/zip"
	"go.uber.org/zap"

	"github.com/smarty/curator/contracts"
)

// ArchiveAggregateSniffer determines the license of a source archive (such as
// a -sources.jar) from the union of the licenses found in its text entries.
// Entries that cannot be opened or read contribute no verdict.
type ArchiveAggregateSniffer struct {
	text   *TextSniffer
	logger *zap.Logger
}

func NewArchiveAggregateSniffer(text *TextSniffer, logger *zap.Logger) *ArchiveAggregateSniffer {
	return &ArchiveAggregateSniffer{text: text, logger: logger}
}

func (this *ArchiveAggregateSniffer) DetermineLicense(path string) string {
	archive, err := zip.OpenReader(path)
	if err != nil {
		this.logger.Warn("could not determine license", zap.String("path", path), zap.Error(err))
		return contracts.LicenseUnknown
	}
	defer func() { _ = archive.Close() }()

	var verdicts []string
	for _, file := range archive.File {
		if file.FileInfo().IsDir() || !this.text.catalog.IsSourceFile(file.Name) {
			continue
		}
		license, err := this.entryLicense(file)
		if err != nil {
			this.logger.Warn("could not read archive entry",
				zap.String("path", path), zap.String("entry", file.Name), zap.Error(err))
			continue
		}
		verdicts = append(verdicts, license)
	}
	return Aggregate(verdicts)
}

func (this *ArchiveAggregateSniffer) entryLicense(file *zip.File) (string, error) {
	reader, err := file.Open()
	if err != nil {
		return contracts.LicenseUnknown, err
	}
	defer func() { _ = reader.Close() }()
	return this.text.DetermineLicenseOf(reader)
}
