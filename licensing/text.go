package licensing

import (
	"bufio"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/smarty/curator/contracts"
)

const DefaultHeaderLines = 100

// TextSniffer searches the header of a source or text file for a mention of
// a well-known license. Only the first lineLimit lines are read; notices
// further down the file are missed.
type TextSniffer struct {
	catalog   *Catalog
	files     contracts.FileOpener
	lineLimit int
	logger    *zap.Logger
}

func NewTextSniffer(catalog *Catalog, files contracts.FileOpener, lineLimit int, logger *zap.Logger) *TextSniffer {
	if lineLimit < 1 {
		lineLimit = DefaultHeaderLines
	}
	return &TextSniffer{catalog: catalog, files: files, lineLimit: lineLimit, logger: logger}
}

func (this *TextSniffer) DetermineLicense(path string) string {
	reader, err := this.files.Open(path)
	if err != nil {
		this.logger.Warn("could not determine license", zap.String("path", path), zap.Error(err))
		return contracts.LicenseUnknown
	}
	defer func() { _ = reader.Close() }()

	license, err := this.DetermineLicenseOf(reader)
	if err != nil {
		this.logger.Warn("could not determine license", zap.String("path", path), zap.Error(err))
		return contracts.LicenseUnknown
	}
	return license
}

// DetermineLicenseOf reports the license mentioned in the header of the
// stream. Lines are joined without separators so a pattern may span what
// were two lines.
func (this *TextSniffer) DetermineLicenseOf(source io.Reader) (string, error) {
	header, err := this.readHeader(source)
	if err != nil {
		return contracts.LicenseUnknown, err
	}
	if license, found := this.catalog.Match(header); found {
		return license, nil
	}
	return contracts.LicenseUnknown, nil
}

// readHeader joins the first lineLimit lines. A line ends at "\n", "\r" or
// "\r\n".
func (this *TextSniffer) readHeader(source io.Reader) (string, error) {
	reader := bufio.NewReader(source)
	builder := new(strings.Builder)

	for lines := 0; lines < this.lineLimit; {
		character, err := reader.ReadByte()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}
		switch character {
		case '\n':
			lines++
		case '\r':
			lines++
			if next, err := reader.Peek(1); err == nil && next[0] == '\n' {
				_, _ = reader.ReadByte()
			}
		default:
			builder.WriteByte(character)
		}
	}
	return builder.String(), nil
}
