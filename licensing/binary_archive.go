package licensing

import (
	"strings"

	"github.com/klauspost/compress/zip"
	"go.uber.org/zap"

	"github.com/smarty/curator/contracts"
)

// ArchiveBinarySniffer trusts the Bundle-License attribute of a jar's
// manifest. Jars without one are handed to the fallback, which is only
// constructed when needed.
type ArchiveBinarySniffer struct {
	fallback func() contracts.LicenseSniffer
	logger   *zap.Logger
}

func NewArchiveBinarySniffer(fallback func() contracts.LicenseSniffer, logger *zap.Logger) *ArchiveBinarySniffer {
	return &ArchiveBinarySniffer{fallback: fallback, logger: logger}
}

func (this *ArchiveBinarySniffer) DetermineLicense(path string) string {
	archive, err := zip.OpenReader(path)
	if err != nil {
		this.logger.Warn("could not determine license", zap.String("path", path), zap.Error(err))
		return contracts.LicenseUnknown
	}
	license := this.declaredLicense(archive, path)
	_ = archive.Close()

	if strings.TrimSpace(license) != "" {
		return license
	}
	this.logger.Debug("no declared license, scanning archive entries", zap.String("path", path))
	return this.fallback().DetermineLicense(path)
}

func (this *ArchiveBinarySniffer) declaredLicense(archive *zip.ReadCloser, path string) string {
	for _, file := range archive.File {
		if !strings.EqualFold(file.Name, jarManifestPath) {
			continue
		}
		reader, err := file.Open()
		if err != nil {
			this.logger.Warn("could not open jar manifest", zap.String("path", path), zap.Error(err))
			return ""
		}
		attributes, err := parseMainAttributes(reader)
		_ = reader.Close()
		if err != nil {
			this.logger.Warn("could not read jar manifest", zap.String("path", path), zap.Error(err))
			return ""
		}
		return attributes.Get(bundleLicenseAttribute)
	}
	return ""
}
