package core

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/smarty/curator/contracts"
)

type ArtifactVerifierFileSystem interface {
	contracts.FileChecker
	contracts.FileOpener
	contracts.FileCreator
	contracts.DirectoryMaker
}

type digester interface {
	Digest(path string) (string, error)
}

// ArtifactVerifier runs the locate, hash, compare, copy and license steps for
// a single manifest entry. Every step is attempted once; the first failure
// decides the result.
type ArtifactVerifier struct {
	fileSystem ArtifactVerifierFileSystem
	hasher     digester
	sniffers   contracts.SnifferSelector
	logger     *zap.Logger
}

func NewArtifactVerifier(
	fileSystem ArtifactVerifierFileSystem,
	hasher digester,
	sniffers contracts.SnifferSelector,
	logger *zap.Logger,
) *ArtifactVerifier {
	return &ArtifactVerifier{
		fileSystem: fileSystem,
		hasher:     hasher,
		sniffers:   sniffers,
		logger:     logger,
	}
}

func (this *ArtifactVerifier) Verify(filename, sourceRoot, expectedHash, destinationRoot string) contracts.VerificationResult {
	logger := this.logger.With(zap.String("filename", filename))

	if !filepath.IsLocal(filepath.FromSlash(filename)) {
		logger.Warn("artifact path escapes the source directory")
		return contracts.NewMissingResult(filename)
	}
	source := filepath.Join(sourceRoot, filepath.FromSlash(filename))
	if info, err := this.fileSystem.Stat(source); err != nil || !contracts.IsRegular(info) {
		logger.Warn("artifact does not exist", zap.String("path", source))
		return contracts.NewMissingResult(filename)
	}

	expected := strings.ToLower(strings.TrimSpace(expectedHash))
	actual, err := this.hasher.Digest(source)
	if err != nil {
		logger.Warn("could not hash artifact", zap.Error(err))
		return contracts.NewReadFailedResult(filename, expected)
	}
	actual = strings.ToLower(actual)

	if actual != expected {
		logger.Warn("hash mismatch", zap.String("expected", expected), zap.String("actual", actual))
		return contracts.NewFailedResult(filename, expected, actual, contracts.StatusHashMismatch)
	}

	target := filepath.Join(destinationRoot, filepath.FromSlash(filename))
	size, err := this.copy(source, target)
	if err != nil {
		logger.Warn("could not copy artifact", zap.Error(err))
		return contracts.NewFailedResult(filename, expected, actual, contracts.StatusCopyFailed)
	}

	license := this.sniffers.Select(source).DetermineLicense(source)
	return contracts.NewVerifiedResult(filename, actual, license, size)
}

func (this *ArtifactVerifier) copy(source, target string) (int64, error) {
	parent := filepath.Dir(target)
	if err := this.fileSystem.MkdirAll(parent); err != nil {
		return 0, fmt.Errorf("creating %q: %w", parent, err)
	}

	reader, err := this.fileSystem.Open(source)
	if err != nil {
		return 0, fmt.Errorf("opening %q: %w", source, err)
	}
	defer func() { _ = reader.Close() }()

	writer, err := this.fileSystem.Create(target)
	if err != nil {
		return 0, fmt.Errorf("creating %q: %w", target, err)
	}

	size, copyErr := io.Copy(writer, reader)
	closeErr := writer.Close()
	if err = errors.Join(copyErr, closeErr); err != nil {
		return size, fmt.Errorf("copying %q to %q: %w", source, target, err)
	}
	return size, nil
}
