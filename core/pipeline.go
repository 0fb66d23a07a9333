package core

import (
	"runtime"

	"github.com/dustin/go-humanize"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/smarty/curator/contracts"
)

type artifactVerifier interface {
	Verify(filename, sourceRoot, expectedHash, destinationRoot string) contracts.VerificationResult
}

type Summary struct {
	Counts      map[contracts.Status]int
	BytesCopied int64
}

func (this Summary) Total() (total int) {
	for _, count := range this.Counts {
		total += count
	}
	return total
}

// CurationPipeline verifies every manifest entry concurrently and emits one
// line per result, in completion order, after the header.
type CurationPipeline struct {
	fileSystem RootFileSystem
	verifier   artifactVerifier
	output     *ResultWriter
	workers    int
	logger     *zap.Logger
}

func NewCurationPipeline(
	fileSystem RootFileSystem,
	verifier artifactVerifier,
	output *ResultWriter,
	workers int,
	logger *zap.Logger,
) *CurationPipeline {
	if workers < 1 {
		workers = runtime.NumCPU()
	}
	return &CurationPipeline{
		fileSystem: fileSystem,
		verifier:   verifier,
		output:     output,
		workers:    workers,
		logger:     logger,
	}
}

func (this *CurationPipeline) Run(manifest contracts.Manifest, sourceRoot, destinationRoot string) (Summary, error) {
	summary := Summary{Counts: make(map[contracts.Status]int)}

	if err := PrepareRoots(this.fileSystem, sourceRoot, destinationRoot); err != nil {
		return summary, err
	}
	if err := this.output.WriteHeader(); err != nil {
		return summary, err
	}

	results := make(chan contracts.VerificationResult)
	go this.dispatch(manifest, sourceRoot, destinationRoot, results)

	for result := range results {
		summary.Counts[result.Status]++
		summary.BytesCopied += result.Size
		if err := this.output.Write(result); err != nil {
			this.logger.Error("could not write result", zap.String("filename", result.Filename), zap.Error(err))
		}
	}

	this.logSummary(summary)
	return summary, nil
}

func (this *CurationPipeline) dispatch(manifest contracts.Manifest, sourceRoot, destinationRoot string, results chan<- contracts.VerificationResult) {
	defer close(results)

	var group errgroup.Group
	group.SetLimit(this.workers)
	for _, entry := range manifest.Entries() {
		group.Go(func() error {
			results <- this.verifier.Verify(entry.Filename, sourceRoot, entry.ExpectedHash, destinationRoot)
			return nil
		})
	}
	_ = group.Wait()
}

func (this *CurationPipeline) logSummary(summary Summary) {
	fields := []zap.Field{
		zap.Int("artifacts", summary.Total()),
		zap.String("copied", humanize.Bytes(uint64(summary.BytesCopied))),
	}
	for _, status := range contracts.Statuses() {
		fields = append(fields, zap.Int(status.String(), summary.Counts[status]))
	}
	this.logger.Info("curation complete", fields...)
}
