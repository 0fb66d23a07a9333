package main

import (
	"errors"
	"io"
	"os"

	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/smarty/curator/contracts"
	"github.com/smarty/curator/core"
	"github.com/smarty/curator/licensing"
	"github.com/smarty/curator/shell"
)

const (
	exitSuccess = 0
	exitFailure = 1
	exitUsage   = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	disk := shell.NewDiskFileSystem()
	loader := core.NewConfigLoader(disk, shell.NewEnvironment(), stderr)

	config, err := loader.LoadConfig(args)
	if errors.Is(err, pflag.ErrHelp) {
		return exitSuccess
	}
	if errors.Is(err, contracts.ErrUsage) {
		return exitUsage
	}
	if err != nil {
		_, _ = io.WriteString(stderr, err.Error()+"\n")
		return exitUsage
	}

	logger := newLogger(stderr, config.Verbose)
	defer func() { _ = logger.Sync() }()

	if err = NewApp(config, loader, disk, stdout, logger).Run(); err != nil {
		logger.Error("curation aborted", zap.Error(err))
		return exitFailure
	}
	return exitSuccess
}

func newLogger(stderr io.Writer, verbose bool) *zap.Logger {
	level := zapcore.InfoLevel
	if verbose {
		level = zapcore.DebugLevel
	}
	encoder := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	return zap.New(zapcore.NewCore(encoder, zapcore.Lock(zapcore.AddSync(stderr)), level))
}

type App struct {
	config contracts.Config
	loader *core.ConfigLoader
	disk   *shell.DiskFileSystem
	stdout io.Writer
	logger *zap.Logger
}

func NewApp(config contracts.Config, loader *core.ConfigLoader, disk *shell.DiskFileSystem, stdout io.Writer, logger *zap.Logger) *App {
	return &App{config: config, loader: loader, disk: disk, stdout: stdout, logger: logger}
}

func (this *App) Run() error {
	algorithm, err := core.LookupDigestAlgorithm(this.config.Algorithm)
	if err != nil {
		return err
	}
	catalog, err := this.loader.LoadCatalog(this.config)
	if err != nil {
		return err
	}
	manifest, err := core.NewManifestLoader(this.disk, algorithm.ManifestColumn()).Load(this.config.ManifestPath)
	if err != nil {
		return err
	}

	this.logger.Debug("starting curation",
		zap.Int("artifacts", len(manifest)),
		zap.String("algorithm", algorithm.Name),
		zap.Strings("licenses", catalog.Names()),
		zap.Int("workers", this.config.Workers))

	verifier := core.NewArtifactVerifier(
		this.disk,
		core.NewContentHasher(this.disk, algorithm.New),
		licensing.NewSelector(catalog, this.disk, this.config.HeaderLines, this.logger),
		this.logger,
	)
	pipeline := core.NewCurationPipeline(this.disk, verifier, core.NewResultWriter(this.stdout), this.config.Workers, this.logger)

	_, err = pipeline.Run(manifest, this.config.SourceRoot, this.config.DestinationRoot)
	return err
}
