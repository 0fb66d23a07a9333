package core

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/pflag"

	"github.com/smarty/curator/contracts"
	"github.com/smarty/curator/licensing"
)

const catalogEnvironmentVariable = "CURATOR_CATALOG"

type ConfigLoader struct {
	storage     contracts.FileReader
	environment contracts.Environment
	stderr      io.Writer
}

func NewConfigLoader(storage contracts.FileReader, environment contracts.Environment, stderr io.Writer) *ConfigLoader {
	return &ConfigLoader{storage: storage, environment: environment, stderr: stderr}
}

func (this *ConfigLoader) LoadConfig(args []string) (config contracts.Config, err error) {
	config, err = this.parseCLI(args)
	if err != nil {
		return contracts.Config{}, err
	}
	if err = this.validate(config); err != nil {
		return contracts.Config{}, err
	}
	return config, nil
}

func (this *ConfigLoader) parseCLI(args []string) (config contracts.Config, err error) {
	catalogPath, _ := this.environment.LookupEnv(catalogEnvironmentVariable)

	flags := pflag.NewFlagSet("curate", pflag.ContinueOnError)
	flags.SetOutput(io.Discard)
	flags.IntVar(&config.Workers,
		"workers",
		this.environment.Concurrency(),
		"How many artifacts to verify at once.",
	)
	flags.StringVar(&config.Algorithm,
		"algorithm",
		DefaultAlgorithm,
		fmt.Sprintf("Digest used by the manifest (one of %v).", DigestAlgorithmNames()),
	)
	flags.StringVar(&config.CatalogPath,
		"catalog",
		catalogPath,
		"Path to a YAML license catalog replacing the built-in one (default from $"+catalogEnvironmentVariable+").",
	)
	flags.IntVar(&config.HeaderLines,
		"header-lines",
		licensing.DefaultHeaderLines,
		"How many leading lines of a text file to search for a license notice.",
	)
	flags.BoolVar(&config.Verbose,
		"verbose",
		false,
		"When set, emit debug diagnostics.",
	)
	flags.Usage = func() {
		_, _ = fmt.Fprintln(this.stderr, contracts.ErrUsage)
		_, _ = fmt.Fprintln(this.stderr)
		_, _ = fmt.Fprint(this.stderr, flags.FlagUsages())
		_, _ = fmt.Fprintln(this.stderr, `
Results are written to stdout as CSV: `+contracts.ResultHeader)
	}

	if err = flags.Parse(args); errors.Is(err, pflag.ErrHelp) {
		return contracts.Config{}, err
	} else if err != nil {
		_, _ = fmt.Fprintln(this.stderr, err)
		flags.Usage()
		return contracts.Config{}, fmt.Errorf("%w: %w", contracts.ErrUsage, err)
	}
	if flags.NArg() != 3 {
		flags.Usage()
		return contracts.Config{}, contracts.ErrUsage
	}
	config.ManifestPath = flags.Arg(0)
	config.SourceRoot = flags.Arg(1)
	config.DestinationRoot = flags.Arg(2)
	return config, nil
}

func (this *ConfigLoader) validate(config contracts.Config) error {
	if config.Workers < 1 {
		return errWorkers
	}
	if config.HeaderLines < 1 {
		return errHeaderLines
	}
	if _, err := LookupDigestAlgorithm(config.Algorithm); err != nil {
		return err
	}
	return nil
}

// LoadCatalog returns the built-in catalog unless the config names a file.
func (this *ConfigLoader) LoadCatalog(config contracts.Config) (*licensing.Catalog, error) {
	if config.CatalogPath == "" {
		return licensing.DefaultCatalog(), nil
	}
	raw, err := this.storage.ReadFile(config.CatalogPath)
	if err != nil {
		return nil, fmt.Errorf("reading license catalog: %w", err)
	}
	return licensing.LoadCatalog(bytes.NewReader(raw))
}

var (
	errWorkers     = errors.New("workers must be at least 1")
	errHeaderLines = errors.New("header-lines must be at least 1")
)
