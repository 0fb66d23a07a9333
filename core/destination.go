package core

import (
	"fmt"
	"os"

	"github.com/smarty/curator/contracts"
)

type RootFileSystem interface {
	contracts.FileChecker
	contracts.DirectoryLister
	contracts.DirectoryMaker
}

// PrepareRoots checks that the source is an existing directory and that the
// destination is absent or empty, creating it when absent. Nothing is
// written when either check fails.
func PrepareRoots(fileSystem RootFileSystem, sourceRoot, destinationRoot string) error {
	source, err := fileSystem.Stat(sourceRoot)
	if err != nil || !contracts.IsDirectory(source) {
		return fmt.Errorf("%w: %q", contracts.ErrSourceRoot, sourceRoot)
	}

	destination, err := fileSystem.Stat(destinationRoot)
	if os.IsNotExist(err) {
		if err = fileSystem.MkdirAll(destinationRoot); err != nil {
			return fmt.Errorf("creating destination %q: %w", destinationRoot, err)
		}
		return nil
	}
	if err != nil {
		return fmt.Errorf("inspecting destination %q: %w", destinationRoot, err)
	}
	if !contracts.IsDirectory(destination) {
		return fmt.Errorf("%w: %q", contracts.ErrDestinationIsFile, destinationRoot)
	}

	listing, err := fileSystem.Listing(destinationRoot)
	if err != nil {
		return fmt.Errorf("listing destination %q: %w", destinationRoot, err)
	}
	if len(listing) > 0 {
		return fmt.Errorf("%w: %q", contracts.ErrDestinationNotEmpty, destinationRoot)
	}
	return nil
}
