package contracts

import "sort"

// Manifest maps artifact filenames (relative to the source root) to their
// expected hex digests. A filename listed twice keeps the last digest.
type Manifest map[string]string

type ManifestEntry struct {
	Filename     string
	ExpectedHash string
}

func (this Manifest) Add(filename, expectedHash string) {
	this[filename] = expectedHash
}

func (this Manifest) Entries() (entries []ManifestEntry) {
	for filename, expectedHash := range this {
		entries = append(entries, ManifestEntry{Filename: filename, ExpectedHash: expectedHash})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Filename < entries[j].Filename })
	return entries
}
