package core

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"fmt"
	"hash"
	"sort"
	"strings"

	"github.com/zeebo/blake3"

	"github.com/smarty/curator/contracts"
)

const DefaultAlgorithm = "sha1"

type DigestAlgorithm struct {
	Name  string
	Label string
	New   func() hash.Hash
}

// ManifestColumn is the manifest header naming the expected digest.
func (this DigestAlgorithm) ManifestColumn() string {
	return this.Label + " Hash"
}

var digestAlgorithms = map[string]DigestAlgorithm{
	"md5":    {Name: "md5", Label: "MD5", New: md5.New},
	"sha1":   {Name: "sha1", Label: "SHA1", New: sha1.New},
	"sha256": {Name: "sha256", Label: "SHA256", New: sha256.New},
	"blake3": {Name: "blake3", Label: "BLAKE3", New: func() hash.Hash { return blake3.New() }},
}

func LookupDigestAlgorithm(name string) (DigestAlgorithm, error) {
	algorithm, found := digestAlgorithms[strings.ToLower(strings.TrimSpace(name))]
	if !found {
		return DigestAlgorithm{}, fmt.Errorf("%w: %q (supported: %s)",
			contracts.ErrUnknownAlgorithm, name, strings.Join(DigestAlgorithmNames(), ", "))
	}
	return algorithm, nil
}

func DigestAlgorithmNames() (names []string) {
	for name := range digestAlgorithms {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
