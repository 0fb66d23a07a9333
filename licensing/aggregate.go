package licensing

import (
	"sort"
	"strings"

	"github.com/smarty/curator/contracts"
)

const verdictSeparator = "|"

// Aggregate combines the verdicts of many files into one. Duplicates
// collapse; when more than one distinct verdict remains, unknown is dropped
// and the rest are sorted and joined.
func Aggregate(verdicts []string) string {
	distinct := make(map[string]struct{})
	for _, verdict := range verdicts {
		if verdict != "" {
			distinct[verdict] = struct{}{}
		}
	}
	if len(distinct) == 0 {
		return contracts.LicenseUnknown
	}
	if len(distinct) > 1 {
		delete(distinct, contracts.LicenseUnknown)
	}

	licenses := make([]string, 0, len(distinct))
	for license := range distinct {
		licenses = append(licenses, license)
	}
	sort.Strings(licenses)
	return strings.Join(licenses, verdictSeparator)
}
