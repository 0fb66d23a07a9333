package contracts

const LicenseUnknown = "unknown"

type LicenseSniffer interface {
	DetermineLicense(path string) string
}

type SnifferSelector interface {
	Select(path string) LicenseSniffer
}
