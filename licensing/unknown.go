package licensing

import "github.com/smarty/curator/contracts"

type UnknownSniffer struct{}

func NewUnknownSniffer() *UnknownSniffer {
	return &UnknownSniffer{}
}

func (this *UnknownSniffer) DetermineLicense(string) string {
	return contracts.LicenseUnknown
}
