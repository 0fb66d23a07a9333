package contracts

import "strings"

const (
	None          = "none"
	ResultHeader  = "Filename,Expected Hash,Actual Hash,Status,License"
	fieldJoinRune = ","
)

type Status int

const (
	StatusMissing Status = iota
	StatusReadFailed
	StatusHashMismatch
	StatusCopyFailed
	StatusVerified
)

var statusLabels = [...]string{
	StatusMissing:      "does not exist",
	StatusReadFailed:   "read failed",
	StatusHashMismatch: "mismatch",
	StatusCopyFailed:   "copy failed",
	StatusVerified:     "success",
}

func (this Status) String() string {
	if this < StatusMissing || this > StatusVerified {
		return "unknown status"
	}
	return statusLabels[this]
}

func Statuses() []Status {
	return []Status{StatusMissing, StatusReadFailed, StatusHashMismatch, StatusCopyFailed, StatusVerified}
}

type VerificationResult struct {
	Filename     string
	ExpectedHash string
	ActualHash   string
	Status       Status
	License      string

	// Size is the number of bytes copied into the destination tree. It is not
	// part of the rendered line.
	Size int64
}

func NewMissingResult(filename string) VerificationResult {
	return VerificationResult{Filename: filename, ExpectedHash: None, ActualHash: None, Status: StatusMissing, License: None}
}

func NewReadFailedResult(filename, expected string) VerificationResult {
	return VerificationResult{Filename: filename, ExpectedHash: expected, ActualHash: None, Status: StatusReadFailed, License: None}
}

func NewFailedResult(filename, expected, actual string, status Status) VerificationResult {
	return VerificationResult{Filename: filename, ExpectedHash: expected, ActualHash: actual, Status: status, License: None}
}

func NewVerifiedResult(filename, hash, license string, size int64) VerificationResult {
	if license == "" {
		license = LicenseUnknown
	}
	return VerificationResult{Filename: filename, ExpectedHash: hash, ActualHash: hash, Status: StatusVerified, License: license, Size: size}
}

func (this VerificationResult) Line() string {
	return strings.Join([]string{
		orNone(this.Filename),
		orNone(this.ExpectedHash),
		orNone(this.ActualHash),
		this.Status.String(),
		orNone(this.License),
	}, fieldJoinRune)
}

func orNone(value string) string {
	if value == "" {
		return None
	}
	return value
}
