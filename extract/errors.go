package extract

import (
	"fmt"

	"github.com/0xERR0R/tldextract/lists"
)

// SuffixListError is returned when no usable ruleset could be compiled.
type SuffixListError = lists.SuffixListError

// DomainError is returned for input that is not a valid domain name.
// It only concerns a single call.
type DomainError struct {
	Detail string
	Cause  error
}

func newDomainError(cause error, format string, args ...interface{}) *DomainError {
	return &DomainError{Detail: fmt.Sprintf(format, args...), Cause: cause}
}

func (e *DomainError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("invalid domain: %s: %v", e.Detail, e.Cause)
	}

	return fmt.Sprintf("invalid domain: %s", e.Detail)
}

func (e *DomainError) Unwrap() error {
	return e.Cause
}
