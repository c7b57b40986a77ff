// @title tldextract API
// @description Splits domain names using the Public Suffix List

// @contact.name tldextract@github
// @contact.url https://github.com/0xERR0R/tldextract

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @BasePath /api/
package api

import (
	"github.com/0xERR0R/tldextract/extract"
)

const (
	PathExtract           = "/api/extract"
	PathSuffixListRefresh = "/api/suffixlist/refresh"
	PathSuffixListStatus  = "/api/suffixlist/status"

	// DomainParam is the query parameter holding the domain to extract
	DomainParam = "domain"
)

// BatchEntry is the extraction result of one input of a batch request
type BatchEntry struct {
	// Input as sent by the client
	Input string `json:"input"`
	// Result of the extraction, absent if the input is not a valid domain
	Result *extract.Result `json:"result,omitempty"`
	// Reason why the input was rejected
	Error string `json:"error,omitempty"`
}

// ErrorResponse is returned with every non successful status code
type ErrorResponse struct {
	Error string `json:"error"`
}
