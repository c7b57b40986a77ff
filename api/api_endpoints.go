package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"

	"github.com/0xERR0R/tldextract/config"
	"github.com/0xERR0R/tldextract/extract"
	"github.com/0xERR0R/tldextract/log"
	"github.com/0xERR0R/tldextract/util"
)

const (
	contentTypeHeader = "content-type"
	jsonContentType   = "application/json"

	maxBatchSize = 1000
	maxBodyBytes = 1 << 20
)

func logger() *logrus.Entry {
	return log.PrefixedLog("api")
}

// DomainExtractor interface to split domains
type DomainExtractor interface {
	Extract(raw string) (extract.Result, error)
}

// SuffixListRebuilder interface to control the suffix list refresh
type SuffixListRebuilder interface {
	Rebuild(ctx context.Context, cfg *config.SuffixList) error
}

// SuffixListStatusProvider interface to get the suffix list status
type SuffixListStatusProvider interface {
	Status() extract.Status
}

// ExtractEndpoint endpoint for domain extraction
type ExtractEndpoint struct {
	extractor DomainExtractor
}

// SuffixListEndpoint endpoint for the suffix list control
type SuffixListEndpoint struct {
	rebuilder SuffixListRebuilder
	status    SuffixListStatusProvider
}

// RegisterEndpoint registers an implementation as HTTP endpoint
func RegisterEndpoint(router chi.Router, t interface{}) {
	if a, ok := t.(DomainExtractor); ok {
		registerExtractEndpoints(router, a)
	}

	if a, ok := t.(SuffixListStatusProvider); ok {
		s := &SuffixListEndpoint{status: a}

		router.Get(PathSuffixListStatus, s.apiSuffixListStatus)

		if r, ok := t.(SuffixListRebuilder); ok {
			s.rebuilder = r

			router.Post(PathSuffixListRefresh, s.apiSuffixListRefresh)
		}
	}
}

func registerExtractEndpoints(router chi.Router, extractor DomainExtractor) {
	e := &ExtractEndpoint{extractor}

	router.Get(PathExtract, e.apiExtract)
	router.Post(PathExtract, e.apiExtractBatch)
}

// apiExtract is the http endpoint to split a single domain
// @Summary Extract domain
// @Description split a domain into subdomain, domain, suffix and registered domain
// @Tags extract
// @Produce  json
// @Param domain query string true "domain to split (Example: www.example.co.uk)"
// @Success 200 {object} extract.Result "Parts of the domain, absent parts are null"
// @Failure 400 {object} api.ErrorResponse "Missing or invalid domain"
// @Router /extract [get]
func (e *ExtractEndpoint) apiExtract(rw http.ResponseWriter, req *http.Request) {
	domain := req.URL.Query().Get(DomainParam)

	logger().WithField("client_ip", util.HTTPClientIP(req)).
		Debugf("extract request for '%s'", log.EscapeInput(domain))

	if len(domain) == 0 {
		writeError(rw, http.StatusBadRequest, errors.New("missing 'domain' query parameter"))

		return
	}

	res, err := e.extractor.Extract(domain)
	if err != nil {
		writeError(rw, http.StatusBadRequest, err)

		return
	}

	writeJSON(rw, http.StatusOK, res)
}

// apiExtractBatch is the http endpoint to split a list of domains
// @Summary Extract domains
// @Description split each domain of the list, invalid domains don't fail the request
// @Tags extract
// @Accept  json
// @Produce  json
// @Param domains body []string true "domains to split"
// @Success 200 {array} api.BatchEntry "One entry per input, in the same order"
// @Failure 400 {object} api.ErrorResponse "Malformed request body"
// @Router /extract [post]
func (e *ExtractEndpoint) apiExtractBatch(rw http.ResponseWriter, req *http.Request) {
	var inputs []string

	err := json.NewDecoder(http.MaxBytesReader(rw, req.Body, maxBodyBytes)).Decode(&inputs)
	if err != nil {
		writeError(rw, http.StatusBadRequest, errors.New("request body must be a JSON array of strings"))

		return
	}

	if len(inputs) > maxBatchSize {
		writeError(rw, http.StatusBadRequest, errors.New("too many domains in a single request"))

		return
	}

	logger().WithField("client_ip", util.HTTPClientIP(req)).
		Debugf("extract request for %d domain(s)", len(inputs))

	entries := make([]BatchEntry, 0, len(inputs))

	for _, input := range inputs {
		entry := BatchEntry{Input: input}

		res, err := e.extractor.Extract(input)
		if err != nil {
			entry.Error = err.Error()
		} else {
			entry.Result = &res
		}

		entries = append(entries, entry)
	}

	writeJSON(rw, http.StatusOK, entries)
}

// apiSuffixListRefresh is the http endpoint to trigger the refresh of the suffix list
// @Summary Suffix list refresh
// @Description Recompile the suffix list from its sources, the current one is kept on failure
// @Tags suffixlist
// @Produce  json
// @Success 200 {object} extract.Status "Suffix list was reloaded"
// @Failure 502 {object} api.ErrorResponse "Suffix list could not be reloaded"
// @Router /suffixlist/refresh [post]
func (s *SuffixListEndpoint) apiSuffixListRefresh(rw http.ResponseWriter, req *http.Request) {
	ctx, logger := log.CtxWithFields(req.Context(), logrus.Fields{
		"prefix":    "api",
		"client_ip": util.HTTPClientIP(req),
	})

	logger.Info("suffix list refresh requested")

	if err := s.rebuilder.Rebuild(ctx, nil); err != nil {
		writeError(rw, http.StatusBadGateway, err)

		return
	}

	writeJSON(rw, http.StatusOK, s.status.Status())
}

// apiSuffixListStatus is the http endpoint to get the current suffix list status
// @Summary Suffix list status
// @Description get the build time, staleness and rule counts of the suffix list
// @Tags suffixlist
// @Produce  json
// @Success 200 {object} extract.Status "Returns current suffix list status"
// @Router /suffixlist/status [get]
func (s *SuffixListEndpoint) apiSuffixListStatus(rw http.ResponseWriter, _ *http.Request) {
	writeJSON(rw, http.StatusOK, s.status.Status())
}

func writeError(rw http.ResponseWriter, status int, err error) {
	writeJSON(rw, status, ErrorResponse{Error: err.Error()})
}

func writeJSON(rw http.ResponseWriter, status int, v interface{}) {
	response, err := json.Marshal(v)
	if err != nil {
		util.LogOnErrorWithEntry(logger(), "unable to marshal response ", err)

		rw.WriteHeader(http.StatusInternalServerError)

		return
	}

	rw.Header().Set(contentTypeHeader, jsonContentType)
	rw.WriteHeader(status)

	_, err = rw.Write(response)
	util.LogOnErrorWithEntry(logger(), "unable to write response ", err)
}
