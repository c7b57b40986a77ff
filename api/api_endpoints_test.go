package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/0xERR0R/tldextract/config"
	"github.com/0xERR0R/tldextract/extract"
	. "github.com/0xERR0R/tldextract/helpertest"
	"github.com/0xERR0R/tldextract/lists"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

type SuffixListMock struct {
	rebuildCalls int
	rebuildErr   error
}

func (m *SuffixListMock) Rebuild(_ context.Context, cfg *config.SuffixList) error {
	m.rebuildCalls++

	return m.rebuildErr
}

func (m *SuffixListMock) Status() extract.Status {
	return extract.Status{PublicRules: 10, PrivateRules: 2, Sources: []string{"snapshot"}}
}

var _ = Describe("API tests", func() {
	var ctx context.Context

	BeforeEach(func() {
		ctx = context.Background()
	})

	newExtractor := func() *extract.Extractor {
		cfg, err := config.WithDefaults[config.Extract]()
		Expect(err).Should(Succeed())

		cfg.SuffixList.Source = config.TextBytesSource(PSLLines...)

		compiler := lists.NewCompiler(lists.NewOpeners(lists.NewDownloader(), nil))

		res, err := extract.New(ctx, cfg, compiler)
		Expect(err).Should(Succeed())

		return res
	}

	Describe("Register router", func() {
		It("should register all endpoints of the extractor", func() {
			router := chi.NewRouter()

			RegisterEndpoint(router, newExtractor())

			patterns := make([]string, 0)
			for _, route := range router.Routes() {
				patterns = append(patterns, route.Pattern)
			}

			Expect(patterns).Should(ConsistOf(PathExtract, PathSuffixListRefresh, PathSuffixListStatus))
		})

		It("should ignore unsupported implementations", func() {
			router := chi.NewRouter()

			RegisterEndpoint(router, "nothing to see")

			Expect(router.Routes()).Should(BeEmpty())
		})
	})

	Describe("Extract API", func() {
		var sut *ExtractEndpoint

		BeforeEach(func() {
			sut = &ExtractEndpoint{extractor: newExtractor()}
		})

		When("a single domain is requested", func() {
			It("should return the result", func() {
				resp, body := DoGetRequest(ctx, PathExtract+"?domain=mirrors.tuna.tsinghua.edu.cn", sut.apiExtract)
				Expect(resp.Code).Should(Equal(http.StatusOK))
				Expect(resp.Header().Get(contentTypeHeader)).Should(Equal(jsonContentType))
				Expect(body.String()).Should(Equal(
					`{"subdomain":"mirrors.tuna","domain":"tsinghua","suffix":"edu.cn","registered_domain":"tsinghua.edu.cn"}`,
				))
			})

			It("should return null for absent parts", func() {
				resp, body := DoGetRequest(ctx, PathExtract+"?domain=co.uk", sut.apiExtract)
				Expect(resp.Code).Should(Equal(http.StatusOK))

				var result extract.Result
				Expect(json.NewDecoder(body).Decode(&result)).Should(Succeed())
				Expect(result).Should(Equal(extract.Result{Suffix: "co.uk"}))
			})
		})

		When("the domain is invalid", func() {
			It("should return http bad request as return code", func() {
				resp, body := DoGetRequest(ctx, PathExtract+"?domain=-example.com", sut.apiExtract)
				Expect(resp.Code).Should(Equal(http.StatusBadRequest))

				var result ErrorResponse
				Expect(json.NewDecoder(body).Decode(&result)).Should(Succeed())
				Expect(result.Error).Should(HavePrefix("invalid domain"))
			})
		})

		When("the domain parameter is missing", func() {
			It("should return http bad request as return code", func() {
				resp, _ := DoGetRequest(ctx, PathExtract, sut.apiExtract)
				Expect(resp.Code).Should(Equal(http.StatusBadRequest))
			})
		})

		When("a batch is requested", func() {
			It("should return one entry per input", func() {
				resp, body := DoPostRequest(ctx, PathExtract,
					`["www.example.co.uk", "bad domain", "user.github.io"]`, sut.apiExtractBatch)
				Expect(resp.Code).Should(Equal(http.StatusOK))

				var result []BatchEntry
				Expect(json.NewDecoder(body).Decode(&result)).Should(Succeed())
				Expect(result).Should(HaveLen(3))

				Expect(result[0].Input).Should(Equal("www.example.co.uk"))
				Expect(result[0].Result.RegisteredDomain).Should(Equal("example.co.uk"))
				Expect(result[0].Error).Should(BeEmpty())

				Expect(result[1].Result).Should(BeNil())
				Expect(result[1].Error).Should(ContainSubstring("invalid character ' '"))

				Expect(result[2].Result.Suffix).Should(Equal("github.io"))
			})

			It("should reject a malformed body", func() {
				resp, _ := DoPostRequest(ctx, PathExtract, `{"domain": "example.com"}`, sut.apiExtractBatch)
				Expect(resp.Code).Should(Equal(http.StatusBadRequest))
			})

			It("should reject too many domains", func() {
				domains := make([]string, maxBatchSize+1)
				for i := range domains {
					domains[i] = fmt.Sprintf(`"d%d.com"`, i)
				}

				resp, _ := DoPostRequest(ctx, PathExtract, "["+strings.Join(domains, ",")+"]", sut.apiExtractBatch)
				Expect(resp.Code).Should(Equal(http.StatusBadRequest))
			})
		})
	})

	Describe("Suffix list API", func() {
		var (
			mock *SuffixListMock
			sut  *SuffixListEndpoint
		)

		BeforeEach(func() {
			mock = &SuffixListMock{}
			sut = &SuffixListEndpoint{rebuilder: mock, status: mock}
		})

		When("suffix list refresh is called", func() {
			It("should trigger the refresh", func() {
				resp, body := DoPostRequest(ctx, PathSuffixListRefresh, "", sut.apiSuffixListRefresh)
				Expect(resp.Code).Should(Equal(http.StatusOK))
				Expect(mock.rebuildCalls).Should(Equal(1))

				var result extract.Status
				Expect(json.NewDecoder(body).Decode(&result)).Should(Succeed())
				Expect(result.PublicRules).Should(Equal(10))
			})

			It("should report a failed refresh", func() {
				mock.rebuildErr = errors.New("source unreachable")

				resp, body := DoPostRequest(ctx, PathSuffixListRefresh, "", sut.apiSuffixListRefresh)
				Expect(resp.Code).Should(Equal(http.StatusBadGateway))
				Expect(body.String()).Should(ContainSubstring("source unreachable"))
			})
		})

		When("suffix list status is called", func() {
			It("should return the status", func() {
				resp, body := DoGetRequest(ctx, PathSuffixListStatus, sut.apiSuffixListStatus)
				Expect(resp.Code).Should(Equal(http.StatusOK))

				var result extract.Status
				Expect(json.NewDecoder(body).Decode(&result)).Should(Succeed())
				Expect(result.PrivateRules).Should(Equal(2))
				Expect(result.Sources).Should(ConsistOf("snapshot"))
			})
		})
	})
})
