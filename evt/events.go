package evt

import (
	"github.com/asaskevich/EventBus"
)

const (
	// ApplicationStarted fires on start of the application. Parameter: version number, build time
	ApplicationStarted = "application:started"

	// SuffixListRefreshed fires after a new ruleset was compiled and swapped in.
	// Parameter: public rule count, private rule count
	SuffixListRefreshed = "suffixList:refreshed"

	// SuffixListRefreshFailed fires if a refresh failed and the previous ruleset was kept. Parameter: error
	SuffixListRefreshFailed = "suffixList:refreshFailed"

	// CachingFailedDownloadChanged fires, if a download of a suffix list failed. Parameter: URL
	CachingFailedDownloadChanged = "caching:failedDownload"

	// ExtractCacheHit fires, if an extraction result was found in the cache. Parameter: input
	ExtractCacheHit = "extract:cacheHit"

	// ExtractCacheMiss fires, if an extraction result was not found in the cache. Parameter: input
	ExtractCacheMiss = "extract:cacheMiss"

	// DomainRejected fires, if an input could not be extracted. Parameter: input
	DomainRejected = "extract:domainRejected"
)

// nolint
var evtBus = EventBus.New()

func Bus() EventBus.Bus {
	return evtBus
}
