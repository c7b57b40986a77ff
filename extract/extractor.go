package extract

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	lru "github.com/hashicorp/golang-lru"
	"github.com/jmhodges/clock"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"

	"github.com/0xERR0R/tldextract/config"
	"github.com/0xERR0R/tldextract/evt"
	"github.com/0xERR0R/tldextract/lists"
	"github.com/0xERR0R/tldextract/log"
	"github.com/0xERR0R/tldextract/util"
)

const (
	refreshKey = "refresh"

	// used when the configuration leaves the refresh timeout unset
	defaultRefreshTimeout = 30 * time.Second
)

func logger() *logrus.Entry {
	return log.PrefixedLog("extract")
}

// Compiler builds rulesets from a suffix list configuration.
type Compiler interface {
	Compile(ctx context.Context, cfg config.SuffixList) (*lists.Ruleset, error)
}

// Status describes the ruleset in use.
type Status struct {
	LastBuild      time.Time     `json:"lastBuild"`
	Stale          bool          `json:"stale"`
	Expire         time.Duration `json:"expire"`
	PublicRules    int           `json:"publicRules"`
	PrivateRules   int           `json:"privateRules"`
	DisablePrivate bool          `json:"disablePrivateDomains"`
	Sources        []string      `json:"sources"`
}

// state is swapped as a whole on refresh.
type state struct {
	rules *lists.Ruleset
	cfg   config.SuffixList
	cache *lru.Cache
}

// Extractor splits domains into their parts.
//
// It is safe for concurrent use: extractions always see a complete ruleset,
// while a refresh builds a new one and swaps it in only on success.
type Extractor struct {
	compiler      Compiler
	unicodeOutput bool
	cacheSize     int
	clock         clock.Clock
	staleness     *StalenessTracker

	live      atomic.Pointer[state]
	refreshMu sync.Mutex
	group     singleflight.Group
}

type Option func(*Extractor)

// WithClock sets the clock used to check the ruleset's expiration.
func WithClock(clk clock.Clock) Option {
	return func(e *Extractor) {
		e.clock = clk
	}
}

// New creates an extractor and compiles its ruleset.
// If the compilation fails, no extractor is created.
func New(ctx context.Context, cfg config.Extract, compiler Compiler, opts ...Option) (*Extractor, error) {
	e := &Extractor{
		compiler:      compiler,
		unicodeOutput: cfg.UnicodeOutput,
		cacheSize:     cfg.CacheSize,
		clock:         clock.New(),
	}

	for _, opt := range opts {
		opt(e)
	}

	e.staleness = NewStalenessTracker(e.clock, cfg.SuffixList.Expire.ToDuration())

	if err := e.Rebuild(ctx, &cfg.SuffixList); err != nil {
		return nil, err
	}

	return e, nil
}

// Extract splits `raw` into subdomain, domain, suffix and registered domain.
//
// If the ruleset is stale, it is refreshed first. A failed refresh is only
// logged: the stale ruleset is used.
func (e *Extractor) Extract(raw string) (Result, error) {
	if e.staleness.IsStale() {
		e.refreshStale()
	}

	st := e.live.Load()

	if st.cache != nil {
		if cached, ok := st.cache.Get(raw); ok {
			evt.Bus().Publish(evt.ExtractCacheHit, raw)

			return cached.(Result), nil
		}

		evt.Bus().Publish(evt.ExtractCacheMiss, raw)
	}

	domain, err := normalize(raw)
	if err != nil {
		evt.Bus().Publish(evt.DomainRejected, raw)

		return Result{}, err
	}

	res := split(st.rules.Trie, domain)

	if e.unicodeOutput {
		res = toUnicode(res)
	}

	if st.cache != nil {
		st.cache.Add(raw, res)
	}

	return res, nil
}

func (e *Extractor) refreshStale() {
	timeout := e.live.Load().cfg.RefreshTimeout.ToDuration()
	if timeout <= 0 {
		timeout = defaultRefreshTimeout
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	logger().Debug("suffix list is stale, refreshing")

	e.Refresh(ctx, nil)
}

// Refresh recompiles the ruleset, using `cfg` if not nil or the current configuration otherwise.
//
// Failures are logged and the current ruleset is kept.
// Concurrent refreshes of the current configuration are merged.
func (e *Extractor) Refresh(ctx context.Context, cfg *config.SuffixList) {
	var err error

	if cfg == nil {
		_, err, _ = e.group.Do(refreshKey, func() (interface{}, error) {
			return nil, e.Rebuild(ctx, nil)
		})
	} else {
		err = e.Rebuild(ctx, cfg)
	}

	if err != nil {
		logger().Warnf("can't refresh suffix list, keeping the current one: %s", err)
	}
}

// Rebuild is like Refresh, but returns the compilation error.
func (e *Extractor) Rebuild(ctx context.Context, cfg *config.SuffixList) error {
	e.refreshMu.Lock()
	defer e.refreshMu.Unlock()

	cur := e.live.Load()

	if cfg == nil {
		if cur == nil {
			return errors.New("no suffix list configuration")
		}

		cfg = &cur.cfg
	}

	rules, err := e.compiler.Compile(ctx, *cfg)
	if err != nil {
		evt.Bus().Publish(evt.SuffixListRefreshFailed, err)

		return err
	}

	next := &state{rules: rules, cfg: *cfg}

	if e.cacheSize > 0 {
		// only fails for a negative size
		next.cache, _ = lru.New(e.cacheSize)
	}

	e.live.Store(next)
	e.staleness.SetExpire(cfg.Expire.ToDuration())
	e.staleness.MarkBuilt()

	logger().WithField("rules", rules.RuleCount()).Infof("suffix list compiled from %d source(s)", len(cfg.Sources()))

	evt.Bus().Publish(evt.SuffixListRefreshed, len(rules.Public), len(rules.Private))

	return nil
}

// Status returns information about the ruleset in use.
func (e *Extractor) Status() Status {
	st := e.live.Load()

	return Status{
		LastBuild:      e.staleness.LastBuild(),
		Stale:          e.staleness.IsStale(),
		Expire:         e.staleness.Expire(),
		PublicRules:    len(st.rules.Public),
		PrivateRules:   len(st.rules.Private),
		DisablePrivate: st.rules.DisablePrivate,
		Sources:        util.ConvertEach(st.cfg.Sources(), config.BytesSource.String),
	}
}

// SuffixList returns the configuration of the ruleset in use.
func (e *Extractor) SuffixList() config.SuffixList {
	return e.live.Load().cfg
}
