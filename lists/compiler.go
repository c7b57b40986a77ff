package lists

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/0xERR0R/tldextract/config"
	"github.com/0xERR0R/tldextract/lists/parsers"
	"github.com/0xERR0R/tldextract/log"
	"github.com/0xERR0R/tldextract/trie"
	"github.com/0xERR0R/tldextract/util"
)

var (
	ErrNoSource = errors.New("no suffix list source configured")
	ErrNoRules  = errors.New("no usable rules")
)

// SuffixListError is returned when no usable ruleset could be compiled.
type SuffixListError struct {
	Source string
	inner  error
}

func NewSuffixListError(source string, inner error) *SuffixListError {
	return &SuffixListError{Source: source, inner: inner}
}

func (e *SuffixListError) Error() string {
	if len(e.Source) == 0 {
		return fmt.Sprintf("suffix list error: %v", e.inner)
	}

	return fmt.Sprintf("suffix list error: %s: %v", e.Source, e.inner)
}

func (e *SuffixListError) Unwrap() error {
	return e.inner
}

type suffixSet map[string]struct{}

func (s suffixSet) add(rule string) {
	s[rule] = struct{}{}
}

// Ruleset is the result of a compilation. It is never modified once returned.
type Ruleset struct {
	Public         map[string]struct{}
	Private        map[string]struct{}
	Trie           *trie.SuffixTrie
	DisablePrivate bool
}

// RuleCount returns the number of rules in the trie.
func (r *Ruleset) RuleCount() int {
	if r.DisablePrivate {
		return len(r.Public)
	}

	return len(r.Public) + len(r.Private)
}

// IsPrivate returns true if `rule` only comes from a private section.
func (r *Ruleset) IsPrivate(rule string) bool {
	_, private := r.Private[rule]
	_, public := r.Public[rule]

	return private && !public
}

// Compiler turns suffix list sources into a `Ruleset`.
type Compiler struct {
	openers SourceOpenerFactory
}

func NewCompiler(openers SourceOpenerFactory) *Compiler {
	return &Compiler{openers: openers}
}

// NewCompilerFromConfig creates a compiler downloading remote sources as configured.
func NewCompilerFromConfig(cfg config.Downloader) *Compiler {
	return NewCompiler(NewOpeners(NewDownloaderFromConfig(cfg), cfg.URLs()))
}

// Compile reads all sources of `cfg` and builds a new ruleset.
//
// Sources are fetched concurrently. If any of them fails, or if no rule at all
// could be read, a `*SuffixListError` is returned.
func (c *Compiler) Compile(ctx context.Context, cfg config.SuffixList) (*Ruleset, error) {
	sources := cfg.Sources()
	if len(sources) == 0 {
		return nil, NewSuffixListError("", ErrNoSource)
	}

	ctx, logger := log.CtxWithFields(ctx, logrus.Fields{"prefix": "lists"})

	texts, err := c.fetchAll(ctx, sources)
	if err != nil {
		return nil, err
	}

	res := &Ruleset{
		Public:         make(suffixSet),
		Private:        make(suffixSet),
		DisablePrivate: cfg.DisablePrivateDomains,
	}

	for i, text := range texts {
		name := sources[i].String()

		if err := c.parse(ctx, name, text, res); err != nil {
			return nil, NewSuffixListError(name, err)
		}
	}

	if res.RuleCount() == 0 {
		return nil, NewSuffixListError("", ErrNoRules)
	}

	res.Trie = buildTrie(res)

	logger.WithField("public", len(res.Public)).
		WithField("private", len(res.Private)).
		Debugf("compiled %d rules into %d trie nodes", res.RuleCount(), res.Trie.Len())

	return res, nil
}

func (c *Compiler) fetchAll(ctx context.Context, sources []config.BytesSource) ([]string, error) {
	openers := make([]SourceOpener, 0, len(sources))

	for _, source := range sources {
		opener, err := c.openers.NewSourceOpener(source)
		if err != nil {
			return nil, NewSuffixListError(source.String(), err)
		}

		openers = append(openers, opener)
	}

	texts := make([]string, len(openers))

	g, ctx := errgroup.WithContext(ctx)

	for i, opener := range openers {
		i, opener := i, opener

		g.Go(func() error {
			text, err := fetch(ctx, opener)
			if err != nil {
				return NewSuffixListError(opener.String(), err)
			}

			texts[i] = text

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return texts, nil
}

func fetch(ctx context.Context, opener SourceOpener) (string, error) {
	r, err := opener.Open(ctx)
	if err != nil {
		return "", err
	}
	defer r.Close()

	data, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}

	return string(data), nil
}

// compiledRule holds the forms of a rule to insert.
type compiledRule struct {
	forms   []string
	private bool
}

func toCompiledRule(rule parsers.Rule) (compiledRule, error) {
	ascii, err := util.ToASCII(rule.Value)
	if err != nil {
		return compiledRule{}, fmt.Errorf("can't convert rule '%s' to ASCII: %w", rule.Value, err)
	}

	forms := []string{ascii}
	if ascii != rule.Value {
		forms = append(forms, rule.Value)
	}

	return compiledRule{forms: forms, private: rule.Private}, nil
}

func (c *Compiler) parse(ctx context.Context, name, text string, res *Ruleset) error {
	parser := parsers.AllowErrors(
		parsers.TryAdapt(parsers.Rules(strings.NewReader(text)), toCompiledRule),
		parsers.NoErrorLimit,
	)

	parser.OnErr(func(err error) {
		log.FromCtx(ctx).WithField("source", name).Debugf("skipping rule: %s", err)
	})

	defer func() {
		if n := parser.Skipped(); n > 0 {
			log.FromCtx(ctx).WithField("source", name).Debugf("skipped %d rules", n)
		}
	}()

	return parsers.ForEach[compiledRule](ctx, parser, func(rule compiledRule) error {
		set := suffixSet(res.Public)

		if rule.private {
			if res.DisablePrivate {
				return nil
			}

			set = res.Private
		}

		for _, form := range rule.forms {
			set.add(form)
		}

		return nil
	})
}

func buildTrie(res *Ruleset) *trie.SuffixTrie {
	t := trie.New()

	insert := func(rules map[string]struct{}) {
		for rule := range rules {
			t.Insert(trie.SplitLabels(rule))
		}
	}

	insert(res.Public)

	if !res.DisablePrivate {
		insert(res.Private)
	}

	return t
}
