package cmd

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"github.com/mgutz/ansi"
	"github.com/spf13/cobra"

	"github.com/0xERR0R/tldextract/config"
	"github.com/0xERR0R/tldextract/extract"
	"github.com/0xERR0R/tldextract/lists"
	"github.com/0xERR0R/tldextract/log"
)

const (
	jsonContentType = "application/json"
	notAvailable    = "N/A"
	outputFileMode  = 0o644
)

var errNoTarget = errors.New("no domain given: pass domains as arguments, with --list or on stdin")

type extractOptions struct {
	source                string
	list                  string
	json                  bool
	filter                string
	output                string
	disablePrivateDomains bool
	punycode              bool
}

// NewExtractCommand creates new command instance
func NewExtractCommand() *cobra.Command {
	opts := new(extractOptions)

	c := &cobra.Command{
		Use:     "extract [domain...]",
		Aliases: []string{"x"},
		Short:   "Splits domains into subdomain, domain and suffix",
		Long: `Splits domains into subdomain, domain, suffix and registered domain.

Domains are read from the arguments, from the --list file, or from stdin
if it is not a terminal. Invalid domains are reported and skipped.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExtract(cmd, args, opts)
		},
	}

	f := c.Flags()
	f.StringVarP(&opts.source, "source", "s", "",
		"suffix list source: snapshot, remote, URL or file path (default from config)")
	f.StringVarP(&opts.list, "list", "l", "", "file with one domain per line")
	f.BoolVarP(&opts.json, "json", "j", false, "write output in JSON lines format")
	f.StringVarP(&opts.filter, "filter", "f", "",
		"only print one field: "+strings.Join(extract.FieldNames, ", "))
	f.StringVarP(&opts.output, "output", "o", "", "also write all results as a JSON array to this file")
	f.BoolVar(&opts.disablePrivateDomains, "disable-private-domains", false, "ignore the private section of the list")
	f.BoolVar(&opts.punycode, "punycode", false, "print punycode instead of unicode labels")

	return c
}

func runExtract(cmd *cobra.Command, args []string, opts *extractOptions) error {
	cfg, err := loadConfig(false)
	if err != nil {
		return err
	}

	extractCfg := opts.apply(cmd, cfg.Extract)

	format, err := newResultFormatter(cmd.OutOrStdout(), opts)
	if err != nil {
		return err
	}

	targets, err := readTargets(args, opts.list, cmd.InOrStdin())
	if err != nil {
		return err
	}

	extractor, err := extract.New(cmd.Context(), extractCfg, lists.NewCompilerFromConfig(cfg.Downloads))
	if err != nil {
		return err
	}

	results := make([]extract.Result, 0, len(targets))

	for _, target := range targets {
		res, err := extractor.Extract(target)
		if err != nil {
			log.Log().Warnf("skipping '%s': %s", log.EscapeInput(target), err)

			continue
		}

		results = append(results, res)

		if err := format(res); err != nil {
			return err
		}
	}

	if len(opts.output) > 0 {
		return writeResults(opts.output, results)
	}

	return nil
}

// apply overrides `cfg` with the command line flags
func (o *extractOptions) apply(cmd *cobra.Command, cfg config.Extract) config.Extract {
	if len(o.source) > 0 {
		cfg.SuffixList.Source = config.NewBytesSource(o.source)
		cfg.SuffixList.Extra = nil
	}

	if cmd.Flags().Changed("disable-private-domains") {
		cfg.SuffixList.DisablePrivateDomains = o.disablePrivateDomains
	}

	if o.punycode {
		cfg.UnicodeOutput = false
	}

	return cfg
}

// readTargets returns the domains to extract without duplicates, in input order
func readTargets(args []string, list string, stdin io.Reader) ([]string, error) {
	var lines []string

	switch {
	case len(args) > 0:
		lines = args

	case len(list) > 0:
		data, err := os.ReadFile(list)
		if err != nil {
			// not a file: the value is the domain itself
			lines = []string{list}
		} else {
			lines = strings.Split(string(data), "\n")
		}

	default:
		if f, ok := stdin.(*os.File); ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())) {
			return nil, errNoTarget
		}

		var err error

		lines, err = readLines(stdin)
		if err != nil {
			return nil, fmt.Errorf("can't read stdin: %w", err)
		}
	}

	seen := make(map[string]struct{}, len(lines))
	res := make([]string, 0, len(lines))

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if len(line) == 0 {
			continue
		}

		if _, ok := seen[line]; ok {
			continue
		}

		seen[line] = struct{}{}
		res = append(res, line)
	}

	if len(res) == 0 {
		return nil, errNoTarget
	}

	return res, nil
}

func readLines(r io.Reader) ([]string, error) {
	var res []string

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		res = append(res, scanner.Text())
	}

	return res, scanner.Err()
}

type resultFormatter func(extract.Result) error

func newResultFormatter(out io.Writer, opts *extractOptions) (resultFormatter, error) {
	switch {
	case opts.json:
		return func(res extract.Result) error {
			data, err := json.Marshal(res)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(out, string(data))

			return err
		}, nil

	case len(opts.filter) > 0:
		field := strings.ToLower(strings.TrimSpace(opts.filter))

		if _, err := (extract.Result{}).Field(field); err != nil {
			return nil, err
		}

		return func(res extract.Result) error {
			value, _ := res.Field(field)

			_, err := fmt.Fprintln(out, value)

			return err
		}, nil
	}

	colored := false

	if f, ok := out.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		out = colorable.NewColorable(f)
		colored = true
	}

	paint := func(s, style string) string {
		if len(s) == 0 {
			s = notAvailable
		}

		if !colored {
			return s
		}

		return ansi.Color(s, style)
	}

	return func(res extract.Result) error {
		_, err := fmt.Fprintf(out, "[ %s | %s | %s | %s ]\n",
			paint(res.Subdomain, "magenta"),
			paint(res.RegisteredDomain, "green"),
			paint(res.Domain, "red"),
			paint(res.Suffix, "blue"),
		)

		return err
	}, nil
}

func writeResults(path string, results []extract.Result) error {
	data, err := json.Marshal(results)
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, outputFileMode); err != nil {
		return fmt.Errorf("can't write output file: %w", err)
	}

	return nil
}
