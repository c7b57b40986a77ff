package cmd

import (
	"fmt"
	"net"
	"net/http"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/0xERR0R/tldextract/config"
	"github.com/0xERR0R/tldextract/log"
)

//nolint:gochecknoglobals
var (
	configPath string
	apiHost    string
	apiPort    uint16
)

const (
	defaultPort       = 4000
	defaultHost       = "localhost"
	defaultConfigPath = config.DefaultConfigPath
	configFileEnvVar  = "TLDEXTRACT_CONFIG_FILE"
)

// NewRootCommand creates a new root cli command instance
func NewRootCommand() *cobra.Command {
	c := &cobra.Command{
		Use:   "tldextract",
		Short: "tldextract splits domains using the Public Suffix List",
		Long: `Accurately separates a domain name into its subdomain, registrable domain
and public suffix, using the Public Suffix List.

Complete documentation is available at https://github.com/0xERR0R/tldextract`,
		SilenceUsage: true,
	}

	c.PersistentFlags().StringVarP(&configPath, "config", "c", defaultConfigPath, "path to config file")
	c.PersistentFlags().StringVar(&apiHost, "apiHost", defaultHost, "host of tldextract (API)")
	c.PersistentFlags().Uint16Var(&apiPort, "apiPort", defaultPort, "port of tldextract (API)")

	c.AddCommand(
		NewExtractCommand(),
		newServeCommand(),
		NewSuffixListCommand(),
		NewValidateCommand(),
		NewVersionCommand(),
	)

	return c
}

func apiURL(path string) string {
	return fmt.Sprintf("http://%s%s", net.JoinHostPort(apiHost, strconv.Itoa(int(apiPort))), path)
}

// loadConfig reads the configuration, the file is optional unless `mandatory` is set
func loadConfig(mandatory bool) (*config.Config, error) {
	if configPath == defaultConfigPath {
		if val, present := os.LookupEnv(configFileEnvVar); present {
			configPath = val
		}
	}

	cfg, err := config.LoadConfig(configPath, mandatory)
	if err != nil {
		return nil, fmt.Errorf("unable to load configuration: %w", err)
	}

	log.ConfigureLogger(cfg.Log)

	return cfg, nil
}

type codeWithStatus interface {
	StatusCode() int
	Status() string
}

type apiResponse struct {
	resp *http.Response
}

func (r apiResponse) StatusCode() int {
	return r.resp.StatusCode
}

func (r apiResponse) Status() string {
	return r.resp.Status
}

func printOkOrError(resp codeWithStatus, body string) error {
	if resp.StatusCode() == http.StatusOK {
		log.Log().Info("OK")

		return nil
	}

	return fmt.Errorf("response NOK, %s %s", resp.Status(), body)
}

// Execute starts the command
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
