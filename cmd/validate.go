package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/cobra"

	"github.com/0xERR0R/tldextract/config"
	"github.com/0xERR0R/tldextract/log"
)

// NewValidateCommand creates new command instance
func NewValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Args:  cobra.NoArgs,
		Short: "Validates the configuration and its local suffix list files",
		RunE:  validateConfiguration,
	}
}

func validateConfiguration(_ *cobra.Command, _ []string) error {
	log.Log().Infof("Validating configuration file: %s", configPath)

	if _, err := os.Stat(configPath); errors.Is(err, os.ErrNotExist) {
		return errors.New("configuration path does not exist")
	}

	cfg, err := loadConfig(true)
	if err != nil {
		return err
	}

	if err := checkLocalSources(cfg.SuffixList.Sources()); err != nil {
		return err
	}

	log.Log().Info("Configuration is valid")

	return nil
}

// checkLocalSources reports every file source that can't be read.
// Remote sources are only checked when the suffix list is compiled.
func checkLocalSources(sources []config.BytesSource) error {
	var res *multierror.Error

	for _, source := range sources {
		log.Log().Infof("suffix list source: %s", source)

		if source.Type != config.BytesSourceTypeFile {
			continue
		}

		f, err := os.Open(source.From)
		if err != nil {
			res = multierror.Append(res, fmt.Errorf("suffix list file: %w", err))

			continue
		}

		f.Close()
	}

	return res.ErrorOrNil()
}
