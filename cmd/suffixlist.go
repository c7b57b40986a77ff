package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/0xERR0R/tldextract/api"
	"github.com/0xERR0R/tldextract/extract"
	"github.com/0xERR0R/tldextract/log"
)

// NewSuffixListCommand creates new command instance
func NewSuffixListCommand() *cobra.Command {
	c := &cobra.Command{
		Use:     "suffixlist",
		Aliases: []string{"psl"},
		Short:   "Control the suffix list of a running server",
	}

	c.AddCommand(&cobra.Command{
		Use:   "refresh",
		Args:  cobra.NoArgs,
		Short: "Recompiles the suffix list from its sources",
		RunE:  refreshSuffixList,
	}, &cobra.Command{
		Use:   "status",
		Args:  cobra.NoArgs,
		Short: "Print the status of the suffix list",
		RunE:  statusSuffixList,
	})

	return c
}

func refreshSuffixList(_ *cobra.Command, _ []string) error {
	resp, err := http.Post(apiURL(api.PathSuffixListRefresh), jsonContentType, nil)
	if err != nil {
		return fmt.Errorf("can't execute: %w", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	return printOkOrError(apiResponse{resp}, string(body))
}

func statusSuffixList(_ *cobra.Command, _ []string) error {
	resp, err := http.Get(apiURL(api.PathSuffixListStatus))
	if err != nil {
		return fmt.Errorf("can't execute: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)

		return printOkOrError(apiResponse{resp}, string(body))
	}

	var status extract.Status

	if err := json.NewDecoder(resp.Body).Decode(&status); err != nil {
		return fmt.Errorf("can't read response: %w", err)
	}

	log.Log().Infof("last build: %s", status.LastBuild.Format("2006-01-02 15:04:05"))
	log.Log().Infof("stale: %t", status.Stale)
	log.Log().Infof("rules: %d public, %d private", status.PublicRules, status.PrivateRules)

	if status.DisablePrivate {
		log.Log().Info("private domains are disabled")
	}

	for _, source := range status.Sources {
		log.Log().Infof("source: %s", source)
	}

	return nil
}
