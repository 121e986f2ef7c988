// Package catalog supplies the registration inputs for the completion
// engine: the hand-authored custom domains, the API-derived domain
// records, extension child sets, and the bootstrap sequencing that feeds
// them all into a registry in precedence order.
package catalog

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/nimbusctl/nbsh/internal/completion"
)

//go:embed custom_domains.yaml
var customDomainsYAML []byte

type customDomainsFile struct {
	Domains []completion.CustomDomain `yaml:"domains"`
}

// CustomDomains loads the hand-authored domain definitions shipped with
// the binary.
func CustomDomains() ([]completion.CustomDomain, error) {
	var file customDomainsFile
	if err := yaml.Unmarshal(customDomainsYAML, &file); err != nil {
		return nil, fmt.Errorf("failed to parse custom domain catalog: %w", err)
	}
	return file.Domains, nil
}
