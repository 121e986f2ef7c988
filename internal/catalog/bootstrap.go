package catalog

import (
	"go.uber.org/zap"

	"github.com/nimbusctl/nbsh/internal/completion"
)

// Bootstrap populates a registry in precedence order: custom domains
// first, then every API domain not already present, then extension
// merges. It must run to completion before any suggestion query or script
// generation; the precedence guarantee depends on this ordering, not on
// any lock.
func Bootstrap(reg *completion.Registry, logger *zap.Logger) error {
	customs, err := CustomDomains()
	if err != nil {
		return err
	}
	for _, domain := range customs {
		reg.RegisterDomain(completion.FromCustomDomain(domain))
	}
	logger.Debug("registered custom domains", zap.Int("count", len(customs)))

	registered := 0
	for _, info := range APIDomains {
		if reg.Has(info.Name) {
			continue
		}
		reg.RegisterDomain(completion.FromAPIDomain(info))
		registered++
	}
	logger.Debug("registered api domains",
		zap.Int("count", registered),
		zap.Int("skipped", len(APIDomains)-registered))

	for domainName, children := range Extensions() {
		reg.MergeChildren(domainName, children)
	}

	logger.Info("completion registry ready", zap.Int("domains", reg.Len()))
	return nil
}
