package catalog

import (
	"github.com/nimbusctl/nbsh/internal/completion"
)

// Extensions returns late-bound child sets keyed by the domain they
// augment. An entry naming a domain that never registered is skipped by
// the registry; extensions cannot create new top-level domains.
func Extensions() map[string]map[string]*completion.Node {
	return map[string]map[string]*completion.Node{
		"api_security": {
			"discover": completion.NewNode("discover",
				"Discover API endpoints from live traffic", completion.SourceCustom),
			"control": completion.NewNode("control",
				"Toggle endpoint protection controls", completion.SourceCustom),
		},
		"cloudstatus": {
			"watch": completion.NewNode("watch",
				"Stream status changes until interrupted", completion.SourceCustom),
		},
	}
}
