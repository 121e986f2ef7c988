package completion

// The two adapters below convert the foreign command-source shapes into the
// shared Node form. They are pure: the registry decides precedence purely
// through registration order, and tests can build fixtures from definition
// literals without touching a registry.

// CustomCommand is one hand-authored command inside a custom domain.
type CustomCommand struct {
	Name        string   `yaml:"name"`
	Description string   `yaml:"description"`
	Aliases     []string `yaml:"aliases,omitempty"`
	Hidden      bool     `yaml:"hidden,omitempty"`
}

// CommandGroup is a named group of commands inside a custom domain, shown
// as an intermediate subcommand level.
type CommandGroup struct {
	Name        string          `yaml:"name"`
	Description string          `yaml:"description"`
	Commands    []CustomCommand `yaml:"commands"`
}

// CustomDomain is a hand-authored top-level domain definition with direct
// commands and nested subcommand groups.
type CustomDomain struct {
	Name        string          `yaml:"name"`
	Description string          `yaml:"description"`
	Aliases     []string        `yaml:"aliases,omitempty"`
	Hidden      bool            `yaml:"hidden,omitempty"`
	Commands    []CustomCommand `yaml:"commands,omitempty"`
	Groups      []CommandGroup  `yaml:"groups,omitempty"`
}

// DomainInfo is the record describing one API-spec-derived domain.
type DomainInfo struct {
	Name        string
	DisplayName string
	Description string
	Aliases     []string
}

// Actions is the fixed vocabulary shared by every API-derived domain, in
// display order.
var Actions = []string{
	"list",
	"get",
	"create",
	"delete",
	"replace",
	"apply",
	"status",
	"patch",
	"add-labels",
	"remove-labels",
}

var actionDescriptions = map[string]string{
	"list":          "List resources",
	"get":           "Get a specific resource",
	"create":        "Create a new resource",
	"delete":        "Delete a resource",
	"replace":       "Replace a resource",
	"apply":         "Apply configuration from file",
	"status":        "Get resource status",
	"patch":         "Patch a resource",
	"add-labels":    "Add labels to a resource",
	"remove-labels": "Remove labels from a resource",
}

// ActionDescription returns the static description for an action name,
// falling back to the name itself when none is registered.
func ActionDescription(action string) string {
	if desc, ok := actionDescriptions[action]; ok {
		return desc
	}
	return action
}

// FromCustomDomain builds the completion subtree for a hand-authored
// domain. Direct commands become childless nodes carrying their own
// aliases; groups become intermediate nodes whose children are the group's
// commands. Everything is tagged SourceCustom.
func FromCustomDomain(domain CustomDomain) *Node {
	root := &Node{
		Name:        domain.Name,
		Description: domain.Description,
		Aliases:     domain.Aliases,
		Hidden:      domain.Hidden,
		Source:      SourceCustom,
	}
	for _, cmd := range domain.Commands {
		root.AddChild(&Node{
			Name:        cmd.Name,
			Description: cmd.Description,
			Aliases:     cmd.Aliases,
			Hidden:      cmd.Hidden,
			Source:      SourceCustom,
		})
	}
	for _, group := range domain.Groups {
		groupNode := NewNode(group.Name, group.Description, SourceCustom)
		for _, cmd := range group.Commands {
			groupNode.AddChild(&Node{
				Name:        cmd.Name,
				Description: cmd.Description,
				Aliases:     cmd.Aliases,
				Hidden:      cmd.Hidden,
				Source:      SourceCustom,
			})
		}
		root.AddChild(groupNode)
	}
	return root
}

// FromAPIDomain builds the completion subtree for an API-derived domain.
// Its children are exactly the shared action vocabulary, and the domain
// aliases come from the record. Everything is tagged SourceAPI.
func FromAPIDomain(info DomainInfo) *Node {
	root := &Node{
		Name:        info.Name,
		Description: info.Description,
		Aliases:     info.Aliases,
		Source:      SourceAPI,
	}
	for _, action := range Actions {
		root.AddChild(NewNode(action, ActionDescription(action), SourceAPI))
	}
	return root
}
