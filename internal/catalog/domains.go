package catalog

import (
	"github.com/nimbusctl/nbsh/internal/completion"
)

// APIDomains is the catalog of API-spec-derived domains. Each record pairs
// with the shared action vocabulary during registration; none of them may
// displace a custom domain with the same name.
var APIDomains = []completion.DomainInfo{
	{
		Name:        "load_balancer",
		DisplayName: "Load Balancer",
		Description: "HTTP, TCP and UDP load balancing",
		Aliases:     []string{"lb"},
	},
	{
		Name:        "http_loadbalancer",
		DisplayName: "HTTP Load Balancer",
		Description: "HTTP and HTTPS load balancer configuration",
		Aliases:     []string{"hlb"},
	},
	{
		Name:        "tcp_loadbalancer",
		DisplayName: "TCP Load Balancer",
		Description: "TCP load balancer configuration",
		Aliases:     []string{"tlb"},
	},
	{
		Name:        "origin_pool",
		DisplayName: "Origin Pool",
		Description: "Origin server pools and upstream selection",
		Aliases:     []string{"op"},
	},
	{
		Name:        "healthcheck",
		DisplayName: "Health Check",
		Description: "Origin health checking policies",
		Aliases:     []string{"hc"},
	},
	{
		Name:        "security",
		DisplayName: "Security",
		Description: "WAF policies, service policies and threat protection",
		Aliases:     []string{"sec"},
	},
	{
		Name:        "app_firewall",
		DisplayName: "Application Firewall",
		Description: "Web application firewall rule sets",
		Aliases:     []string{"waf"},
	},
	{
		Name:        "bot_defense",
		DisplayName: "Bot Defense",
		Description: "Automated traffic detection and mitigation",
	},
	{
		Name:        "api_security",
		DisplayName: "API Security",
		Description: "API discovery, testing and endpoint protection",
		Aliases:     []string{"apisec"},
	},
	{
		Name:        "networking",
		DisplayName: "Networking",
		Description: "Networks, routing, BGP and virtual connectivity",
		Aliases:     []string{"net"},
	},
	{
		Name:        "dns_zone",
		DisplayName: "DNS Zone",
		Description: "DNS zones and record management",
		Aliases:     []string{"dns"},
	},
	{
		Name:        "cdn_distribution",
		DisplayName: "CDN Distribution",
		Description: "Content delivery distributions and caching",
		Aliases:     []string{"cdn"},
	},
	{
		Name:        "infrastructure",
		DisplayName: "Infrastructure",
		Description: "Sites, fleets and cluster management",
		Aliases:     []string{"infra"},
	},
	{
		Name:        "site",
		DisplayName: "Site",
		Description: "Edge and customer site lifecycle",
	},
	{
		Name:        "virtual_site",
		DisplayName: "Virtual Site",
		Description: "Label-selected groups of sites",
		Aliases:     []string{"vsite"},
	},
	{
		Name:        "fleet",
		DisplayName: "Fleet",
		Description: "Fleet configuration for site groups",
	},
	{
		Name:        "observability",
		DisplayName: "Observability",
		Description: "Monitoring, alerts, metrics and dashboards",
		Aliases:     []string{"obs", "o11y"},
	},
	{
		Name:        "alert_policy",
		DisplayName: "Alert Policy",
		Description: "Alert routing and receiver policies",
	},
	{
		Name:        "identity",
		DisplayName: "Identity",
		Description: "Users, roles, authentication and access control",
		Aliases:     []string{"iam"},
	},
	{
		Name:        "service_account",
		DisplayName: "Service Account",
		Description: "Machine credentials and API tokens",
		Aliases:     []string{"sa"},
	},
	{
		Name:        "service_mesh",
		DisplayName: "Service Mesh",
		Description: "Mesh configuration, discovery and orchestration",
		Aliases:     []string{"mesh"},
	},
	{
		Name:        "secret",
		DisplayName: "Secret",
		Description: "Secret storage and policy-gated access",
	},
	{
		Name:        "certificate",
		DisplayName: "Certificate",
		Description: "TLS certificate lifecycle",
		Aliases:     []string{"cert"},
	},
}
