// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// DefinedFieldsCount represents the total cardinality of the application configuration schema.
const DefinedFieldsCount = 13

// Iconography - these keys manage the visual rendering of UI symbols.
const (
	IconsVariant = "icons.variant"
)

// Page Retrieval - these keys govern how remote documents are fetched and cached.
const (
	FetchTimeout   = "fetch.timeout"
	FetchUserAgent = "fetch.user_agent"
	CacheEnable    = "cache.enable"
	CacheTTL       = "cache.ttl"
)

// Palette Output - these keys shape how discovered swatches are printed.
const (
	ScanChipWidth  = "scan.chip_width"
	ScanShowUsages = "scan.show_usages"
)

// Editor Bridge - these keys configure the live palette editor transport.
const (
	ServeListen = "serve.listen"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics and auditing system.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI Execution Environment - these flags and settings govern the application behavior.
const (
	CliColored      = "cli.colored"
	CliVersionCheck = "cli.version_check"
)
