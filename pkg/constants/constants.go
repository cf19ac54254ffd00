// Package constants provides shared constants for the jssolar simulation core.
package constants

// Simulation constants
const (
	// HorizonYears is the length of the investment projection in years
	HorizonYears = 20

	// DaysPerYear is the day count used for annual generation
	DaysPerYear = 365

	// MonthsPerYear is the number of months in a year
	MonthsPerYear = 12

	// KWhPerREC is the generation represented by one renewable energy
	// certificate (1 MWh)
	KWhPerREC = 1000.0

	// DecimalPrecision is the precision for currency rounding (2 decimal places)
	DecimalPrecision = 100

	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100.0

	// CurrencyTolerance is the tolerance for currency comparisons
	CurrencyTolerance = 0.01
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"

	// ExampleConfigFile is the example configuration file name
	ExampleConfigFile = "config.yaml.example"
)

// Server configuration defaults
const (
	// DefaultServerAddress is the default HTTP listen address for the API
	DefaultServerAddress = ":8080"

	// DefaultMaxRequestBytes is the default maximum request body size
	DefaultMaxRequestBytes int64 = 256 * 1024

	// DefaultRateLimitPerSecond is the default API rate limit
	DefaultRateLimitPerSecond = 20
)
