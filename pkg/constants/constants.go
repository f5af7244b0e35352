// Package constants provides shared constants used throughout the linkage
// codebase. This includes file permissions, household thresholds, data layout
// paths, and other configuration values that should be consistent across the
// application.
package constants

// File permission constants define standard Unix file permissions
const (
	// DirPermissions is the default permission for created directories (rwxr-xr-x)
	DirPermissions = 0755

	// FilePermissions is the default permission for created files (rw-r--r--)
	FilePermissions = 0644

	// SecureFilePermissions is for sensitive files like client extracts (rw-------)
	SecureFilePermissions = 0600
)

// Household constants
const (
	// AdultAge is the age in whole years at program entry at or above which a
	// client counts as an adult. Clients younger than this count as children.
	AdultAge = 18
)

// Limit constants define various limits and capacities
const (
	// MaxConcurrentMaterializers is the maximum number of label materialization
	// workers to run concurrently during a resolve
	MaxConcurrentMaterializers = 4

	// WriteBufferSize is the default buffer size for write operations
	WriteBufferSize = 4096

	// RunIDLength is the length of generated run identifiers
	RunIDLength = 12
)

// Data layout constants name the directories and files of a data drop. Paths
// are relative to the configured data directory.
const (
	// HMISDir is the subdirectory holding HMIS extracts
	HMISDir = "hmis"

	// ConnectingPointDir is the subdirectory holding Connecting Point extracts
	ConnectingPointDir = "connecting_point"

	// MatchingDir is the subdirectory holding cross-source match results
	MatchingDir = "matching"

	// HMISProgramFile is the HMIS program enrollment extract
	HMISProgramFile = "program with family.csv"

	// HMISClientFile is the de-identified HMIS client extract
	HMISClientFile = "client de-identified.csv"

	// HMISDuplicateFile is the Link Plus deduplication report for HMIS
	HMISDuplicateFile = "hmis_client_duplicates_link_plus.csv"

	// CPCaseFile is the Connecting Point case extract
	CPCaseFile = "case.csv"

	// CPClientFile is the Connecting Point client extract
	CPClientFile = "client.csv"

	// CPDuplicateFile is the Link Plus deduplication report for Connecting Point
	CPDuplicateFile = "cp_client_duplicates_link_plus.csv"

	// MatchFile is the cross-source match results extract
	MatchFile = "cp_hmis_match_results.csv"
)

// Output constants
const (
	// HMISOutputFile is the default file name for the labeled HMIS table
	HMISOutputFile = "hmis.csv"

	// CPOutputFile is the default file name for the labeled Connecting Point table
	CPOutputFile = "cp.csv"

	// DatabaseFile is the default file name for the SQLite export
	DatabaseFile = "linkage.db"
)

// Format constants
const (
	// TimeFormatISO8601 is the ISO 8601 time format
	TimeFormatISO8601 = "2006-01-02T15:04:05Z07:00"

	// DateFormatISO is the date-only layout used in exports
	DateFormatISO = "2006-01-02"

	// TimeFormatFilename is the format used in generated filenames
	TimeFormatFilename = "20060102-150405"
)
