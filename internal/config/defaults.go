package config

const (
	// DefaultProjectPath is the default project path
	DefaultProjectPath = "."
	// DefaultOutputJSONFile is the default output JSON file name
	DefaultOutputJSONFile = "datacheck-results.json"
	// DefaultOutputJSONDir is the default output directory
	DefaultOutputJSONDir = "storage"
	// DefaultCacheDirName is the directory name used under the user cache dir
	DefaultCacheDirName = "datacheck"
	// DefaultProcessors is the default number of workers for multi-file runs
	DefaultProcessors = 4
	// DefaultMaxLineLength is the soft line length limit for text formats
	DefaultMaxLineLength = 80
	// DefaultSettingsFile is the YAML settings file looked up in the project path
	DefaultSettingsFile = "datacheck.yml"
)

// DefaultPathsToIgnore are the default directories to ignore when scanning for data files
var DefaultPathsToIgnore = []string{
	"vendor",
	"node_modules",
	"storage",
	"tmp",
	"logs",
}
