package config

const (
	// DefaultProjectPath is the default project path
	DefaultProjectPath = "."
	// DefaultSrcDir is the directory convention for package roots
	DefaultSrcDir = "src"
	// DefaultOutputJSONFile is the default output JSON file name
	DefaultOutputJSONFile = "doctest-results.json"
	// DefaultOutputJSONDir is the default output directory
	DefaultOutputJSONDir = "storage"
)

// DefaultPathsToIgnore are the default directories to ignore when scanning for modules
var DefaultPathsToIgnore = []string{
	"vendor",
	"node_modules",
	"testdata",
	"dist",
	"build",
}
