package types

// DefaultMarker is the directory name that anchors the project root.
const DefaultMarker = "cosnova"

type LocationSource string

const (
	LocationSourceRuntime LocationSource = "runtime"
	LocationSourceStatic  LocationSource = "static"
	LocationSourceConfig  LocationSource = "config"
)

type OutputFormat string

const (
	OutputFormatText OutputFormat = "text"
	OutputFormatYAML OutputFormat = "yaml"
	OutputFormatJSON OutputFormat = "json"
)

// Resolution records how a project root (and optionally a path below it)
// was obtained.
type Resolution struct {
	Marker   string         `yaml:"marker" json:"marker"`
	Location string         `yaml:"location,omitempty" json:"location,omitempty"`
	Source   LocationSource `yaml:"source" json:"source"`
	Root     string         `yaml:"root" json:"root"`
	Relative string         `yaml:"relative,omitempty" json:"relative,omitempty"`
	Path     string         `yaml:"path,omitempty" json:"path,omitempty"`
}

// Target returns the resolved path when one was requested, otherwise the root.
func (r Resolution) Target() string {
	if r.Path != "" {
		return r.Path
	}
	return r.Root
}

// ResolutionReport is the document persisted by the report file adapter.
type ResolutionReport struct {
	Resolutions []Resolution `yaml:"resolutions"`
}
