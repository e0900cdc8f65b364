package models

// Severity controls how strict the review tools are configured.
type Severity string

const (
	SeverityLenient  Severity = "lenient"
	SeverityModerate Severity = "moderate"
	SeverityStrict   Severity = "strict"
)

// DefaultSeverity is used whenever no severity was chosen.
const DefaultSeverity = SeverityModerate

// ValidSeverities returns all valid severity values.
func ValidSeverities() []Severity {
	return []Severity{SeverityLenient, SeverityModerate, SeverityStrict}
}

// IsValid checks if the severity is a valid value.
func (s Severity) IsValid() bool {
	switch s {
	case SeverityLenient, SeverityModerate, SeverityStrict:
		return true
	}
	return false
}

// Preferences holds the optional tuning choices of a wizard run.
type Preferences struct {
	ReviewSeverity  Severity      `json:"reviewSeverity" yaml:"review_severity"`
	TestFramework   TestFramework `json:"testFramework" yaml:"test_framework"`
	InstallGlobally bool          `json:"installGlobally" yaml:"install_globally"`
}

// Selections is the resolved set of choices driving config generation.
type Selections struct {
	Editor      Editor      `json:"editor" yaml:"editor"`
	MCPs        []string    `json:"mcps" yaml:"mcps"`
	Preferences Preferences `json:"preferences" yaml:"preferences"`
}

// Detected bundles the results of the environment probes.
// Zero values mean the probe found nothing or failed.
type Detected struct {
	Editor        Editor
	Project       ProjectInfo
	TestFramework TestFramework
}
