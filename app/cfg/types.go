package cfg

type Command string

const (
	CommandMenu    Command = "menu"
	CommandExtract Command = "extract"
	CommandDivide  Command = "divide"
	CommandJoin    Command = "join"
)

type Cfg struct {
	// Workspace
	WorkDir    string
	OutputDir  string
	ReportPath string

	// Presentation
	NoColor bool
	Debug   bool
	Version string

	// Selected subcommand and its arguments
	Command Command
	File    string
	Files   []string
	Parts   int
	Include string
	Exclude string
}
