package cfg

import (
	"cmp"
	"errors"
	"fmt"
	"os"

	"github.com/jessevdk/go-flags"
)

// Version is set at build time via -ldflags
var Version = "dev"

func GetVersion() string {
	return cmp.Or(Version, "unknown")
}

type fileArg struct {
	File string `positional-arg-name:"FILE" required:"yes"`
}

type extractCmd struct {
	Include string  `long:"include" short:"i" description:"Comma separated keywords that must all appear in a URL"`
	Exclude string  `long:"exclude" short:"x" description:"Comma separated keywords that must not appear in a URL"`
	Args    fileArg `positional-args:"yes"`
}

type divideCmd struct {
	Parts int     `long:"parts" short:"n" required:"true" description:"Number of parts to divide into"`
	Args  fileArg `positional-args:"yes"`
}

type joinCmd struct {
	Args struct {
		Files []string `positional-arg-name:"FILE" required:"1"`
	} `positional-args:"yes"`
}

type rawCfg struct {
	// Workspace configuration
	WorkDir    string `long:"dir" short:"C" env:"TEXT_COMB_DIR" default:"." description:"Working directory for input discovery and output files"`
	OutputDir  string `long:"output-dir" env:"TEXT_COMB_OUTPUT_DIR" default:"output" description:"Directory for divided parts, relative to the working directory"`
	ReportPath string `long:"report" env:"TEXT_COMB_REPORT" description:"Append a YAML summary of each operation to this file (optional)"`

	// Presentation
	NoColor bool `long:"no-color" description:"Disable colored output (also set by a non-empty NO_COLOR)"`
	Debug   bool `long:"debug" env:"DEBUG" description:"Enable debug logging"`

	Extract extractCmd `command:"extract" description:"Extract and categorize URLs from a text file"`
	Divide  divideCmd  `command:"divide" description:"Divide a text file into parts"`
	Join    joinCmd    `command:"join" description:"Join text files, tracking duplicate lines"`
}

var globalCfg *Cfg

// Load parses the process arguments and environment. It returns nil, nil
// when help was requested.
func Load() (*Cfg, error) {
	return LoadArgs(os.Args[1:])
}

func LoadArgs(args []string) (*Cfg, error) {
	var raw rawCfg

	parser := flags.NewParser(&raw, flags.Default)
	parser.SubcommandsOptional = true

	if _, err := parser.ParseArgs(args); err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}

	cfg := &Cfg{
		WorkDir:    raw.WorkDir,
		OutputDir:  raw.OutputDir,
		ReportPath: raw.ReportPath,
		NoColor:    raw.NoColor || os.Getenv("NO_COLOR") != "",
		Debug:      raw.Debug,
		Version:    GetVersion(),
		Command:    CommandMenu,
	}

	if parser.Active != nil {
		switch Command(parser.Active.Name) {
		case CommandExtract:
			cfg.Command = CommandExtract
			cfg.File = raw.Extract.Args.File
			cfg.Include = raw.Extract.Include
			cfg.Exclude = raw.Extract.Exclude
		case CommandDivide:
			if raw.Divide.Parts < 1 {
				return nil, fmt.Errorf("invalid --parts %d: must be at least 1", raw.Divide.Parts)
			}
			cfg.Command = CommandDivide
			cfg.File = raw.Divide.Args.File
			cfg.Parts = raw.Divide.Parts
		case CommandJoin:
			cfg.Command = CommandJoin
			cfg.Files = raw.Join.Args.Files
		}
	}

	globalCfg = cfg

	return cfg, nil
}

func Get() *Cfg {
	if globalCfg == nil {
		panic("configuration not loaded - call cfg.Load() first")
	}
	return globalCfg
}
