package ops

type Operation string

const (
	OperationExtract Operation = "extract"
	OperationDivide  Operation = "divide"
	OperationJoin    Operation = "join"
)

// Output kinds
const (
	KindUserinfo   = "userinfo"
	KindPostinfo   = "postinfo"
	KindGarbage    = "garbage"
	KindPart       = "part"
	KindUnique     = "combined_unique"
	KindDuplicates = "duplicates"
)

type Output struct {
	Kind  string `yaml:"kind"`
	Path  string `yaml:"path"`
	Lines int    `yaml:"lines"`
}

// Summary describes one completed operation.
type Summary struct {
	Operation Operation      `yaml:"operation"`
	Inputs    []string       `yaml:"inputs"`
	Outputs   []Output       `yaml:"outputs"`
	Counts    map[string]int `yaml:"counts"`
	Warnings  []string       `yaml:"warnings,omitempty"`
}

func newSummary(operation Operation, inputs ...string) *Summary {
	return &Summary{
		Operation: operation,
		Inputs:    inputs,
		Counts:    make(map[string]int),
	}
}

func (s *Summary) Output(kind string) (Output, bool) {
	for _, output := range s.Outputs {
		if output.Kind == kind {
			return output, true
		}
	}
	return Output{}, false
}
