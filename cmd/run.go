package cmd

import "github.com/conneroisu/expressor/internal/build"

var runCmd = newPipelineCommand(build.PipelineRun,
	"Build an Expresso file and execute it",
	`Build an Expresso source file, then execute the compiled unit with the
configured runtime (java by default). The program inherits the terminal's
standard streams; a non-zero exit status is reported as a failure.

Examples:
  expressor run Test.expresso
  expressor run Test.expresso --out build --verbose`,
)

func init() {
	rootCmd.AddCommand(runCmd)
}
