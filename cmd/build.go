package cmd

import "github.com/conneroisu/expressor/internal/build"

var buildCmd = newPipelineCommand(build.PipelineBuild,
	"Transpile an Expresso file and compile it",
	`Transpile an Expresso source file, then compile the Java file with the
configured compiler (javac by default).

Examples:
  expressor build Test.expresso
  expressor build Test.expresso --out build`,
)

func init() {
	rootCmd.AddCommand(buildCmd)
}
