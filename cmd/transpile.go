package cmd

import "github.com/conneroisu/expressor/internal/build"

var transpileCmd = newPipelineCommand(build.PipelineTranspile,
	"Validate an Expresso file and write the Java source",
	`Validate an Expresso source file and materialize the Java file for it.

The Java file is produced from a template: <template dir>/<Name>.java when
present, else the fallback template, with every occurrence of the
placeholder replaced by the source file's base name.

Examples:
  expressor transpile Test.expresso
  expressor transpile Test.expresso --out build --verbose`,
)

func init() {
	rootCmd.AddCommand(transpileCmd)
}
