// Command imagegen is a CLI for the image pipeline: it folds flags into the
// same loosely-typed parameter map the MCP tools accept, then runs the
// parse → validate → select → invoke path and writes the results to disk.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func main() {
	_ = godotenv.Load()

	root := newRootCommand()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	app := &appContext{}

	root := &cobra.Command{
		Use:   "imagegen",
		Short: "Generate, edit, and vary images across AI backends",
		Long: `imagegen routes image requests to the best available backend
(OpenAI, Google, ...) based on the requested operation, model, and an
optional provider preference, with automatic fallback.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			app.setup()
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&app.provider, "provider", "", "preferred backend name (e.g. openai, google)")
	flags.StringVar(&app.model, "model", "", "model identifier (e.g. gpt-image-1)")
	flags.StringVar(&app.size, "size", "", "image dimensions as WIDTHxHEIGHT (e.g. 1024x1024)")
	flags.IntVarP(&app.count, "count", "n", 1, "number of images to produce (1-10)")
	flags.StringVarP(&app.outputDir, "output", "o", ".", "directory for generated image files")
	flags.BoolVarP(&app.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(
		newGenerateCommand(app),
		newEditCommand(app),
		newVariationCommand(app),
		newProvidersCommand(app),
		newModelsCommand(),
	)
	return root
}
