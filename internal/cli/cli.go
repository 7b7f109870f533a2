// Package cli provides the command-line interface for the OpenAPI to Postman converter.
package cli

import (
	"context"

	"github.com/GabrielNunesIT/go-libs/logger"
	"github.com/spf13/cobra"

	"github.com/stueynz/openapi-to-postman/internal/adapters/converters"
	"github.com/stueynz/openapi-to-postman/internal/config"
	"github.com/stueynz/openapi-to-postman/internal/domain"
)

const examples = `  Read spec.yaml or spec.json and store the output in output.json after conversion
    openapi2postmanv2 -s spec.yaml -o output.json

  Read spec.yaml or spec.json and print the output to the console
    openapi2postmanv2 -s spec.yaml

  Read spec.yaml or spec.json and store the prettified output in output.json
    openapi2postmanv2 -s spec.yaml -o output.json -p

  Read the specification from standard input
    cat spec.yaml | openapi2postmanv2 -s -`

// options holds the parsed command-line flags.
type options struct {
	specPath            string
	outputPath          string
	test                bool
	pretty              bool
	disableHeaderParams bool
	disableQueryParams  bool
	accessToken         string
}

// CLI holds the command-line interface configuration.
type CLI struct {
	log       logger.ILogger
	cfg       config.Config
	converter domain.Converter
	rootCmd   *cobra.Command
	opts      options
}

// New creates a new CLI instance.
func New(log logger.ILogger, cfg config.Config, version string) *CLI {
	cli := &CLI{
		log:       log,
		cfg:       cfg,
		converter: converters.NewPostmanConverter(),
	}

	cli.rootCmd = &cobra.Command{
		Use:           "openapi2postmanv2",
		Short:         "Convert OpenAPI specifications to Postman Collections",
		Long:          "Converts a given OPENAPI specification to POSTMAN Collections v2.1.0",
		Example:       examples,
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          cli.run,
	}
	cli.rootCmd.SetVersionTemplate("{{.Version}}\n")

	cli.setupFlags()

	return cli
}

func (c *CLI) setupFlags() {
	flags := c.rootCmd.Flags()
	flags.StringVarP(&c.opts.specPath, "spec", "s", "", "Convert given OPENAPI spec (YAML or JSON, - for stdin) to Postman Collection v2.1")
	flags.StringVarP(&c.opts.outputPath, "output", "o", "", "Write the collection to an output file")
	flags.BoolVarP(&c.opts.test, "test", "t", false, "Test the OPENAPI converter with the bundled sample")
	flags.BoolVarP(&c.opts.pretty, "pretty", "p", false, "Pretty print the JSON file")
	flags.BoolVarP(&c.opts.disableHeaderParams, "headerParameterDisabled", "H", false, "Header parameters are DISABLED in the Postman Collection")
	flags.BoolVarP(&c.opts.disableQueryParams, "queryParameterDisabled", "Q", false, "Query parameters are DISABLED in the Postman Collection")
	flags.StringVarP(&c.opts.accessToken, "accessToken", "A", "", "Default value for a pretend OAuth2.0 access token")
}

// Execute runs the CLI.
func (c *CLI) Execute(ctx context.Context) error {
	return c.rootCmd.ExecuteContext(ctx)
}
