package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/stueynz/openapi-to-postman/internal/domain"
	"github.com/stueynz/openapi-to-postman/internal/samples"
)

const stdinPath = "-"

func (c *CLI) run(cmd *cobra.Command, _ []string) error {
	data, ok, err := c.readInput(cmd)
	if err != nil {
		return err
	}

	if !ok {
		return cmd.Help()
	}

	status, err := c.converter.Convert(cmd.Context(), domain.Input{
		Type: domain.InputTypeString,
		Data: data,
	}, domain.Options{
		DisableQueryParams:  c.opts.disableQueryParams,
		DisableHeaderParams: c.opts.disableHeaderParams,
		AccessToken:         c.opts.accessToken,
	})
	if err != nil {
		return fmt.Errorf("conversion failed: %w", err)
	}

	if !status.Result {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), status.Reason)
		return err
	}

	if len(status.Output) == 0 || status.Output[0].Data == nil {
		return errors.New("conversion failed: converter produced no output")
	}

	collection := status.Output[0].Data

	if c.opts.outputPath != "" {
		file, err := filepath.Abs(c.opts.outputPath)
		if err != nil {
			return fmt.Errorf("failed to resolve output path: %w", err)
		}

		c.log.Infof("Writing to file: %s (pretty: %t)", file, c.opts.pretty)

		if err := writeToFile(file, collection, c.opts.pretty, c.cfg.Indent); err != nil {
			return err
		}

		c.log.Infof("Conversion successful, collection written to file: %s", file)

		return nil
	}

	return printCollection(cmd.OutOrStdout(), collection)
}

// readInput returns the specification text for the selected mode. ok is
// false when neither --test nor --spec was given.
func (c *CLI) readInput(cmd *cobra.Command) (string, bool, error) {
	switch {
	case c.opts.test:
		if c.opts.specPath != "" {
			c.log.Infof("Test mode: ignoring --spec %s", c.opts.specPath)
		}

		data, err := samples.Read(c.cfg.SampleSpec)
		if err != nil {
			return "", false, err
		}

		return data, true, nil
	case c.opts.specPath == stdinPath:
		c.log.Infof("Input file: <stdin>")

		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", false, fmt.Errorf("failed to read specification from stdin: %w", err)
		}

		return string(data), true, nil
	case c.opts.specPath != "":
		// Relative paths are resolved against the working directory, not the
		// executable's location.
		inputFile, err := filepath.Abs(c.opts.specPath)
		if err != nil {
			return "", false, fmt.Errorf("failed to resolve path: %w", err)
		}

		c.log.Infof("Input file: %s", inputFile)

		data, err := os.ReadFile(inputFile)
		if err != nil {
			return "", false, fmt.Errorf("failed to read specification: %w", err)
		}

		return string(data), true, nil
	default:
		return "", false, nil
	}
}
