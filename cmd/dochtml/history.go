package main

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/fwojciec/dochtml"
)

// Run executes the history command.
func (c *HistoryCmd) Run(deps *Dependencies) error {
	if c.ID != "" {
		conv, err := deps.Conversions.FindConversionByID(deps.Ctx, c.ID)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", dochtml.ErrorMessage(err))
			return err
		}
		printConversion(deps, conv)
		return nil
	}

	filter, err := c.filter()
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", dochtml.ErrorMessage(err))
		return err
	}

	conversions, err := deps.Conversions.FindConversions(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", dochtml.ErrorMessage(err))
		return err
	}

	if len(conversions) == 0 {
		fmt.Fprintln(deps.Stdout, "No conversions found. Use 'dochtml convert' to convert a document.")
		return nil
	}

	w := tabwriter.NewWriter(deps.Stdout, 0, 0, 2, ' ', 0)
	for _, conv := range conversions {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			conv.ID, conv.CreatedAt.Local().Format(time.DateTime), conv.Status, conv.Filename, summary(conv))
	}
	return w.Flush()
}

func (c *HistoryCmd) filter() (dochtml.ConversionFilter, error) {
	filter := dochtml.ConversionFilter{Limit: c.Limit}
	if c.Status != "" {
		status := dochtml.Status(c.Status)
		if status != dochtml.StatusConverted && status != dochtml.StatusFailed {
			return filter, dochtml.Errorf(dochtml.EINVALID, "unknown status %q", c.Status)
		}
		filter.Status = &status
	}
	if c.Format != "" {
		format, err := dochtml.DetectFormat("." + c.Format)
		if err != nil {
			return filter, dochtml.Errorf(dochtml.EINVALID, "unknown format %q", c.Format)
		}
		filter.Format = &format
	}
	return filter, nil
}

func summary(conv *dochtml.Conversion) string {
	if conv.Status == dochtml.StatusFailed {
		return conv.Error
	}
	return fmt.Sprintf("%d bytes", conv.Bytes)
}

func printConversion(deps *Dependencies, conv *dochtml.Conversion) {
	fmt.Fprintf(deps.Stdout, "ID:       %s\n", conv.ID)
	fmt.Fprintf(deps.Stdout, "File:     %s\n", conv.Filename)
	fmt.Fprintf(deps.Stdout, "Format:   %s\n", conv.Format)
	fmt.Fprintf(deps.Stdout, "Status:   %s\n", conv.Status)
	fmt.Fprintf(deps.Stdout, "Created:  %s\n", conv.CreatedAt.Local().Format(time.DateTime))
	if conv.OutputPath != "" {
		fmt.Fprintf(deps.Stdout, "Output:   %s\n", conv.OutputPath)
	}
	if conv.Status == dochtml.StatusConverted {
		fmt.Fprintf(deps.Stdout, "Bytes:    %d\n", conv.Bytes)
		fmt.Fprintf(deps.Stdout, "Hash:     %s\n", conv.ContentHash)
	}
	if conv.Error != "" {
		fmt.Fprintf(deps.Stdout, "Error:    %s\n", conv.Error)
	}
}
