package main

import (
	"fmt"

	"github.com/fwojciec/dochtml"
	"github.com/fwojciec/dochtml/convert"
	"github.com/fwojciec/dochtml/fs"
)

// Run executes the convert command.
// Inputs whose output path is already taken by an earlier input fail with
// EINVALID and are not converted.
func (c *ConvertCmd) Run(deps *Dependencies) error {
	outcomes := make([]convert.Outcome, len(c.Files))
	reqs := make([]dochtml.ConversionRequest, 0, len(c.Files))
	index := make([]int, 0, len(c.Files))
	owners := make(map[string]string, len(c.Files))
	for i, file := range c.Files {
		out, err := fs.OutputPath(c.OutDir, file, ".html")
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", dochtml.ErrorMessage(err))
			return err
		}
		req := dochtml.ConversionRequest{SourcePath: file, Filename: file, OutputPath: out}
		if owner, ok := owners[out]; ok {
			outcomes[i] = convert.Outcome{
				Request: req,
				Err:     dochtml.Errorf(dochtml.EINVALID, "output %s is already used by %s", out, owner),
			}
			continue
		}
		owners[out] = file
		reqs = append(reqs, req)
		index = append(index, i)
	}

	converted, err := convert.ConvertAll(deps.Ctx, deps.Converter, reqs, c.Concurrency, nil)
	if err != nil {
		return err
	}
	for j, o := range converted {
		outcomes[index[j]] = o
	}

	var failed int
	for _, o := range outcomes {
		if o.Err != nil {
			failed++
			c.record(deps, o, o.Err, nil)
			fmt.Fprintf(deps.Stderr, "%s: %s\n", o.Request.Filename, dochtml.ErrorMessage(o.Err))
			continue
		}

		// The HTML is already written; a markdown failure is only a warning.
		var mdErr error
		if deps.Markdown != nil {
			if mdErr = c.writeMarkdown(deps, o); mdErr != nil {
				mdErr = dochtml.Errorf(dochtml.ErrorCode(mdErr), "markdown export failed: %s", dochtml.ErrorMessage(mdErr))
			}
		}
		c.record(deps, o, nil, mdErr)
		fmt.Fprintf(deps.Stdout, "%s -> %s\n", o.Request.Filename, o.Request.OutputPath)
		if mdErr != nil {
			fmt.Fprintf(deps.Stderr, "warning: %s: %s\n", o.Request.Filename, dochtml.ErrorMessage(mdErr))
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d conversions failed", failed, len(outcomes))
	}
	return nil
}

func (c *ConvertCmd) writeMarkdown(deps *Dependencies, o convert.Outcome) error {
	md, err := deps.Markdown.Convert(string(o.Result.HTML))
	if err != nil {
		return err
	}
	path, err := fs.OutputPath(c.OutDir, o.Request.Filename, ".md")
	if err != nil {
		return err
	}
	if err := deps.Output.WriteFile(deps.Ctx, path, []byte(md)); err != nil {
		return dochtml.WrapError(dochtml.ECONVERSION, err, "write markdown")
	}
	return nil
}

// record stores the outcome in the history. A non-nil err marks it failed;
// a warning is kept in the error column of a converted entry. A history
// failure is logged and does not fail the conversion.
func (c *ConvertCmd) record(deps *Dependencies, o convert.Outcome, err, warning error) {
	conv := &dochtml.Conversion{
		Filename:   o.Request.Filename,
		SourcePath: o.Request.SourcePath,
		OutputPath: o.Request.OutputPath,
		Status:     dochtml.StatusConverted,
	}
	if format, ferr := dochtml.DetectFormat(o.Request.Filename); ferr == nil {
		conv.Format = format
	}
	if o.Result != nil {
		conv.Content = o.Result.HTML
	}
	if warning != nil {
		conv.Error = dochtml.ErrorMessage(warning)
	}
	if err != nil {
		conv.Status = dochtml.StatusFailed
		conv.Error = dochtml.ErrorMessage(err)
	}

	if rerr := deps.Conversions.CreateConversion(deps.Ctx, conv); rerr != nil && deps.Logger != nil {
		deps.Logger.Warn("record conversion", "file", o.Request.Filename, "err", rerr)
	}
}
