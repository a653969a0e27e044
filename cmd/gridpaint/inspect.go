package main

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/javajack/gridpaint"
)

func newDescribeCommand() *cobra.Command {
	var params sourceParams
	cmd := &cobra.Command{
		Use:   "describe",
		Short: "Print the primitives each cell of a range emits",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDescribe(cmd.OutOrStdout(), params)
		},
	}
	params.register(cmd)
	return cmd
}

func runDescribe(w io.Writer, params sourceParams) error {
	src, err := params.open()
	if err != nil {
		return err
	}
	out, err := src.renderer.Describe(src.cells, params.mode(), func(i int) string {
		return src.area.CellAt(i).String()
	})
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, out)
	return err
}

func newValidateCommand() *cobra.Command {
	var params sourceParams
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check the cells of a range for values the renderer would replace",
		Long: `Check the cells of a range for values the renderer would replace.

Issues are printed one per line. The command fails when any issue has error
severity; warnings alone exit zero.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd.OutOrStdout(), params)
		},
	}
	params.register(cmd)
	return cmd
}

func runValidate(w io.Writer, params sourceParams) error {
	src, err := params.open()
	if err != nil {
		return err
	}
	issues := src.renderer.Validate(src.cells)
	if len(issues) == 0 {
		return nil
	}
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Cell", "Severity", "Field", "Message"})
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetAutoWrapText(false)
	errs := 0
	for _, issue := range issues {
		sev := "warning"
		if issue.Severity == gridpaint.SeverityError {
			sev = "error"
			errs++
		}
		table.Append([]string{src.area.CellAt(issue.Index).String(), sev, issue.Field, issue.Message})
	}
	table.Render()
	if errs > 0 {
		return fmt.Errorf("%d validation error(s)", errs)
	}
	return nil
}
