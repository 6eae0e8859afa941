package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Tato14/Ped-eeg-position/pkg/layout"
	"github.com/Tato14/Ped-eeg-position/pkg/pipeline"
)

// computeCommand creates the compute command for calculating electrode positions.
func (c *CLI) computeCommand() *cobra.Command {
	var (
		output string
		asJSON bool
	)
	opts := pipeline.Options{}

	cmd := &cobra.Command{
		Use:   "compute",
		Short: "Compute 10-20 electrode coordinates from head measurements",
		Long: `Compute 10-20 electrode coordinates from head measurements.

The compute command takes the four scalar measurements (age in months, sex,
nasion-inion distance and preauricular distance, both in centimeters) and
prints the resulting 21 electrode positions. With --output the layout is
written to a file as JSON; with --json it goes to stdout in the same format.

Coordinates are in centimeters: the nasion is the origin, x grows to the
subject's right and y grows toward the nasion (the inion sits at -NI on y).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runCompute(opts, output, asJSON)
		},
	}

	subjectFlags(cmd, &opts)
	markSubjectFlagsRequired(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", "", "write the layout as JSON to this file")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the layout as JSON on stdout")

	return cmd
}

// runCompute computes the layout and prints or writes it.
func (c *CLI) runCompute(opts pipeline.Options, output string, asJSON bool) error {
	runner, err := c.newRunner(true)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	opts.Logger = c.Logger
	prog := newProgress(c.Logger)
	doc, err := runner.Compute(opts)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Placed %d electrodes", len(doc.Electrodes)))

	if output != "" {
		if err := layout.ExportJSON(doc, output); err != nil {
			return fmt.Errorf("write output %s: %w", output, err)
		}
		printSuccess("Layout complete")
		printFile(output)
		printNewline()
		printNextStep("Render", "pedeeg render "+subjectArgs(opts))
		return nil
	}

	if asJSON {
		return layout.WriteJSON(doc, os.Stdout)
	}

	printSubjectSummary(doc)
	fmt.Println(renderElectrodeTable(doc))
	return nil
}

// printSubjectSummary prints the derived scalars above the coordinate table.
func printSubjectSummary(doc layout.Document) {
	printKeyValue("Age", fmt.Sprintf("%.0f months", doc.Subject.AgeMonths))
	printKeyValue("Sex", doc.Subject.Sex)
	printKeyValue("Nasion-inion", fmt.Sprintf("%.1f cm", doc.Subject.NasionInion))
	printKeyValue("Preauricular", fmt.Sprintf("%.1f cm", doc.Subject.Preauricular))
	printKeyValue("Spacing factor", fmt.Sprintf("%.3f", doc.SpacingFactor))
	printKeyValue("Front shift", fmt.Sprintf("%.4f", doc.FrontShift))
	printKeyValue("Head radius", fmt.Sprintf("%.2f cm", doc.HeadRadius))
	printNewline()
}

// subjectArgs reconstructs the measurement flags for next-step hints.
func subjectArgs(opts pipeline.Options) string {
	return fmt.Sprintf("--age %g --sex %s --nasion-inion %g --preauricular %g",
		opts.AgeMonths, opts.Sex, opts.NasionInion, opts.Preauricular)
}
