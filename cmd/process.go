package cmd

import (
	"fmt"

	"github.com/ArnaudCalmettes/morphos/imp"
	"github.com/ArnaudCalmettes/morphos/pipeline"
	"github.com/ArnaudCalmettes/morphos/report"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var operatorHelp = map[string]string{
	"dilate":           "Replace each pixel by the maximum of its neighborhood",
	"erode":            "Replace each pixel by the minimum of its neighborhood",
	"open":             "Erode then dilate (removes small bright specks)",
	"close":            "Dilate then erode (fills small dark gaps)",
	"dilate_sub_erode": "Dilation minus erosion (morphological gradient, highlights edges)",
}

// newOperatorCmd builds the command applying the named operator to a file.
func newOperatorCmd(name string) *cobra.Command {
	c := &cobra.Command{
		Use:   name + " FILE",
		Short: operatorHelp[name],
		Args:  cobra.ExactArgs(1),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			// Several commands share these flags, so bind the ones of the
			// command actually running.
			return viper.BindPFlags(cmd.Flags())
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := optionsFromConfig(name, args[0])
			if err != nil {
				return err
			}
			res, err := pipeline.Run(cmd.Context(), opts, log)
			if err != nil {
				return err
			}
			if path := viper.GetString("report"); path != "" {
				if err := report.Write(path, res); err != nil {
					return fmt.Errorf("couldn't write report: %w", err)
				}
			}
			return nil
		},
	}

	c.Flags().StringP("threshold", "t", "none", "threshold the image before applying the operator (none, mean, median)")
	c.Flags().StringP("outfile", "o", "", "file to write the result to (defaults to <FILE>_processed.<ext>)")
	c.Flags().StringP("element", "e", "square", "structuring element (square or cross)")
	c.Flags().String("gray-out", "", "also save the image fed to the operator")
	c.Flags().Bool("normalize", false, "stretch contrast before thresholding")
	c.Flags().Bool("invert", false, "invert the image before applying the operator")
	c.Flags().String("report", "", "write a YAML run report to this file")
	return c
}

func optionsFromConfig(op, input string) (pipeline.Options, error) {
	mode, err := imp.ParseThresholdMode(viper.GetString("threshold"))
	if err != nil {
		return pipeline.Options{}, err
	}
	el, err := imp.ParseElement(viper.GetString("element"))
	if err != nil {
		return pipeline.Options{}, err
	}
	return pipeline.Options{
		Input:      input,
		Output:     viper.GetString("outfile"),
		GrayOutput: viper.GetString("gray-out"),
		Operator:   op,
		Threshold:  mode,
		Element:    el,
		Normalize:  viper.GetBool("normalize"),
		Invert:     viper.GetBool("invert"),
	}, nil
}

func init() {
	for _, name := range imp.OperatorNames() {
		rootCmd.AddCommand(newOperatorCmd(name))
	}
}
