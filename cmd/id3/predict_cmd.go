package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pbanos/id3/tree"
)

type predictCmdConfig struct {
	source sourceConfig
	sample string
}

func predictCmd() *cobra.Command {
	config := &predictCmdConfig{}
	cmd := &cobra.Command{
		Use:   "predict",
		Short: "Predict the label for a sample",
		Long:  `Grow a tree from a dataset and use it to predict the label for a sample given as a list of feature values`,
		Run: func(cmd *cobra.Command, args []string) {
			err := config.Validate()
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			vector, err := parseSample(config.sample)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			t, err := growTree(cmd.Context(), &config.source)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(2)
			}
			label, err := t.Predict(vector)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				if errors.Is(err, tree.ErrUnseenFeatureValue) {
					os.Exit(4)
				}
				os.Exit(3)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Predicted %s for %v is %v\n", t.Label, t.Features, label)
		},
	}
	config.source.addFlags(cmd.Flags(), "", "training data")
	cmd.Flags().StringVarP(&(config.sample), "sample", "s", "", "comma-separated values for every feature of the sample, in the order of the dataset columns (required)")
	return cmd
}

func (pcc *predictCmdConfig) Validate() error {
	if err := pcc.source.Validate(); err != nil {
		return err
	}
	if pcc.sample == "" {
		return fmt.Errorf("required sample flag was not set")
	}
	return nil
}

/*
parseSample takes a line of comma-separated values and returns them as
a feature vector of strings, the way dataset sources read values.
*/
func parseSample(line string) ([]interface{}, error) {
	r := csv.NewReader(strings.NewReader(line))
	r.TrimLeadingSpace = true
	values, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("parsing sample %q: %v", line, err)
	}
	vector := make([]interface{}, 0, len(values))
	for _, v := range values {
		vector = append(vector, v)
	}
	return vector, nil
}
