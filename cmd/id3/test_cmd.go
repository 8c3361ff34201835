package main

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type testCmdConfig struct {
	training sourceConfig
	testing  sourceConfig
}

func testCmd() *cobra.Command {
	config := &testCmdConfig{}
	cmd := &cobra.Command{
		Use:   "test",
		Short: "Test the performance of a tree",
		Long:  `Grow a tree from a training dataset and test its performance against a testing dataset`,
		Run: func(cmd *cobra.Command, args []string) {
			err := config.Validate()
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			t, err := growTree(cmd.Context(), &config.training)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(2)
			}
			testTable, err := config.testing.Read(cmd.Context())
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(3)
			}
			if testTable.Label != t.Label {
				log.Warnf("testing dataset label %s differs from training label %s", testTable.Label, t.Label)
			}
			testData, err := testTable.Project(t.Features)
			if err != nil {
				fmt.Fprintf(os.Stderr, "aligning testing dataset with training features: %v\n", err)
				os.Exit(3)
			}
			log.Debugf("Testing tree against %d records...", testData.Count())
			successRate, unseen, err := t.Test(cmd.Context(), testData)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(4)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%f success rate, failed to make a prediction for %d samples\n", successRate, unseen)
		},
	}
	config.training.addFlags(cmd.Flags(), "", "training data")
	config.testing.addFlags(cmd.Flags(), "test-", "testing data")
	return cmd
}

func (tcc *testCmdConfig) Validate() error {
	if err := tcc.training.Validate(); err != nil {
		return err
	}
	return tcc.testing.Validate()
}
