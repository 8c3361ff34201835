package main

import (
	"context"
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/pbanos/id3"
	"github.com/pbanos/id3/tree"
)

type growCmdConfig struct {
	source sourceConfig
}

func growCmd() *cobra.Command {
	config := &growCmdConfig{}
	cmd := &cobra.Command{
		Use:   "grow",
		Short: "Grow a tree from a dataset",
		Long:  `Grow an ID3 decision tree from a dataset to predict its label and print it.`,
		Run: func(cmd *cobra.Command, args []string) {
			err := config.source.Validate()
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			t, err := growTree(cmd.Context(), &config.source)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(2)
			}
			fmt.Fprint(cmd.OutOrStdout(), t)
		},
	}
	config.source.addFlags(cmd.Flags(), "", "training data")
	return cmd
}

/*
growTree reads the dataset from the given source and grows a tree
with it.
*/
func growTree(ctx context.Context, sc *sourceConfig) (*tree.Tree, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	table, err := sc.Read(ctx)
	if err != nil {
		return nil, err
	}
	log.Debugf("Growing tree to predict %s from %d records...", table.Label, table.Records.Count())
	t, err := id3.GrowTree(table.Records, table.Features, table.Label)
	if err != nil {
		return nil, fmt.Errorf("growing tree: %v", err)
	}
	log.Debugf("Tree grown with depth %d", t.Depth())
	return t, nil
}
