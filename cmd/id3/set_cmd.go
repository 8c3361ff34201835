package main

import (
	"context"
	"fmt"
	"io/ioutil"
	"os"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/pbanos/id3/dataset"
	"github.com/pbanos/id3/dataset/csv"
	"github.com/pbanos/id3/dataset/sqldataset"
	"github.com/pbanos/id3/dataset/yaml"
)

type setCmdConfig struct {
	input  sourceConfig
	output sourceConfig
}

func setCmd() *cobra.Command {
	config := &setCmdConfig{}
	cmd := &cobra.Command{
		Use:   "set",
		Short: "Copy datasets between formats",
		Long:  `Read a dataset and write it to a file or database table in the given format`,
		Run: func(cmd *cobra.Command, args []string) {
			err := config.Validate()
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			t, err := config.input.Read(cmd.Context())
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(2)
			}
			err = writeTable(cmd.Context(), &config.output, t)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(3)
			}
			log.Debugf("%d records written to %s", t.Records.Count(), config.output.dataset)
		},
	}
	config.input.addFlags(cmd.Flags(), "", "data to copy")
	config.output.addFlags(cmd.Flags(), "output-", "copied data")
	return cmd
}

func (scc *setCmdConfig) Validate() error {
	if err := scc.input.Validate(); err != nil {
		return err
	}
	return scc.output.Validate()
}

/*
writeTable takes a context, the configuration of a destination and a table
and writes the table onto the destination. File destinations must not exist
and database tables are created. A CSV file that cannot be fully written is
removed.
*/
func writeTable(ctx context.Context, sc *sourceConfig, t *dataset.Table) error {
	format, err := sc.Format()
	if err != nil {
		return err
	}
	switch format {
	case csvFormat:
		f, err := os.OpenFile(sc.dataset, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
		if err != nil {
			return errors.Wrap(err, "creating output file")
		}
		err = csv.WriteTable(f, t)
		if cerr := f.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			os.Remove(sc.dataset)
			return errors.Wrapf(err, "writing CSV file %s", sc.dataset)
		}
		return nil
	case yamlFormat:
		data, err := yaml.WriteTable(t)
		if err != nil {
			return err
		}
		if _, err = os.Stat(sc.dataset); err == nil {
			return fmt.Errorf("output file %s already exists", sc.dataset)
		}
		return ioutil.WriteFile(sc.dataset, data, 0644)
	default:
		s, err := sqldataset.Open(format, sc.dataset)
		if err != nil {
			return err
		}
		defer s.Close()
		return errors.Wrapf(s.Create(ctx, sc.table, t), "writing table %s", sc.table)
	}
}
