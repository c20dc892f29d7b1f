package main

import (
	"fmt"
	"io"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/zucenko/pointmap/model"
)

func newMapCmd() *cobra.Command {
	verbose := false
	cmd := &cobra.Command{
		Use:   "map FILE",
		Short: "Read a map file and show it with its input and output cells",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMap(cmd.OutOrStdout(), args[0], verbose)
		},
	}
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "also print every cell with its coordinates")
	return cmd
}

func runMap(out io.Writer, path string, verbose bool) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	m, err := model.ReadMap(f)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	log.Infof("read %s: %dx%d", path, m.Rows(), m.Cols())

	if _, err := m.Print(out); err != nil {
		return err
	}
	if verbose {
		if _, err := m.PrintPoints(out); err != nil {
			return err
		}
	}
	fmt.Fprintf(out, "input: %v\noutput: %v\n", m.Input(), m.Output())

	in := m.Input()
	if in == nil {
		return nil
	}
	for _, d := range model.Directions() {
		nb, err := m.Neighbor(in, d)
		if err != nil {
			log.Debugf("no %v neighbor: %v", d, err)
			fmt.Fprintf(out, "%-5s -\n", d)
			continue
		}
		fmt.Fprintf(out, "%-5s %v\n", d, nb)
	}
	return nil
}
