// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/dalzilio/tvbdd"
)

var benchMaxLimit int

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Sweep node budgets 0..max-limit, reporting how many nodes each call billed.",
	RunE: func(cmd *cobra.Command, args []string) error {
		fc, err := loadFileConfig(cfgPath)
		if err != nil {
			return err
		}
		m, err := tvbdd.New(fc.Varnum, fc.options()...)
		if err != nil {
			return err
		}
		f := m.One()
		for i := 0; i < fc.Varnum; i++ {
			f, _ = tvbdd.AndReduced(m, f, m.Ithvar(i), fc.heuristicFunc(), 1<<20)
		}
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "limit\tconsumed\treduced")
		for limit := 0; limit <= benchMaxLimit; limit++ {
			_, reduced, consumed := tvbdd.ReduceByNodeLimitStats(m, f, fc.heuristicFunc(), limit)
			fmt.Fprintf(w, "%d\t%d\t%v\n", limit, consumed, reduced)
		}
		return w.Flush()
	},
}

func init() {
	benchCmd.Flags().IntVar(&benchMaxLimit, "max-limit", 8, "sweep node budgets 0..max-limit")
}
