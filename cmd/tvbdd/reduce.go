// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dalzilio/tvbdd"
)

var reduceLimit int

var reduceCmd = &cobra.Command{
	Use:   "reduce",
	Short: "Build the conjunction of all registered variables and reduce it under a node budget.",
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
		fmt.Println("before:")
		fmt.Println(m.Stats())
		r, reduced, consumed := tvbdd.ReduceByNodeLimitStats(m, f, fc.heuristicFunc(), reduceLimit)
		fmt.Println("after:")
		fmt.Println(m.Stats())
		fmt.Printf("limit=%d consumed=%d reduced=%v result-is-unknown=%v\n", reduceLimit, consumed, reduced, r == m.Unknown())
		return nil
	},
}

func init() {
	reduceCmd.Flags().IntVar(&reduceLimit, "limit", 4, "node budget passed to ReduceByNodeLimit")
}
