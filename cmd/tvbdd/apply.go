// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dalzilio/tvbdd"
)

var (
	applyOp    string
	applyLimit int
)

var applyCmd = &cobra.Command{
	Use:   "apply",
	Short: "Run AndReduced, XorReduced or IteReduced over two generated literals.",
	RunE: func(cmd *cobra.Command, args []string) error {
		fc, err := loadFileConfig(cfgPath)
		if err != nil {
			return err
		}
		m, err := tvbdd.New(fc.Varnum, fc.options()...)
		if err != nil {
			return err
		}
		f := m.Ithvar(0)
		g := m.Ithvar(fc.Varnum - 1)
		var r tvbdd.Edge
		var reduced bool
		switch applyOp {
		case "xor":
			r, reduced = tvbdd.XorReduced(m, f, g, fc.heuristicFunc(), applyLimit)
		case "ite":
			r, reduced = tvbdd.IteReduced(m, f, g, m.Ithvar(1%fc.Varnum), fc.heuristicFunc(), applyLimit)
		default:
			r, reduced = tvbdd.AndReduced(m, f, g, fc.heuristicFunc(), applyLimit)
		}
		fmt.Printf("op=%s limit=%d reduced=%v result-is-unknown=%v\n", applyOp, applyLimit, reduced, r == m.Unknown())
		return nil
	},
}

func init() {
	applyCmd.Flags().StringVar(&applyOp, "op", "and", "operator to run: and, xor, ite")
	applyCmd.Flags().IntVar(&applyLimit, "limit", 1024, "node budget")
}
