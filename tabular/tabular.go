// SPDX-License-Identifier: MIT

// Package tabular renders factors as aligned text tables: one header row with
// the variable names and a value column, then one row per joint assignment in
// the factor's linear order.
//
//	X  ZZ  value
//	1  1      11
//	1  2      22
//
// Widths are measured in terminal cells (go-runewidth), so names and domain
// values outside ASCII stay aligned.
package tabular

import (
	"bufio"
	"fmt"
	"io"
	"iter"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvfactor/factor"
	"github.com/mattn/go-runewidth"
)

// ---------- Formatting literals ----------

const (
	_gutter  = "  "
	_newline = "\n"
)

// Source is anything that exposes a scope and an ordered (assignment, value)
// enumeration over it. *factor.Factor satisfies Source.
type Source interface {
	Scope() factor.Scope
	All() iter.Seq2[factor.Assignment, float64]
}

// Render writes src as a table to w.
//
// Implementation:
//   - Stage 1: materialize all cells as strings (header first).
//   - Stage 2: measure the widest cell per column.
//   - Stage 3: pad variable columns on the right, the value column on the left.
//
// Complexity: O(cardinality * len(scope)) time and memory.
func Render(w io.Writer, src Source, opts ...Option) error {
	cfg := gatherOptions(opts...)
	names := src.Scope().Names()

	rows := [][]string{append(append([]string{}, names...), cfg.valueHeader)}
	for asg, v := range src.All() {
		row := make([]string, 0, len(names)+1)
		for _, n := range names {
			row = append(row, fmt.Sprint(asg[n]))
		}
		row = append(row, strconv.FormatFloat(v, 'g', cfg.precision, 64))
		rows = append(rows, row)
	}

	widths := make([]int, len(names)+1)
	for _, row := range rows {
		for i, cell := range row {
			widths[i] = max(widths[i], runewidth.StringWidth(cell))
		}
	}

	bw := bufio.NewWriter(w)
	last := len(widths) - 1
	for _, row := range rows {
		var line strings.Builder
		for i, cell := range row {
			if i == last {
				line.WriteString(runewidth.FillLeft(cell, widths[i]))
				continue
			}
			line.WriteString(runewidth.FillRight(cell, widths[i]))
			line.WriteString(_gutter)
		}
		line.WriteString(_newline)
		if _, err := bw.WriteString(line.String()); err != nil {
			return fmt.Errorf("tabular: write: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("tabular: flush: %w", err)
	}

	return nil
}

// String renders src to a string.
func String(src Source, opts ...Option) string {
	var b strings.Builder
	_ = Render(&b, src, opts...) // strings.Builder never fails

	return b.String()
}
