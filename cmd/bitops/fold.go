package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/segmentio/bitops-go"
	"github.com/segmentio/bitops-go/internal/debug"
)

type foldFlags struct {
	_      struct{} `help:"Fold the provided 64 bits values into a narrower field"`
	Bits   int      `flag:"-n,--bits" help:"Width of the folded values (1 to 63)" default:"8"`
	Format string   `flag:"-f,--format" help:"Output format (table or json)" default:"table"`
	Debug  bool     `flag:"--debug" help:"Display debugging logs" default:"false"`
}

type fold struct {
	Value string `json:"value"`
	Bits  int    `json:"bits"`
	Fold  string `json:"fold"`
}

var foldHeader = []string{"VALUE", "BITS", "FOLD"}

func (f fold) row() []string {
	return []string{f.Value, strconv.Itoa(f.Bits), f.Fold}
}

func foldCommand(flags foldFlags, values []string) int {
	debug.Toggle(flags.Debug)

	if err := foldValues(os.Stdout, flags, values); err != nil {
		perrorf("%s", err)
		return 1
	}
	return 0
}

func foldValues(w io.Writer, flags foldFlags, values []string) error {
	if err := checkFormat(flags.Format); err != nil {
		return err
	}
	if flags.Bits < 0 {
		return fmt.Errorf("%w: %d", bitops.ErrFoldWidth, flags.Bits)
	}
	n := uint(flags.Bits)
	if err := bitops.CheckFoldWidth[uint64](n); err != nil {
		return err
	}

	records := make([]fold, 0, len(values))

	for _, s := range values {
		u, err := strconv.ParseUint(s, 0, 64)
		if err != nil {
			return fmt.Errorf("%w: %v", errInvalidValue, err)
		}
		f := bitops.FoldBits[uint64](u, n)
		pdebugf("folded %#x into %d bits: %#x", u, n, f)
		records = append(records, fold{
			Value: hex(u, 64),
			Bits:  flags.Bits,
			Fold:  hex(f, (flags.Bits+3)&^3),
		})
	}

	return writeRecords(w, flags.Format, foldHeader, records)
}
