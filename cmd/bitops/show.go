package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/segmentio/bitops-go"
	"github.com/segmentio/bitops-go/internal/debug"
)

type showFlags struct {
	_      struct{} `help:"Display the bit transforms of the provided values"`
	Width  int      `flag:"-w,--width" help:"Width of the values in bits (8, 16, 32, or 64)" default:"64"`
	Shift  int      `flag:"-s,--shift" help:"Rotation amount, negative values swap the rotation direction" default:"1"`
	Format string   `flag:"-f,--format" help:"Output format (table or json)" default:"table"`
	Debug  bool     `flag:"--debug" help:"Display debugging logs" default:"false"`
}

type transform struct {
	Value        string `json:"value"`
	RotateLeft   string `json:"rotate_left"`
	RotateRight  string `json:"rotate_right"`
	ReverseBits  string `json:"reverse_bits"`
	ReverseBytes string `json:"reverse_bytes,omitempty"`
	CountBits    int    `json:"count_bits"`
	Parity       int    `json:"parity"`
	Gray         string `json:"gray"`
	GrayToBinary string `json:"gray_to_binary"`
}

var transformHeader = []string{
	"VALUE",
	"ROTL",
	"ROTR",
	"REVERSE BITS",
	"REVERSE BYTES",
	"COUNT",
	"PARITY",
	"GRAY",
	"GRAY TO BINARY",
}

func (t transform) row() []string {
	return []string{
		t.Value,
		t.RotateLeft,
		t.RotateRight,
		t.ReverseBits,
		t.ReverseBytes,
		strconv.Itoa(t.CountBits),
		strconv.Itoa(t.Parity),
		t.Gray,
		t.GrayToBinary,
	}
}

func showCommand(flags showFlags, values []string) int {
	debug.Toggle(flags.Debug)

	if err := show(os.Stdout, flags, values); err != nil {
		perrorf("%s", err)
		return 1
	}
	return 0
}

func show(w io.Writer, flags showFlags, values []string) error {
	if err := checkFormat(flags.Format); err != nil {
		return err
	}

	records := make([]transform, 0, len(values))

	for _, s := range values {
		t, err := parseTransform(s, flags.Width, flags.Shift)
		if err != nil {
			return err
		}
		pdebugf("%s: %d bits set", t.Value, t.CountBits)
		records = append(records, t)
	}

	return writeRecords(w, flags.Format, transformHeader, records)
}

func parseTransform(s string, width, shift int) (transform, error) {
	switch width {
	case 8, 16, 32, 64:
	default:
		return transform{}, fmt.Errorf("%w: %d (must be 8, 16, 32, or 64)", errInvalidWidth, width)
	}

	u, err := strconv.ParseUint(s, 0, width)
	if err != nil {
		return transform{}, fmt.Errorf("%w: %v", errInvalidValue, err)
	}

	switch width {
	case 8:
		return transformOf(uint8(u), shift), nil
	case 16:
		t := transformOf(uint16(u), shift)
		t.ReverseBytes = hex(uint64(bitops.ReverseBytes(uint16(u))), width)
		return t, nil
	case 32:
		t := transformOf(uint32(u), shift)
		t.ReverseBytes = hex(uint64(bitops.ReverseBytes(uint32(u))), width)
		return t, nil
	default:
		t := transformOf(u, shift)
		t.ReverseBytes = hex(bitops.ReverseBytes(u), width)
		return t, nil
	}
}

func transformOf[T bitops.Unsigned](v T, shift int) transform {
	w := int(bitops.Width[T]())
	x := func(u T) string { return hex(uint64(u), w) }
	return transform{
		Value:        x(v),
		RotateLeft:   x(bitops.Rotate(v, shift)),
		RotateRight:  x(bitops.Rotate(v, -shift)),
		ReverseBits:  x(bitops.ReverseBits(v)),
		CountBits:    bitops.CountBits(v),
		Parity:       bitops.Parity(v),
		Gray:         x(bitops.BinaryToGray(v)),
		GrayToBinary: x(bitops.GrayToBinary(v)),
	}
}
