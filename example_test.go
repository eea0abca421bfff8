package bitops_test

import (
	"fmt"

	"github.com/segmentio/bitops-go"
)

func ExampleRotateLeft() {
	fmt.Printf("%#02x\n", bitops.RotateLeft(uint8(0x21), 1))
	fmt.Printf("%#02x\n", bitops.RotateLeft(uint8(0x21), 9))
	// Output:
	// 0x42
	// 0x42
}

func ExampleRotate() {
	fmt.Printf("%#04x\n", bitops.Rotate(uint16(0xB73C), 4))
	fmt.Printf("%#04x\n", bitops.Rotate(uint16(0xB73C), -4))
	// Output:
	// 0x73cb
	// 0xcb73
}

func ExampleReverseBytes() {
	fmt.Printf("%#04x\n", bitops.ReverseBytes(uint16(0xFC5A)))
	// Output:
	// 0x5afc
}

func ExampleCountBits() {
	fmt.Println(bitops.CountBits(uint8(0xFF)), bitops.Parity(uint8(0xFF)))
	// Output:
	// 8 0
}

func ExampleFoldBits() {
	fmt.Printf("%#x\n", bitops.FoldBits[uint32](0xF8E9DACBBCAD9E8F, 32))
	// Output:
	// 0x44444444
}
