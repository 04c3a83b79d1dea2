//go:build ignore

package main

import (
	"bufio"
	"fmt"
	"os"
)

// Error correction blocks per level (L, M, Q, H): number of blocks
// and check bytes per block, from ISO/IEC 18004:2015 table 9.
// Everything else in the version table is computed.
var blocks = [41][4][2]int{
	{},
	{{1, 7}, {1, 10}, {1, 13}, {1, 17}}, // 1
	{{1, 10}, {1, 16}, {1, 22}, {1, 28}},
	{{1, 15}, {1, 26}, {2, 18}, {2, 22}},
	{{1, 20}, {2, 18}, {2, 26}, {4, 16}},
	{{1, 26}, {2, 24}, {4, 18}, {4, 22}}, // 5
	{{2, 18}, {4, 16}, {4, 24}, {4, 28}},
	{{2, 20}, {4, 18}, {6, 18}, {5, 26}},
	{{2, 24}, {4, 22}, {6, 22}, {6, 26}},
	{{2, 30}, {5, 22}, {8, 20}, {8, 24}},
	{{4, 18}, {5, 26}, {8, 24}, {8, 28}}, //10
	{{4, 20}, {5, 30}, {8, 28}, {11, 24}},
	{{4, 24}, {8, 22}, {10, 26}, {11, 28}},
	{{4, 26}, {9, 22}, {12, 24}, {16, 22}},
	{{4, 30}, {9, 24}, {16, 20}, {16, 24}},
	{{6, 22}, {10, 24}, {12, 30}, {18, 24}}, //15
	{{6, 24}, {10, 28}, {17, 24}, {16, 30}},
	{{6, 28}, {11, 28}, {16, 28}, {19, 28}},
	{{6, 30}, {13, 26}, {18, 28}, {21, 28}},
	{{7, 28}, {14, 26}, {21, 26}, {25, 26}},
	{{8, 28}, {16, 26}, {20, 30}, {25, 28}}, //20
	{{8, 28}, {17, 26}, {23, 28}, {25, 30}},
	{{9, 28}, {17, 28}, {23, 30}, {34, 24}},
	{{9, 30}, {18, 28}, {25, 30}, {30, 30}},
	{{10, 30}, {20, 28}, {27, 30}, {32, 30}},
	{{12, 26}, {21, 28}, {29, 30}, {35, 30}}, //25
	{{12, 28}, {23, 28}, {34, 28}, {37, 30}},
	{{12, 30}, {25, 28}, {34, 30}, {40, 30}},
	{{13, 30}, {26, 28}, {35, 30}, {42, 30}},
	{{14, 30}, {28, 28}, {38, 30}, {45, 30}},
	{{15, 30}, {29, 28}, {40, 30}, {48, 30}}, //30
	{{16, 30}, {31, 28}, {43, 30}, {51, 30}},
	{{17, 30}, {33, 28}, {45, 30}, {54, 30}},
	{{18, 30}, {35, 28}, {48, 30}, {57, 30}},
	{{19, 30}, {37, 28}, {51, 30}, {60, 30}},
	{{19, 30}, {38, 28}, {53, 30}, {63, 30}}, //35
	{{20, 30}, {40, 28}, {56, 30}, {66, 30}},
	{{21, 30}, {43, 28}, {59, 30}, {70, 30}},
	{{22, 30}, {45, 28}, {62, 30}, {74, 30}},
	{{24, 30}, {47, 28}, {65, 30}, {77, 30}},
	{{25, 30}, {49, 28}, {68, 30}, {81, 30}}, //40
}

// words returns the number of codewords in version v: the modules
// left after function patterns and format and version areas,
// divided by 8.
func words(v int) int {
	n := (16*v+128)*v + 64
	if v >= 2 {
		na := v/7 + 2
		n -= (25*na-10)*na - 55
		if v >= 7 {
			n -= 36
		}
	}
	return n / 8
}

// align returns the second alignment coordinate and the stride for
// the following ones.  The first coordinate is always 6.
func align(v int) (apos, astride int) {
	if v < 2 {
		return 0, 0
	}
	na := v/7 + 2
	siz := v*4 + 17
	step := 26
	if v != 32 {
		step = (v*4 + na*2 + 1) / (na*2 - 2) * 2
	}
	apos = siz - 7 - (na-2)*step
	if na > 2 {
		astride = step
	}
	return apos, astride
}

// bch appends to d the remainder of d·x^deg divided by poly.
func bch(d, poly uint32, deg int) uint32 {
	rem := d << deg
	for i := 31; i >= deg; i-- {
		if rem&(1<<i) != 0 {
			rem ^= poly << (i - deg)
		}
	}
	return d<<deg | rem
}

func main() {
	w := bufio.NewWriter(os.Stdout)
	fmt.Fprint(w, `// generated by go run gen.go | gofmt; DO NOT EDIT

package coding

// Version table.
var vtab = [MaxVersion + 1]version{
	{},
`)
	for v := 1; v <= 40; v++ {
		apos, astride := align(v)
		var pattern uint32
		if v >= 7 {
			pattern = bch(uint32(v), 0x1f25, 12)
		}
		b := blocks[v]
		fmt.Fprintf(w, "\t%d: {%d, %d, %d, %#x, [4]level{{%d, %d}, {%d, %d}, {%d, %d}, {%d, %d}}},\n",
			v, apos, astride, words(v), pattern,
			b[0][0], b[0][1], b[1][0], b[1][1],
			b[2][0], b[2][1], b[3][0], b[3][1])
	}
	fmt.Fprintln(w, "}")

	fmt.Fprint(w, "\n// QR Code format bits.\nvar ftab = [4][8]uint16{\n")
	for l := 0; l < 4; l++ {
		fmt.Fprintf(w, "\t%c: {", "LMQH"[l])
		for m := 0; m < 8; m++ {
			fb := uint32(l^1)<<3 | uint32(m) // L=01, M=00, Q=11, H=10
			if m != 0 {
				fmt.Fprint(w, ", ")
			}
			fmt.Fprintf(w, "%#06x", bch(fb, 0x537, 10)^0x5412)
		}
		fmt.Fprintln(w, "},")
	}
	fmt.Fprintln(w, "}")
	w.Flush()
}
