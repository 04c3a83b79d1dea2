// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import (
	"fmt"

	"github.com/unixdj/qrenc/gf256"
)

// ECLengths lists the supported numbers of error correction
// codewords per block.
var ECLengths = []int{7, 10, 13, 15, 16, 17, 18, 20, 22, 24, 26, 28, 30}

// Generator polynomials in log form, indexed by degree.
var generators [31][]byte

func init() {
	for _, n := range ECLengths {
		_, generators[n] = Field.Gen(n)
	}
}

// Generator returns the generator polynomial of degree n in log form
// (the published α exponents), leading term first.
func Generator(n int) ([]byte, error) {
	if n < 0 || n >= len(generators) || generators[n] == nil {
		return nil, fmt.Errorf("%w: %d", ErrECLength, n)
	}
	return append([]byte(nil), generators[n]...), nil
}

// GenerateEC returns the n error correction codewords for data.
func GenerateEC(data []byte, n int) ([]byte, error) {
	if n < 0 || n >= len(generators) || generators[n] == nil {
		return nil, fmt.Errorf("%w: %d", ErrECLength, n)
	}
	check := make([]byte, n)
	gf256.NewRSEncoderLog(Field, generators[n]).ECC(data, check)
	return check, nil
}

// AddCheckBytes returns the final codeword sequence for data, which
// must hold lay.Data codewords: data split into lay.Blocks blocks,
// each followed by its check codewords, with data and check blocks
// interleaved.  Trailing blocks are one codeword longer when the data
// does not split evenly.
func AddCheckBytes(data []byte, lay Layout) ([]byte, error) {
	if len(data) != lay.Data || lay.Blocks < 1 || lay.Data < lay.Blocks {
		return nil, fmt.Errorf("qr: %d data codewords for layout %+v",
			len(data), lay)
	}
	if lay.Check >= len(generators) || generators[lay.Check] == nil {
		return nil, fmt.Errorf("%w: %d", ErrECLength, lay.Check)
	}
	out := make([]byte, lay.Total())
	check := make([]byte, lay.Blocks*lay.Check)
	rs := gf256.NewRSEncoderLog(Field, generators[lay.Check])
	db := lay.Data / lay.Blocks
	normal := (db+1)*lay.Blocks - lay.Data
	dat, chk := data, check
	for i := 0; i < lay.Blocks; i++ {
		if i == normal {
			db++
		}
		rs.ECC(dat[:db], chk[:lay.Check])
		dat, chk = dat[db:], chk[lay.Check:]
	}
	Interleave(out[:lay.Data], data, lay.Blocks)
	Interleave(out[lay.Data:], check, lay.Blocks)
	return out, nil
}

// Interleave interleaves nblock blocks from src to dst, which must be
// of equal length: the first codeword of each block, then the second
// and so on.  When the length does not divide evenly, the last
// len(src)%nblock blocks are one codeword longer.
func Interleave(dst, src []byte, nblock int) {
	db := len(src) / nblock
	extra := dst[db*nblock:]
	dst = dst[:db*nblock]
	normal := nblock - len(extra)
	for i := 0; i < nblock; i++ {
		for j, v := range src[:db] {
			dst[j*nblock+i] = v
		}
		src = src[db:]
		if i >= normal {
			extra[i-normal] = src[0]
			src = src[1:]
		}
	}
}
