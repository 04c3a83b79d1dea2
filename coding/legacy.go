// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import "math"

const legacyMaxVersion Version = 29

// Level M byte capacities used to pick the first candidate version.
var legacyBytes = [legacyMaxVersion + 1]int{
	0, 14, 26, 42, 62, 84, 106, 122, 152, 180, 213,
	251, 287, 331, 362, 412, 450, 504, 560, 624, 666,
	711, 779, 857, 911, 997, 1059, 1125, 1190, 1264,
}

// Data codewords (L, M, Q, H) for versions 1 to 10.
var legacyData = [11][4]int{
	{},
	{19, 16, 13, 9},
	{34, 28, 22, 16},
	{55, 44, 34, 26},
	{80, 64, 48, 36},
	{108, 86, 62, 46},
	{136, 108, 76, 60},
	{156, 124, 88, 66},
	{194, 154, 110, 86},
	{232, 182, 132, 100},
	{274, 216, 154, 122},
}

// Check codewords (L, M, Q, H) for versions 1 to 10.
var legacyCheck = [11][4]int{
	{},
	{7, 10, 13, 17},
	{10, 16, 22, 28},
	{15, 26, 18, 22},
	{20, 18, 26, 16},
	{26, 24, 18, 22},
	{18, 16, 24, 28},
	{20, 18, 18, 26},
	{24, 22, 22, 26},
	{30, 22, 20, 24},
	{18, 26, 24, 28},
}

// legacyLayout extrapolates from version 10 above it: the data
// capacity scales linearly with a 1.2 factor, and the check length
// stays.
func legacyLayout(v Version, l Level) Layout {
	i := min(int(v), 10)
	data := legacyData[i][l]
	if v > 10 {
		data = int(math.Floor(float64(legacyData[10][l]) * (float64(v) / 10) * 1.2))
	}
	return Layout{Data: data, Blocks: 1, Check: legacyCheck[i][l]}
}

// legacyFirst returns the smallest version whose level M byte
// capacity holds n bytes plus a 3-byte header allowance, or a
// version past the table if none does.
func legacyFirst(n int) Version {
	for v := MinVersion; v <= legacyMaxVersion; v++ {
		if legacyBytes[v] >= n+3 {
			return v
		}
	}
	return legacyMaxVersion + 1
}
