// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding_test

import (
	"errors"
	"fmt"
	"log"

	"github.com/unixdj/qrenc/coding"
)

func ExampleTable_SelectVersion() {
	for _, n := range []int{14, 15, 180, 181, 2332} {
		v, err := coding.Standard.SelectVersion(n, coding.M, 0)
		if errors.Is(err, coding.ErrPayloadTooLarge) {
			fmt.Println(n, "bytes:", err)
			continue
		}
		fmt.Printf("%d bytes: version %v, %d modules\n", n, v, v.Size())
	}
	// Output:
	// 14 bytes: version 1, 21 modules
	// 15 bytes: version 2, 25 modules
	// 180 bytes: version 9, 53 modules
	// 181 bytes: version 10, 57 modules
	// 2332 bytes: qr: 2332 bytes do not fit in a level M code (standard table holds up to 2331)
}

func ExampleBuild() {
	m, err := coding.Build([]byte("HELLO"), coding.M, nil)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println("version", m.Version, "level", m.Level, "mask", m.Mask)
	fmt.Println("resolved:", m.Resolved())
	fmt.Println("data modules:", m.Count(coding.Data))
	// Output:
	// version 1 level M mask 0
	// resolved: true
	// data modules: 208
}

func ExampleMatrix_String() {
	p, err := coding.NewPlan(1)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Print(p.Matrix())
	// Output:
	// #######.-????.#######
	// #.....#.-????.#.....#
	// #.###.#.-????.#.###.#
	// #.###.#.-????.#.###.#
	// #.###.#.-????.#.###.#
	// #.....#.-????.#.....#
	// #######.#.#.#.#######
	// ........-????........
	// ------#--????--------
	// ??????.??????????????
	// ??????#??????????????
	// ??????.??????????????
	// ??????#??????????????
	// ........#????????????
	// #######.-????????????
	// #.....#.-????????????
	// #.###.#.-????????????
	// #.###.#.-????????????
	// #.###.#.-????????????
	// #.....#.-????????????
	// #######.-????????????
}
