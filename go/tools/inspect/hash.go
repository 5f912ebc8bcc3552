//
// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use
// of this software will be governed by the GNU Lesser General Public Licence v3
//

package main

import (
	"fmt"

	"github.com/Fantom-foundation/Fidelio/go/bytecode"
	"github.com/urfave/cli/v2"
)

var HashCmd = cli.Command{
	Action:    doHash,
	Name:      "hash",
	Usage:     "Prints the canonical code hash of the given code",
	ArgsUsage: "<hex-code>",
}

func doHash(context *cli.Context) error {
	code, err := parseCode(context.Args().Get(0))
	if err != nil {
		return err
	}
	fmt.Printf("%v\n", bytecode.NewRaw(code).Hash())
	return nil
}
