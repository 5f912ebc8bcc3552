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
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/Fantom-foundation/Fidelio/go/bytecode"
	"github.com/Fantom-foundation/Fidelio/go/fidelio"
	"github.com/dsnet/golib/unitconv"
	"github.com/urfave/cli/v2"
)

var AnalyzeCmd = cli.Command{
	Action:    doAnalyze,
	Name:      "analyze",
	Usage:     "Prints the jump destinations and gas blocks of the given code",
	ArgsUsage: "<hex-code>",
	Flags: []cli.Flag{
		&cli.IntFlag{
			Name:  "revision",
			Usage: "the revision to analyze the code for",
			Value: int(fidelio.R13_Cancun),
		},
	},
}

const errNoCodeGiven = fidelio.ConstError("no code given, expected a hex string argument")

func doAnalyze(context *cli.Context) error {
	code, err := parseCode(context.Args().Get(0))
	if err != nil {
		return err
	}
	revision := fidelio.Revision(context.Int("revision"))

	locked := bytecode.NewRaw(code).Lock(revision)
	analysis := locked.Analysis()

	fmt.Printf("code size: %sB\n", unitconv.FormatPrefix(float64(locked.Len()), unitconv.IEC, 1))
	fmt.Printf("revision: %v\n", revision)
	fmt.Printf("first gas block: %d gas\n", analysis.FirstGasBlock())
	for i := 0; i < locked.Len(); i++ {
		dest := analysis.IsJumpDest(i)
		gas := analysis.GasBlock(i)
		if !dest && gas == 0 {
			continue
		}
		line := fmt.Sprintf("0x%04x:", i)
		if dest {
			line += " jump destination"
		}
		if gas != 0 {
			line += fmt.Sprintf(" gas block of %d gas", gas)
		}
		fmt.Println(line)
	}
	return nil
}

func parseCode(arg string) (fidelio.Code, error) {
	if arg == "" {
		return nil, errNoCodeGiven
	}
	code, err := hex.DecodeString(strings.TrimPrefix(arg, "0x"))
	if err != nil {
		return nil, fmt.Errorf("invalid code: %w", err)
	}
	return code, nil
}
