package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"os"

	"github.com/cordwood/mdscan/internal/ioutilx"
)

// runScan drives the scanner over a document the way a host grammar would,
// printing one line per emitted marker token and quoting (or hexdumping)
// the text runs the grammar would otherwise assemble into paragraph
// content, in the vein of the teacher's cmd/scanex.
func runScan(args []string) error {
	fs := flag.NewFlagSet("scan", flag.ExitOnError)
	hexdump := fs.Bool("hex", false, "hexdump text runs rather than quote them")
	verbose := fs.Bool("v", false, "print the final scanner state summary")
	raw := fs.Bool("raw", false, "print text run bytes with no quoting/escaping")
	if err := fs.Parse(args); err != nil {
		return err
	}

	buf, err := readInput(fs.Args())
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	out := &ioutilx.ErrWriter{Writer: os.Stdout}
	numTokens := 0

	sc := walk(buf,
		func(tok token) {
			numTokens++
			fmt.Fprintf(out, "%d:%d %v\n", tok.Offset, tok.End, tok.Symbol)
		},
		func(run textRun) {
			numTokens++
			fmt.Fprintf(out, "%d:%d text ", run.Offset, run.End)
			body := buf[run.Offset:run.End]
			switch {
			case *hexdump:
				fmt.Fprintf(out, "%s\n", hex.EncodeToString(body))
			case *raw:
				out.Write(body)
				fmt.Fprintln(out)
			default:
				fmt.Fprintf(out, "%q\n", body)
			}
		},
	)

	if *verbose {
		var state [255]byte
		stateLen := sc.Serialize(state[:])
		fmt.Fprintf(out, "-- %d tokens, %d bytes of serialized state --\n", numTokens, stateLen)
	}

	return out.Err
}
