// Command mdscan is a reference host for the mdscan block/inline scanner:
// a hand-rolled Lexer over an in-memory byte slice standing in for a
// generated incremental parser's lexer driver.
package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/cordwood/mdscan/internal/ioutilx"
)

func main() {
	log.SetFlags(0)
	log.SetOutput(ioutilx.PrefixWriter("mdscan: ", &ioutilx.ErrWriter{Writer: os.Stderr}))

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	var err error
	switch os.Args[1] {
	case "scan":
		err = runScan(os.Args[2:])
	case "snapshot":
		err = runSnapshot(os.Args[2:])
	case "compare":
		err = runCompare(os.Args[2:])
	case "-h", "-help", "--help", "help":
		usage()
		return
	default:
		usage()
		os.Exit(2)
	}

	if err != nil {
		log.Fatal(err)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `usage: mdscan <command> [flags] [file]

commands:
  scan      print the emitted token stream for a document
  snapshot  serialize scanner state to a sidecar file, atomically
  compare   cross-check mdscan's block tally against blackfriday's`)
}

// readInput reads args[0] if present, else stdin.
func readInput(args []string) ([]byte, error) {
	if len(args) == 0 || args[0] == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(args[0])
}
