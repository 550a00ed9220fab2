package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/cordwood/mdscan"
	"github.com/google/renameio/v2"
)

// runSnapshot drives the scanner to the end of a document -- optionally
// resuming from a previously written state image -- and durably
// checkpoints the resulting state image to a sidecar file. It is written
// with renameio so a crash or concurrent reader never observes a
// half-written snapshot, the way cmd/poc's streamStore.save checkpoints
// the stream file.
func runSnapshot(args []string) error {
	fs := flag.NewFlagSet("snapshot", flag.ExitOnError)
	out := fs.String("out", "mdscan.state", "path to write the serialized state image to")
	resume := fs.String("resume", "", "path to a prior state image to resume scanning from")
	if err := fs.Parse(args); err != nil {
		return err
	}

	buf, err := readInput(fs.Args())
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	sc := mdscan.New()
	if *resume != "" {
		prior, err := os.ReadFile(*resume)
		if err != nil {
			return fmt.Errorf("reading resume state %q: %w", *resume, err)
		}
		sc.Deserialize(prior)
	}

	numTokens := 0
	walkFrom(sc, buf,
		func(token) { numTokens++ },
		func(textRun) {},
	)

	var state [255]byte
	n := sc.Serialize(state[:])

	if err := renameio.WriteFile(*out, state[:n], 0o644); err != nil {
		return fmt.Errorf("writing snapshot %q: %w", *out, err)
	}

	fmt.Printf("wrote %d-byte snapshot to %s after %d tokens\n", n, *out, numTokens)
	return nil
}
