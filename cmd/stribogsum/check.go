package main

import (
	"bufio"
	"bytes"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/pkg/errors"

	"github.com/zeebo/stribog"
)

// entry is one line of a checksum file.
type entry struct {
	digest []byte
	width  stribog.Width
	name   string
}

// parseEntry parses a line of the form "HEX  NAME" as written by sum. The
// digest width follows from the number of hex digits.
func parseEntry(line string) (entry, error) {
	fields := strings.SplitN(line, " ", 2)
	if len(fields) != 2 {
		return entry{}, errors.New("missing file name")
	}

	digest, err := hex.DecodeString(fields[0])
	if err != nil {
		return entry{}, errors.Wrap(err, "bad digest")
	}

	var w stribog.Width
	switch len(digest) {
	case stribog.Width256.Size():
		w = stribog.Width256
	case stribog.Width512.Size():
		w = stribog.Width512
	default:
		return entry{}, errors.Errorf("digest has %d bytes", len(digest))
	}

	// sha256sum marks binary mode with a leading '*'
	name := strings.TrimPrefix(fields[1], " ")
	name = strings.TrimPrefix(name, "*")
	if name == "" {
		return entry{}, errors.New("missing file name")
	}

	return entry{digest: digest, width: w, name: name}, nil
}

func (e *env) check(listName string) error {
	list, err := e.readFile(listName)
	if err != nil {
		return err
	}

	ok := color.New(color.FgHiGreen)
	failed := color.New(color.FgHiRed)
	if e.opts.NoColor {
		ok.DisableColor()
		failed.DisableColor()
	}

	var total, mismatched, malformed int

	scanner := bufio.NewScanner(bytes.NewReader(list))
	for lineNo := 1; scanner.Scan(); lineNo++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		ent, err := parseEntry(line)
		if err != nil {
			e.log.WithField("line", lineNo).Warnf("%s: %v", listName, err)
			malformed++
			continue
		}
		total++

		data, err := e.readFile(ent.name)
		if err != nil {
			e.log.Warn(err)
			fmt.Fprintf(e.stdout, "%s: %s\n", ent.name, failed.Sprint("FAILED open or read"))
			mismatched++
			continue
		}

		digest, err := stribog.Sum(data, ent.width)
		if err != nil {
			return errors.Wrapf(err, "hashing %s", ent.name)
		}

		if bytes.Equal(digest, ent.digest) {
			fmt.Fprintf(e.stdout, "%s: %s\n", ent.name, ok.Sprint("OK"))
			continue
		}
		fmt.Fprintf(e.stdout, "%s: %s\n", ent.name, failed.Sprint("FAILED"))
		mismatched++
	}
	if err := scanner.Err(); err != nil {
		return errors.Wrapf(err, "reading %s", listName)
	}

	switch {
	case total == 0:
		return errors.Errorf("%s: no properly formatted checksum lines found", listName)
	case mismatched > 0:
		return errors.Errorf("%d of %d computed checksums did not match", mismatched, total)
	case malformed > 0:
		e.log.Warnf("%d lines are improperly formatted", malformed)
	}
	return nil
}
