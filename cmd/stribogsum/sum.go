package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/zeebo/stribog"
)

// readFile returns the contents of name, where "-" names standard input.
func (e *env) readFile(name string) ([]byte, error) {
	var data []byte
	var err error
	if name == "-" {
		data, err = io.ReadAll(e.stdin)
	} else {
		data, err = os.ReadFile(name)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", name)
	}
	return data, nil
}

func (e *env) jobs() int {
	if e.opts.Jobs > 0 {
		return e.opts.Jobs
	}
	return runtime.GOMAXPROCS(0)
}

func (e *env) format(digest []byte) string {
	out := stribog.HexString(digest)
	if e.opts.Lower {
		out = strings.ToLower(out)
	}
	return out
}

// sumFiles hashes the named files a batch at a time so that at most one batch
// of file contents is held in memory. Each digest is passed to fn in order.
func (e *env) sumFiles(w stribog.Width, names []string, fn func(name string, digest []byte) error) error {
	jobs := e.jobs()

	for len(names) > 0 {
		batch := names
		if len(batch) > jobs {
			batch = batch[:jobs]
		}
		names = names[len(batch):]

		msgs := make([][]byte, len(batch))
		for i, name := range batch {
			data, err := e.readFile(name)
			if err != nil {
				return err
			}
			e.log.WithFields(logrus.Fields{
				"file":  name,
				"bytes": len(data),
				"width": w,
			}).Debug("hashing")
			msgs[i] = data
		}

		digests, err := stribog.SumAll(context.Background(), msgs, w, jobs)
		if err != nil {
			return errors.Wrap(err, "hashing")
		}

		for i, name := range batch {
			if err := fn(name, digests[i]); err != nil {
				return err
			}
		}
	}

	return nil
}

func (e *env) sum(w stribog.Width, names []string) error {
	return e.sumFiles(w, names, func(name string, digest []byte) error {
		_, err := fmt.Fprintf(e.stdout, "%s  %s\n", e.format(digest), name)
		return errors.Wrap(err, "writing digest")
	})
}
