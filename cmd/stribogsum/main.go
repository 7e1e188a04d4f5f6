// Command stribogsum prints or checks GOST R 34.11-2012 digests of files.
package main

import (
	"fmt"
	"io"
	"os"

	flags "github.com/jessevdk/go-flags"
	"github.com/sirupsen/logrus"

	"github.com/zeebo/stribog"
)

type options struct {
	Length  int    `short:"l" long:"length" env:"STRIBOG_LENGTH" default:"256" choice:"256" choice:"512" description:"Digest length in bits"`
	Check   string `short:"c" long:"check" value-name:"FILE" description:"Read digests from FILE and verify them"`
	Jobs    int    `short:"j" long:"jobs" default:"0" description:"Files hashed in parallel, 0 for one per CPU"`
	Lower   bool   `long:"lower" description:"Print digests in lowercase"`
	NoColor bool   `long:"no-color" description:"Disable colored check results"`
	Verbose bool   `short:"v" long:"verbose" description:"Log debug information"`
}

type env struct {
	opts   options
	log    *logrus.Logger
	stdin  io.Reader
	stdout io.Writer
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var opts options

	parser := flags.NewParser(&opts, flags.HelpFlag|flags.PassDoubleDash)
	parser.Usage = "[OPTIONS] [FILE...]"

	files, err := parser.ParseArgs(args)
	if err != nil {
		if ferr, ok := err.(*flags.Error); ok && ferr.Type == flags.ErrHelp {
			fmt.Fprintln(stdout, err)
			return 0
		}
		fmt.Fprintln(stderr, err)
		return 2
	}

	e := &env{
		opts:   opts,
		log:    newLogger(stderr, opts.Verbose),
		stdin:  stdin,
		stdout: stdout,
	}

	if len(files) == 0 {
		files = []string{"-"}
	}

	if opts.Check != "" {
		err = e.check(opts.Check)
	} else {
		err = e.sum(stribog.Width(opts.Length), files)
	}
	if err != nil {
		e.log.Error(err)
		return 1
	}
	return 0
}

func newLogger(out io.Writer, verbose bool) *logrus.Logger {
	log := logrus.New()
	log.Out = out
	log.Formatter = &logrus.TextFormatter{DisableTimestamp: true}
	log.SetLevel(logrus.WarnLevel)
	if verbose {
		log.SetLevel(logrus.DebugLevel)
	}
	return log
}
