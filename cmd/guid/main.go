// Command guid generates, parses and checks random (version 4) GUIDs.
//
// Usage:
//
//	guid [-config file] [-log level] [-upper] new [-n count]
//	guid [flags] parse TEXT...
//	guid [flags] check TEXT...
//
// Exit status is 0 on success, 1 if any input is not a canonical GUID and
// 2 on usage errors.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/krotik/common/logutil"

	"github.com/Lzww0608/guid"
	"github.com/Lzww0608/guid/entropy"
)

const (
	exitOK      = 0
	exitInvalid = 1
	exitUsage   = 2
)

var logger = logutil.GetLogger("guid.cmd")

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("guid", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "YAML configuration file")
	logLevel := fs.String("log", "", "log level: debug, info, warning or error")
	upper := fs.Bool("upper", false, "print GUIDs in uppercase")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: guid [flags] new [-n count] | parse TEXT... | check TEXT...")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}

	cfg, err := LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitUsage
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "log":
			cfg.LogLevel = *logLevel
		case "upper":
			cfg.Uppercase = *upper
		}
	})
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(stderr, err)
		return exitUsage
	}

	logutil.ClearLogSinks()
	logutil.GetLogger("guid").AddLogSink(cfg.Level(), logutil.ConsoleFormatter(), stderr)

	if fs.NArg() == 0 {
		fs.Usage()
		return exitUsage
	}

	cmdArgs := fs.Args()[1:]
	switch fs.Arg(0) {
	case "new":
		return runNew(cfg, cmdArgs, stdout, stderr)
	case "parse":
		return runParse(cfg, cmdArgs, stdout, stderr)
	case "check":
		return runCheck(cmdArgs, stdout, stderr)
	default:
		fmt.Fprintf(stderr, "unknown command %q\n", fs.Arg(0))
		fs.Usage()
		return exitUsage
	}
}

func runNew(cfg *Config, args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("new", flag.ContinueOnError)
	fs.SetOutput(stderr)
	count := fs.Int("n", cfg.Count, "number of GUIDs to generate")
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}
	if *count <= 0 || fs.NArg() > 0 {
		fs.Usage()
		return exitUsage
	}

	entropy.Init()
	defer entropy.Shutdown()
	logger.Debug("entropy source ready, generating ", *count)

	var line []byte
	for i := 0; i < *count; i++ {
		line = render(cfg, guid.New(), line[:0])
		line = append(line, '\n')
		if _, err := stdout.Write(line); err != nil {
			logger.Error("write: ", err)
			return exitInvalid
		}
	}
	return exitOK
}

func runParse(cfg *Config, args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		fmt.Fprintln(stderr, "parse: no input")
		return exitUsage
	}
	status := exitOK
	for _, arg := range args {
		g, ok := guid.TryParse(arg)
		if !ok {
			fmt.Fprintf(stderr, "invalid GUID: %q\n", arg)
			status = exitInvalid
			continue
		}
		fmt.Fprintf(stdout, "%s\n", render(cfg, g, nil))
	}
	return status
}

func runCheck(args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		fmt.Fprintln(stderr, "check: no input")
		return exitUsage
	}
	status := exitOK
	for _, arg := range args {
		g, ok := guid.TryParse(arg)
		if !ok {
			fmt.Fprintf(stdout, "%s\tinvalid\n", arg)
			status = exitInvalid
			continue
		}
		fmt.Fprintf(stdout, "%s\tok\tversion=%d\tvariant=%s\n", arg, g.Version(), g.Variant())
	}
	logger.Info("checked ", len(args), " inputs")
	return status
}

// render appends the text form of g to dst, uppercased when configured.
func render(cfg *Config, g guid.Guid, dst []byte) []byte {
	dst = g.AppendFormat(dst)
	if cfg.Uppercase {
		return bytes.ToUpper(dst)
	}
	return dst
}
