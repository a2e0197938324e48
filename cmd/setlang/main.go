package main

import (
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"path/filepath"

	"git.sr.ht/~sircmpwn/getopt"
	"github.com/labstack/gommon/color"
	"github.com/mliezun/setlang/internal"
	"github.com/sirupsen/logrus"
)

const usage = "Usage: setlang [-c config.toml] [-v] [-q] [-t] [-e] [-C] /path/to/source"

type stdPrinter struct{}

func (s stdPrinter) Println(a ...interface{}) (n int, err error) {
	return fmt.Println(color.Green(fmt.Sprint(a...)))
}

func (s stdPrinter) Fprintf(w io.Writer, format string, a ...interface{}) (n int, err error) {
	return fmt.Fprint(w, color.Red(fmt.Sprintf(format, a...)))
}

func (s stdPrinter) Fprintln(w io.Writer, a ...interface{}) (n int, err error) {
	return fmt.Fprintln(w, color.Red(fmt.Sprint(a...)))
}

func main() {
	os.Exit(run(os.Args))
}

func run(args []string) int {
	opts, optind, err := getopt.Getopts(args, "c:vqteCh")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		fmt.Println(usage)
		return 2
	}

	configPath := internal.ConfigFileName
	for _, opt := range opts {
		if opt.Option == 'c' {
			configPath = opt.Value
		}
	}

	cfg, err := internal.LoadConfig(configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	for _, opt := range opts {
		switch opt.Option {
		case 'v':
			cfg.LogLevel = "debug"
		case 'q':
			cfg.PrintResults = false
		case 't':
			cfg.DumpTokens = true
		case 'e':
			cfg.DumpEnv = true
		case 'C':
			cfg.Color = false
		case 'h':
			fmt.Println(usage)
			return 0
		}
	}

	rest := args[optind:]
	if len(rest) != 1 {
		fmt.Println(usage)
		return 2
	}

	if !cfg.Color {
		color.Disable()
	}

	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetFormatter(&logrus.TextFormatter{DisableColors: !cfg.Color})
	level, _ := cfg.Level()
	log.SetLevel(level)

	source, err := readSource(rest[0])
	if err != nil {
		log.WithError(err).Error("unable to read source")
		return 2
	}

	interpOpts := append([]internal.Option{
		internal.WithPrinter(stdPrinter{}),
		internal.WithLogger(log.WithField("file", rest[0])),
	}, cfg.Options()...)

	interp := internal.NewInterpreter(interpOpts...)
	report := interp.Run(source)

	if cfg.DumpEnv {
		fmt.Print(color.Dim(internal.DumpEnv(interp.Env())))
	}

	if !report.Valid() {
		return 1
	}
	return 0
}

func readSource(path string) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}

	file, err := os.Open(absPath)
	if err != nil {
		return "", fmt.Errorf("failed to open source: %w", err)
	}
	defer file.Close()

	b, err := ioutil.ReadAll(file)
	if err != nil {
		return "", fmt.Errorf("failed to read source: %w", err)
	}

	return string(b), nil
}
