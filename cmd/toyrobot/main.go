package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"toyrobot/internal/config"
	"toyrobot/internal/interpreter"
	"toyrobot/internal/robot"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("toyrobot", flag.ContinueOnError)
	fs.SetOutput(stderr)
	trace := fs.Bool("trace", false, "draw the table on stderr after each command")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "usage: toyrobot [-trace] [file]\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}

	// .env is optional.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	level, _ := cfg.Level()
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	in := stdin
	if fs.NArg() > 0 {
		f, err := os.Open(fs.Arg(0))
		if err != nil {
			slog.Error("open command file", "error", err)
			return 1
		}
		defer f.Close()
		in = f
	}

	ctx := interpreter.NewContext(robot.New(cfg.Bounds()), stdout)
	ctx.Notices = stdout
	ctx.Log = logger.With("run_id", uuid.NewString())
	if *trace || cfg.Trace {
		ctx.Trace = stderr
	}

	res, err := interpreter.Run(ctx, in)
	if err != nil {
		ctx.Log.Error("run failed", "error", err)
		return 1
	}
	ctx.Log.Info("run finished", "lines", res.Lines, "reason", res.Reason)
	return 0
}
