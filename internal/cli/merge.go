package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/go-kit/log"
	flag "github.com/spf13/pflag"

	"statmerge/internal/pipeline"
	"statmerge/internal/stat"
)

// MergeCmd returns the merge command, the tool's primary surface. It is
// also what bare three-path invocations dispatch to.
func MergeCmd(cfg Config, logger log.Logger) *Command {
	fs := flag.NewFlagSet("merge", flag.ContinueOnError)

	return &Command{
		Flags: fs,
		Usage: "merge <first> <second> <out>",
		Short: "Merge two dumps into a deduplicated, sorted dump",
		Long: "Merge two record dumps into one. Records sharing an id are folded\n" +
			"(counts and costs add, primary ANDs, the larger mode wins), the union\n" +
			"is sorted by ascending cost, previewed, and written to <out>.",
		Exec: func(_ context.Context, o *IO, args []string) error {
			if len(args) != 3 {
				printMergeUsage(o)
				return fmt.Errorf("%w: merge takes exactly three paths, got %d", stat.ErrInvalidArgument, len(args))
			}

			return execMerge(o, cfg, logger, args[0], args[1], args[2])
		},
	}
}

func printMergeUsage(o *IO) {
	o.ErrPrintln("usage: statmerge merge <firstInputPath> <secondInputPath> <outputPath>")
	o.ErrPrintln("       (all paths must name files; the output file is created if missing)")
}

func execMerge(o *IO, cfg Config, logger log.Logger, firstPath, secondPath, outPath string) error {
	// The codec stores into a pre-existing file; creating it is this
	// command's job.
	err := ensureFile(outPath)
	if err != nil {
		return fmt.Errorf("%w: create %s: %v", stat.ErrBadFile, outPath, err)
	}

	res, err := pipeline.Run(pipeline.Config{
		FirstPath:    firstPath,
		SecondPath:   secondPath,
		OutPath:      outPath,
		PreviewLines: cfg.Lines,
		Buckets:      cfg.Buckets,
		Preview:      o.Out(),
		Logger:       logger,
	})

	for _, w := range res.Warnings {
		o.Warnln(w)
	}

	if err != nil {
		return err
	}

	o.Printf("merged %s records into %s\n", humanize.Comma(int64(res.MergedCount)), outPath)

	return nil
}

// ensureFile creates path as an empty regular file when it does not exist.
func ensureFile(path string) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_RDWR, 0o644)
	if err != nil {
		return err
	}

	return f.Close()
}
