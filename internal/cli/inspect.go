package cli

import (
	"bytes"
	"context"
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/natefinch/atomic"
	flag "github.com/spf13/pflag"

	"statmerge/internal/dump"
	"statmerge/internal/pipeline"
	"statmerge/internal/stat"
)

// InspectCmd returns the inspect command: a read-only summary and preview
// of a single dump file.
func InspectCmd(cfg Config) *Command {
	fs := flag.NewFlagSet("inspect", flag.ContinueOnError)
	fs.String("report", "", "Also write the rendered preview to `file` (atomic)")

	return &Command{
		Flags: fs,
		Usage: "inspect <dump> [flags]",
		Short: "Summarize and preview a dump file",
		Long: "Print a dump's record count, byte size, and xxhash64 digest, followed\n" +
			"by a bounded table preview of its records.",
		Exec: func(_ context.Context, o *IO, args []string) error {
			if len(args) != 1 {
				return fmt.Errorf("%w: inspect takes exactly one dump path, got %d", stat.ErrInvalidArgument, len(args))
			}

			reportPath, _ := fs.GetString("report")

			return execInspect(o, cfg, args[0], reportPath)
		},
	}
}

func execInspect(o *IO, cfg Config, path, reportPath string) error {
	records, err := dump.Load(path)
	if err != nil {
		return err
	}

	sum, size, err := dump.Digest(path)
	if err != nil {
		return err
	}

	o.Printf("dump:    %s\n", path)
	o.Printf("records: %s\n", humanize.Comma(int64(len(records))))
	o.Printf("size:    %s (%d bytes)\n", humanize.IBytes(uint64(size)), size)
	o.Printf("xxh64:   %016x\n", sum)

	view, err := pipeline.NewRecordView()
	if err != nil {
		return err
	}

	var rendered bytes.Buffer

	err = view.Render(&rendered, records, cfg.Lines)
	if err != nil {
		return fmt.Errorf("%w: render preview: %v", stat.ErrIO, err)
	}

	o.Printf("%s", rendered.String())

	if reportPath != "" {
		err = atomic.WriteFile(reportPath, bytes.NewReader(rendered.Bytes()))
		if err != nil {
			return fmt.Errorf("%w: write report %s: %v", stat.ErrIO, reportPath, err)
		}

		o.Printf("report written to %s\n", reportPath)
	}

	return nil
}
