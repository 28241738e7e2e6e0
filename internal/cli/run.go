package cli

import (
	"context"
	"io"
	"strings"

	"github.com/go-kit/log"
	flag "github.com/spf13/pflag"
)

// Run is the main entry point. Returns exit code.
//
// The bare surface (three paths, no command word) still works:
// when the first argument names no known command and exactly three
// positionals are present, they dispatch to merge.
func Run(out io.Writer, errOut io.Writer, args []string) int {
	o := NewIO(out, errOut)

	// Create fresh global flags for this invocation
	globalFlags := flag.NewFlagSet("statmerge", flag.ContinueOnError)
	globalFlags.SetInterspersed(false)
	globalFlags.Usage = func() {}
	globalFlags.SetOutput(&strings.Builder{})
	flagHelp := globalFlags.BoolP("help", "h", false, "Show help")
	flagConfig := globalFlags.StringP("config", "c", "", "Use specified config `file` (JSONC)")
	flagLines := globalFlags.Int("lines", 0, "Preview at most `n` rows (overrides config)")
	flagVerbose := globalFlags.BoolP("verbose", "v", false, "Log pipeline progress to stderr")

	if err := globalFlags.Parse(args[1:]); err != nil {
		o.ErrPrintln("error:", err)
		printGlobalOptions(o, globalFlags)

		return 1
	}

	cfg, err := LoadConfig(*flagConfig, globalFlags.Changed("config"))
	if err != nil {
		o.ErrPrintln("error:", err)

		return 1
	}

	if globalFlags.Changed("lines") {
		cfg.Lines = *flagLines
	}

	logger := log.NewNopLogger()
	if *flagVerbose {
		logger = log.NewLogfmtLogger(log.NewSyncWriter(errOut))
	}

	commands := []*Command{
		MergeCmd(cfg, logger),
		InspectCmd(cfg),
		SeedCmd(),
	}

	commandMap := make(map[string]*Command, len(commands))
	for _, cmd := range commands {
		commandMap[cmd.Name()] = cmd
	}

	commandAndArgs := globalFlags.Args()

	if *flagHelp {
		printUsage(o, commands, false)

		return 0
	}

	if len(commandAndArgs) == 0 {
		o.ErrPrintln("error: no command or paths provided")
		printUsage(o, commands, true)

		return 1
	}

	cmdName := commandAndArgs[0]

	cmd, ok := commandMap[cmdName]
	if !ok {
		// Bare-paths compatibility surface: statmerge <a> <b> <out>.
		if len(commandAndArgs) == 3 {
			return commandMap["merge"].Run(context.Background(), o, commandAndArgs)
		}

		o.ErrPrintln("error: unknown command:", cmdName)
		printUsage(o, commands, true)

		return 1
	}

	return cmd.Run(context.Background(), o, commandAndArgs[1:])
}

func printUsage(o *IO, commands []*Command, toErr bool) {
	lines := []string{
		"Usage: statmerge [global flags] <command> [args]",
		"       statmerge <firstInputPath> <secondInputPath> <outputPath>",
		"",
		"Commands:",
	}

	for _, cmd := range commands {
		lines = append(lines, cmd.HelpLine())
	}

	lines = append(lines,
		"",
		"Global flags:",
		"  -c, --config file   Use specified config file (JSONC)",
		"      --lines n       Preview at most n rows",
		"  -v, --verbose       Log pipeline progress to stderr",
		"  -h, --help          Show help",
	)

	for _, l := range lines {
		if toErr {
			o.ErrPrintln(l)
		} else {
			o.Println(l)
		}
	}
}

func printGlobalOptions(o *IO, fs *flag.FlagSet) {
	var buf strings.Builder

	fs.SetOutput(&buf)
	fs.PrintDefaults()
	o.ErrPrintln("Global flags:")
	o.ErrPrintln(strings.TrimRight(buf.String(), "\n"))
}
