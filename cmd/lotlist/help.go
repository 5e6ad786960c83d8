package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: lotlist [command] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  generate   Render one listing per inventory row (default)")
	fmt.Fprintln(w, "  check      Inspect the input directory without writing anything")
	fmt.Fprintln(w, "  init       Create an input directory with a template and sample data")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'lotlist help <command>' for details on a specific command.")
}

// printGenerateUsage prints usage for the generate command.
func printGenerateUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: lotlist generate [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Render the template once per inventory row into Lot_<LotNo> files,")
	fmt.Fprintln(w, "copy matching photos and write preview.html.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input:")
	fmt.Fprintln(w, "  -i, --input <dir>         Input directory (default: input)")
	fmt.Fprintln(w, "  -d, --data <file>         Data file, .csv or .xlsx (default: inventory.csv)")
	fmt.Fprintln(w, "  -t, --template <file>     Template file (default: template.txt)")
	fmt.Fprintln(w, "  -p, --photos <dir>        Photos directory (default: photos)")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path (default: lotlist)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Listings:")
	fmt.Fprintln(w, "  -o, --output <dir>        Output directory (default: output)")
	fmt.Fprintln(w, "  -e, --extension <ext>     Listing file extension (default: .txt)")
	fmt.Fprintln(w, "      --collision <s>       Duplicate lot numbers: overwrite, error, suffix")
	fmt.Fprintln(w, "      --builtin <name>      Built-in template written when the template is missing")
	fmt.Fprintln(w, "      --asset-path <dir>    Custom templates directory")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Preview:")
	fmt.Fprintln(w, "      --no-preview          Skip preview.html")
	fmt.Fprintln(w, "      --title <s>           Preview page title")
	fmt.Fprintln(w, "      --format <s>          Listing body: text, markdown")
	fmt.Fprintln(w, "      --preview-template <s> Preview template name")
	fmt.Fprintln(w, "      --date-format <s>     Photo date: YYYY-MM-DD, iso, european, us, long, none")
	fmt.Fprintln(w, "      --open                Open the output directory when done")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show photo matches and timing")
	fmt.Fprintln(w, "      --log-level <s>       Diagnostics: debug, info, warn, error")
	fmt.Fprintln(w, "      --log-format <s>      Diagnostics: console, json")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Exit codes:")
	fmt.Fprintln(w, "  0 success, 1 general, 2 usage or config, 3 input/output, 4 data file")
}

// printCheckUsage prints usage for the check command.
func printCheckUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: lotlist check [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Report the input layout, data rows, missing columns, unknown")
	fmt.Fprintln(w, "placeholders and photo coverage. Nothing is written.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -i, --input <dir>         Input directory (default: input)")
	fmt.Fprintln(w, "  -d, --data <file>         Data file (default: inventory.csv)")
	fmt.Fprintln(w, "  -t, --template <file>     Template file (default: template.txt)")
	fmt.Fprintln(w, "  -p, --photos <dir>        Photos directory (default: photos)")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "      --json                Output as JSON")
	fmt.Fprintln(w, "  -q, --quiet               Exit code only")
}

// printInitUsage prints usage for the init command.
func printInitUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: lotlist init [dir] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Create dir (default: input) with template.txt, inventory.csv and a")
	fmt.Fprintln(w, "photos directory, plus lotlist.yaml next to it. Existing files are kept.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "      --builtin <name>      Built-in template: default, detailed")
	fmt.Fprintln(w, "      --no-config           Do not write lotlist.yaml")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) int {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return ExitSuccess
	}

	switch args[0] {
	case "generate":
		printGenerateUsage(env.Stdout)
	case "check":
		printCheckUsage(env.Stdout)
	case "init":
		printInitUsage(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: lotlist version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: lotlist help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
		printUsage(env.Stderr)
		return ExitUsage
	}
	return ExitSuccess
}
