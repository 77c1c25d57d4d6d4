// Command verse looks up verses from the embedded or a custom translation.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"

	"shuvoedward/Bible_lookup/internal/logger"
)

const version = "1.0.0"

// CLI defines the command-line interface
type CLI struct {
	Globals

	Get          GetCmd          `cmd:"" help:"Look up a verse or verse range, e.g. \"John 3:16-17\""`
	Chapter      ChapterCmd      `cmd:"" help:"Print a whole chapter"`
	Book         BookCmd         `cmd:"" help:"Print a whole book"`
	Books        BooksCmd        `cmd:"" help:"List the books of the translation"`
	Chapters     ChaptersCmd     `cmd:"" help:"List the chapters of a book with their verse counts"`
	Random       RandomCmd       `cmd:"" help:"Print a random verse"`
	Detect       DetectCmd       `cmd:"" help:"Find verse references in text and print them"`
	Translations TranslationsCmd `cmd:"" help:"List built-in and stored translations"`
	Import       ImportCmd       `cmd:"" help:"Import the selected translation into Postgres"`
	Version      VersionCmd      `cmd:"" help:"Print version information"`
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "verse:", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	var cli CLI

	parser, err := kong.New(&cli,
		kong.Name("verse"),
		kong.Description("Bible verse lookup"),
		kong.UsageOnError(),
		kong.Writers(stdout, stderr),
		kong.BindTo(stdout, (*io.Writer)(nil)),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
	)
	if err != nil {
		return err
	}

	ctx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	return ctx.Run(&cli.Globals, logger.New(stderr, cli.LogLevel, "text"))
}
