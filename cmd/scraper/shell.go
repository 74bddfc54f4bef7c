package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/shanehull/sensscraper/internal/notify"
)

const shellHelp = `Commands:
  add TICKER     fetch SENS headlines for a stock symbol and add them to the results
  list           show all accumulated results
  clear          clear all stock symbols and results
  export PATH    save the results to a PDF file
  email [PATH]   email the results, attaching PATH if given
  help           show this help
  quit           exit`

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Interactively add stock symbols, review and export the results",
	Args:  cobra.NoArgs,
	RunE:  runShell,
}

func runShell(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, "SENS Results Viewer. Don't panic if it looks stuck, it's just loading data.")
	fmt.Fprintln(out, `Type "help" for commands.`)

	scanner := bufio.NewScanner(cmd.InOrStdin())
	for {
		fmt.Fprint(out, "sens> ")
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}
		if ctx.Err() != nil {
			return nil
		}

		name, arg, _ := strings.Cut(strings.TrimSpace(scanner.Text()), " ")
		arg = strings.TrimSpace(arg)

		switch strings.ToLower(name) {
		case "":
		case "add":
			if arg == "" {
				fmt.Fprintln(out, "usage: add TICKER")
				continue
			}
			submit(ctx, cmd.ErrOrStderr(), arg)
			notify.ReportResults(out, notify.NotificationData{Blocks: app.sess.Blocks()})
		case "list":
			notify.ReportResults(out, notify.NotificationData{Blocks: app.sess.Blocks()})
		case "clear":
			app.sess.Reset()
			fmt.Fprintln(out, "All results have been cleared.")
		case "export":
			if arg == "" {
				fmt.Fprintln(out, "usage: export PATH")
				continue
			}
			reportErr(out, exportPDF(out, app.sess, arg))
		case "email":
			var attachments []string
			if arg != "" {
				if err := exportPDF(out, app.sess, arg); err != nil {
					reportErr(out, err)
					continue
				}
				attachments = append(attachments, arg)
			}
			reportErr(out, emailResults(notify.NotificationData{Blocks: app.sess.Blocks()}, attachments))
		case "help", "?":
			fmt.Fprintln(out, shellHelp)
		case "quit", "exit":
			return nil
		default:
			fmt.Fprintf(out, "unknown command %q\n", name)
		}
	}
}

func reportErr(w io.Writer, err error) {
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
	}
}
