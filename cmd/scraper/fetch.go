package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/shanehull/sensscraper/internal/ai"
	"github.com/shanehull/sensscraper/internal/export"
	"github.com/shanehull/sensscraper/internal/notify"
	"github.com/shanehull/sensscraper/internal/sens"
	"github.com/shanehull/sensscraper/internal/session"
	"github.com/shanehull/sensscraper/internal/types"
)

var (
	flagPDF       string
	flagEmail     bool
	flagSummarize bool
)

var fetchCmd = &cobra.Command{
	Use:   "fetch TICKER...",
	Short: "Fetch SENS headlines for one or more stock symbols",
	Example: "  scraper fetch NPN SOL --pdf sens.pdf\n" +
		"  scraper fetch NPN --email --to-email me@example.com --smtp-user me@example.com",
	Args: cobra.MinimumNArgs(1),
	RunE: runFetch,
}

func init() {
	fetchCmd.Flags().StringVar(&flagPDF, "pdf", "", "export the results to this PDF file")
	fetchCmd.Flags().BoolVar(&flagEmail, "email", false, "email the results (requires SMTP settings)")
	fetchCmd.Flags().BoolVar(&flagSummarize, "summarize", false, "add a Gemini digest per ticker (requires GEMINI_API_KEY)")
}

func runFetch(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	for _, input := range args {
		submit(ctx, cmd.ErrOrStderr(), input)
	}

	data := notify.NotificationData{Blocks: app.sess.Blocks()}
	if flagSummarize {
		data.Digests = summarize(ctx, data.Blocks)
	}
	notify.ReportResults(out, data)

	var attachments []string
	if flagPDF != "" {
		if err := exportPDF(out, app.sess, flagPDF); err != nil {
			return err
		}
		attachments = append(attachments, flagPDF)
	}

	if flagEmail {
		return emailResults(data, attachments)
	}
	return nil
}

// submit runs one ticker submission and reports a failure on w. Failures are
// terminal for that ticker only.
func submit(ctx context.Context, w io.Writer, input string) {
	progress := newProgress(w)
	sub, err := app.scraper.Submit(ctx, input, app.sess, progress.update)
	progress.done()
	if err == nil {
		return
	}

	switch {
	case errors.Is(err, types.ErrInvalidSymbol):
		fmt.Fprintf(w, "Invalid Stock Symbol: %q cannot contain spaces or non-alphanumeric characters.\n", input)
	case errors.Is(err, sens.ErrTickerNotFound):
		fmt.Fprintf(w, "Error loading stock symbol '%s'\n", sub.Ticker)
	case errors.Is(err, sens.ErrNoRows):
		fmt.Fprintf(w, "No news found for stock symbol '%s'.\n", sub.Ticker)
	default:
		fmt.Fprintf(w, "Error loading stock symbol '%s'\n%v\n", sub.Ticker, err)
	}
	app.logger.Debug().Err(err).Str("input", input).Stringer("state", sub.State).Msg("Submission failed")
}

func summarize(ctx context.Context, blocks []session.Block) map[types.Ticker]*ai.Digest {
	key := app.cfg.AIKey()
	if key == "" {
		app.logger.Warn().Msg("No Gemini API key configured; skipping digest")
		return nil
	}

	digests := make(map[types.Ticker]*ai.Digest)
	for _, b := range blocks {
		if len(b.Records) == 0 {
			continue
		}
		lines := make([]string, 0, len(b.Records))
		for _, r := range b.Records {
			lines = append(lines, r.String())
		}

		digest, err := ai.Summarize(ctx, b.Ticker.String(), lines, []string{sens.NewsURL(b.Ticker)}, key, app.cfg.AI.Model)
		if err != nil {
			app.logger.Warn().Err(err).Str("ticker", b.Ticker.String()).Msg("AI digest failed")
			continue
		}
		digests[b.Ticker] = digest
	}
	return digests
}

func exportPDF(w io.Writer, sess *session.Session, path string) error {
	if err := export.WritePDF(sess.ExportLines(), path); err != nil {
		if errors.Is(err, export.ErrEmptyContent) {
			return fmt.Errorf("no results to export: %w", err)
		}
		return err
	}
	fmt.Fprintf(w, "Results saved to %s\n", path)
	return nil
}

func emailResults(data notify.NotificationData, attachments []string) error {
	if !app.email.Enabled() {
		return fmt.Errorf("email requires --smtp-user, --smtp-pass and --to-email")
	}
	if len(data.Blocks) == 0 {
		return fmt.Errorf("no results to email")
	}

	msg, err := notify.NewHTMLEmailRenderer().Render(data)
	if err != nil {
		return err
	}
	msg.Attachments = attachments

	return notify.NewEmailSender(app.email, app.logger).Send(msg)
}
