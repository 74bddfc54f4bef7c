/*
Package notify reports accumulated SENS headlines on the console and by email.
*/
package notify

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/shanehull/sensscraper/internal/ai"
	"github.com/shanehull/sensscraper/internal/session"
	"github.com/shanehull/sensscraper/internal/types"
)

var (
	tickerStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	dateStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	emptyStyle     = lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("3"))
	separatorStyle = lipgloss.NewStyle().Faint(true)
	sectionStyle   = lipgloss.NewStyle().Bold(true)
)

// NotificationData is everything a report is rendered from.
type NotificationData struct {
	Blocks  []session.Block
	Digests map[types.Ticker]*ai.Digest
}

// Digest returns the digest for ticker, or nil.
func (d NotificationData) Digest(ticker types.Ticker) *ai.Digest {
	if d.Digests == nil {
		return nil
	}
	return d.Digests[ticker]
}

// RenderedMessage is a ready-to-send email.
type RenderedMessage struct {
	Subject     string
	Text        string
	HTML        string
	Attachments []string
}

func formatEvents(events []ai.Event) string {
	var sb strings.Builder
	for _, e := range events {
		sb.WriteString(fmt.Sprintf("\t- [%s] %s\n", e.Category, e.Details))
	}
	return sb.String()
}

func formatBulletList(points []string) string {
	var sb strings.Builder
	for _, p := range points {
		sb.WriteString(fmt.Sprintf("\t- %s\n", p))
	}
	return sb.String()
}

// ReportResults prints every block, styled for a terminal.
func ReportResults(w io.Writer, data NotificationData) {
	if len(data.Blocks) == 0 {
		fmt.Fprintln(w, emptyStyle.Render("No results yet. Add a stock symbol to fetch its SENS headlines."))
		return
	}

	for _, b := range data.Blocks {
		fmt.Fprintln(w, tickerStyle.Render("Results for: "+b.Ticker.String()))
		if len(b.Records) == 0 {
			fmt.Fprintln(w, emptyStyle.Render("No valid events found for stock symbol: "+b.Ticker.String()))
		}
		for _, r := range b.Records {
			fmt.Fprintf(w, "%s %s\n", dateStyle.Render(r.FormattedDate+":"), r.Title)
		}

		if digest := data.Digest(b.Ticker); digest != nil {
			if len(digest.Summary) > 0 {
				fmt.Fprintln(w, sectionStyle.Render("AI Summary:"))
				fmt.Fprint(w, formatBulletList(digest.Summary))
			}
			if len(digest.NotableEvents) > 0 {
				fmt.Fprintln(w, sectionStyle.Render("Notable Events:"))
				fmt.Fprint(w, formatEvents(digest.NotableEvents))
			}
		}

		fmt.Fprintln(w, separatorStyle.Render(strings.Repeat("-", 50)))
	}
}
