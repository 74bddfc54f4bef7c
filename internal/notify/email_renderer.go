package notify

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"
)

// HTMLEmailRenderer renders results as HTML emails with a plain text fallback.
type HTMLEmailRenderer struct {
	tmpl *template.Template
}

// NewHTMLEmailRenderer creates a renderer with the default email template.
func NewHTMLEmailRenderer() *HTMLEmailRenderer {
	t := template.Must(template.New("email").Parse(emailHTMLTemplate))
	return &HTMLEmailRenderer{tmpl: t}
}

// Render produces an HTML email with plain text alternative.
func (r *HTMLEmailRenderer) Render(data NotificationData) (*RenderedMessage, error) {
	tickers := make([]string, 0, len(data.Blocks))
	for _, b := range data.Blocks {
		tickers = append(tickers, b.Ticker.String())
	}
	subject := "SENS Results: " + strings.Join(tickers, ", ")

	var htmlBuf bytes.Buffer
	if err := r.tmpl.Execute(&htmlBuf, data); err != nil {
		return nil, fmt.Errorf("failed to render HTML template: %w", err)
	}

	return &RenderedMessage{
		Subject: subject,
		Text:    renderPlainText(data),
		HTML:    htmlBuf.String(),
	}, nil
}

// renderPlainText produces a readable plain text version for email clients that don't support HTML.
func renderPlainText(data NotificationData) string {
	var sb strings.Builder

	for _, b := range data.Blocks {
		sb.WriteString(b.Ticker.String() + "\n")
		sb.WriteString(strings.Repeat("=", 50) + "\n\n")

		if len(b.Records) == 0 {
			sb.WriteString("No valid events found for stock symbol: " + b.Ticker.String() + "\n")
		}
		for _, rec := range b.Records {
			sb.WriteString(rec.String() + "\n")
		}
		sb.WriteString("\n")

		digest := data.Digest(b.Ticker)
		if digest == nil {
			continue
		}
		if len(digest.Summary) > 0 {
			sb.WriteString("AI SUMMARY\n")
			sb.WriteString(strings.Repeat("-", 20) + "\n")
			for _, s := range digest.Summary {
				sb.WriteString(fmt.Sprintf("• %s\n", s))
			}
			sb.WriteString("\n")
		}
		if len(digest.NotableEvents) > 0 {
			sb.WriteString("NOTABLE EVENTS\n")
			sb.WriteString(strings.Repeat("-", 20) + "\n")
			for _, e := range digest.NotableEvents {
				sb.WriteString(fmt.Sprintf("• [%s] %s\n", e.Category, e.Details))
			}
			sb.WriteString("\n")
		}
	}

	return sb.String()
}
