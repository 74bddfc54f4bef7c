package notify

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/shanehull/sensscraper/internal/ai"
	"github.com/shanehull/sensscraper/internal/session"
	"github.com/shanehull/sensscraper/internal/types"
)

func sampleData() NotificationData {
	return NotificationData{
		Blocks: []session.Block{
			{
				Ticker: "NPN",
				Records: []types.HeadlineRecord{
					{FormattedDate: "Wed-22-Nov-2023 @16:45", Title: "Trading statement & update"},
				},
			},
			{Ticker: "SOL"},
		},
		Digests: map[types.Ticker]*ai.Digest{
			"NPN": {
				Summary:       []string{"Interim results flagged"},
				NotableEvents: []ai.Event{{Category: "Results", Details: "Trading statement on Wed-22-Nov-2023"}},
			},
		},
	}
}

func TestReportResults(t *testing.T) {
	var buf bytes.Buffer
	ReportResults(&buf, sampleData())
	out := buf.String()

	for _, want := range []string{
		"Results for: NPN",
		"Wed-22-Nov-2023 @16:45:",
		"Trading statement & update",
		"No valid events found for stock symbol: SOL",
		"Interim results flagged",
		"[Results] Trading statement on Wed-22-Nov-2023",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestReportResultsEmpty(t *testing.T) {
	var buf bytes.Buffer
	ReportResults(&buf, NotificationData{})
	if !strings.Contains(buf.String(), "No results yet") {
		t.Errorf("unexpected output: %q", buf.String())
	}
}

func TestRender(t *testing.T) {
	msg, err := NewHTMLEmailRenderer().Render(sampleData())
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	if msg.Subject != "SENS Results: NPN, SOL" {
		t.Errorf("Subject = %q", msg.Subject)
	}
	for _, want := range []string{"Wed-22-Nov-2023 @16:45: Trading statement & update", "AI SUMMARY", "NOTABLE EVENTS", "No valid events found for stock symbol: SOL"} {
		if !strings.Contains(msg.Text, want) {
			t.Errorf("text body missing %q", want)
		}
	}
	for _, want := range []string{"Trading statement &amp; update", "Interim results flagged", "No valid events found for stock symbol: SOL"} {
		if !strings.Contains(msg.HTML, want) {
			t.Errorf("HTML body missing %q", want)
		}
	}
}

func TestEmailConfigEnabled(t *testing.T) {
	cfg := EmailConfig{SMTPServer: "smtp.example.com", SMTPPort: 587, SMTPUser: "me@example.com", SMTPPass: "secret", ToEmail: "you@example.com"}
	if !cfg.Enabled() {
		t.Error("expected complete config to be enabled")
	}
	if cfg.from() != "me@example.com" {
		t.Errorf("from() = %q, want SMTP user", cfg.from())
	}

	cfg.SMTPPass = ""
	if cfg.Enabled() {
		t.Error("expected config without password to be disabled")
	}
}

func TestSendDisabledIsNoop(t *testing.T) {
	s := NewEmailSender(EmailConfig{}, zerolog.Nop())
	if err := s.Send(&RenderedMessage{Subject: "x", Text: "y"}); err != nil {
		t.Errorf("Send on disabled sender = %v, want nil", err)
	}
}

func TestBuildMessageHeaders(t *testing.T) {
	s := NewEmailSender(EmailConfig{SMTPUser: "me@example.com", ToEmail: "you@example.com", FromEmail: "alerts@example.com"}, zerolog.Nop())
	m := s.buildMessage(&RenderedMessage{Subject: "SENS Results: NPN", Text: "body", HTML: "<p>body</p>"})

	if got := m.GetHeader("From"); len(got) != 1 || got[0] != "alerts@example.com" {
		t.Errorf("From = %q", got)
	}
	if got := m.GetHeader("Subject"); len(got) != 1 || got[0] != "SENS Results: NPN" {
		t.Errorf("Subject = %q", got)
	}
}
