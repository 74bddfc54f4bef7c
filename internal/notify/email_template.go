package notify

const emailHTMLTemplate = `<!DOCTYPE html>
<html>
<head>
  <meta charset="UTF-8" />
  <meta name="viewport" content="width=device-width, initial-scale=1" />
  <title>SENS Results</title>
  <style>
    body {
      margin: 0;
      padding: 24px;
      background-color: #f3f4f6;
      font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, sans-serif;
      color: #111827;
      line-height: 1.5;
    }

    .container {
      max-width: 640px;
      margin: 0 auto 24px auto;
      background: #ffffff;
      border-radius: 8px;
      border: 1px solid #e5e7eb;
      overflow: hidden;
    }

    .header {
      padding: 20px 24px;
      background: linear-gradient(135deg, #1f3a2e 0%, #37393b 100%);
      color: #ffffff;
    }

    .ticker {
      font-size: 24px;
      font-weight: 700;
      letter-spacing: 0.05em;
    }

    .count {
      font-size: 13px;
      opacity: 0.85;
    }

    .section {
      padding: 16px 24px;
      border-top: 1px solid #f3f4f6;
    }

    .section-title {
      font-size: 11px;
      font-weight: 700;
      color: #6b7280;
      text-transform: uppercase;
      letter-spacing: 0.1em;
      margin-bottom: 12px;
    }

    .headline-table {
      width: 100%;
      border-collapse: collapse;
      font-size: 14px;
    }

    .headline-table td {
      padding: 6px 0;
      vertical-align: top;
      border-bottom: 1px solid #f3f4f6;
    }

    .headline-date {
      color: #6b7280;
      white-space: nowrap;
      padding-right: 16px !important;
      font-family: "SFMono-Regular", Menlo, monospace;
      font-size: 12px;
    }

    .empty {
      font-style: italic;
      color: #92400e;
      font-size: 14px;
    }

    .summary-list,
    .event-list {
      margin: 0;
      padding-left: 20px;
      font-size: 14px;
    }

    .summary-list li,
    .event-list li {
      margin-bottom: 8px;
      padding-left: 4px;
    }

    .event-category {
      display: inline-block;
      padding: 3px 6px;
      font-size: 10px;
      font-weight: 600;
      background: #fef3c7;
      color: #92400e;
      border-radius: 3px;
      text-transform: uppercase;
      letter-spacing: 0.03em;
      margin-right: 2px;
    }

    .footer {
      padding: 16px 24px;
      font-size: 12px;
      color: #9ca3af;
      text-align: center;
    }
  </style>
</head>
<body>
  {{range .Blocks}}
  {{$digest := $.Digest .Ticker}}
  <div class="container">
    <div class="header">
      <div class="ticker">{{.Ticker}}</div>
      <div class="count">{{len .Records}} headlines</div>
    </div>

    <div class="section">
      <div class="section-title">SENS Headlines</div>
      {{if .Records}}
      <table class="headline-table">
        {{range .Records}}
        <tr>
          <td class="headline-date">{{.FormattedDate}}</td>
          <td>{{.Title}}</td>
        </tr>
        {{end}}
      </table>
      {{else}}
      <div class="empty">No valid events found for stock symbol: {{.Ticker}}</div>
      {{end}}
    </div>

    {{if $digest}}
      {{if $digest.Summary}}
      <div class="section">
        <div class="section-title">AI Summary</div>
        <ul class="summary-list">
          {{range $digest.Summary}}
          <li>{{.}}</li>
          {{end}}
        </ul>
      </div>
      {{end}}

      {{if $digest.NotableEvents}}
      <div class="section">
        <div class="section-title">Notable Events</div>
        <ul class="event-list">
          {{range $digest.NotableEvents}}
          <li>
            <span class="event-category">{{.Category}}</span>
            <span>{{.Details}}</span>
          </li>
          {{end}}
        </ul>
      </div>
      {{end}}
    {{end}}
  </div>
  {{end}}

  <div class="footer">
    Generated by <a href="https://github.com/shanehull/sensscraper" target="_blank" rel="noopener">sensscraper</a>
  </div>
</body>
</html>`
