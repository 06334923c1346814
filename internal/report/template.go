// internal/report/template.go
package report

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
)

// Render writes page as a standalone HTML document.
func Render(w io.Writer, page Page) error {
	var buf bytes.Buffer
	if err := reportTemplate.Execute(&buf, page); err != nil {
		return fmt.Errorf("render report: %w", err)
	}
	_, err := buf.WriteTo(w)
	return err
}

var reportTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"isTable": func(k PanelKind) bool { return k == PanelTable },
	"isError": func(k PanelKind) bool { return k == PanelError },
}).Parse(reportTemplateHTML))

const reportTemplateHTML = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <title>{{ .Title }}</title>
  <link rel="stylesheet" href="https://cdn.jsdelivr.net/npm/bootstrap@5.3.3/dist/css/bootstrap.min.css">
  <link rel="stylesheet" href="{{ .StaticBase }}/css/report.css">
</head>
<body>
  <div class="container-fluid py-4">
    <header class="report-header">
      <h1 class="h3">{{ .Title }}</h1>
      <p class="text-muted mb-0">Lowest values per metric are highlighted: <span class="rank-best">best</span>, <span class="rank-second">second</span>, <span class="rank-third">third</span>.</p>
    </header>
    {{- if .Notes }}
    <section class="report-notes">{{ .Notes }}</section>
    {{- end }}
    {{- range .Panels }}
    <section class="mb-4 report-panel">
      {{- if isTable .Kind }}
      <h2 class="h5">{{ .Title }}</h2>
      <table class="table table-striped table-hover table-sm table-responsive-sm">
        <thead>
          <tr>
            {{- range .Columns }}
            <th scope="col">{{ . }}</th>
            {{- end }}
            <th scope="col">chart</th>
          </tr>
        </thead>
        <tbody>
          {{- range .Rows }}
          <tr>
            {{- range .Cells }}
            <td{{ with .Class }} class="{{ . }}"{{ end }}>{{ .Text }}</td>
            {{- end }}
            <td>{{ with .ChartURL }}<a class="chart-link" href="{{ . }}" target="_blank">view</a>{{ end }}</td>
          </tr>
          {{- end }}
        </tbody>
      </table>
      {{- else if isError .Kind }}
      <div class="alert alert-danger" role="alert">{{ .Message }}</div>
      {{- else }}
      <div class="alert alert-info" role="alert">{{ .Message }}</div>
      {{- end }}
    </section>
    {{- end }}
  </div>
</body>
</html>
`
