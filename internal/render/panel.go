package render

import (
	"bytes"
	"html/template"

	"github.com/preston-bernstein/mlb-scoreboard/internal/scoreboard"
)

// ReloadPath is where the document's reload and retry actions post to.
const ReloadPath = "/panel/reload"

// Styling uses host-resolved custom properties; the fallbacks keep the page legible in a plain browser.
const panelTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>MLB Scores {{.Date}}</title>
<style>
body { font-family: var(--scoreboard-font-family, sans-serif); color: var(--scoreboard-foreground, #222); background: var(--scoreboard-background, #fff); padding: 0 12px; }
h1 { font-size: 1.2em; }
.game { padding: 6px 0; border-bottom: 1px solid var(--scoreboard-border, #ddd); }
.game-label { font-weight: bold; font-family: var(--scoreboard-monospace, monospace); }
.game-description { color: var(--scoreboard-muted, #666); }
.error { color: var(--scoreboard-error, #b00020); }
button { color: var(--scoreboard-button-foreground, #fff); background: var(--scoreboard-button-background, #0e639c); border: none; padding: 4px 12px; cursor: pointer; }
</style>
</head>
<body>
{{- if .Failed}}
<h1>MLB Scores</h1>
<p class="error" role="alert">{{.Error}}</p>
<form method="post" action="{{.Action}}"><button type="submit">Retry</button></form>
{{- else}}
<h1>MLB Scores &middot; {{.Date}}</h1>
<form method="post" action="{{.Action}}"><button type="submit">Reload</button></form>
{{- if .Items}}
<ul class="games">
{{- range .Items}}
<li class="game" title="{{.Tooltip}}"><span class="game-label">{{.Label}}</span> <span class="game-description">{{.Description}}</span></li>
{{- end}}
</ul>
{{- else}}
<p class="empty">No games scheduled.</p>
{{- end}}
{{- end}}
</body>
</html>
`

var panel = template.Must(template.New("panel").Parse(panelTemplate))

type panelView struct {
	scoreboard.Snapshot
	Failed bool
	Action string
}

// Panel renders a scoreboard snapshot as a standalone HTML document.
// Failed snapshots render the error message with a retry action instead of the game list.
func Panel(snap scoreboard.Snapshot) ([]byte, error) {
	view := panelView{
		Snapshot: snap,
		Failed:   snap.State == scoreboard.StateFailed,
		Action:   ReloadPath,
	}
	var buf bytes.Buffer
	if err := panel.Execute(&buf, view); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
