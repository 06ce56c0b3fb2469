package ui

import (
	"html/template"
	"log"
	"net/http"

	"github.com/youssefsiam38/recoverpg"
)

const pageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta http-equiv="refresh" content="{{.RefreshSeconds}}">
<title>Compaction Recovery</title>
<style>
body { font-family: ui-sans-serif, system-ui, sans-serif; max-width: 48rem; margin: 2rem auto; padding: 0 1rem; color: #1f2937; }
.stats { display: flex; gap: 2rem; margin-bottom: 1.5rem; }
.stat { background: #f3f4f6; border-radius: 0.5rem; padding: 0.75rem 1.25rem; }
.stat .label { font-size: 0.75rem; color: #6b7280; text-transform: uppercase; }
.stat .value { font-size: 1.5rem; font-weight: 600; }
.snapshot { border: 1px solid #e5e7eb; border-radius: 0.5rem; padding: 1rem 1.5rem; }
.empty { color: #6b7280; font-style: italic; }
.actions { margin-top: 1.5rem; }
</style>
</head>
<body>
<h1>Compaction Recovery</h1>
<div class="stats">
  <div class="stat"><div class="label">Compactions</div><div class="value">{{.CompactionCount}}</div></div>
  <div class="stat"><div class="label">Pending sessions</div><div class="value">{{.PendingCount}}</div></div>
</div>
{{if .HasSnapshot}}
<div class="snapshot">{{.Snapshot}}</div>
{{else}}
<p class="empty">No snapshot saved yet.</p>
{{end}}
<div class="actions">
  {{if .HasSnapshot}}<a href="{{.BasePath}}/snapshot.md">Raw snapshot</a>{{end}}
  {{if and .HasSnapshot (not .ReadOnly)}}
  <form method="post" action="{{.BasePath}}/clear" style="display:inline; margin-left:1rem">
    <button type="submit">Clear snapshot</button>
  </form>
  {{end}}
</div>
</body>
</html>`

var page = template.Must(template.New("page").Parse(pageTemplate))

// pageData carries everything the inspector page shows.
type pageData struct {
	BasePath        string
	ReadOnly        bool
	RefreshSeconds  int
	CompactionCount int
	PendingCount    int
	HasSnapshot     bool
	Snapshot        template.HTML
}

// Handler returns an http.Handler serving the snapshot inspector.
// A nil cfg uses DefaultConfig. Invalid configuration panics, as this
// is a programmer error.
func Handler(rec *recoverpg.Recovery, cfg *Config) http.Handler {
	if cfg == nil {
		cfg = DefaultConfig()
	} else {
		cfg.applyDefaults()
	}
	if err := cfg.validate(); err != nil {
		panic("ui: invalid configuration: " + err.Error())
	}

	h := &handler{rec: rec, cfg: cfg}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", h.index)
	mux.HandleFunc("GET /snapshot.md", h.raw)
	mux.HandleFunc("POST /clear", h.clear)
	return mux
}

type handler struct {
	rec *recoverpg.Recovery
	cfg *Config
}

func (h *handler) index(w http.ResponseWriter, r *http.Request) {
	data := pageData{
		BasePath:        h.cfg.BasePath,
		ReadOnly:        h.cfg.ReadOnly,
		RefreshSeconds:  int(h.cfg.RefreshInterval.Seconds()),
		CompactionCount: h.rec.CompactionCount(),
		PendingCount:    h.rec.PendingCount(),
	}

	content, ok, err := h.rec.Store().Load(r.Context())
	if err != nil {
		log.Printf("[RecoverPG] ui: loading snapshot: %v", err)
	}
	if ok {
		rendered, err := renderMarkdown(content)
		if err != nil {
			log.Printf("[RecoverPG] ui: rendering snapshot: %v", err)
		} else {
			data.HasSnapshot = true
			data.Snapshot = rendered
		}
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := page.Execute(w, data); err != nil {
		log.Printf("[RecoverPG] ui: executing template: %v", err)
	}
}

func (h *handler) raw(w http.ResponseWriter, r *http.Request) {
	content, ok, err := h.rec.Store().Load(r.Context())
	if err != nil {
		http.Error(w, "snapshot unavailable", http.StatusInternalServerError)
		return
	}
	if !ok {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
	w.Write([]byte(content))
}

func (h *handler) clear(w http.ResponseWriter, r *http.Request) {
	if h.cfg.ReadOnly {
		http.Error(w, ErrReadOnly.Error(), http.StatusForbidden)
		return
	}
	if err := h.rec.Store().Clear(r.Context()); err != nil {
		http.Error(w, "failed to clear snapshot", http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, h.cfg.BasePath+"/", http.StatusSeeOther)
}
