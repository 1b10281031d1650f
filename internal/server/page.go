package server

import (
	"embed"
	"html/template"
	"net/http"

	"go.uber.org/zap"
)

//go:embed templates/index.html
var templatesFS embed.FS

var indexTemplate = template.Must(template.ParseFS(templatesFS, "templates/index.html"))

type indexData struct {
	Categories []string
	Fallback   bool
	ChatReady  bool
}

type enabler interface {
	Enabled() bool
}

func (s *Server) handleIndex(w http.ResponseWriter, _ *http.Request) {
	data := indexData{
		Categories: s.store.Categories(),
		Fallback:   s.store.IsFallback(),
		ChatReady:  true,
	}
	if e, ok := s.counselor.(enabler); ok {
		data.ChatReady = e.Enabled()
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := indexTemplate.Execute(w, data); err != nil {
		s.logger.Warn("rendering index page", zap.Error(err))
	}
}
