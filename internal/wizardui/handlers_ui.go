// File: internal/wizardui/handlers_ui.go
// Brief: Renders the wizard page for the state carried in the request URL.

package wizardui

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/example/kickstart/internal/selection"
	"github.com/example/kickstart/internal/urlstate"
	"github.com/example/kickstart/internal/wizard"
)

// The page is deliberately plain. Every interactive element is a link whose
// href re-encodes the mutated model, so each click is a navigation push and
// the browser history replays wizard transitions for free.
const wizardHTML = `<!doctype html>
<html>
<head><meta charset="utf-8"><title>kickstart: {{.Title}}</title></head>
<body>
<h1>{{.Title}}</h1>
{{if .Advice}}<p>{{.Advice}}</p>{{end}}
{{if .Options}}
<ul>
{{range .Options}}
<li><a href="{{.Href}}">{{if .Selected}}[x]{{else}}[ ]{{end}} {{.Label}}</a></li>
{{end}}
</ul>
{{end}}
<p>
{{if .BackURL}}<a href="{{.BackURL}}">Back</a>{{end}}
{{if .NextURL}}<a href="{{.NextURL}}">Next</a>{{end}}
{{if .DownloadURL}}<a href="{{.DownloadURL}}">Download {{.ProjectName}}.zip</a>{{end}}
</p>
</body>
</html>
`

type optionView struct {
	Label    string
	Href     string
	Selected bool
}

type pageView struct {
	Title       string
	Advice      string
	Options     []optionView
	BackURL     string
	NextURL     string
	DownloadURL string
	ProjectName string
}

var pageTitles = map[selection.Page]string{
	selection.PageGetStarted:        "Get started",
	selection.PageEditor:            "Which editor do you prefer?",
	selection.PageIntelliJAdvice:    "IntelliJ IDEA tips",
	selection.PageVSCodeAdvice:      "VS Code tips",
	selection.PageOtherEditorAdvice: "Editor tips",
	selection.PageDataFormats:       "Which data formats will the service speak?",
	selection.PageDatabase:          "Pick a primary database",
	selection.PageLogging:           "Pick a logging framework",
	selection.PageFinish:            "All set",
}

var adviceTexts = map[selection.Page]string{
	selection.PageIntelliJAdvice:    "Open the generated folder as a Gradle project; IntelliJ picks up run configurations from the application plugin.",
	selection.PageVSCodeAdvice:      "Install the Kotlin and Gradle extensions; workspace settings are included in the archive.",
	selection.PageOtherEditorAdvice: "The skeleton ships with an .editorconfig, a Makefile, and run-dev.sh, so any editor with a terminal will do.",
}

func wizardURL(m selection.Model) string {
	return "/?" + urlstate.EncodeQuery(m)
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	m := s.decodeModel(r)
	view := buildPageView(m)
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.tmpl.Execute(w, view); err != nil {
		s.logger.Warn("render wizard page", zap.Error(err))
	}
}

func buildPageView(m selection.Model) pageView {
	view := pageView{
		Title:       pageTitles[m.Page],
		Advice:      adviceTexts[m.Page],
		Options:     pageOptions(m),
		ProjectName: m.ProjectName,
	}
	if prev := wizard.Retreat(m.Page, m); prev != m.Page {
		view.BackURL = wizardURL(m.WithPage(prev))
	}
	if wizard.CanAdvance(m.Page, m) {
		if next := wizard.Advance(m.Page, m); next != m.Page {
			view.NextURL = wizardURL(m.WithPage(next))
		}
	}
	if m.Page == selection.PageFinish {
		view.DownloadURL = "/download?" + urlstate.EncodeQuery(m)
	}
	return view
}

// pageOptions lists the selectable answers for the current page. Each link
// applies the field's toggle law and re-encodes the whole model.
func pageOptions(m selection.Model) []optionView {
	switch m.Page {
	case selection.PageEditor:
		labels := map[selection.Editor]string{
			selection.EditorIntelliJ: "IntelliJ IDEA",
			selection.EditorVSCode:   "VS Code",
			selection.EditorOther:    "Something else",
		}
		var opts []optionView
		for _, e := range selection.Editors() {
			opts = append(opts, optionView{
				Label:    labels[e],
				Href:     wizardURL(m.ToggleEditor(e)),
				Selected: m.Editor == e,
			})
		}
		return opts
	case selection.PageDataFormats:
		labels := map[selection.DataFormat]string{
			selection.FormatJSON:    "JSON",
			selection.FormatHTML:    "HTML",
			selection.FormatGraphQL: "GraphQL",
			selection.FormatXML:     "XML",
		}
		var opts []optionView
		for _, f := range selection.DataFormats() {
			opts = append(opts, optionView{
				Label:    labels[f],
				Href:     wizardURL(m.ToggleFormat(f)),
				Selected: m.HasFormat(f),
			})
		}
		return opts
	case selection.PageDatabase:
		labels := map[selection.Database]string{
			selection.DatabasePostgres: "PostgreSQL",
			selection.DatabaseMySQL:    "MySQL",
			selection.DatabaseSQLite:   "SQLite",
			selection.DatabaseMSSQL:    "SQL Server",
		}
		var opts []optionView
		for _, d := range selection.Databases() {
			opts = append(opts, optionView{
				Label:    labels[d],
				Href:     wizardURL(m.ToggleDatabase(d)),
				Selected: m.Database == d,
			})
		}
		return opts
	case selection.PageLogging:
		labels := map[selection.LogFramework]string{
			selection.LoggingSlf4jSimple: "SLF4J Simple",
			selection.LoggingLogback:     "Logback",
			selection.LoggingLog4j:       "Log4j 2",
		}
		var opts []optionView
		for _, l := range selection.LogFrameworks() {
			opts = append(opts, optionView{
				Label:    labels[l],
				Href:     wizardURL(m.ToggleLogging(l)),
				Selected: m.Logging == l,
			})
		}
		return opts
	default:
		return nil
	}
}
