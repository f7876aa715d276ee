// File: internal/selection/selection.go
// Brief: Wizard selection model: the single record of user answers plus wizard position.

// Package selection defines the state a wizard session carries around: which
// page the user is on and which answers they have given so far. The model is
// a value type; mutating helpers return a fresh copy so every navigation
// event can be serialized atomically into the URL.
package selection

// Page identifies one step of the wizard.
type Page string

const (
	PageGetStarted        Page = "get-started"
	PageEditor            Page = "editor"
	PageIntelliJAdvice    Page = "intellij-advice"
	PageVSCodeAdvice      Page = "vscode-advice"
	PageOtherEditorAdvice Page = "other-editor-advice"
	PageDataFormats       Page = "data-formats"
	PageDatabase          Page = "database"
	PageLogging           Page = "logging"
	PageFinish            Page = "finish"
)

// Pages returns every wizard page in logical order.
func Pages() []Page {
	return []Page{
		PageGetStarted,
		PageEditor,
		PageIntelliJAdvice,
		PageVSCodeAdvice,
		PageOtherEditorAdvice,
		PageDataFormats,
		PageDatabase,
		PageLogging,
		PageFinish,
	}
}

// ParsePage maps a raw string onto a known page. The second return value is
// false when the input does not name a page.
func ParsePage(raw string) (Page, bool) {
	p := Page(raw)
	switch p {
	case PageGetStarted, PageEditor, PageIntelliJAdvice, PageVSCodeAdvice,
		PageOtherEditorAdvice, PageDataFormats, PageDatabase, PageLogging, PageFinish:
		return p, true
	}
	return "", false
}

// DataFormat is one of the payload formats the generated service can speak.
type DataFormat string

const (
	FormatJSON    DataFormat = "json"
	FormatHTML    DataFormat = "html"
	FormatGraphQL DataFormat = "graphql"
	FormatXML     DataFormat = "xml"
)

// DataFormats returns the formats in their fixed enumeration order. Output
// that depends on the selected formats (URLs, dependency lists) always uses
// this order, never selection order.
func DataFormats() []DataFormat {
	return []DataFormat{FormatJSON, FormatHTML, FormatGraphQL, FormatXML}
}

// ParseDataFormat maps a raw string onto a known data format.
func ParseDataFormat(raw string) (DataFormat, bool) {
	f := DataFormat(raw)
	switch f {
	case FormatJSON, FormatHTML, FormatGraphQL, FormatXML:
		return f, true
	}
	return "", false
}

// Database identifies the primary database choice. The zero value means the
// question has not been answered.
type Database string

const (
	DatabaseUnset    Database = ""
	DatabasePostgres Database = "postgres"
	DatabaseMySQL    Database = "mysql"
	DatabaseSQLite   Database = "sqlite"
	DatabaseMSSQL    Database = "mssql"
)

// Databases returns the selectable databases in presentation order.
func Databases() []Database {
	return []Database{DatabasePostgres, DatabaseMySQL, DatabaseSQLite, DatabaseMSSQL}
}

// ParseDatabase maps a raw string onto a known database.
func ParseDatabase(raw string) (Database, bool) {
	d := Database(raw)
	switch d {
	case DatabasePostgres, DatabaseMySQL, DatabaseSQLite, DatabaseMSSQL:
		return d, true
	}
	return DatabaseUnset, false
}

// LogFramework identifies the logging framework choice for the generated
// service. The zero value means unset.
type LogFramework string

const (
	LoggingUnset       LogFramework = ""
	LoggingSlf4jSimple LogFramework = "slf4j-simple"
	LoggingLogback     LogFramework = "logback"
	LoggingLog4j       LogFramework = "log4j"
)

// LogFrameworks returns the selectable logging frameworks in presentation order.
func LogFrameworks() []LogFramework {
	return []LogFramework{LoggingSlf4jSimple, LoggingLogback, LoggingLog4j}
}

// ParseLogFramework maps a raw string onto a known logging framework.
func ParseLogFramework(raw string) (LogFramework, bool) {
	l := LogFramework(raw)
	switch l {
	case LoggingSlf4jSimple, LoggingLogback, LoggingLog4j:
		return l, true
	}
	return LoggingUnset, false
}

// Editor identifies the user's preferred editor. The zero value means unset.
type Editor string

const (
	EditorUnset    Editor = ""
	EditorIntelliJ Editor = "intellij"
	EditorVSCode   Editor = "vscode"
	EditorOther    Editor = "other"
)

// Editors returns the selectable editors in presentation order.
func Editors() []Editor {
	return []Editor{EditorIntelliJ, EditorVSCode, EditorOther}
}

// ParseEditor maps a raw string onto a known editor.
func ParseEditor(raw string) (Editor, bool) {
	e := Editor(raw)
	switch e {
	case EditorIntelliJ, EditorVSCode, EditorOther:
		return e, true
	}
	return EditorUnset, false
}

// DefaultProjectName is the project name stamped into generated skeletons.
// The flow does not expose it for editing.
const DefaultProjectName = "my-service"

// Model is the full wizard state. It has no owner beyond the running session:
// every navigation event rebuilds it from the URL, and helpers below return
// copies rather than mutating in place.
type Model struct {
	Page        Page
	Formats     map[DataFormat]bool
	Database    Database
	Logging     LogFramework
	Editor      Editor
	ProjectName string
}

// New returns the model a fresh session starts from.
func New() Model {
	return Model{
		Page:        PageGetStarted,
		ProjectName: DefaultProjectName,
	}
}

func (m Model) cloneFormats() map[DataFormat]bool {
	out := make(map[DataFormat]bool, len(m.Formats))
	for f, on := range m.Formats {
		if on {
			out[f] = true
		}
	}
	return out
}

// HasFormat reports whether the given data format is selected.
func (m Model) HasFormat(f DataFormat) bool {
	return m.Formats[f]
}

// SelectedFormats returns the selected formats in enumeration order.
func (m Model) SelectedFormats() []DataFormat {
	var out []DataFormat
	for _, f := range DataFormats() {
		if m.Formats[f] {
			out = append(out, f)
		}
	}
	return out
}

// WithPage returns a copy of the model positioned on the given page.
func (m Model) WithPage(p Page) Model {
	m.Formats = m.cloneFormats()
	m.Page = p
	return m
}

// ToggleFormat returns a copy with the format's set membership flipped.
// Toggling twice restores the original membership.
func (m Model) ToggleFormat(f DataFormat) Model {
	formats := m.cloneFormats()
	if formats[f] {
		delete(formats, f)
	} else {
		formats[f] = true
	}
	m.Formats = formats
	return m
}

// ToggleDatabase returns a copy with the single-choice toggle applied:
// re-selecting the current database clears it, anything else replaces it.
func (m Model) ToggleDatabase(d Database) Model {
	m.Formats = m.cloneFormats()
	if m.Database == d {
		m.Database = DatabaseUnset
	} else {
		m.Database = d
	}
	return m
}

// ToggleLogging returns a copy with the single-choice toggle applied to the
// logging framework.
func (m Model) ToggleLogging(l LogFramework) Model {
	m.Formats = m.cloneFormats()
	if m.Logging == l {
		m.Logging = LoggingUnset
	} else {
		m.Logging = l
	}
	return m
}

// ToggleEditor returns a copy with the single-choice toggle applied to the
// preferred editor.
func (m Model) ToggleEditor(e Editor) Model {
	m.Formats = m.cloneFormats()
	if m.Editor == e {
		m.Editor = EditorUnset
	} else {
		m.Editor = e
	}
	return m
}
