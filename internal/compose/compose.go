// File: internal/compose/compose.go
// Brief: Pure composition of a selection model into the ordered generated file set.

// Package compose turns a wizard selection model into the file set of a
// ready-to-run backend-service skeleton. Files is a pure function: it holds
// no state, performs no I/O, and for equal inputs returns byte-identical
// entries in the same order every time. The archive layer supplies the
// timestamp, keeping reproducibility a property of the caller's clock read
// rather than of this package.
package compose

import (
	"io/fs"

	"github.com/example/kickstart/internal/selection"
)

// FileEntry is one generated file: a forward-slash path relative to the
// project root and the pre-rendered body.
type FileEntry struct {
	Path string
	Body []byte
	Mode fs.FileMode
}

// Options adjusts composition behavior that is configuration rather than
// user answers.
type Options struct {
	// FormatTableV2 resolves GraphQL and XML selections to real dependency
	// entries instead of preserving the historical gap in the mapping table.
	FormatTableV2 bool
}

func entry(path, body string) FileEntry {
	return FileEntry{Path: path, Body: []byte(body), Mode: 0o644}
}

func script(path, body string) FileEntry {
	return FileEntry{Path: path, Body: []byte(body), Mode: 0o755}
}

// Files renders the complete skeleton for the model. Conditional entries
// keep their slot in the fixed emission order when included:
//
//   - docker-compose.yml only for databases the dev flow containerizes
//     (postgres, mysql)
//   - exactly one per-database integration-test stub, matching the choice
//   - VS Code workspace settings only when that editor was picked
func Files(m selection.Model, opts Options) []FileEntry {
	files := []FileEntry{
		entry("settings.gradle", renderSettingsGradle(m)),
		entry("build.gradle", renderBuildGradle(m, opts)),
		entry(".gitignore", gitignoreTemplate),
		entry(".editorconfig", editorconfigTemplate),
		entry("Makefile", makefileTemplate),
		entry("detekt.yml", detektTemplate),
		entry(".github/workflows/lint.yml", lintWorkflowTemplate),
		entry(".github/workflows/test.yml", testWorkflowTemplate),
		script("run-dev.sh", runDevTemplate),
		entry("src/main/kotlin/com/example/Main.kt", mainKtTemplate),
		entry("src/main/kotlin/com/example/App.kt", renderAppKt(m)),
		entry("src/main/kotlin/com/example/Routes.kt", renderRoutesKt(m)),
		entry("src/test/kotlin/com/example/AppTest.kt", appTestKtTemplate),
	}
	if body := renderDockerCompose(m); body != "" {
		files = append(files, entry("docker-compose.yml", body))
	}
	if it, ok := databaseIntegrationTest(m); ok {
		files = append(files, entry(it.Path, it.Body))
	}
	if m.Editor == selection.EditorVSCode {
		files = append(files, entry(".vscode/settings.json", vscodeSettingsTemplate))
	}
	// Keeps the otherwise-empty resources directory present in the archive.
	files = append(files, entry("src/main/resources/.gitkeep", ""))
	return files
}
