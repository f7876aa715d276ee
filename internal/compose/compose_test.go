package compose

import (
	"bytes"
	"strings"
	"testing"

	"github.com/pmezard/go-difflib/difflib"
	"gopkg.in/yaml.v3"

	"github.com/example/kickstart/internal/selection"
)

func findEntry(t *testing.T, files []FileEntry, path string) FileEntry {
	t.Helper()
	for _, f := range files {
		if f.Path == path {
			return f
		}
	}
	t.Fatalf("expected %s in the composed file set", path)
	return FileEntry{}
}

func hasEntry(files []FileEntry, path string) bool {
	for _, f := range files {
		if f.Path == path {
			return true
		}
	}
	return false
}

func diffText(a, b string) string {
	out, _ := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(a),
		B:        difflib.SplitLines(b),
		FromFile: "first",
		ToFile:   "second",
		Context:  2,
	})
	return out
}

func TestComposeIsDeterministic(t *testing.T) {
	m := selection.New().
		ToggleEditor(selection.EditorVSCode).
		ToggleDatabase(selection.DatabasePostgres).
		ToggleLogging(selection.LoggingLog4j).
		ToggleFormat(selection.FormatJSON)

	first := Files(m, Options{})
	second := Files(m, Options{})
	if len(first) != len(second) {
		t.Fatalf("expected identical file counts, got %d and %d", len(first), len(second))
	}
	for i := range first {
		if first[i].Path != second[i].Path {
			t.Fatalf("file order differs at %d: %s vs %s", i, first[i].Path, second[i].Path)
		}
		if !bytes.Equal(first[i].Body, second[i].Body) {
			t.Fatalf("bytes differ for %s:\n%s", first[i].Path,
				diffText(string(first[i].Body), string(second[i].Body)))
		}
	}
}

func TestPostgresScenario(t *testing.T) {
	// Postgres, no formats, no logging framework.
	m := selection.New().ToggleDatabase(selection.DatabasePostgres)
	files := Files(m, Options{})

	findEntry(t, files, "docker-compose.yml")
	findEntry(t, files, "src/test/kotlin/com/example/PostgresIntegrationTest.kt")
	for _, path := range []string{
		"src/test/kotlin/com/example/MySQLIntegrationTest.kt",
		"src/test/kotlin/com/example/SQLiteIntegrationTest.kt",
		"src/test/kotlin/com/example/MSSQLIntegrationTest.kt",
	} {
		if hasEntry(files, path) {
			t.Fatalf("expected %s to be excluded for postgres", path)
		}
	}

	app := string(findEntry(t, files, "src/main/kotlin/com/example/App.kt").Body)
	if strings.Contains(app, "@@") {
		t.Fatalf("bootstrap file still contains placeholder tokens:\n%s", app)
	}
	for _, want := range []string{
		"import org.jdbi.v3.core.Jdbi",
		"val db = openDatabase()",
		"fun openDatabase(): Jdbi",
		"jdbc:postgresql://localhost:5432/my_service",
	} {
		if !strings.Contains(app, want) {
			t.Fatalf("bootstrap file is missing %q:\n%s", want, app)
		}
	}
}

func TestNoDatabaseLeavesBootstrapClean(t *testing.T) {
	files := Files(selection.New(), Options{})
	app := string(findEntry(t, files, "src/main/kotlin/com/example/App.kt").Body)
	if strings.Contains(app, "@@") {
		t.Fatalf("bootstrap file still contains placeholder tokens:\n%s", app)
	}
	if strings.Contains(app, "openDatabase") || strings.Contains(app, "Jdbi") {
		t.Fatalf("expected no database plumbing without a database choice:\n%s", app)
	}
	if hasEntry(files, "docker-compose.yml") {
		t.Fatalf("expected no docker-compose.yml without a database choice")
	}
}

func TestDockerComposeOnlyForContainerizedDatabases(t *testing.T) {
	cases := map[selection.Database]bool{
		selection.DatabasePostgres: true,
		selection.DatabaseMySQL:    true,
		selection.DatabaseSQLite:   false,
		selection.DatabaseMSSQL:    false,
	}
	for db, want := range cases {
		files := Files(selection.New().ToggleDatabase(db), Options{})
		if got := hasEntry(files, "docker-compose.yml"); got != want {
			t.Fatalf("database %s: docker-compose.yml present=%v, want %v", db, got, want)
		}
	}
}

func TestVSCodeSettingsAreConditional(t *testing.T) {
	files := Files(selection.New().ToggleEditor(selection.EditorVSCode), Options{})
	findEntry(t, files, ".vscode/settings.json")

	files = Files(selection.New().ToggleEditor(selection.EditorIntelliJ), Options{})
	if hasEntry(files, ".vscode/settings.json") {
		t.Fatalf("expected no vscode settings for intellij")
	}
}

func TestResourcesPlaceholderAlwaysPresent(t *testing.T) {
	f := findEntry(t, Files(selection.New(), Options{}), "src/main/resources/.gitkeep")
	if len(f.Body) != 0 {
		t.Fatalf("expected empty placeholder file, got %d bytes", len(f.Body))
	}
}

func TestDevScriptIsExecutable(t *testing.T) {
	f := findEntry(t, Files(selection.New(), Options{}), "run-dev.sh")
	if f.Mode != 0o755 {
		t.Fatalf("expected run-dev.sh mode 0755, got %o", f.Mode)
	}
}

func TestRenderedYAMLFilesParse(t *testing.T) {
	m := selection.New().ToggleDatabase(selection.DatabaseMySQL)
	files := Files(m, Options{})
	for _, path := range []string{
		".github/workflows/lint.yml",
		".github/workflows/test.yml",
		"docker-compose.yml",
		"detekt.yml",
	} {
		f := findEntry(t, files, path)
		var doc map[string]any
		if err := yaml.Unmarshal(f.Body, &doc); err != nil {
			t.Fatalf("%s does not parse as yaml: %v\n%s", path, err, f.Body)
		}
		if len(doc) == 0 {
			t.Fatalf("%s parsed to an empty document", path)
		}
	}
}

func TestBuildManifestAgreesWithEmittedFiles(t *testing.T) {
	// The manifest's test dependencies must match which integration test
	// stub was emitted.
	m := selection.New().ToggleDatabase(selection.DatabaseMSSQL)
	files := Files(m, Options{})
	manifest := string(findEntry(t, files, "build.gradle").Body)
	if !strings.Contains(manifest, "org.testcontainers:mssqlserver") {
		t.Fatalf("manifest is missing the testcontainers module backing the emitted test stub:\n%s", manifest)
	}
	findEntry(t, files, "src/test/kotlin/com/example/MSSQLIntegrationTest.kt")
	if strings.Contains(manifest, "@@") {
		t.Fatalf("manifest still contains placeholder tokens:\n%s", manifest)
	}
}
