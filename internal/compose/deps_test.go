package compose

import (
	"strings"
	"testing"

	"github.com/example/kickstart/internal/selection"
)

func depNames(deps []Dependency) []string {
	names := make([]string, 0, len(deps))
	for _, d := range deps {
		names = append(names, d.Name)
	}
	return names
}

func countPrefix(names []string, prefix string) int {
	n := 0
	for _, name := range names {
		if strings.HasPrefix(name, prefix) {
			n++
		}
	}
	return n
}

func TestDependencyOrderIsFixed(t *testing.T) {
	m := selection.New().
		ToggleFormat(selection.FormatHTML).
		ToggleFormat(selection.FormatJSON).
		ToggleDatabase(selection.DatabasePostgres).
		ToggleLogging(selection.LoggingLogback)

	got := depNames(Dependencies(m, Options{}))
	want := []string{
		"io.javalin:javalin",
		"org.slf4j:slf4j-api",
		"ch.qos.logback:logback-classic",
		"com.fasterxml.jackson.core:jackson-databind",
		"io.pebbletemplates:pebble",
		"org.jdbi:jdbi3-core",
		"com.zaxxer:HikariCP",
		"org.postgresql:postgresql",
	}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("dependency order mismatch at %d: expected %v, got %v", i, want, got)
		}
	}
}

func TestXMLAndGraphQLHaveNoDependencyByDefault(t *testing.T) {
	m := selection.New().ToggleFormat(selection.FormatJSON).ToggleFormat(selection.FormatXML)
	names := depNames(Dependencies(m, Options{}))
	if n := countPrefix(names, "com.fasterxml.jackson.core:jackson-databind"); n != 1 {
		t.Fatalf("expected exactly one json codec dependency, got %d in %v", n, names)
	}
	for _, name := range names {
		if strings.Contains(name, "dataformat-xml") || strings.Contains(name, "graphql") {
			t.Fatalf("expected no xml/graphql dependency in the default table, got %v", names)
		}
	}
}

func TestFormatTableV2FillsTheGap(t *testing.T) {
	m := selection.New().ToggleFormat(selection.FormatGraphQL).ToggleFormat(selection.FormatXML)
	names := depNames(Dependencies(m, Options{FormatTableV2: true}))
	if countPrefix(names, "com.graphql-java:graphql-java") != 1 {
		t.Fatalf("expected graphql-java with the v2 table, got %v", names)
	}
	if countPrefix(names, "com.fasterxml.jackson.dataformat:jackson-dataformat-xml") != 1 {
		t.Fatalf("expected jackson-dataformat-xml with the v2 table, got %v", names)
	}
}

func TestEachDatabasePullsItsOwnDriver(t *testing.T) {
	drivers := map[selection.Database]string{
		selection.DatabasePostgres: "org.postgresql:postgresql",
		selection.DatabaseMySQL:    "com.mysql:mysql-connector-j",
		selection.DatabaseSQLite:   "org.xerial:sqlite-jdbc",
		selection.DatabaseMSSQL:    "com.microsoft.sqlserver:mssql-jdbc",
	}
	for db, wantDriver := range drivers {
		names := depNames(Dependencies(selection.New().ToggleDatabase(db), Options{}))
		if countPrefix(names, wantDriver) != 1 {
			t.Fatalf("database %s: expected driver %s, got %v", db, wantDriver, names)
		}
		for other, otherDriver := range drivers {
			if other == db {
				continue
			}
			if countPrefix(names, otherDriver) != 0 {
				t.Fatalf("database %s: pulled foreign driver %s: %v", db, otherDriver, names)
			}
		}
		if countPrefix(names, "org.jdbi:jdbi3-core") != 1 || countPrefix(names, "com.zaxxer:HikariCP") != 1 {
			t.Fatalf("database %s: expected the data-access pair, got %v", db, names)
		}
	}
}

func TestNoDatabaseMeansNoDataAccessDeps(t *testing.T) {
	names := depNames(Dependencies(selection.New(), Options{}))
	if countPrefix(names, "org.jdbi:") != 0 || countPrefix(names, "com.zaxxer:") != 0 {
		t.Fatalf("expected no data-access dependencies without a database, got %v", names)
	}
}

func TestAlignmentWidthIsOnePastLongestName(t *testing.T) {
	deps := []Dependency{
		{Name: "a:b", Version: "1"},
		{Name: "longer:artifact-name", Version: "2"},
	}
	if got, want := alignmentWidth(deps), len("longer:artifact-name")+1; got != want {
		t.Fatalf("expected width %d, got %d", want, got)
	}
}

func TestDependencyBlockAlignment(t *testing.T) {
	deps := []Dependency{
		{Name: "io.javalin:javalin", Version: "6.3.0"},
		{Name: "org.slf4j:slf4j-api", Version: "2.0.16"},
	}
	width := alignmentWidth(deps)
	for _, line := range strings.Split(renderDependencyBlock(deps), "\n") {
		open := strings.Index(line, "'")
		if open < 0 {
			t.Fatalf("line %q: expected a quoted name", line)
		}
		end := strings.Index(line[open+1:], "'")
		if end < 0 {
			t.Fatalf("line %q: unterminated name", line)
		}
		// Padding plus bare name length must equal the column width.
		if open+end != width {
			t.Fatalf("line %q: name column is %d wide, want %d", line, open+end, width)
		}
	}
}

func TestMainAndTestBlocksAlignIndependently(t *testing.T) {
	m := selection.New().ToggleDatabase(selection.DatabasePostgres)
	mainWidth := alignmentWidth(Dependencies(m, Options{}))
	testWidth := alignmentWidth(TestDependencies(m))
	if mainWidth == testWidth {
		t.Fatalf("expected distinct alignment widths for this model, both were %d", mainWidth)
	}
}

func TestTestDependenciesIncludeTestcontainersPerDatabase(t *testing.T) {
	names := depNames(TestDependencies(selection.New().ToggleDatabase(selection.DatabaseMySQL)))
	if countPrefix(names, "org.testcontainers:junit-jupiter") != 1 || countPrefix(names, "org.testcontainers:mysql") != 1 {
		t.Fatalf("expected mysql testcontainers modules, got %v", names)
	}

	names = depNames(TestDependencies(selection.New().ToggleDatabase(selection.DatabaseSQLite)))
	if countPrefix(names, "org.testcontainers:") != 0 {
		t.Fatalf("expected no testcontainers modules for sqlite, got %v", names)
	}
}
