// File: internal/compose/deps.go
// Brief: Dependency resolution table and column-aligned rendering for the build manifest.

package compose

import (
	"fmt"
	"strings"

	"github.com/example/kickstart/internal/selection"
)

// Dependency is one external library reference emitted into the generated
// build manifest. The resolved list is order-preserving and never
// deduplicated; the table below is laid out so duplicates cannot arise.
type Dependency struct {
	Name    string
	Version string
}

// The mapping tables are configuration data, kept in one place so they can be
// reviewed and corrected without touching the resolution logic.
var (
	baseDependencies = []Dependency{
		{Name: "io.javalin:javalin", Version: "6.3.0"},
		{Name: "org.slf4j:slf4j-api", Version: "2.0.16"},
	}

	loggingDependencies = map[selection.LogFramework][]Dependency{
		selection.LoggingSlf4jSimple: {
			{Name: "org.slf4j:slf4j-simple", Version: "2.0.16"},
		},
		selection.LoggingLogback: {
			{Name: "ch.qos.logback:logback-classic", Version: "1.5.8"},
		},
		selection.LoggingLog4j: {
			{Name: "org.apache.logging.log4j:log4j-core", Version: "2.24.0"},
			{Name: "org.apache.logging.log4j:log4j-slf4j2-impl", Version: "2.24.0"},
		},
	}

	// formatDependencies intentionally leaves GraphQL and XML without an
	// entry: the upstream mapping never assigned them one. The corrected
	// table below fills the gap behind the format-dependency-table-v2 flag.
	formatDependencies = map[selection.DataFormat][]Dependency{
		selection.FormatJSON: {
			{Name: "com.fasterxml.jackson.core:jackson-databind", Version: "2.17.2"},
		},
		selection.FormatHTML: {
			{Name: "io.pebbletemplates:pebble", Version: "3.2.2"},
		},
	}

	formatDependenciesV2 = map[selection.DataFormat][]Dependency{
		selection.FormatJSON: {
			{Name: "com.fasterxml.jackson.core:jackson-databind", Version: "2.17.2"},
		},
		selection.FormatHTML: {
			{Name: "io.pebbletemplates:pebble", Version: "3.2.2"},
		},
		selection.FormatGraphQL: {
			{Name: "com.graphql-java:graphql-java", Version: "22.3"},
		},
		selection.FormatXML: {
			{Name: "com.fasterxml.jackson.dataformat:jackson-dataformat-xml", Version: "2.17.2"},
		},
	}

	dataAccessDependencies = []Dependency{
		{Name: "org.jdbi:jdbi3-core", Version: "3.45.4"},
		{Name: "com.zaxxer:HikariCP", Version: "5.1.0"},
	}

	driverDependencies = map[selection.Database][]Dependency{
		selection.DatabasePostgres: {
			{Name: "org.postgresql:postgresql", Version: "42.7.4"},
		},
		selection.DatabaseMySQL: {
			{Name: "com.mysql:mysql-connector-j", Version: "9.0.0"},
		},
		selection.DatabaseSQLite: {
			{Name: "org.xerial:sqlite-jdbc", Version: "3.46.1.3"},
		},
		selection.DatabaseMSSQL: {
			{Name: "com.microsoft.sqlserver:mssql-jdbc", Version: "12.8.1.jre11"},
		},
	}

	baseTestDependencies = []Dependency{
		{Name: "org.junit.jupiter:junit-jupiter", Version: "5.11.0"},
		{Name: "io.javalin:javalin-testtools", Version: "6.3.0"},
	}

	// SQLite runs in-process, so it gets no Testcontainers module.
	testcontainersModules = map[selection.Database]string{
		selection.DatabasePostgres: "org.testcontainers:postgresql",
		selection.DatabaseMySQL:    "org.testcontainers:mysql",
		selection.DatabaseMSSQL:    "org.testcontainers:mssqlserver",
	}
)

const testcontainersVersion = "1.20.1"

// Dependencies resolves the main dependency list for the model. Order is
// fixed: base, logging group, one group per selected data format in
// enumeration order, the data-access pair, then the database driver group.
func Dependencies(m selection.Model, opts Options) []Dependency {
	formats := formatDependencies
	if opts.FormatTableV2 {
		formats = formatDependenciesV2
	}

	var out []Dependency
	out = append(out, baseDependencies...)
	if m.Logging != selection.LoggingUnset {
		out = append(out, loggingDependencies[m.Logging]...)
	}
	for _, f := range selection.DataFormats() {
		if m.HasFormat(f) {
			out = append(out, formats[f]...)
		}
	}
	if m.Database != selection.DatabaseUnset {
		out = append(out, dataAccessDependencies...)
		out = append(out, driverDependencies[m.Database]...)
	}
	return out
}

// TestDependencies resolves the test-only dependency list. It is formatted as
// its own block with its own alignment width.
func TestDependencies(m selection.Model) []Dependency {
	var out []Dependency
	out = append(out, baseTestDependencies...)
	if module, ok := testcontainersModules[m.Database]; ok {
		out = append(out, Dependency{Name: "org.testcontainers:junit-jupiter", Version: testcontainersVersion})
		out = append(out, Dependency{Name: module, Version: testcontainersVersion})
	}
	return out
}

// alignmentWidth is the name-column width for a dependency list: one past the
// longest name in that specific list.
func alignmentWidth(deps []Dependency) int {
	width := 0
	for _, d := range deps {
		if len(d.Name) > width {
			width = len(d.Name)
		}
	}
	return width + 1
}

// renderDependencyBlock renders a dependency list as right-aligned Groovy map
// entries. The quoted name is padded so the name column is exactly
// alignmentWidth(deps) characters wide; the width is recomputed per list, so
// the main and test blocks align independently.
func renderDependencyBlock(deps []Dependency) string {
	if len(deps) == 0 {
		return ""
	}
	width := alignmentWidth(deps)
	var b strings.Builder
	for _, d := range deps {
		fmt.Fprintf(&b, "%*s: '%s',\n", width+2, "'"+d.Name+"'", d.Version)
	}
	return strings.TrimSuffix(b.String(), "\n")
}
