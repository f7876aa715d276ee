// File: internal/compose/templates.go
// Brief: Fixed text templates for the generated skeleton and their render functions.

package compose

import (
	"fmt"
	"strings"

	"github.com/example/kickstart/internal/selection"
)

// Placeholders are substituted by exact string match. Each template's
// placeholder set is local to that template; there is no shared formatting
// state between them.
const (
	tokenProjectName = "@@PROJECT_NAME@@"
	tokenDeps        = "@@DEPENDENCIES@@"
	tokenTestDeps    = "@@TEST_DEPENDENCIES@@"
	tokenDBImports   = "@@DB_IMPORTS@@"
	tokenDBInit      = "@@DB_INIT@@"
	tokenDBHelper    = "@@DB_HELPER@@"
)

const settingsGradleTemplate = `rootProject.name = '@@PROJECT_NAME@@'
`

const buildGradleTemplate = `plugins {
    id 'org.jetbrains.kotlin.jvm' version '2.0.20'
    id 'io.gitlab.arturbosch.detekt' version '1.23.7'
    id 'application'
}

group = 'com.example'
version = '0.1.0'

repositories {
    mavenCentral()
}

ext.libraries = [
@@DEPENDENCIES@@
]

ext.testLibraries = [
@@TEST_DEPENDENCIES@@
]

dependencies {
    libraries.each { name, version -> implementation "${name}:${version}" }
    testLibraries.each { name, version -> testImplementation "${name}:${version}" }
}

application {
    mainClass = 'com.example.MainKt'
}

tasks.named('test') {
    useJUnitPlatform()
}
`

const gitignoreTemplate = `.gradle/
build/
out/
*.log
*.db
.idea/
`

const editorconfigTemplate = `root = true

[*]
charset = utf-8
end_of_line = lf
insert_final_newline = true
indent_style = space
indent_size = 4

[*.{yml,yaml}]
indent_size = 2
`

const makefileTemplate = `.PHONY: run test lint

run:
	./gradlew run

test:
	./gradlew test

lint:
	./gradlew detekt
`

const detektTemplate = `build:
  maxIssues: 0

style:
  MagicNumber:
    active: false
`

const lintWorkflowTemplate = `name: lint

on:
  push:
    branches: [main]
  pull_request:

jobs:
  detekt:
    runs-on: ubuntu-latest
    steps:
      - uses: actions/checkout@v4
      - uses: actions/setup-java@v4
        with:
          distribution: temurin
          java-version: "21"
      - run: ./gradlew detekt
`

const testWorkflowTemplate = `name: test

on:
  push:
    branches: [main]
  pull_request:

jobs:
  gradle-test:
    runs-on: ubuntu-latest
    steps:
      - uses: actions/checkout@v4
      - uses: actions/setup-java@v4
        with:
          distribution: temurin
          java-version: "21"
      - run: ./gradlew test
`

const runDevTemplate = `#!/usr/bin/env sh
set -eu

exec ./gradlew run --console=plain "$@"
`

const mainKtTemplate = `package com.example

fun main() {
    buildApp().start(7070)
}
`

// appKtTemplate is the service bootstrap. Its three database placeholders are
// mutually dependent: they are all filled when a primary database is chosen
// and all removed when none is, never a mix.
const appKtTemplate = `package com.example

import io.javalin.Javalin
@@DB_IMPORTS@@

fun buildApp(): Javalin {
    val app = Javalin.create()
@@DB_INIT@@
    registerRoutes(app)
    return app
}
@@DB_HELPER@@
`

const routesKtTemplate = `package com.example

import io.javalin.Javalin

fun registerRoutes(app: Javalin) {
    app.get("/") { ctx -> ctx.result("@@PROJECT_NAME@@ is running") }
    app.get("/healthz") { ctx -> ctx.result("ok") }
}
`

const appTestKtTemplate = `package com.example

import io.javalin.testtools.JavalinTest
import org.junit.jupiter.api.Assertions.assertEquals
import org.junit.jupiter.api.Test

class AppTest {
    @Test
    fun rootRouteResponds() = JavalinTest.test(buildApp()) { _, client ->
        assertEquals(200, client.get("/").code)
    }

    @Test
    fun healthRouteResponds() = JavalinTest.test(buildApp()) { _, client ->
        assertEquals(200, client.get("/healthz").code)
    }
}
`

const vscodeSettingsTemplate = `{
    "editor.formatOnSave": true,
    "files.insertFinalNewline": true,
    "files.trimTrailingWhitespace": true
}
`

const dbImportsBlock = `import com.zaxxer.hikari.HikariConfig
import com.zaxxer.hikari.HikariDataSource
import org.jdbi.v3.core.Jdbi`

const dbInitBlock = `    val db = openDatabase()
    app.attribute("db", db)`

const dbHelperTemplate = `
fun openDatabase(): Jdbi {
    val config = HikariConfig()
    config.jdbcUrl = "@@JDBC_URL@@"
    return Jdbi.create(HikariDataSource(config))
}`

// fill substitutes a placeholder with a value by exact string match.
func fill(text, token, value string) string {
	return strings.ReplaceAll(text, token, value)
}

// fillLine substitutes a placeholder that occupies a whole line. An empty
// value removes the line entirely instead of leaving a blank one behind.
func fillLine(text, token, value string) string {
	if value == "" {
		text = strings.ReplaceAll(text, token+"\n", "")
		return strings.ReplaceAll(text, token, "")
	}
	return strings.ReplaceAll(text, token, value)
}

func renderSettingsGradle(m selection.Model) string {
	return fill(settingsGradleTemplate, tokenProjectName, m.ProjectName)
}

func renderBuildGradle(m selection.Model, opts Options) string {
	out := fill(buildGradleTemplate, tokenDeps, renderDependencyBlock(Dependencies(m, opts)))
	return fill(out, tokenTestDeps, renderDependencyBlock(TestDependencies(m)))
}

func renderRoutesKt(m selection.Model) string {
	return fill(routesKtTemplate, tokenProjectName, m.ProjectName)
}

func renderAppKt(m selection.Model) string {
	if m.Database == selection.DatabaseUnset {
		out := fillLine(appKtTemplate, tokenDBImports, "")
		out = fillLine(out, tokenDBInit, "")
		return fillLine(out, tokenDBHelper, "")
	}
	out := fillLine(appKtTemplate, tokenDBImports, dbImportsBlock)
	out = fillLine(out, tokenDBInit, dbInitBlock)
	helper := fill(dbHelperTemplate, "@@JDBC_URL@@", jdbcURL(m))
	return fillLine(out, tokenDBHelper, helper)
}

// jdbcURL builds the local-dev connection string for the chosen database.
func jdbcURL(m selection.Model) string {
	dbName := strings.ReplaceAll(m.ProjectName, "-", "_")
	switch m.Database {
	case selection.DatabasePostgres:
		return fmt.Sprintf("jdbc:postgresql://localhost:5432/%s", dbName)
	case selection.DatabaseMySQL:
		return fmt.Sprintf("jdbc:mysql://localhost:3306/%s", dbName)
	case selection.DatabaseSQLite:
		return fmt.Sprintf("jdbc:sqlite:./%s.db", m.ProjectName)
	case selection.DatabaseMSSQL:
		return fmt.Sprintf("jdbc:sqlserver://localhost:1433;databaseName=%s", dbName)
	default:
		return ""
	}
}

const composePostgresTemplate = `services:
  db:
    image: postgres:16
    environment:
      POSTGRES_DB: @@DB_NAME@@
      POSTGRES_USER: @@DB_NAME@@
      POSTGRES_PASSWORD: @@DB_NAME@@
    ports:
      - "5432:5432"
`

const composeMySQLTemplate = `services:
  db:
    image: mysql:8.4
    environment:
      MYSQL_DATABASE: @@DB_NAME@@
      MYSQL_USER: @@DB_NAME@@
      MYSQL_PASSWORD: @@DB_NAME@@
      MYSQL_ROOT_PASSWORD: @@DB_NAME@@
    ports:
      - "3306:3306"
`

// renderDockerCompose returns the container-orchestration file body, or ""
// for databases the local-dev flow does not containerize.
func renderDockerCompose(m selection.Model) string {
	dbName := strings.ReplaceAll(m.ProjectName, "-", "_")
	switch m.Database {
	case selection.DatabasePostgres:
		return fill(composePostgresTemplate, "@@DB_NAME@@", dbName)
	case selection.DatabaseMySQL:
		return fill(composeMySQLTemplate, "@@DB_NAME@@", dbName)
	default:
		return ""
	}
}

const postgresITTemplate = `package com.example

import org.junit.jupiter.api.Assertions.assertEquals
import org.junit.jupiter.api.Test
import org.jdbi.v3.core.Jdbi
import org.testcontainers.containers.PostgreSQLContainer
import org.testcontainers.junit.jupiter.Container
import org.testcontainers.junit.jupiter.Testcontainers

@Testcontainers
class PostgresIntegrationTest {
    @Container
    private val db = PostgreSQLContainer("postgres:16")

    @Test
    fun databaseAcceptsConnections() {
        val jdbi = Jdbi.create(db.jdbcUrl, db.username, db.password)
        val one = jdbi.withHandle<Int, Exception> { handle ->
            handle.createQuery("SELECT 1").mapTo(Int::class.java).one()
        }
        assertEquals(1, one)
    }
}
`

const mysqlITTemplate = `package com.example

import org.junit.jupiter.api.Assertions.assertEquals
import org.junit.jupiter.api.Test
import org.jdbi.v3.core.Jdbi
import org.testcontainers.containers.MySQLContainer
import org.testcontainers.junit.jupiter.Container
import org.testcontainers.junit.jupiter.Testcontainers

@Testcontainers
class MySQLIntegrationTest {
    @Container
    private val db = MySQLContainer("mysql:8.4")

    @Test
    fun databaseAcceptsConnections() {
        val jdbi = Jdbi.create(db.jdbcUrl, db.username, db.password)
        val one = jdbi.withHandle<Int, Exception> { handle ->
            handle.createQuery("SELECT 1").mapTo(Int::class.java).one()
        }
        assertEquals(1, one)
    }
}
`

const sqliteITTemplate = `package com.example

import org.junit.jupiter.api.Assertions.assertEquals
import org.junit.jupiter.api.Test
import org.jdbi.v3.core.Jdbi
import java.nio.file.Files

class SQLiteIntegrationTest {
    @Test
    fun databaseAcceptsConnections() {
        val file = Files.createTempFile("@@PROJECT_NAME@@", ".db")
        val jdbi = Jdbi.create("jdbc:sqlite:" + file.toAbsolutePath())
        val one = jdbi.withHandle<Int, Exception> { handle ->
            handle.createQuery("SELECT 1").mapTo(Int::class.java).one()
        }
        assertEquals(1, one)
    }
}
`

const mssqlITTemplate = `package com.example

import org.junit.jupiter.api.Assertions.assertEquals
import org.junit.jupiter.api.Test
import org.jdbi.v3.core.Jdbi
import org.testcontainers.containers.MSSQLServerContainer
import org.testcontainers.junit.jupiter.Container
import org.testcontainers.junit.jupiter.Testcontainers

@Testcontainers
class MSSQLIntegrationTest {
    @Container
    private val db = MSSQLServerContainer("mcr.microsoft.com/mssql/server:2022-latest").acceptLicense()

    @Test
    fun databaseAcceptsConnections() {
        val jdbi = Jdbi.create(db.jdbcUrl, db.username, db.password)
        val one = jdbi.withHandle<Int, Exception> { handle ->
            handle.createQuery("SELECT 1").mapTo(Int::class.java).one()
        }
        assertEquals(1, one)
    }
}
`

type integrationTest struct {
	Path string
	Body string
}

// databaseIntegrationTest returns the per-database integration-test stub for
// the chosen database. At most one exists because the model holds at most
// one database.
func databaseIntegrationTest(m selection.Model) (integrationTest, bool) {
	const dir = "src/test/kotlin/com/example/"
	switch m.Database {
	case selection.DatabasePostgres:
		return integrationTest{Path: dir + "PostgresIntegrationTest.kt", Body: postgresITTemplate}, true
	case selection.DatabaseMySQL:
		return integrationTest{Path: dir + "MySQLIntegrationTest.kt", Body: mysqlITTemplate}, true
	case selection.DatabaseSQLite:
		return integrationTest{
			Path: dir + "SQLiteIntegrationTest.kt",
			Body: fill(sqliteITTemplate, tokenProjectName, m.ProjectName),
		}, true
	case selection.DatabaseMSSQL:
		return integrationTest{Path: dir + "MSSQLIntegrationTest.kt", Body: mssqlITTemplate}, true
	default:
		return integrationTest{}, false
	}
}
