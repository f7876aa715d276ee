// File: cmd/kickstart/generate.go
// Brief: CLI command wiring and implementation for 'generate'.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/example/kickstart/internal/compose"
	"github.com/example/kickstart/internal/featureflags"
	"github.com/example/kickstart/internal/selection"
	"github.com/example/kickstart/internal/zipbundle"
)

func newGenerateCommand() *cobra.Command {
	var (
		outputPath   string
		database     string
		logFramework string
		editor       string
		formats      []string
		projectName  string
		stampValue   string
	)
	cmd := &cobra.Command{
		Use:           "generate",
		Short:         "Compose a project skeleton archive without the web UI",
		Long:          "Generate takes the same options the wizard collects and writes the composed skeleton directly to a zip file. Identical options produce byte-identical archives when --stamp is set.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			m := selection.New()
			if projectName != "" {
				m.ProjectName = projectName
			}
			if database != "" {
				d, ok := selection.ParseDatabase(database)
				if !ok {
					return errors.Errorf("unknown database %q (expected one of %s)", database, joinValues(databaseValues()))
				}
				m = m.ToggleDatabase(d)
			}
			if logFramework != "" {
				l, ok := selection.ParseLogFramework(logFramework)
				if !ok {
					return errors.Errorf("unknown logging framework %q (expected one of %s)", logFramework, joinValues(logFrameworkValues()))
				}
				m = m.ToggleLogging(l)
			}
			if editor != "" {
				e, ok := selection.ParseEditor(editor)
				if !ok {
					return errors.Errorf("unknown editor %q (expected one of %s)", editor, joinValues(editorValues()))
				}
				m = m.ToggleEditor(e)
			}
			for _, raw := range formats {
				f, ok := selection.ParseDataFormat(raw)
				if !ok {
					return errors.Errorf("unknown data format %q (expected one of %s)", raw, joinValues(formatValues()))
				}
				if !m.HasFormat(f) {
					m = m.ToggleFormat(f)
				}
			}

			stamp := time.Now().UTC()
			if stampValue != "" {
				parsed, err := time.Parse(time.RFC3339, stampValue)
				if err != nil {
					return errors.Wrapf(err, "parse --stamp %q", stampValue)
				}
				stamp = parsed.UTC()
			}

			flags := featureflags.FromContext(cmd.Context())
			opts := compose.Options{
				FormatTableV2: flags.Enabled(featureflags.FeatureFormatTableV2),
			}

			if outputPath == "" {
				outputPath = m.ProjectName + ".zip"
			}
			if dir := filepath.Dir(outputPath); dir != "" && dir != "." {
				if err := os.MkdirAll(dir, 0o755); err != nil {
					return errors.Wrap(err, "create output dir")
				}
			}
			out, err := os.Create(outputPath)
			if err != nil {
				return errors.Wrap(err, "create archive")
			}
			files := compose.Files(m, opts)
			if err := zipbundle.Write(out, archiveFiles(files), stamp); err != nil {
				_ = out.Close()
				return errors.Wrap(err, "write archive")
			}
			if err := out.Close(); err != nil {
				return errors.Wrap(err, "close archive")
			}

			bold := color.New(color.Bold)
			bold.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", outputPath)
			for _, f := range files {
				fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", f.Path)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Path of the zip archive to write (default <project-name>.zip)")
	cmd.Flags().StringVar(&database, "database", "", "Primary database ("+joinValues(databaseValues())+")")
	cmd.Flags().StringVar(&logFramework, "logging", "", "Logging framework ("+joinValues(logFrameworkValues())+")")
	cmd.Flags().StringVar(&editor, "editor", "", "Preferred editor ("+joinValues(editorValues())+")")
	cmd.Flags().StringSliceVar(&formats, "format", nil, "Data formats to support (repeat or pass comma-separated: "+joinValues(formatValues())+")")
	cmd.Flags().StringVar(&projectName, "project-name", "", "Project name used in the skeleton (default "+selection.DefaultProjectName+")")
	cmd.Flags().StringVar(&stampValue, "stamp", "", "RFC3339 modification time for archive entries (default now)")
	return cmd
}

func archiveFiles(files []compose.FileEntry) []zipbundle.File {
	out := make([]zipbundle.File, 0, len(files))
	for _, f := range files {
		out = append(out, zipbundle.File{Name: f.Path, Body: f.Body, Mode: f.Mode})
	}
	return out
}

func joinValues(values []string) string {
	joined := ""
	for i, v := range values {
		if i > 0 {
			joined += ", "
		}
		joined += v
	}
	return joined
}

func databaseValues() []string {
	var out []string
	for _, d := range selection.Databases() {
		out = append(out, string(d))
	}
	return out
}

func logFrameworkValues() []string {
	var out []string
	for _, l := range selection.LogFrameworks() {
		out = append(out, string(l))
	}
	return out
}

func editorValues() []string {
	var out []string
	for _, e := range selection.Editors() {
		out = append(out, string(e))
	}
	return out
}

func formatValues() []string {
	var out []string
	for _, f := range selection.DataFormats() {
		out = append(out, string(f))
	}
	return out
}
