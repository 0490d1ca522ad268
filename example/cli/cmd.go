// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package main

import (
	"io"
	"io/fs"
	"log/slog"
	"path/filepath"

	"github.com/z5labs/partial/internal/otelslog"
	"github.com/z5labs/partial/internal/try"
	"github.com/z5labs/partial/source"

	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/propagation"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

const envPrefix = "CLI_"

func formatOf(path string) source.Format {
	switch filepath.Ext(path) {
	case ".json":
		return source.JSON
	case ".toml":
		return source.TOML
	default:
		return source.YAML
	}
}

func buildCmd(stdout, stderr io.Writer, dirFS func(string) fs.FS) *cobra.Command {
	var (
		configPath string
		configURL  string
		trace      bool
		tp         *sdktrace.TracerProvider
		logLevel   slog.LevelVar
	)

	cmd := &cobra.Command{
		Use:          "cli",
		Short:        "Resolve config from a file, the environment and flags",
		SilenceUsage: true,
		PreRunE: func(cmd *cobra.Command, args []string) (err error) {
			defer try.Recover(&err)

			if d, _ := cmd.Flags().GetBool("debug"); d {
				logLevel.Set(slog.LevelDebug)
			}
			if !trace {
				return nil
			}

			exp, err := stdouttrace.New(stdouttrace.WithWriter(stderr))
			if err != nil {
				return err
			}
			tp = sdktrace.NewTracerProvider(sdktrace.WithSyncer(exp))
			otel.SetTracerProvider(tp)
			otel.SetTextMapPropagator(propagation.TraceContext{})
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			defer try.Recover(&err)

			logHandler := otelslog.NewHandler(slog.NewJSONHandler(stderr, &slog.HandlerOptions{Level: &logLevel}))
			log := slog.New(logHandler)

			dir, name := filepath.Split(filepath.Clean(configPath))
			if dir == "" {
				dir = "."
			}
			srcs := []source.Source{
				source.FromFile(dirFS(dir), name, formatOf(name), source.Optional(), source.Template()),
			}
			if configURL != "" {
				zlog := zap.New(zapcore.NewCore(
					zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
					zapcore.AddSync(stderr),
					zap.WarnLevel,
				))
				srcs = append(srcs, source.FromURL(
					configURL,
					formatOf(configURL),
					source.RemoteOptional(),
					source.RetryAttemptLogger(zlog),
					source.CircuitLogger(zlog),
				))
			}
			srcs = append(srcs, source.FromEnv(envPrefix), source.FromFlags(cmd.Flags()))

			fr, err := source.NewReader(cliSchema, source.LogHandler(logHandler)).Read(cmd.Context(), srcs...)
			if err != nil {
				log.ErrorContext(cmd.Context(), "failed to resolve config", slog.Any("error", err))
				return err
			}
			r := fr.Finalize()

			log.DebugContext(
				cmd.Context(),
				"resolved config",
				slog.Any("verbose", verbose.Value(r)),
				slog.Bool("debug", debug.Value(r)),
				slog.String("color", string(color.Value(r))),
				slog.Int("files", len(files.Value(r))),
			)

			enc := yaml.NewEncoder(stdout)
			defer try.Close(&err, enc)
			return enc.Encode(r.Map())
		},
		PostRunE: func(cmd *cobra.Command, args []string) error {
			if tp == nil {
				return nil
			}
			return tp.Shutdown(cmd.Context())
		},
	}

	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	flags := cmd.Flags()
	flags.StringVar(&configPath, "config", "cli.yaml", "Config file, rendered as a text/template; yaml, json or toml")
	flags.StringVar(&configURL, "config-url", "", "Remote config document fetched after the config file")
	flags.BoolVar(&trace, "trace", false, "Write spans to stderr")
	flags.CountP("verbose", "v", "Increase verbosity, may be repeated")
	flags.Bool("debug", false, "Enable debug output")
	flags.StringP("output-file", "o", "", "Write output to this file")
	flags.String("color", string(ColorAuto), "When to color output: auto, always or never")
	flags.StringSlice("files", nil, "Files to process, may be repeated")

	return cmd
}
