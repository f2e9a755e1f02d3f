package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/rs/zerolog"

	"github.com/goliatone/go-notifygen/internal/prompt"
	"github.com/goliatone/go-notifygen/pkg/element"
	"github.com/goliatone/go-notifygen/pkg/loader"
	"github.com/goliatone/go-notifygen/pkg/render"
)

func main() {
	input := flag.String("input", "", "notification document (JSON or YAML)")
	interactive := flag.Bool("interactive", false, "build a text element interactively")
	output := flag.String("output", "", "output file (stdout if empty)")
	logLevel := flag.String("log-level", "info", "log level (trace, debug, info, warn, error)")
	flag.Parse()

	logger := newLogger(*logLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	elements, err := collectElements(ctx, logger, *input, *interactive)
	if err != nil {
		if errors.Is(err, prompt.ErrAborted) {
			logger.Warn().Msg("aborted")
			os.Exit(130)
		}
		logger.Fatal().Err(err).Msg("failed to build notification")
	}

	writer, err := render.New()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to configure writer")
	}
	xml, err := writer.RenderAll(elements...)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to render notification")
	}

	if *output != "" {
		if err := os.WriteFile(*output, []byte(xml+"\n"), 0o644); err != nil {
			logger.Fatal().Err(err).Str("output", *output).Msg("failed to write output")
		}
		logger.Info().Str("output", *output).Int("elements", len(elements)).Msg("notification written")
		return
	}
	fmt.Println(xml)
}

func collectElements(ctx context.Context, logger zerolog.Logger, input string, interactive bool) ([]element.Element, error) {
	path := strings.TrimSpace(input)
	switch {
	case interactive && path != "":
		return nil, errors.New("-input and -interactive are mutually exclusive")
	case interactive:
		text, err := prompt.BuildText(ctx, prompt.NewSurveyDriver())
		if err != nil {
			return nil, err
		}
		return []element.Element{text.ConvertToElement()}, nil
	case path != "":
		doc, err := loader.LoadFile(path, loader.WithLogger(logger))
		if err != nil {
			return nil, err
		}
		return doc.Elements()
	default:
		return nil, errors.New("one of -input or -interactive is required")
	}
}

func newLogger(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}).
		Level(lvl).
		With().
		Timestamp().
		Logger()
}
