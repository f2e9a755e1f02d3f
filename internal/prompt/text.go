package prompt

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/goliatone/go-notifygen/pkg/adaptive"
	"github.com/goliatone/go-notifygen/pkg/binding"
)

const defaultLabel = "default"

// BuildText walks the user through every field of an adaptive text element.
// Line counts are checked by the model setters while the user types, so the
// returned model always converts cleanly.
func BuildText(ctx context.Context, driver Driver) (*adaptive.Text, error) {
	text := &adaptive.Text{}

	useBinding, err := driver.Confirm(ctx, ConfirmConfig{
		Message: "Bind the text to a data-binding name?",
	})
	if err != nil {
		return nil, err
	}
	if useBinding {
		name, err := driver.Input(ctx, InputConfig{
			Message:   "Binding name:",
			Validator: requireValue,
		})
		if err != nil {
			return nil, err
		}
		text.Text = binding.Reference(strings.TrimSpace(name))
	} else {
		value, err := driver.Input(ctx, InputConfig{Message: "Text:"})
		if err != nil {
			return nil, err
		}
		text.Text = binding.Literal(value)
	}

	lang, err := driver.Input(ctx, InputConfig{
		Message: "Language (BCP-47, empty for default):",
	})
	if err != nil {
		return nil, err
	}
	text.Language = strings.TrimSpace(lang)

	styles := adaptive.TextStyles()
	idx, err := driver.Select(ctx, SelectConfig{
		Message:  "Style:",
		Options:  labels(styles),
		PageSize: 10,
	})
	if err != nil {
		return nil, err
	}
	if idx > 0 && idx < len(styles) {
		text.HintStyle = styles[idx]
	}

	aligns := adaptive.TextAligns()
	idx, err = driver.Select(ctx, SelectConfig{
		Message: "Alignment:",
		Options: labels(aligns),
	})
	if err != nil {
		return nil, err
	}
	if idx > 0 && idx < len(aligns) {
		text.HintAlign = aligns[idx]
	}

	wrapIdx, err := driver.Select(ctx, SelectConfig{
		Message: "Wrap:",
		Options: []string{defaultLabel, "true", "false"},
	})
	if err != nil {
		return nil, err
	}
	switch wrapIdx {
	case 1:
		text.HintWrap = adaptive.Bool(true)
	case 2:
		text.HintWrap = adaptive.Bool(false)
	}

	if err := askLines(ctx, driver, text, "Max lines (empty for default):", (*adaptive.Text).SetHintMaxLines); err != nil {
		return nil, err
	}
	if err := askLines(ctx, driver, text, "Min lines (empty for default):", (*adaptive.Text).SetHintMinLines); err != nil {
		return nil, err
	}

	return text, nil
}

// askLines validates answers with the same setter that stores them, applied
// to a scratch model so rejected answers never touch text.
func askLines(ctx context.Context, driver Driver, text *adaptive.Text, message string, set func(*adaptive.Text, *int) error) error {
	validate := func(answer string) error {
		n, err := parseLines(answer)
		if err != nil {
			return err
		}
		var scratch adaptive.Text
		return set(&scratch, n)
	}

	answer, err := driver.Input(ctx, InputConfig{
		Message:   message,
		Validator: validate,
	})
	if err != nil {
		return err
	}
	n, err := parseLines(answer)
	if err != nil {
		return err
	}
	return set(text, n)
}

func parseLines(answer string) (*int, error) {
	trimmed := strings.TrimSpace(answer)
	if trimmed == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(trimmed)
	if err != nil {
		return nil, fmt.Errorf("%w: %q is not a number", adaptive.ErrInvalidArgument, trimmed)
	}
	return &n, nil
}

func requireValue(answer string) error {
	if strings.TrimSpace(answer) == "" {
		return fmt.Errorf("%w: value is required", adaptive.ErrInvalidArgument)
	}
	return nil
}

func labels[T ~string](values []T) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v == "" {
			out = append(out, defaultLabel)
			continue
		}
		out = append(out, string(v))
	}
	return out
}
