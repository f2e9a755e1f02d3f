package prompt

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-notifygen/pkg/adaptive"
	"github.com/goliatone/go-notifygen/pkg/element"
)

type scriptedDriver struct {
	inputs   []string
	confirms []bool
	selects  []int

	rejected     []string
	rejectErrors []error
}

func (d *scriptedDriver) Input(_ context.Context, cfg InputConfig) (string, error) {
	for len(d.inputs) > 0 {
		answer := d.inputs[0]
		d.inputs = d.inputs[1:]
		if cfg.Validator != nil {
			if err := cfg.Validator(answer); err != nil {
				d.rejected = append(d.rejected, answer)
				d.rejectErrors = append(d.rejectErrors, err)
				continue
			}
		}
		return answer, nil
	}
	return "", errors.New("scripted driver: inputs exhausted")
}

func (d *scriptedDriver) Confirm(context.Context, ConfirmConfig) (bool, error) {
	if len(d.confirms) == 0 {
		return false, errors.New("scripted driver: confirms exhausted")
	}
	out := d.confirms[0]
	d.confirms = d.confirms[1:]
	return out, nil
}

func (d *scriptedDriver) Select(_ context.Context, cfg SelectConfig) (int, error) {
	if len(d.selects) == 0 {
		return 0, errors.New("scripted driver: selects exhausted")
	}
	out := d.selects[0]
	d.selects = d.selects[1:]
	if out >= len(cfg.Options) {
		return -1, nil
	}
	return out, nil
}

func TestBuildText_Literal(t *testing.T) {
	driver := &scriptedDriver{
		confirms: []bool{false},
		// text, lang, max lines (0 rejected, then 2), min lines (empty)
		inputs:  []string{"Hello", "", "0", "2", ""},
		selects: []int{0, 3, 0},
	}

	text, err := BuildText(context.Background(), driver)
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	hello := "Hello"
	want := element.Text{
		Text:     &hello,
		MaxLines: adaptive.Int(2),
		Align:    "center",
	}
	if diff := cmp.Diff(want, text.ConvertToElement()); diff != "" {
		t.Fatalf("element mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"0"}, driver.rejected); diff != "" {
		t.Fatalf("rejected answers mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildText_Binding(t *testing.T) {
	driver := &scriptedDriver{
		confirms: []bool{true},
		// binding name ("" rejected), lang, max, min ("x" rejected, then 3)
		inputs:  []string{"", "subject", "fr-FR", "", "x", "3"},
		selects: []int{10, 0, 2},
	}

	text, err := BuildText(context.Background(), driver)
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	placeholder := "{subject}"
	want := element.Text{
		Text:     &placeholder,
		Lang:     "fr-FR",
		Style:    "titleSubtle",
		Wrap:     adaptive.Bool(false),
		MinLines: adaptive.Int(3),
	}
	if diff := cmp.Diff(want, text.ConvertToElement()); diff != "" {
		t.Fatalf("element mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildText_LineErrorsNameTheirAttribute(t *testing.T) {
	driver := &scriptedDriver{
		confirms: []bool{false},
		// text, lang, max lines ("-1" rejected, then empty), min lines ("0" rejected, then 1)
		inputs:  []string{"Hi", "", "-1", "", "0", "1"},
		selects: []int{0, 0, 0},
	}

	text, err := BuildText(context.Background(), driver)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if len(driver.rejectErrors) != 2 {
		t.Fatalf("expected two rejected answers, got %v", driver.rejected)
	}
	for i, attr := range []string{"hint-maxLines", "hint-minLines"} {
		err := driver.rejectErrors[i]
		if !errors.Is(err, adaptive.ErrInvalidArgument) || !strings.Contains(err.Error(), attr) {
			t.Fatalf("rejection %d = %v, want an %s error", i, err, attr)
		}
	}
	if text.HintMaxLines() != nil || *text.HintMinLines() != 1 {
		t.Fatalf("unexpected line hints: max=%v min=%v", text.HintMaxLines(), text.HintMinLines())
	}
}

func TestBuildText_PropagatesDriverErrors(t *testing.T) {
	driver := &scriptedDriver{confirms: []bool{false}}
	if _, err := BuildText(context.Background(), driver); err == nil {
		t.Fatalf("expected error when driver runs out of answers")
	}
}

func TestLabels(t *testing.T) {
	got := labels(adaptive.TextAligns())
	want := []string{"default", "auto", "left", "center", "right"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("labels mismatch (-want +got):\n%s", diff)
	}
}
