package loader_test

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/rs/zerolog"

	"github.com/goliatone/go-notifygen/pkg/adaptive"
	"github.com/goliatone/go-notifygen/pkg/element"
	"github.com/goliatone/go-notifygen/pkg/loader"
	"github.com/goliatone/go-notifygen/pkg/tiles"
)

func TestLoadFile_YAML(t *testing.T) {
	var logs bytes.Buffer
	logger := zerolog.New(&logs).Level(zerolog.DebugLevel)

	doc, err := loader.LoadFile(filepath.Join("testdata", "build.yaml"), loader.WithLogger(logger))
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	elements, err := doc.Elements()
	if err != nil {
		t.Fatalf("elements: %v", err)
	}

	title := "Build #42 finished"
	summary := "{summary}"
	want := []element.Element{
		element.Image{
			Src:           "https://example.com/peek.png",
			AddImageQuery: adaptive.Bool(true),
			Placement:     "peek",
		},
		element.Image{
			Src:         "ms-appx:///Assets/bg.png",
			Alt:         "build status",
			Placement:   "background",
			HintCrop:    "circle",
			HintOverlay: adaptive.Int(20),
		},
		element.Text{
			Text:     &title,
			Style:    "title",
			Wrap:     adaptive.Bool(true),
			MaxLines: adaptive.Int(2),
		},
		element.Text{
			Text:     &summary,
			Lang:     "en-US",
			MinLines: adaptive.Int(1),
			Align:    "center",
		},
	}
	if diff := cmp.Diff(want, elements); diff != "" {
		t.Fatalf("elements mismatch (-want +got):\n%s", diff)
	}

	if !strings.Contains(logs.String(), "notification document loaded") {
		t.Fatalf("expected debug log entry, got %q", logs.String())
	}
}

func TestLoadFile_JSON(t *testing.T) {
	doc, err := loader.LoadFile(filepath.Join("testdata", "simple.json"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(doc.Texts) != 1 || doc.Background != nil || doc.Peek != nil {
		t.Fatalf("unexpected document shape: %+v", doc)
	}

	text := doc.Texts[0]
	if text.String() != "Hello" || text.HintAlign != adaptive.TextAlignCenter {
		t.Fatalf("unexpected text: %q align=%q", text.String(), text.HintAlign)
	}
	if got := text.HintMaxLines(); got == nil || *got != 2 {
		t.Fatalf("max lines = %v", got)
	}
}

func TestLoad_WithoutSanitizeKeepsMarkup(t *testing.T) {
	doc, err := loader.Load([]byte("texts:\n  - text: \"<i>raw</i>\"\n"), "inline", loader.WithoutSanitize())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got := doc.Texts[0].String(); got != "<i>raw</i>" {
		t.Fatalf("text = %q", got)
	}
}

func TestLoad_SanitizeKeepsAmpersands(t *testing.T) {
	doc, err := loader.Load([]byte(`{"texts":[{"text":"Tom & <em>Jerry</em>"}]}`), "inline")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got := doc.Texts[0].String(); got != "Tom & Jerry" {
		t.Fatalf("text = %q", got)
	}
}

func TestLoad_SanitizeDecodesEntitiesFirst(t *testing.T) {
	doc, err := loader.Load([]byte(`{"texts":[{"text":"&lt;b&gt;bold&lt;/b&gt; &amp; more"},{"text":"a &lt;script&gt;x"}]}`), "inline")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got := doc.Texts[0].String(); got != "bold & more" {
		t.Fatalf("text = %q", got)
	}
	if got := doc.Texts[1].String(); strings.Contains(got, "<") {
		t.Fatalf("encoded markup reached the model: %q", got)
	}
}

func TestLoad_Errors(t *testing.T) {
	cases := []struct {
		name    string
		payload string
		target  error
		msg     string
	}{
		{
			name:    "max lines below one",
			payload: "texts:\n  - text: hi\n    maxLines: 0\n",
			target:  adaptive.ErrInvalidArgument,
			msg:     "texts[0]",
		},
		{
			name:    "min lines negative",
			payload: "texts:\n  - text: hi\n  - text: there\n    minLines: -3\n",
			target:  adaptive.ErrInvalidArgument,
			msg:     "texts[1]",
		},
		{
			name:    "unknown style",
			payload: "texts:\n  - text: hi\n    style: loud\n",
			target:  adaptive.ErrInvalidArgument,
			msg:     "unknown text style",
		},
		{
			name:    "text and binding",
			payload: "texts:\n  - text: hi\n    binding: name\n",
			target:  adaptive.ErrInvalidArgument,
			msg:     "mutually exclusive",
		},
		{
			name:    "image without source",
			payload: "backgroundImage:\n  alt: logo\n",
			target:  adaptive.ErrInvalidArgument,
			msg:     "backgroundImage",
		},
		{
			name:    "overlay out of range",
			payload: "peekImage:\n  src: a.png\n  overlay: 150\n",
			target:  adaptive.ErrInvalidArgument,
			msg:     "peekImage",
		},
		{
			name:    "bad crop",
			payload: "peekImage:\n  src: a.png\n  crop: square\n",
			target:  adaptive.ErrInvalidArgument,
			msg:     "unknown image crop",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := loader.Load([]byte(tc.payload), "inline.yaml")
			if !errors.Is(err, tc.target) {
				t.Fatalf("expected %v, got %v", tc.target, err)
			}
			if !strings.Contains(err.Error(), tc.msg) {
				t.Fatalf("error %q does not mention %q", err.Error(), tc.msg)
			}
		})
	}
}

func TestLoad_RejectsEmptyAndMalformed(t *testing.T) {
	if _, err := loader.Load([]byte("  \n"), "empty.yaml"); err == nil {
		t.Fatalf("expected error for empty document")
	}
	if _, err := loader.Load([]byte("texts: [unclosed"), "broken.yaml"); err == nil {
		t.Fatalf("expected error for malformed document")
	}
	if _, err := loader.LoadFile(filepath.Join("testdata", "missing.yaml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestDocument_ElementsMissingSource(t *testing.T) {
	doc, err := loader.Load([]byte("texts:\n  - text: hi\n"), "inline")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	doc.Peek = &tiles.PeekImage{ImageAttrs: adaptive.ImageAttrs{AlternateText: "logo"}}

	if _, err := doc.Elements(); !errors.Is(err, adaptive.ErrMissingField) {
		t.Fatalf("expected ErrMissingField, got %v", err)
	}
}
