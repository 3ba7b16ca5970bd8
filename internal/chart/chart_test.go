package chart

import (
	"bytes"
	"errors"
	"math"
	"testing"

	"fuzzy-go/internal/config"
	"fuzzy-go/internal/membership"
	"fuzzy-go/internal/metrics"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"go.uber.org/zap"
)

var pngSignature = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

func newTestRenderer(t *testing.T, cacheSize int) (*Renderer, *metrics.Metrics) {
	t.Helper()
	m := metrics.New()
	r, err := NewRenderer(config.ChartConfig{Width: 4, Height: 2, CacheSize: cacheSize}, m, zap.NewNop())
	if err != nil {
		t.Fatalf("NewRenderer failed: %v", err)
	}
	return r, m
}

func TestRenderPNG(t *testing.T) {
	r, m := newTestRenderer(t, 4)
	marker := 22.5
	req := NewRequest(membership.Temperature)
	req.Marker = &marker
	img, err := r.Render(membership.Temperature, req)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if !bytes.HasPrefix(img, pngSignature) {
		t.Fatalf("Expected PNG output")
	}

	again, err := r.Render(membership.Temperature, req)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if !bytes.Equal(img, again) {
		t.Fatalf("Expected cached image to be returned")
	}
	if got := testutil.ToFloat64(m.ChartCacheHits); got != 1 {
		t.Fatalf("Expected 1 cache hit, got %v", got)
	}
	if got := testutil.ToFloat64(m.ChartRenders); got != 1 {
		t.Fatalf("Expected 1 render, got %v", got)
	}
}

func TestRenderSVGWithoutCache(t *testing.T) {
	r, m := newTestRenderer(t, 0)
	req := NewRequest(membership.Humidity)
	req.Format, req.Step = FormatSVG, 1
	img, err := r.Render(membership.Humidity, req)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if !bytes.Contains(img, []byte("<svg")) {
		t.Fatalf("Expected SVG output")
	}
	if _, err := r.Render(membership.Humidity, req); err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if got := testutil.ToFloat64(m.ChartRenders); got != 2 {
		t.Fatalf("Expected 2 renders without cache, got %v", got)
	}
}

func TestRenderRejects(t *testing.T) {
	r, _ := newTestRenderer(t, 4)
	if _, err := r.Render(membership.Temperature, Request{Start: 10, End: 40, Format: "bmp"}); !errors.Is(err, membership.ErrInvalidInput) {
		t.Fatalf("Expected ErrInvalidInput for bmp, got %v", err)
	}
	nan := math.NaN()
	if _, err := r.Render(membership.Temperature, Request{Start: 10, End: 40, Marker: &nan}); !errors.Is(err, membership.ErrInvalidInput) {
		t.Fatalf("Expected ErrInvalidInput for NaN marker, got %v", err)
	}
	if _, err := r.Render(membership.Temperature, Request{Start: 40, End: 10}); !errors.Is(err, membership.ErrInvalidInput) {
		t.Fatalf("Expected ErrInvalidInput for reversed range, got %v", err)
	}
}

func TestNewRequest(t *testing.T) {
	req := NewRequest(membership.Humidity)
	if req.Start != 0 || req.End != 100 || req.Step != DefaultStep || req.Format != FormatPNG {
		t.Fatalf("Unexpected defaults %+v", req)
	}
}

func TestRequestNormalize(t *testing.T) {
	req := Request{Start: 25}.Normalize()
	if req.Start != 25 || req.End != 0 {
		t.Fatalf("Expected bounds taken as given, got %+v", req)
	}
	if req.Step != DefaultStep || req.Format != FormatPNG {
		t.Fatalf("Expected step and format filled, got %+v", req)
	}

	req = Request{Start: 0, End: 0, Step: 1, Format: FormatSVG}.Normalize()
	if req.Start != 0 || req.End != 0 || req.Step != 1 || req.Format != FormatSVG {
		t.Fatalf("Expected explicit zero range kept, got %+v", req)
	}
}
