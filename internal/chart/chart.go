package chart

import (
	"bytes"
	"fmt"
	"image/color"

	"fuzzy-go/internal/config"
	"fuzzy-go/internal/membership"
	"fuzzy-go/internal/metrics"

	lru "github.com/hashicorp/golang-lru"
	"go.uber.org/zap"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Supported output formats
const (
	FormatPNG = "png"
	FormatSVG = "svg"
)

// DefaultStep is the sampling step used when a request leaves it unset.
const DefaultStep = 0.5

var setColors = map[string]color.RGBA{
	membership.SetDingin:      {R: 0x3b, G: 0x82, B: 0xf6, A: 0xff},
	membership.SetSejuk:       {R: 0x60, G: 0xa5, B: 0xfa, A: 0xff},
	membership.SetNormal:      {R: 0x22, G: 0xc5, B: 0x5e, A: 0xff},
	membership.SetPanas:       {R: 0xf9, G: 0x73, B: 0x16, A: 0xff},
	membership.SetSangatPanas: {R: 0xef, G: 0x44, B: 0x44, A: 0xff},
	membership.SetKering:      {R: 0xd9, G: 0x77, B: 0x06, A: 0xff},
	membership.SetSedang:      {R: 0x05, G: 0x96, B: 0x69, A: 0xff},
	membership.SetLembab:      {R: 0x25, G: 0x63, B: 0xeb, A: 0xff},
}

var markerColor = color.RGBA{A: 0x4d}

// Request describes one membership chart.
type Request struct {
	Start  float64
	End    float64
	Step   float64
	Marker *float64
	Format string
}

// NewRequest returns a PNG request covering the operating range of v at DefaultStep.
// Callers override only the fields they were given.
func NewRequest(v *membership.Variable) Request {
	return Request{Start: v.Min, End: v.Max, Step: DefaultStep, Format: FormatPNG}
}

// Normalize fills an unset step and format. Start and End are taken as given.
func (r Request) Normalize() Request {
	if r.Step == 0 {
		r.Step = DefaultStep
	}
	if r.Format == "" {
		r.Format = FormatPNG
	}
	return r
}

func (r Request) key(v *membership.Variable) string {
	marker := "-"
	if r.Marker != nil {
		marker = fmt.Sprintf("%g", *r.Marker)
	}
	return fmt.Sprintf("%s|%g|%g|%g|%s|%s", v.Name, r.Start, r.End, r.Step, marker, r.Format)
}

// Renderer draws membership curves and caches the encoded images.
type Renderer struct {
	width   vg.Length
	height  vg.Length
	cache   *lru.Cache
	metrics *metrics.Metrics
	logger  *zap.Logger
}

// NewRenderer creates a new chart renderer. A zero cache size disables caching.
func NewRenderer(cfg config.ChartConfig, m *metrics.Metrics, logger *zap.Logger) (*Renderer, error) {
	r := &Renderer{
		width:   vg.Length(cfg.Width) * vg.Inch,
		height:  vg.Length(cfg.Height) * vg.Inch,
		metrics: m,
		logger:  logger,
	}
	if cfg.CacheSize > 0 {
		cache, err := lru.New(cfg.CacheSize)
		if err != nil {
			return nil, fmt.Errorf("failed to create chart cache: %w", err)
		}
		r.cache = cache
	}
	return r, nil
}

// Render returns the encoded chart of every set of v over the requested range.
func (r *Renderer) Render(v *membership.Variable, req Request) ([]byte, error) {
	req = req.Normalize()
	if req.Format != FormatPNG && req.Format != FormatSVG {
		return nil, &membership.InputError{Field: "format", Reason: fmt.Sprintf("unsupported chart format %q", req.Format)}
	}
	if req.Marker != nil {
		if err := membership.CheckFinite("marker", *req.Marker); err != nil {
			return nil, err
		}
	}

	key := req.key(v)
	if r.cache != nil {
		if cached, ok := r.cache.Get(key); ok {
			r.metrics.ObserveChart(true)
			return cached.([]byte), nil
		}
	}

	samples, err := v.Sample(req.Start, req.End, req.Step)
	if err != nil {
		return nil, err
	}

	p, err := r.build(v, samples, req.Marker)
	if err != nil {
		return nil, err
	}

	wt, err := p.WriterTo(r.width, r.height, req.Format)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s canvas: %w", req.Format, err)
	}
	var buf bytes.Buffer
	if _, err := wt.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("failed to encode chart: %w", err)
	}

	img := buf.Bytes()
	r.metrics.ObserveChart(false)
	if r.cache != nil {
		r.cache.Add(key, img)
	}
	r.logger.Debug("Rendered membership chart",
		zap.String("variable", v.Name),
		zap.String("format", req.Format),
		zap.Int("points", len(samples)),
		zap.Int("bytes", len(img)))
	return img, nil
}

func (r *Renderer) build(v *membership.Variable, samples []membership.Sample, marker *float64) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("Fungsi keanggotaan %s", v.Name)
	p.X.Label.Text = fmt.Sprintf("%s [%s]", v.Name, v.Unit)
	p.X.Label.Padding = vg.Points(5)
	p.Y.Label.Text = "degree"
	p.Y.Label.Padding = vg.Points(5)
	p.Y.Min = 0
	p.Y.Max = 1.05
	p.Legend.Top = true

	p.Add(plotter.NewGrid())

	for i, set := range v.Sets {
		xys := make(plotter.XYs, len(samples))
		for j, s := range samples {
			xys[j].X = s.X
			xys[j].Y = s.Degrees[i]
		}
		line, err := plotter.NewLine(xys)
		if err != nil {
			return nil, fmt.Errorf("failed to plot set %s: %w", set.Key, err)
		}
		line.Color = setColors[set.Key]
		line.Width = vg.Points(2)
		p.Add(line)
		p.Legend.Add(set.Label, line)
	}

	if marker != nil {
		x := *marker
		rule, err := plotter.NewLine(plotter.XYs{{X: x, Y: 0}, {X: x, Y: 1}})
		if err != nil {
			return nil, fmt.Errorf("failed to plot marker: %w", err)
		}
		rule.Color = markerColor
		rule.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}
		p.Add(rule)

		degrees := v.Values(x)
		for i, set := range v.Sets {
			if degrees[i] == 0 {
				continue
			}
			pt, err := plotter.NewScatter(plotter.XYs{{X: x, Y: degrees[i]}})
			if err != nil {
				return nil, fmt.Errorf("failed to plot marker point: %w", err)
			}
			pt.GlyphStyle.Color = setColors[set.Key]
			pt.GlyphStyle.Radius = vg.Points(4)
			pt.GlyphStyle.Shape = draw.CircleGlyph{}
			p.Add(pt)
		}
	}
	return p, nil
}
