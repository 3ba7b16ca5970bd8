package controller

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"fuzzy-go/internal/chart"
	"fuzzy-go/internal/inference"
	"fuzzy-go/internal/inference/temperature"
	"fuzzy-go/internal/inference/weather"
	"fuzzy-go/internal/membership"
	"fuzzy-go/internal/metrics"

	"github.com/gin-gonic/gin"
	"github.com/vmihailenco/msgpack/v5"
	"go.uber.org/zap"
)

// MIMEMsgPack is accepted by the sampling endpoint for compact curve data.
const MIMEMsgPack = "application/msgpack"

// InferenceController handles classification and membership HTTP endpoints
type InferenceController struct {
	registry *inference.EngineRegistry
	renderer *chart.Renderer
	metrics  *metrics.Metrics
	strict   bool
	logger   *zap.Logger
}

// NewInferenceController creates a new inference controller
func NewInferenceController(
	registry *inference.EngineRegistry,
	renderer *chart.Renderer,
	m *metrics.Metrics,
	strict bool,
	logger *zap.Logger,
) *InferenceController {
	return &InferenceController{
		registry: registry,
		renderer: renderer,
		metrics:  m,
		strict:   strict,
		logger:   logger,
	}
}

// ClassifyTemperatureRequest is the request body for temperature classification
type ClassifyTemperatureRequest struct {
	Temperature *float64 `json:"temperature" binding:"required"`
	Strict      bool     `json:"strict"` // reject values outside [10,40] instead of saturating
}

// ClassifyWeatherRequest is the request body for weather classification
type ClassifyWeatherRequest struct {
	Temperature *float64 `json:"temperature" binding:"required"`
	Humidity    *float64 `json:"humidity" binding:"required"`
	Strict      bool     `json:"strict"`
}

// ClassifyRequest is the request body for generic engine dispatch
type ClassifyRequest struct {
	Engine string             `json:"engine" binding:"required"`
	Inputs map[string]float64 `json:"inputs" binding:"required"`
	Strict bool               `json:"strict"`
}

// ClassifyTemperature handles POST /api/v1/classify/temperature
func (ic *InferenceController) ClassifyTemperature(c *gin.Context) {
	var req ClassifyTemperatureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	inputs := map[string]float64{membership.Temperature.Name: *req.Temperature}
	ic.classify(c, temperature.EngineName, inputs, req.Strict)
}

// ClassifyWeather handles POST /api/v1/classify/weather
func (ic *InferenceController) ClassifyWeather(c *gin.Context) {
	var req ClassifyWeatherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	inputs := map[string]float64{
		membership.Temperature.Name: *req.Temperature,
		membership.Humidity.Name:    *req.Humidity,
	}
	ic.classify(c, weather.EngineName, inputs, req.Strict)
}

// Classify handles POST /api/v1/classify
func (ic *InferenceController) Classify(c *gin.Context) {
	var req ClassifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if _, err := ic.registry.Get(req.Engine); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	ic.classify(c, req.Engine, req.Inputs, req.Strict)
}

func (ic *InferenceController) classify(c *gin.Context, engineName string, inputs map[string]float64, strict bool) {
	engine, err := ic.registry.Get(engineName)
	if err != nil {
		ic.logger.Error("Inference engine not found", zap.String("engine", engineName), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Inference engine not available"})
		return
	}

	if strict || ic.strict {
		if err := inference.ValidateRange(engine.Variables(), inputs); err != nil {
			ic.metrics.ObserveInvalidInput(engineName)
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	start := time.Now()
	result, err := ic.registry.Classify(c.Request.Context(), engineName, inputs)
	if err != nil {
		ic.respondError(c, engineName, err)
		return
	}
	ic.metrics.ObserveClassification(engineName, result.Condition, time.Since(start))

	ic.logger.Debug("Classified",
		zap.String("engine", engineName),
		zap.Any("inputs", inputs),
		zap.String("condition", result.Condition),
		zap.Float64("degree", result.Degree),
		zap.Float64("crisp_output", result.CrispOutput))

	c.JSON(http.StatusOK, result)
}

// ListEngines handles GET /api/v1/engines
func (ic *InferenceController) ListEngines(c *gin.Context) {
	engines := ic.registry.GetAllEngines()
	descriptors := make([]inference.Descriptor, 0, len(engines))
	for _, e := range engines {
		descriptors = append(descriptors, inference.Describe(e))
	}
	c.JSON(http.StatusOK, gin.H{"engines": descriptors})
}

// SampleMembership handles GET /api/v1/membership/:variable
func (ic *InferenceController) SampleMembership(c *gin.Context) {
	v, req, ok := ic.parseCurveRequest(c)
	if !ok {
		return
	}

	samples, err := v.Sample(req.Start, req.End, req.Step)
	if err != nil {
		ic.respondError(c, v.Name, err)
		return
	}

	if c.NegotiateFormat(gin.MIMEJSON, MIMEMsgPack) == MIMEMsgPack {
		records := make([]map[string]float64, len(samples))
		for i, s := range samples {
			records[i] = s.Record()
		}
		body, err := msgpack.Marshal(gin.H{
			"variable": v.Name,
			"unit":     v.Unit,
			"start":    req.Start,
			"end":      req.End,
			"step":     req.Step,
			"count":    len(samples),
			"samples":  records,
		})
		if err != nil {
			ic.respondError(c, v.Name, err)
			return
		}
		c.Data(http.StatusOK, MIMEMsgPack, body)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"variable": v,
		"start":    req.Start,
		"end":      req.End,
		"step":     req.Step,
		"count":    len(samples),
		"samples":  samples,
	})
}

// MembershipChart handles GET /api/v1/membership/:variable/chart
func (ic *InferenceController) MembershipChart(c *gin.Context) {
	v, req, ok := ic.parseCurveRequest(c)
	if !ok {
		return
	}
	req.Format = c.DefaultQuery("format", chart.FormatPNG)

	img, err := ic.renderer.Render(v, req)
	if err != nil {
		ic.respondError(c, v.Name, err)
		return
	}

	contentType := "image/png"
	if req.Format == chart.FormatSVG {
		contentType = "image/svg+xml"
	}
	c.Data(http.StatusOK, contentType, img)
}

// Helper functions

func (ic *InferenceController) parseCurveRequest(c *gin.Context) (*membership.Variable, chart.Request, bool) {
	name := c.Param("variable")
	v, ok := membership.Lookup(name)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{
			"error": fmt.Sprintf("unknown variable %q, expected one of %v", name, membership.Names()),
		})
		return nil, chart.Request{}, false
	}

	req := chart.NewRequest(v)
	fields := []struct {
		key string
		dst *float64
	}{
		{"start", &req.Start},
		{"end", &req.End},
		{"step", &req.Step},
	}
	for _, f := range fields {
		raw, present := c.GetQuery(f.key)
		if !present {
			continue
		}
		value, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid %s: %v", f.key, err)})
			return nil, chart.Request{}, false
		}
		*f.dst = value
	}
	if raw, present := c.GetQuery("marker"); present {
		value, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid marker: %v", err)})
			return nil, chart.Request{}, false
		}
		req.Marker = &value
	}
	return v, req, true
}

func (ic *InferenceController) respondError(c *gin.Context, engine string, err error) {
	if errors.Is(err, inference.ErrInvalidInput) {
		ic.metrics.ObserveInvalidInput(engine)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ic.logger.Error("Request failed",
		zap.String("engine", engine),
		zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
