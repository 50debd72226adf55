// Copyright 2025 The DateMap Authors
// SPDX-License-Identifier: Apache-2.0

package server

import (
	"embed"
	"html/template"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/jcodagnone/datemap/config"
	"github.com/jcodagnone/datemap/datecoords"
	"github.com/jcodagnone/datemap/notice"
	"github.com/jcodagnone/datemap/render"
	"github.com/jcodagnone/datemap/spatial"
)

//go:embed templates/*.html
var templates embed.FS

type Server struct {
	cfg config.Config
}

func NewServer(cfg config.Config) (*Server, error) {
	// fail early on options the layers would reject on every request
	if _, err := render.NewLayer(cfg.RenderOptions()); err != nil {
		return nil, err
	}

	return &Server{cfg: cfg}, nil
}

// Handler returns the router serving the map page and the API.
func (s *Server) Handler() *gin.Engine {
	r := gin.Default()
	r.SetHTMLTemplate(template.Must(template.New("").ParseFS(templates, "templates/*.html")))

	r.GET("/", s.mapView)
	r.GET("/api/points", s.getPoints)
	r.GET("/api/points.geojson", s.getPointsGeoJSON)
	r.GET("/api/extract", s.extractDate)

	return r
}

func (s *Server) Run() error {
	log.Printf("Listening on http://%s", s.cfg.Addr)

	return s.Handler().Run(s.cfg.Addr)
}

func (s *Server) mapView(ctx *gin.Context) {
	p := s.printer(ctx)

	ctx.HTML(http.StatusOK, "map.html", gin.H{
		"Lang":    p.Language().String(),
		"TileURL": s.cfg.TileURL,
	})
}

// printer picks the notice language from the lang query parameter, then the
// Accept-Language header, then the configured default.
func (s *Server) printer(ctx *gin.Context) *notice.Printer {
	return notice.NewPrinter(ctx.Query("lang"), ctx.GetHeader("Accept-Language"), s.cfg.Lang)
}

type PointsResponse struct {
	Dates   [2]string                  `json:"dates"`
	Sets    [2]datecoords.CoordinateSet `json:"sets"`
	Pairs   []spatial.Point            `json:"pairs"`
	Markers []render.Marker            `json:"markers"`
	Bounds  spatial.Bounds             `json:"bounds"`
	Notice  string                     `json:"notice"`
}

type ErrorResponse struct {
	Error string `json:"error"`
	Type  string `json:"type"`
}

// TypeInvalidParameter is the error type of a query parameter that is missing
// or does not parse.
const TypeInvalidParameter = "invalid_parameter"

func statusFor(err error) int {
	switch datecoords.TypeOf(err) {
	case datecoords.ErrorTypeMalformedInput:
		return http.StatusBadRequest
	case datecoords.ErrorTypeNoCoordinates, datecoords.ErrorTypeNoValidPairs:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// plot runs the dates of the request through a fresh layer. On failure the
// error response has already been written and ok is false.
func (s *Server) plot(ctx *gin.Context) (*datecoords.Result, *render.Layer, bool) {
	p := s.printer(ctx)

	reverse, err := strconv.ParseBool(ctx.DefaultQuery("reverse", "false"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: p.Sprintf(notice.InvalidReverse), Type: TypeInvalidParameter})

		return nil, nil, false
	}

	layer, err := render.NewLayer(s.cfg.RenderOptions())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, ErrorResponse{Error: p.Error(err), Type: datecoords.ErrorTypeUnknown.String()})

		return nil, nil, false
	}

	res, err := datecoords.Plot(layer, ctx.Query("dates"), datecoords.Options{Reverse: reverse})
	if err != nil {
		ctx.JSON(statusFor(err), ErrorResponse{Error: p.Error(err), Type: datecoords.TypeOf(err).String()})

		return nil, nil, false
	}

	return res, layer, true
}

func (s *Server) getPoints(ctx *gin.Context) {
	res, layer, ok := s.plot(ctx)
	if !ok {
		return
	}

	ctx.JSON(http.StatusOK, PointsResponse{
		Dates:   res.Dates,
		Sets:    res.Sets,
		Pairs:   res.Pairs,
		Markers: layer.Markers(),
		Bounds:  layer.Viewport(),
		Notice:  s.printer(ctx).Sprintf(notice.PointsFound, len(res.Pairs)),
	})
}

func (s *Server) getPointsGeoJSON(ctx *gin.Context) {
	_, layer, ok := s.plot(ctx)
	if !ok {
		return
	}

	ctx.Header("Content-Type", "application/geo+json")
	ctx.JSON(http.StatusOK, layer.GeoJSON())
}

type ExtractResponse struct {
	Date       string                   `json:"date"`
	Digits     string                   `json:"digits"`
	Base       string                   `json:"base"`
	Candidates []float64                `json:"candidates"`
	Set        datecoords.CoordinateSet `json:"set"`
}

func (s *Server) extractDate(ctx *gin.Context) {
	date := ctx.Query("date")
	if date == "" {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: s.printer(ctx).Sprintf(notice.MissingDate), Type: TypeInvalidParameter})

		return
	}

	digits, _ := datecoords.DigitRun(date)

	ctx.JSON(http.StatusOK, ExtractResponse{
		Date:       date,
		Digits:     digits,
		Base:       datecoords.SplitBase(digits),
		Candidates: datecoords.Candidates(date),
		Set:        datecoords.Extract(date),
	})
}
