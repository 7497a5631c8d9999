// handlers.go - HTTP handlers and wire decoding for the placement daemon.
//
// The wire layer is the caller-side validation boundary: unknown enum
// spellings are rejected with 400 here, so the engine below only ever sees
// values from the closed domain sets.
package main

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/glyphkit/pictograph/motion"
	"github.com/glyphkit/pictograph/placement"
	"github.com/glyphkit/pictograph/special"
)

// Handler serves the placement API over one engine instance.
type Handler struct {
	engine  *placement.Engine
	repo    *special.Repository
	version string
}

// NewHandler builds the handler set.
func NewHandler(engine *placement.Engine, repo *special.Repository, version string) *Handler {
	return &Handler{engine: engine, repo: repo, version: version}
}

// RegisterRoutes registers all API routes with the Echo instance.
func RegisterRoutes(e *echo.Echo, h *Handler) {
	e.GET("/health", h.HandleHealth)
	api := e.Group("/api/placement")
	api.POST("/calculate", h.HandleCalculate)
}

// HandleHealth returns daemon status plus override-table stats.
func (h *Handler) HandleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":    "ok",
		"version":   h.version,
		"overrides": h.repo.Len(),
	})
}

// motionRequest is the wire form of one motion slot.
type motionRequest struct {
	Type        string  `json:"type"`
	Direction   string  `json:"direction"`
	Start       string  `json:"start"`
	End         string  `json:"end"`
	Turns       float64 `json:"turns"`
	Orientation string  `json:"orientation"`
}

// calculateRequest is the wire form of one frame.
type calculateRequest struct {
	Letter  string                    `json:"letter"`
	Motions map[string]*motionRequest `json:"motions"`
}

// placementResponse is the wire form of one resolved arrow.
type placementResponse struct {
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Rotation float64 `json:"rotation"`
	Mirrored bool    `json:"mirrored"`
}

// HandleCalculate resolves both arrows of a frame.
func (h *Handler) HandleCalculate(c echo.Context) error {
	var req calculateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed request body")
	}
	frame, err := req.toPictograph()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := frame.Validate(); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	out := make(map[string]placementResponse, 2)
	for color, pl := range h.engine.CalculateAll(frame) {
		out[color.String()] = placementResponse{
			X: pl.X, Y: pl.Y, Rotation: pl.Rotation, Mirrored: pl.Mirrored,
		}
	}
	return c.JSON(http.StatusOK, out)
}

// toPictograph decodes the wire frame onto domain values.
func (r *calculateRequest) toPictograph() (*motion.Pictograph, error) {
	p := motion.NewPictograph(r.Letter)
	for slot, mr := range r.Motions {
		if mr == nil {
			continue
		}
		color, err := parseColor(slot)
		if err != nil {
			return nil, err
		}
		m, err := mr.toMotion()
		if err != nil {
			return nil, fmt.Errorf("%s motion: %w", slot, err)
		}
		p.SetMotion(color, m)
	}
	return p, nil
}

// toMotion decodes one wire motion onto a domain Motion.
func (r *motionRequest) toMotion() (motion.Motion, error) {
	t, err := parseMotionType(r.Type)
	if err != nil {
		return motion.Motion{}, err
	}
	dir, err := parseDirection(r.Direction)
	if err != nil {
		return motion.Motion{}, err
	}
	start, err := parseLocation(r.Start)
	if err != nil {
		return motion.Motion{}, err
	}
	end, err := parseLocation(r.End)
	if err != nil {
		return motion.Motion{}, err
	}
	ori, err := parseOrientation(r.Orientation)
	if err != nil {
		return motion.Motion{}, err
	}
	return motion.NewMotion(t, dir, start, end, motion.Turns(r.Turns), ori), nil
}

func parseColor(s string) (motion.Color, error) {
	switch s {
	case "blue":
		return motion.Blue, nil
	case "red":
		return motion.Red, nil
	default:
		return 0, fmt.Errorf("unknown color %q", s)
	}
}

func parseMotionType(s string) (motion.MotionType, error) {
	switch s {
	case "static":
		return motion.Static, nil
	case "pro":
		return motion.Pro, nil
	case "anti":
		return motion.Anti, nil
	case "dash":
		return motion.Dash, nil
	case "float":
		return motion.Float, nil
	default:
		return 0, fmt.Errorf("unknown motion type %q", s)
	}
}

func parseDirection(s string) (motion.RotationDirection, error) {
	switch s {
	case "", "none":
		return motion.NoRotation, nil
	case "cw":
		return motion.Clockwise, nil
	case "ccw":
		return motion.CounterClockwise, nil
	default:
		return 0, fmt.Errorf("unknown rotation direction %q", s)
	}
}

func parseLocation(s string) (motion.Location, error) {
	switch s {
	case "n":
		return motion.N, nil
	case "ne":
		return motion.NE, nil
	case "e":
		return motion.E, nil
	case "se":
		return motion.SE, nil
	case "s":
		return motion.S, nil
	case "sw":
		return motion.SW, nil
	case "w":
		return motion.W, nil
	case "nw":
		return motion.NW, nil
	default:
		return 0, fmt.Errorf("unknown location %q", s)
	}
}

func parseOrientation(s string) (motion.Orientation, error) {
	switch s {
	case "in":
		return motion.In, nil
	case "out":
		return motion.Out, nil
	case "clock":
		return motion.Clock, nil
	case "counter":
		return motion.Counter, nil
	default:
		return 0, fmt.Errorf("unknown orientation %q", s)
	}
}
