// Package render rasterizes DOT text to SVG or PNG using the embedded
// Graphviz port from [github.com/goccy/go-graphviz], so emitted graphs
// can be turned into images without shelling out to the dot binary.
package render

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/goccy/go-graphviz"
)

// Renderer rasterizes DOT text. It is stateless except for the logger;
// each call constructs and closes its own Graphviz handle, so multiple
// goroutines can safely share one Renderer.
type Renderer struct {
	Logger *log.Logger
}

// New creates a renderer. If logger is nil, the default logger is used.
func New(logger *log.Logger) *Renderer {
	if logger == nil {
		logger = log.Default()
	}
	return &Renderer{Logger: logger}
}

// SVG lays out the DOT text and renders it to SVG bytes.
func (r *Renderer) SVG(ctx context.Context, dot []byte) ([]byte, error) {
	return r.render(ctx, dot, graphviz.SVG)
}

// PNG lays out the DOT text and renders it to PNG bytes.
func (r *Renderer) PNG(ctx context.Context, dot []byte) ([]byte, error) {
	return r.render(ctx, dot, graphviz.PNG)
}

func (r *Renderer) render(ctx context.Context, dot []byte, format graphviz.Format) ([]byte, error) {
	start := time.Now()

	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes(dot)
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, fmt.Errorf("render %s: %w", format, err)
	}

	r.Logger.Debug("rendered graph",
		"format", format,
		"dot_bytes", len(dot),
		"out_bytes", buf.Len(),
		"duration", time.Since(start))

	return buf.Bytes(), nil
}
