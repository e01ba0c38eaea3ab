package figure

import (
	"bytes"
	"image/color"
	"strconv"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/materia/pkg/domain/model"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// Export geometry: 900x600 logical pixels rendered at 2x scale
const (
	ExportWidth  = 900
	ExportHeight = 600
	ExportScale  = 2
)

const baseDPI = 72

var lightGray = color.RGBA{R: 211, G: 211, B: 211, A: 255}

// RenderPNG rasterizes a figure to PNG bytes. Width and height are
// logical pixels; scale multiplies the render DPI, so widthPx=900 with
// scale=2 yields an 1800px wide image. The renderer reads the same
// figure document the browser gets: title and legend markup is stripped,
// axis ranges and constant ticks are applied as-is.
func RenderPNG(fig *model.Figure, widthPx, heightPx, scale int) ([]byte, error) {
	if scale < 1 {
		scale = 1
	}

	p := plot.New()
	p.Title.Text = StripMarkup(fig.Layout.Title.Text)
	p.Title.TextStyle.Font.Size = vg.Points(20)
	p.Title.Padding = vg.Points(8)
	p.BackgroundColor = color.White

	applyAxis(&p.X, fig.Layout.XAxis)
	applyAxis(&p.Y, fig.Layout.YAxis)

	if grid := buildGrid(fig.Layout.XAxis, fig.Layout.YAxis); grid != nil {
		p.Add(grid)
	}

	for _, tr := range fig.Data {
		xys := make(plotter.XYs, len(tr.X))
		for i := range tr.X {
			xys[i].X = tr.X[i]
			xys[i].Y = tr.Y[i]
		}

		s, err := plotter.NewScatter(xys)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to build scatter trace",
				goerr.V("trace", tr.Name),
			)
		}
		s.GlyphStyle.Shape = draw.CircleGlyph{}
		s.GlyphStyle.Radius = vg.Points(6)
		if tr.Marker != nil {
			s.GlyphStyle.Color = parseHexColor(tr.Marker.Color)
			s.GlyphStyle.Radius = vg.Points(tr.Marker.Size / 2)
		}

		p.Add(s)
		if tr.Name != "" {
			p.Legend.Add(StripMarkup(tr.Name), s)
		}
	}

	p.Legend.Top = true
	p.Legend.TextStyle.Font.Size = vg.Points(14)
	p.Legend.Padding = vg.Points(2)

	c := vgimg.NewWith(
		vgimg.UseWH(vg.Points(float64(widthPx)), vg.Points(float64(heightPx))),
		vgimg.UseDPI(baseDPI*scale),
	)
	p.Draw(draw.New(c))

	var buf bytes.Buffer
	if _, err := (vgimg.PngCanvas{Canvas: c}).WriteTo(&buf); err != nil {
		return nil, goerr.Wrap(err, "failed to encode PNG")
	}
	return buf.Bytes(), nil
}

// StripMarkup removes the bold and line-break tags that only the browser
// renderer understands.
func StripMarkup(s string) string {
	r := strings.NewReplacer("<b>", "", "</b>", "", "<br>", " ")
	return strings.TrimSpace(r.Replace(s))
}

func applyAxis(ax *plot.Axis, cfg *model.Axis) {
	if cfg == nil {
		return
	}

	ax.Label.Text = StripMarkup(cfg.Title.Text)
	ax.Label.TextStyle.Font.Size = vg.Points(14)
	ax.Tick.Label.Font.Size = vg.Points(12)

	if len(cfg.Range) == 2 {
		ax.Min = cfg.Range[0]
		ax.Max = cfg.Range[1]
	}

	if len(cfg.TickVals) > 0 {
		ticks := make([]plot.Tick, 0, len(cfg.TickVals))
		for i, v := range cfg.TickVals {
			label := ""
			if i < len(cfg.TickText) {
				label = cfg.TickText[i]
			}
			ticks = append(ticks, plot.Tick{Value: v, Label: label})
		}
		ax.Tick.Marker = plot.ConstantTicks(ticks)
	}
}

// buildGrid reproduces the axis gridlines: vertical lines follow the
// x-axis width, horizontal lines the y-axis width.
func buildGrid(x, y *model.Axis) *plotter.Grid {
	if x == nil && y == nil {
		return nil
	}

	grid := plotter.NewGrid()
	grid.Vertical.Color = lightGray
	grid.Horizontal.Color = lightGray
	if x != nil {
		if !x.ShowGrid {
			grid.Vertical.Width = 0
		} else {
			grid.Vertical.Width = vg.Points(x.GridWidth)
		}
	}
	if y != nil {
		if !y.ShowGrid {
			grid.Horizontal.Width = 0
		} else {
			grid.Horizontal.Width = vg.Points(y.GridWidth)
		}
	}
	return grid
}

func parseHexColor(s string) color.Color {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 {
		return color.Black
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.Black
	}
	return color.RGBA{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
		A: 255,
	}
}
