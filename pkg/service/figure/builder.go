package figure

import (
	"strings"

	"github.com/secmon-lab/materia/pkg/domain/model"
)

// Canvas geometry of the on-screen figure
const (
	CanvasWidth  = 850
	CanvasHeight = 620
)

const (
	markerSize    = 12
	markerOpacity = 1.0

	fontFamily = "Arial"
	fontColor  = "#333"

	xAxisTitle = "Financial Materiality (Risk or Opportunity)"
	yAxisTitle = "Impact Materiality"

	axisLineColor = "rgb(36,36,36)"

	wrapWordsPerLine = 4
)

// palette is the default qualitative color sequence of plotly express,
// assigned to sub-topic traces in order of first appearance.
var palette = []string{
	"#636efa", "#EF553B", "#00cc96", "#ab63fa", "#FFA15A",
	"#19d3f3", "#FF6692", "#B6E880", "#FF97FF", "#FECB52",
}

// Build maps a dataset to the materiality map figure: one scatter trace
// per wrapped sub-topic with risk on x and impact on y, under a fixed
// 850x620 layout with locked 0-5.1 axes. Build is pure; identical inputs
// always yield a deep-equal figure.
func Build(ds *model.Dataset, company string) *model.Figure {
	type series struct {
		name  string
		x     []float64
		y     []float64
		names []string
	}

	var order []string
	groups := map[string]*series{}
	for _, item := range ds.Items {
		label := WrapLabel(item.SubTopic)
		grp, ok := groups[label]
		if !ok {
			grp = &series{name: label}
			groups[label] = grp
			order = append(order, label)
		}
		grp.x = append(grp.x, item.Risk)
		grp.y = append(grp.y, item.Impact)
		grp.names = append(grp.names, item.Name)
	}

	traces := make([]model.Trace, 0, len(order))
	for i, label := range order {
		grp := groups[label]
		traces = append(traces, model.Trace{
			Type: "scatter",
			Mode: "markers",
			Name: grp.name,
			X:    grp.x,
			Y:    grp.y,
			Text: grp.names,
			HoverTemplate: "<b>%{text}</b><br><br>Sub-Topic=" + grp.name +
				"<br>Risk=%{x}<br>Impact=%{y}<extra></extra>",
			Marker: &model.Marker{
				Size:    markerSize,
				Opacity: markerOpacity,
				Color:   palette[i%len(palette)],
				Line:    model.MarkerLine{Width: 0},
			},
		})
	}

	return &model.Figure{
		Data:   traces,
		Layout: mapLayout(Title(company)),
	}
}

// Title returns the figure title, bold-marked for the browser renderer.
func Title(company string) string {
	if company != "" {
		return "<b>" + company + " : Double Materiality Map</b>"
	}
	return "<b>Double Materiality Map</b>"
}

// WrapLabel compacts a sub-topic label for the legend: underscores become
// spaces and a line break is inserted every 4 words.
func WrapLabel(text string) string {
	words := strings.Fields(strings.ReplaceAll(text, "_", " "))

	var lines []string
	for i := 0; i < len(words); i += wrapWordsPerLine {
		end := min(i+wrapWordsPerLine, len(words))
		lines = append(lines, strings.Join(words[i:end], " "))
	}
	return strings.Join(lines, "<br>")
}

// ErrorFigure returns a figure whose only content is the given title.
// Parse and schema failures surface to the user this way instead of as
// an error response.
func ErrorFigure(title string) *model.Figure {
	return &model.Figure{
		Data: []model.Trace{},
		Layout: model.Layout{
			Title: model.Title{Text: title},
		},
	}
}

func mapLayout(title string) model.Layout {
	return model.Layout{
		Title: model.Title{
			Text: title,
			Font: &model.Font{Size: 20, Family: fontFamily, Color: fontColor},
			X:    0.25,
		},
		Width:        CanvasWidth,
		Height:       CanvasHeight,
		Autosize:     false,
		Margin:       &model.Margin{L: 40, R: 40, T: 60, B: 60},
		Font:         &model.Font{Size: 18, Family: fontFamily, Color: fontColor},
		UIRevision:   "static",
		PlotBGColor:  "white",
		PaperBGColor: "white",
		Legend: &model.Legend{
			Font: model.Font{Size: 18},
			Title: model.LegendTitle{
				Text: "<b>Sub-Topic<br>",
				Font: model.Font{Size: 19},
				Side: "top",
			},
			X:       1.1,
			XAnchor: "left",
			Y:       1.0,
			YAnchor: "top",
		},
		XAxis: xAxis(),
		YAxis: yAxis(),
	}
}

// xAxis and yAxis return fresh values so no two figures share tick
// slices.

func xAxis() *model.Axis {
	ax := baseAxis(xAxisTitle)
	ax.GridWidth = 0.5
	ax.ScaleAnchor = "y"
	return ax
}

func yAxis() *model.Axis {
	ax := baseAxis(yAxisTitle)
	ax.GridWidth = 1
	return ax
}

func baseAxis(title string) *model.Axis {
	return &model.Axis{
		Title:      model.Title{Text: title},
		Range:      []float64{0, 5.1},
		FixedRange: true,
		TickMode:   "array",
		TickVals:   []float64{1, 2, 3, 4, 5},
		TickText:   []string{"1", "2", "3", "4", "5"},
		GridColor:  "lightgray",
		ShowGrid:   true,
		ShowLine:   true,
		LineColor:  axisLineColor,
		Ticks:      "outside",
		TickColor:  axisLineColor,
		ZeroLine:   false,
		Layer:      "below traces",
	}
}
