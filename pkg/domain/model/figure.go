package model

// Figure is the chart description handed to the browser. The shape follows
// the Plotly figure document (data + layout) so the embedded frontend can
// pass it to Plotly.newPlot unchanged, and the PNG renderer reads the same
// value for the export path. Building a figure is deterministic: the same
// dataset and company name always produce a deep-equal Figure.
type Figure struct {
	Data   []Trace `json:"data"`
	Layout Layout  `json:"layout"`
}

// Trace is one scatter series: all items of one sub-topic
type Trace struct {
	Type          string    `json:"type"`
	Mode          string    `json:"mode,omitempty"`
	Name          string    `json:"name,omitempty"`
	X             []float64 `json:"x"`
	Y             []float64 `json:"y"`
	Text          []string  `json:"text,omitempty"`
	HoverTemplate string    `json:"hovertemplate,omitempty"`
	Marker        *Marker   `json:"marker,omitempty"`
}

// Marker holds the point styling of a trace
type Marker struct {
	Size    float64    `json:"size"`
	Opacity float64    `json:"opacity"`
	Color   string     `json:"color"`
	Line    MarkerLine `json:"line"`
}

// MarkerLine is the outline of a marker; width 0 means no outline
type MarkerLine struct {
	Width float64 `json:"width"`
}

// Layout holds title, canvas geometry, fonts, legend and axes
type Layout struct {
	Title        Title   `json:"title"`
	Width        int     `json:"width,omitempty"`
	Height       int     `json:"height,omitempty"`
	Autosize     bool    `json:"autosize"`
	Margin       *Margin `json:"margin,omitempty"`
	Font         *Font   `json:"font,omitempty"`
	UIRevision   string  `json:"uirevision,omitempty"`
	PlotBGColor  string  `json:"plot_bgcolor,omitempty"`
	PaperBGColor string  `json:"paper_bgcolor,omitempty"`
	Legend       *Legend `json:"legend,omitempty"`
	XAxis        *Axis   `json:"xaxis,omitempty"`
	YAxis        *Axis   `json:"yaxis,omitempty"`
}

// Title is a figure or axis title. Text may carry the <b>/<br> markup the
// browser renderer understands; the PNG renderer strips it.
type Title struct {
	Text string  `json:"text"`
	Font *Font   `json:"font,omitempty"`
	X    float64 `json:"x,omitempty"`
}

// Font describes text styling
type Font struct {
	Size   float64 `json:"size,omitempty"`
	Family string  `json:"family,omitempty"`
	Color  string  `json:"color,omitempty"`
}

// Margin is the canvas margin in pixels
type Margin struct {
	L int `json:"l"`
	R int `json:"r"`
	T int `json:"t"`
	B int `json:"b"`
}

// Legend places the sub-topic legend outside the plot area
type Legend struct {
	Font    Font        `json:"font"`
	Title   LegendTitle `json:"title"`
	X       float64     `json:"x"`
	XAnchor string      `json:"xanchor"`
	Y       float64     `json:"y"`
	YAnchor string      `json:"yanchor"`
}

// LegendTitle is the heading above the legend entries
type LegendTitle struct {
	Text string `json:"text"`
	Font Font   `json:"font"`
	Side string `json:"side"`
}

// Axis is a fixed, non-zoomable axis with constant ticks. ShowLine,
// LineColor, Ticks, TickColor and ZeroLine spell out the white-background
// axis look that plotly.py gets from its simple_white template; plotly.js
// cannot resolve template names, so the values are inlined here.
type Axis struct {
	Title       Title     `json:"title"`
	Range       []float64 `json:"range"`
	FixedRange  bool      `json:"fixedrange"`
	TickMode    string    `json:"tickmode"`
	TickVals    []float64 `json:"tickvals"`
	TickText    []string  `json:"ticktext"`
	GridColor   string    `json:"gridcolor"`
	GridWidth   float64   `json:"gridwidth"`
	ShowGrid    bool      `json:"showgrid"`
	ShowLine    bool      `json:"showline"`
	LineColor   string    `json:"linecolor,omitempty"`
	Ticks       string    `json:"ticks,omitempty"`
	TickColor   string    `json:"tickcolor,omitempty"`
	ZeroLine    bool      `json:"zeroline"`
	ScaleAnchor string    `json:"scaleanchor,omitempty"`
	Layer       string    `json:"layer,omitempty"`
}

// TraceCount returns the number of series in the figure
func (f *Figure) TraceCount() int {
	return len(f.Data)
}

// PointCount returns the total number of plotted points across all traces
func (f *Figure) PointCount() int {
	var n int
	for _, tr := range f.Data {
		n += len(tr.X)
	}
	return n
}
