package figure_test

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/materia/pkg/domain/model"
	"github.com/secmon-lab/materia/pkg/service/figure"
)

func sampleDataset() *model.Dataset {
	return model.NewDataset([]model.MaterialityItem{
		{Name: "Energy Efficiency", Impact: 4, Risk: 5, SubTopic: "Environmental"},
		{Name: "Labor Practices", Impact: 5, Risk: 4, SubTopic: "Social"},
		{Name: "Water Use", Impact: 3, Risk: 2, SubTopic: "Environmental"},
		{Name: "Board Independence", Impact: 1, Risk: 1, SubTopic: "Governance"},
	})
}

func TestBuildDeterministic(t *testing.T) {
	ds := sampleDataset()

	a := figure.Build(ds, "Acme")
	b := figure.Build(ds, "Acme")

	gt.Value(t, a).Equal(b)
	gt.Value(t, a.Layout.Title.Text).Equal(b.Layout.Title.Text)
	gt.Value(t, a.Layout.XAxis.Range).Equal(b.Layout.XAxis.Range)
	gt.Number(t, a.TraceCount()).Equal(b.TraceCount())
	gt.Number(t, a.PointCount()).Equal(b.PointCount())
}

func TestBuildTitle(t *testing.T) {
	ds := sampleDataset()

	t.Run("with company name", func(t *testing.T) {
		fig := figure.Build(ds, "Acme")
		gt.Value(t, fig.Layout.Title.Text).Equal("<b>Acme : Double Materiality Map</b>")
	})

	t.Run("without company name", func(t *testing.T) {
		fig := figure.Build(ds, "")
		gt.Value(t, fig.Layout.Title.Text).Equal("<b>Double Materiality Map</b>")
	})
}

func TestBuildAxes(t *testing.T) {
	fig := figure.Build(sampleDataset(), "")

	gt.Value(t, fig.Layout.XAxis.Range).Equal([]float64{0, 5.1})
	gt.Value(t, fig.Layout.YAxis.Range).Equal([]float64{0, 5.1})
	gt.B(t, fig.Layout.XAxis.FixedRange).True()
	gt.B(t, fig.Layout.YAxis.FixedRange).True()
	gt.Value(t, fig.Layout.XAxis.TickVals).Equal([]float64{1, 2, 3, 4, 5})
	gt.Value(t, fig.Layout.XAxis.Title.Text).Equal("Financial Materiality (Risk or Opportunity)")
	gt.Value(t, fig.Layout.YAxis.Title.Text).Equal("Impact Materiality")
	gt.Value(t, fig.Layout.Width).Equal(850)
	gt.Value(t, fig.Layout.Height).Equal(620)
}

func TestBuildAxesIgnoreDataRange(t *testing.T) {
	ds := model.NewDataset([]model.MaterialityItem{
		{Name: "Off the chart", Impact: 9, Risk: -3, SubTopic: "Environmental"},
	})

	fig := figure.Build(ds, "")

	// Values pass through unclamped; only the display range is fixed.
	gt.Value(t, fig.Layout.XAxis.Range).Equal([]float64{0, 5.1})
	gt.Value(t, fig.Layout.YAxis.Range).Equal([]float64{0, 5.1})
	gt.Value(t, fig.Data[0].X).Equal([]float64{-3})
	gt.Value(t, fig.Data[0].Y).Equal([]float64{9})
}

func TestBuildTraces(t *testing.T) {
	fig := figure.Build(sampleDataset(), "")

	gt.Number(t, fig.TraceCount()).Equal(3)
	gt.Number(t, fig.PointCount()).Equal(4)

	// First-appearance order of sub-topics
	gt.Value(t, fig.Data[0].Name).Equal("Environmental")
	gt.Value(t, fig.Data[1].Name).Equal("Social")
	gt.Value(t, fig.Data[2].Name).Equal("Governance")

	// Risk on x, impact on y, item names as hover text
	gt.Value(t, fig.Data[0].X).Equal([]float64{5, 2})
	gt.Value(t, fig.Data[0].Y).Equal([]float64{4, 3})
	gt.Value(t, fig.Data[0].Text).Equal([]string{"Energy Efficiency", "Water Use"})

	// Stable palette assignment
	gt.Value(t, fig.Data[0].Marker.Color).Equal("#636efa")
	gt.Value(t, fig.Data[1].Marker.Color).Equal("#EF553B")
	gt.Value(t, fig.Data[2].Marker.Color).Equal("#00cc96")
	gt.Value(t, fig.Data[0].Marker.Size).Equal(12)
	gt.Value(t, fig.Data[0].Marker.Line.Width).Equal(0)
}

func TestBuildGroupsByWrappedLabel(t *testing.T) {
	ds := model.NewDataset([]model.MaterialityItem{
		{Name: "A", Impact: 1, Risk: 1, SubTopic: "Climate_Risk"},
		{Name: "B", Impact: 2, Risk: 2, SubTopic: "Climate Risk"},
	})

	fig := figure.Build(ds, "")

	gt.Number(t, fig.TraceCount()).Equal(1)
	gt.Value(t, fig.Data[0].Name).Equal("Climate Risk")
	gt.Number(t, len(fig.Data[0].X)).Equal(2)
}

func TestWrapLabel(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "six words wrap after four",
			input: "Climate_Risk_Strategy_And_Governance_Topics",
			want:  "Climate Risk Strategy And<br>Governance Topics",
		},
		{
			name:  "short label unchanged",
			input: "Environmental",
			want:  "Environmental",
		},
		{
			name:  "four words stay on one line",
			input: "One_Two_Three_Four",
			want:  "One Two Three Four",
		},
		{
			name:  "five words spill one",
			input: "One Two Three Four Five",
			want:  "One Two Three Four<br>Five",
		},
		{
			name:  "empty label",
			input: "",
			want:  "",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			gt.Value(t, figure.WrapLabel(tc.input)).Equal(tc.want)
		})
	}
}

func TestErrorFigure(t *testing.T) {
	fig := figure.ErrorFigure("Error reading file: boom")

	gt.Number(t, fig.TraceCount()).Equal(0)
	gt.Value(t, fig.Layout.Title.Text).Equal("Error reading file: boom")
	gt.Value(t, fig.Layout.XAxis).Nil()
}

func TestStripMarkup(t *testing.T) {
	gt.Value(t, figure.StripMarkup("<b>Acme : Double Materiality Map</b>")).
		Equal("Acme : Double Materiality Map")
	gt.Value(t, figure.StripMarkup("Climate Risk Strategy And<br>Governance Topics")).
		Equal("Climate Risk Strategy And Governance Topics")
	gt.Value(t, figure.StripMarkup("<b>Sub-Topic<br>")).Equal("Sub-Topic")
}

func TestRenderPNG(t *testing.T) {
	fig := figure.Build(sampleDataset(), "Acme")

	data, err := figure.RenderPNG(fig, figure.ExportWidth, figure.ExportHeight, figure.ExportScale)
	gt.NoError(t, err).Required()

	img, err := png.DecodeConfig(bytes.NewReader(data))
	gt.NoError(t, err).Required()
	gt.Number(t, img.Width).Equal(1800)
	gt.Number(t, img.Height).Equal(1200)
}

func TestRenderPNGErrorFigure(t *testing.T) {
	data, err := figure.RenderPNG(figure.ErrorFigure("Error reading file: boom"), 900, 600, 1)
	gt.NoError(t, err).Required()
	gt.B(t, len(data) > 0).True()
}
