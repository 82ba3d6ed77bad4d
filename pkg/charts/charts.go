// Package charts draws the dashboard's SVG charts with draw2d.
package charts

import (
	"bytes"
	"encoding/xml"
	"image/color"

	"github.com/llgcode/draw2d"
	"github.com/llgcode/draw2d/draw2dsvg"
	"github.com/pkg/errors"
)

const (
	chartWidth   = 960.0
	chartHeight  = 420.0
	marginLeft   = 60.0
	marginBottom = 60.0
	marginTop    = 30.0
	barGap       = 10.0
)

// Bar is one labeled column.
type Bar struct {
	Label string
	Value float64
	Color color.RGBA
}

// BarChart renders labeled columns scaled to the tallest value.
func BarChart(title string, bars []Bar) ([]byte, error) {
	svg := draw2dsvg.NewSvg()
	svg.Width = "960px"
	svg.Height = "420px"
	gc := draw2dsvg.NewGraphicContext(svg)

	drawFrame(gc)

	maxValue := 0.0
	for _, bar := range bars {
		if bar.Value > maxValue {
			maxValue = bar.Value
		}
	}
	if maxValue > 0 && len(bars) > 0 {
		plotWidth := chartWidth - marginLeft - barGap
		plotHeight := chartHeight - marginTop - marginBottom
		barWidth := plotWidth/float64(len(bars)) - barGap

		for i, bar := range bars {
			x := marginLeft + float64(i)*(barWidth+barGap)
			height := plotHeight * bar.Value / maxValue
			y := chartHeight - marginBottom - height

			gc.SetFillColor(bar.Color)
			gc.SetStrokeColor(color.RGBA{0x33, 0x33, 0x33, 0xff})
			gc.SetLineWidth(1)
			gc.BeginPath()
			gc.MoveTo(x, y)
			gc.LineTo(x+barWidth, y)
			gc.LineTo(x+barWidth, chartHeight-marginBottom)
			gc.LineTo(x, chartHeight-marginBottom)
			gc.Close()
			gc.FillStroke()

			gc.SetFillColor(color.RGBA{0x11, 0x11, 0x11, 0xff})
			gc.SetFontSize(9)
			gc.FillStringAt(bar.Label, x, chartHeight-marginBottom+14)
		}
	}

	gc.SetFillColor(color.RGBA{0x11, 0x11, 0x11, 0xff})
	gc.SetFontSize(13)
	gc.FillStringAt(title, marginLeft, marginTop-10)

	b, err := xml.Marshal(svg)
	if err != nil {
		return nil, errors.Wrap(err, "marshalling chart svg")
	}
	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	buf.Write(b)
	return buf.Bytes(), nil
}

func drawFrame(gc draw2d.GraphicContext) {
	gc.SetStrokeColor(color.RGBA{0x88, 0x88, 0x88, 0xff})
	gc.SetLineWidth(1)
	gc.BeginPath()
	gc.MoveTo(marginLeft, marginTop)
	gc.LineTo(marginLeft, chartHeight-marginBottom)
	gc.LineTo(chartWidth-barGap, chartHeight-marginBottom)
	gc.Stroke()
}
