package chart

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/vfg2006/price-impact-dashboard/internal/domain"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

var (
	ErrEmptyChart     = errors.New("chart has no categories")
	ErrSeriesMismatch = errors.New("series length does not match categories")
)

// Dimensões padrão da imagem gerada
const (
	DefaultWidth  = 10 * vg.Inch
	DefaultHeight = 6 * vg.Inch
	barWidth      = vg.Length(28)
)

// RenderStackedBar desenha o gráfico de barras empilhadas em PNG. Cada série é empilhada
// sobre a anterior, na ordem em que aparece em data.Series.
func RenderStackedBar(w io.Writer, data domain.ChartData, width, height vg.Length) error {
	p, err := buildPlot(data)
	if err != nil {
		return err
	}

	writer, err := p.WriterTo(width, height, "png")
	if err != nil {
		return fmt.Errorf("erro ao preparar a imagem do gráfico: %w", err)
	}

	if _, err := writer.WriteTo(w); err != nil {
		return fmt.Errorf("erro ao escrever a imagem do gráfico: %w", err)
	}

	return nil
}

func buildPlot(data domain.ChartData) (*plot.Plot, error) {
	if len(data.Categories) == 0 {
		return nil, ErrEmptyChart
	}

	p := plot.New()
	p.Title.Text = data.Title
	p.X.Label.Text = domain.ChartXLabel
	p.Y.Label.Text = domain.ChartYLabel

	var previous *plotter.BarChart
	for _, series := range data.Series {
		if len(series.Values) != len(data.Categories) {
			return nil, fmt.Errorf("%w: %s tem %d valores para %d categorias",
				ErrSeriesMismatch, series.Name, len(series.Values), len(data.Categories))
		}

		bars, err := plotter.NewBarChart(plotter.Values(series.Values), barWidth)
		if err != nil {
			return nil, fmt.Errorf("erro ao criar a série %s: %w", series.Name, err)
		}
		bars.Color = series.Color
		bars.LineStyle.Width = vg.Length(0)

		if previous != nil {
			bars.StackOn(previous)
		}
		previous = bars

		p.Add(bars)
		p.Legend.Add(series.Name, bars)
	}

	p.Legend.Top = true
	p.NominalX(data.Categories...)

	// Rótulos do eixo X inclinados em 45 graus
	p.X.Tick.Label.Rotation = math.Pi / 4
	p.X.Tick.Label.XAlign = draw.XRight
	p.X.Tick.Label.YAlign = draw.YCenter

	return p, nil
}
