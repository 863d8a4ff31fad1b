package domain

import "image/color"

// Títulos e cores do gráfico de barras empilhadas
const (
	ChartTitle  = "Impact of Price Change on Sales and Revenue"
	ChartXLabel = "Business Channel - Plan Type"
	ChartYLabel = "Impact"
)

var (
	ColorIndianRed   = color.RGBA{R: 205, G: 92, B: 92, A: 255}
	ColorLightSalmon = color.RGBA{R: 255, G: 160, B: 122, A: 255}
	ColorLightBlue   = color.RGBA{R: 173, G: 216, B: 230, A: 255}
	ColorBlue        = color.RGBA{R: 0, G: 0, B: 255, A: 255}
)

// ChartSeries é uma série do gráfico, com um valor por categoria
type ChartSeries struct {
	Name   string     `json:"name"`
	Color  color.RGBA `json:"-"`
	Values []float64  `json:"values"`
}

// ChartData descreve o gráfico de barras empilhadas. As quatro séries misturam unidades
// (vendas e receita) no mesmo eixo.
type ChartData struct {
	Title      string        `json:"title"`
	Categories []string      `json:"categories"`
	Series     []ChartSeries `json:"series"`
}

// BuildChartData monta as séries Original Sales, Sales Impact, Original Revenue e Revenue Impact
func BuildChartData(rows []ChannelPlanSummary) ChartData {
	categories := make([]string, len(rows))
	originalSales := make([]float64, len(rows))
	salesImpact := make([]float64, len(rows))
	originalRevenue := make([]float64, len(rows))
	revenueImpact := make([]float64, len(rows))

	for i, row := range rows {
		categories[i] = row.Key().Label()
		originalSales[i] = row.TotalOriginalSales
		salesImpact[i] = row.SalesImpact
		originalRevenue[i] = row.TotalOriginalRevenue
		revenueImpact[i] = row.RevenueImpact
	}

	return ChartData{
		Title:      ChartTitle,
		Categories: categories,
		Series: []ChartSeries{
			{Name: "Original Sales", Color: ColorIndianRed, Values: originalSales},
			{Name: "Sales Impact", Color: ColorLightSalmon, Values: salesImpact},
			{Name: "Original Revenue", Color: ColorLightBlue, Values: originalRevenue},
			{Name: "Revenue Impact", Color: ColorBlue, Values: revenueImpact},
		},
	}
}
