package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/price-impact-dashboard/infrastructure/repository"
	"github.com/vfg2006/price-impact-dashboard/infrastructure/workbook"
	"github.com/vfg2006/price-impact-dashboard/internal/config"
	"github.com/vfg2006/price-impact-dashboard/internal/domain"
	"github.com/vfg2006/price-impact-dashboard/internal/usecases/analyzing"
	"github.com/vfg2006/price-impact-dashboard/pkg/utils"
)

// Gera no terminal o mesmo relatório do dashboard para PRICE_CHANGE_DEFAULT
func main() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
	logrus.SetOutput(os.Stderr)

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	if level, err := logrus.ParseLevel(cfg.App.LogLevel); err == nil {
		logrus.SetLevel(level)
	}

	datasetRepo := repository.NewDatasetRepository(workbook.NewExcelSource(cfg.Workbook))
	if _, err := datasetRepo.Reload(); err != nil {
		logrus.WithError(err).WithField("path", cfg.Workbook.Path).Fatal("Erro ao carregar a planilha")
	}

	analysis, err := analyzing.NewService(cfg, datasetRepo).Analyze(cfg.PriceChange.Default)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao calcular a análise")
	}

	printReport(os.Stdout, analysis)
}

func printReport(out io.Writer, analysis *domain.Analysis) {
	fmt.Fprintln(out, analysis.Title)
	fmt.Fprintln(out)
	fmt.Fprintln(out, domain.SummaryHeading)

	t := table.NewWriter()
	t.SetOutputMirror(out)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{
		"Business Channel", "Plan Type",
		"Total_Original_Sales", "Total_New_Sales",
		"Total_Original_Revenue", "Total_New_Revenue",
		"Sales_Impact", "Revenue_Impact",
	})

	var totalSalesImpact, totalRevenueImpact float64
	for _, row := range analysis.Summary {
		t.AppendRow(table.Row{
			row.BusinessChannel,
			row.PlanType,
			utils.FormatNumber(row.TotalOriginalSales),
			utils.FormatNumber(row.TotalNewSales),
			utils.FormatMoney(row.TotalOriginalRevenue),
			utils.FormatMoney(row.TotalNewRevenue),
			utils.FormatNumber(row.SalesImpact),
			utils.FormatMoney(row.RevenueImpact),
		})
		totalSalesImpact += row.SalesImpact
		totalRevenueImpact += row.RevenueImpact
	}

	t.AppendFooter(table.Row{
		"Total", "", "", "", "", "",
		utils.FormatNumber(totalSalesImpact),
		utils.FormatMoney(totalRevenueImpact),
	})

	numeric := make([]table.ColumnConfig, 0, 6)
	for col := 3; col <= 8; col++ {
		numeric = append(numeric, table.ColumnConfig{Number: col, Align: text.AlignRight, AlignFooter: text.AlignRight})
	}
	t.SetColumnConfigs(numeric)
	t.Render()

	if len(analysis.Explanations) > 0 {
		fmt.Fprintln(out)
		fmt.Fprintln(out, domain.SampleAnalysisHeading(analysis.PriceChange))
	}

	for _, explanation := range analysis.Explanations {
		fmt.Fprintln(out)
		fmt.Fprintln(out, explanation.Segment)
		fmt.Fprintf(out, "  Elasticity: %s\n", explanation.ElasticityText)
		fmt.Fprintf(out, "  Impact: %s\n", explanation.ImpactText)
	}

	if len(analysis.DroppedSegments) > 0 {
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Segments without elasticity (excluded):")
		for _, segment := range analysis.DroppedSegments {
			fmt.Fprintf(out, "  - %s\n", segment.Label())
		}
	}
}
