package workbook

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/price-impact-dashboard/internal/domain"
	"github.com/xuri/excelize/v2"
)

const (
	SummarySheet    = "Summary"
	ParametersSheet = "Parameters"
)

var summaryHeaders = []interface{}{
	"Business Channel",
	"Plan Type",
	"Total_Original_Sales",
	"Total_New_Sales",
	"Total_Original_Revenue",
	"Total_New_Revenue",
	"Sales_Impact",
	"Revenue_Impact",
}

// WriteSummary grava o resumo por segmento em uma planilha .xlsx
func WriteSummary(w io.Writer, table domain.SummaryTable) error {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			logrus.WithError(err).Warn("Erro ao fechar a planilha exportada")
		}
	}()

	if err := f.SetSheetName("Sheet1", SummarySheet); err != nil {
		return errors.Wrap(err, "erro ao renomear a aba de resumo")
	}

	if err := f.SetSheetRow(SummarySheet, "A1", &summaryHeaders); err != nil {
		return errors.Wrap(err, "erro ao escrever o cabeçalho")
	}

	for i, row := range table.Rows {
		values := []interface{}{
			row.BusinessChannel,
			row.PlanType,
			row.TotalOriginalSales,
			row.TotalNewSales,
			row.TotalOriginalRevenue,
			row.TotalNewRevenue,
			row.SalesImpact,
			row.RevenueImpact,
		}
		if err := f.SetSheetRow(SummarySheet, fmt.Sprintf("A%d", i+2), &values); err != nil {
			return errors.Wrapf(err, "erro ao escrever a linha %d", i+2)
		}
	}

	if err := f.SetColWidth(SummarySheet, "A", "H", 22); err != nil {
		return errors.Wrap(err, "erro ao ajustar colunas")
	}

	if _, err := f.NewSheet(ParametersSheet); err != nil {
		return errors.Wrap(err, "erro ao criar a aba de parâmetros")
	}

	parameters := []interface{}{"Price Change", table.PriceChange}
	if err := f.SetSheetRow(ParametersSheet, "A1", &parameters); err != nil {
		return errors.Wrap(err, "erro ao escrever os parâmetros")
	}

	if err := f.Write(w); err != nil {
		return errors.Wrap(err, "erro ao gravar a planilha")
	}

	return nil
}
