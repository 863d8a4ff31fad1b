// Package workbook lê a planilha de vendas e elasticidades e exporta resumos em .xlsx
package workbook

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/price-impact-dashboard/internal/config"
	"github.com/vfg2006/price-impact-dashboard/internal/domain"
	"github.com/xuri/excelize/v2"
)

var (
	ErrWorkbookUnreadable = errors.New("workbook unreadable")
	ErrSheetNotFound      = errors.New("sheet not found")
	ErrColumnNotFound     = errors.New("required column not found")
	ErrInvalidNumber      = errors.New("invalid numeric cell")
)

// Source carrega as duas tabelas da planilha
type Source interface {
	Load() ([]domain.SalesRecord, []domain.PlanElasticity, error)
	Location() string
}

type ExcelSource struct {
	cfg config.Workbook
}

func NewExcelSource(cfg config.Workbook) Source {
	return &ExcelSource{cfg: cfg}
}

func (s *ExcelSource) Location() string {
	return s.cfg.Path
}

// Load abre o arquivo a cada chamada, para que uma recarga sempre leia o conteúdo atual
func (s *ExcelSource) Load() ([]domain.SalesRecord, []domain.PlanElasticity, error) {
	f, err := excelize.OpenFile(s.cfg.Path)
	if err != nil {
		return nil, nil, errors.Wrapf(ErrWorkbookUnreadable, "%s: %v", s.cfg.Path, err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			logrus.WithError(err).Warn("Erro ao fechar a planilha")
		}
	}()

	return Read(f, s.cfg)
}

// Read extrai vendas e elasticidades de uma planilha já aberta
func Read(f *excelize.File, cfg config.Workbook) ([]domain.SalesRecord, []domain.PlanElasticity, error) {
	sales, err := readSales(f, cfg)
	if err != nil {
		return nil, nil, err
	}

	plans, err := readPlanElasticities(f, cfg)
	if err != nil {
		return nil, nil, err
	}

	logrus.WithFields(logrus.Fields{
		"sales_rows": len(sales),
		"plan_rows":  len(plans),
	}).Debug("Planilha lida com sucesso")

	return sales, plans, nil
}

func readSales(f *excelize.File, cfg config.Workbook) ([]domain.SalesRecord, error) {
	sheet, err := openSheet(f, cfg.SalesSheet,
		cfg.BusinessChannelColumn, cfg.PlanTypeColumn, cfg.OriginalPriceColumn, cfg.SalesColumn)
	if err != nil {
		return nil, err
	}

	records := make([]domain.SalesRecord, 0, len(sheet.rows))
	for i, row := range sheet.rows {
		rowNumber := i + 2 // cabeçalho na linha 1
		if isBlank(row) {
			continue
		}

		// Sem preço ou quantidade a linha não entra no cálculo
		if sheet.text(row, cfg.OriginalPriceColumn) == "" || sheet.text(row, cfg.SalesColumn) == "" {
			logrus.WithFields(logrus.Fields{
				"sheet": sheet.name,
				"row":   rowNumber,
			}).Warn("Linha de vendas sem preço ou quantidade ignorada")
			continue
		}

		price, err := sheet.number(row, cfg.OriginalPriceColumn, rowNumber)
		if err != nil {
			return nil, err
		}

		sales, err := sheet.number(row, cfg.SalesColumn, rowNumber)
		if err != nil {
			return nil, err
		}

		records = append(records, domain.SalesRecord{
			BusinessChannel: sheet.text(row, cfg.BusinessChannelColumn),
			PlanType:        sheet.text(row, cfg.PlanTypeColumn),
			OriginalPrice:   price,
			Sales:           sales,
			Row:             rowNumber,
		})
	}

	return records, nil
}

func readPlanElasticities(f *excelize.File, cfg config.Workbook) ([]domain.PlanElasticity, error) {
	sheet, err := openSheet(f, cfg.PlanPricesSheet,
		cfg.BusinessChannelColumn, cfg.PlanTypeColumn, cfg.ElasticityColumn)
	if err != nil {
		return nil, err
	}

	plans := make([]domain.PlanElasticity, 0, len(sheet.rows))
	for i, row := range sheet.rows {
		rowNumber := i + 2
		if isBlank(row) {
			continue
		}

		plan := domain.PlanElasticity{
			BusinessChannel: sheet.text(row, cfg.BusinessChannelColumn),
			PlanType:        sheet.text(row, cfg.PlanTypeColumn),
			Row:             rowNumber,
		}

		// Célula vazia = elasticidade ausente; a linha é descartada na montagem do dataset
		if sheet.text(row, cfg.ElasticityColumn) != "" {
			elasticity, err := sheet.number(row, cfg.ElasticityColumn, rowNumber)
			if err != nil {
				return nil, err
			}
			plan.Elasticity = &elasticity
		}

		plans = append(plans, plan)
	}

	return plans, nil
}

type sheetData struct {
	name    string
	columns map[string]int
	rows    [][]string
}

func openSheet(f *excelize.File, name string, required ...string) (*sheetData, error) {
	index, err := f.GetSheetIndex(name)
	if err != nil || index == -1 {
		return nil, errors.Wrapf(ErrSheetNotFound, "aba %q", name)
	}

	rows, err := f.GetRows(name, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao ler a aba %q", name)
	}

	if len(rows) == 0 {
		return nil, errors.Wrapf(ErrColumnNotFound, "aba %q sem cabeçalho", name)
	}

	columns := make(map[string]int, len(rows[0]))
	for i, header := range rows[0] {
		header = strings.TrimSpace(header)
		if _, exists := columns[header]; !exists {
			columns[header] = i
		}
	}

	for _, column := range required {
		if _, ok := columns[column]; !ok {
			return nil, errors.Wrapf(ErrColumnNotFound, "aba %q, coluna %q", name, column)
		}
	}

	return &sheetData{name: name, columns: columns, rows: rows[1:]}, nil
}

// GetRows remove as células vazias do fim da linha, então índices além do tamanho são vazios
func (s *sheetData) text(row []string, column string) string {
	index := s.columns[column]
	if index >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[index])
}

func (s *sheetData) number(row []string, column string, rowNumber int) (float64, error) {
	raw := s.text(row, column)
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, errors.Wrapf(ErrInvalidNumber, "aba %q, linha %d, coluna %q: %q", s.name, rowNumber, column, raw)
	}
	return value, nil
}

func isBlank(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
