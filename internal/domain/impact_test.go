package domain

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const epsilon = 1e-9

func floatPtr(v float64) *float64 {
	return &v
}

func TestApplyPriceChange_FormulaEResultado(t *testing.T) {
	tests := []struct {
		name        string
		record      JoinedRecord
		priceChange float64
		validate    func(t *testing.T, got JoinedRecord)
	}{
		{
			name: "Variação zero mantém preço, vendas e receita originais",
			record: JoinedRecord{
				SalesRecord: SalesRecord{BusinessChannel: "Retail", PlanType: "Basic", OriginalPrice: 49.9, Sales: 320},
				Elasticity:  -0.035,
			},
			priceChange: 0,
			validate: func(t *testing.T, got JoinedRecord) {
				assert.Equal(t, 49.9, got.NewPrice)
				assert.Equal(t, 0.0, got.SalesChange)
				assert.Equal(t, 320.0, got.NewSales)
				assert.InDelta(t, 320*49.9, got.NewRevenue, epsilon)
			},
		},
		{
			name: "Exemplo Retail/Basic com aumento de $10",
			record: JoinedRecord{
				SalesRecord: SalesRecord{BusinessChannel: "Retail", PlanType: "Basic", OriginalPrice: 100, Sales: 1000},
				Elasticity:  -0.01,
			},
			priceChange: 10,
			validate: func(t *testing.T, got JoinedRecord) {
				assert.Equal(t, 110.0, got.NewPrice)
				assert.InDelta(t, -0.10, got.SalesChange, epsilon)
				assert.InDelta(t, 900, got.NewSales, epsilon)
				assert.InDelta(t, 99000, got.NewRevenue, 1e-6)
			},
		},
		{
			name: "Variação de vendas abaixo de -1 gera vendas negativas sem limite",
			record: JoinedRecord{
				SalesRecord: SalesRecord{BusinessChannel: "Online", PlanType: "Pro", OriginalPrice: 30, Sales: 500},
				Elasticity:  -0.2,
			},
			priceChange: 10,
			validate: func(t *testing.T, got JoinedRecord) {
				assert.InDelta(t, -2.0, got.SalesChange, epsilon)
				assert.InDelta(t, -500, got.NewSales, epsilon)
				assert.InDelta(t, -500*40, got.NewRevenue, 1e-6)
			},
		},
		{
			name: "Elasticidade positiva aumenta as vendas",
			record: JoinedRecord{
				SalesRecord: SalesRecord{BusinessChannel: "Partner", PlanType: "Premium", OriginalPrice: 80, Sales: 200},
				Elasticity:  0.015,
			},
			priceChange: -4.5,
			validate: func(t *testing.T, got JoinedRecord) {
				assert.Equal(t, 75.5, got.NewPrice)
				assert.InDelta(t, 200*(1+0.015*-4.5), got.NewSales, epsilon)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			original := tt.record
			result := ApplyPriceChange([]JoinedRecord{tt.record}, tt.priceChange)

			require.Len(t, result, 1)
			tt.validate(t, result[0])
			assert.Equal(t, original, tt.record, "o registro de entrada não deve ser alterado")
		})
	}
}

func TestApplyPriceChange_NovasVendasSeguemFormula(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	records := make([]JoinedRecord, 0, 50)
	for i := 0; i < 50; i++ {
		records = append(records, JoinedRecord{
			SalesRecord: SalesRecord{OriginalPrice: rng.Float64() * 200, Sales: rng.Float64() * 5000},
			Elasticity:  rng.Float64()*0.1 - 0.05,
		})
	}

	for _, priceChange := range []float64{-20, -7.5, 0.5, 12, 20} {
		result := ApplyPriceChange(records, priceChange)
		for i, got := range result {
			expected := records[i].Sales * (1 + records[i].Elasticity*priceChange)
			assert.InDelta(t, expected, got.NewSales, epsilon)
			assert.InDelta(t, expected*(records[i].OriginalPrice+priceChange), got.NewRevenue, 1e-6)
		}
	}
}

func TestComputeSummary_ExemploPontaAPonta(t *testing.T) {
	dataset := NewDataset(
		[]SalesRecord{{BusinessChannel: "Retail", PlanType: "Basic", OriginalPrice: 100, Sales: 1000}},
		[]PlanElasticity{{BusinessChannel: "Retail", PlanType: "Basic", Elasticity: floatPtr(-0.01)}},
	)

	table := ComputeSummary(dataset, 10)

	require.Len(t, table.Rows, 1)
	row := table.Rows[0]
	assert.Equal(t, 10.0, table.PriceChange)
	assert.Equal(t, "Retail", row.BusinessChannel)
	assert.Equal(t, "Basic", row.PlanType)
	assert.InDelta(t, 1000, row.TotalOriginalSales, epsilon)
	assert.InDelta(t, 900, row.TotalNewSales, epsilon)
	assert.InDelta(t, 100000, row.TotalOriginalRevenue, epsilon)
	assert.InDelta(t, 99000, row.TotalNewRevenue, 1e-6)
	assert.InDelta(t, -100, row.SalesImpact, epsilon)
	assert.InDelta(t, -1000, row.RevenueImpact, 1e-6)
}

func TestComputeSummary_VariacaoZeroNaoGeraImpacto(t *testing.T) {
	dataset := NewDataset(sampleSales(), samplePlans())

	table := ComputeSummary(dataset, 0)

	require.NotEmpty(t, table.Rows)
	for _, row := range table.Rows {
		assert.Equal(t, 0.0, row.SalesImpact, row.Key().Label())
		assert.Equal(t, 0.0, row.RevenueImpact, row.Key().Label())
		assert.Equal(t, row.TotalOriginalSales, row.TotalNewSales)
	}
}

func TestComputeSummary_AgregaLinhasDoMesmoSegmento(t *testing.T) {
	dataset := NewDataset(
		[]SalesRecord{
			{BusinessChannel: "Online", PlanType: "Basic", OriginalPrice: 10, Sales: 100},
			{BusinessChannel: "Online", PlanType: "Basic", OriginalPrice: 12, Sales: 50},
		},
		[]PlanElasticity{{BusinessChannel: "Online", PlanType: "Basic", Elasticity: floatPtr(-0.02)}},
	)

	table := ComputeSummary(dataset, 2)

	require.Len(t, table.Rows, 1)
	row := table.Rows[0]
	assert.InDelta(t, 150, row.TotalOriginalSales, epsilon)
	assert.InDelta(t, 100*10+50*12, row.TotalOriginalRevenue, epsilon)
	assert.InDelta(t, 96*12+48*14, row.TotalNewRevenue, 1e-6)
	assert.InDelta(t, 144-150, row.SalesImpact, epsilon)
}

func TestSummarize_IndependeDaOrdemDasLinhas(t *testing.T) {
	dataset := NewDataset(sampleSales(), samplePlans())
	expected := Summarize(ApplyPriceChange(dataset.Records, 7.5))

	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 5; i++ {
		shuffled := make([]JoinedRecord, len(dataset.Records))
		copy(shuffled, dataset.Records)
		rng.Shuffle(len(shuffled), func(a, b int) { shuffled[a], shuffled[b] = shuffled[b], shuffled[a] })

		got := Summarize(ApplyPriceChange(shuffled, 7.5))

		require.Len(t, got, len(expected))
		for j := range expected {
			assert.Equal(t, expected[j].Key(), got[j].Key())
			assert.InDelta(t, expected[j].TotalNewSales, got[j].TotalNewSales, 1e-6)
			assert.InDelta(t, expected[j].TotalNewRevenue, got[j].TotalNewRevenue, 1e-6)
			assert.InDelta(t, expected[j].RevenueImpact, got[j].RevenueImpact, 1e-6)
		}
	}
}

func TestSummarize_OrdenaPorCanalEPlano(t *testing.T) {
	dataset := NewDataset(sampleSales(), samplePlans())

	rows := ComputeSummary(dataset, 1).Rows

	labels := make([]string, len(rows))
	for i, row := range rows {
		labels[i] = row.Key().Label()
	}
	assert.Equal(t, []string{"Online - Basic", "Online - Premium", "Retail - Basic"}, labels)
}

func TestComputeSummary_DatasetNulo(t *testing.T) {
	table := ComputeSummary(nil, 5)

	assert.Equal(t, 5.0, table.PriceChange)
	assert.Empty(t, table.Rows)
}

func sampleSales() []SalesRecord {
	return []SalesRecord{
		{BusinessChannel: "Retail", PlanType: "Basic", OriginalPrice: 100, Sales: 1000},
		{BusinessChannel: "Retail", PlanType: "Basic", OriginalPrice: 95, Sales: 300},
		{BusinessChannel: "Online", PlanType: "Basic", OriginalPrice: 60, Sales: 2500},
		{BusinessChannel: "Online", PlanType: "Premium", OriginalPrice: 150.5, Sales: 410},
		{BusinessChannel: "Online", PlanType: "Premium", OriginalPrice: 149.9, Sales: 120},
		{BusinessChannel: "Partner", PlanType: "Basic", OriginalPrice: 70, Sales: 90},
	}
}

func samplePlans() []PlanElasticity {
	return []PlanElasticity{
		{BusinessChannel: "Retail", PlanType: "Basic", Elasticity: floatPtr(-0.01)},
		{BusinessChannel: "Online", PlanType: "Basic", Elasticity: floatPtr(-0.025)},
		{BusinessChannel: "Online", PlanType: "Premium", Elasticity: floatPtr(0.004)},
		{BusinessChannel: "Partner", PlanType: "Basic", Elasticity: nil},
	}
}
