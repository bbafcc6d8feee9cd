package service

import (
	"testing"

	"fcc_dashboard/internal/model"
	"fcc_dashboard/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildChartSpecs_Order(t *testing.T) {
	specs, err := NewChartService().BuildChartSpecs(canonicalRecords())
	require.NoError(t, err)
	require.Len(t, specs, 4)

	kinds := make([]model.ChartKind, len(specs))
	for i, s := range specs {
		kinds[i] = s.Kind
	}
	assert.Equal(t, model.ChartKinds, kinds)
}

func TestBuildChartSpecs_Line(t *testing.T) {
	spec, err := NewChartService().BuildChartSpec(canonicalRecords(), model.ChartLine)
	require.NoError(t, err)

	assert.Equal(t, model.MetricApprovalTime, spec.Metric)
	assert.Equal(t, model.Months[:], spec.XLabels)
	require.Len(t, spec.Series, 1)
	assert.Equal(t, []float64{45, 42, 40, 38, 35, 32, 30, 28, 25, 24, 23, 22}, spec.Series[0].Values)
	assert.True(t, spec.Markers)

	require.NotNil(t, spec.Reference)
	assert.InDelta(t, 27.0, spec.Reference.Value, 1e-9)
	assert.Equal(t, "Objetivo: -40%", spec.Reference.Label)
	assert.Equal(t, "#FF0000", spec.Reference.Color)
	assert.True(t, spec.Reference.Dash)
}

func TestBuildChartSpecs_Bar(t *testing.T) {
	spec, err := NewChartService().BuildChartSpec(canonicalRecords(), model.ChartBar)
	require.NoError(t, err)

	assert.Equal(t, []float64{10, 12, 14, 16, 18, 20, 23, 25, 28, 30, 32, 35}, spec.Series[0].Values)
	assert.True(t, spec.ColorByValue)
	require.NotNil(t, spec.Reference)
	assert.InDelta(t, 12.5, spec.Reference.Value, 1e-9)
	assert.Equal(t, "Objetivo: +25%", spec.Reference.Label)
	assert.Equal(t, "#008000", spec.Reference.Color)
}

func TestBuildChartSpecs_Area(t *testing.T) {
	spec, err := NewChartService().BuildChartSpec(canonicalRecords(), model.ChartArea)
	require.NoError(t, err)

	assert.True(t, spec.Smooth)
	assert.True(t, spec.Series[0].Fill)
	assert.Equal(t, []float64{20, 30, 40, 50, 60, 65, 70, 75, 80, 85, 88, 90}, spec.Series[0].Values)
	require.NotNil(t, spec.Reference)
	assert.Equal(t, 90.0, spec.Reference.Value)
	assert.Equal(t, "Objetivo: 90%", spec.Reference.Label)
}

func TestBuildChartSpecs_Radar(t *testing.T) {
	spec, err := NewChartService().BuildChartSpec(canonicalRecords(), model.ChartRadar)
	require.NoError(t, err)

	assert.Equal(t, []string{"Q1", "Q2", "Q3", "Q4"}, spec.XLabels)
	assert.Equal(t, []int{2, 5, 8, 11}, spec.SampleIndices)
	assert.Nil(t, spec.Reference)
	require.NotNil(t, spec.RadialRange)
	assert.Equal(t, model.AxisRange{Min: 0, Max: 100}, *spec.RadialRange)

	require.Len(t, spec.Series, 2)
	assert.Equal(t, "Actual", spec.Series[0].Name)
	assert.Equal(t, []float64{60, 72, 78, 85}, spec.Series[0].Values)
	assert.True(t, spec.Series[0].Fill)
	assert.Equal(t, "Objetivo", spec.Series[1].Name)
	assert.Equal(t, []float64{80, 80, 80, 80}, spec.Series[1].Values)
	assert.True(t, spec.Series[1].Dash)
}

func TestBuildChartSpecs_ReferenceFollowsFirstMonth(t *testing.T) {
	records := canonicalRecords()
	records[0].ApprovalTimeDays = 50
	records[0].DataDrivenDecisions = 8

	specs, err := NewChartService().BuildChartSpecs(records)
	require.NoError(t, err)
	assert.InDelta(t, 30.0, specs[0].Reference.Value, 1e-9)
	assert.InDelta(t, 10.0, specs[1].Reference.Value, 1e-9)
}

func TestBuildChartSpecs_InvalidDataset(t *testing.T) {
	records := canonicalRecords()

	_, err := NewChartService().BuildChartSpecs(records[:11])
	assert.ErrorIs(t, err, util.ErrInvalidDataset)

	_, err = NewChartService().BuildChartSpecs(append(records, records[0]))
	assert.ErrorIs(t, err, util.ErrInvalidDataset)
}

func TestBuildChartSpec_UnknownKind(t *testing.T) {
	_, err := NewChartService().BuildChartSpec(canonicalRecords(), model.ChartKind("pie"))
	assert.ErrorIs(t, err, util.ErrUnknownChart)
	assert.False(t, util.IsClientError(err))
}

func TestQuarterlySample(t *testing.T) {
	records := canonicalRecords()
	assert.Equal(t, []float64{40, 65, 80, 90}, QuarterlySample(records, model.MetricDigitalAdoption))
}
