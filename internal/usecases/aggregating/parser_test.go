package aggregating

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapActionCategory(t *testing.T) {
	tests := []struct {
		label    string
		expected ActionCategory
	}{
		{label: "ADD NEW NE", expected: CategoryAddNe},
		{label: "Install CMON", expected: CategoryCMON},
		{label: "install Combat", expected: CategoryCombat},
		{label: "Install EasyMacro", expected: CategoryEasymacro},
		{label: "Install MassiveMIMO", expected: CategoryMassivemimo},
		{label: "Install Repeater", expected: CategoryRepeater},
		{label: "optim site", expected: CategoryOptim},
		{label: "Add Sector", expected: CategoryUnknown},
		{label: "", expected: CategoryUnknown},
		// mais de um padrão: vence o primeiro da lista
		{label: "Combat + CMON", expected: CategoryCMON},
		{label: "Optim Site with Repeater", expected: CategoryRepeater},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			assert.Equal(t, tt.expected, MapActionCategory(tt.label))
		})
	}
}

func TestParseRow_ColunasAusentes(t *testing.T) {
	row := DefaultSchema.ParseRow([]any{1234.0, nil, " 2024-01-01 "})

	assert.Equal(t, "1234", row.ID)
	require.NotNil(t, row.StartDate)
	assert.Equal(t, "2024-01-01", *row.StartDate)
	assert.Nil(t, row.EndDate)
	assert.Empty(t, row.Region)
	assert.Zero(t, row.Revenue.Delta)
	assert.False(t, row.HasClassification())
}

func TestValidateHeader(t *testing.T) {
	header := make([]any, 24)
	for _, col := range DefaultSchema.Columns() {
		header[col.Index] = col.Header
	}
	assert.Empty(t, DefaultSchema.ValidateHeader(header))

	header[DefaultSchema.Region] = "region_name"
	header[DefaultSchema.Month] = " MONTH "
	mismatches := DefaultSchema.ValidateHeader(header)
	require.Len(t, mismatches, 1)
	assert.Equal(t, "region", mismatches[0].Column.Field)
	assert.Contains(t, mismatches[0].String(), "coluna E")

	assert.Len(t, DefaultSchema.ValidateHeader(nil), len(DefaultSchema.Columns()))
}
