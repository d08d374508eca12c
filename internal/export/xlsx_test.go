package export

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"faktor/internal/domain"
)

func TestWriteXLSX(t *testing.T) {
	data, err := WriteXLSX([]domain.Invoice{exportInvoice()})
	require.NoError(t, err)
	require.NotEmpty(t, data)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	assert.Equal(t, []string{sheetName}, f.GetSheetList())

	rows, err := f.GetRows(sheetName)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "Invoice Number", rows[0][0])
	assert.Equal(t, "INV-1234", rows[1][0])
	assert.Equal(t, "6730750", rows[1][14])
}

func TestWriteXLSX_Empty(t *testing.T) {
	data, err := WriteXLSX(nil)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows(sheetName)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}
