package table

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"mbticonsultant/domain/core"
	"mbticonsultant/domain/periodic"
	"mbticonsultant/internal"
	apperrors "mbticonsultant/internal/errors"
)

const header = "atomicnumber,type,category,personality,group,groupname,period,symbol,elementname,excerpt,color\n"

func writeFile(t *testing.T, name string, content []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, content, 0o644))
	return path
}

func newReader(t *testing.T, path, encoding string) *DataReader {
	t.Helper()
	reader, err := NewDataReader(SourceConfig{FilePath: path, Encoding: encoding}, internal.NewNopLogger())
	require.NoError(t, err)
	return reader
}

func TestLoadLatin1CSVWithBOMArtifact(t *testing.T) {
	content := []byte{0xEF, 0xBB, 0xBF}
	content = append(content, header...)
	content = append(content, "1.0,INTJ,Analyst,Architect,1,Strengths,1,Lo,Logic,Caf"...)
	content = append(content, 0xE9) // é in ISO-8859-1
	content = append(content, ",#9DC3E6\n"...)
	content = append(content, "2,INTJ,Analyst,Architect,2,\"Inner\\nWorld\",1,Pl,\"Long\\nTerm\",Plans,#F4B183\n"...)
	content = append(content, ",,,,,,,,,,\n"...)
	path := writeFile(t, "MBTI_data.csv", content)

	tbl, err := newReader(t, path, "").Load(context.Background())
	require.NoError(t, err)

	require.Equal(t, 2, tbl.Len(), "blank rows are skipped")
	first := tbl.Rows[0]
	assert.Equal(t, periodic.TypeCode("INTJ"), first.TypeCode)
	assert.Equal(t, "1", first.AtomicNumber, "BOM artifact stripped and float key canonicalised")
	assert.Equal(t, "Café", first.Excerpt)
	assert.Equal(t, `Inner\nWorld`, tbl.Rows[1].GroupName, "escaped markers survive loading")
	assert.Equal(t, path, tbl.Source)
}

func TestLoadUTF8CSV(t *testing.T) {
	content := "\ufeff" + header + "1,ENFP,Diplomat,Campaigner,1,Spark,1,Sp,Spark,Ça va,#A9D18E\n"
	path := writeFile(t, "data.csv", []byte(content))

	tbl, err := newReader(t, path, "utf8").Load(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1, tbl.Len())
	assert.Equal(t, "1", tbl.Rows[0].AtomicNumber)
	assert.Equal(t, "Ça va", tbl.Rows[0].Excerpt)
}

func TestLoadXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.xlsx")
	f := excelize.NewFile()
	rows := [][]interface{}{
		{"Type", "Category", "Personality", "Group", "GroupName", "Period", "AtomicNumber", "Symbol", "ElementName", "Excerpt", "Color"},
		{"ISTP", "Explorer", "Virtuoso", 3, "Hands On", 2, 7, "Hn", "Tinkering", "Fixes things", "#FFE699"},
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &row))
	}
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	tbl, err := newReader(t, path, "").Load(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1, tbl.Len())
	row := tbl.Rows[0]
	assert.Equal(t, periodic.TypeCode("ISTP"), row.TypeCode)
	assert.Equal(t, "3", row.Group)
	assert.Equal(t, "2", row.Period)
	assert.Equal(t, "7", row.AtomicNumber)
	assert.Equal(t, "Hands On", row.GroupName)
}

func TestLoadMissingFile(t *testing.T) {
	for _, name := range []string{"absent.csv", "absent.xlsx"} {
		t.Run(name, func(t *testing.T) {
			reader := newReader(t, filepath.Join(t.TempDir(), name), "")

			_, err := reader.Load(context.Background())
			require.Error(t, err)
			assert.Equal(t, apperrors.CodeSourceError, apperrors.GetCode(err))
			assert.True(t, errors.Is(err, os.ErrNotExist), "open error is preserved: %v", err)
		})
	}
}

func TestLoadKeepsCellsVerbatim(t *testing.T) {
	content := header +
		"1,INT ,Analyst,Architect, 1 ,Strengths,1.0,Lo,Logic,Cold,#9DC3E6\n" +
		"2, ENFP,Diplomat,Campaigner,1,Strengths,1,Sp,Spark,Warm,#A9D18E\n"
	path := writeFile(t, "padded.csv", []byte(content))

	tbl, err := newReader(t, path, "").Load(context.Background())
	require.NoError(t, err)
	require.Equal(t, 2, tbl.Len())

	assert.Equal(t, periodic.TypeCode("INT "), tbl.Rows[0].TypeCode)
	assert.Equal(t, periodic.TypeCode(" ENFP"), tbl.Rows[1].TypeCode)
	assert.Equal(t, "1", tbl.Rows[0].Group, "coordinates are still canonicalised")
	assert.Equal(t, "1", tbl.Rows[0].Period)

	assert.Equal(t, []periodic.TypeCode{"INT "}, periodic.BuildCatalog(tbl.Rows))
}

func TestLoadMissingColumn(t *testing.T) {
	path := writeFile(t, "data.csv", []byte("type,category\nINTJ,Analyst\n"))

	_, err := newReader(t, path, "").Load(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, core.ErrMissingColumn))
}

func TestLoadHeaderOnly(t *testing.T) {
	path := writeFile(t, "data.csv", []byte(header))

	_, err := newReader(t, path, "").Load(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at least a header row")
}

func TestLoadCancelledContext(t *testing.T) {
	path := writeFile(t, "data.csv", []byte(header))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newReader(t, path, "").Load(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNewDataReaderRejectsUnknownEncoding(t *testing.T) {
	_, err := NewDataReader(SourceConfig{FilePath: "x.csv", Encoding: "ebcdic"}, nil)
	require.Error(t, err)
	assert.Equal(t, apperrors.CodeConfigInvalid, apperrors.GetCode(err))
}

func TestNormalizeHeader(t *testing.T) {
	tests := map[string]string{
		"\u00ef\u00bb\u00bfatomicnumber": "atomicnumber",
		"\ufeffatomicnumber":             "atomicnumber",
		" GroupName ":                     "groupname",
		"type":                            "type",
	}
	for in, want := range tests {
		assert.Equal(t, want, NormalizeHeader(in), "header %q", in)
	}
}
