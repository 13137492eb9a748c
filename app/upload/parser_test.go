package upload

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCSV(t *testing.T) {
	data := "user_id,user_name,points,valid_days\nU001,Alice,42,30\nU002,Bob,7,5\n"

	rows, err := Parse("points.csv", strings.NewReader(data))
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, Row{UserID: "U001", UserName: "Alice", Points: 42, ValidDays: 30}, rows[0])
	assert.Equal(t, Row{UserID: "U002", UserName: "Bob", Points: 7, ValidDays: 5}, rows[1])
}

func TestParseCSVHeaderVariants(t *testing.T) {
	data := "UserID,UserName,TotalPoints,ValidDays\nU001,Alice,42,30\n"

	rows, err := Parse("export.csv", strings.NewReader(data))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, 42, rows[0].Points)
}

func TestParseTSV(t *testing.T) {
	data := "user_id\tuser_name\tpoints\tvalid_days\nU001\tAlice\t42\t30\n"

	rows, err := Parse("points.tsv", strings.NewReader(data))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "U001", rows[0].UserID)
}

func TestParseJSON(t *testing.T) {
	data := `[{"user_id":"U001","user_name":"Alice","points":42,"valid_days":30},
	          {"user_id":"U002","user_name":"Bob","points":"7"}]`

	rows, err := Parse("points.json", strings.NewReader(data))
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, 42, rows[0].Points)
	assert.Equal(t, 7, rows[1].Points) // quoted number accepted
	assert.Zero(t, rows[1].ValidDays)
}

func TestParseUnsupportedFormat(t *testing.T) {
	var perr *ParseError

	_, err := Parse("points.xlsx", strings.NewReader("whatever"))
	require.ErrorAs(t, err, &perr)
	assert.Contains(t, perr.Error(), "excel")

	_, err = Parse("points.txt", strings.NewReader("whatever"))
	require.ErrorAs(t, err, &perr)
}

func TestParseMissingColumns(t *testing.T) {
	data := "name,score\nAlice,42\n"

	var perr *ParseError
	_, err := Parse("points.csv", strings.NewReader(data))
	require.ErrorAs(t, err, &perr)
	assert.Contains(t, perr.Error(), "user_id")
}

func TestParseBadNumber(t *testing.T) {
	data := "user_id,points\nU001,many\n"

	var perr *ParseError
	_, err := Parse("points.csv", strings.NewReader(data))
	require.ErrorAs(t, err, &perr)
	assert.Contains(t, perr.Error(), "points")
}

func TestParseEmptyFile(t *testing.T) {
	var perr *ParseError
	_, err := Parse("points.csv", strings.NewReader(""))
	require.ErrorAs(t, err, &perr)
}

func TestParseInvalidJSON(t *testing.T) {
	var perr *ParseError
	_, err := Parse("points.json", strings.NewReader("{not json"))
	require.ErrorAs(t, err, &perr)
}
