package repository

import (
	"strings"
	"testing"

	"doctorhub-api/internal/domain/entity"
	domainRepo "doctorhub-api/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleCSV = "Doctor Name,Specialization,Clinic/Location,OPD Days,Timings,Contact\n" +
	"Dr. A,Cardiology,X,\"Mon,Wed\",9-5,111;222\n" +
	"Dr. B,Dermatology,Y,,10-1,333\n"

func TestParseDoctorCSV_PreservesOrder(t *testing.T) {
	records, err := parseDoctorCSV(strings.NewReader(sampleCSV))
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "Dr. A", records[0].Name())
	assert.Equal(t, "Mon,Wed", records[0].OPDDays())
	assert.Equal(t, "111;222", records[0].Contact())
	assert.Equal(t, "Dr. B", records[1].Name())
	assert.Equal(t, "", records[1].OPDDays())
}

func TestParseDoctorCSV_NormalizesHeadersAndValues(t *testing.T) {
	input := "\ufeffDoctor Name , Specialization,\ufeffClinic/Location ,OPD Days,Timings,Contact\n" +
		"  Dr. A  ,  Cardiology ,X,  Mon ,9-5, 111 \n"

	records, err := parseDoctorCSV(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, records, 1)

	record := records[0]
	_, ok := record["Doctor Name"]
	assert.True(t, ok, "BOM-prefixed header must be addressable as Doctor Name")
	assert.Equal(t, "Dr. A", record.Name())
	assert.Equal(t, "Cardiology", record.Specialization())
	assert.Equal(t, "X", record.Clinic())
	assert.Equal(t, "Mon", record.OPDDays())
	assert.Equal(t, "111", record.Contact())
}

func TestParseDoctorCSV_QuotedHeaderAfterBOM(t *testing.T) {
	input := "\ufeff\"Doctor Name\",Specialization,Clinic/Location,OPD Days,Timings,Contact\n" +
		"Dr. A,Cardiology,X,Mon,9-5,111\n"

	records, err := parseDoctorCSV(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Dr. A", records[0].Name())
}

func TestParseDoctorCSV_ShortRowsAndMissingColumns(t *testing.T) {
	input := "Doctor Name,Specialization,Extra\n" +
		"Dr. A\n" +
		"Dr. B,Neurology,foo,overflow\n"

	records, err := parseDoctorCSV(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, records, 2)

	for _, record := range records {
		for _, field := range entity.RequiredFields {
			_, ok := record[field]
			assert.True(t, ok, "field %q must be present", field)
		}
	}
	assert.Equal(t, "", records[0].Specialization())
	assert.Equal(t, "Neurology", records[1].Specialization())
	assert.Equal(t, "foo", records[1].Get("Extra"))
	assert.Equal(t, "", records[1].Timings())
}

func TestParseDoctorCSV_Empty(t *testing.T) {
	records, err := parseDoctorCSV(strings.NewReader(""))
	require.NoError(t, err)
	assert.NotNil(t, records)
	assert.Empty(t, records)
}

func TestParseDoctorCSV_Malformed(t *testing.T) {
	input := "Doctor Name,Specialization\n" +
		"Dr. \"A,Cardiology\n"

	records, err := parseDoctorCSV(strings.NewReader(input))
	assert.ErrorIs(t, err, domainRepo.ErrMalformedCSV)
	assert.Nil(t, records)
}

func TestNormalizeHeader(t *testing.T) {
	assert.Equal(t, "Doctor Name", normalizeHeader("\ufeffDoctor Name"))
	assert.Equal(t, "Doctor Name", normalizeHeader("  Doctor Name\t"))
	assert.Equal(t, "Contact", normalizeHeader(" Con\ufefftact "))
}
