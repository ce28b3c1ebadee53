package repository

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"doctorhub-api/internal/domain/entity"
	domainRepo "doctorhub-api/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "doctors_data.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLocalDoctorRepository_Load(t *testing.T) {
	repo := NewLocalDoctorRepository(writeFile(t, sampleCSV), testLogger())

	records, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.Len(t, records, 2)
	assert.Equal(t, "Local", repo.SourceName())
}

func TestLocalDoctorRepository_LoadMissingFile(t *testing.T) {
	repo := NewLocalDoctorRepository(filepath.Join(t.TempDir(), "nope.csv"), testLogger())

	records, err := repo.Load(context.Background())
	assert.ErrorIs(t, err, domainRepo.ErrSourceNotFound)
	assert.Nil(t, records)
}

func TestLocalDoctorRepository_AddCreatesHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doctors_data.csv")
	repo := NewLocalDoctorRepository(path, testLogger())

	record := entity.NewDoctorRecord()
	record[entity.FieldDoctorName] = "Dr. New"
	record[entity.FieldSpecialization] = "ENT"
	record[entity.FieldContact] = "111;222"

	stored, err := repo.Add(context.Background(), record)
	require.NoError(t, err)
	assert.Equal(t, record, stored)
	_, err = repo.Add(context.Background(), record)
	require.NoError(t, err)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t,
		"Doctor Name,Specialization,Clinic/Location,OPD Days,Timings,Contact\n"+
			"Dr. New,ENT,,,,111;222\n"+
			"Dr. New,ENT,,,,111;222\n",
		string(content))
}

func TestLocalDoctorRepository_AddFollowsExistingHeaderOrder(t *testing.T) {
	path := writeFile(t, "Contact,Doctor Name,Specialization,Clinic/Location,OPD Days,Timings\n999,Dr. Old,GP,Z,Mon,9-1")
	repo := NewLocalDoctorRepository(path, testLogger())

	record := entity.NewDoctorRecord()
	record[entity.FieldDoctorName] = "Dr. New"
	record[entity.FieldSpecialization] = "ENT"
	record[entity.FieldContact] = "555"
	_, err := repo.Add(context.Background(), record)
	require.NoError(t, err)

	records, err := repo.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "Dr. Old", records[0].Name())
	assert.Equal(t, "Dr. New", records[1].Name())
	assert.Equal(t, "555", records[1].Contact())
	assert.Equal(t, "ENT", records[1].Specialization())
}

func TestLocalDoctorRepository_AddReturnsOnlyStoredColumns(t *testing.T) {
	path := writeFile(t, "Doctor Name,Specialization,OPD Days\nDr. Old,GP,Mon\n")
	repo := NewLocalDoctorRepository(path, testLogger())

	record := entity.NewDoctorRecord()
	record[entity.FieldDoctorName] = "Dr. New"
	record[entity.FieldSpecialization] = "ENT"
	record[entity.FieldOPDDays] = "Tue"
	record[entity.FieldClinic] = "Ear Clinic"
	record[entity.FieldContact] = "555"

	stored, err := repo.Add(context.Background(), record)
	require.NoError(t, err)
	assert.Equal(t, "Dr. New", stored.Name())
	assert.Equal(t, "Tue", stored.OPDDays())
	assert.Equal(t, "", stored.Clinic())
	assert.Equal(t, "", stored.Contact())

	records, err := repo.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, stored, records[1])
}
