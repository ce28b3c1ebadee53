package converter

import (
	"strings"

	"doctorhub-api/internal/delivery/dto"
	"doctorhub-api/internal/domain/entity"

	"github.com/cespare/xxhash/v2"
)

// doctorIDMask keeps ids within 53 bits so JSON number parsers read them exactly.
const doctorIDMask = 1<<53 - 1

// DoctorID derives the public id from name and specialization with XXH64 (seed 0).
// Ids are stable across processes. Distinct pairs can collide; nothing detects it.
func DoctorID(name, specialization string) int64 {
	return int64(xxhash.Sum64String(name+specialization) & doctorIDMask)
}

// SplitContact splits on ";" and trims each part. Without a separator the raw value is the only entry.
func SplitContact(contact string) []string {
	if !strings.Contains(contact, ";") {
		return []string{contact}
	}

	parts := strings.Split(contact, ";")
	for i, part := range parts {
		parts[i] = strings.TrimSpace(part)
	}
	return parts
}

// DoctorRecordToResponse converts a raw directory record to the mobile view.
func DoctorRecordToResponse(record entity.DoctorRecord) dto.DoctorResponse {
	return dto.DoctorResponse{
		ID:             DoctorID(record.Name(), record.Specialization()),
		Name:           record.Name(),
		Specialization: record.Specialization(),
		Clinic:         record.Clinic(),
		Days:           record.OPDDays(),
		Timings:        record.Timings(),
		Contact:        SplitContact(record.Contact()),
		Available:      strings.TrimSpace(record.OPDDays()) != "",
	}
}

// DoctorRecordsToResponses converts a slice of records; the result is never nil.
func DoctorRecordsToResponses(records []entity.DoctorRecord) []dto.DoctorResponse {
	responses := make([]dto.DoctorResponse, len(records))
	for i, record := range records {
		responses[i] = DoctorRecordToResponse(record)
	}
	return responses
}

// CreateDoctorRequestToRecord builds a record from an add-doctor request, joining contacts with ";".
func CreateDoctorRequestToRecord(req *dto.CreateDoctorRequest) entity.DoctorRecord {
	contacts := make([]string, 0, len(req.Contact))
	for _, contact := range req.Contact {
		if contact = strings.TrimSpace(contact); contact != "" {
			contacts = append(contacts, contact)
		}
	}

	record := entity.NewDoctorRecord()
	record[entity.FieldDoctorName] = strings.TrimSpace(req.Name)
	record[entity.FieldSpecialization] = strings.TrimSpace(req.Specialization)
	record[entity.FieldClinic] = strings.TrimSpace(req.Clinic)
	record[entity.FieldOPDDays] = strings.TrimSpace(req.Days)
	record[entity.FieldTimings] = strings.TrimSpace(req.Timings)
	record[entity.FieldContact] = strings.Join(contacts, ";")
	return record
}

func SearchStatsToResponses(stats []entity.SearchStat) []dto.TrendingSearchResponse {
	responses := make([]dto.TrendingSearchResponse, len(stats))
	for i, stat := range stats {
		responses[i] = dto.TrendingSearchResponse{
			Query: stat.Query,
			Count: stat.Count,
		}
	}
	return responses
}
