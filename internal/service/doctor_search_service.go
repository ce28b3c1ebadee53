package service

import (
	"sort"
	"strings"

	"doctorhub-api/internal/domain/entity"
)

// searchFields are the columns a free-text search looks at.
var searchFields = []string{
	entity.FieldDoctorName,
	entity.FieldSpecialization,
	entity.FieldClinic,
	entity.FieldOPDDays,
	entity.FieldTimings,
	entity.FieldContact,
}

// autocompleteFields are the columns whose whole values are offered as suggestions.
var autocompleteFields = []string{
	entity.FieldDoctorName,
	entity.FieldSpecialization,
	entity.FieldClinic,
}

// DoctorSearchService matches records by case-insensitive substring.
// It keeps no state; results follow the order of the records passed in
// unless stated otherwise.
type DoctorSearchService interface {
	Search(records []entity.DoctorRecord, keyword string) []entity.DoctorRecord
	Autocomplete(records []entity.DoctorRecord, keyword string) []string
	FilterBySpecialization(records []entity.DoctorRecord, specialization string) []entity.DoctorRecord
	FilterByName(records []entity.DoctorRecord, name string) []entity.DoctorRecord
	FilterByAvailabilityDay(records []entity.DoctorRecord, day string) []entity.DoctorRecord
	Specializations(records []entity.DoctorRecord) []string
}

type doctorSearchService struct{}

func NewDoctorSearchService() DoctorSearchService {
	return &doctorSearchService{}
}

// Search returns every record with keyword in any searched column.
// An empty keyword returns records unchanged.
func (s *doctorSearchService) Search(records []entity.DoctorRecord, keyword string) []entity.DoctorRecord {
	keyword = normalizeKeyword(keyword)
	if keyword == "" {
		return records
	}

	results := make([]entity.DoctorRecord, 0)
	for _, record := range records {
		for _, field := range searchFields {
			if matches(record.Get(field), keyword) {
				results = append(results, record)
				break
			}
		}
	}
	return results
}

// Autocomplete returns the distinct name, specialization and clinic values containing
// keyword, sorted ascending. An empty keyword yields no suggestions.
func (s *doctorSearchService) Autocomplete(records []entity.DoctorRecord, keyword string) []string {
	keyword = normalizeKeyword(keyword)
	if keyword == "" {
		return []string{}
	}

	seen := make(map[string]struct{})
	for _, record := range records {
		for _, field := range autocompleteFields {
			value := record.Get(field)
			if matches(value, keyword) {
				seen[value] = struct{}{}
			}
		}
	}

	return sortedKeys(seen)
}

func (s *doctorSearchService) FilterBySpecialization(records []entity.DoctorRecord, specialization string) []entity.DoctorRecord {
	return filterByField(records, entity.FieldSpecialization, specialization)
}

func (s *doctorSearchService) FilterByName(records []entity.DoctorRecord, name string) []entity.DoctorRecord {
	return filterByField(records, entity.FieldDoctorName, name)
}

func (s *doctorSearchService) FilterByAvailabilityDay(records []entity.DoctorRecord, day string) []entity.DoctorRecord {
	return filterByField(records, entity.FieldOPDDays, day)
}

// Specializations returns the distinct non-empty specializations, trimmed and sorted.
func (s *doctorSearchService) Specializations(records []entity.DoctorRecord) []string {
	seen := make(map[string]struct{})
	for _, record := range records {
		if value := strings.TrimSpace(record.Specialization()); value != "" {
			seen[value] = struct{}{}
		}
	}
	return sortedKeys(seen)
}

func filterByField(records []entity.DoctorRecord, field, value string) []entity.DoctorRecord {
	value = normalizeKeyword(value)

	results := make([]entity.DoctorRecord, 0)
	for _, record := range records {
		if matches(record.Get(field), value) {
			results = append(results, record)
		}
	}
	return results
}

func normalizeKeyword(keyword string) string {
	return strings.ToLower(strings.TrimSpace(keyword))
}

// matches expects keyword already normalized.
func matches(value, keyword string) bool {
	return strings.Contains(strings.ToLower(value), keyword)
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for key := range set {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
