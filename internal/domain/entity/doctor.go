package entity

import "time"

// Column names of the doctors directory, exactly as they appear in the CSV header.
const (
	FieldDoctorName     = "Doctor Name"
	FieldSpecialization = "Specialization"
	FieldClinic         = "Clinic/Location"
	FieldOPDDays        = "OPD Days"
	FieldTimings        = "Timings"
	FieldContact        = "Contact"
)

// RequiredFields lists the columns every record carries, in canonical CSV order.
var RequiredFields = []string{
	FieldDoctorName,
	FieldSpecialization,
	FieldClinic,
	FieldOPDDays,
	FieldTimings,
	FieldContact,
}

// DoctorRecord is one raw row of the directory keyed by normalized header name.
type DoctorRecord map[string]string

// NewDoctorRecord returns a record with every required field present and empty.
func NewDoctorRecord() DoctorRecord {
	record := make(DoctorRecord, len(RequiredFields))
	for _, field := range RequiredFields {
		record[field] = ""
	}
	return record
}

// Get returns the value stored under field, or "" when the key is absent.
func (r DoctorRecord) Get(field string) string {
	return r[field]
}

func (r DoctorRecord) Name() string           { return r.Get(FieldDoctorName) }
func (r DoctorRecord) Specialization() string { return r.Get(FieldSpecialization) }
func (r DoctorRecord) Clinic() string         { return r.Get(FieldClinic) }
func (r DoctorRecord) OPDDays() string        { return r.Get(FieldOPDDays) }
func (r DoctorRecord) Timings() string        { return r.Get(FieldTimings) }
func (r DoctorRecord) Contact() string        { return r.Get(FieldContact) }

// EnsureRequired adds "" for any required field missing from the record.
func (r DoctorRecord) EnsureRequired() {
	for _, field := range RequiredFields {
		if _, ok := r[field]; !ok {
			r[field] = ""
		}
	}
}

// Doctor is the table-backed form of a directory row.
type Doctor struct {
	ID             int       `gorm:"primaryKey;autoIncrement" json:"id"`
	DoctorName     string    `gorm:"column:doctor_name;type:varchar(255);not null;uniqueIndex:idx_doctors_name_specialization" json:"doctor_name"`
	Specialization string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_doctors_name_specialization" json:"specialization"`
	ClinicLocation string    `gorm:"column:clinic_location;type:varchar(255)" json:"clinic_location"`
	OPDDays        string    `gorm:"column:opd_days;type:varchar(100)" json:"opd_days"`
	Timings        string    `gorm:"type:varchar(100)" json:"timings"`
	Contact        string    `gorm:"type:varchar(255)" json:"contact"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Doctor) TableName() string {
	return "doctors"
}

// Record converts the table row to the directory's raw record form.
func (d Doctor) Record() DoctorRecord {
	return DoctorRecord{
		FieldDoctorName:     d.DoctorName,
		FieldSpecialization: d.Specialization,
		FieldClinic:         d.ClinicLocation,
		FieldOPDDays:        d.OPDDays,
		FieldTimings:        d.Timings,
		FieldContact:        d.Contact,
	}
}

// DoctorFromRecord builds a table row from a raw record. ID and CreatedAt are left for the database.
func DoctorFromRecord(r DoctorRecord) Doctor {
	return Doctor{
		DoctorName:     r.Name(),
		Specialization: r.Specialization(),
		ClinicLocation: r.Clinic(),
		OPDDays:        r.OPDDays(),
		Timings:        r.Timings(),
		Contact:        r.Contact(),
	}
}
