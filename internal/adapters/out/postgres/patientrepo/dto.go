package patientrepo

import (
	"time"

	"clinicmeals/internal/core/domain/model/kernel"
	"clinicmeals/internal/core/domain/model/patient"

	"github.com/google/uuid"
)

type PatientDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	FullName     string
	Room         string
	Service      string
	Diet         string
	Allergies    string
	AdmittedAt   time.Time
	DischargedAt *time.Time
}

func (PatientDTO) TableName() string {
	return "patients"
}

func fromDomain(p *patient.Patient) PatientDTO {
	return PatientDTO{
		ID:           p.ID().Bytes(),
		FullName:     p.FullName(),
		Room:         p.Room(),
		Service:      p.Service(),
		Diet:         p.Diet().String(),
		Allergies:    p.Allergies(),
		AdmittedAt:   p.AdmittedAt(),
		DischargedAt: p.DischargedAt(),
	}
}

func toDomain(dto PatientDTO) (*patient.Patient, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	diet, err := kernel.DietFromString(dto.Diet)
	if err != nil {
		return nil, err
	}

	return patient.RestorePatient(id, dto.FullName, patient.Details{
		Room:      dto.Room,
		Service:   dto.Service,
		Diet:      diet,
		Allergies: dto.Allergies,
	}, dto.AdmittedAt, dto.DischargedAt)
}
