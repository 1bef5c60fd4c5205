package ports

import (
	"context"

	"clinicmeals/internal/core/domain/model/kernel"
	"clinicmeals/internal/core/domain/model/patient"
)

// PatientRepository persists patients. There is no Delete: patients are
// discharged.
type PatientRepository interface {
	Add(ctx context.Context, p *patient.Patient) error
	Update(ctx context.Context, p *patient.Patient) error
	// Get returns *errs.ObjectNotFoundError when id is unknown.
	Get(ctx context.Context, id kernel.UUID) (*patient.Patient, error)
}
