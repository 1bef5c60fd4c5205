// Package patient holds the Patient aggregate: a hospitalised person whose
// diet drives menu resolution. Patients are discharged, never deleted.
package patient

import (
	"errors"
	"strings"
	"time"

	"clinicmeals/internal/core/domain/model/kernel"
	"clinicmeals/internal/pkg/errs"
)

var (
	ErrPatientIsNotConstructed = errors.New("Patient must be created via NewPatient constructor")
	ErrPatientIsDischarged     = errs.NewValueIsInvalidErrorWithCause("patient", errors.New("patient is discharged"))
)

type Patient struct {
	id           kernel.UUID
	fullName     string
	room         string
	service      string
	diet         kernel.Diet
	allergies    string
	admittedAt   time.Time
	dischargedAt *time.Time

	isConstructed bool
}

// Details are the editable fields of a patient.
type Details struct {
	Room      string
	Service   string
	Diet      kernel.Diet
	Allergies string
}

func NewPatient(id kernel.UUID, fullName string, d Details, admittedAt time.Time) (*Patient, error) {
	return RestorePatient(id, fullName, d, admittedAt, nil)
}

func RestorePatient(id kernel.UUID, fullName string, d Details, admittedAt time.Time, dischargedAt *time.Time) (*Patient, error) {
	p := &Patient{isConstructed: true, dischargedAt: dischargedAt}

	var nameErr, admittedErr error
	if strings.TrimSpace(fullName) == "" {
		nameErr = errs.NewValueIsRequiredError("full name")
	}
	if admittedAt.IsZero() {
		admittedErr = errs.NewValueIsRequiredError("admitted at")
	}
	if err := errors.Join(id.Validate(), nameErr, admittedErr, p.setDetails(d)); err != nil {
		return nil, err
	}

	p.id = id
	p.fullName = strings.TrimSpace(fullName)
	p.admittedAt = admittedAt
	return p, nil
}

func (p *Patient) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrPatientIsNotConstructed
	}
	return nil
}

func (p *Patient) ID() kernel.UUID          { return p.id }
func (p *Patient) FullName() string         { return p.fullName }
func (p *Patient) Room() string             { return p.room }
func (p *Patient) Service() string          { return p.service }
func (p *Patient) Diet() kernel.Diet        { return p.diet }
func (p *Patient) Allergies() string        { return p.allergies }
func (p *Patient) AdmittedAt() time.Time    { return p.admittedAt }
func (p *Patient) DischargedAt() *time.Time { return p.dischargedAt }
func (p *Patient) IsActive() bool           { return p.dischargedAt == nil }

// Edit replaces room, service, diet and allergies of an active patient.
func (p *Patient) Edit(d Details) error {
	if !p.IsActive() {
		return ErrPatientIsDischarged
	}
	return p.setDetails(d)
}

// Discharge stamps the exit date. A discharged patient can no longer receive
// orders.
func (p *Patient) Discharge(at time.Time) error {
	if !p.IsActive() {
		return ErrPatientIsDischarged
	}
	if at.Before(p.admittedAt) {
		return errs.NewValueIsInvalidErrorWithCause("discharged at", errors.New("before admission"))
	}
	p.dischargedAt = &at
	return nil
}

func (p *Patient) setDetails(d Details) error {
	var errList []error
	if strings.TrimSpace(d.Room) == "" {
		errList = append(errList, errs.NewValueIsRequiredError("room"))
	}
	if strings.TrimSpace(d.Service) == "" {
		errList = append(errList, errs.NewValueIsRequiredError("service"))
	}
	errList = append(errList, d.Diet.Validate())
	if err := errors.Join(errList...); err != nil {
		return err
	}

	p.room = strings.TrimSpace(d.Room)
	p.service = strings.TrimSpace(d.Service)
	p.diet = d.Diet
	p.allergies = strings.TrimSpace(d.Allergies)
	return nil
}
