package order

import (
	"errors"
	"strings"
	"time"

	"clinicmeals/internal/core/domain/model/kernel"
	"clinicmeals/internal/pkg/errs"
)

// ErrPatientOrderIsNotConstructed is returned for a PatientOrder not built by
// NewPatientOrder or RestorePatientOrder.
var ErrPatientOrderIsNotConstructed = errors.New("PatientOrder must be created via NewPatientOrder constructor")

// PatientOrder is a meal ordered by a nurse for a patient.
//
// Invariants:
//   - menuText is resolved once at creation and never changes afterwards,
//     whatever happens to the catalog
//   - the lifecycle follows the PatientOrder transition table
type PatientOrder struct {
	id           kernel.UUID
	patientID    kernel.UUID
	orderedBy    kernel.UUID
	mealType     kernel.MealType
	day          kernel.DayOfWeek
	menuText     string
	instructions string
	lifecycle    Lifecycle

	isConstructed bool
}

var _ Order = (*PatientOrder)(nil)

// NewPatientOrder creates an order in AwaitingApproval.
//
// Example:
//
//	o, err := order.NewPatientOrder(kernel.NewUUID(), patient.ID(), actor.ID(),
//	    kernel.Lunch, kernel.Monday, "Poisson grillé", "", time.Now())
func NewPatientOrder(
	id, patientID, orderedBy kernel.UUID,
	mealType kernel.MealType,
	day kernel.DayOfWeek,
	menuText, instructions string,
	createdAt time.Time,
) (*PatientOrder, error) {
	lc, lcErr := NewLifecycle(PatientOrderKind, createdAt)

	o := &PatientOrder{
		instructions:  strings.TrimSpace(instructions),
		lifecycle:     lc,
		isConstructed: true,
	}
	if err := errors.Join(
		lcErr,
		o.setIDs(id, patientID, orderedBy),
		o.setMenu(mealType, day, menuText),
	); err != nil {
		return nil, err
	}
	return o, nil
}

// RestorePatientOrder rebuilds an order read from storage.
func RestorePatientOrder(
	id, patientID, orderedBy kernel.UUID,
	mealType kernel.MealType,
	day kernel.DayOfWeek,
	menuText, instructions string,
	lifecycle Lifecycle,
) (*PatientOrder, error) {
	o := &PatientOrder{
		instructions:  instructions,
		lifecycle:     lifecycle,
		isConstructed: true,
	}
	var lcErr error
	if lifecycle.Kind() != PatientOrderKind {
		lcErr = errs.NewValueIsInvalidError("lifecycle kind")
	}
	if err := errors.Join(
		lcErr,
		o.setIDs(id, patientID, orderedBy),
		o.setMenu(mealType, day, menuText),
	); err != nil {
		return nil, err
	}
	return o, nil
}

func (o *PatientOrder) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrPatientOrderIsNotConstructed
	}
	return nil
}

func (o *PatientOrder) IsEqual(other *PatientOrder) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *PatientOrder) ID() kernel.UUID           { return o.id }
func (o *PatientOrder) Kind() Kind                { return PatientOrderKind }
func (o *PatientOrder) PatientID() kernel.UUID    { return o.patientID }
func (o *PatientOrder) OrderedBy() kernel.UUID    { return o.orderedBy }
func (o *PatientOrder) MealType() kernel.MealType { return o.mealType }
func (o *PatientOrder) Day() kernel.DayOfWeek     { return o.day }
func (o *PatientOrder) MenuText() string          { return o.menuText }
func (o *PatientOrder) Instructions() string      { return o.instructions }
func (o *PatientOrder) Lifecycle() Lifecycle      { return o.lifecycle }
func (o *PatientOrder) Status() Status            { return o.lifecycle.Status() }
func (o *PatientOrder) Owner() kernel.UUID        { return o.orderedBy }
func (o *PatientOrder) Recipient() kernel.UUID    { return o.orderedBy }
func (o *PatientOrder) MenuName() string          { return o.menuText }

// ChangeStatus applies one transition of the PatientOrder machine.
func (o *PatientOrder) ChangeStatus(to Status, actor kernel.Actor, now time.Time) error {
	next, err := o.lifecycle.Transition(to, actor, o.Owner(), now)
	if err != nil {
		return err
	}
	o.lifecycle = next
	return nil
}

func (o *PatientOrder) CheckDeletable(actor kernel.Actor) error {
	return o.lifecycle.CheckDeletable(actor)
}

func (o *PatientOrder) setIDs(id, patientID, orderedBy kernel.UUID) error {
	if err := errors.Join(id.Validate(), patientID.Validate(), orderedBy.Validate()); err != nil {
		return err
	}
	o.id = id
	o.patientID = patientID
	o.orderedBy = orderedBy
	return nil
}

func (o *PatientOrder) setMenu(mealType kernel.MealType, day kernel.DayOfWeek, menuText string) error {
	var textErr error
	if strings.TrimSpace(menuText) == "" {
		textErr = errs.NewValueIsRequiredError("menu text")
	}
	if err := errors.Join(mealType.Validate(), day.Validate(), textErr); err != nil {
		return err
	}
	o.mealType = mealType
	o.day = day
	o.menuText = menuText
	return nil
}
