package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"clinicmeals/internal/core/domain/model/kernel"
	"clinicmeals/internal/pkg/errs"
)

// ErrEmployeeOrderIsNotConstructed is returned for an EmployeeOrder not built
// by NewEmployeeOrder or RestoreEmployeeOrder.
var ErrEmployeeOrderIsNotConstructed = errors.New("EmployeeOrder must be created via NewEmployeeOrder constructor")

// PriceCalculator turns a base price and an accompaniment count into the
// order total.
type PriceCalculator interface {
	ComputePrice(base kernel.Price, accompaniments int) (kernel.Price, error)
}

// EmployeeOrder is a meal a staff member orders for themselves.
//
// The total price is never set directly: it is computed once by the
// PriceCalculator from the base price snapshot and the accompaniment count,
// and re-checked against the same function on restore.
type EmployeeOrder struct {
	id               kernel.UUID
	employeeID       kernel.UUID
	menuID           kernel.UUID
	menuName         string
	basePrice        kernel.Price
	accompaniments   int
	totalPrice       kernel.Price
	deliveryLocation string
	instructions     string
	lifecycle        Lifecycle

	isConstructed bool
}

var _ Order = (*EmployeeOrder)(nil)

// EmployeeOrderParams groups the caller-supplied fields of an employee order.
type EmployeeOrderParams struct {
	ID               kernel.UUID
	EmployeeID       kernel.UUID
	MenuID           kernel.UUID
	MenuName         string
	BasePrice        kernel.Price
	Accompaniments   int
	DeliveryLocation string
	Instructions     string
}

// NewEmployeeOrder creates an order in Ordered with its total computed by calc.
func NewEmployeeOrder(p EmployeeOrderParams, calc PriceCalculator, createdAt time.Time) (*EmployeeOrder, error) {
	if calc == nil {
		return nil, errs.NewValueIsRequiredError("price calculator")
	}
	lc, lcErr := NewLifecycle(EmployeeOrderKind, createdAt)

	o := &EmployeeOrder{lifecycle: lc, isConstructed: true}
	if err := errors.Join(lcErr, o.set(p, calc)); err != nil {
		return nil, err
	}
	return o, nil
}

// RestoreEmployeeOrder rebuilds an order read from storage. A stored total
// that differs from calc's result for the stored base price and count is
// rejected.
func RestoreEmployeeOrder(
	p EmployeeOrderParams,
	totalPrice kernel.Price,
	lifecycle Lifecycle,
	calc PriceCalculator,
) (*EmployeeOrder, error) {
	if calc == nil {
		return nil, errs.NewValueIsRequiredError("price calculator")
	}
	var lcErr error
	if lifecycle.Kind() != EmployeeOrderKind {
		lcErr = errs.NewValueIsInvalidError("lifecycle kind")
	}

	o := &EmployeeOrder{lifecycle: lifecycle, isConstructed: true}
	if err := errors.Join(lcErr, o.set(p, calc)); err != nil {
		return nil, err
	}
	if !o.totalPrice.IsEqual(totalPrice) {
		return nil, errs.NewValueIsInvalidErrorWithCause("total price",
			fmt.Errorf("stored %s differs from computed %s", totalPrice, o.totalPrice))
	}
	return o, nil
}

func (o *EmployeeOrder) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrEmployeeOrderIsNotConstructed
	}
	return nil
}

func (o *EmployeeOrder) IsEqual(other *EmployeeOrder) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *EmployeeOrder) ID() kernel.UUID          { return o.id }
func (o *EmployeeOrder) Kind() Kind               { return EmployeeOrderKind }
func (o *EmployeeOrder) EmployeeID() kernel.UUID  { return o.employeeID }
func (o *EmployeeOrder) MenuID() kernel.UUID      { return o.menuID }
func (o *EmployeeOrder) MenuName() string         { return o.menuName }
func (o *EmployeeOrder) BasePrice() kernel.Price  { return o.basePrice }
func (o *EmployeeOrder) Accompaniments() int      { return o.accompaniments }
func (o *EmployeeOrder) TotalPrice() kernel.Price { return o.totalPrice }
func (o *EmployeeOrder) DeliveryLocation() string { return o.deliveryLocation }
func (o *EmployeeOrder) Instructions() string     { return o.instructions }
func (o *EmployeeOrder) Lifecycle() Lifecycle     { return o.lifecycle }
func (o *EmployeeOrder) Status() Status           { return o.lifecycle.Status() }
func (o *EmployeeOrder) Owner() kernel.UUID       { return o.employeeID }
func (o *EmployeeOrder) Recipient() kernel.UUID   { return o.employeeID }

// ChangeStatus applies one transition of the EmployeeOrder machine.
func (o *EmployeeOrder) ChangeStatus(to Status, actor kernel.Actor, now time.Time) error {
	next, err := o.lifecycle.Transition(to, actor, o.Owner(), now)
	if err != nil {
		return err
	}
	o.lifecycle = next
	return nil
}

func (o *EmployeeOrder) CheckDeletable(actor kernel.Actor) error {
	return o.lifecycle.CheckDeletable(actor)
}

func (o *EmployeeOrder) set(p EmployeeOrderParams, calc PriceCalculator) error {
	var errList []error
	errList = append(errList, p.ID.Validate(), p.EmployeeID.Validate(), p.MenuID.Validate(), p.BasePrice.Validate())
	if strings.TrimSpace(p.MenuName) == "" {
		errList = append(errList, errs.NewValueIsRequiredError("menu name"))
	}
	if strings.TrimSpace(p.DeliveryLocation) == "" {
		errList = append(errList, errs.NewValueIsRequiredError("delivery location"))
	}
	if err := errors.Join(errList...); err != nil {
		return err
	}

	total, err := calc.ComputePrice(p.BasePrice, p.Accompaniments)
	if err != nil {
		return err
	}

	o.id = p.ID
	o.employeeID = p.EmployeeID
	o.menuID = p.MenuID
	o.menuName = p.MenuName
	o.basePrice = p.BasePrice
	o.accompaniments = p.Accompaniments
	o.totalPrice = total
	o.deliveryLocation = strings.TrimSpace(p.DeliveryLocation)
	o.instructions = strings.TrimSpace(p.Instructions)
	return nil
}
