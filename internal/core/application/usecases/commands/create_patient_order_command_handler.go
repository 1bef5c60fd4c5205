package commands

import (
	"context"
	"log/slog"
	"time"

	"clinicmeals/internal/core/domain/model/catalog"
	"clinicmeals/internal/core/domain/model/kernel"
	"clinicmeals/internal/core/domain/model/order"
	"clinicmeals/internal/core/domain/model/patient"
	"clinicmeals/internal/core/domain/services"
)

const (
	// FallbackMenuEmptyCatalog is frozen into the order when the weekly
	// catalog has no available item at all.
	FallbackMenuEmptyCatalog = "Menu non défini (catalogue vide)"
	// FallbackMenuNoMatch is frozen into the order when no available item
	// matches the patient's slot.
	FallbackMenuNoMatch = "Menu non défini (aucun plat pour ce régime)"
)

// MenuResolver finds the dish of a slot in a catalog snapshot.
type MenuResolver interface {
	Resolve(slot catalog.Slot, items []*catalog.WeeklyMenuItem) services.Resolution
}

// CreatePatientOrderResult tells the caller which menu text was frozen and
// whether it came from the catalog or from a fallback.
type CreatePatientOrderResult struct {
	MenuText string
	Outcome  services.Outcome
}

type CreatePatientOrderCommandHandler struct {
	uowFactory UoWFactory[PatientOrderUoW]
	resolver   MenuResolver
	logger     *slog.Logger
}

func NewCreatePatientOrderCommandHandler(
	uowFactory UoWFactory[PatientOrderUoW],
	resolver MenuResolver,
	logger *slog.Logger,
) CreatePatientOrderCommandHandler {
	return CreatePatientOrderCommandHandler{
		uowFactory: uowFactory,
		resolver:   resolver,
		logger:     logger.With("component", "create_patient_order"),
	}
}

func (h *CreatePatientOrderCommandHandler) Handle(
	ctx context.Context,
	cmd CreatePatientOrderCommand,
) (CreatePatientOrderResult, error) {
	if err := cmd.Validate(); err != nil {
		return CreatePatientOrderResult{}, err
	}
	if err := cmd.Actor().Role().Require(kernel.PlacePatientOrder); err != nil {
		return CreatePatientOrderResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return CreatePatientOrderResult{}, err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	p, err := uow.PatientRepository().Get(ctx, cmd.PatientID())
	if err != nil {
		return CreatePatientOrderResult{}, err
	}
	if !p.IsActive() {
		return CreatePatientOrderResult{}, patient.ErrPatientIsDischarged
	}

	items, err := uow.WeeklyMenuRepository().ListAll(ctx)
	if err != nil {
		return CreatePatientOrderResult{}, err
	}

	slot := catalog.Slot{Day: cmd.Day(), Diet: p.Diet(), MealType: cmd.MealType()}
	res := h.resolver.Resolve(slot, items)
	if res.Duplicates > 0 {
		h.logger.WarnContext(ctx, "ambiguous weekly menu slot, most recent item used",
			"slot", slot.String(),
			"duplicates", res.Duplicates,
			"item_id", res.Item.ID().String(),
		)
	}

	result := CreatePatientOrderResult{Outcome: res.Outcome, MenuText: res.DishText}
	switch res.Outcome {
	case services.EmptyCatalog:
		result.MenuText = FallbackMenuEmptyCatalog
	case services.NoMatch:
		result.MenuText = FallbackMenuNoMatch
	case services.Resolved:
	}

	o, err := order.NewPatientOrder(
		cmd.OrderID(), p.ID(), cmd.Actor().ID(),
		cmd.MealType(), cmd.Day(), result.MenuText, cmd.Instructions(),
		time.Now().UTC(),
	)
	if err != nil {
		return CreatePatientOrderResult{}, err
	}

	if err = uow.PatientOrderRepository().Add(ctx, o); err != nil {
		return CreatePatientOrderResult{}, err
	}
	if err = uow.Commit(ctx); err != nil {
		return CreatePatientOrderResult{}, err
	}

	return result, nil
}
