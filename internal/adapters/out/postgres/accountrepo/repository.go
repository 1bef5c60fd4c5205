package accountrepo

import (
	"context"
	"errors"
	"strings"

	"clinicmeals/internal/core/domain/model/account"
	"clinicmeals/internal/core/domain/model/kernel"
	"clinicmeals/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const uniqueViolation = "23505"

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

type GormAccountRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

func NewGormAccountRepository(db *gorm.DB, tracker aggregateTracker) *GormAccountRepository {
	return &GormAccountRepository{db: db, tracker: tracker}
}

func (r *GormAccountRepository) Add(ctx context.Context, aggregate *account.Account) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return errs.NewValueIsInvalidErrorWithCause("login", errors.New("login is already taken"))
		}
		return errs.NewPersistenceError("account insert", err)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormAccountRepository) Get(ctx context.Context, id kernel.UUID) (*account.Account, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto AccountDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("account", id.String())
		}
		return nil, errs.NewPersistenceError("account select", err)
	}

	return toDomain(dto)
}

// GetByLogin matches the login case-insensitively.
func (r *GormAccountRepository) GetByLogin(ctx context.Context, login string) (*account.Account, error) {
	login = strings.ToLower(strings.TrimSpace(login))

	var dto AccountDTO
	if err := r.db.WithContext(ctx).First(&dto, "login = ?", login).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("account", login)
		}
		return nil, errs.NewPersistenceError("account select", err)
	}

	return toDomain(dto)
}
