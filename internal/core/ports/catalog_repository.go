package ports

import (
	"context"

	"clinicmeals/internal/core/domain/model/catalog"
	"clinicmeals/internal/core/domain/model/kernel"
)

// WeeklyMenuRepository persists weekly patient menu items.
type WeeklyMenuRepository interface {
	Add(ctx context.Context, item *catalog.WeeklyMenuItem) error
	Update(ctx context.Context, item *catalog.WeeklyMenuItem) error
	Get(ctx context.Context, id kernel.UUID) (*catalog.WeeklyMenuItem, error)
	// ListAll returns the whole weekly catalog, unavailable items included.
	ListAll(ctx context.Context) ([]*catalog.WeeklyMenuItem, error)
}

// EmployeeMenuRepository persists employee menus, photo included.
type EmployeeMenuRepository interface {
	Add(ctx context.Context, m *catalog.EmployeeMenu) error
	Update(ctx context.Context, m *catalog.EmployeeMenu) error
	Get(ctx context.Context, id kernel.UUID) (*catalog.EmployeeMenu, error)
	ListAll(ctx context.Context) ([]*catalog.EmployeeMenu, error)
}
