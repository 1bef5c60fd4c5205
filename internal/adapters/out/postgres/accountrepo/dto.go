package accountrepo

import (
	"time"

	"clinicmeals/internal/core/domain/model/account"
	"clinicmeals/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

type AccountDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Login        string    `gorm:"uniqueIndex"`
	DisplayName  string
	PasswordHash string
	Role         string
	CreatedAt    time.Time
}

func (AccountDTO) TableName() string {
	return "accounts"
}

func fromDomain(a *account.Account) AccountDTO {
	return AccountDTO{
		ID:           a.ID().Bytes(),
		Login:        a.Login(),
		DisplayName:  a.DisplayName(),
		PasswordHash: a.PasswordHash(),
		Role:         a.Role().String(),
		CreatedAt:    a.CreatedAt(),
	}
}

func toDomain(dto AccountDTO) (*account.Account, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	role, err := kernel.RoleFromString(dto.Role)
	if err != nil {
		return nil, err
	}

	return account.NewAccount(id, dto.Login, dto.DisplayName, dto.PasswordHash, role, dto.CreatedAt)
}
