package commands

import (
	"errors"

	"clinicmeals/internal/core/domain/model/catalog"
	"clinicmeals/internal/core/domain/model/kernel"
	"clinicmeals/internal/pkg/guard"
)

var ErrAttachEmployeeMenuPhotoCommandIsNotConstructed = errors.New(
	"AttachEmployeeMenuPhotoCommand must be created via NewAttachEmployeeMenuPhotoCommand constructor",
)

// AttachEmployeeMenuPhotoCommand carries the uploaded file itself.
type AttachEmployeeMenuPhotoCommand struct {
	actor  kernel.Actor
	menuID kernel.UUID
	photo  catalog.Photo

	guard guard.ConstructorGuard
}

func NewAttachEmployeeMenuPhotoCommand(actor kernel.Actor, menuID kernel.UUID, data []byte) (AttachEmployeeMenuPhotoCommand, error) {
	photo, photoErr := catalog.NewPhoto(data)
	if err := errors.Join(actor.Validate(), menuID.Validate(), photoErr); err != nil {
		return AttachEmployeeMenuPhotoCommand{}, err
	}
	return AttachEmployeeMenuPhotoCommand{
		actor:  actor,
		menuID: menuID,
		photo:  photo,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (c AttachEmployeeMenuPhotoCommand) Validate() error {
	return c.guard.Validate(ErrAttachEmployeeMenuPhotoCommandIsNotConstructed)
}

func (c AttachEmployeeMenuPhotoCommand) Actor() kernel.Actor  { return c.actor }
func (c AttachEmployeeMenuPhotoCommand) MenuID() kernel.UUID  { return c.menuID }
func (c AttachEmployeeMenuPhotoCommand) Photo() catalog.Photo { return c.photo }
