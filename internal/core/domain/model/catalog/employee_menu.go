package catalog

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"clinicmeals/internal/core/domain/model/kernel"
	"clinicmeals/internal/pkg/errs"
)

var ErrEmployeeMenuIsNotConstructed = errors.New("EmployeeMenu must be created via NewEmployeeMenu constructor")

// MaxPhotoSize bounds an employee menu photo.
const MaxPhotoSize = 5 << 20

// Photo is an image attached to an employee menu.
type Photo struct {
	contentType string
	data        []byte
}

// NewPhoto sniffs the content type from data and accepts only images.
func NewPhoto(data []byte) (Photo, error) {
	if len(data) == 0 {
		return Photo{}, errs.NewValueIsRequiredError("photo")
	}
	if len(data) > MaxPhotoSize {
		return Photo{}, errs.NewValueIsOutOfRangeError("photo size", len(data), 1, MaxPhotoSize)
	}
	ct := http.DetectContentType(data)
	if !strings.HasPrefix(ct, "image/") {
		return Photo{}, errs.NewValueIsInvalidErrorWithCause("photo", fmt.Errorf("%s is not an image", ct))
	}
	return Photo{contentType: ct, data: data}, nil
}

func (p Photo) ContentType() string { return p.contentType }
func (p Photo) Data() []byte        { return p.data }
func (p Photo) IsEmpty() bool       { return len(p.data) == 0 }

// EmployeeMenu is a priced dish staff can order.
type EmployeeMenu struct {
	id          kernel.UUID
	name        string
	description string
	basePrice   kernel.Price
	available   bool
	photo       Photo
	createdAt   time.Time

	isConstructed bool
}

func NewEmployeeMenu(id kernel.UUID, name, description string, basePrice kernel.Price, createdAt time.Time) (*EmployeeMenu, error) {
	return RestoreEmployeeMenu(id, name, description, basePrice, true, Photo{}, createdAt)
}

func RestoreEmployeeMenu(
	id kernel.UUID,
	name, description string,
	basePrice kernel.Price,
	available bool,
	photo Photo,
	createdAt time.Time,
) (*EmployeeMenu, error) {
	var errList []error
	errList = append(errList, id.Validate(), basePrice.Validate())
	if strings.TrimSpace(name) == "" {
		errList = append(errList, errs.NewValueIsRequiredError("menu name"))
	}
	if createdAt.IsZero() {
		errList = append(errList, errs.NewValueIsRequiredError("created at"))
	}
	if err := errors.Join(errList...); err != nil {
		return nil, err
	}

	return &EmployeeMenu{
		id:            id,
		name:          strings.TrimSpace(name),
		description:   strings.TrimSpace(description),
		basePrice:     basePrice,
		available:     available,
		photo:         photo,
		createdAt:     createdAt,
		isConstructed: true,
	}, nil
}

func (m *EmployeeMenu) Validate() error {
	if m == nil || !m.isConstructed {
		return ErrEmployeeMenuIsNotConstructed
	}
	return nil
}

func (m *EmployeeMenu) ID() kernel.UUID         { return m.id }
func (m *EmployeeMenu) Name() string            { return m.name }
func (m *EmployeeMenu) Description() string     { return m.description }
func (m *EmployeeMenu) BasePrice() kernel.Price { return m.basePrice }
func (m *EmployeeMenu) IsAvailable() bool       { return m.available }
func (m *EmployeeMenu) Photo() Photo            { return m.photo }
func (m *EmployeeMenu) CreatedAt() time.Time    { return m.createdAt }

func (m *EmployeeMenu) SetAvailable(available bool) {
	m.available = available
}

// ChangePrice affects orders placed afterwards only.
func (m *EmployeeMenu) ChangePrice(price kernel.Price) error {
	if err := price.Validate(); err != nil {
		return err
	}
	m.basePrice = price
	return nil
}

func (m *EmployeeMenu) AttachPhoto(photo Photo) error {
	if photo.IsEmpty() {
		return errs.NewValueIsRequiredError("photo")
	}
	m.photo = photo
	return nil
}
