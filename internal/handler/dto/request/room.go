package request

import (
	"homestay-api/internal/domain/room"
	"homestay-api/internal/usecase/commands"

	"github.com/jinzhu/copier"
)

type CreateRoomRequest struct {
	Name        *string  `json:"name" binding:"required"`
	Price       *float64 `json:"price" binding:"required"`
	Capacity    *int     `json:"capacity" binding:"required" copier:"-"`
	Description *string  `json:"description" binding:"required"`
	Amenities   []string `json:"amenities" binding:"required"`
	// CustomID is optional; an empty value lets the backend pick the id.
	CustomID string `json:"custom_id,omitempty" copier:"-"`
}

// UpdateRoomRequest is a partial update: absent members stay untouched.
type UpdateRoomRequest struct {
	Name        *string   `json:"name,omitempty"`
	Price       *float64  `json:"price,omitempty"`
	Capacity    *int      `json:"capacity,omitempty" copier:"-"`
	Persons     *int      `json:"persons,omitempty" copier:"-"`
	Description *string   `json:"description,omitempty"`
	Amenities   *[]string `json:"amenities,omitempty" copier:"-"`
}

func (r *CreateRoomRequest) ToInput() (commands.CreateRoomInput, error) {
	var fields room.Fields
	if err := copier.Copy(&fields, r); err != nil {
		return commands.CreateRoomInput{}, err
	}
	if r.Capacity != nil {
		fields.Persons = *r.Capacity
	}
	return commands.CreateRoomInput{CustomID: r.CustomID, Fields: fields}, nil
}

func (r *UpdateRoomRequest) ToPatch() (room.Patch, error) {
	var p room.Patch
	if err := copier.Copy(&p, r); err != nil {
		return room.Patch{}, err
	}
	// persons wins over capacity when both are sent
	p.Persons = r.Capacity
	if r.Persons != nil {
		p.Persons = r.Persons
	}
	if r.Amenities != nil {
		p.Amenities = *r.Amenities
		p.HasAmenities = true
	}
	return p, nil
}
