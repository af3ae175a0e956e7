// Package reference holds the organization and platform lookup entities.
// Both are simple name-keyed records, seeded via upsert and read-only from
// the ticket flow.
package reference

import (
	"fmt"
	"time"
)

// Organization is a customer organization tickets are filed against.
type Organization struct {
	id        uint
	name      string
	createdAt time.Time
}

func NewOrganization(name string) (*Organization, error) {
	if len(name) == 0 {
		return nil, fmt.Errorf("organization name is required")
	}
	return &Organization{name: name}, nil
}

func ReconstructOrganization(id uint, name string, createdAt time.Time) (*Organization, error) {
	if id == 0 {
		return nil, fmt.Errorf("organization ID cannot be zero")
	}
	if len(name) == 0 {
		return nil, fmt.Errorf("organization name is required")
	}
	return &Organization{id: id, name: name, createdAt: createdAt}, nil
}

func (o *Organization) ID() uint {
	return o.id
}

func (o *Organization) Name() string {
	return o.name
}

func (o *Organization) CreatedAt() time.Time {
	return o.createdAt
}

func (o *Organization) SetID(id uint) error {
	if o.id != 0 {
		return fmt.Errorf("organization ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("organization ID cannot be zero")
	}
	o.id = id
	return nil
}

// Platform is the product surface a ticket was raised from.
type Platform struct {
	id        uint
	name      string
	createdAt time.Time
}

func NewPlatform(name string) (*Platform, error) {
	if len(name) == 0 {
		return nil, fmt.Errorf("platform name is required")
	}
	return &Platform{name: name}, nil
}

func ReconstructPlatform(id uint, name string, createdAt time.Time) (*Platform, error) {
	if id == 0 {
		return nil, fmt.Errorf("platform ID cannot be zero")
	}
	if len(name) == 0 {
		return nil, fmt.Errorf("platform name is required")
	}
	return &Platform{id: id, name: name, createdAt: createdAt}, nil
}

func (p *Platform) ID() uint {
	return p.id
}

func (p *Platform) Name() string {
	return p.name
}

func (p *Platform) CreatedAt() time.Time {
	return p.createdAt
}

func (p *Platform) SetID(id uint) error {
	if p.id != 0 {
		return fmt.Errorf("platform ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("platform ID cannot be zero")
	}
	p.id = id
	return nil
}
