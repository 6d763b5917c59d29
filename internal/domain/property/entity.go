package property

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyPropertyName   = errors.New("property name cannot be empty")
	ErrPropertyNameTooLong = errors.New("property name is too long (max 255 characters)")
	ErrNegativeNightlyRate = errors.New("nightly rate cannot be negative")
)

const MaxPropertyNameLength = 255

// Property is the rentable unit the engine reserves. The catalog
// collaborator owns everything else about it; the engine only reads
// identity and the nightly rate.
type Property struct {
	id               uuid.UUID
	name             string
	nightlyRateCents int64
	createdAt        time.Time
	updatedAt        time.Time
}

func NewProperty(id uuid.UUID, name string, nightlyRateCents int64) (*Property, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyPropertyName
	}
	if len(name) > MaxPropertyNameLength {
		return nil, ErrPropertyNameTooLong
	}
	if nightlyRateCents < 0 {
		return nil, ErrNegativeNightlyRate
	}

	return &Property{
		id:               id,
		name:             name,
		nightlyRateCents: nightlyRateCents,
	}, nil
}

func (p *Property) ID() uuid.UUID           { return p.id }
func (p *Property) Name() string            { return p.name }
func (p *Property) NightlyRateCents() int64 { return p.nightlyRateCents }
func (p *Property) CreatedAt() time.Time    { return p.createdAt }
func (p *Property) UpdatedAt() time.Time    { return p.updatedAt }
