package id

import "github.com/google/uuid"

// Generator mints unique identifiers, used for purchase receipts.
type Generator interface {
	NewID() string
}

type uuidGenerator struct{}

func NewUUIDGenerator() Generator { return uuidGenerator{} }

func (uuidGenerator) NewID() string { return uuid.NewString() }
