// Package keygen produces license keys.
package keygen

import (
	"keygate/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type uuidGenerator struct{}

// NewUUIDGenerator returns a KeyGenerator emitting random (version 4) UUIDs read from crypto/rand.
func NewUUIDGenerator() service.KeyGenerator {
	return uuidGenerator{}
}

func (uuidGenerator) Generate() (string, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return "", errors.Wrap(err, "failed to read random key")
	}

	return id.String(), nil
}
