package common

import "github.com/google/uuid"

// UUID is the identity type shared by every entity in the system.
type UUID = uuid.UUID

var NilUUID = uuid.Nil

func NewUUID() UUID {
	return uuid.New()
}

func ParseUUID(value string) (UUID, error) {
	return uuid.Parse(value)
}
