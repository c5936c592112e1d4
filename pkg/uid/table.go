package uid

import "github.com/google/uuid"

// GenerateTableID returns a random (v4) UUID string for a new table.
func GenerateTableID() string {
	return uuid.NewString()
}

// IsTableID reports whether id has the shape produced by GenerateTableID.
func IsTableID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
