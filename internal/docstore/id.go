package docstore

import (
	"regexp"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var idPattern = regexp.MustCompile(`^[0-9a-fA-F]{24}$`)

// NewID returns a fresh document identifier in ObjectID hex form.
func NewID() string {
	return primitive.NewObjectID().Hex()
}

// IsValidID reports whether s has the shape of a document identifier.
func IsValidID(s string) bool {
	return idPattern.MatchString(s)
}
