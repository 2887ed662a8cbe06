package model

import "github.com/deppfellow/nettoyage-lausanne/internal/validation"

// CollectionContactMessage is where contact form messages are stored.
const CollectionContactMessage = "contactmessage"

// ContactMessage is a general inquiry sent through the contact form.
type ContactMessage struct {
	Name    string  `json:"name" bson:"name" validate:"required"`
	Email   string  `json:"email" bson:"email" validate:"required,email"`
	Subject *string `json:"subject" bson:"subject"`
	Message string  `json:"message" bson:"message" validate:"required"`
}

// NewContactMessage returns an empty ContactMessage ready to be bound.
func NewContactMessage() *ContactMessage {
	return &ContactMessage{}
}

func (m *ContactMessage) Validate() error {
	return validation.Struct(m)
}

func (m *ContactMessage) Collection() string {
	return CollectionContactMessage
}
