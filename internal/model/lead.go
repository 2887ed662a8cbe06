package model

import (
	"encoding/json"

	"github.com/deppfellow/nettoyage-lausanne/internal/validation"
)

// CollectionLead is where quote requests are stored.
const CollectionLead = "lead"

// Service type labels a visitor can pick on the quote form.
const (
	ServiceTypeResidential = "Nettoyage résidentiel"
	ServiceTypeCommercial  = "Nettoyage commercial"
	ServiceTypeEndOfLease  = "Fin de bail"
	ServiceTypeWindows     = "Nettoyage de vitres"
	ServiceTypeRecurring   = "Entretien récurrent"
	ServiceTypeOther       = "Autre"
)

// ServiceTypes lists every accepted service_type, in form order.
var ServiceTypes = []string{
	ServiceTypeResidential,
	ServiceTypeCommercial,
	ServiceTypeEndOfLease,
	ServiceTypeWindows,
	ServiceTypeRecurring,
	ServiceTypeOther,
}

// Lead is a quote request from a website visitor.
//
// Optional fields are pointers so an absent value is stored as null.
// service_type defaults only when the key is missing from the payload;
// an explicit "" or null is rejected like any other unknown label.
type Lead struct {
	Name          string  `json:"name" bson:"name" validate:"required"`
	Email         string  `json:"email" bson:"email" validate:"required,email"`
	Phone         *string `json:"phone" bson:"phone"`
	ServiceType   string  `json:"service_type" bson:"service_type" validate:"required,oneof='Nettoyage résidentiel' 'Nettoyage commercial' 'Fin de bail' 'Nettoyage de vitres' 'Entretien récurrent' 'Autre'"`
	Address       *string `json:"address" bson:"address"`
	Message       *string `json:"message" bson:"message"`
	PreferredDate *string `json:"preferred_date" bson:"preferred_date"`

	serviceTypeSent bool
}

// NewLead returns an empty Lead ready to be bound.
func NewLead() *Lead {
	return &Lead{}
}

// UnmarshalJSON decodes a lead and records whether service_type was present.
func (l *Lead) UnmarshalJSON(data []byte) error {
	type plain Lead
	if err := json.Unmarshal(data, (*plain)(l)); err != nil {
		return err
	}

	var keys map[string]json.RawMessage
	if err := json.Unmarshal(data, &keys); err != nil {
		return err
	}
	_, l.serviceTypeSent = keys["service_type"]
	return nil
}

// ApplyDefaults sets service_type to "Autre" when the key was not sent.
func (l *Lead) ApplyDefaults() {
	if !l.serviceTypeSent && l.ServiceType == "" {
		l.ServiceType = ServiceTypeOther
	}
}

func (l *Lead) Validate() error {
	return validation.Struct(l)
}

// Collection is the collection Lead documents live in.
func (l *Lead) Collection() string {
	return CollectionLead
}
