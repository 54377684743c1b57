package models

import "time"

// CollaboratorLevel is the experience grade used for payout lookup.
type CollaboratorLevel string

const (
	LevelJunior CollaboratorLevel = "JUNIOR"
	LevelSenior CollaboratorLevel = "SENIOR"
	LevelMaster CollaboratorLevel = "MASTER"
)

// Collaborator is a field worker who executes services. Full address-book
// management lives outside the engine; this record carries what the
// lifecycle and settlement paths need.
type Collaborator struct {
	ID        string            `bson:"id" json:"id"`
	Name      string            `bson:"name" json:"name"`
	Level     CollaboratorLevel `bson:"level" json:"level"`
	Phone     string            `bson:"phone,omitempty" json:"phone,omitempty"`
	Active    bool              `bson:"active" json:"active"`
	CreatedAt time.Time         `bson:"created_at" json:"createdAt"`
}
