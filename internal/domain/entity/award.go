package entity

import (
	"time"

	"github.com/google/uuid"
)

// Award categories.
const (
	AwardCategoryAcademic     = "academic"
	AwardCategoryProfessional = "professional"
	AwardCategoryCompetition  = "competition"
	AwardCategoryRecognition  = "recognition"
	AwardCategoryOther        = "other"
)

// AwardEntry is one award or honor in the vault. Category defaults to
// "other" when not supplied.
type AwardEntry struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"userId"`
	Title       string    `json:"title"`
	Issuer      string    `json:"issuer,omitempty"`
	Date        time.Time `json:"date"`
	Description string    `json:"description,omitempty"`
	Category    string    `json:"category"`
	Tags        []string  `json:"tags"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
