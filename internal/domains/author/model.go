package author

import (
	"github.com/google/uuid"
)

// Author is the domain entity. The id is store-assigned and immutable;
// FollowersNumber is the audience-reach count the rating engine feeds on.
type Author struct {
	ID              uuid.UUID `json:"id" db:"id"`
	Name            string    `json:"name" db:"name"`
	Age             int       `json:"age" db:"age"`
	FollowersNumber int       `json:"followersNumber" db:"followers_number"`
}
