package entities

import "time"

type Buyer struct {
	ID        string
	Phone     string
	Verified  bool
	CreatedAt time.Time
}
