package entities

import (
	"time"

	"github.com/google/uuid"
)

type Member struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Username string    `gorm:"uniqueIndex" json:"username"`
	Email    string    `json:"email,omitempty"`
	Password string    `json:"-"`

	Timestamp
}

// Friendship is a directed edge: MemberID follows FriendID. The reverse
// edge is a separate row.
type Friendship struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	MemberID  uuid.UUID `gorm:"index" json:"member_id"`
	FriendID  uuid.UUID `gorm:"index" json:"friend_id"`
	CreatedAt time.Time `gorm:"type:timestamp" json:"created_at"`

	Member *Member `gorm:"foreignKey:MemberID"`
	Friend *Member `gorm:"foreignKey:FriendID"`
}
