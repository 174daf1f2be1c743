package model

import "time"

// Message lifecycle. Sent is initial; read follows sent; responded is
// reserved for future use. No transition re-enters sent.
const (
	MessageStatusSent      = "sent"
	MessageStatusRead      = "read"
	MessageStatusResponded = "responded"
)

// Message kinds. Invite messages are created only by the notification
// cascade and carry an invite envelope reference instead of a body.
const (
	MessageKindPlain        = "plain"
	MessageKindInvite       = "invite"
	MessageKindAnnouncement = "announcement"
)

// Message maps to the messages table.
type Message struct {
	MessageID   string     `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"message_id"`
	SenderID    string     `gorm:"type:uuid;not null"                             json:"sender_id"`
	RecipientID string     `gorm:"type:uuid;not null;index"                       json:"recipient_id"`
	Kind        string     `gorm:"type:varchar(20);not null"                      json:"kind"`
	Status      string     `gorm:"type:varchar(20);not null;default:'sent'"       json:"status"`
	Body        *string    `gorm:"type:text"                                      json:"body,omitempty"`
	InviteID    *string    `gorm:"type:uuid"                                      json:"invite_id,omitempty"`
	CreatedAt   time.Time  `gorm:"not null;default:CURRENT_TIMESTAMP"             json:"created_at"`
	RespondedAt *time.Time `json:"responded_at,omitempty"`

	Sender    *User   `gorm:"foreignKey:SenderID;references:UserID"    json:"sender,omitempty"`
	Recipient *User   `gorm:"foreignKey:RecipientID;references:UserID" json:"recipient,omitempty"`
	Invite    *Invite `gorm:"foreignKey:InviteID;references:InviteID"  json:"invite,omitempty"`
}

// TableName sets the table name.
func (Message) TableName() string { return "messages" }
