package dto

// ── message DTOs ──

// MessageResponse is the inbox view of a message.
type MessageResponse struct {
	ID          string        `json:"id"`
	Sender      *UserResponse `json:"sender,omitempty"`
	RecipientID string        `json:"recipient_id"`
	Kind        string        `json:"kind"`
	Status      string        `json:"status"`
	Body        string        `json:"body,omitempty"`
	InviteID    *string       `json:"invite_id,omitempty"`
	CreatedAt   string        `json:"created_at"`
}

// InviteThreadResponse groups an invite envelope with the messages that
// reference it.
type InviteThreadResponse struct {
	Invite   InviteResponse    `json:"invite"`
	Messages []MessageResponse `json:"messages"`
}
