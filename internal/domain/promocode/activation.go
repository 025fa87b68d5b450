package promocode

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

// Activation records one successful redemption. It is never modified.
type Activation struct {
	id          uuid.UUID
	promocodeID uuid.UUID
	userID      uuid.UUID
	code        string
	createdAt   time.Time
}

func NewActivation(promocodeID, userID uuid.UUID, code string, at time.Time) *Activation {
	return &Activation{
		id:          uuid.New(),
		promocodeID: promocodeID,
		userID:      userID,
		code:        code,
		createdAt:   at,
	}
}

func (a *Activation) ID() uuid.UUID          { return a.id }
func (a *Activation) PromocodeID() uuid.UUID { return a.promocodeID }
func (a *Activation) UserID() uuid.UUID      { return a.userID }
func (a *Activation) Code() string           { return a.code }
func (a *Activation) CreatedAt() time.Time   { return a.createdAt }

type Comment struct {
	id          uuid.UUID
	promocodeID uuid.UUID
	authorID    uuid.UUID
	text        string
	createdAt   time.Time
}

func NewComment(promocodeID, authorID uuid.UUID, text string, at time.Time) (*Comment, error) {
	text = strings.TrimSpace(text)
	if n := utf8.RuneCountInString(text); n < MinCommentLen || n > MaxCommentLen {
		return nil, ErrInvalidCommentText
	}
	return &Comment{
		id:          uuid.New(),
		promocodeID: promocodeID,
		authorID:    authorID,
		text:        text,
		createdAt:   at,
	}, nil
}

func ReconstructComment(id, promocodeID, authorID uuid.UUID, text string, createdAt time.Time) *Comment {
	return &Comment{id: id, promocodeID: promocodeID, authorID: authorID, text: text, createdAt: createdAt}
}

func (c *Comment) Edit(text string) error {
	text = strings.TrimSpace(text)
	if n := utf8.RuneCountInString(text); n < MinCommentLen || n > MaxCommentLen {
		return ErrInvalidCommentText
	}
	c.text = text
	return nil
}

func (c *Comment) IsAuthoredBy(userID uuid.UUID) bool { return c.authorID == userID }

func (c *Comment) ID() uuid.UUID          { return c.id }
func (c *Comment) PromocodeID() uuid.UUID { return c.promocodeID }
func (c *Comment) AuthorID() uuid.UUID    { return c.authorID }
func (c *Comment) Text() string           { return c.text }
func (c *Comment) CreatedAt() time.Time   { return c.createdAt }
