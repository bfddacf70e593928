package domain

import "time"

// Comment belongs to a talk. MemberID is nil for anonymous comments and
// ParentID references another comment when the comment is a reply.
type Comment struct {
	ID        uint
	Content   string
	TalkID    uint
	MemberID  *uint
	ParentID  *uint
	Member    *Member
	CreatedAt time.Time
}
