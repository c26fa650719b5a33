package domain

// Comment header values offered by the case UI.
const (
	CommentHeaderInvestigation   = "Investigation"
	CommentHeaderCustomerContact = "Customer Contact"
	CommentHeaderResolution      = "Resolution"
	CommentHeaderNote            = "Note"
)

// CommentHeaders lists the generated header values. Clients may submit any
// header on create or update.
var CommentHeaders = []string{
	CommentHeaderInvestigation,
	CommentHeaderCustomerContact,
	CommentHeaderResolution,
	CommentHeaderNote,
}

// Comment is an analyst note attached to a case.
type Comment struct {
	ID        int    `json:"id"`
	AuthorID  int    `json:"authorId"`
	Header    string `json:"header"`
	Content   string `json:"content"`
	CreatedAt int64  `json:"createdAt"`
	UpdatedAt int64  `json:"updatedAt"`
}
