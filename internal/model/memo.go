package model

// Memo is a titled note as exchanged with the remote API and kept in the
// local fallback slot.
type Memo struct {
	ID      string `json:"id"`      // client time-based id or server-assigned; immutable
	Title   string `json:"title"`   // non-empty after trimming
	Content string `json:"content"` // full text; only the list preview is truncated
	Date    string `json:"date"`    // YYYY-MM-DD HH:MM
}
