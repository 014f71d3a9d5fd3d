package domain

import "testing"

func TestNewCommentAuthor(t *testing.T) {
	tests := []struct {
		name   string
		author string
		want   string
	}{
		{"blank", "", "Anonymous"},
		{"whitespace only", "  \t\n ", "Anonymous"},
		{"trimmed", "  alice  ", "alice"},
		{"plain", "bob", "bob"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewComment(tt.author, "hello", 1000)
			if c.Author != tt.want {
				t.Errorf("NewComment(%q).Author = %q, want %q", tt.author, c.Author, tt.want)
			}
		})
	}
}

func TestNewCommentFields(t *testing.T) {
	c := NewComment("alice", "  hi there \n", 1700000000123)
	if c.ID != "1700000000123" {
		t.Errorf("ID = %q, want %q", c.ID, "1700000000123")
	}
	if c.Text != "hi there" {
		t.Errorf("Text = %q, want %q", c.Text, "hi there")
	}
	if c.Timestamp != 1700000000123 {
		t.Errorf("Timestamp = %d, want 1700000000123", c.Timestamp)
	}
	if got := c.Time().UnixMilli(); got != c.Timestamp {
		t.Errorf("Time().UnixMilli() = %d, want %d", got, c.Timestamp)
	}
}

func TestParseSortOrder(t *testing.T) {
	tests := []struct {
		in   string
		want SortOrder
	}{
		{"newest", SortNewest},
		{"oldest", SortOldest},
		{"", SortNewest},
		{"sideways", SortNewest},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := ParseSortOrder(tt.in); got != tt.want {
				t.Errorf("ParseSortOrder(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestSortOrderToggle(t *testing.T) {
	if got := SortNewest.Toggle(); got != SortOldest {
		t.Errorf("SortNewest.Toggle() = %q, want oldest", got)
	}
	if got := SortOldest.Toggle(); got != SortNewest {
		t.Errorf("SortOldest.Toggle() = %q, want newest", got)
	}
	if got := SortOrder("").String(); got != "newest" {
		t.Errorf("zero SortOrder String() = %q, want newest", got)
	}
}
