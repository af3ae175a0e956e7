package ticket

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "helpdesk/internal/domain/ticket/valueobjects"
)

func validRequester() Requester {
	return Requester{
		Name:    "Jordan Reyes",
		Email:   "jordan@example.com",
		Contact: "+1-555-0100",
	}
}

func validSubject() Subject {
	return Subject{
		Title:       "Cannot log in to dashboard",
		Description: "Login fails with a 500 after entering credentials.",
	}
}

func newTestTicket(t *testing.T) *Ticket {
	t.Helper()
	tk, err := NewTicket(
		validRequester(),
		validSubject(),
		vo.CategoryBugs,
		vo.PriorityMedium,
		vo.TypeSupport,
		1,
		2,
		nil,
	)
	require.NoError(t, err)
	return tk
}

func TestNewTicket(t *testing.T) {
	tests := []struct {
		name       string
		subject    Subject
		category   vo.Category
		priority   vo.Priority
		ticketType vo.TicketType
		orgID      uint
		platformID uint
		wantErr    string
	}{
		{
			name:       "valid ticket",
			subject:    validSubject(),
			category:   vo.CategoryBugs,
			priority:   vo.PriorityLow,
			ticketType: vo.TypeSupport,
			orgID:      1,
			platformID: 1,
		},
		{
			name:       "missing title",
			subject:    Subject{Description: "something broke"},
			category:   vo.CategoryBugs,
			priority:   vo.PriorityLow,
			ticketType: vo.TypeSupport,
			orgID:      1,
			platformID: 1,
			wantErr:    "title is required",
		},
		{
			name:       "title too long",
			subject:    Subject{Title: strings.Repeat("a", 201), Description: "desc"},
			category:   vo.CategoryBugs,
			priority:   vo.PriorityLow,
			ticketType: vo.TypeSupport,
			orgID:      1,
			platformID: 1,
			wantErr:    "maximum length",
		},
		{
			name:       "missing description",
			subject:    Subject{Title: "broken"},
			category:   vo.CategoryBugs,
			priority:   vo.PriorityLow,
			ticketType: vo.TypeSupport,
			orgID:      1,
			platformID: 1,
			wantErr:    "description is required",
		},
		{
			name:       "invalid category",
			subject:    validSubject(),
			category:   vo.Category("gardening"),
			priority:   vo.PriorityLow,
			ticketType: vo.TypeSupport,
			orgID:      1,
			platformID: 1,
			wantErr:    "invalid category",
		},
		{
			name:       "invalid priority",
			subject:    validSubject(),
			category:   vo.CategoryBugs,
			priority:   vo.Priority("urgent"),
			ticketType: vo.TypeSupport,
			orgID:      1,
			platformID: 1,
			wantErr:    "invalid priority",
		},
		{
			name:       "missing organization",
			subject:    validSubject(),
			category:   vo.CategoryBugs,
			priority:   vo.PriorityLow,
			ticketType: vo.TypeSupport,
			orgID:      0,
			platformID: 1,
			wantErr:    "organization is required",
		},
		{
			name:       "missing platform",
			subject:    validSubject(),
			category:   vo.CategoryBugs,
			priority:   vo.PriorityLow,
			ticketType: vo.TypeSupport,
			orgID:      1,
			platformID: 0,
			wantErr:    "platform is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tk, err := NewTicket(validRequester(), tt.subject, tt.category, tt.priority, tt.ticketType, tt.orgID, tt.platformID, nil)
			if tt.wantErr != "" {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, vo.StatusNew, tk.Status())
			assert.NotNil(t, tk.Attachments())
			assert.Empty(t, tk.Attachments())
			assert.False(t, tk.CreatedAt().IsZero())
		})
	}
}

func TestTicket_SetSerial(t *testing.T) {
	tk := newTestTicket(t)

	assert.NoError(t, tk.SetSerial("TKT-000042"))
	assert.Equal(t, "TKT-000042", tk.Serial())

	err := tk.SetSerial("TKT-000043")
	assert.Error(t, err)
	assert.Equal(t, "TKT-000042", tk.Serial())
}

func TestTicket_ChangeStatus(t *testing.T) {
	t.Run("allowed transition", func(t *testing.T) {
		tk := newTestTicket(t)
		assert.NoError(t, tk.ChangeStatus(vo.StatusOpen))
		assert.Equal(t, vo.StatusOpen, tk.Status())
	})

	t.Run("disallowed transition", func(t *testing.T) {
		tk := newTestTicket(t)
		err := tk.ChangeStatus(vo.StatusClosed)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "cannot transition")
		assert.Equal(t, vo.StatusNew, tk.Status())
	})

	t.Run("same status is a no-op", func(t *testing.T) {
		tk := newTestTicket(t)
		before := tk.UpdatedAt()
		assert.NoError(t, tk.ChangeStatus(vo.StatusNew))
		assert.Equal(t, before, tk.UpdatedAt())
	})

	t.Run("resolve without remarks rejected", func(t *testing.T) {
		tk := newTestTicket(t)
		require.NoError(t, tk.ChangeStatus(vo.StatusOpen))

		err := tk.ChangeStatus(vo.StatusResolved)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "remarks")
		assert.Equal(t, vo.StatusOpen, tk.Status())
	})

	t.Run("resolve with remarks already set", func(t *testing.T) {
		tk := newTestTicket(t)
		require.NoError(t, tk.ChangeStatus(vo.StatusOpen))
		require.NoError(t, tk.SetResolvedRemarks("restarted the auth service"))

		assert.NoError(t, tk.ChangeStatus(vo.StatusResolved))
		assert.Equal(t, vo.StatusResolved, tk.Status())
	})

	t.Run("invalid status", func(t *testing.T) {
		tk := newTestTicket(t)
		assert.Error(t, tk.ChangeStatus(vo.TicketStatus("archived")))
	})
}

func TestTicket_Resolve(t *testing.T) {
	t.Run("sets remarks and status together", func(t *testing.T) {
		tk := newTestTicket(t)
		require.NoError(t, tk.ChangeStatus(vo.StatusOpen))

		assert.NoError(t, tk.Resolve("cleared the stale session cache"))
		assert.Equal(t, vo.StatusResolved, tk.Status())
		assert.Equal(t, "cleared the stale session cache", tk.ResolvedRemarks())
	})

	t.Run("empty remarks rejected", func(t *testing.T) {
		tk := newTestTicket(t)
		require.NoError(t, tk.ChangeStatus(vo.StatusOpen))

		assert.Error(t, tk.Resolve(""))
		assert.Equal(t, vo.StatusOpen, tk.Status())
	})

	t.Run("resolve from new rejected", func(t *testing.T) {
		tk := newTestTicket(t)
		err := tk.Resolve("done")
		assert.Error(t, err)
		assert.Equal(t, vo.StatusNew, tk.Status())
	})
}

func TestTicket_SetResolvedRemarks(t *testing.T) {
	tk := newTestTicket(t)

	assert.Error(t, tk.SetResolvedRemarks(""))
	assert.Error(t, tk.SetResolvedRemarks(strings.Repeat("x", 2001)))
	assert.NoError(t, tk.SetResolvedRemarks(strings.Repeat("x", 2000)))
}

func TestTicket_UpdateSubject(t *testing.T) {
	title := "Updated title"
	description := "Updated description"
	empty := ""

	t.Run("updates both fields", func(t *testing.T) {
		tk := newTestTicket(t)
		require.NoError(t, tk.UpdateSubject(&title, &description))
		assert.Equal(t, title, tk.Subject().Title)
		assert.Equal(t, description, tk.Subject().Description)
	})

	t.Run("nil leaves field untouched", func(t *testing.T) {
		tk := newTestTicket(t)
		original := tk.Subject().Description
		require.NoError(t, tk.UpdateSubject(&title, nil))
		assert.Equal(t, title, tk.Subject().Title)
		assert.Equal(t, original, tk.Subject().Description)
	})

	t.Run("empty title rejected", func(t *testing.T) {
		tk := newTestTicket(t)
		assert.Error(t, tk.UpdateSubject(&empty, nil))
	})

	t.Run("empty description rejected", func(t *testing.T) {
		tk := newTestTicket(t)
		assert.Error(t, tk.UpdateSubject(nil, &empty))
	})
}

func TestTicket_Attachments(t *testing.T) {
	tk := newTestTicket(t)

	tk.ReplaceAttachments([]Attachment{
		{ID: "att-1", URL: "/uploads/att-1", Filename: "screenshot.png"},
	})
	require.Len(t, tk.Attachments(), 1)

	// The getter returns a copy; mutating it must not affect the ticket.
	got := tk.Attachments()
	got[0].Filename = "mutated.png"
	assert.Equal(t, "screenshot.png", tk.Attachments()[0].Filename)

	tk.ReplaceAttachments(nil)
	assert.NotNil(t, tk.Attachments())
	assert.Empty(t, tk.Attachments())
}

func TestFormatSerial(t *testing.T) {
	tests := []struct {
		value int64
		want  string
	}{
		{1, "TKT-000001"},
		{42, "TKT-000042"},
		{999999, "TKT-999999"},
		{1000000, "TKT-1000000"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatSerial(tt.value))
	}
}

func TestNewActivityEntry(t *testing.T) {
	t.Run("valid entry", func(t *testing.T) {
		entry, err := NewActivityEntry("admin@example.com", ActionStatusChanged, "open", "resolved", "")
		require.NoError(t, err)
		assert.Equal(t, "open", entry.FromValue())
		assert.Equal(t, "resolved", entry.ToValue())
		assert.False(t, entry.CreatedAt().IsZero())
	})

	t.Run("missing actor", func(t *testing.T) {
		_, err := NewActivityEntry("", ActionStatusChanged, "", "", "")
		assert.Error(t, err)
	})

	t.Run("missing action", func(t *testing.T) {
		_, err := NewActivityEntry("admin@example.com", "", "", "", "")
		assert.Error(t, err)
	})
}

func TestActivityEntry_BindTicket(t *testing.T) {
	entry, err := NewActivityEntry("admin@example.com", ActionTicketCreated, "", "new", "")
	require.NoError(t, err)

	require.NoError(t, entry.BindTicket(7))
	assert.Equal(t, uint(7), entry.TicketID())

	// Rebinding to the same ticket is fine, another ticket is not.
	assert.NoError(t, entry.BindTicket(7))
	assert.Error(t, entry.BindTicket(8))
}

func TestNewComment(t *testing.T) {
	t.Run("valid comment", func(t *testing.T) {
		c, err := NewComment(3, "admin@example.com", "Looking into this now.")
		require.NoError(t, err)
		assert.Equal(t, uint(3), c.TicketID())
		assert.Equal(t, "Looking into this now.", c.Content())
	})

	t.Run("empty content", func(t *testing.T) {
		_, err := NewComment(3, "admin@example.com", "")
		assert.Error(t, err)
	})

	t.Run("content too long", func(t *testing.T) {
		_, err := NewComment(3, "admin@example.com", strings.Repeat("a", 5001))
		assert.Error(t, err)
	})

	t.Run("missing ticket", func(t *testing.T) {
		_, err := NewComment(0, "admin@example.com", "hello")
		assert.Error(t, err)
	})
}
