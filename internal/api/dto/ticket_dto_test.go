package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateTicketRequestTracksPresence(t *testing.T) {
	cases := []struct {
		name        string
		body        string
		assigneeSet bool
		assignee    *string
		status      *string
	}{
		{
			name: "no fields",
			body: `{}`,
		},
		{
			name:        "assignee set",
			body:        `{"assignee":"user-1"}`,
			assigneeSet: true,
			assignee:    strptr("user-1"),
		},
		{
			name:        "assignee explicitly null",
			body:        `{"assignee":null}`,
			assigneeSet: true,
		},
		{
			name:   "status only",
			body:   `{"status":"resolved"}`,
			status: strptr("resolved"),
		},
		{
			name:        "both fields",
			body:        `{"assignee":"user-2","status":"in_progress"}`,
			assigneeSet: true,
			assignee:    strptr("user-2"),
			status:      strptr("in_progress"),
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var req UpdateTicketRequest
			require.NoError(t, json.Unmarshal([]byte(tc.body), &req))
			assert.Equal(t, tc.assigneeSet, req.AssigneeSet)
			assert.Equal(t, tc.assignee, req.Assignee)
			assert.Equal(t, tc.status, req.Status)
		})
	}
}

func TestUpdateTicketRequestRejectsMalformedBody(t *testing.T) {
	var req UpdateTicketRequest
	assert.Error(t, json.Unmarshal([]byte(`{"assignee":`), &req))
}

func strptr(s string) *string { return &s }
