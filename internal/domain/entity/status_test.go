package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusChangeRequest_NormalizedIDs(t *testing.T) {
	tests := []struct {
		name string
		ids  []string
		want []string
	}{
		{"nil", nil, []string{}},
		{"dedup keeps first seen order", []string{"2", "1", "2", "1"}, []string{"2", "1"}},
		{"drops empty", []string{"", "1", ""}, []string{"1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StatusChangeRequest{IDs: tt.ids}.NormalizedIDs())
		})
	}
}

func TestStatusAuditAction(t *testing.T) {
	assert.Equal(t, AuditUsersDisabled, StatusAuditAction(true))
	assert.Equal(t, AuditUsersEnabled, StatusAuditAction(false))
}
