package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lebinlenin2004/TravelSoftware/internal/core/domain"
)

func TestRoleCapabilities(t *testing.T) {
	tests := []struct {
		role          domain.UserRole
		createBooking bool
		validate      bool
		analytics     bool
		financial     bool
		auditLogs     bool
	}{
		{domain.RoleAdmin, true, true, true, true, true},
		{domain.RoleSalesAgent, true, false, false, false, false},
		{domain.RoleManager, false, true, true, false, false},
		{domain.RoleAccountant, false, false, true, true, false},
		{domain.RoleAuditor, false, false, false, false, true},
	}

	for _, tt := range tests {
		t.Run(string(tt.role), func(t *testing.T) {
			u := domain.User{Role: tt.role}
			assert.Equal(t, tt.createBooking, u.CanCreateBooking())
			assert.Equal(t, tt.validate, u.CanValidateBooking())
			assert.Equal(t, tt.analytics, u.CanViewAnalytics())
			assert.Equal(t, tt.financial, u.CanViewFinancialReports())
			assert.Equal(t, tt.auditLogs, u.CanViewAuditLogs())
		})
	}
}
