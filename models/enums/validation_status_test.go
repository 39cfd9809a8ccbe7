package enums

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationStatus_IsValidVerdict(t *testing.T) {
	assert.True(t, Validated.IsValidVerdict())
	assert.True(t, ValidationRejected.IsValidVerdict())
	// pending 是初始状态，不是可写入的裁定。
	assert.False(t, ValidationPending.IsValidVerdict())
	assert.False(t, ValidationStatus(42).IsValidVerdict())
}

func TestValidationStatus_IsTerminal(t *testing.T) {
	assert.False(t, ValidationPending.IsTerminal())
	assert.True(t, Validated.IsTerminal())
	assert.True(t, ValidationRejected.IsTerminal())
}

func TestValidationStatus_String(t *testing.T) {
	assert.Equal(t, "pending", ValidationPending.String())
	assert.Equal(t, "validated", Validated.String())
	assert.Equal(t, "rejected", ValidationRejected.String())
	assert.Equal(t, "unknown(7)", ValidationStatus(7).String())
}

func TestUserRole_Valid(t *testing.T) {
	assert.True(t, RolePatient.Valid())
	assert.True(t, RoleDoctor.Valid())
	assert.True(t, RoleAdmin.Valid())
	assert.True(t, RoleSuperAdmin.Valid())
	assert.False(t, UserRole("Wizard").Valid())
	assert.False(t, UserRole("").Valid())
}

func TestUserRole_In(t *testing.T) {
	assert.True(t, RoleAdmin.In(RoleAdmin, RoleSuperAdmin))
	assert.False(t, RolePatient.In(RoleAdmin, RoleSuperAdmin))
	assert.False(t, RolePatient.In())
}
