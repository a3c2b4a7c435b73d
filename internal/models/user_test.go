package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRole(t *testing.T) {
	tests := []struct {
		input         string
		expected      Role
		expectedError bool
	}{
		{input: "student", expected: RoleStudent},
		{input: "faculty", expected: RoleFaculty},
		{input: "admin", expected: RoleAdmin},
		{input: "Admin", expectedError: true},
		{input: "", expectedError: true},
		{input: "guest", expectedError: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			role, err := ParseRole(tt.input)
			if tt.expectedError {
				assert.Error(t, err)
				assert.False(t, role.Valid())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, role)
			assert.Equal(t, tt.input, role.String())
		})
	}
}

func TestRole_JSON(t *testing.T) {
	data, err := json.Marshal(UserResponse{ID: 1, Name: "A", Email: "a@example.com", Role: RoleFaculty})
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":1,"name":"A","email":"a@example.com","role":"faculty"}`, string(data))

	var decoded UserResponse
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, RoleFaculty, decoded.Role)

	assert.Error(t, json.Unmarshal([]byte(`{"role":"root"}`), &decoded))

	_, err = json.Marshal(UserResponse{Role: 0})
	assert.Error(t, err)
}

func TestRole_ScanValue(t *testing.T) {
	var r Role
	require.NoError(t, r.Scan([]byte("admin")))
	assert.Equal(t, RoleAdmin, r)
	require.NoError(t, r.Scan("student"))
	assert.Equal(t, RoleStudent, r)
	assert.Error(t, r.Scan(int64(1)))
	assert.Error(t, r.Scan("nobody"))

	v, err := RoleFaculty.Value()
	require.NoError(t, err)
	assert.Equal(t, "faculty", v)

	_, err = Role(9).Value()
	assert.Error(t, err)
}

func TestRoleSet(t *testing.T) {
	staff := NewRoleSet(RoleAdmin, RoleFaculty)

	assert.True(t, staff.Contains(RoleAdmin))
	assert.True(t, staff.Contains(RoleFaculty))
	assert.False(t, staff.Contains(RoleStudent))
	assert.False(t, staff.Contains(Role(0)))
	assert.False(t, staff.Contains(Role(7)))
	assert.Equal(t, []Role{RoleFaculty, RoleAdmin}, staff.Roles())

	empty := NewRoleSet()
	for _, r := range Roles {
		assert.False(t, empty.Contains(r))
	}

	assert.Equal(t, NewRoleSet(RoleStudent), NewRoleSet(RoleStudent, Role(0), Role(200)))
}
