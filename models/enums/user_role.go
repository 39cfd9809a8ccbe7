package enums

// UserRole 表示网关透传的用户角色。
// 角色由身份服务签发并校验，本服务只做门禁判断，不做角色管理。
type UserRole string

const (
	RolePatient    UserRole = "Patient"
	RoleDoctor     UserRole = "Doctor"
	RoleAdmin      UserRole = "Admin"
	RoleSuperAdmin UserRole = "SuperAdmin"
)

// Valid 返回角色是否为已知角色。
func (r UserRole) Valid() bool {
	switch r {
	case RolePatient, RoleDoctor, RoleAdmin, RoleSuperAdmin:
		return true
	}
	return false
}

// In 返回角色是否在给定的角色列表中。
func (r UserRole) In(roles ...UserRole) bool {
	for _, candidate := range roles {
		if r == candidate {
			return true
		}
	}
	return false
}
