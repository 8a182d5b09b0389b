package authorize

type Action string
type Resource string
type Role string
type Domain string

// ----------------------------
// Actions
// ----------------------------

const (
	ActionCreate Action = "create"
	ActionRead   Action = "read"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
	ActionList   Action = "list"

	// Lifecycle actions
	ActionCancel   Action = "cancel"
	ActionUpload   Action = "upload"
	ActionDownload Action = "download"

	// RBAC-specific actions
	ActionGrant  Action = "grant"
	ActionRevoke Action = "revoke"
)

const (
	WildcardAction Action = "*"
)

var KnownActions = map[Action]struct{}{
	ActionCreate: {}, ActionRead: {}, ActionUpdate: {}, ActionDelete: {}, ActionList: {},
	ActionCancel: {}, ActionUpload: {}, ActionDownload: {},
	ActionGrant: {}, ActionRevoke: {},
}

// ----------------------------
// Resources
// ----------------------------

const (
	WildcardResource Resource = "*"

	// Identity / auth
	ResourceUser        Resource = "user"
	ResourceAuthSession Resource = "auth_session"

	// Clinical records
	ResourcePatient  Resource = "patient"
	ResourceDocument Resource = "document"
	ResourceSession  Resource = "session"

	// Staff
	ResourceTherapist Resource = "therapist"

	// Admin surface
	ResourceDashboard Resource = "dashboard"
	ResourceRBAC      Resource = "rbac"
	ResourceSystem    Resource = "system"
)

var KnownResources = map[Resource]struct{}{
	ResourceUser: {}, ResourceAuthSession: {},
	ResourcePatient: {}, ResourceDocument: {}, ResourceSession: {},
	ResourceTherapist: {},
	ResourceDashboard: {}, ResourceRBAC: {}, ResourceSystem: {},
}

// ----------------------------
// Roles
// ----------------------------
//
// These are the "policy subjects" we assign to users via grouping policies.
// They mirror the user.role column one to one.

const (
	WildcardRole Role = "*"

	RoleAdmin     Role = "role:admin"
	RoleTherapist Role = "role:therapist"
)

var KnownRoles = map[Role]struct{}{
	RoleAdmin:     {},
	RoleTherapist: {},
}

// AccountRoleToRBACRole maps the users.role column values to Casbin roles.
var AccountRoleToRBACRole = map[string]Role{
	"admin":     RoleAdmin,
	"therapist": RoleTherapist,
}

// ----------------------------
// Domains
// ----------------------------
//
// The practice is single-tenant, so every policy lives in the sys domain.
// The domain column stays in the model to keep the policy shape stable if
// multi-practice support ever lands.

const (
	DomainSys Domain = "sys"
)

const (
	WildcardDomain Domain = "*"
)

// IsValidDomain checks whether d is a recognised domain string.
func IsValidDomain(d Domain) bool {
	return d == DomainSys || d == WildcardDomain
}

// ----------------------------
// Casbin tuple helpers
// ----------------------------

type PolicyEffect string

const (
	EffectAllow PolicyEffect = "allow"
	EffectDeny  PolicyEffect = "deny"
)

// GroupSubject is the g.sub in Casbin: a concrete principal id (user_id).
type GroupSubject string

// Grouping rows: g, user_id, role, domain
type GroupingPolicy struct {
	Subject GroupSubject
	Role    Role
	Domain  Domain
}

// Permission rows: p, role, domain, resource, action, eft
type PermissionPolicy struct {
	Subject Role
	Domain  Domain
	Object  Resource
	Action  Action
	Effect  PolicyEffect
}
