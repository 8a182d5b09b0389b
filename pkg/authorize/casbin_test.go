package authorize

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	casbin "github.com/casbin/casbin/v2"
	fileadapter "github.com/casbin/casbin/v2/persist/file-adapter"
)

// createTestEnforcer creates an in-memory Casbin enforcer for testing
func createTestEnforcer(t *testing.T) *casbin.DistributedEnforcer {
	t.Helper()

	tmpDir := t.TempDir()

	modelPath := filepath.Join(tmpDir, "model.conf")
	modelContent := `[request_definition]
r = sub, dom, obj, act

[policy_definition]
p = sub, dom, obj, act, eft

[role_definition]
g = _, _, _
g2 = _, _

[policy_effect]
e = some(where (p.eft == allow)) && !some(where (p.eft == deny))

[matchers]
m = (g(r.sub, p.sub, r.dom) || g2(r.sub, p.sub)) && (p.dom == "*" || p.dom == r.dom) && (p.obj == "*" || keyMatch2(r.obj, p.obj)) && (p.act == "*" || keyMatch(r.act, p.act))
`
	if err := os.WriteFile(modelPath, []byte(modelContent), 0644); err != nil {
		t.Fatalf("failed to write model file: %v", err)
	}

	policyPath := filepath.Join(tmpDir, "policy.csv")
	if err := os.WriteFile(policyPath, []byte(""), 0644); err != nil {
		t.Fatalf("failed to write policy file: %v", err)
	}

	a := fileadapter.NewAdapter(policyPath)

	e, err := casbin.NewDistributedEnforcer(modelPath, a)
	if err != nil {
		t.Fatalf("failed to create enforcer: %v", err)
	}

	e.EnableAutoSave(false)
	e.EnableEnforce(true)

	return e
}

func newSeededAuth(t *testing.T) IAuthorization {
	t.Helper()
	auth, err := NewAuthorization(createTestEnforcer(t))
	if err != nil {
		t.Fatalf("failed to create authorization: %v", err)
	}
	if err := SeedDefaultPolicies(context.Background(), auth); err != nil {
		t.Fatalf("failed to seed policies: %v", err)
	}
	return auth
}

func TestNewAuthorization(t *testing.T) {
	t.Run("returns error for nil enforcer", func(t *testing.T) {
		_, err := NewAuthorization(nil)
		if err == nil {
			t.Error("Expected error for nil enforcer")
		}
	})

	t.Run("succeeds with valid enforcer", func(t *testing.T) {
		e := createTestEnforcer(t)
		auth, err := NewAuthorization(e)
		if err != nil {
			t.Errorf("Unexpected error: %v", err)
		}
		if auth == nil {
			t.Error("Expected non-nil authorization")
		}
	})
}

func TestEnforceSeededRoles(t *testing.T) {
	auth := newSeededAuth(t)
	ctx := context.Background()

	adminID := GroupSubject("11111111-1111-1111-1111-111111111111")
	therapistID := GroupSubject("22222222-2222-2222-2222-222222222222")

	if _, err := auth.AddRoleForUserInDomain(ctx, adminID, RoleAdmin, DomainSys); err != nil {
		t.Fatalf("failed to grant admin role: %v", err)
	}
	if _, err := auth.AddRoleForUserInDomain(ctx, therapistID, RoleTherapist, DomainSys); err != nil {
		t.Fatalf("failed to grant therapist role: %v", err)
	}

	tests := []struct {
		name     string
		subject  GroupSubject
		resource Resource
		action   Action
		want     bool
	}{
		{"admin can manage users", adminID, ResourceUser, ActionUpdate, true},
		{"admin can view dashboard", adminID, ResourceDashboard, ActionRead, true},
		{"admin can delete therapists", adminID, ResourceTherapist, ActionDelete, true},
		{"therapist can create patients", therapistID, ResourcePatient, ActionCreate, true},
		{"therapist can cancel sessions", therapistID, ResourceSession, ActionCancel, true},
		{"therapist can upload documents", therapistID, ResourceDocument, ActionUpload, true},
		{"therapist cannot view dashboard", therapistID, ResourceDashboard, ActionRead, false},
		{"therapist cannot manage users", therapistID, ResourceUser, ActionUpdate, false},
		{"therapist cannot create therapists", therapistID, ResourceTherapist, ActionCreate, false},
		{"therapist cannot delete therapists", therapistID, ResourceTherapist, ActionDelete, false},
		{"stranger gets nothing", GroupSubject("33333333-3333-3333-3333-333333333333"), ResourcePatient, ActionRead, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := auth.Enforce(ctx, tt.subject, DomainSys, tt.resource, tt.action)
			if err != nil {
				t.Fatalf("Enforce() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Enforce() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEnforceRejectsUnknownInputs(t *testing.T) {
	auth := newSeededAuth(t)
	ctx := context.Background()
	subject := GroupSubject("11111111-1111-1111-1111-111111111111")

	tests := []struct {
		name     string
		domain   Domain
		resource Resource
		action   Action
	}{
		{"unknown resource", DomainSys, Resource("spaceship"), ActionRead},
		{"unknown action", DomainSys, ResourcePatient, Action("teleport")},
		{"unknown domain", Domain("moon"), ResourcePatient, ActionRead},
		{"empty resource", DomainSys, Resource(""), ActionRead},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := auth.Enforce(ctx, subject, tt.domain, tt.resource, tt.action)
			if err == nil {
				t.Error("Expected validation error")
			}
		})
	}
}

func TestMustEnforce(t *testing.T) {
	auth := newSeededAuth(t)
	ctx := context.Background()

	therapistID := GroupSubject("22222222-2222-2222-2222-222222222222")
	if _, err := auth.AddRoleForUserInDomain(ctx, therapistID, RoleTherapist, DomainSys); err != nil {
		t.Fatal(err)
	}

	if err := auth.MustEnforce(ctx, therapistID, DomainSys, ResourcePatient, ActionRead); err != nil {
		t.Errorf("MustEnforce() for allowed access error = %v", err)
	}

	err := auth.MustEnforce(ctx, therapistID, DomainSys, ResourceDashboard, ActionRead)
	if err != ErrForbidden {
		t.Errorf("MustEnforce() for denied access error = %v, want ErrForbidden", err)
	}
}

func TestRoleRoundTrip(t *testing.T) {
	auth := newSeededAuth(t)
	ctx := context.Background()
	subject := GroupSubject("44444444-4444-4444-4444-444444444444")

	added, err := auth.AddRoleForUserInDomain(ctx, subject, RoleTherapist, DomainSys)
	if err != nil || !added {
		t.Fatalf("AddRoleForUserInDomain() = %v, %v", added, err)
	}

	roles, err := auth.GetRolesForUserInDomain(ctx, subject, DomainSys)
	if err != nil {
		t.Fatal(err)
	}
	if len(roles) != 1 || roles[0] != RoleTherapist {
		t.Errorf("GetRolesForUserInDomain() = %v, want [%v]", roles, RoleTherapist)
	}

	removed, err := auth.RemoveRoleForUserInDomain(ctx, subject, RoleTherapist, DomainSys)
	if err != nil || !removed {
		t.Fatalf("RemoveRoleForUserInDomain() = %v, %v", removed, err)
	}

	allowed, err := auth.Enforce(ctx, subject, DomainSys, ResourcePatient, ActionRead)
	if err != nil {
		t.Fatal(err)
	}
	if allowed {
		t.Error("access should be revoked with the role")
	}
}

func TestAssignAccountRole(t *testing.T) {
	auth := newSeededAuth(t)
	ctx := context.Background()
	userID := "55555555-5555-5555-5555-555555555555"

	if err := AssignAccountRole(ctx, auth, userID, "therapist"); err != nil {
		t.Fatalf("AssignAccountRole() error = %v", err)
	}

	allowed, err := auth.Enforce(ctx, GroupSubject(userID), DomainSys, ResourceSession, ActionCreate)
	if err != nil {
		t.Fatal(err)
	}
	if !allowed {
		t.Error("therapist account should be able to create sessions")
	}

	if err := AssignAccountRole(ctx, auth, userID, "receptionist"); err != ErrInvalidArgs {
		t.Errorf("AssignAccountRole() with unknown role error = %v, want ErrInvalidArgs", err)
	}
}
