package authorize

import (
	"context"
	"log/slog"
)

// SeedDefaultPolicies sets up the baseline RBAC policies for the practice.
//
// Admins hold a wildcard in the sys domain. Therapists get the clinical
// resources plus read access to the staff directory; the admin surface
// (user management, therapist lifecycle, dashboard) stays closed to them.
func SeedDefaultPolicies(ctx context.Context, auth IAuthorization) error {
	logger := slog.Default()

	policies := []PermissionPolicy{
		// Admin: full control
		{RoleAdmin, DomainSys, WildcardResource, WildcardAction, EffectAllow},

		// Therapist: clinical records
		{RoleTherapist, DomainSys, ResourcePatient, ActionCreate, EffectAllow},
		{RoleTherapist, DomainSys, ResourcePatient, ActionRead, EffectAllow},
		{RoleTherapist, DomainSys, ResourcePatient, ActionUpdate, EffectAllow},
		{RoleTherapist, DomainSys, ResourcePatient, ActionDelete, EffectAllow},
		{RoleTherapist, DomainSys, ResourcePatient, ActionList, EffectAllow},

		{RoleTherapist, DomainSys, ResourceDocument, ActionUpload, EffectAllow},
		{RoleTherapist, DomainSys, ResourceDocument, ActionDownload, EffectAllow},
		{RoleTherapist, DomainSys, ResourceDocument, ActionRead, EffectAllow},
		{RoleTherapist, DomainSys, ResourceDocument, ActionList, EffectAllow},

		{RoleTherapist, DomainSys, ResourceSession, ActionCreate, EffectAllow},
		{RoleTherapist, DomainSys, ResourceSession, ActionRead, EffectAllow},
		{RoleTherapist, DomainSys, ResourceSession, ActionUpdate, EffectAllow},
		{RoleTherapist, DomainSys, ResourceSession, ActionCancel, EffectAllow},
		{RoleTherapist, DomainSys, ResourceSession, ActionList, EffectAllow},

		// Therapist: staff directory is readable; profile management
		// (create, update, delete) stays with admins
		{RoleTherapist, DomainSys, ResourceTherapist, ActionRead, EffectAllow},
		{RoleTherapist, DomainSys, ResourceTherapist, ActionList, EffectAllow},
	}

	for _, p := range policies {
		added, err := auth.AddPermission(ctx, p.Subject, p.Domain, p.Object, p.Action, p.Effect)
		if err != nil {
			logger.Error("failed to add policy", "policy", p, "error", err)
			return err
		}
		if added {
			logger.Debug("added policy", "role", p.Subject, "domain", p.Domain, "resource", p.Object, "action", p.Action)
		}
	}

	logger.Info("seeded default RBAC policies", "count", len(policies))
	return nil
}

// AssignAccountRole maps a users.role value to the matching Casbin role and
// grants it in the sys domain. Call this when creating a user.
func AssignAccountRole(ctx context.Context, auth IAuthorization, userID, accountRole string) error {
	role, ok := AccountRoleToRBACRole[accountRole]
	if !ok {
		return ErrInvalidArgs
	}

	_, err := auth.AddRoleForUserInDomain(ctx, GroupSubject(userID), role, DomainSys)
	return err
}

// RemoveAccountRole revokes the Casbin role that matches a users.role value.
func RemoveAccountRole(ctx context.Context, auth IAuthorization, userID, accountRole string) error {
	role, ok := AccountRoleToRBACRole[accountRole]
	if !ok {
		return ErrInvalidArgs
	}

	_, err := auth.RemoveRoleForUserInDomain(ctx, GroupSubject(userID), role, DomainSys)
	return err
}
