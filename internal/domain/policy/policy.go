// Package policy is the pure role-gate for the proposal workflow. Every
// predicate takes the acting user and, where relevant, the promotion, and
// answers without side effects; the presentation and usecase layers call
// these instead of embedding role checks.
package policy

import (
	"spa-promotions/internal/domain/promotion"
	"spa-promotions/internal/domain/user"
)

// Actor is the authenticated caller as the policy sees it.
type Actor struct {
	ID   string
	Role user.Role
}

// CanPropose: Sales owns proposals; Management can also open one directly.
func CanPropose(actor Actor) bool {
	return actor.Role == user.RoleSales || actor.Role == user.RoleManagement
}

// CanEditDraft: Management edits any promotion still in design; the owning
// Sales user edits their own.
func CanEditDraft(p *promotion.Promotion, actor Actor) bool {
	if actor.Role == user.RoleManagement {
		return true
	}
	return actor.Role == user.RoleSales &&
		actor.ID == p.ProposerID() &&
		p.Status() == promotion.StatusPendingDesign
}

// CanDeleteDraft is deliberately the same predicate as CanEditDraft.
func CanDeleteDraft(p *promotion.Promotion, actor Actor) bool {
	return CanEditDraft(p, actor)
}

// CanActMarketing: Marketing attaches design work and pushes a design-stage
// proposal onward.
func CanActMarketing(p *promotion.Promotion, actor Actor) bool {
	return actor.Role == user.RoleMarketing && p.Status() == promotion.StatusPendingDesign
}

// CanActManagement: Management approves or rejects proposals awaiting
// approval.
func CanActManagement(p *promotion.Promotion, actor Actor) bool {
	return actor.Role == user.RoleManagement && p.Status() == promotion.StatusPendingApproval
}

// CanEditApproved: only Management may touch a promotion after approval.
func CanEditApproved(p *promotion.Promotion, actor Actor) bool {
	return actor.Role == user.RoleManagement && p.Status() == promotion.StatusApproved
}

// CanManageUsers: Management only.
func CanManageUsers(actor Actor) bool {
	return actor.Role == user.RoleManagement
}

// CanManageCatalog: service and category records are maintained by
// Management.
func CanManageCatalog(actor Actor) bool {
	return actor.Role == user.RoleManagement
}

// CanView: every role, Reception included, reads all promotion views.
func CanView(actor Actor) bool {
	return actor.Role.IsValid()
}
