package entity

// Role is fixed at account creation and gates every action.
type Role string

const (
	RoleAuthor Role = "author"
	RoleEditor Role = "editor"
	RoleExpert Role = "expert"
	RoleChief  Role = "chief"
	RoleAdmin  Role = "admin"
)

func (r Role) Valid() bool {
	switch r {
	case RoleAuthor, RoleEditor, RoleExpert, RoleChief, RoleAdmin:
		return true
	}
	return false
}

// Per-action checks, so handlers never compare role strings directly.

func (r Role) CanSubmit() bool  { return r == RoleAuthor }
func (r Role) CanAssign() bool  { return r == RoleEditor }
func (r Role) CanReview() bool  { return r == RoleExpert }
func (r Role) CanDecide() bool  { return r == RoleEditor }
func (r Role) CanPublish() bool { return r == RoleChief }

// CanManageStore covers the restaurant back office (dishes, orders, export).
func (r Role) CanManageStore() bool { return r == RoleAdmin }
