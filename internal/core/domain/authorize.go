package domain

// Action enumerates the operations gated by the authorization policy.
type Action string

const (
	ActionReadUser       Action = "user:read"
	ActionUpdateUser     Action = "user:update"
	ActionDeleteUser     Action = "user:delete"
	ActionListUsers      Action = "user:list"
	ActionChangeUserRole Action = "user:change_role"

	ActionUpdateItem  Action = "item:update"
	ActionDeleteItem  Action = "item:delete"
	ActionPublishItem Action = "item:publish"
)

// Decision is the tagged result of a policy evaluation.
type Decision struct {
	Allowed bool
	Reason  string
}

// Allow grants the action.
func Allow() Decision { return Decision{Allowed: true} }

// Deny rejects the action with a reason.
func Deny(reason string) Decision { return Decision{Reason: reason} }

// Err converts a denial into ErrForbidden; nil when allowed.
func (d Decision) Err() error {
	if d.Allowed {
		return nil
	}
	return ErrForbidden
}

// Authorize decides whether actor may perform action on resource. All role and
// ownership rules live here so individual endpoints cannot drift apart.
//
// Resource is *User for user actions and *Item for item actions; list actions
// take a nil resource. Read-narrowing for users is not a denial: ActionReadUser
// is only consulted to decide between the full and the public view.
func Authorize(actor *User, action Action, resource any) Decision {
	if actor == nil {
		return Deny("no authenticated actor")
	}

	switch action {
	case ActionListUsers, ActionDeleteUser:
		if action == ActionDeleteUser {
			if target, ok := resource.(*User); !ok || target == nil {
				return Deny("missing target user")
			}
		}
		if !actor.IsAdmin() {
			return Deny("admin role required")
		}
		return Allow()

	case ActionChangeUserRole:
		// Denied for non-admins even on their own record.
		if !actor.IsAdmin() {
			return Deny("only admin can change user roles")
		}
		return Allow()

	case ActionReadUser, ActionUpdateUser:
		target, ok := resource.(*User)
		if !ok || target == nil {
			return Deny("missing target user")
		}
		if actor.ID == target.ID || actor.IsAdmin() {
			return Allow()
		}
		return Deny("self or admin required")

	case ActionUpdateItem, ActionDeleteItem, ActionPublishItem:
		item, ok := resource.(*Item)
		if !ok || item == nil {
			return Deny("missing target item")
		}
		if actor.ID == item.OwnerID || actor.IsAdmin() {
			return Allow()
		}
		return Deny("owner or admin required")
	}

	return Deny("unknown action")
}
