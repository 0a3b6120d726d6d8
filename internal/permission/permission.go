// Package permission holds the authorization rules shared by the services.
package permission

import "github.com/GlebRadaev/coderr/internal/domain"

// Rule decides whether caller may act on a resource owned by ownerID.
// ownerID is zero for actions that are not tied to an existing resource.
type Rule func(caller domain.Caller, ownerID int) error

func Authenticated(caller domain.Caller, _ int) error {
	if !caller.Authenticated() {
		return domain.ErrUnauthenticated
	}
	return nil
}

func Business(caller domain.Caller, _ int) error {
	return hasRole(caller, domain.RoleBusiness)
}

func Customer(caller domain.Caller, _ int) error {
	return hasRole(caller, domain.RoleCustomer)
}

func Staff(caller domain.Caller, _ int) error {
	if err := Authenticated(caller, 0); err != nil {
		return err
	}
	if !caller.IsStaff {
		return domain.ErrForbidden
	}
	return nil
}

func Owner(caller domain.Caller, ownerID int) error {
	if err := Authenticated(caller, 0); err != nil {
		return err
	}
	if caller.UserID != ownerID {
		return domain.ErrForbidden
	}
	return nil
}

func hasRole(caller domain.Caller, role domain.Role) error {
	if err := Authenticated(caller, 0); err != nil {
		return err
	}
	if caller.Role != role {
		return domain.ErrForbidden
	}
	return nil
}

// All passes when every rule passes and reports the first failure.
func All(rules ...Rule) Rule {
	return func(caller domain.Caller, ownerID int) error {
		for _, rule := range rules {
			if err := rule(caller, ownerID); err != nil {
				return err
			}
		}
		return nil
	}
}

// Any passes when at least one rule passes. An anonymous caller always
// gets ErrUnauthenticated rather than ErrForbidden.
func Any(rules ...Rule) Rule {
	return func(caller domain.Caller, ownerID int) error {
		if len(rules) == 0 {
			return nil
		}
		var last error
		for _, rule := range rules {
			err := rule(caller, ownerID)
			if err == nil {
				return nil
			}
			last = err
		}
		if !caller.Authenticated() {
			return domain.ErrUnauthenticated
		}
		return last
	}
}

func Check(rule Rule, caller domain.Caller, ownerID int) error {
	return rule(caller, ownerID)
}
