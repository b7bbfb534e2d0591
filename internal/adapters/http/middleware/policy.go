package middleware

import (
	"strconv"
	"strings"

	"hrdesk/internal/core/domain"
	"hrdesk/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

type policyKind int

const (
	policyAuthenticated policyKind = iota
	policyRole
	policyAnyRole
	policySelfOrRole
)

// Policy is one predicate in a route's access chain. The set of kinds is
// closed; routes declare their chains statically in the route table.
type Policy struct {
	kind  policyKind
	roles []string
}

// RequireAuthenticated denies when no Principal is attached
func RequireAuthenticated() Policy {
	return Policy{kind: policyAuthenticated}
}

// RequireRole denies unless the principal's role name equals name
func RequireRole(name string) Policy {
	return Policy{kind: policyRole, roles: []string{name}}
}

// RequireAnyRole denies unless the principal's role name matches one of names
func RequireAnyRole(names ...string) Policy {
	return Policy{kind: policyAnyRole, roles: names}
}

// RequireSelfOrRole allows the named role unconditionally; anyone else
// only when the route's target user id is their own.
func RequireSelfOrRole(name string) Policy {
	return Policy{kind: policySelfOrRole, roles: []string{name}}
}

// roleMatches is the one place role names are compared.
func roleMatches(have, want string) bool {
	return strings.EqualFold(have, want)
}

// Evaluate applies the predicate to a principal and the route's target
// user id. A nil principal always denies.
func (p Policy) Evaluate(principal *domain.Principal, targetUserID uint) error {
	if principal == nil {
		return domain.ErrUnauthenticated
	}

	switch p.kind {
	case policyAuthenticated:
		return nil
	case policyRole, policyAnyRole:
		for _, role := range p.roles {
			if roleMatches(principal.Role.Name, role) {
				return nil
			}
		}
		return domain.ErrForbidden
	case policySelfOrRole:
		if roleMatches(principal.Role.Name, p.roles[0]) {
			return nil
		}
		if principal.UserID == targetUserID {
			return nil
		}
		return domain.ErrForbidden
	}

	return domain.ErrForbidden
}

// Enforce turns a static policy chain into a handler. Policies run in
// declared order; the first deny short-circuits the chain and the business
// handler never executes.
func Enforce(policies ...Policy) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var principal *domain.Principal
		if p, ok := PrincipalFrom(c); ok {
			principal = &p
		}

		// Route-supplied target for self-or-role checks. A missing or
		// malformed id param evaluates as target 0, which never matches
		// a real user id.
		var targetUserID uint
		if raw := c.Params("id"); raw != "" {
			if id, err := strconv.ParseUint(raw, 10, 32); err == nil {
				targetUserID = uint(id)
			}
		}

		for _, policy := range policies {
			if err := policy.Evaluate(principal, targetUserID); err != nil {
				return response.FromError(c, err)
			}
		}

		return c.Next()
	}
}
