package middleware

import (
	"net/http"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
	"github.com/gin-gonic/gin"

	"tdl-hrms/internal/shared/apperror"
	"tdl-hrms/internal/shared/response"
)

// Role-based model with role inheritance. Policies are code-seeded, not
// database-backed: the role set is fixed and small.
const rbacModel = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[role_definition]
g = _, _

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = g(r.sub, p.sub) && r.obj == p.obj && r.act == p.act
`

// NewEnforcer builds the in-memory enforcer. The administrator role inherits
// everything the employee role may do.
func NewEnforcer() (*casbin.Enforcer, error) {
	m, err := model.NewModelFromString(rbacModel)
	if err != nil {
		return nil, err
	}
	e, err := casbin.NewEnforcer(m)
	if err != nil {
		return nil, err
	}

	policies := [][]string{
		{"employee", "attendance", "read"},
		{"employee", "attendance", "write"},
		{"employee", "breaks", "read"},
		{"employee", "breaks", "write"},
		{"employee", "leaves", "read"},
		{"employee", "leaves", "write"},
		{"employee", "holidays", "read"},
		{"employee", "employees", "read"},
		{"administrator", "employees", "write"},
		{"administrator", "leaves", "approve"},
		{"administrator", "holidays", "write"},
		{"administrator", "reports", "read"},
	}
	for _, p := range policies {
		if _, err := e.AddPolicy(p[0], p[1], p[2]); err != nil {
			return nil, err
		}
	}
	if _, err := e.AddGroupingPolicy("administrator", "employee"); err != nil {
		return nil, err
	}
	return e, nil
}

// Authorize checks the authenticated role against the enforcer for one
// resource and action. It must run after AuthMiddleware.
func Authorize(enforcer *casbin.Enforcer, resource, action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString("role")
		if role == "" {
			response.Error(c, http.StatusUnauthorized, apperror.CodeUnauthorized, "missing auth context", nil)
			c.Abort()
			return
		}

		allowed, err := enforcer.Enforce(role, resource, action)
		if err != nil {
			response.Error(c, http.StatusInternalServerError, apperror.CodeInternalError, "authorization check failed", nil)
			c.Abort()
			return
		}
		if !allowed {
			response.Error(c, http.StatusForbidden, apperror.CodeForbidden,
				"You do not have permission to access this resource",
				resource+":"+action,
			)
			c.Abort()
			return
		}
		c.Next()
	}
}
