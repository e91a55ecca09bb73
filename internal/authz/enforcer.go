package authz

import (
	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
)

// Roles and permissions are owned by the identity service; this enforcer only
// consumes the actor's role claim and maps it to a resource:action matrix.
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
m = g(r.sub, p.sub) && (p.obj == r.obj || p.obj == "*") && (p.act == r.act || p.act == "*")
`

var defaultPolicies = [][]string{
	{"admin", "*", "*"},
	{"finance", "invoice", "*"},
	{"finance", "ledger", "*"},
	{"finance", "payment", "*"},
	{"manager", "invoice", "read"},
	{"manager", "ledger", "read"},
	{"manager", "payroll", "*"},
	{"manager", "hr", "*"},
	{"staff", "hr", "create"},
	{"staff", "payroll", "read"},
}

func NewEnforcer() (*casbin.Enforcer, error) {
	m, err := model.NewModelFromString(rbacModel)
	if err != nil {
		return nil, err
	}

	e, err := casbin.NewEnforcer(m)
	if err != nil {
		return nil, err
	}

	if _, err := e.AddPolicies(defaultPolicies); err != nil {
		return nil, err
	}
	if _, err := e.AddGroupingPolicy("admin", "manager"); err != nil {
		return nil, err
	}

	return e, nil
}

type Service interface {
	Enforce(role, resource, action string) (bool, error)
}

type service struct {
	enforcer *casbin.Enforcer
}

func NewService(enforcer *casbin.Enforcer) Service {
	return &service{enforcer: enforcer}
}

func (s *service) Enforce(role, resource, action string) (bool, error) {
	return s.enforcer.Enforce(role, resource, action)
}
