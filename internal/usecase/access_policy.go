package usecase

import "fixsync/internal/domain/entities"

// Action names a guarded operation of the job service.
type Action string

const (
	ActionCreateJob      Action = "create_job"
	ActionViewJob        Action = "view_job"
	ActionListJobs       Action = "list_jobs"
	ActionPostMessage    Action = "post_message"
	ActionAddAttachment  Action = "add_attachment"
	ActionSubmitQuote    Action = "submit_quote"
	ActionDecideQuote    Action = "decide_quote"
	ActionUpdateDetails  Action = "update_details"
	ActionClaimJob       Action = "claim_job"
	ActionAssignJob      Action = "assign_job"
	ActionCancelJob      Action = "cancel_job"
	ActionDeleteJob      Action = "delete_job"
	ActionOverrideStatus Action = "override_status"
	ActionViewDashboard  Action = "view_dashboard"
)

type scope int

const (
	scopeNone scope = iota
	// scopeOwn requires session.identity == job.customerIdentity.
	scopeOwn
	scopeAny
)

var capabilities = map[Action]map[entities.Role]scope{
	ActionCreateJob:      {entities.RoleCustomer: scopeAny},
	ActionViewJob:        {entities.RoleCustomer: scopeOwn, entities.RoleTechnician: scopeAny, entities.RoleAdmin: scopeAny},
	ActionListJobs:       {entities.RoleCustomer: scopeAny, entities.RoleTechnician: scopeAny, entities.RoleAdmin: scopeAny},
	ActionPostMessage:    {entities.RoleCustomer: scopeOwn, entities.RoleTechnician: scopeAny, entities.RoleAdmin: scopeAny},
	ActionAddAttachment:  {entities.RoleCustomer: scopeOwn, entities.RoleTechnician: scopeAny, entities.RoleAdmin: scopeAny},
	ActionSubmitQuote:    {entities.RoleTechnician: scopeAny},
	ActionDecideQuote:    {entities.RoleCustomer: scopeOwn},
	ActionUpdateDetails:  {entities.RoleCustomer: scopeOwn, entities.RoleTechnician: scopeAny, entities.RoleAdmin: scopeAny},
	ActionClaimJob:       {entities.RoleTechnician: scopeAny},
	ActionAssignJob:      {entities.RoleAdmin: scopeAny},
	ActionCancelJob:      {entities.RoleCustomer: scopeOwn, entities.RoleAdmin: scopeAny},
	ActionDeleteJob:      {entities.RoleAdmin: scopeAny},
	ActionOverrideStatus: {entities.RoleAdmin: scopeAny},
	ActionViewDashboard:  {entities.RoleAdmin: scopeAny},
}

// AccessPolicy is the role-based gate consulted before every operation.
type AccessPolicy struct{}

// ValidSession reports whether the session carries a known role and, for
// customers and technicians, an identity.
func (AccessPolicy) ValidSession(s entities.Session) bool {
	if !s.Role.Valid() {
		return false
	}
	if s.Role != entities.RoleAdmin && s.Identity == "" {
		return false
	}
	return true
}

// Authorize returns ErrUnauthorized unless the session may perform action on job.
// job may be nil for actions that are not bound to a record.
func (p AccessPolicy) Authorize(s entities.Session, action Action, job *entities.JobRecord) error {
	if !p.ValidSession(s) {
		return ErrUnauthorized
	}
	switch capabilities[action][s.Role] {
	case scopeAny:
		return nil
	case scopeOwn:
		if job != nil && job.OwnedBy(s.Identity) {
			return nil
		}
	}
	return ErrUnauthorized
}
