package admin

import (
	"github.com/google/uuid"
)

// OutcomeKind tags the result of an admin workflow
type OutcomeKind string

const (
	// OutcomeRendered carries a view-model (possibly with form errors) to display
	OutcomeRendered OutcomeKind = "rendered"
	// OutcomeRedirect instructs the caller to move to another action
	OutcomeRedirect OutcomeKind = "redirect"
	// OutcomeNotFound reports a role id that did not resolve
	OutcomeNotFound OutcomeKind = "not_found"
)

// Inbound action names used as redirect targets
const (
	ActionListRoles = "listRoles"
	ActionEditRole  = "editRole"
)

// Redirect names the next action and its route parameters
type Redirect struct {
	Target string            `json:"target"`
	Params map[string]string `json:"params,omitempty"`
}

// Outcome is the tagged result shared by the edit workflows
type Outcome struct {
	Kind      OutcomeKind `json:"kind"`
	Redirect  *Redirect   `json:"redirect,omitempty"`
	MissingID uuid.UUID   `json:"missing_id,omitempty"`
	Errors    []string    `json:"errors,omitempty"`
}

func rendered() Outcome {
	return Outcome{Kind: OutcomeRendered}
}

func renderedWithErrors(errs []string) Outcome {
	return Outcome{Kind: OutcomeRendered, Errors: errs}
}

func redirectTo(target string, params map[string]string) Outcome {
	return Outcome{Kind: OutcomeRedirect, Redirect: &Redirect{Target: target, Params: params}}
}

func notFound(id uuid.UUID) Outcome {
	return Outcome{Kind: OutcomeNotFound, MissingID: id}
}

// CreateRoleResult reports the outcome of the create-role workflow
type CreateRoleResult struct {
	Succeeded bool     `json:"succeeded"`
	RoleName  string   `json:"role_name"`
	Errors    []string `json:"errors,omitempty"`
}

// EditRoleView is the transient view-model for the edit-role form
type EditRoleView struct {
	ID       uuid.UUID `json:"id"`
	RoleName string    `json:"role_name"`
	Users    []string  `json:"users"`
}

// UserRoleView renders one membership checkbox for a role
type UserRoleView struct {
	UserID     uuid.UUID `json:"user_id"`
	UserName   string    `json:"user_name"`
	IsSelected bool      `json:"is_selected"`
}

// UserRoleSelection is one submitted membership checkbox
type UserRoleSelection struct {
	UserID     uuid.UUID `json:"user_id"`
	IsSelected bool      `json:"is_selected"`
}

// ItemFailure records a single failed add/remove during a membership edit
type ItemFailure struct {
	UserID uuid.UUID `json:"user_id"`
	Error  string    `json:"error"`
}

// EditRoleResult is the outcome of the edit-role read and write paths
type EditRoleResult struct {
	Outcome
	Model EditRoleView `json:"model,omitempty"`
}

// UserRoleEditResult is the outcome of the membership read path
type UserRoleEditResult struct {
	Outcome
	Users []UserRoleView `json:"users,omitempty"`
}

// MembershipEditResult is the outcome of the membership write path
type MembershipEditResult struct {
	Outcome
	Failures []ItemFailure `json:"failures,omitempty"`
}
