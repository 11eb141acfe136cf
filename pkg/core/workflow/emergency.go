package workflow

// EmergencyStatus is the workflow state of an emergency blood request.
type EmergencyStatus string

const (
	EmergencyPending          EmergencyStatus = "pending"
	EmergencyApproved         EmergencyStatus = "approved"
	EmergencyRejected         EmergencyStatus = "rejected"
	EmergencyContactsProvided EmergencyStatus = "contacts_provided"
	EmergencyExpired          EmergencyStatus = "expired"
)

// EmergencyAction is a staff action on an emergency request. Each action
// appends an entry to the request's log.
type EmergencyAction string

const (
	ActionApprove         EmergencyAction = "approve"
	ActionReject          EmergencyAction = "reject"
	ActionProvideContacts EmergencyAction = "provide_contacts"
)

// emergencyActions lists, per status, the staff actions available.
// Expiry is server-driven (the request's end date passing), never a staff
// action.
var emergencyActions = map[EmergencyStatus][]EmergencyAction{
	EmergencyPending:  {ActionApprove, ActionReject},
	EmergencyApproved: {ActionProvideContacts},
}

// emergencyResult maps an action to the status it produces.
var emergencyResult = map[EmergencyAction]EmergencyStatus{
	ActionApprove:         EmergencyApproved,
	ActionReject:          EmergencyRejected,
	ActionProvideContacts: EmergencyContactsProvided,
}

// AllowedEmergencyActions returns the staff actions available for a request
// in the given status. The returned slice is a copy.
func AllowedEmergencyActions(s EmergencyStatus) []EmergencyAction {
	actions := emergencyActions[s]
	out := make([]EmergencyAction, len(actions))
	copy(out, actions)
	return out
}

// CanActOnEmergency reports whether the action is available for a request in
// the given status.
func CanActOnEmergency(s EmergencyStatus, action EmergencyAction) bool {
	for _, a := range emergencyActions[s] {
		if a == action {
			return true
		}
	}
	return false
}

// EmergencyActionResult returns the status the action moves a request to.
func EmergencyActionResult(action EmergencyAction) (EmergencyStatus, bool) {
	s, ok := emergencyResult[action]
	return s, ok
}

// EmergencyStatusLabel maps a status to its display label.
func EmergencyStatusLabel(s EmergencyStatus) string {
	switch s {
	case EmergencyPending:
		return "Pending"
	case EmergencyApproved:
		return "Approved"
	case EmergencyRejected:
		return "Rejected"
	case EmergencyContactsProvided:
		return "Contacts provided"
	case EmergencyExpired:
		return "Expired"
	}
	return string(s)
}
