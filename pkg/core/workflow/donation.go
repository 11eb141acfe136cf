// Package workflow encodes the status machines of donation and emergency
// requests as explicit transition tables. The dashboard previously implied
// these transitions through which menu actions each screen rendered; here
// there is a single authoritative table consulted by every caller, and the
// server is still treated as the final arbiter of legality.
package workflow

// DonationStatus is the workflow state of a donation request.
type DonationStatus string

const (
	DonationPending              DonationStatus = "pending"
	DonationRejected             DonationStatus = "rejected"
	DonationAppointmentConfirmed DonationStatus = "appointment_confirmed"
	DonationAppointmentCancelled DonationStatus = "appointment_cancelled"
	DonationAppointmentAbsent    DonationStatus = "appointment_absent"
	DonationCustomerCancelled    DonationStatus = "customer_cancelled"
	DonationCustomerCheckedIn    DonationStatus = "customer_checked_in"
	DonationCompleted            DonationStatus = "completed"
	DonationResultReturned       DonationStatus = "result_returned"
	DonationNotQualified         DonationStatus = "not_qualified"
	DonationNoShow               DonationStatus = "no_show"
)

// donationTransitions lists, per current status, the statuses staff may move
// a request to. Statuses absent from the map are terminal.
var donationTransitions = map[DonationStatus][]DonationStatus{
	DonationPending: {
		DonationAppointmentConfirmed,
		DonationRejected,
	},
	DonationAppointmentConfirmed: {
		DonationCustomerCheckedIn,
		DonationAppointmentCancelled,
		DonationAppointmentAbsent,
		DonationNoShow,
	},
	DonationCustomerCheckedIn: {
		DonationCompleted,
		DonationNotQualified,
	},
	DonationCompleted: {
		DonationResultReturned,
	},
}

// DonationStatuses returns every known donation status, in workflow order.
func DonationStatuses() []DonationStatus {
	return []DonationStatus{
		DonationPending,
		DonationAppointmentConfirmed,
		DonationCustomerCheckedIn,
		DonationCompleted,
		DonationResultReturned,
		DonationRejected,
		DonationAppointmentCancelled,
		DonationAppointmentAbsent,
		DonationCustomerCancelled,
		DonationNotQualified,
		DonationNoShow,
	}
}

// AllowedDonationTransitions returns the statuses staff may move a request
// with the given status to. The returned slice is a copy.
func AllowedDonationTransitions(from DonationStatus) []DonationStatus {
	next := donationTransitions[from]
	out := make([]DonationStatus, len(next))
	copy(out, next)
	return out
}

// CanTransitionDonation reports whether staff may move a request from one
// status to another. Note the customer-driven transitions (a member
// cancelling their own appointment) arrive from the server side and are not
// listed here.
func CanTransitionDonation(from, to DonationStatus) bool {
	for _, s := range donationTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// DonationStatusTerminal reports whether no staff action can move a request
// out of the given status.
func DonationStatusTerminal(s DonationStatus) bool {
	return len(donationTransitions[s]) == 0
}

// DonationStatusLabel maps a status to its display label.
func DonationStatusLabel(s DonationStatus) string {
	switch s {
	case DonationPending:
		return "Pending"
	case DonationRejected:
		return "Rejected"
	case DonationAppointmentConfirmed:
		return "Appointment confirmed"
	case DonationAppointmentCancelled:
		return "Appointment cancelled"
	case DonationAppointmentAbsent:
		return "Absent"
	case DonationCustomerCancelled:
		return "Cancelled by member"
	case DonationCustomerCheckedIn:
		return "Checked in"
	case DonationCompleted:
		return "Completed"
	case DonationResultReturned:
		return "Result returned"
	case DonationNotQualified:
		return "Not qualified"
	case DonationNoShow:
		return "No show"
	}
	return string(s)
}
