package workflow

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransitionDonation_PendingPaths(t *testing.T) {
	assert.True(t, CanTransitionDonation(DonationPending, DonationAppointmentConfirmed))
	assert.True(t, CanTransitionDonation(DonationPending, DonationRejected))

	// Skipping the appointment stage is not offered
	assert.False(t, CanTransitionDonation(DonationPending, DonationCompleted))
	assert.False(t, CanTransitionDonation(DonationPending, DonationCustomerCheckedIn))
}

func TestCanTransitionDonation_CheckedInPaths(t *testing.T) {
	assert.True(t, CanTransitionDonation(DonationCustomerCheckedIn, DonationCompleted))
	assert.True(t, CanTransitionDonation(DonationCustomerCheckedIn, DonationNotQualified))
	assert.False(t, CanTransitionDonation(DonationCustomerCheckedIn, DonationPending))
}

func TestCanTransitionDonation_CompletedOnlyReturnsResult(t *testing.T) {
	assert.Equal(t, []DonationStatus{DonationResultReturned}, AllowedDonationTransitions(DonationCompleted))
}

func TestDonationStatusTerminal(t *testing.T) {
	terminal := []DonationStatus{
		DonationRejected,
		DonationResultReturned,
		DonationAppointmentCancelled,
		DonationAppointmentAbsent,
		DonationCustomerCancelled,
		DonationNotQualified,
		DonationNoShow,
	}
	for _, s := range terminal {
		assert.True(t, DonationStatusTerminal(s), "%s should be terminal", s)
	}

	assert.False(t, DonationStatusTerminal(DonationPending))
	assert.False(t, DonationStatusTerminal(DonationAppointmentConfirmed))
	assert.False(t, DonationStatusTerminal(DonationCustomerCheckedIn))
	assert.False(t, DonationStatusTerminal(DonationCompleted))
}

func TestCanTransitionDonation_NoTransitionToSelf(t *testing.T) {
	for _, s := range DonationStatuses() {
		assert.False(t, CanTransitionDonation(s, s), "%s should not transition to itself", s)
	}
}

func TestAllowedDonationTransitions_ReturnsCopy(t *testing.T) {
	first := AllowedDonationTransitions(DonationPending)
	first[0] = DonationNoShow

	second := AllowedDonationTransitions(DonationPending)
	assert.Equal(t, DonationAppointmentConfirmed, second[0])
}

func TestAllowedEmergencyActions(t *testing.T) {
	assert.ElementsMatch(t,
		[]EmergencyAction{ActionApprove, ActionReject},
		AllowedEmergencyActions(EmergencyPending))

	assert.Equal(t,
		[]EmergencyAction{ActionProvideContacts},
		AllowedEmergencyActions(EmergencyApproved))

	assert.Empty(t, AllowedEmergencyActions(EmergencyRejected))
	assert.Empty(t, AllowedEmergencyActions(EmergencyContactsProvided))
	assert.Empty(t, AllowedEmergencyActions(EmergencyExpired))
}

func TestCanActOnEmergency(t *testing.T) {
	assert.True(t, CanActOnEmergency(EmergencyPending, ActionApprove))
	assert.True(t, CanActOnEmergency(EmergencyPending, ActionReject))
	assert.False(t, CanActOnEmergency(EmergencyPending, ActionProvideContacts))

	assert.True(t, CanActOnEmergency(EmergencyApproved, ActionProvideContacts))
	assert.False(t, CanActOnEmergency(EmergencyApproved, ActionApprove))

	assert.False(t, CanActOnEmergency(EmergencyExpired, ActionApprove))
}

func TestEmergencyActionResult(t *testing.T) {
	s, ok := EmergencyActionResult(ActionApprove)
	assert.True(t, ok)
	assert.Equal(t, EmergencyApproved, s)

	s, ok = EmergencyActionResult(ActionProvideContacts)
	assert.True(t, ok)
	assert.Equal(t, EmergencyContactsProvided, s)

	_, ok = EmergencyActionResult(EmergencyAction("escalate"))
	assert.False(t, ok)
}

func TestStatusLabels(t *testing.T) {
	assert.Equal(t, "Checked in", DonationStatusLabel(DonationCustomerCheckedIn))
	assert.Equal(t, "Contacts provided", EmergencyStatusLabel(EmergencyContactsProvided))

	// Unknown statuses fall back to the raw value rather than panicking
	assert.Equal(t, "weird", DonationStatusLabel(DonationStatus("weird")))
}
