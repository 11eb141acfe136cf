package commands

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bloodlink/bloodlink-admin/pkg/core/model"
	"github.com/bloodlink/bloodlink-admin/pkg/core/workflow"
)

// One style per status family, used everywhere a status is printed so the
// whole CLI agrees on what each state looks like.
var (
	styleOK      = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	styleWarn    = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true)
	styleBad     = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	styleNeutral = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	styleInfo    = lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true)

	styleHeader = lipgloss.NewStyle().Bold(true).Underline(true)
)

func donationStatusBadge(s workflow.DonationStatus) string {
	label := workflow.DonationStatusLabel(s)
	switch s {
	case workflow.DonationCompleted, workflow.DonationResultReturned:
		return styleOK.Render(label)
	case workflow.DonationPending, workflow.DonationAppointmentConfirmed, workflow.DonationCustomerCheckedIn:
		return styleInfo.Render(label)
	case workflow.DonationRejected, workflow.DonationNotQualified:
		return styleBad.Render(label)
	case workflow.DonationAppointmentCancelled, workflow.DonationAppointmentAbsent,
		workflow.DonationCustomerCancelled, workflow.DonationNoShow:
		return styleWarn.Render(label)
	}
	return styleNeutral.Render(label)
}

func emergencyStatusBadge(s workflow.EmergencyStatus) string {
	label := workflow.EmergencyStatusLabel(s)
	switch s {
	case workflow.EmergencyApproved, workflow.EmergencyContactsProvided:
		return styleOK.Render(label)
	case workflow.EmergencyPending:
		return styleInfo.Render(label)
	case workflow.EmergencyRejected:
		return styleBad.Render(label)
	case workflow.EmergencyExpired:
		return styleNeutral.Render(label)
	}
	return styleNeutral.Render(label)
}

func campaignStatusBadge(s model.CampaignStatus) string {
	switch s {
	case model.CampaignActive:
		return styleOK.Render("Active")
	case model.CampaignNotStarted:
		return styleInfo.Render("Not started")
	case model.CampaignEnded:
		return styleWarn.Render("Ended")
	case model.CampaignArchived:
		return styleNeutral.Render("Archived")
	}
	return styleNeutral.Render(string(s))
}

func unitStatusBadge(s model.BloodUnitStatus) string {
	switch s {
	case model.UnitAvailable:
		return styleOK.Render("Available")
	case model.UnitUsed:
		return styleNeutral.Render("Used")
	case model.UnitExpired:
		return styleWarn.Render("Expired")
	case model.UnitDamaged:
		return styleBad.Render("Damaged")
	}
	return styleNeutral.Render(string(s))
}

func blogStatusBadge(s model.BlogStatus) string {
	switch s {
	case model.BlogPublished:
		return styleOK.Render("Published")
	case model.BlogDraft:
		return styleInfo.Render("Draft")
	case model.BlogArchived:
		return styleNeutral.Render("Archived")
	}
	return styleNeutral.Render(string(s))
}

func bloodTypeBadge(b model.BloodType) string {
	return styleBad.Render(b.String())
}

// printMeta prints the pagination footer under a list.
func printMeta(meta model.Meta) {
	pages := meta.TotalPages
	if pages == 0 {
		pages = 1
	}
	fmt.Printf("\n%s\n", styleNeutral.Render(fmt.Sprintf(
		"Page %d of %d (%d total)", meta.Page, pages, meta.Total)))
	if meta.HasNextPage {
		fmt.Println(styleNeutral.Render("Use --page to see more."))
	}
}

func printHeader(title string) {
	fmt.Printf("\n%s\n\n", styleHeader.Render(title))
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return strings.TrimSpace(s[:max-1]) + "…"
}
