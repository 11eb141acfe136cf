package compat

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bloodlink/bloodlink-admin/pkg/core/model"
)

func TestCompatible_UniversalDonor(t *testing.T) {
	oNeg := model.BloodType{Group: model.GroupO, Rh: model.RhNegative}

	for _, group := range []model.BloodGroup{model.GroupA, model.GroupB, model.GroupAB, model.GroupO} {
		for _, rh := range []model.Rh{model.RhPositive, model.RhNegative} {
			required := model.BloodType{Group: group, Rh: rh}
			assert.True(t, Compatible(required, oNeg), "O- should serve %s", required)
		}
	}
}

func TestCompatible_UniversalRecipient(t *testing.T) {
	abPos := model.BloodType{Group: model.GroupAB, Rh: model.RhPositive}

	for _, group := range []model.BloodGroup{model.GroupA, model.GroupB, model.GroupAB, model.GroupO} {
		for _, rh := range []model.Rh{model.RhPositive, model.RhNegative} {
			donor := model.BloodType{Group: group, Rh: rh}
			assert.True(t, Compatible(abPos, donor), "AB+ should accept %s", donor)
		}
	}
}

func TestCompatible_KnownCases(t *testing.T) {
	cases := []struct {
		required string
		donor    string
		want     bool
	}{
		{"O+", "O+", true},
		{"O+", "A+", false},
		{"AB+", "O-", true},
		{"A-", "O+", false},
		{"A-", "O-", true},
		{"A+", "A-", true},
		{"A+", "B+", false},
		{"B-", "B+", false},
		{"B-", "O-", true},
		{"O-", "O+", false},
		{"AB-", "A-", true},
		{"AB-", "A+", false},
	}

	for _, tc := range cases {
		required := parseBloodType(t, tc.required)
		donor := parseBloodType(t, tc.donor)
		assert.Equal(t, tc.want, Compatible(required, donor), "%s <- %s", tc.required, tc.donor)
	}
}

// TestCompatible_FullGrid checks every (required, donor) quadruple against
// the ABO table and Rh rule stated independently of the implementation.
func TestCompatible_FullGrid(t *testing.T) {
	aboTable := map[model.BloodGroup]map[model.BloodGroup]bool{
		model.GroupO:  {model.GroupO: true},
		model.GroupA:  {model.GroupA: true, model.GroupO: true},
		model.GroupB:  {model.GroupB: true, model.GroupO: true},
		model.GroupAB: {model.GroupA: true, model.GroupB: true, model.GroupAB: true, model.GroupO: true},
	}
	groups := []model.BloodGroup{model.GroupA, model.GroupB, model.GroupAB, model.GroupO}
	factors := []model.Rh{model.RhPositive, model.RhNegative}

	for _, rg := range groups {
		for _, rrh := range factors {
			for _, dg := range groups {
				for _, drh := range factors {
					required := model.BloodType{Group: rg, Rh: rrh}
					donor := model.BloodType{Group: dg, Rh: drh}

					want := aboTable[rg][dg] && (rrh == model.RhPositive || drh == model.RhNegative)
					got := Compatible(required, donor)
					assert.Equal(t, want, got, "required=%s donor=%s", required, donor)
				}
			}
		}
	}
}

func TestUnitMatches_ComponentMismatch(t *testing.T) {
	required := model.BloodType{Group: model.GroupAB, Rh: model.RhPositive}
	unit := model.BloodUnit{
		BloodType:     model.BloodType{Group: model.GroupO, Rh: model.RhNegative},
		ComponentType: model.ComponentPlasma,
	}

	// Blood type is universally compatible but the component differs
	assert.False(t, UnitMatches(required, model.ComponentRedCells, unit))
	assert.True(t, UnitMatches(required, model.ComponentPlasma, unit))
}

func TestFilterUnits(t *testing.T) {
	required := model.BloodType{Group: model.GroupA, Rh: model.RhNegative}
	expiry := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)

	units := []model.BloodUnit{
		{ID: "u1", BloodType: model.BloodType{Group: model.GroupA, Rh: model.RhNegative}, ComponentType: model.ComponentRedCells, ExpiredDate: expiry},
		{ID: "u2", BloodType: model.BloodType{Group: model.GroupO, Rh: model.RhPositive}, ComponentType: model.ComponentRedCells, ExpiredDate: expiry},
		{ID: "u3", BloodType: model.BloodType{Group: model.GroupO, Rh: model.RhNegative}, ComponentType: model.ComponentRedCells, ExpiredDate: expiry},
		{ID: "u4", BloodType: model.BloodType{Group: model.GroupA, Rh: model.RhNegative}, ComponentType: model.ComponentPlasma, ExpiredDate: expiry},
	}

	matched := FilterUnits(required, model.ComponentRedCells, units)

	ids := make([]string, 0, len(matched))
	for _, u := range matched {
		ids = append(ids, u.ID)
	}
	assert.Equal(t, []string{"u1", "u3"}, ids)
}

func parseBloodType(t *testing.T, s string) model.BloodType {
	t.Helper()

	rh := model.Rh(s[len(s)-1:])
	group := model.BloodGroup(s[:len(s)-1])
	if group != model.GroupA && group != model.GroupB && group != model.GroupAB && group != model.GroupO {
		t.Fatal(fmt.Sprintf("bad blood type in test: %s", s))
	}
	return model.BloodType{Group: group, Rh: rh}
}
