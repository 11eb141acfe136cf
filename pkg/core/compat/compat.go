// Package compat decides ABO/Rh transfusion compatibility between a
// required blood type and a candidate donor or stored unit. The required
// type is treated as the recipient side, so AB is the universal recipient
// and O the universal donor.
package compat

import "github.com/bloodlink/bloodlink-admin/pkg/core/model"

// aboDonors maps a required (recipient) group to the donor groups it can
// receive red cells from.
var aboDonors = map[model.BloodGroup][]model.BloodGroup{
	model.GroupO:  {model.GroupO},
	model.GroupA:  {model.GroupA, model.GroupO},
	model.GroupB:  {model.GroupB, model.GroupO},
	model.GroupAB: {model.GroupA, model.GroupB, model.GroupAB, model.GroupO},
}

// GroupCompatible reports whether a donor ABO group is acceptable for the
// required group.
func GroupCompatible(required, donor model.BloodGroup) bool {
	for _, g := range aboDonors[required] {
		if g == donor {
			return true
		}
	}
	return false
}

// RhCompatible reports whether a donor rhesus factor is acceptable for the
// required one. An Rh+ recipient accepts either factor; an Rh- recipient
// accepts only Rh- donors.
func RhCompatible(required, donor model.Rh) bool {
	if required == model.RhPositive {
		return true
	}
	return donor == model.RhNegative
}

// Compatible reports whether a donor blood type can serve the required one.
func Compatible(required, donor model.BloodType) bool {
	return GroupCompatible(required.Group, donor.Group) && RhCompatible(required.Rh, donor.Rh)
}

// UnitMatches reports whether a stored unit can serve an emergency
// requirement: the component types must be equal and the unit's blood type
// must be compatible with the required one.
func UnitMatches(required model.BloodType, component model.ComponentType, unit model.BloodUnit) bool {
	if unit.ComponentType != component {
		return false
	}
	return Compatible(required, unit.BloodType)
}

// FilterUnits returns the subset of units that can serve the requirement,
// preserving input order.
func FilterUnits(required model.BloodType, component model.ComponentType, units []model.BloodUnit) []model.BloodUnit {
	matched := make([]model.BloodUnit, 0, len(units))
	for _, unit := range units {
		if UnitMatches(required, component, unit) {
			matched = append(matched, unit)
		}
	}
	return matched
}
