package service

import (
	"strings"

	"hospital-records/internal/domain/entity"
)

var (
	GeneralPhysician = entity.Doctor{Name: "Dr Arun", Specialization: "General Physician"}
	Cardiologist     = entity.Doctor{Name: "Dr Meena", Specialization: "Cardiologist"}
	Dermatologist    = entity.Doctor{Name: "Dr Suresh", Specialization: "Dermatologist"}
	Pulmonologist    = entity.Doctor{Name: "Dr Parivendhan", Specialization: "Pulmonologist"}
)

type ruleKind int

const (
	ruleExact ruleKind = iota
	ruleContains
	ruleDefault
)

type assignmentRule struct {
	kind   ruleKind
	terms  []string
	doctor entity.Doctor
}

// assignmentRules is evaluated top to bottom and the first match wins, so
// order matters: "cold heart" is a cardiology case, "cold" alone is not.
var assignmentRules = []assignmentRule{
	{kind: ruleExact, terms: []string{"fever", "flu", "cold", "headache", "migraine"}, doctor: GeneralPhysician},
	{kind: ruleContains, terms: []string{"heart"}, doctor: Cardiologist},
	{kind: ruleContains, terms: []string{"skin", "allergy"}, doctor: Dermatologist},
	{kind: ruleContains, terms: []string{"lung", "asthma"}, doctor: Pulmonologist},
	{kind: ruleDefault, doctor: GeneralPhysician},
}

func (r assignmentRule) matches(disease string) bool {
	switch r.kind {
	case ruleExact:
		for _, term := range r.terms {
			if disease == term {
				return true
			}
		}
	case ruleContains:
		for _, term := range r.terms {
			if strings.Contains(disease, term) {
				return true
			}
		}
	case ruleDefault:
		return true
	}
	return false
}

// AssignDoctor picks the doctor for a disease description at intake. It is
// total: unmatched and empty input both fall through to the general
// physician, the same doctor the exact-match rule returns.
func AssignDoctor(disease string) entity.Doctor {
	d := strings.ToLower(disease)
	for _, rule := range assignmentRules {
		if rule.matches(d) {
			return rule.doctor
		}
	}
	return GeneralPhysician
}
