package main

import (
	"testing"

	"hospital-records/pkg/validator"
)

func TestFakeVisitRequest_PassesIntakeValidation(t *testing.T) {
	v := validator.NewValidator()

	for i := 0; i < 200; i++ {
		req := fakeVisitRequest()
		if err := v.Validate(req); err != nil {
			t.Fatalf("generated request %+v failed validation: %v", req, err)
		}
		if req.Gender != "Male" && req.Gender != "Female" {
			t.Errorf("unexpected gender %q", req.Gender)
		}
		if req.Temp.Valid && (req.Temp.Decimal.LessThan(seedMinTemp) || req.Temp.Decimal.GreaterThan(seedMaxTemp)) {
			t.Errorf("temperature %s outside seed range", req.Temp.Decimal)
		}
	}
}
