package main

import (
	"context"
	"fmt"
	"strings"

	"hospital-records/cmd/bootstrap"
	"hospital-records/internal/delivery/dto"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var seedDiseases = []string{
	"Migraine",
	"Fever",
	"Common cold",
	"Chest pain",
	"Heart palpitations",
	"Skin rash",
	"Eczema",
	"Asthma",
	"Lung infection",
	"Back pain",
	"",
}

var (
	seedPriorities = []string{"Low", "Medium", "High", ""}
	seedTimeSlots  = []string{"09:00-10:00", "10:00-11:00", "14:00-15:00", "16:00-17:00", ""}

	seedMinTemp = decimal.RequireFromString("36.0")
	seedMaxTemp = decimal.RequireFromString("40.0")
)

func seedCmd() *cobra.Command {
	var count int

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Insert fake patient visits for local development",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := bootstrap.New()
			if err != nil {
				return err
			}
			defer app.Close()

			ctx := context.Background()
			for i := 0; i < count; i++ {
				created, err := app.PatientVisits.CreateVisit(ctx, fakeVisitRequest())
				if err != nil {
					return err
				}
				app.Log.WithField("patient_id", created.PatientID).
					Debugf("Seeded visit with %s", created.DoctorName)
			}

			app.Log.Infof("Seeded %d patient visits", count)
			return nil
		},
	}
	cmd.Flags().IntVar(&count, "count", 25, "number of visits to insert")

	return cmd
}

// fakeVisitRequest builds an intake form the way the front desk would fill
// it, with the optional fields sometimes left blank.
func fakeVisitRequest() *dto.CreatePatientVisitRequest {
	age := gofakeit.Number(1, 95)

	req := &dto.CreatePatientVisitRequest{
		PatientName: gofakeit.Name(),
		Gender:      titleCase(gofakeit.Gender()),
		Age:         &age,
		Disease:     gofakeit.RandomString(seedDiseases),
		Priority:    gofakeit.RandomString(seedPriorities),
		TimeSlot:    gofakeit.RandomString(seedTimeSlots),
		Phone:       gofakeit.Phone(),
	}

	if gofakeit.Bool() {
		req.BP = fmt.Sprintf("%d/%d", gofakeit.Number(100, 150), gofakeit.Number(60, 95))
	}
	if gofakeit.Bool() {
		req.Temp = decimal.NewNullDecimal(decimal.NewFromFloat(gofakeit.Float64Range(36.0, 40.0)).Round(1))
	}
	if gofakeit.Bool() {
		req.Weight = decimal.NewNullDecimal(decimal.NewFromFloat(gofakeit.Float64Range(3.0, 120.0)).Round(1))
	}

	return req
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
