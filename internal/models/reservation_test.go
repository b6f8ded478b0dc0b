package models

import "testing"

func TestCreateReservationRequest_Validate(t *testing.T) {
	valid := func() CreateReservationRequest {
		return CreateReservationRequest{
			CustomerName:    "Jane Doe",
			CustomerPhone:   "555-0102",
			ReservationDate: "2026-09-01",
			ReservationTime: "19:30",
			NumberOfGuests:  4,
		}
	}

	tests := []struct {
		name    string
		mutate  func(*CreateReservationRequest)
		wantErr bool
	}{
		{"valid", func(r *CreateReservationRequest) {}, false},
		{"valid with table", func(r *CreateReservationRequest) { id := 2; r.TableID = &id }, false},
		{"missing name", func(r *CreateReservationRequest) { r.CustomerName = "" }, true},
		{"missing phone", func(r *CreateReservationRequest) { r.CustomerPhone = "" }, true},
		{"missing date", func(r *CreateReservationRequest) { r.ReservationDate = "" }, true},
		{"missing time", func(r *CreateReservationRequest) { r.ReservationTime = "" }, true},
		{"zero guests", func(r *CreateReservationRequest) { r.NumberOfGuests = 0 }, true},
		{"bad table id", func(r *CreateReservationRequest) { id := 0; r.TableID = &id }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid()
			tt.mutate(&req)
			err := req.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
