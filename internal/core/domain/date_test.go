package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDatePolicy(t *testing.T) {
	assert.True(t, DatePolicyUK.IsValid())
	assert.True(t, DatePolicyUS.IsValid())
	assert.False(t, DatePolicy("eu").IsValid())
	assert.Equal(t, "UK (day/month/year)", DatePolicyUK.Description())
	assert.Equal(t, "US (month/day/year)", DatePolicyUS.Description())
}

func TestDateValue_Validate(t *testing.T) {
	tests := []struct {
		name    string
		date    DateValue
		wantErr bool
	}{
		{name: "ordinary date", date: DateValue{Day: 10, Month: 12, Year: 2010}},
		{name: "leap day in leap year", date: DateValue{Day: 29, Month: 2, Year: 2020}},
		{name: "leap day outside leap year", date: DateValue{Day: 29, Month: 2, Year: 2021}, wantErr: true},
		{name: "century non-leap", date: DateValue{Day: 29, Month: 2, Year: 1900}, wantErr: true},
		{name: "quadricentennial leap", date: DateValue{Day: 29, Month: 2, Year: 2000}},
		{name: "february 31st", date: DateValue{Day: 31, Month: 2, Year: 2021}, wantErr: true},
		{name: "30 day month overflow", date: DateValue{Day: 31, Month: 4, Year: 2021}, wantErr: true},
		{name: "month zero", date: DateValue{Day: 1, Month: 0, Year: 2021}, wantErr: true},
		{name: "month thirteen", date: DateValue{Day: 1, Month: 13, Year: 2021}, wantErr: true},
		{name: "day zero", date: DateValue{Day: 0, Month: 1, Year: 2021}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.date.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidDate)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestDaysInMonth(t *testing.T) {
	assert.Equal(t, 31, DaysInMonth(1, 2021))
	assert.Equal(t, 30, DaysInMonth(4, 2021))
	assert.Equal(t, 28, DaysInMonth(2, 2021))
	assert.Equal(t, 29, DaysInMonth(2, 2024))
	assert.Equal(t, 0, DaysInMonth(13, 2021))
}
