package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type signUp struct {
	Email string  `json:"email" validate:"required,email"`
	CPF   string  `json:"cpf" validate:"required,cpf"`
	Role  string  `json:"role" validate:"omitempty,role"`
	Lat   float64 `json:"latitude" validate:"latitude"`
}

func TestValidator_Validate(t *testing.T) {
	v := New()

	tests := []struct {
		name    string
		input   signUp
		wantErr []string
	}{
		{
			name:  "valid with punctuated cpf",
			input: signUp{Email: "ana@parcel.test", CPF: "529.982.247-25", Role: "RECIPIENT", Lat: -23.5},
		},
		{
			name:    "invalid cpf checksum",
			input:   signUp{Email: "ana@parcel.test", CPF: "52998224724"},
			wantErr: []string{"cpf failed on 'cpf'"},
		},
		{
			name:    "json names reported",
			input:   signUp{CPF: "52998224725", Role: "COURIER", Lat: 95},
			wantErr: []string{"email failed on 'required'", "role failed on 'role'", "latitude failed on 'latitude'"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(&tt.input)
			if len(tt.wantErr) == 0 {
				require.NoError(t, err)

				return
			}

			require.Error(t, err)
			for _, want := range tt.wantErr {
				assert.Contains(t, err.Error(), want)
			}
		})
	}
}
