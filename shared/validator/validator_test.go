package validator_test

import (
	"mime/multipart"
	"net/textproto"
	"strings"
	"testing"

	"roomescape/shared/constant"
	"roomescape/shared/validator"
)

type reservationForm struct {
	Date    string `validate:"required,datetime=2006-01-02" json:"date"`
	TimeID  int64  `validate:"required" json:"time_id"`
	ThemeID int64  `validate:"required" json:"theme_id"`
}

type accountForm struct {
	Name     string `validate:"required" json:"name"`
	Email    string `validate:"required,email" json:"email"`
	Password string `validate:"required,min=8" json:"password"`
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name        string
		data        *reservationForm
		expectError bool
	}{
		{
			name: "valid struct",
			data: &reservationForm{
				Date:    "2026-01-15",
				TimeID:  1,
				ThemeID: 2,
			},
			expectError: false,
		},
		{
			name: "missing date",
			data: &reservationForm{
				TimeID:  1,
				ThemeID: 2,
			},
			expectError: true,
		},
		{
			name: "malformed date",
			data: &reservationForm{
				Date:    "15-01-2026",
				TimeID:  1,
				ThemeID: 2,
			},
			expectError: true,
		},
		{
			name: "missing time id",
			data: &reservationForm{
				Date:    "2026-01-15",
				ThemeID: 2,
			},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateStruct(tt.data)

			if tt.expectError && err == nil {
				t.Error("expected validation error, got nil")
			}

			if !tt.expectError && err != nil {
				t.Errorf("expected no validation error, got: %v", err)
			}
		})
	}
}

func TestValidateVar(t *testing.T) {
	tests := []struct {
		name        string
		field       interface{}
		tag         string
		expectError bool
	}{
		{
			name:        "valid required string",
			field:       "test",
			tag:         "required",
			expectError: false,
		},
		{
			name:        "empty required string",
			field:       "",
			tag:         "required",
			expectError: true,
		},
		{
			name:        "valid email",
			field:       "member@example.com",
			tag:         "email",
			expectError: false,
		},
		{
			name:        "invalid email",
			field:       "invalid-email",
			tag:         "email",
			expectError: true,
		},
		{
			name:        "valid time of day",
			field:       "10:30",
			tag:         "datetime=15:04",
			expectError: false,
		},
		{
			name:        "invalid time of day",
			field:       "25:99",
			tag:         "datetime=15:04",
			expectError: true,
		},
		{
			name:        "valid oneof",
			field:       "STANDBY",
			tag:         "oneof=CONFIRMED STANDBY",
			expectError: false,
		},
		{
			name:        "invalid oneof",
			field:       "CANCELLED",
			tag:         "oneof=CONFIRMED STANDBY",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateVar(tt.field, tt.tag)

			if tt.expectError && err == nil {
				t.Error("expected validation error, got nil")
			}

			if !tt.expectError && err != nil {
				t.Errorf("expected no validation error, got: %v", err)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name        string
		jsonBody    string
		expectError bool
	}{
		{
			name:        "valid JSON",
			jsonBody:    `{"name":"John Doe","email":"john@example.com","password":"secret-password"}`,
			expectError: false,
		},
		{
			name:        "invalid email",
			jsonBody:    `{"name":"John Doe","email":"invalid-email","password":"secret-password"}`,
			expectError: true,
		},
		{
			name:        "short password",
			jsonBody:    `{"name":"John Doe","email":"john@example.com","password":"short"}`,
			expectError: true,
		},
		{
			name:        "malformed JSON",
			jsonBody:    `{"name":"John Doe","email":}`,
			expectError: true,
		},
		{
			name:        "empty JSON",
			jsonBody:    `{}`,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reader := strings.NewReader(tt.jsonBody)
			var data accountForm
			err := validator.Validate(reader, &data)

			if tt.expectError && err == nil {
				t.Error("expected validation error, got nil")
			}

			if !tt.expectError && err != nil {
				t.Errorf("expected no validation error, got: %v", err)
			}
		})
	}
}

func TestEmptyValidation(t *testing.T) {
	type form struct {
		Image string `validate:"empty" json:"image"`
	}

	if err := validator.ValidateStruct(&form{}); err != nil {
		t.Errorf("expected zero value to pass empty validation, got: %v", err)
	}

	if err := validator.ValidateStruct(&form{Image: "set"}); err == nil {
		t.Error("expected non-zero value to fail empty validation")
	}
}

func TestFileValidations(t *testing.T) {
	type uploadForm struct {
		Image multipart.FileHeader `validate:"mimetypes=image/png image/jpeg,maxfilesize=1"`
	}

	fileHeader := func(contentType string, size int64) multipart.FileHeader {
		header := textproto.MIMEHeader{}
		header.Set(constant.RequestHeaderContentType, contentType)

		return multipart.FileHeader{
			Filename: "thumbnail.png",
			Header:   header,
			Size:     size,
		}
	}

	tests := []struct {
		name        string
		file        multipart.FileHeader
		expectError bool
	}{
		{
			name:        "allowed type within size",
			file:        fileHeader("image/png", 512*1024),
			expectError: false,
		},
		{
			name:        "allowed alternative type",
			file:        fileHeader("image/jpeg", 1024),
			expectError: false,
		},
		{
			name:        "disallowed type",
			file:        fileHeader("application/pdf", 1024),
			expectError: true,
		},
		{
			name:        "over the size cap",
			file:        fileHeader("image/png", 2*1024*1024),
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateStruct(&uploadForm{Image: tt.file})

			if tt.expectError && err == nil {
				t.Error("expected validation error, got nil")
			}

			if !tt.expectError && err != nil {
				t.Errorf("expected no validation error, got: %v", err)
			}
		})
	}
}

func TestValidationMessages(t *testing.T) {
	data := &accountForm{}
	err := validator.ValidateStruct(data)

	if err == nil {
		t.Fatal("expected validation error for empty struct")
	}

	if !strings.Contains(err.Error(), "required") {
		t.Errorf("expected descriptive error message containing 'required', got: %s", err.Error())
	}
}
