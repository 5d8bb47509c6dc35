package utils_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/shynebeauty/shyne_backend/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateDecimal(t *testing.T) {
	cases := []struct {
		value     string
		precision int32
		scale     int32
		ok        bool
	}{
		{"9.99", 10, 2, true},
		{"99999999.99", 10, 2, true},
		{"100000000.00", 10, 2, false},
		{"9.999", 10, 2, false},
		{"9.990", 10, 2, true},
		{"1234567.123", 10, 3, true},
		{"12345678.123", 10, 3, false},
		{"0.0005", 10, 3, false},
		{"-5.25", 10, 2, true},
	}
	for _, c := range cases {
		err := utils.ValidateDecimal("amount", decimal.RequireFromString(c.value), c.precision, c.scale)
		if c.ok {
			assert.NoError(t, err, c.value)
			continue
		}
		var ve *utils.ValidationError
		assert.ErrorAs(t, err, &ve, c.value)
	}
}

func TestFormatPhoneNumber(t *testing.T) {
	got, err := utils.FormatPhoneNumber("(650) 253-0000", "US")
	require.NoError(t, err)
	assert.Equal(t, "+16502530000", got)

	got, err = utils.FormatPhoneNumber("+44 20 7031 3000", "US")
	require.NoError(t, err)
	assert.Equal(t, "+442070313000", got)

	_, err = utils.FormatPhoneNumber("123", "US")
	assert.Error(t, err)
}

type sampleInput struct {
	Name  string `json:"name" binding:"required,max=5"`
	Email string `json:"email" binding:"omitempty,email"`
}

func TestValidateInputUsesJsonNames(t *testing.T) {
	err := utils.ValidateInput(&sampleInput{Name: "toolong", Email: "nope"})
	var ve *utils.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, map[string]string{"name": "max", "email": "email"}, ve.Fields)

	assert.NoError(t, utils.ValidateInput(&sampleInput{Name: "ok"}))
}

func TestNilIfEmpty(t *testing.T) {
	blank := "   "
	value := " 1Z999 "
	assert.Nil(t, utils.NilIfEmpty(nil))
	assert.Nil(t, utils.NilIfEmpty(&blank))
	assert.Equal(t, "1Z999", *utils.NilIfEmpty(&value))
}

func TestExecTemplate(t *testing.T) {
	sql, err := utils.ExecTemplate(`SELECT 1{{- if .status }} WHERE status = @status{{- end }}`, map[string]interface{}{"status": "Placed"})
	require.NoError(t, err)
	assert.Equal(t, "SELECT 1 WHERE status = @status", sql)

	sql, err = utils.ExecTemplate(`SELECT 1{{- if .status }} WHERE status = @status{{- end }}`, map[string]interface{}{"status": ""})
	require.NoError(t, err)
	assert.Equal(t, "SELECT 1", sql)
}
