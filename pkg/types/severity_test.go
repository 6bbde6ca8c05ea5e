package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeverity_Order(t *testing.T) {
	all := Severities()
	require.Len(t, all, 5)
	for i := 1; i < len(all); i++ {
		assert.Less(t, all[i-1], all[i])
	}
	assert.Equal(t, SeverityNone, all[0])
	assert.Equal(t, SeverityCritical, all[len(all)-1])
}

func TestSeverity_String(t *testing.T) {
	tests := []struct {
		sev  Severity
		want string
	}{
		{SeverityNone, "NONE"},
		{SeverityLow, "LOW"},
		{SeverityModerate, "MODERATE"},
		{SeveritySevere, "SEVERE"},
		{SeverityCritical, "CRITICAL"},
		{Severity(7), "Severity(7)"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.sev.String())
		})
	}
}

func TestParseSeverity(t *testing.T) {
	sev, err := ParseSeverity(" moderate ")
	require.NoError(t, err)
	assert.Equal(t, SeverityModerate, sev)

	_, err = ParseSeverity("urgent")
	require.ErrorIs(t, err, ErrUnknownSeverity)
}

func TestMinMaxSeverity(t *testing.T) {
	for _, a := range Severities() {
		for _, b := range Severities() {
			lo, hi := MinSeverity(a, b), MaxSeverity(a, b)
			assert.LessOrEqual(t, lo, a)
			assert.LessOrEqual(t, lo, b)
			assert.GreaterOrEqual(t, hi, a)
			assert.GreaterOrEqual(t, hi, b)
			assert.True(t, lo == a || lo == b)
		}
	}
}

func TestSeverity_JSON(t *testing.T) {
	data, err := json.Marshal(struct {
		Severity Severity `json:"severity"`
	}{SeveritySevere})
	require.NoError(t, err)
	assert.JSONEq(t, `{"severity":"SEVERE"}`, string(data))

	var decoded struct {
		Severity Severity `json:"severity"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"severity":"low"}`), &decoded))
	assert.Equal(t, SeverityLow, decoded.Severity)

	_, err = json.Marshal(Severity(-1))
	require.Error(t, err)
}
