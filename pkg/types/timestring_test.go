package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    TimeString
		wantErr bool
	}{
		{name: "short format", input: "09:00", want: "09:00:00"},
		{name: "full format", input: "09:30:15", want: "09:30:15"},
		{name: "midnight", input: "00:00", want: "00:00:00"},
		{name: "end of day", input: "23:59", want: "23:59:00"},
		{name: "empty", input: "", wantErr: true},
		{name: "garbage", input: "not-a-time", wantErr: true},
		{name: "out of range", input: "25:00", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewTimeStringFromString(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTimeString_AddHours(t *testing.T) {
	ts, err := NewTimeStringFromString("09:00")
	require.NoError(t, err)

	shifted, err := ts.AddHours(1)
	require.NoError(t, err)
	assert.Equal(t, TimeString("10:00:00"), shifted)

	shifted, err = ts.AddHours(3)
	require.NoError(t, err)
	assert.Equal(t, TimeString("12:00:00"), shifted)
}

func TestTimeString_Scan(t *testing.T) {
	t.Run("from string", func(t *testing.T) {
		var ts TimeString
		require.NoError(t, ts.Scan("10:00:00"))
		assert.Equal(t, TimeString("10:00:00"), ts)
	})

	t.Run("from bytes", func(t *testing.T) {
		var ts TimeString
		require.NoError(t, ts.Scan([]byte("09:15:00")))
		assert.Equal(t, TimeString("09:15:00"), ts)
	})

	t.Run("from time.Time", func(t *testing.T) {
		var ts TimeString
		require.NoError(t, ts.Scan(time.Date(0, 1, 1, 14, 30, 0, 0, time.UTC)))
		assert.Equal(t, TimeString("14:30:00"), ts)
	})

	t.Run("from nil", func(t *testing.T) {
		ts := TimeString("10:00:00")
		require.NoError(t, ts.Scan(nil))
		assert.True(t, ts.IsZero())
	})

	t.Run("unsupported type", func(t *testing.T) {
		var ts TimeString
		require.Error(t, ts.Scan(42))
	})
}

func TestTimeString_Value(t *testing.T) {
	ts := TimeString("09:00:00")
	v, err := ts.Value()
	require.NoError(t, err)
	assert.Equal(t, "09:00:00", v)

	var empty TimeString
	v, err = empty.Value()
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestTimeString_Validate(t *testing.T) {
	assert.NoError(t, TimeString("09:00").Validate())
	assert.NoError(t, TimeString("09:00:00").Validate())
	assert.Error(t, TimeString("").Validate())
	assert.Error(t, TimeString("9 am").Validate())
}
