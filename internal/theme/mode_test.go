package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMode(t *testing.T) {
	m, err := ParseMode(" Dark ")
	require.NoError(t, err)
	assert.Equal(t, Dark, m)

	m, err = ParseMode("LIGHT")
	require.NoError(t, err)
	assert.Equal(t, Light, m)

	_, err = ParseMode("sepia")
	assert.Error(t, err)
}

func TestOpposite(t *testing.T) {
	assert.Equal(t, Light, Dark.Opposite())
	assert.Equal(t, Dark, Light.Opposite())
}

func TestDetect(t *testing.T) {
	tests := []struct {
		name      string
		override  string
		colorfgbg string
		want      Mode
	}{
		{"nothing reported", "", "", Light},
		{"override dark", "dark", "15;7", Dark},
		{"override light", "light", "15;0", Light},
		{"invalid override ignored", "sepia", "15;0", Dark},
		{"black background", "", "15;0", Dark},
		{"three fields", "", "15;default;0", Dark},
		{"dark grey background", "", "7;8", Dark},
		{"white background", "", "0;15", Light},
		{"light grey background", "", "0;7", Light},
		{"garbage", "", "x;y", Light},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := map[string]string{
				EnvColorScheme: tt.override,
				"COLORFGBG":    tt.colorfgbg,
			}
			assert.Equal(t, tt.want, detect(func(k string) string { return env[k] }))
		})
	}
}

func TestFromStored(t *testing.T) {
	assert.Equal(t, Dark, fromStored("dark"))
	assert.Equal(t, Light, fromStored("light"))
	assert.Equal(t, Light, fromStored("DARK"), "only the exact literal means dark")
}
