package shareconfig

import (
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func samplePayload() Payload {
	return Payload{
		Model: "Drifter 19.6",
		ModelData: &ModelData{
			ID:          "0b54f5b7-3c86-4f9e-8cc1-2f2ac46a3c20",
			Name:        "Drifter 19.6",
			SleepPerson: 4,
			BasePrice:   "79500.00",
		},
		Color: &ThemeSelection{
			ThemeID:   "6d1cf5ce-08c7-4b43-a5d0-9e03bb4460c2",
			ThemeName: "Coastal",
		},
		ExternalOptions: &ExternalColors{
			BaseColorID:  "f3b4ac7e-3f2e-45f7-a9be-0b3ad64ff001",
			DecalColorID: "a79b58a3-15a1-4f57-857e-5e2f9ffbbf02",
		},
		ManufacturerOptions: map[string]bool{"42": true},
		VanariOptions:       map[string]bool{},
		ContactInfo: &ContactInfo{
			FirstName: "Jess",
			LastName:  "Hart",
			Email:     "jess@example.com",
			Phone:     "+61400123456",
		},
	}
}

// queryValue runs the encoded payload through url.ParseQuery, which is the
// unescaping the router applies before Decode ever sees the value.
func queryValue(t *testing.T, encoded string) string {
	t.Helper()
	values, err := url.ParseQuery(ParamName + "=" + encoded)
	require.NoError(t, err)
	return values.Get(ParamName)
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	payload := samplePayload()

	encoded, err := Encode(payload)
	require.NoError(t, err)

	decoded, err := Decode(queryValue(t, encoded), 0)
	require.NoError(t, err)

	assert.Equal(t, payload.Model, decoded.Model)
	assert.Equal(t, payload.ModelData, decoded.ModelData)
	assert.Equal(t, payload.Color, decoded.Color)
	assert.Equal(t, payload.ExternalOptions, decoded.ExternalOptions)
	assert.Equal(t, payload.ManufacturerOptions, decoded.ManufacturerOptions)
	assert.Equal(t, payload.ContactInfo, decoded.ContactInfo)
}

func TestDecodePreservesPlusInPhone(t *testing.T) {
	payload := samplePayload()
	payload.ContactInfo.Phone = "+61400000000"

	encoded, err := Encode(payload)
	require.NoError(t, err)

	decoded, err := Decode(queryValue(t, encoded), 0)
	require.NoError(t, err)
	assert.Equal(t, "+61400000000", decoded.ContactInfo.Phone)
}

func TestEncodeStripsFalsySelections(t *testing.T) {
	payload := samplePayload()
	payload.ManufacturerOptions["99"] = false

	encoded, err := Encode(payload)
	require.NoError(t, err)

	decoded, err := Decode(queryValue(t, encoded), 0)
	require.NoError(t, err)
	assert.Equal(t, map[string]bool{"42": true}, decoded.ManufacturerOptions)
}

func TestDecodeRejectsOversizedPayload(t *testing.T) {
	payload := samplePayload()
	msg := strings.Repeat("x", 4096)
	payload.ContactInfo.Message = msg

	encoded, err := Encode(payload)
	require.NoError(t, err)

	_, err = Decode(queryValue(t, encoded), 1024)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "size limit")
}

func TestDecodeRejectsBadJSON(t *testing.T) {
	_, err := Decode("{not json", 0)
	require.Error(t, err)
}

func TestShareURLCarriesOrderAndConfig(t *testing.T) {
	link, err := ShareURL("http://localhost:8080", "order-123", samplePayload())
	require.NoError(t, err)

	parsed, err := url.Parse(link)
	require.NoError(t, err)
	assert.Equal(t, "/order-summary", parsed.Path)
	assert.Equal(t, "order-123", parsed.Query().Get("order"))

	decoded, err := Decode(parsed.Query().Get(ParamName), 0)
	require.NoError(t, err)
	assert.Equal(t, "Drifter 19.6", decoded.Model)
}
