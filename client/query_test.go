package client

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lifeforge-dev/lifeforge/session"
)

func TestEncodeParamsOmission(t *testing.T) {
	city := ""
	lat := 12.5
	limit := 5
	var pincode *string

	q := encodeParams(Params{
		"blood_group": "O-",
		"city":        &city, // set to empty string, must stay
		"pincode":     pincode,
		"lat":         &lat,
		"lng":         nil,
		"limit":       &limit,
	})

	assert.Equal(t, "blood_group=O-&city=&lat=12.5&limit=5", q)
	assert.NotContains(t, q, "pincode")
	assert.NotContains(t, q, "lng")
}

func TestEncodeParamsValueFormatting(t *testing.T) {
	q := encodeParams(Params{
		"flag":  true,
		"count": 3,
		"score": 0.25,
		"name":  "a b",
	})
	assert.Equal(t, "count=3&flag=true&name=a+b&score=0.25", q)
}

func TestEncodeParamsEmpty(t *testing.T) {
	assert.Equal(t, "", encodeParams(nil))
	assert.Equal(t, "", encodeParams(Params{}))
	// All-nil params collapse to no query string at all.
	assert.Equal(t, "", encodeParams(Params{"a": nil}))
}

func TestBuildURLDualBase(t *testing.T) {
	store := session.NewMemory()
	params := Params{"blood_group": "O-", "limit": 5}

	absolute := New("https://api.example.org", store)
	relative := New("", store)

	absURL := absolute.buildURL("/blood/donors", params)
	relURL := relative.buildURL("/blood/donors", params)

	assert.Equal(t, "https://api.example.org/blood/donors?blood_group=O-&limit=5", absURL)
	assert.Equal(t, "/blood/donors?blood_group=O-&limit=5", relURL)
	// Same query string byte for byte in both modes.
	assert.Equal(t, "https://api.example.org"+relURL, absURL)
}

func TestBuildURLNoParams(t *testing.T) {
	c := New("https://api.example.org", session.NewMemory())
	assert.Equal(t, "https://api.example.org/stats", c.buildURL("/stats", nil))
}
