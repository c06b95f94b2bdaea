package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePrice(t *testing.T) {
	tests := []struct {
		in      string
		want    Price
		wantErr bool
	}{
		{"0", 0, false},
		{"12", 1200, false},
		{"12.5", 1250, false},
		{"12.50", 1250, false},
		{"12.500", 1250, false},
		{".99", 99, false},
		{"007.01", 701, false},
		{"-3.10", -310, false},
		{"99999999.99", MaxPrice, false},
		{"123456789", 0, true},
		{"1.234", 0, true},
		{"abc", 0, true},
		{"1e2", 10000, false},
		{"2.5E1", 2500, false},
		{"1e-5", 0, true},
		{"1e9", 0, true},
		{"1e999999999", 0, true},
		{"1e-999999999", 0, true},
		{"", 0, true},
		{".", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParsePrice(tt.in)
			if tt.wantErr {
				var pe *PriceError
				require.ErrorAs(t, err, &pe)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPriceString(t *testing.T) {
	assert.Equal(t, "0.00", Price(0).String())
	assert.Equal(t, "19.99", Price(1999).String())
	assert.Equal(t, "0.05", Price(5).String())
	assert.Equal(t, "-1.20", Price(-120).String())
}

func TestPriceJSON(t *testing.T) {
	var body struct {
		Price Price `json:"price"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"price": 49.9}`), &body))
	assert.Equal(t, Price(4990), body.Price)

	require.NoError(t, json.Unmarshal([]byte(`{"price": "10.00"}`), &body))
	assert.Equal(t, Price(1000), body.Price)

	out, err := json.Marshal(body)
	require.NoError(t, err)
	assert.JSONEq(t, `{"price": "10.00"}`, string(out))

	require.NoError(t, json.Unmarshal([]byte(`{"price": 1e2}`), &body))
	assert.Equal(t, Price(10000), body.Price)

	err = json.Unmarshal([]byte(`{"price": "1.001"}`), &body)
	var pe *PriceError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "Ensure that there are no more than 2 decimal places.", pe.Msg)

	err = json.Unmarshal([]byte(`{"price": 123456789}`), &body)
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "Ensure that there are no more than 10 digits in total.", pe.Msg)
}

func TestPriceScan(t *testing.T) {
	var p Price
	require.NoError(t, p.Scan("15.25"))
	assert.Equal(t, Price(1525), p)
	require.NoError(t, p.Scan([]byte("0.00")))
	assert.Equal(t, Price(0), p)
	require.NoError(t, p.Scan(int64(3)))
	assert.Equal(t, Price(300), p)
	require.NoError(t, p.Scan(2.5))
	assert.Equal(t, Price(250), p)
	assert.Error(t, p.Scan(true))
	assert.Error(t, p.Scan("1.234"))

	v, err := Price(1525).Value()
	require.NoError(t, err)
	assert.Equal(t, "15.25", v)
}
