package model

import (
	"encoding/json"
	"testing"
)

func TestProductInfoLenientFields(t *testing.T) {
	body := `{"product_name":"Wireless Mouse","price":19.99,"description":null,"location":true,"industry":"Electronics"}`

	var info ProductInfo
	if err := json.Unmarshal([]byte(body), &info); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	want := ProductInfo{
		ProductName: "Wireless Mouse",
		Price:       "19.99",
		Description: "",
		Location:    "true",
		Industry:    "Electronics",
	}
	if info != want {
		t.Fatalf("got %+v, want %+v", info, want)
	}
}

func TestProductInfoMissingFields(t *testing.T) {
	var info ProductInfo
	if err := json.Unmarshal([]byte(`{"price":"$5"}`), &info); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if info.ProductName != "" || info.Price.String() != "$5" {
		t.Fatalf("got %+v", info)
	}
}

func TestTextEscapes(t *testing.T) {
	var v Text
	if err := json.Unmarshal([]byte(`"café \"deluxe\""`), &v); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if v != `café "deluxe"` {
		t.Fatalf("got %q", v)
	}
}
