package service

import "testing"

func TestSlugify(t *testing.T) {
	cases := []struct {
		input    string
		expected string
	}{
		{"Buzo con capota Hoodie Dama", "buzo-con-capota-hoodie-dama"},
		{"Buzo con capota Hoodie Caballero", "buzo-con-capota-hoodie-caballero"},
		{"Camiseta Básica Ñandú", "camiseta-basica-nandu"},
		{"  Producto   Digital!!  ", "producto-digital"},
		{"ÁÉÍÓÚ üñ", "aeiou-un"},
		{"---", ""},
		{"", ""},
		{"Café & Té 100%", "cafe-te-100"},
	}
	for _, c := range cases {
		if got := Slugify(c.input); got != c.expected {
			t.Fatalf("Slugify(%q)=%q expected=%q", c.input, got, c.expected)
		}
	}
}
