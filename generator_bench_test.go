package firetoken_test

import (
	"testing"

	firetoken "github.com/arissamad/firebasetokengenerator"
)

func BenchmarkCreateToken(b *testing.B) {
	gen, err := firetoken.New("benchmark-secret")
	if err != nil {
		b.Fatal(err)
	}

	gen.SetOption("admin", true)
	gen.SetData("uid", "user-42")
	gen.SetData("premium", true)

	for i := 0; i < b.N; i++ {
		if _, err := gen.CreateToken(); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkClaims(b *testing.B) {
	gen, err := firetoken.New("benchmark-secret")
	if err != nil {
		b.Fatal(err)
	}

	gen.SetOption("admin", true)
	for i := 0; i < 10; i++ {
		gen.SetData(string(rune('a'+i)), i)
	}

	for n := 0; n < b.N; n++ {
		if _, err := gen.Claims(); err != nil {
			b.Fatal(err)
		}
	}
}
