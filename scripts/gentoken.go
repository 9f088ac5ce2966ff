// One-off: go run scripts/gentoken.go <username> [secret]
package main

import (
	"fmt"
	"os"

	"github.com/selmenealex/my-finance/internal/auth"
)

func main() {
	username := "admin"
	secret := "super-secret-key-change-this-in-prod"
	if len(os.Args) > 1 {
		username = os.Args[1]
	}
	if len(os.Args) > 2 {
		secret = os.Args[2]
	}
	tok, err := auth.GenerateToken(username, []byte(secret))
	if err != nil {
		panic(err)
	}
	fmt.Print(tok)
}
